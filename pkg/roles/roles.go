package roles

import (
	"slices"
	"strings"

	"github.com/clinickit/clinickit/pkg/authn"
)

// AuthorityPrefix is the canonical prefix for role authorities, the
// naming convention route authorization matches against.
const AuthorityPrefix = "ROLE_"

// Claim names recognised on verified identities. Credentials in the wild
// carry either a multi-valued list, a single-valued role, or both.
const (
	RolesClaim = "roles"
	RoleClaim  = "role"
)

// Common authorities.
const (
	Admin        = AuthorityPrefix + "ADMIN"
	Veterinarian = AuthorityPrefix + "VETERINARIAN"
	Staff        = AuthorityPrefix + "STAFF"
	Owner        = AuthorityPrefix + "OWNER"
)

// Authorities derives the authority set for a verified identity: the
// union of the multi-valued roles claim and the single-valued role claim,
// each mapped to the canonical ROLE_ convention. Malformed claim shapes
// are ignored rather than failing the request: an unreadable role grants
// nothing, which is the safe direction. The result is sorted and
// deduplicated; an identity with no readable roles gets an empty set.
func Authorities(id *authn.Identity) []string {
	if id == nil || id.IsAnonymous() {
		return nil
	}

	var out []string

	if raw, ok := id.Claim(RolesClaim); ok {
		switch list := raw.(type) {
		case []any:
			for _, v := range list {
				if s, ok := v.(string); ok {
					out = appendAuthority(out, s)
				}
			}
		case []string:
			for _, s := range list {
				out = appendAuthority(out, s)
			}
		}
	}

	if raw, ok := id.Claim(RoleClaim); ok {
		if s, ok := raw.(string); ok {
			out = appendAuthority(out, s)
		}
	}

	slices.Sort(out)
	return slices.Compact(out)
}

// Has reports whether the identity carries the given authority.
func Has(id *authn.Identity, authority string) bool {
	return slices.Contains(Authorities(id), Canonical(authority))
}

// Canonical maps a role name to its authority form: uppercased and
// ROLE_-prefixed. Names already carrying the prefix pass through.
func Canonical(role string) string {
	role = strings.ToUpper(strings.TrimSpace(role))
	if role == "" {
		return ""
	}
	if strings.HasPrefix(role, AuthorityPrefix) {
		return role
	}
	return AuthorityPrefix + role
}

func appendAuthority(out []string, role string) []string {
	if a := Canonical(role); a != "" {
		out = append(out, a)
	}
	return out
}
