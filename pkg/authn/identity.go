package authn

// Identity is the verified caller of a request: the subject from a
// validated credential plus its claims, extracted verbatim. It is created
// once at request entry, never persisted, and discarded at request exit.
type Identity struct {
	// Subject is the credential's "sub" claim, empty for anonymous callers.
	Subject string

	// Claims holds the credential's claim set as decoded. Values keep
	// their wire types (JSON numbers decode as float64, lists as []any);
	// interpretation belongs to the consumers, not to verification.
	Claims map[string]any

	anonymous bool
}

// Anonymous returns the identity used for requests that carry no
// credential at all. Route-level authorization decides whether anonymous
// access is acceptable; verification itself does not reject it.
func Anonymous() *Identity {
	return &Identity{anonymous: true}
}

// IsAnonymous reports whether the identity represents an unauthenticated caller.
func (id *Identity) IsAnonymous() bool {
	return id == nil || id.anonymous
}

// Claim returns the named claim and whether it is present.
func (id *Identity) Claim(name string) (any, bool) {
	if id == nil || id.Claims == nil {
		return nil, false
	}
	v, ok := id.Claims[name]
	return v, ok
}
