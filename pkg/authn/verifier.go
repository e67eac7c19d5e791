package authn

import (
	"context"
	"errors"
	"log/slog"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates bearer credentials and produces verified identities.
// Verification is purely cryptographic and temporal; no business
// validation of claim values happens here.
type Verifier struct {
	keyfunc jwt.Keyfunc
	parser  *jwt.Parser
	log     *slog.Logger
}

// VerifierOption configures a Verifier.
type VerifierOption func(*Verifier)

// WithVerifierLogger sets the logger used for the debug audit entry
// written on successful verification.
func WithVerifierLogger(log *slog.Logger) VerifierOption {
	return func(v *Verifier) {
		if log != nil {
			v.log = log
		}
	}
}

// WithValidMethods restricts the accepted signing algorithms.
// Defaults to HS256 only, preventing algorithm confusion attacks.
func WithValidMethods(methods ...string) VerifierOption {
	return func(v *Verifier) {
		v.parser = jwt.NewParser(jwt.WithValidMethods(methods))
	}
}

// New creates a Verifier that validates HS256 tokens with the given
// shared signing key.
func New(signingKey []byte, opts ...VerifierOption) (*Verifier, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}
	return NewWithKeyfunc(func(*jwt.Token) (any, error) {
		return signingKey, nil
	}, opts...)
}

// NewWithKeyfunc creates a Verifier resolving verification keys through
// the given keyfunc. This is the integration point for external trust
// authorities (key servers, JWKS endpoints): a keyfunc failure is treated
// as the authority being unreachable, not as a bad credential.
func NewWithKeyfunc(keyfunc jwt.Keyfunc, opts ...VerifierOption) (*Verifier, error) {
	if keyfunc == nil {
		return nil, ErrMissingKeyfunc
	}

	v := &Verifier{
		keyfunc: keyfunc,
		parser:  jwt.NewParser(jwt.WithValidMethods([]string{"HS256"})),
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Verify validates a bearer token and returns the verified identity.
// Claims are extracted verbatim. Malformed, unsigned, or expired tokens
// fail with ErrInvalidCredential; a failing trust authority fails with
// ErrVerificationBackend.
func (v *Verifier) Verify(ctx context.Context, token string) (*Identity, error) {
	claims := jwt.MapClaims{}
	parsed, err := v.parser.ParseWithClaims(token, claims, v.keyfunc)
	if err != nil {
		// The keyfunc failing means the trust authority could not supply
		// a verification key, which is a backend fault, not a credential fault.
		if errors.Is(err, jwt.ErrTokenUnverifiable) {
			return nil, errors.Join(ErrVerificationBackend, err)
		}
		return nil, errors.Join(ErrInvalidCredential, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidCredential
	}

	subject, _ := claims.GetSubject()

	// Audit the subject only; the raw token never reaches logs.
	v.log.DebugContext(ctx, "credential verified", slog.String("subject", subject))

	return &Identity{Subject: subject, Claims: claims}, nil
}
