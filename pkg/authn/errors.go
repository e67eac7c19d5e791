package authn

import "errors"

var (
	// ErrInvalidCredential is returned for malformed, unsigned, or expired tokens.
	ErrInvalidCredential = errors.New("authn: invalid credential")

	// ErrVerificationBackend is returned when the trust authority that
	// supplies verification keys is unreachable or failing.
	ErrVerificationBackend = errors.New("authn: verification backend unavailable")

	// ErrNoCredential is returned by extractors when the request carries
	// no credential at all. The middleware converts it into an anonymous
	// identity rather than a failure.
	ErrNoCredential = errors.New("authn: no credential present")

	// ErrMissingSigningKey is returned when a Verifier is created without a key.
	ErrMissingSigningKey = errors.New("authn: missing signing key")

	// ErrMissingKeyfunc is returned when a Verifier is created without a keyfunc.
	ErrMissingKeyfunc = errors.New("authn: missing keyfunc")
)
