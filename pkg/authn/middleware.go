package authn

import (
	"errors"
	"net/http"
	"strings"

	"github.com/clinickit/clinickit/core"
)

// TokenExtractorFunc extracts a bearer credential from an HTTP request.
// It returns ErrNoCredential when the request carries none.
type TokenExtractorFunc func(r *http.Request) (string, error)

// MiddlewareConfig configures credential verification middleware.
type MiddlewareConfig struct {
	Verifier  *Verifier
	Extractor TokenExtractorFunc                                 // defaults to BearerTokenExtractor
	OnError   func(w http.ResponseWriter, r *http.Request, err error) // defaults to core error body
}

// Middleware verifies the bearer credential on every request and places
// the resulting identity in the request context. Requests without a
// credential proceed with an anonymous identity; whether that is
// acceptable is a route-authorization decision, not a verification one.
func Middleware(verifier *Verifier) func(http.Handler) http.Handler {
	return MiddlewareWithConfig(MiddlewareConfig{Verifier: verifier})
}

// MiddlewareWithConfig creates verification middleware with custom configuration.
func MiddlewareWithConfig(cfg MiddlewareConfig) func(http.Handler) http.Handler {
	if cfg.Extractor == nil {
		cfg.Extractor = BearerTokenExtractor
	}
	if cfg.OnError == nil {
		cfg.OnError = defaultErrorHandler
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := cfg.Extractor(r)
			if err != nil {
				if errors.Is(err, ErrNoCredential) {
					ctx := WithIdentity(r.Context(), Anonymous())
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
				cfg.OnError(w, r, err)
				return
			}

			identity, err := cfg.Verifier.Verify(r.Context(), token)
			if err != nil {
				cfg.OnError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	switch {
	case errors.Is(err, ErrVerificationBackend):
		core.WriteError(w, core.ErrBadGateway)
	default:
		core.WriteError(w, core.ErrUnauthorized)
	}
}

// BearerTokenExtractor extracts credentials from "Authorization: Bearer <token>"
// headers per RFC 6750. A missing header yields ErrNoCredential; a present
// but malformed header yields ErrInvalidCredential.
func BearerTokenExtractor(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrNoCredential
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", ErrInvalidCredential
	}

	return token, nil
}

// HeaderTokenExtractor creates an extractor for custom token headers.
func HeaderTokenExtractor(headerName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := r.Header.Get(headerName)
		if token == "" {
			return "", ErrNoCredential
		}
		return token, nil
	}
}
