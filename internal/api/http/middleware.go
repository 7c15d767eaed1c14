package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"platepilot/internal/auth"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const (
	msgMissingToken = "Access denied. No token provided."
	msgExpiredToken = "Token expired. Please login again."
	msgInvalidToken = "Invalid token."
	msgAdminOnly    = "Access denied. Admin privileges required."
)

type TokenVerifier interface {
	Verify(token string) (auth.Principal, error)
}

var _ TokenVerifier = (*auth.Manager)(nil)

type Authenticator struct {
	Tokens TokenVerifier
}

func NewAuthenticator(tokens TokenVerifier) *Authenticator {
	return &Authenticator{Tokens: tokens}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

// authenticate resolves the caller. ok is false when the response has
// already been written.
func (a *Authenticator) authenticate(w http.ResponseWriter, r *http.Request, required bool) (auth.Principal, bool) {
	token := bearerToken(r)
	if token == "" {
		if required {
			writeMessage(w, http.StatusUnauthorized, msgMissingToken)
			return nil, false
		}
		return nil, true
	}

	principal, err := a.Tokens.Verify(token)
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		writeMessage(w, http.StatusUnauthorized, msgExpiredToken)
		return nil, false
	case err != nil:
		writeMessage(w, http.StatusUnauthorized, msgInvalidToken)
		return nil, false
	}
	return principal, true
}

// RequireAdmin admits only admin and super-admin callers.
func (a *Authenticator) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := a.authenticate(w, r, true)
		if !ok {
			return
		}
		if !auth.IsAdmin(principal) {
			writeMessage(w, http.StatusForbidden, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
	})
}

// OptionalAuth attaches the caller when a token is sent; a bad token is
// still rejected.
func (a *Authenticator) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := a.authenticate(w, r, false)
		if !ok {
			return
		}
		if principal != nil {
			r = r.WithContext(auth.WithPrincipal(r.Context(), principal))
		}
		next.ServeHTTP(w, r)
	})
}

// RateLimit builds a per-client-IP limiter from a formatted rate such as
// "120-M". An empty rate disables limiting. The client IP is taken from
// X-Forwarded-For / X-Real-IP first since traffic arrives through the gateway.
func RateLimit(formatted string) (func(http.Handler) http.Handler, error) {
	if formatted == "" {
		return func(next http.Handler) http.Handler { return next }, nil
	}
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}
	instance := limiter.New(memory.NewStore(), rate, limiter.WithTrustForwardHeader(true))
	return stdlib.NewMiddleware(instance).Handler, nil
}
