package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/inkpass/pkg/slogx"
)

const bearerPrefix = "Bearer "

// Authenticator decides whether a bearer token identifies a live session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (Principal, error)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is matched literally; anything else means no token.
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	token := header[len(bearerPrefix):]
	if strings.TrimSpace(token) == "" {
		return "", false
	}
	return token, true
}

// AuthnMiddleware attaches a Principal when the request carries a token the
// Authenticator accepts. It never rejects a request: a missing, invalid or
// superseded token, an authenticator error and even an authenticator panic
// all leave the request anonymous. Routes that need a principal are guarded
// by RequireAuthenticated.
func AuthnMiddleware(a Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p, ok := authenticate(a, r); ok {
				ctx := ContextWithPrincipal(r.Context(), p)
				ctx = slogx.WithUserID(ctx, p.UserID)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func authenticate(a Authenticator, r *http.Request) (p Principal, ok bool) {
	log := slogx.FromContext(r.Context())

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("authentication panicked, continuing unauthenticated", "panic", rec)
			p, ok = Principal{}, false
		}
	}()

	token, found := BearerToken(r)
	if !found {
		return Principal{}, false
	}

	p, err := a.Authenticate(r.Context(), token)
	if err != nil {
		log.Info("bearer token not accepted", "err", err)
		return Principal{}, false
	}
	return p, true
}
