package httpx

import "net/http"

// RequireAuthenticated rejects requests that reached it without a principal.
// It relies on AuthnMiddleware having run earlier in the chain.
func RequireAuthenticated() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := PrincipalFromContext(r.Context()); !ok {
				WriteUnauthenticated(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WriteUnauthenticated writes the 401 envelope. The body is the same whether
// the token was missing, expired, forged or superseded by a newer login.
func WriteUnauthenticated(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="inkpass"`)
	WriteEnvelope(w, http.StatusUnauthorized, Envelope{
		Code:    http.StatusUnauthorized,
		Message: "not authenticated",
	})
}
