package httpx

import (
	"net/http"
	"slices"

	"github.com/rs/cors"
)

// CORS allows browser clients on the listed origins to call the API with
// credentials. "*" allows any origin; the request origin is echoed back, which
// is what browsers require when credentials are allowed.
func CORS(allowedOrigins []string) Middleware {
	allowAll := len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*")

	c := cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return allowAll || slices.Contains(allowedOrigins, origin)
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           3600,
	})
	return c.Handler
}
