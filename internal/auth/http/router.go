package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/inkpass/internal/auth/metrics"
	"github.com/aussiebroadwan/inkpass/internal/auth/service"
	"github.com/aussiebroadwan/inkpass/pkg/httpx"
	"github.com/aussiebroadwan/inkpass/pkg/slogx"

	_ "github.com/aussiebroadwan/inkpass/api/auth" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Pinger is anything /readyz can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	database Pinger
	registry Pinger
	metrics  *metrics.Metrics

	SessionService *service.SessionService
}

// NewRouter wires the global middleware chain: request logging, CORS, then
// the authentication pipeline, which attaches a principal when the bearer
// token is live and otherwise lets the request through anonymously.
func NewRouter(
	sessions *service.SessionService,
	database, registry Pinger,
	m *metrics.Metrics,
	corsOrigins []string,
	buildVersion string,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:            http.NewServeMux(),
		buildVersion:   buildVersion,
		startTime:      time.Now(),
		logger:         logger,
		database:       database,
		registry:       registry,
		metrics:        m,
		SessionService: sessions,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(corsOrigins),
		httpx.AuthnMiddleware(sessions),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Inkpass Authentication Service API
//	@version		0.1.0
//	@description	Username/password login for the blog admin. Each user has at most one active session:
//	@description	logging in again invalidates the previous token.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/inkpass
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{Sessions: r.SessionService}

	r.Mux.Handle("POST /auth/login", http.HandlerFunc(h.HandleLogin))

	r.Mux.Handle("POST /auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RequireAuthenticated(),
		),
	)
	r.Mux.Handle("GET /auth/current",
		httpx.Chain(http.HandlerFunc(h.HandleCurrent),
			httpx.RequireAuthenticated(),
		),
	)
}

func (r *Router) registerSystem() {
	health := &HealthHandler{
		StartTime: r.startTime,
		Version:   r.buildVersion,
		Database:  r.database,
		Registry:  r.registry,
	}
	r.Mux.Handle("GET /livez", http.HandlerFunc(health.HandleLivez))
	r.Mux.Handle("GET /readyz", http.HandlerFunc(health.HandleReadyz))

	if r.metrics != nil {
		r.Mux.Handle("GET /metrics", r.metrics.Handler())
	}
}
