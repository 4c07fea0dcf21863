package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/inkpass/pkg/authsdk"
	"github.com/aussiebroadwan/inkpass/pkg/httpx"
)

const probeTimeout = 2 * time.Second

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	StartTime time.Time
	Version   string
	Database  Pinger
	Registry  Pinger
}

// HandleLivez godoc
//
//	@Summary		Liveness probe
//	@Description	Always 200 while the process is serving requests
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	authsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func (h *HealthHandler) HandleLivez(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.response("ok", nil))
}

// HandleReadyz godoc
//
//	@Summary		Readiness probe
//	@Description	Pings the user store and the session registry. Without the registry no login can succeed
//	@Description	and no token can be accepted, so either failing makes the service not ready.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	authsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	authsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func (h *HealthHandler) HandleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	checks := &authsdk.HealthChecks{
		Database: probe(ctx, h.Database),
		Registry: probe(ctx, h.Registry),
	}

	if checks.Database != "ok" || checks.Registry != "ok" {
		httpx.WriteJSON(w, http.StatusServiceUnavailable, h.response("degraded", checks))
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.response("ok", checks))
}

func (h *HealthHandler) response(status string, checks *authsdk.HealthChecks) authsdk.HealthResponse {
	return authsdk.HealthResponse{
		Status:  status,
		Uptime:  time.Since(h.StartTime).Truncate(time.Second).String(),
		Version: h.Version,
		Checks:  checks,
	}
}

func probe(ctx context.Context, p Pinger) string {
	if err := p.Ping(ctx); err != nil {
		return "error: " + err.Error()
	}
	return "ok"
}
