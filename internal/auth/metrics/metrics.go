// Package metrics exposes Prometheus counters for login, logout and
// per-request authentication decisions.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Login outcomes.
const (
	LoginSuccess        = "success"
	LoginBadCredentials = "bad_credentials"
	LoginDisabled       = "disabled"
	LoginError          = "error"
)

// Authentication decision outcomes.
const (
	DecisionAuthenticated     = "authenticated"
	DecisionTokenInvalid      = "token_invalid"
	DecisionSessionSuperseded = "session_superseded"
	DecisionRegistryError     = "registry_error"
)

// Metrics holds the service counters. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	LoginsTotal    *prometheus.CounterVec
	LogoutsTotal   prometheus.Counter
	DecisionsTotal *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New creates the counters and registers them, plus the Go and process
// collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg, reg)
}

// NewWithRegistry registers the counters on reg and serves them from g.
func NewWithRegistry(reg prometheus.Registerer, g prometheus.Gatherer) *Metrics {
	m := &Metrics{
		LoginsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inkpass_auth_logins_total",
				Help: "Total number of login attempts by result",
			},
			[]string{"result"},
		),
		LogoutsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "inkpass_auth_logouts_total",
				Help: "Total number of logouts",
			},
		),
		DecisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inkpass_auth_decisions_total",
				Help: "Total number of bearer token authentication decisions by result",
			},
			[]string{"result"},
		),
		gatherer: g,
	}

	reg.MustRegister(m.LoginsTotal, m.LogoutsTotal, m.DecisionsTotal)
	return m
}

func (m *Metrics) RecordLogin(result string) {
	if m == nil {
		return
	}
	m.LoginsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordLogout() {
	if m == nil {
		return
	}
	m.LogoutsTotal.Inc()
}

func (m *Metrics) RecordDecision(result string) {
	if m == nil {
		return
	}
	m.DecisionsTotal.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
