// Package metrics exposes Prometheus counters for authorization and audit.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Audit event results.
const (
	AuditEnqueued = "enqueued"
	AuditWritten  = "written"
	AuditRetried  = "retried"
	AuditDropped  = "dropped"
	AuditFailed   = "failed"
)

// Metrics holds the service's collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry      *prometheus.Registry
	auditEvents   *prometheus.CounterVec
	guardDenials  *prometheus.CounterVec
	aiWeighted    *prometheus.CounterVec
	impersonation *prometheus.CounterVec
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		auditEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "braik",
			Name:      "audit_events_total",
			Help:      "Audit log events by outcome.",
		}, []string{"result"}),
		guardDenials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "braik",
			Name:      "team_guard_denials_total",
			Help:      "Team operation guard denials by error code.",
		}, []string{"code"}),
		aiWeighted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "braik",
			Name:      "ai_weighted_tokens_total",
			Help:      "Weighted AI tokens recorded by role.",
		}, []string{"role"}),
		impersonation: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "braik",
			Name:      "impersonation_sessions_total",
			Help:      "Impersonation session transitions.",
		}, []string{"event"}),
	}

	reg.MustRegister(
		m.auditEvents,
		m.guardDenials,
		m.aiWeighted,
		m.impersonation,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// AuditEvent counts one audit event outcome.
func (m *Metrics) AuditEvent(result string) {
	if m == nil {
		return
	}
	m.auditEvents.WithLabelValues(result).Inc()
}

// GuardDenied counts a team operation guard denial.
func (m *Metrics) GuardDenied(code string) {
	if m == nil {
		return
	}
	m.guardDenials.WithLabelValues(code).Inc()
}

// AIUsageRecorded adds weighted tokens for a role.
func (m *Metrics) AIUsageRecorded(role string, weighted int64) {
	if m == nil || weighted <= 0 {
		return
	}
	m.aiWeighted.WithLabelValues(role).Add(float64(weighted))
}

// ImpersonationEvent counts start/end/expired transitions.
func (m *Metrics) ImpersonationEvent(event string) {
	if m == nil {
		return
	}
	m.impersonation.WithLabelValues(event).Inc()
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
