// Package metrics manages Prometheus metrics for the gateway.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the gateway's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	// ToolCalls counts tool invocations by tool name and outcome.
	ToolCalls *prometheus.CounterVec

	// UsageCents accumulates cents charged per tool.
	UsageCents *prometheus.CounterVec

	// AuthRejections counts requests rejected by the API key middleware.
	AuthRejections *prometheus.CounterVec
}

// New creates the gateway metrics on a dedicated registry.
func New(serviceName string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ToolCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: serviceName + "_tool_calls_total",
				Help: "Total number of tool invocations",
			},
			[]string{"tool", "status"},
		),
		UsageCents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: serviceName + "_usage_cents_total",
				Help: "Total cents charged for tool usage",
			},
			[]string{"tool"},
		),
		AuthRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: serviceName + "_auth_rejections_total",
				Help: "Requests rejected during API key validation",
			},
			[]string{"reason"},
		),
	}

	m.registry.MustRegister(m.ToolCalls, m.UsageCents, m.AuthRejections)
	m.registry.MustRegister(collectors.NewGoCollector())
	m.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

// Handler returns the HTTP handler serving the registry in Prometheus format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
