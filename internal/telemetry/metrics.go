// Package telemetry holds the Prometheus metrics, OpenTelemetry tracing and
// instrumented HTTP client used by the server.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

// Metrics holds the Prometheus collectors for tool and prompt calls. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	toolCalls    *prometheus.CounterVec
	toolDuration *prometheus.HistogramVec
	promptCalls  *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates the collectors on a private registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		toolCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "usegrant_mcp_tool_calls_total",
				Help: "Total number of tool calls by tool and status",
			},
			[]string{"tool", "status"},
		),
		toolDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "usegrant_mcp_tool_duration_seconds",
				Help:    "Tool call latency in seconds, including the UseGrant API round trip",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"tool"},
		),
		promptCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "usegrant_mcp_prompt_calls_total",
				Help: "Total number of prompt requests by prompt and status",
			},
			[]string{"prompt", "status"},
		),
		registry: registry,
	}

	registry.MustRegister(
		m.toolCalls,
		m.toolDuration,
		m.promptCalls,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveTool records one tool call.
func (m *Metrics) ObserveTool(tool string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.toolCalls.WithLabelValues(tool, status(err)).Inc()
	m.toolDuration.WithLabelValues(tool).Observe(duration.Seconds())
}

// ObservePrompt records one prompt request.
func (m *Metrics) ObservePrompt(prompt string, err error) {
	if m == nil {
		return
	}
	m.promptCalls.WithLabelValues(prompt, status(err)).Inc()
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func status(err error) string {
	if err != nil {
		return statusError
	}
	return statusOK
}
