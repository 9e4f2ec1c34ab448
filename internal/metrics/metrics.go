// Package metrics provides Prometheus metrics for ytgap.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GatewayRequestsTotal counts model calls by provider and outcome.
	GatewayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ytgap",
			Name:      "gateway_requests_total",
			Help:      "Total number of AI gateway requests",
		},
		[]string{"provider", "status"},
	)

	// GatewayDuration measures model call latency.
	GatewayDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ytgap",
			Name:      "gateway_duration_seconds",
			Help:      "Duration of AI gateway requests in seconds",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
		},
		[]string{"provider"},
	)

	// GatewayTokensTotal counts tokens reported by the provider.
	GatewayTokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ytgap",
			Name:      "gateway_tokens_total",
			Help:      "Total number of tokens exchanged with the AI gateway",
		},
		[]string{"provider", "direction"},
	)

	// APIRequestsTotal counts trends endpoint requests by action and HTTP status.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ytgap",
			Name:      "api_requests_total",
			Help:      "Total number of trends endpoint requests",
		},
		[]string{"action", "status"},
	)
)

// RecordGatewayCall records one completed model call.
func RecordGatewayCall(provider, status string, seconds float64, inputTokens, outputTokens int) {
	GatewayRequestsTotal.WithLabelValues(provider, status).Inc()
	GatewayDuration.WithLabelValues(provider).Observe(seconds)
	if inputTokens > 0 {
		GatewayTokensTotal.WithLabelValues(provider, "input").Add(float64(inputTokens))
	}
	if outputTokens > 0 {
		GatewayTokensTotal.WithLabelValues(provider, "output").Add(float64(outputTokens))
	}
}

// RecordAPIRequest records one trends endpoint response.
func RecordAPIRequest(action string, status int) {
	APIRequestsTotal.WithLabelValues(action, statusClass(status)).Inc()
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	default:
		return "2xx"
	}
}
