package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "trellogo"

// Metrics contains the Prometheus collectors for Trello API traffic and
// incoming webhook callbacks. All methods are safe on a nil receiver so the
// client can record unconditionally.
type Metrics struct {
	// Outgoing API.
	APIRequestsTotal    *prometheus.CounterVec
	APIRequestDuration  *prometheus.HistogramVec
	APIErrorsTotal      *prometheus.CounterVec
	APIRateLimitedTotal prometheus.Counter

	// Webhooks.
	WebhooksReceivedTotal *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
// A nil reg registers with the default Prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		APIRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_requests_total",
				Help:      "Total number of Trello API request attempts",
			},
			[]string{"method", "status"},
		),
		APIRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_request_duration_seconds",
				Help:      "Trello API request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		APIErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_errors_total",
				Help:      "Total number of failed Trello API calls by kind",
			},
			[]string{"kind"},
		),
		APIRateLimitedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_rate_limited_total",
				Help:      "Total number of 429 responses received from Trello",
			},
		),
		WebhooksReceivedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "webhooks_received_total",
				Help:      "Total number of webhook callbacks by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// ObserveRequest records one attempt. status 0 means no response was received.
func (m *Metrics) ObserveRequest(method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	label := "none"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.APIRequestsTotal.WithLabelValues(method, label).Inc()
	m.APIRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// IncRateLimited counts a 429 response.
func (m *Metrics) IncRateLimited() {
	if m == nil {
		return
	}
	m.APIRateLimitedTotal.Inc()
}

// IncError counts a failed call; kind is one of transport, server or rate_limit.
func (m *Metrics) IncError(kind string) {
	if m == nil {
		return
	}
	m.APIErrorsTotal.WithLabelValues(kind).Inc()
}

// IncWebhook counts a webhook callback by outcome.
func (m *Metrics) IncWebhook(outcome string) {
	if m == nil {
		return
	}
	m.WebhooksReceivedTotal.WithLabelValues(outcome).Inc()
}
