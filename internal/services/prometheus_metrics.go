package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics. Unknown names are ignored.
const (
	MetricRoundupCalculated    = "roundup.calculated"
	MetricRoundupBatch         = "roundup.batch"
	MetricRoundupAmount        = "roundup.amount"
	MetricPlaidRequest         = "plaid.request"
	MetricBalanceCache         = "balance_cache"
	MetricCircuitBreakerOpen   = "circuit_breaker.open"
	MetricCircuitBreakerClosed = "circuit_breaker.closed"
	MetricAuthenticationEvent  = "authentication_event"
	MetricWebhookReceived      = "plaid.webhook"
)

type PrometheusMetrics struct {
	roundupsTotal             *prometheus.CounterVec
	roundupAmount             prometheus.Histogram
	batchDuration             prometheus.Histogram
	batchesTotal              *prometheus.CounterVec
	plaidRequestsTotal        *prometheus.CounterVec
	plaidRequestDuration      prometheus.Histogram
	balanceCacheTotal         *prometheus.CounterVec
	webhooksTotal             *prometheus.CounterVec
	circuitBreakerState       *prometheus.GaugeVec
	authenticationEventsTotal *prometheus.CounterVec
}

// NewPrometheusMetrics registers the service collectors with reg. main passes
// prometheus.DefaultRegisterer; tests pass a fresh registry.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		roundupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "roundup_calculations_total",
				Help: "Total number of persisted roundup calculations",
			},
			[]string{"rounding_rule", "source"},
		),
		roundupAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "roundup_amount",
				Help:    "Roundup amount in currency units",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 5, 10, 50, 100},
			},
		),
		batchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "roundup_batch_duration_milliseconds",
				Help:    "Batch roundup processing duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		batchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "roundup_batches_total",
				Help: "Total number of batch roundup requests",
			},
			[]string{"status"},
		),
		plaidRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plaid_requests_total",
				Help: "Total number of bank-data provider calls",
			},
			[]string{"operation", "status"},
		),
		plaidRequestDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "plaid_request_duration_seconds",
				Help:    "Bank-data provider call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		balanceCacheTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "balance_cache_lookups_total",
				Help: "Balance cache lookups by result",
			},
			[]string{"result"},
		),
		webhooksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plaid_webhooks_total",
				Help: "Total number of provider webhooks received",
			},
			[]string{"webhook_type", "webhook_code"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricRoundupCalculated:
		m.roundupsTotal.WithLabelValues(tags["rounding_rule"], tags["source"]).Inc()
	case MetricRoundupBatch:
		m.batchesTotal.WithLabelValues(tags["status"]).Inc()
	case MetricPlaidRequest:
		m.plaidRequestsTotal.WithLabelValues(tags["operation"], tags["status"]).Inc()
	case MetricBalanceCache:
		if result := tags["result"]; result != "" {
			m.balanceCacheTotal.WithLabelValues(result).Inc()
		}
	case MetricWebhookReceived:
		m.webhooksTotal.WithLabelValues(tags["webhook_type"], tags["webhook_code"]).Inc()
	case MetricCircuitBreakerOpen:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(float64(StateOpen))
	case MetricCircuitBreakerClosed:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(float64(StateClosed))
	case MetricAuthenticationEvent:
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricRoundupBatch:
		m.batchDuration.Observe(float64(duration.Milliseconds()))
	case MetricPlaidRequest:
		m.plaidRequestDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricRoundupAmount:
		m.roundupAmount.Observe(value)
	case "circuit_breaker.state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}
