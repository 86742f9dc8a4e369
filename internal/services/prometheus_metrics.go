package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	transactionsParsed prometheus.Counter
	parseFailures      *prometheus.CounterVec
	lastStatement      *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the client metrics on reg. Pass
// prometheus.DefaultRegisterer to expose them on the default registry.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fio_requests_total",
				Help: "Total number of requests sent to the bank API",
			},
			[]string{"endpoint", "outcome"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fio_request_duration_seconds",
				Help:    "Bank API request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		transactionsParsed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "fio_transactions_parsed_total",
				Help: "Total number of transactions decoded from JSON reports",
			},
		),
		parseFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fio_parse_failures_total",
				Help: "Total number of responses that could not be decoded",
			},
			[]string{"target"},
		),
		lastStatement: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fio_last_statement",
				Help: "Year and id of the newest account statement",
			},
			[]string{"field"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	m.AddCounter(name, 1, tags)
}

func (m *PrometheusMetrics) AddCounter(name string, value float64, tags map[string]string) {
	switch name {
	case MetricRequest:
		m.requestsTotal.WithLabelValues(tags["endpoint"], tags["outcome"]).Add(value)
	case MetricTransactionsParsed:
		m.transactionsParsed.Add(value)
	case MetricParseFailed:
		if target := tags["target"]; target != "" {
			m.parseFailures.WithLabelValues(target).Add(value)
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration, tags map[string]string) {
	switch name {
	case MetricRequest:
		m.requestDuration.WithLabelValues(tags["endpoint"]).Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricLastStatement:
		if field := tags["field"]; field != "" {
			m.lastStatement.WithLabelValues(field).Set(value)
		}
	}
}

// NoopMetrics discards everything
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(string, map[string]string)                    {}
func (NoopMetrics) AddCounter(string, float64, map[string]string)                 {}
func (NoopMetrics) RecordProcessingTime(string, time.Duration, map[string]string) {}
func (NoopMetrics) RecordGauge(string, float64, map[string]string)                {}
