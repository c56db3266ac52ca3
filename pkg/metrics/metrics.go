package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for price calculations
const (
	OutcomeSuccess          = "success"
	OutcomeNotFound         = "not_found"
	OutcomeMalformedValue   = "malformed_value"
	OutcomeInvalidInput     = "invalid_input"
	OutcomeStoreUnavailable = "store_unavailable"
	OutcomeAuditFailed      = "audit_write_failed"
)

// Metrics holds the collectors exported on /metrics
type Metrics struct {
	registry *prometheus.Registry

	Calculations        *prometheus.CounterVec
	AuditWriteFailures  prometheus.Counter
	CalculationDuration prometheus.Histogram
	HTTPRequests        *prometheus.HistogramVec
	BulkUploadRows      *prometheus.CounterVec
}

// New registers all collectors on a fresh registry
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		Calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_calculations_total",
			Help:      "Price calculations by outcome.",
		}, []string{"outcome"}),
		AuditWriteFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pricing_audit_write_failures_total",
			Help:      "Calculations rejected because the audit record could not be stored.",
		}),
		CalculationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "price_calculation_duration_seconds",
			Help:      "End to end duration of a price calculation including store access.",
			Buckets:   prometheus.DefBuckets,
		}),
		HTTPRequests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route, method and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		BulkUploadRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bulk_upload_rows_total",
			Help:      "Bulk price upload rows by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Calculations,
		m.AuditWriteFailures,
		m.CalculationDuration,
		m.HTTPRequests,
		m.BulkUploadRows,
	)

	return m
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveCalculation records one calculation with its outcome
func (m *Metrics) ObserveCalculation(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.Calculations.WithLabelValues(outcome).Inc()
	m.CalculationDuration.Observe(seconds)
	if outcome == OutcomeAuditFailed {
		m.AuditWriteFailures.Inc()
	}
}

// ObserveBulkRows adds the per-result row counts of one upload
func (m *Metrics) ObserveBulkRows(updated, failed int) {
	if m == nil {
		return
	}
	m.BulkUploadRows.WithLabelValues("updated").Add(float64(updated))
	m.BulkUploadRows.WithLabelValues("failed").Add(float64(failed))
}
