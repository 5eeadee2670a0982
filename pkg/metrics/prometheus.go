package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	priceFetches    *prometheus.CounterVec
	lastPrice       *prometheus.GaugeVec
	latency         *prometheus.HistogramVec
	importedRows    *prometheus.CounterVec
	eventsPublished *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		priceFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finapp_price_fetches_total",
				Help: "Total number of market price lookups by outcome",
			},
			[]string{"outcome"},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "finapp_last_price",
				Help: "Last observed market price for a symbol",
			},
			[]string{"symbol"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finapp_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		importedRows: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finapp_import_rows_total",
				Help: "CSV import rows by kind and result",
			},
			[]string{"kind", "result"},
		),
		eventsPublished: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finapp_events_published_total",
				Help: "Ledger events published by topic and result",
			},
			[]string{"topic", "result"},
		),
	}
}

// RecordPriceFetch records one market lookup outcome (ok, defaulted, cached).
func (r *Recorder) RecordPriceFetch(outcome string) {
	r.priceFetches.WithLabelValues(outcome).Inc()
}

// RecordLastPrice records the last price for a symbol.
func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordImport records the per-row results of a CSV import.
func (r *Recorder) RecordImport(kind string, imported, failed int) {
	r.importedRows.WithLabelValues(kind, "imported").Add(float64(imported))
	r.importedRows.WithLabelValues(kind, "failed").Add(float64(failed))
}

// RecordEventPublished records one ledger event publish attempt.
func (r *Recorder) RecordEventPublished(topic string, ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	r.eventsPublished.WithLabelValues(topic, result).Inc()
}
