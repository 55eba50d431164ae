package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	screenings *prometheus.CounterVec
	errors     *prometheus.CounterVec
	resultRows *prometheus.HistogramVec
	latency    *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		screenings: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "screener_screenings_total",
				Help: "Total number of completed screenings",
			},
			[]string{"provider", "config"},
		),
		errors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "screener_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		resultRows: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "screener_result_rows",
				Help:    "Number of rows returned per screening",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
			},
			[]string{"provider", "config"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "screener_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordScreening records a completed screening run.
func (r *Recorder) RecordScreening(provider, config string) {
	r.screenings.WithLabelValues(provider, config).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errors.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordResultRows records the result set size of a screening.
func (r *Recorder) RecordResultRows(provider, config string, n int) {
	r.resultRows.WithLabelValues(provider, config).Observe(float64(n))
}
