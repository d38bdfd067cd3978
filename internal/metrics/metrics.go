// Package metrics exposes session and catalog activity as Prometheus metrics.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/partscope/partscope/partscope"
)

var _ partscope.Recorder = (*Recorder)(nil)

// Recorder implements partscope.Recorder and records catalog loads.
type Recorder struct {
	filterRuns      prometheus.Counter
	filterDuration  prometheus.Histogram
	filterMatched   prometheus.Gauge
	catalogSize     prometheus.Gauge
	transitions     *prometheus.CounterVec
	selectionSize   prometheus.Gauge
	catalogLoads    *prometheus.CounterVec
	catalogLoadTime *prometheus.HistogramVec
}

// New registers the partscope metrics with reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		filterRuns: f.NewCounter(prometheus.CounterOpts{
			Name: "partscope_filter_runs_total",
			Help: "Total number of filter passes over the catalog",
		}),
		filterDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "partscope_filter_duration_seconds",
			Help:    "Time taken by a filter pass",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		filterMatched: f.NewGauge(prometheus.GaugeOpts{
			Name: "partscope_filter_matched_records",
			Help: "Records matched by the most recent filter pass",
		}),
		catalogSize: f.NewGauge(prometheus.GaugeOpts{
			Name: "partscope_catalog_records",
			Help: "Records in the catalog seen by the most recent filter pass",
		}),
		transitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "partscope_session_transitions_total",
			Help: "Filter state transitions by kind",
		}, []string{"transition"}),
		selectionSize: f.NewGauge(prometheus.GaugeOpts{
			Name: "partscope_selection_size",
			Help: "Number of selected records",
		}),
		catalogLoads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "partscope_catalog_loads_total",
			Help: "Catalog loads by backend and status",
		}, []string{"backend", "status"}),
		catalogLoadTime: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "partscope_catalog_load_duration_seconds",
			Help:    "Time taken to load the catalog",
			Buckets: prometheus.DefBuckets,
		}, []string{"backend"}),
	}
}

func (r *Recorder) ObserveFilter(total, matched int, duration time.Duration) {
	r.filterRuns.Inc()
	r.filterDuration.Observe(duration.Seconds())
	r.filterMatched.Set(float64(matched))
	r.catalogSize.Set(float64(total))
}

func (r *Recorder) ObserveTransition(transition string) {
	r.transitions.WithLabelValues(transition).Inc()
}

func (r *Recorder) ObserveSelection(size int) {
	r.selectionSize.Set(float64(size))
}

// ObserveCatalogLoad records one catalog load attempt.
func (r *Recorder) ObserveCatalogLoad(backend string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.catalogLoads.WithLabelValues(backend, status).Inc()
	r.catalogLoadTime.WithLabelValues(backend).Observe(duration.Seconds())
}

// WriteText writes every gathered metric family in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
