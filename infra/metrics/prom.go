package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/drivesight/drivesight/core/metrics"
)

// PromSink records analysis runs in Prometheus metrics.
type PromSink struct {
	runs     *prometheus.CounterVec
	drives   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewPromSink registers analysis metrics on the default Prometheus registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Collectors
// that are already registered are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_runs_total",
		Help: "Total number of analyzer runs",
	}, []string{"analysis"})
	drives := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_drives_total",
		Help: "Total number of raw drives processed",
	}, []string{"analysis"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "analysis_duration_seconds",
		Help:    "Time spent per analyzer run",
		Buckets: prometheus.DefBuckets,
	}, []string{"analysis"})

	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(drives); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			drives = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{runs: runs, drives: drives, duration: duration}, nil
}

// RecordAnalysis increments the counters and observes the run duration.
func (s *PromSink) RecordAnalysis(evs []coremetrics.AnalysisEvent) error {
	for _, ev := range evs {
		s.runs.WithLabelValues(ev.Analysis).Inc()
		s.drives.WithLabelValues(ev.Analysis).Add(float64(ev.Drives))
		s.duration.WithLabelValues(ev.Analysis).Observe(ev.Duration.Seconds())
	}
	return nil
}
