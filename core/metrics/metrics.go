package metrics

import "time"

// AnalysisEvent describes one analyzer run to be recorded.
type AnalysisEvent struct {
	RunID    string
	Analysis string // trips, charging, efficiency, commute or cost
	Drives   int
	Results  int // journeys, sessions or routes produced
	Duration time.Duration
	Time     time.Time
}

// MetricsSink records analysis runs for observability purposes.
type MetricsSink interface {
	RecordAnalysis(events []AnalysisEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordAnalysis([]AnalysisEvent) error { return nil }

// MultiSink fans analysis events out to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordAnalysis forwards the events to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordAnalysis(evs []AnalysisEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordAnalysis(evs); err != nil {
			return err
		}
	}
	return nil
}
