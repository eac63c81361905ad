// Package metrics defines the interfaces for recording analyzer runs. Sinks
// like the Prometheus and InfluxDB adapters in infra/metrics record how many
// drives were analyzed and how long each pass took, and can be combined with
// NewMultiSink. The factory helpers return a MultiSink automatically when
// multiple sinks are configured.
package metrics
