// Package plugins pulls in the built-in factory registrations. Importing it
// for side effects makes the default metrics sinks available to
// configuration-driven construction; the route keyers register through
// core/commute itself.
package plugins

import (
	// Built-in metrics sinks (prometheus, influx, nop).
	_ "github.com/drivesight/drivesight/infra/metrics"
)
