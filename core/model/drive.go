package model

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// RawDrive is one contiguous driving interval as reported by the upstream
// vehicle-data source. Records are immutable inputs; all derived entities are
// built fresh from a RawDrive list on every analysis call.
type RawDrive struct {
	ID              int64   `json:"id"`
	StartedAt       int64   `json:"started_at"` // Unix seconds
	EndedAt         int64   `json:"ended_at"`   // Unix seconds
	DistanceMi      float64 `json:"distance_mi"`
	StartingBattery float64 `json:"starting_battery"` // percent
	EndingBattery   float64 `json:"ending_battery"`   // percent
	StartLocation   string  `json:"start_location"`   // free-text label, not normalized
	EndLocation     string  `json:"end_location"`
	AvgSpeedMph     float64 `json:"avg_speed_mph"`
	MaxSpeedMph     float64 `json:"max_speed_mph"`
}

// StartTime returns the drive start as a time.Time in UTC.
func (d RawDrive) StartTime() time.Time { return time.Unix(d.StartedAt, 0).UTC() }

// EndTime returns the drive end as a time.Time in UTC.
func (d RawDrive) EndTime() time.Time { return time.Unix(d.EndedAt, 0).UTC() }

// DurationMin returns the drive duration in minutes.
func (d RawDrive) DurationMin() float64 {
	return float64(d.EndedAt-d.StartedAt) / 60
}

// BatteryUsed returns the battery percentage consumed during the drive.
// A single drive never charges mid-trip, so negative deltas are clamped.
func (d RawDrive) BatteryUsed() float64 {
	used := d.StartingBattery - d.EndingBattery
	if used < 0 {
		return 0
	}
	return used
}

// SortedByStart returns a copy of drives ordered by start time. Every analysis
// pass sorts before processing so output ordering is deterministic.
func SortedByStart(drives []RawDrive) []RawDrive {
	out := make([]RawDrive, len(drives))
	copy(out, drives)
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt < out[j].StartedAt })
	return out
}

// ValidationError describes a malformed record rejected at the ingestion
// boundary.
type ValidationError struct {
	Index  int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("drive %d: field %s: %s", e.Index, e.Field, e.Reason)
}

// ValidateDrives checks every record for malformed values and returns a
// *ValidationError naming the first offending record. Analyzers assume
// validated input; callers should fail fast here rather than let NaN or
// Infinity propagate through the aggregations.
func ValidateDrives(drives []RawDrive) error {
	for i, d := range drives {
		if d.EndedAt < d.StartedAt {
			return &ValidationError{Index: i, Field: "ended_at", Reason: "ends before it starts"}
		}
		if !isFiniteNonNegative(d.DistanceMi) {
			return &ValidationError{Index: i, Field: "distance_mi", Reason: "not a finite non-negative number"}
		}
		if !isFiniteNonNegative(d.AvgSpeedMph) {
			return &ValidationError{Index: i, Field: "avg_speed_mph", Reason: "not a finite non-negative number"}
		}
		if !isFiniteNonNegative(d.MaxSpeedMph) {
			return &ValidationError{Index: i, Field: "max_speed_mph", Reason: "not a finite non-negative number"}
		}
		if !isPercent(d.StartingBattery) {
			return &ValidationError{Index: i, Field: "starting_battery", Reason: "outside [0,100]"}
		}
		if !isPercent(d.EndingBattery) {
			return &ValidationError{Index: i, Field: "ending_battery", Reason: "outside [0,100]"}
		}
	}
	return nil
}

func isFiniteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func isPercent(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0 && v <= 100
}
