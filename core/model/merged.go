package model

// StopKind classifies the gap between two raw drives inside a journey.
type StopKind string

const (
	// StopCharging marks a gap where the battery rose enough to indicate the
	// stop was for charging rather than the end of the trip.
	StopCharging StopKind = "charging"
	// StopShort marks a gap under the merge threshold.
	StopShort StopKind = "short"
	// StopExcluded marks a gap that matched neither rule. It should not occur
	// given the merge rule and is logged for diagnostics.
	StopExcluded StopKind = "excluded"
)

// Stop records one internal gap of a merged drive.
type Stop struct {
	Location     string   `json:"location"`
	StartedAt    int64    `json:"started_at"`
	EndedAt      int64    `json:"ended_at"`
	DurationMin  float64  `json:"duration_min"`
	Kind         StopKind `json:"kind"`
	BatteryDelta float64  `json:"battery_delta"` // percent points gained across the gap
}

// MergedDrive is a continuous journey composed of one or more consecutive raw
// drives separated by short or charging stops. It is built fresh per analysis
// call and immutable once constructed.
type MergedDrive struct {
	ID                 string  `json:"id"`
	DriveIDs           []int64 `json:"drive_ids"`
	StartedAt          int64   `json:"started_at"`
	EndedAt            int64   `json:"ended_at"`
	StartLocation      string  `json:"start_location"`
	EndLocation        string  `json:"end_location"`
	DistanceMi         float64 `json:"distance_mi"`
	DurationMin        float64 `json:"duration_min"`         // wall clock including stops
	DrivingDurationMin float64 `json:"driving_duration_min"` // sum of member drive durations
	BatteryUsed        float64 `json:"battery_used"`         // percent points consumed while driving
	AvgSpeedMph        float64 `json:"avg_speed_mph"`
	MaxSpeedMph        float64 `json:"max_speed_mph"`
	Stops              []Stop  `json:"stops"`

	// PredictedAutopilotMi is a heuristic, non-authoritative estimate of the
	// distance likely driven on autopilot, derived from speed and distance
	// patterns. It is a labeled estimate, not ground truth.
	PredictedAutopilotMi float64 `json:"predicted_autopilot_mi"`
	// AutopilotScore is the [0, 0.9] factor applied to total distance to
	// obtain PredictedAutopilotMi.
	AutopilotScore float64 `json:"autopilot_score"`
}
