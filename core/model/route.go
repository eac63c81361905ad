package model

// RouteTimeBucket counts drives falling into one time-of-day class.
type RouteTimeBucket struct {
	Count          int    `json:"count"`
	MeanStartClock string `json:"mean_start_clock,omitempty"` // "07:42"
}

// TimeOfDayProfile distributes a route's drives across commute windows.
type TimeOfDayProfile struct {
	MorningCommute RouteTimeBucket `json:"morning_commute"`
	EveningCommute RouteTimeBucket `json:"evening_commute"`
	Weekend        RouteTimeBucket `json:"weekend"`
}

// Route is a cluster of drives sharing a normalized origin/destination pair,
// retained only when it recurs often enough. Routes are session-scoped and
// never persisted.
type Route struct {
	Key                string           `json:"key"`
	Name               string           `json:"name"`
	Drives             int              `json:"drives"`
	TypicalDistanceMi  float64          `json:"typical_distance_mi"`
	TypicalDurationMin float64          `json:"typical_duration_min"`
	MeanKWhPer100Mi    float64          `json:"mean_kwh_per_100mi"`
	BestKWhPer100Mi    float64          `json:"best_kwh_per_100mi"`
	WorstKWhPer100Mi   float64          `json:"worst_kwh_per_100mi"`
	WeeklyFrequency    float64          `json:"weekly_frequency"`
	Trend              TrendDirection   `json:"trend"`
	TimeOfDay          TimeOfDayProfile `json:"time_of_day"`
	FirstDrive         int64            `json:"first_drive"`
	LastDrive          int64            `json:"last_drive"`
}

// WeeklySummary aggregates all drives, clustered or not, by day of week.
type WeeklySummary struct {
	Days     []DayStat `json:"days"`
	BestDay  DayStat   `json:"best_day"`
	WorstDay DayStat   `json:"worst_day"`
}

// CommuteAnalysis is the recurring-route report. Insufficient input yields a
// structured result with Sufficient=false rather than an error.
type CommuteAnalysis struct {
	Sufficient      bool          `json:"sufficient"`
	Reason          string        `json:"reason,omitempty"`
	TotalDrives     int           `json:"total_drives"`
	ClusteredDrives int           `json:"clustered_drives"`
	Routes          []Route       `json:"routes"`
	Weekly          WeeklySummary `json:"weekly"`
	Recommendations []string      `json:"recommendations"`
}
