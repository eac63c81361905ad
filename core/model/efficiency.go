package model

// WeatherTag is a coarse weather proxy inferred from the consumption rate
// itself; the engine has no external weather input.
type WeatherTag string

const (
	WeatherCold WeatherTag = "cold"
	WeatherHot  WeatherTag = "hot"
	WeatherMild WeatherTag = "mild"
)

// TrendDirection reports how consumption moved between two windows.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

// Confidence grades a trend comparison by sample size.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// EfficiencyDataPoint is one raw drive reduced to a normalized consumption
// rate. Points outside the plausible range are discarded as sensor noise.
type EfficiencyDataPoint struct {
	DriveID     int64      `json:"drive_id"`
	StartedAt   int64      `json:"started_at"`
	KWhPer100Mi float64    `json:"kwh_per_100mi"`
	HighwayPct  float64    `json:"highway_pct"`
	Weather     WeatherTag `json:"weather"`
	DistanceMi  float64    `json:"distance_mi"`
}

// TrendWindow compares the most recent window of a given size against the
// immediately preceding window of equal length.
type TrendWindow struct {
	Days           int            `json:"days"`
	Direction      TrendDirection `json:"direction"`
	Confidence     Confidence     `json:"confidence"`
	CurrentMean    float64        `json:"current_mean"`
	PreviousMean   float64        `json:"previous_mean"`
	ChangePct      float64        `json:"change_pct"`
	CurrentPoints  int            `json:"current_points"`
	PreviousPoints int            `json:"previous_points"`
}

// PeriodSummary describes the consumption distribution over all usable points.
type PeriodSummary struct {
	MeanKWhPer100Mi  float64 `json:"mean_kwh_per_100mi"`
	BestKWhPer100Mi  float64 `json:"best_kwh_per_100mi"`
	WorstKWhPer100Mi float64 `json:"worst_kwh_per_100mi"`
	StdDev           float64 `json:"std_dev"`
	TotalMiles       float64 `json:"total_miles"`
	Drives           int     `json:"drives"`
}

// DayStat is the mean consumption for one day of the week.
type DayStat struct {
	Day             string  `json:"day"`
	MeanKWhPer100Mi float64 `json:"mean_kwh_per_100mi"`
	Drives          int     `json:"drives"`
}

// HourStat is the mean consumption for one hour-of-day bucket.
type HourStat struct {
	Hour            int     `json:"hour"`
	MeanKWhPer100Mi float64 `json:"mean_kwh_per_100mi"`
	Drives          int     `json:"drives"`
}

// FactorBreakdown decomposes consumption into weather, speed regime and
// time-of-week contributions.
type FactorBreakdown struct {
	WeatherMeans      map[WeatherTag]float64 `json:"weather_means"`
	WeatherPenaltyPct float64                `json:"weather_penalty_pct"`
	HighwayMean       float64                `json:"highway_mean"`
	CityMean          float64                `json:"city_mean"`
	HighwayCityDelta  float64                `json:"highway_city_delta"`
	DayStats          []DayStat              `json:"day_stats"`
	BestDay           DayStat                `json:"best_day"`
	WorstDay          DayStat                `json:"worst_day"`
	BestHour          *HourStat              `json:"best_hour,omitempty"`
}

// EfficiencyAnalysis is the full trend report. When the input has fewer
// records than the stated minimum, Sufficient is false and Reason carries a
// human-readable explanation instead of an error.
type EfficiencyAnalysis struct {
	Sufficient      bool                  `json:"sufficient"`
	Reason          string                `json:"reason,omitempty"`
	Current         PeriodSummary         `json:"current"`
	Points          []EfficiencyDataPoint `json:"points,omitempty"`
	Trends          []TrendWindow         `json:"trends"`
	Factors         FactorBreakdown       `json:"factors"`
	Insights        []string              `json:"insights"`
	Recommendations []string              `json:"recommendations"`
}
