package model

// LocationType classifies where a charging session took place.
type LocationType string

const (
	LocationHome         LocationType = "home"
	LocationWork         LocationType = "work"
	LocationSupercharger LocationType = "supercharger"
	LocationPublic       LocationType = "public"
	LocationUnknown      LocationType = "unknown"
)

// ChargingSession is one inferred charging event between two raw drives where
// the battery level rose above the detection threshold. Invariant:
// EndingBattery > StartingBattery.
type ChargingSession struct {
	ID              string       `json:"id"`
	StartedAt       int64        `json:"started_at"`
	EndedAt         int64        `json:"ended_at"`
	DurationMin     float64      `json:"duration_min"`
	Location        string       `json:"location"`
	Type            LocationType `json:"type"`
	StartingBattery float64      `json:"starting_battery"`
	EndingBattery   float64      `json:"ending_battery"`
	BatteryGain     float64      `json:"battery_gain"` // percent points
	EnergyAddedKWh  float64      `json:"energy_added_kwh"`
	CostUSD         float64      `json:"cost_usd"`
	MilesRestored   float64      `json:"miles_restored"`
	AvgChargeRateKW float64      `json:"avg_charge_rate_kw"`
}

// LocationCostSummary aggregates sessions of one location type.
type LocationCostSummary struct {
	Sessions  int     `json:"sessions"`
	EnergyKWh float64 `json:"energy_kwh"`
	CostUSD   float64 `json:"cost_usd"`
	PctOfCost float64 `json:"pct_of_cost"`
}

// ChargingAnalysis is the cost attribution report over a set of sessions.
// Zero sessions yields a well-formed zeroed analysis with a "no sessions"
// recommendation, not an error.
type ChargingAnalysis struct {
	TotalSessions       int                                  `json:"total_sessions"`
	TotalEnergyKWh      float64                              `json:"total_energy_kwh"`
	TotalCostUSD        float64                              `json:"total_cost_usd"`
	TotalMilesRestored  float64                              `json:"total_miles_restored"`
	AvgCostPerKWh       float64                              `json:"avg_cost_per_kwh"`
	ByLocation          map[LocationType]LocationCostSummary `json:"by_location"`
	Recommendations     []string                             `json:"recommendations"`
	PotentialSavingsUSD float64                              `json:"potential_savings_usd"`
}
