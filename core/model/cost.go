package model

// TripCostAnalysis aggregates a drive set into a cost and emissions report
// with a hypothetical gas-vehicle comparison. Zero input drives yields an
// all-zero result with an explanatory Message, not an error.
type TripCostAnalysis struct {
	Drives                int     `json:"drives"`
	TotalDistanceMi       float64 `json:"total_distance_mi"`
	TotalDurationMin      float64 `json:"total_duration_min"`
	TotalBatteryUsedPct   float64 `json:"total_battery_used_pct"`
	TotalEnergyKWh        float64 `json:"total_energy_kwh"`
	HomeEnergyKWh         float64 `json:"home_energy_kwh"`
	SuperchargerEnergyKWh float64 `json:"supercharger_energy_kwh"`
	HomeCostUSD           float64 `json:"home_cost_usd"`
	SuperchargerCostUSD   float64 `json:"supercharger_cost_usd"`
	TotalCostUSD          float64 `json:"total_cost_usd"`
	CostPerMileUSD        float64 `json:"cost_per_mile_usd"`
	GasGallons            float64 `json:"gas_gallons"`
	GasCostUSD            float64 `json:"gas_cost_usd"`
	SavingsVsGasUSD       float64 `json:"savings_vs_gas_usd"`
	EVCO2Lb               float64 `json:"ev_co2_lb"`
	GasCO2Lb              float64 `json:"gas_co2_lb"`
	CO2SavedLb            float64 `json:"co2_saved_lb"`
	TreeYearsEquivalent   float64 `json:"tree_years_equivalent"`
	Message               string  `json:"message,omitempty"`
}

// Charging plan identifiers for FutureTripEstimate.
const (
	PlanNone                = "none"
	PlanHomeOnly            = "home_only"
	PlanHomeAndSupercharger = "home_and_supercharger"
)

// FutureTripEstimate projects a hypothetical trip into a required-charge
// percentage and a charging plan.
type FutureTripEstimate struct {
	DistanceMi            float64 `json:"distance_mi"`
	CurrentChargePct      float64 `json:"current_charge_pct"`
	RequiredChargePct     float64 `json:"required_charge_pct"` // includes safety buffer
	ChargeDeficitPct      float64 `json:"charge_deficit_pct"`
	EnergyRequiredKWh     float64 `json:"energy_required_kwh"`
	ChargingNeeded        bool    `json:"charging_needed"`
	ChargingStopsNeeded   int     `json:"charging_stops_needed"`
	Plan                  string  `json:"plan"`
	HomeChargePct         float64 `json:"home_charge_pct"`
	SuperchargerChargePct float64 `json:"supercharger_charge_pct"`
	EstimatedCostUSD      float64 `json:"estimated_cost_usd"`
	Notes                 string  `json:"notes,omitempty"`
}
