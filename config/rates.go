package config

import "fmt"

// RatesConfig carries the electricity and fuel rate model. Rates are explicit
// inputs to the analyzers, never globals.
type RatesConfig struct {
	// Per-kWh rates by location type, in USD.
	HomeRate         float64 `json:"home_rate"`
	SuperchargerRate float64 `json:"supercharger_rate"`
	PublicRate       float64 `json:"public_rate"`
	WorkRate         float64 `json:"work_rate"`

	// TimeOfUse enables the peak/off-peak split for home charging.
	TimeOfUse       bool    `json:"time_of_use"`
	HomeOffPeakRate float64 `json:"home_off_peak_rate"`
	HomePeakRate    float64 `json:"home_peak_rate"`
	// Off-peak runs from OffPeakStartHour to OffPeakEndHour and peak from
	// PeakStartHour to PeakEndHour. A window whose start is after its end
	// spans midnight. Defaults 23-07 and 16-21.
	OffPeakStartHour int `json:"off_peak_start_hour"`
	OffPeakEndHour   int `json:"off_peak_end_hour"`
	PeakStartHour    int `json:"peak_start_hour"`
	PeakEndHour      int `json:"peak_end_hour"`

	// Gas comparison inputs.
	GasPriceUSD float64 `json:"gas_price_usd"` // per gallon
	GasMPG      float64 `json:"gas_mpg"`

	// Emission factors.
	GridCO2LbPerKWh  float64 `json:"grid_co2_lb_per_kwh"`
	GasCO2LbPerGal   float64 `json:"gas_co2_lb_per_gal"`
	CO2LbPerTreeYear float64 `json:"co2_lb_per_tree_year"`
}

// SetDefaults applies typical US residential defaults.
func (c *RatesConfig) SetDefaults() {
	if c.HomeRate == 0 {
		c.HomeRate = 0.14
	}
	if c.SuperchargerRate == 0 {
		c.SuperchargerRate = 0.36
	}
	if c.PublicRate == 0 {
		c.PublicRate = 0.30
	}
	if c.HomeOffPeakRate == 0 {
		c.HomeOffPeakRate = 0.10
	}
	if c.HomePeakRate == 0 {
		c.HomePeakRate = 0.28
	}
	if c.OffPeakStartHour == 0 {
		c.OffPeakStartHour = 23
	}
	if c.OffPeakEndHour == 0 {
		c.OffPeakEndHour = 7
	}
	if c.PeakStartHour == 0 {
		c.PeakStartHour = 16
	}
	if c.PeakEndHour == 0 {
		c.PeakEndHour = 21
	}
	if c.GasPriceUSD == 0 {
		c.GasPriceUSD = 3.50
	}
	if c.GasMPG == 0 {
		c.GasMPG = 30
	}
	if c.GridCO2LbPerKWh == 0 {
		c.GridCO2LbPerKWh = 0.86
	}
	if c.GasCO2LbPerGal == 0 {
		c.GasCO2LbPerGal = 19.6
	}
	if c.CO2LbPerTreeYear == 0 {
		c.CO2LbPerTreeYear = 48
	}
}

// Validate checks the rates are usable.
func (c RatesConfig) Validate() error {
	if c.HomeRate < 0 || c.SuperchargerRate < 0 || c.PublicRate < 0 || c.WorkRate < 0 {
		return fmt.Errorf("rates must not be negative")
	}
	if c.GasMPG <= 0 {
		return fmt.Errorf("gas_mpg must be positive")
	}
	for _, h := range []int{c.OffPeakStartHour, c.OffPeakEndHour, c.PeakStartHour, c.PeakEndHour} {
		if h < 0 || h > 23 {
			return fmt.Errorf("rate hours must be within 0-23, got %d", h)
		}
	}
	return nil
}

// RateFor returns the applicable per-kWh rate for a location type given the
// hour a session started. Only home charging is time-of-use sensitive.
func (c RatesConfig) RateFor(locationType string, startHour int) float64 {
	switch locationType {
	case "home":
		if !c.TimeOfUse {
			return c.HomeRate
		}
		if inHourWindow(startHour, c.OffPeakStartHour, c.OffPeakEndHour) {
			return c.HomeOffPeakRate
		}
		if inHourWindow(startHour, c.PeakStartHour, c.PeakEndHour) {
			return c.HomePeakRate
		}
		return c.HomeRate
	case "supercharger":
		return c.SuperchargerRate
	case "public":
		return c.PublicRate
	case "work":
		return c.WorkRate
	default:
		return c.HomeRate
	}
}

// IsPeakHour reports whether the hour falls inside the peak window.
func (c RatesConfig) IsPeakHour(hour int) bool {
	return inHourWindow(hour, c.PeakStartHour, c.PeakEndHour)
}

// inHourWindow reports whether hour falls in [start, end). A window whose
// start is after its end wraps around midnight.
func inHourWindow(hour, start, end int) bool {
	if start > end {
		return hour >= start || hour < end
	}
	return hour >= start && hour < end
}
