package cost

import (
	"strings"

	"github.com/drivesight/drivesight/config"
	"github.com/drivesight/drivesight/core/logger"
	"github.com/drivesight/drivesight/core/model"
)

// Params are the explicit rate inputs of a cost report. They default from the
// configured rate model but remain overridable per call.
type Params struct {
	HomeRateUSDPerKWh         float64
	SuperchargerRateUSDPerKWh float64
	GasPriceUSDPerGal         float64
	GasMPG                    float64
}

// Calculator aggregates a drive set into a cost and emissions report. It
// shares the charging-gap heuristic and rate constants with the charging
// detector but performs pure aggregation, no segmentation.
type Calculator struct {
	cfg   config.AnalysisConfig
	rates config.RatesConfig
	log   logger.Logger
}

// NewCalculator returns a Calculator using the provided configuration.
func NewCalculator(cfg config.AnalysisConfig, rates config.RatesConfig, log logger.Logger) *Calculator {
	return &Calculator{cfg: cfg, rates: rates, log: log}
}

// DefaultParams returns Params filled from the configured rates.
func (c *Calculator) DefaultParams() Params {
	return Params{
		HomeRateUSDPerKWh:         c.rates.HomeRate,
		SuperchargerRateUSDPerKWh: c.rates.SuperchargerRate,
		GasPriceUSDPerGal:         c.rates.GasPriceUSD,
		GasMPG:                    c.rates.GasMPG,
	}
}

// Cost computes the cost/emissions report over the drive list. Zero input
// drives yields an all-zero result with an explanatory message, not an error.
func (c *Calculator) Cost(drives []model.RawDrive, p Params) model.TripCostAnalysis {
	if len(drives) == 0 {
		return model.TripCostAnalysis{Message: "no drives supplied; nothing to analyze"}
	}
	if p.GasMPG <= 0 {
		p.GasMPG = c.rates.GasMPG
	}
	sorted := model.SortedByStart(drives)

	analysis := model.TripCostAnalysis{Drives: len(sorted)}
	for _, d := range sorted {
		analysis.TotalDistanceMi += d.DistanceMi
		analysis.TotalDurationMin += d.DurationMin()
		analysis.TotalBatteryUsedPct += d.BatteryUsed()
	}
	analysis.TotalEnergyKWh = analysis.TotalBatteryUsedPct / 100 * c.cfg.PackCapacityKWh

	// Re-run the charging-gap heuristic only to split cost into home vs
	// supercharger buckets; energy not accounted for by detected gaps is
	// assumed home-charged.
	scEnergy := 0.0
	for i := 0; i+1 < len(sorted); i++ {
		prev, next := sorted[i], sorted[i+1]
		gain := next.StartingBattery - prev.EndingBattery
		if gain <= c.cfg.ChargeGainPct {
			continue
		}
		durationMin := float64(next.StartedAt-prev.EndedAt) / 60
		if c.isSupercharge(prev.EndLocation, durationMin, gain) {
			scEnergy += gain / 100 * c.cfg.PackCapacityKWh
		}
	}
	if scEnergy > analysis.TotalEnergyKWh {
		scEnergy = analysis.TotalEnergyKWh
	}
	analysis.SuperchargerEnergyKWh = scEnergy
	analysis.HomeEnergyKWh = analysis.TotalEnergyKWh - scEnergy
	analysis.SuperchargerCostUSD = scEnergy * p.SuperchargerRateUSDPerKWh
	analysis.HomeCostUSD = analysis.HomeEnergyKWh * p.HomeRateUSDPerKWh
	analysis.TotalCostUSD = analysis.SuperchargerCostUSD + analysis.HomeCostUSD
	if analysis.TotalDistanceMi > 0 {
		analysis.CostPerMileUSD = analysis.TotalCostUSD / analysis.TotalDistanceMi
	}

	analysis.GasGallons = analysis.TotalDistanceMi / p.GasMPG
	analysis.GasCostUSD = analysis.GasGallons * p.GasPriceUSDPerGal
	analysis.SavingsVsGasUSD = analysis.GasCostUSD - analysis.TotalCostUSD

	analysis.EVCO2Lb = analysis.TotalEnergyKWh * c.rates.GridCO2LbPerKWh
	analysis.GasCO2Lb = analysis.GasGallons * c.rates.GasCO2LbPerGal
	analysis.CO2SavedLb = analysis.GasCO2Lb - analysis.EVCO2Lb
	if c.rates.CO2LbPerTreeYear > 0 {
		analysis.TreeYearsEquivalent = analysis.CO2SavedLb / c.rates.CO2LbPerTreeYear
	}
	return analysis
}

// isSupercharge mirrors the detector's supercharger rules: an explicit marker
// in the label, or the fast-charge signature.
func (c *Calculator) isSupercharge(location string, durationMin, gainPct float64) bool {
	label := strings.ToLower(location)
	for _, marker := range c.cfg.SuperchargerMarkers {
		if marker != "" && strings.Contains(label, strings.ToLower(marker)) {
			return true
		}
	}
	return durationMin < c.cfg.FastChargeMaxMinutes && gainPct > c.cfg.FastChargeGainPct
}
