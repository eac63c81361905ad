package charging

import (
	"time"

	"github.com/drivesight/drivesight/core/model"
)

// AnalyzeCosts aggregates sessions into totals, a per-location breakdown, and
// recommendations. Zero sessions yields a well-formed zeroed analysis with a
// "no sessions" recommendation, not an error.
func (d *Detector) AnalyzeCosts(sessions []model.ChargingSession) model.ChargingAnalysis {
	analysis := model.ChargingAnalysis{
		TotalSessions: len(sessions),
		ByLocation:    make(map[model.LocationType]model.LocationCostSummary),
	}

	for _, s := range sessions {
		analysis.TotalEnergyKWh += s.EnergyAddedKWh
		analysis.TotalCostUSD += s.CostUSD
		analysis.TotalMilesRestored += s.MilesRestored

		sum := analysis.ByLocation[s.Type]
		sum.Sessions++
		sum.EnergyKWh += s.EnergyAddedKWh
		sum.CostUSD += s.CostUSD
		analysis.ByLocation[s.Type] = sum
	}
	if analysis.TotalEnergyKWh > 0 {
		analysis.AvgCostPerKWh = analysis.TotalCostUSD / analysis.TotalEnergyKWh
	}
	if analysis.TotalCostUSD > 0 {
		for typ, sum := range analysis.ByLocation {
			sum.PctOfCost = sum.CostUSD / analysis.TotalCostUSD * 100
			analysis.ByLocation[typ] = sum
		}
	}

	analysis.PotentialSavingsUSD = d.potentialSavings(sessions, analysis)
	analysis.Recommendations = d.recommendations(sessions, analysis)
	return analysis
}

// potentialSavings estimates the value of shifting half of the supercharger
// energy to home off-peak rates, plus the peak-to-off-peak delta for home
// sessions started during the peak window.
func (d *Detector) potentialSavings(sessions []model.ChargingSession, analysis model.ChargingAnalysis) float64 {
	offPeak := d.rates.HomeOffPeakRate
	if !d.rates.TimeOfUse {
		offPeak = d.rates.HomeRate
	}

	savings := 0.0
	if sc, ok := analysis.ByLocation[model.LocationSupercharger]; ok {
		delta := d.rates.SuperchargerRate - offPeak
		if delta > 0 {
			savings += 0.5 * sc.EnergyKWh * delta
		}
	}
	if d.rates.TimeOfUse {
		delta := d.rates.HomePeakRate - d.rates.HomeOffPeakRate
		for _, s := range sessions {
			if s.Type == model.LocationHome && d.rates.IsPeakHour(sessionStartHour(s)) && delta > 0 {
				savings += s.EnergyAddedKWh * delta
			}
		}
	}
	return savings
}

func sessionStartHour(s model.ChargingSession) int {
	return time.Unix(s.StartedAt, 0).UTC().Hour()
}
