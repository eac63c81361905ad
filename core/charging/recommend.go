package charging

import (
	"fmt"

	"github.com/drivesight/drivesight/core/model"
)

// recommendations derives cost-saving advice from the aggregate ratios.
func (d *Detector) recommendations(sessions []model.ChargingSession, analysis model.ChargingAnalysis) []string {
	if len(sessions) == 0 {
		return []string{"No charging sessions detected in this period; nothing to analyze."}
	}

	var recs []string
	if sc, ok := analysis.ByLocation[model.LocationSupercharger]; ok && sc.PctOfCost > 30 {
		recs = append(recs, fmt.Sprintf(
			"Supercharging accounts for %.0f%% of your charging cost; shifting routine charging home would cut it substantially.",
			sc.PctOfCost))
	}

	peakHome := 0
	var homeRateSum float64
	homeSessions := 0
	for _, s := range sessions {
		if s.Type != model.LocationHome {
			continue
		}
		homeSessions++
		homeRateSum += s.AvgChargeRateKW
		if d.rates.IsPeakHour(sessionStartHour(s)) {
			peakHome++
		}
	}
	if peakHome > 0 {
		recs = append(recs, fmt.Sprintf(
			"%d home session(s) started during peak hours (%02d:00-%02d:00); scheduling them off-peak is cheaper.",
			peakHome, d.rates.PeakStartHour, d.rates.PeakEndHour))
	}
	if homeSessions > 0 && homeRateSum/float64(homeSessions) < d.cfg.LowHomeChargeRateKW {
		recs = append(recs, fmt.Sprintf(
			"Average home charge rate is below %.0f kW; check the wall connector or circuit amperage.",
			d.cfg.LowHomeChargeRateKW))
	}

	if _, ok := analysis.ByLocation[model.LocationWork]; !ok && len(sessions) >= d.cfg.LargeSampleSessions {
		recs = append(recs, "No workplace charging detected; if your workplace offers it, it is usually cheaper than supercharging.")
	}

	if len(recs) == 0 {
		recs = append(recs, "Charging habits look cost-effective; no changes recommended.")
	}
	return recs
}
