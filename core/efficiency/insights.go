package efficiency

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/drivesight/drivesight/core/model"
)

// insights renders free-text observations and advice from the computed
// analysis. No additional state is consulted; the text is generated from the
// same thresholds as the structured fields.
func (a *Analyzer) insights(points []model.EfficiencyDataPoint, an model.EfficiencyAnalysis) (insights, recs []string) {
	insights = append(insights, fmt.Sprintf(
		"Average consumption is %.1f kWh/100mi over %d drives (%.0f miles).",
		an.Current.MeanKWhPer100Mi, an.Current.Drives, an.Current.TotalMiles))

	for _, w := range an.Trends {
		if w.Direction == model.TrendStable || w.Confidence == model.ConfidenceLow {
			continue
		}
		verb := "improved"
		if w.Direction == model.TrendDeclining {
			verb = "worsened"
		}
		insights = append(insights, fmt.Sprintf(
			"Consumption %s %.1f%% over the last %d days (%s confidence).",
			verb, abs(w.ChangePct), w.Days, w.Confidence))
	}

	// Long-run drift across all points, as a least-squares slope per 30 days.
	if len(points) >= 5 {
		xs := make([]float64, len(points))
		ys := make([]float64, len(points))
		for i, p := range points {
			xs[i] = float64(p.StartedAt-points[0].StartedAt) / secondsPerDay
			ys[i] = p.KWhPer100Mi
		}
		_, slope := stat.LinearRegression(xs, ys, nil, false)
		if drift := slope * 30; abs(drift) >= 0.5 {
			direction := "down"
			if drift > 0 {
				direction = "up"
			}
			insights = append(insights, fmt.Sprintf(
				"Long-term consumption is drifting %s by %.1f kWh/100mi per month.", direction, abs(drift)))
		}
	}

	if an.Factors.WeatherPenaltyPct > 10 {
		recs = append(recs, fmt.Sprintf(
			"Cold-weather drives cost %.0f%% more energy; pre-conditioning while plugged in reduces the penalty.",
			an.Factors.WeatherPenaltyPct))
	}
	if an.Factors.HighwayCityDelta > 5 {
		recs = append(recs, fmt.Sprintf(
			"Highway drives run %.1f kWh/100mi above city drives; lowering cruise speed a few mph saves range.",
			an.Factors.HighwayCityDelta))
	}
	for _, w := range an.Trends {
		if w.Direction == model.TrendDeclining && w.Confidence != model.ConfidenceLow {
			recs = append(recs, "Consumption is trending up; check tire pressure and roof racks before looking further.")
			break
		}
	}
	if len(recs) == 0 {
		recs = append(recs, "Efficiency looks steady; no changes recommended.")
	}
	return insights, recs
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
