package commute

import (
	"fmt"

	"github.com/drivesight/drivesight/core/model"
)

// highEnergyRouteKWhPer100Mi flags routes that consistently burn more energy
// than typical mixed driving.
const highEnergyRouteKWhPer100Mi = 30

func (c *Clusterer) recommendations(analysis model.CommuteAnalysis) []string {
	var recs []string
	for _, r := range analysis.Routes {
		if r.Trend == model.TrendDeclining {
			recs = append(recs, fmt.Sprintf(
				"Route %s is using more energy than it used to; traffic patterns or vehicle condition may have changed.", r.Name))
		}
		if r.MeanKWhPer100Mi > highEnergyRouteKWhPer100Mi {
			recs = append(recs, fmt.Sprintf(
				"Route %s averages %.0f kWh/100mi; an alternate routing could cost less energy.",
				r.Name, r.MeanKWhPer100Mi))
		}
	}

	if len(analysis.Routes) > 0 {
		top := analysis.Routes[0]
		if top.MeanKWhPer100Mi > 0 {
			energyPerTrip := top.MeanKWhPer100Mi / 100 * top.TypicalDistanceMi
			weeklyCost := energyPerTrip * top.WeeklyFrequency * c.rates.HomeRate
			recs = append(recs, fmt.Sprintf(
				"Your most frequent route (%s) costs about $%.2f per week at home rates.", top.Name, weeklyCost))
		}
	}

	recs = append(recs, "Pre-conditioning the cabin while plugged in lowers energy use on every regular route.")
	return recs
}
