package cost

import (
	"math"

	"github.com/drivesight/drivesight/core/model"
)

const (
	// safetyBuffer inflates the required charge by 15%.
	safetyBuffer = 1.15
	// superchargerStopPct is the charge a single supercharger stop is
	// assumed to add.
	superchargerStopPct = 60
)

// EstimateFutureTrip projects a hypothetical trip into a required-charge
// percentage and a charging plan. The plan includes supercharger stops when
// the required charge exceeds a full battery or the deficit exceeds what one
// home session covers.
func (c *Calculator) EstimateFutureTrip(distanceMi, currentChargePct float64) model.FutureTripEstimate {
	est := model.FutureTripEstimate{
		DistanceMi:       distanceMi,
		CurrentChargePct: currentChargePct,
		Plan:             model.PlanNone,
	}
	if distanceMi <= 0 {
		est.Notes = "trip distance must be positive"
		return est
	}

	est.EnergyRequiredKWh = distanceMi / c.cfg.MilesPerKWh
	est.RequiredChargePct = est.EnergyRequiredKWh / c.cfg.PackCapacityKWh * 100 * safetyBuffer
	est.ChargeDeficitPct = est.RequiredChargePct - currentChargePct
	if est.ChargeDeficitPct <= 0 {
		est.Notes = "current charge covers the trip with the safety buffer"
		return est
	}

	est.ChargingNeeded = true
	// Supercharging is required for whatever home charging cannot cover:
	// beyond a full battery, or beyond one large home session.
	scPct := math.Max(est.ChargeDeficitPct-superchargerStopPct, est.RequiredChargePct-100)
	if scPct > 0 {
		est.Plan = model.PlanHomeAndSupercharger
		est.SuperchargerChargePct = scPct
		est.HomeChargePct = est.ChargeDeficitPct - scPct
		est.ChargingStopsNeeded = int(math.Max(1, math.Ceil(scPct/superchargerStopPct)))
		est.Notes = "trip requires en-route supercharging on top of a home charge"
	} else {
		est.Plan = model.PlanHomeOnly
		est.HomeChargePct = est.ChargeDeficitPct
		est.Notes = "a home charge before departure covers the trip"
	}

	pack := c.cfg.PackCapacityKWh
	est.EstimatedCostUSD = est.HomeChargePct/100*pack*c.rates.HomeRate +
		est.SuperchargerChargePct/100*pack*c.rates.SuperchargerRate
	return est
}
