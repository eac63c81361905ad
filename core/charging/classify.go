package charging

import (
	"strings"

	"github.com/drivesight/drivesight/core/model"
)

// classify assigns a location type to a session. Rules apply in priority
// order: explicit supercharger markers in the label, the fast-charge
// signature, previously learned locations, long stays, then duration buckets.
func (d *Detector) classify(location string, durationMin, gainPct float64) model.LocationType {
	label := strings.ToLower(location)
	for _, marker := range d.cfg.SuperchargerMarkers {
		if marker != "" && strings.Contains(label, strings.ToLower(marker)) {
			return model.LocationSupercharger
		}
	}
	if durationMin < d.cfg.FastChargeMaxMinutes && gainPct > d.cfg.FastChargeGainPct {
		return model.LocationSupercharger
	}

	if d.mem.IsHome(location) {
		return model.LocationHome
	}
	if d.mem.IsWork(location) {
		return model.LocationWork
	}

	// A fast-charge sized gain delivered too slowly for the signature only
	// happens on a long plugged-in stay, whatever the wall-clock gap.
	longStay := durationMin > d.cfg.LongStayMinutes ||
		(gainPct > d.cfg.FastChargeGainPct && durationMin >= d.cfg.FastChargeMaxMinutes)
	if longStay {
		// A long stay is either home or work; promote to home once the
		// location recurs enough.
		if d.mem.RecordLongStay(location) > d.cfg.HomePromotionVisits {
			d.mem.MarkHome(location)
			return model.LocationHome
		}
		if durationMin > d.cfg.OvernightStayMinutes {
			return model.LocationHome
		}
		return model.LocationWork
	}

	if durationMin > 30 {
		return model.LocationPublic
	}
	return model.LocationUnknown
}
