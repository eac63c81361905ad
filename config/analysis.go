package config

import (
	"fmt"

	"github.com/drivesight/drivesight/core/factory"
)

// AnalysisConfig centralizes the heuristic thresholds shared by the
// analyzers. Every analyzer receives this struct in its constructor so the
// thresholds stay independently testable and are never hard-coded per
// function.
type AnalysisConfig struct {
	// MergeGapMinutes is the stop length below which consecutive drives are
	// merged into one journey. Default 7.
	MergeGapMinutes float64 `json:"merge_gap_minutes"`
	// MergeBatteryGainPct merges across a longer stop when the battery rose
	// by more than this many points, a strong charging signal. Default 5.
	MergeBatteryGainPct float64 `json:"merge_battery_gain_pct"`
	// ChargeGainPct is the battery rise between consecutive drives that
	// counts as a charging session. Default 2. Deliberately lower than
	// MergeBatteryGainPct: segmentation favors continuity, cost analysis
	// favors granularity.
	ChargeGainPct float64 `json:"charge_gain_pct"`
	// PackCapacityKWh is the assumed usable battery capacity. Default 75.
	PackCapacityKWh float64 `json:"pack_capacity_kwh"`
	// MilesPerKWh converts energy to range. Default 4.
	MilesPerKWh float64 `json:"miles_per_kwh"`
	// MaxPlausibleKWhPer100Mi bounds efficiency points; values at or above
	// this are discarded as sensor noise. Default 60.
	MaxPlausibleKWhPer100Mi float64 `json:"max_plausible_kwh_per_100mi"`
	// HighwaySpeedMph is the speed used to scale the highway percentage.
	// Default 55.
	HighwaySpeedMph float64 `json:"highway_speed_mph"`
	// TrendWindowsDays lists the rolling windows compared by the efficiency
	// analyzer. Default [7, 30, 90].
	TrendWindowsDays []int `json:"trend_windows_days"`
	// TrendThresholdPct is the mean change that flips a trend away from
	// stable. Default 3.
	TrendThresholdPct float64 `json:"trend_threshold_pct"`
	// RouteTrendThresholdPct is the per-route equivalent. Default 5.
	RouteTrendThresholdPct float64 `json:"route_trend_threshold_pct"`
	// MinEfficiencyDrives gates the efficiency analysis. Default 5.
	MinEfficiencyDrives int `json:"min_efficiency_drives"`
	// MinCommuteDrives gates the commute analysis. Default 10.
	MinCommuteDrives int `json:"min_commute_drives"`
	// MinRouteDrives is the recurrence needed to retain a route. Default 3.
	MinRouteDrives int `json:"min_route_drives"`
	// SuperchargerMarkers are substrings of a location label that identify a
	// fast-charging site. Defaults ["supercharger", "tesla"].
	SuperchargerMarkers []string `json:"supercharger_markers"`
	// FastChargeGainPct and FastChargeMaxMinutes form the fast-charge
	// signature: a large gain in under an hour. Defaults 40 and 60.
	FastChargeGainPct    float64 `json:"fast_charge_gain_pct"`
	FastChargeMaxMinutes float64 `json:"fast_charge_max_minutes"`
	// LongStayMinutes is the stay length treated as home or work rather than
	// public charging. Default 240.
	LongStayMinutes float64 `json:"long_stay_minutes"`
	// OvernightStayMinutes is the stay length classified as home outright.
	// Default 480.
	OvernightStayMinutes float64 `json:"overnight_stay_minutes"`
	// HomePromotionVisits promotes a long-stay location to home once seen
	// more than this many times. Default 5.
	HomePromotionVisits int `json:"home_promotion_visits"`
	// WorkVisitThreshold is the visit count above which a non-home location
	// with long average stays becomes work. Default 10.
	WorkVisitThreshold int `json:"work_visit_threshold"`
	// LargeSampleSessions is the session count above which missing work
	// charging is worth flagging. Default 20.
	LargeSampleSessions int `json:"large_sample_sessions"`
	// LowHomeChargeRateKW flags slow home charging. Default 7.
	LowHomeChargeRateKW float64 `json:"low_home_charge_rate_kw"`
	// RouteKeyer selects the clustering key implementation. Default
	// {type: citystate}.
	RouteKeyer factory.ModuleConfig `json:"route_keyer"`
}

// SetDefaults applies the documented defaults to unset fields.
func (c *AnalysisConfig) SetDefaults() {
	if c.MergeGapMinutes == 0 {
		c.MergeGapMinutes = 7
	}
	if c.MergeBatteryGainPct == 0 {
		c.MergeBatteryGainPct = 5
	}
	if c.ChargeGainPct == 0 {
		c.ChargeGainPct = 2
	}
	if c.PackCapacityKWh == 0 {
		c.PackCapacityKWh = 75
	}
	if c.MilesPerKWh == 0 {
		c.MilesPerKWh = 4
	}
	if c.MaxPlausibleKWhPer100Mi == 0 {
		c.MaxPlausibleKWhPer100Mi = 60
	}
	if c.HighwaySpeedMph == 0 {
		c.HighwaySpeedMph = 55
	}
	if len(c.TrendWindowsDays) == 0 {
		c.TrendWindowsDays = []int{7, 30, 90}
	}
	if c.TrendThresholdPct == 0 {
		c.TrendThresholdPct = 3
	}
	if c.RouteTrendThresholdPct == 0 {
		c.RouteTrendThresholdPct = 5
	}
	if c.MinEfficiencyDrives == 0 {
		c.MinEfficiencyDrives = 5
	}
	if c.MinCommuteDrives == 0 {
		c.MinCommuteDrives = 10
	}
	if c.MinRouteDrives == 0 {
		c.MinRouteDrives = 3
	}
	if len(c.SuperchargerMarkers) == 0 {
		c.SuperchargerMarkers = []string{"supercharger", "tesla"}
	}
	if c.FastChargeGainPct == 0 {
		c.FastChargeGainPct = 40
	}
	if c.FastChargeMaxMinutes == 0 {
		c.FastChargeMaxMinutes = 60
	}
	if c.LongStayMinutes == 0 {
		c.LongStayMinutes = 240
	}
	if c.OvernightStayMinutes == 0 {
		c.OvernightStayMinutes = 480
	}
	if c.HomePromotionVisits == 0 {
		c.HomePromotionVisits = 5
	}
	if c.WorkVisitThreshold == 0 {
		c.WorkVisitThreshold = 10
	}
	if c.LargeSampleSessions == 0 {
		c.LargeSampleSessions = 20
	}
	if c.LowHomeChargeRateKW == 0 {
		c.LowHomeChargeRateKW = 7
	}
	if c.RouteKeyer.Type == "" {
		c.RouteKeyer.Type = "citystate"
	}
}

// Validate checks the thresholds are coherent.
func (c AnalysisConfig) Validate() error {
	if c.MergeGapMinutes <= 0 {
		return fmt.Errorf("merge_gap_minutes must be positive")
	}
	if c.ChargeGainPct <= 0 || c.MergeBatteryGainPct <= 0 {
		return fmt.Errorf("battery gain thresholds must be positive")
	}
	if c.ChargeGainPct > c.MergeBatteryGainPct {
		return fmt.Errorf("charge_gain_pct must not exceed merge_battery_gain_pct")
	}
	if c.PackCapacityKWh <= 0 {
		return fmt.Errorf("pack_capacity_kwh must be positive")
	}
	if c.MilesPerKWh <= 0 {
		return fmt.Errorf("miles_per_kwh must be positive")
	}
	for _, w := range c.TrendWindowsDays {
		if w <= 0 {
			return fmt.Errorf("trend window days must be positive, got %d", w)
		}
	}
	if c.MinRouteDrives < 2 {
		return fmt.Errorf("min_route_drives must be at least 2")
	}
	return nil
}
