package commute

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/drivesight/drivesight/core/model"
)

const secondsPerWeek = 7 * 24 * 60 * 60

// routeStats aggregates one retained group into a Route. Members are assumed
// sorted by start time.
func (c *Clusterer) routeStats(key string, members []model.RawDrive) model.Route {
	r := model.Route{
		Key:        key,
		Name:       routeName(key),
		Drives:     len(members),
		FirstDrive: members[0].StartedAt,
		LastDrive:  members[len(members)-1].StartedAt,
		Trend:      model.TrendStable,
	}

	var effs []float64
	best, worst := math.Inf(1), math.Inf(-1)
	for _, d := range members {
		r.TypicalDistanceMi += d.DistanceMi
		r.TypicalDurationMin += d.DurationMin()
		if eff, ok := c.driveEfficiency(d); ok {
			effs = append(effs, eff)
			best = math.Min(best, eff)
			worst = math.Max(worst, eff)
		}
	}
	r.TypicalDistanceMi /= float64(len(members))
	r.TypicalDurationMin /= float64(len(members))
	if len(effs) > 0 {
		r.MeanKWhPer100Mi = stat.Mean(effs, nil)
		r.BestKWhPer100Mi = best
		r.WorstKWhPer100Mi = worst
	}

	weeks := float64(r.LastDrive-r.FirstDrive) / secondsPerWeek
	if weeks < 1 {
		weeks = 1
	}
	r.WeeklyFrequency = float64(len(members)) / weeks

	r.Trend = c.routeTrend(effs)
	r.TimeOfDay = timeOfDayProfile(members)
	return r
}

// driveEfficiency computes kWh/100mi for one drive, rejecting degenerate or
// implausible readings.
func (c *Clusterer) driveEfficiency(d model.RawDrive) (float64, bool) {
	used := d.BatteryUsed()
	if used <= 0 || d.DistanceMi <= 0 {
		return 0, false
	}
	eff := used / 100 * c.cfg.PackCapacityKWh / d.DistanceMi * 100
	if eff <= 0 || eff >= c.cfg.MaxPlausibleKWhPer100Mi {
		return 0, false
	}
	return eff, true
}

// routeTrend compares the most recent six readings against the previous six.
// Fewer than six prior readings leaves the trend stable.
func (c *Clusterer) routeTrend(effs []float64) model.TrendDirection {
	const window = 6
	if len(effs) < 2*window {
		return model.TrendStable
	}
	recent := stat.Mean(effs[len(effs)-window:], nil)
	prior := stat.Mean(effs[len(effs)-2*window:len(effs)-window], nil)
	if prior <= 0 {
		return model.TrendStable
	}
	change := (recent - prior) / prior * 100
	switch {
	case change < -c.cfg.RouteTrendThresholdPct:
		return model.TrendImproving
	case change > c.cfg.RouteTrendThresholdPct:
		return model.TrendDeclining
	default:
		return model.TrendStable
	}
}

// timeOfDayProfile classifies each member drive as morning commute, evening
// commute or weekend travel.
func timeOfDayProfile(members []model.RawDrive) model.TimeOfDayProfile {
	var morning, evening, weekend []time.Time
	for _, d := range members {
		t := d.StartTime()
		wd := t.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			weekend = append(weekend, t)
			continue
		}
		switch h := t.Hour(); {
		case h >= 6 && h < 10:
			morning = append(morning, t)
		case h >= 15 && h < 19:
			evening = append(evening, t)
		}
	}
	return model.TimeOfDayProfile{
		MorningCommute: bucket(morning),
		EveningCommute: bucket(evening),
		Weekend:        bucket(weekend),
	}
}

func bucket(starts []time.Time) model.RouteTimeBucket {
	b := model.RouteTimeBucket{Count: len(starts)}
	if len(starts) == 0 {
		return b
	}
	var total float64
	for _, t := range starts {
		total += float64(t.Hour()) + float64(t.Minute())/60
	}
	mean := total / float64(len(starts))
	h := int(mean)
	m := int(math.Round((mean - float64(h)) * 60))
	if m == 60 {
		h, m = h+1, 0
	}
	b.MeanStartClock = fmt.Sprintf("%02d:%02d", h%24, m)
	return b
}

// weeklySummary aggregates all drives, clustered or not, by day of week.
func (c *Clusterer) weeklySummary(sorted []model.RawDrive) model.WeeklySummary {
	days := make(map[time.Weekday][]float64)
	for _, d := range sorted {
		if eff, ok := c.driveEfficiency(d); ok {
			wd := d.StartTime().Weekday()
			days[wd] = append(days[wd], eff)
		}
	}

	weekdays := make([]int, 0, len(days))
	for wd := range days {
		weekdays = append(weekdays, int(wd))
	}
	sort.Ints(weekdays)

	var summary model.WeeklySummary
	for _, wd := range weekdays {
		effs := days[time.Weekday(wd)]
		summary.Days = append(summary.Days, model.DayStat{
			Day:             time.Weekday(wd).String(),
			MeanKWhPer100Mi: stat.Mean(effs, nil),
			Drives:          len(effs),
		})
	}
	if len(summary.Days) > 0 {
		best, worst := summary.Days[0], summary.Days[0]
		for _, ds := range summary.Days[1:] {
			if ds.MeanKWhPer100Mi < best.MeanKWhPer100Mi {
				best = ds
			}
			if ds.MeanKWhPer100Mi > worst.MeanKWhPer100Mi {
				worst = ds
			}
		}
		summary.BestDay, summary.WorstDay = best, worst
	}
	return summary
}

// routeName renders a human-readable name from a route key.
func routeName(key string) string {
	parts := strings.SplitN(key, "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return parts[0]
	}
	return parts[0] + " ↔ " + parts[1]
}
