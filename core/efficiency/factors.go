package efficiency

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/drivesight/drivesight/core/model"
)

// minHourSamples is the number of readings an hour-of-day bucket needs before
// it is considered.
const minHourSamples = 2

// factors decomposes consumption into weather, speed regime and time-of-week
// contributions.
func (a *Analyzer) factors(points []model.EfficiencyDataPoint) model.FactorBreakdown {
	fb := model.FactorBreakdown{
		WeatherMeans: make(map[model.WeatherTag]float64),
	}

	weather := make(map[model.WeatherTag][]float64)
	var highway, city []float64
	days := make(map[time.Weekday][]float64)
	hours := make(map[int][]float64)
	for _, p := range points {
		weather[p.Weather] = append(weather[p.Weather], p.KWhPer100Mi)
		if p.HighwayPct >= 50 {
			highway = append(highway, p.KWhPer100Mi)
		} else {
			city = append(city, p.KWhPer100Mi)
		}
		t := time.Unix(p.StartedAt, 0).UTC()
		days[t.Weekday()] = append(days[t.Weekday()], p.KWhPer100Mi)
		hours[t.Hour()] = append(hours[t.Hour()], p.KWhPer100Mi)
	}

	for tag, effs := range weather {
		fb.WeatherMeans[tag] = stat.Mean(effs, nil)
	}
	if mild, ok := fb.WeatherMeans[model.WeatherMild]; ok && mild > 0 {
		if cold, ok := fb.WeatherMeans[model.WeatherCold]; ok {
			fb.WeatherPenaltyPct = (cold - mild) / mild * 100
		}
	}

	if len(highway) > 0 {
		fb.HighwayMean = stat.Mean(highway, nil)
	}
	if len(city) > 0 {
		fb.CityMean = stat.Mean(city, nil)
	}
	if len(highway) > 0 && len(city) > 0 {
		fb.HighwayCityDelta = fb.HighwayMean - fb.CityMean
	}

	fb.DayStats = dayStats(days)
	if len(fb.DayStats) > 0 {
		best, worst := fb.DayStats[0], fb.DayStats[0]
		for _, ds := range fb.DayStats[1:] {
			if ds.MeanKWhPer100Mi < best.MeanKWhPer100Mi {
				best = ds
			}
			if ds.MeanKWhPer100Mi > worst.MeanKWhPer100Mi {
				worst = ds
			}
		}
		fb.BestDay, fb.WorstDay = best, worst
	}

	for hour := 0; hour < 24; hour++ {
		effs, ok := hours[hour]
		if !ok || len(effs) < minHourSamples {
			continue
		}
		mean := stat.Mean(effs, nil)
		if fb.BestHour == nil || mean < fb.BestHour.MeanKWhPer100Mi {
			fb.BestHour = &model.HourStat{Hour: hour, MeanKWhPer100Mi: mean, Drives: len(effs)}
		}
	}
	return fb
}

// dayStats flattens the per-weekday buckets in Sunday-first order.
func dayStats(days map[time.Weekday][]float64) []model.DayStat {
	weekdays := make([]int, 0, len(days))
	for wd := range days {
		weekdays = append(weekdays, int(wd))
	}
	sort.Ints(weekdays)

	out := make([]model.DayStat, 0, len(weekdays))
	for _, wd := range weekdays {
		effs := days[time.Weekday(wd)]
		out = append(out, model.DayStat{
			Day:             time.Weekday(wd).String(),
			MeanKWhPer100Mi: stat.Mean(effs, nil),
			Drives:          len(effs),
		})
	}
	return out
}
