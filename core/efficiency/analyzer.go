package efficiency

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/drivesight/drivesight/config"
	"github.com/drivesight/drivesight/core/logger"
	"github.com/drivesight/drivesight/core/model"
)

// Analyzer converts drives into normalized consumption points and computes
// rolling-window trends plus factor decomposition. Pure and stateless; safe
// for concurrent use.
type Analyzer struct {
	cfg config.AnalysisConfig
	log logger.Logger
}

// NewAnalyzer returns an Analyzer using the provided thresholds.
func NewAnalyzer(cfg config.AnalysisConfig, log logger.Logger) *Analyzer {
	return &Analyzer{cfg: cfg, log: log}
}

// DataPoints reduces each drive to a consumption rate in kWh/100mi, dropping
// points outside the plausible range as sensor noise.
func (a *Analyzer) DataPoints(drives []model.RawDrive) []model.EfficiencyDataPoint {
	sorted := model.SortedByStart(drives)
	points := make([]model.EfficiencyDataPoint, 0, len(sorted))
	for _, d := range sorted {
		used := d.BatteryUsed()
		if used <= 0 || d.DistanceMi <= 0 {
			continue
		}
		kwh := used / 100 * a.cfg.PackCapacityKWh
		eff := kwh / d.DistanceMi * 100
		if eff <= 0 || eff >= a.cfg.MaxPlausibleKWhPer100Mi {
			continue
		}
		points = append(points, model.EfficiencyDataPoint{
			DriveID:     d.ID,
			StartedAt:   d.StartedAt,
			KWhPer100Mi: eff,
			HighwayPct:  a.highwayPct(d.AvgSpeedMph),
			Weather:     a.weatherTag(eff),
			DistanceMi:  d.DistanceMi,
		})
	}
	return points
}

// highwayPct estimates the highway share of a drive from its average speed,
// scaled linearly against the highway speed threshold.
func (a *Analyzer) highwayPct(avgSpeedMph float64) float64 {
	pct := avgSpeedMph / a.cfg.HighwaySpeedMph * 100
	return math.Min(100, math.Max(0, pct))
}

// weatherTag infers a coarse weather proxy from the consumption magnitude
// itself; there is no external weather input.
func (a *Analyzer) weatherTag(eff float64) model.WeatherTag {
	switch {
	case eff > 35:
		return model.WeatherCold
	case eff > 30:
		return model.WeatherHot
	default:
		return model.WeatherMild
	}
}

// Analyze computes the full efficiency report. Fewer drives than the minimum
// yields an explicit low-confidence empty result with a stated reason.
func (a *Analyzer) Analyze(drives []model.RawDrive) model.EfficiencyAnalysis {
	if len(drives) < a.cfg.MinEfficiencyDrives {
		return model.EfficiencyAnalysis{
			Reason: fmt.Sprintf("need at least %d drives for an efficiency analysis, got %d",
				a.cfg.MinEfficiencyDrives, len(drives)),
		}
	}
	points := a.DataPoints(drives)
	if len(points) == 0 {
		return model.EfficiencyAnalysis{
			Reason: "no drives produced a usable efficiency reading",
		}
	}

	analysis := model.EfficiencyAnalysis{
		Sufficient: true,
		Current:    a.summary(points),
		Points:     points,
		Trends:     a.trends(points),
		Factors:    a.factors(points),
	}
	analysis.Insights, analysis.Recommendations = a.insights(points, analysis)
	a.log.Debugf("efficiency analysis over %d points, mean %.1f kWh/100mi",
		len(points), analysis.Current.MeanKWhPer100Mi)
	return analysis
}

func (a *Analyzer) summary(points []model.EfficiencyDataPoint) model.PeriodSummary {
	effs := make([]float64, len(points))
	sum := model.PeriodSummary{
		BestKWhPer100Mi:  math.Inf(1),
		WorstKWhPer100Mi: math.Inf(-1),
		Drives:           len(points),
	}
	for i, p := range points {
		effs[i] = p.KWhPer100Mi
		sum.TotalMiles += p.DistanceMi
		if p.KWhPer100Mi < sum.BestKWhPer100Mi {
			sum.BestKWhPer100Mi = p.KWhPer100Mi
		}
		if p.KWhPer100Mi > sum.WorstKWhPer100Mi {
			sum.WorstKWhPer100Mi = p.KWhPer100Mi
		}
	}
	sum.MeanKWhPer100Mi = stat.Mean(effs, nil)
	if len(effs) > 1 {
		sum.StdDev = stat.StdDev(effs, nil)
	}
	return sum
}
