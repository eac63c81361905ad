package efficiency

import (
	"gonum.org/v1/gonum/stat"

	"github.com/drivesight/drivesight/core/model"
)

const secondsPerDay = 24 * 60 * 60

// trends compares, for each configured window size, the most recent window
// against the immediately preceding window of equal length. The reference
// point is the newest data point.
func (a *Analyzer) trends(points []model.EfficiencyDataPoint) []model.TrendWindow {
	if len(points) == 0 {
		return nil
	}
	ref := points[len(points)-1].StartedAt

	windows := make([]model.TrendWindow, 0, len(a.cfg.TrendWindowsDays))
	for _, days := range a.cfg.TrendWindowsDays {
		windows = append(windows, a.windowTrend(points, ref, days))
	}
	return windows
}

func (a *Analyzer) windowTrend(points []model.EfficiencyDataPoint, ref int64, days int) model.TrendWindow {
	curStart := ref - int64(days)*secondsPerDay
	prevStart := ref - 2*int64(days)*secondsPerDay

	var cur, prev []float64
	for _, p := range points {
		switch {
		case p.StartedAt > curStart:
			cur = append(cur, p.KWhPer100Mi)
		case p.StartedAt > prevStart:
			prev = append(prev, p.KWhPer100Mi)
		}
	}

	w := model.TrendWindow{
		Days:           days,
		Direction:      model.TrendStable,
		Confidence:     model.ConfidenceLow,
		CurrentPoints:  len(cur),
		PreviousPoints: len(prev),
	}
	// Windows below two points each cannot support a comparison.
	if len(cur) < 2 || len(prev) < 2 {
		return w
	}

	w.CurrentMean = stat.Mean(cur, nil)
	w.PreviousMean = stat.Mean(prev, nil)
	if w.PreviousMean > 0 {
		w.ChangePct = (w.CurrentMean - w.PreviousMean) / w.PreviousMean * 100
	}
	switch {
	case w.ChangePct < -a.cfg.TrendThresholdPct:
		w.Direction = model.TrendImproving
	case w.ChangePct > a.cfg.TrendThresholdPct:
		w.Direction = model.TrendDeclining
	}

	switch {
	case len(cur) >= 5 && len(prev) >= 5:
		w.Confidence = model.ConfidenceHigh
	case len(cur) >= 3 && len(prev) >= 3:
		w.Confidence = model.ConfidenceMedium
	}
	return w
}
