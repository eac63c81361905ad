package efficiency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivesight/drivesight/config"
	"github.com/drivesight/drivesight/core/model"
	"github.com/drivesight/drivesight/infra/logger"
)

func testAnalyzer() *Analyzer {
	var cfg config.AnalysisConfig
	cfg.SetDefaults()
	return NewAnalyzer(cfg, logger.NopLogger{})
}

// effDrive builds a drive whose consumption is exactly kwhPer100Mi.
func effDrive(id int64, start time.Time, kwhPer100Mi float64) model.RawDrive {
	const distMi = 30
	used := kwhPer100Mi * distMi / 100 / 75 * 100 // percent points
	return model.RawDrive{
		ID:              id,
		StartedAt:       start.Unix(),
		EndedAt:         start.Add(45 * time.Minute).Unix(),
		DistanceMi:      distMi,
		StartingBattery: 90,
		EndingBattery:   90 - used,
		AvgSpeedMph:     40,
		MaxSpeedMph:     60,
	}
}

func TestAnalyzeInsufficientDrives(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	drives := []model.RawDrive{
		effDrive(1, now, 28), effDrive(2, now.Add(time.Hour), 28),
		effDrive(3, now.Add(2*time.Hour), 28), effDrive(4, now.Add(3*time.Hour), 28),
	}
	analysis := testAnalyzer().Analyze(drives)
	assert.False(t, analysis.Sufficient)
	assert.NotEmpty(t, analysis.Reason)
	assert.Empty(t, analysis.Points)
}

func TestDataPointsFiltering(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	good := effDrive(1, now, 28)
	zeroDistance := model.RawDrive{ID: 2, StartedAt: now.Unix(), EndedAt: now.Add(time.Hour).Unix(), StartingBattery: 90, EndingBattery: 80}
	noUse := model.RawDrive{ID: 3, StartedAt: now.Unix(), EndedAt: now.Add(time.Hour).Unix(), DistanceMi: 10, StartingBattery: 80, EndingBattery: 80}
	implausible := model.RawDrive{ID: 4, StartedAt: now.Unix(), EndedAt: now.Add(time.Hour).Unix(), DistanceMi: 1, StartingBattery: 90, EndingBattery: 10}

	points := testAnalyzer().DataPoints([]model.RawDrive{good, zeroDistance, noUse, implausible})
	require.Len(t, points, 1)
	assert.Equal(t, int64(1), points[0].DriveID)
	assert.InDelta(t, 28.0, points[0].KWhPer100Mi, 1e-9)
}

func TestWeatherAndHighwayTags(t *testing.T) {
	a := testAnalyzer()
	assert.Equal(t, model.WeatherCold, a.weatherTag(40))
	assert.Equal(t, model.WeatherHot, a.weatherTag(32))
	assert.Equal(t, model.WeatherMild, a.weatherTag(25))

	assert.InDelta(t, 100.0, a.highwayPct(70), 1e-9) // capped
	assert.InDelta(t, 50.0, a.highwayPct(27.5), 1e-9)
	assert.Zero(t, a.highwayPct(0))
}

// trendDrives places three points in the last week and three in the week
// before, each group at one consumption level.
func trendDrives(recent, prior float64) []model.RawDrive {
	ref := time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC)
	return []model.RawDrive{
		effDrive(1, ref.AddDate(0, 0, -10), prior),
		effDrive(2, ref.AddDate(0, 0, -9), prior),
		effDrive(3, ref.AddDate(0, 0, -8), prior),
		effDrive(4, ref.AddDate(0, 0, -2), recent),
		effDrive(5, ref.AddDate(0, 0, -1), recent),
		effDrive(6, ref, recent),
	}
}

func findWindow(t *testing.T, trends []model.TrendWindow, days int) model.TrendWindow {
	t.Helper()
	for _, w := range trends {
		if w.Days == days {
			return w
		}
	}
	t.Fatalf("no %d-day window in %+v", days, trends)
	return model.TrendWindow{}
}

func TestAnalyzeImprovingTrend(t *testing.T) {
	analysis := testAnalyzer().Analyze(trendDrives(25, 30))
	require.True(t, analysis.Sufficient)

	week := findWindow(t, analysis.Trends, 7)
	assert.Equal(t, model.TrendImproving, week.Direction)
	assert.NotEqual(t, model.ConfidenceLow, week.Confidence)
	assert.InDelta(t, (25.0-30.0)/30.0*100, week.ChangePct, 1e-9)
	assert.Equal(t, 3, week.CurrentPoints)
	assert.Equal(t, 3, week.PreviousPoints)
}

func TestAnalyzeDecliningTrend(t *testing.T) {
	analysis := testAnalyzer().Analyze(trendDrives(30, 25))
	require.True(t, analysis.Sufficient)

	week := findWindow(t, analysis.Trends, 7)
	assert.Equal(t, model.TrendDeclining, week.Direction)
	assert.NotEqual(t, model.ConfidenceLow, week.Confidence)
	assert.NotEmpty(t, analysis.Recommendations)
}

func TestWindowBelowTwoPointsStaysStable(t *testing.T) {
	ref := time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC)
	drives := []model.RawDrive{
		effDrive(1, ref.AddDate(0, 0, -40), 30),
		effDrive(2, ref.AddDate(0, 0, -39), 30),
		effDrive(3, ref.AddDate(0, 0, -38), 30),
		effDrive(4, ref.AddDate(0, 0, -1), 25),
		effDrive(5, ref, 25),
	}
	analysis := testAnalyzer().Analyze(drives)
	require.True(t, analysis.Sufficient)

	// The 7-day comparison has an empty previous window.
	week := findWindow(t, analysis.Trends, 7)
	assert.Equal(t, model.TrendStable, week.Direction)
	assert.Equal(t, model.ConfidenceLow, week.Confidence)
}

func TestAnalyzeSummaryAndFactors(t *testing.T) {
	analysis := testAnalyzer().Analyze(trendDrives(25, 30))
	require.True(t, analysis.Sufficient)

	assert.InDelta(t, 27.5, analysis.Current.MeanKWhPer100Mi, 1e-9)
	assert.InDelta(t, 25.0, analysis.Current.BestKWhPer100Mi, 1e-9)
	assert.InDelta(t, 30.0, analysis.Current.WorstKWhPer100Mi, 1e-9)
	assert.Equal(t, 6, analysis.Current.Drives)
	assert.InDelta(t, 180.0, analysis.Current.TotalMiles, 1e-9)

	assert.NotEmpty(t, analysis.Factors.DayStats)
	assert.NotEmpty(t, analysis.Insights)
}
