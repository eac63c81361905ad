package app

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivesight/drivesight/config"
	"github.com/drivesight/drivesight/core/model"
)

func testService(t *testing.T) *Service {
	t.Helper()
	svc, err := New(config.Default())
	require.NoError(t, err)
	return svc
}

func TestServiceMergeTrips(t *testing.T) {
	svc := testService(t)
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	drives := []model.RawDrive{
		{ID: 1, StartedAt: start.Unix(), EndedAt: start.Add(30 * time.Minute).Unix(),
			DistanceMi: 12, StartingBattery: 80, EndingBattery: 76},
		{ID: 2, StartedAt: start.Add(35 * time.Minute).Unix(), EndedAt: start.Add(55 * time.Minute).Unix(),
			DistanceMi: 8, StartingBattery: 76, EndingBattery: 73},
	}

	merged, err := svc.MergeTrips(drives)
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.Equal(t, []int64{1, 2}, merged[0].DriveIDs)
	assert.NotEmpty(t, merged[0].ID)
}

func TestServiceRejectsMalformedDrives(t *testing.T) {
	svc := testService(t)
	bad := []model.RawDrive{{ID: 1, StartedAt: 200, EndedAt: 100}}

	_, err := svc.MergeTrips(bad)
	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "ended_at", verr.Field)

	_, _, err = svc.DetectCharging(bad)
	assert.Error(t, err)
	_, err = svc.AnalyzeEfficiency(bad)
	assert.Error(t, err)
	_, err = svc.AnalyzeCommutes(bad)
	assert.Error(t, err)
	_, err = svc.TripCost(bad)
	assert.Error(t, err)
}

func TestServiceDetectCharging(t *testing.T) {
	svc := testService(t)
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	drives := []model.RawDrive{
		{ID: 1, StartedAt: start.Unix(), EndedAt: start.Add(30 * time.Minute).Unix(),
			DistanceMi: 15, StartingBattery: 70, EndingBattery: 60,
			EndLocation: "Mall Dr, Springfield, IL"},
		{ID: 2, StartedAt: start.Add(3 * time.Hour).Unix(), EndedAt: start.Add(4 * time.Hour).Unix(),
			DistanceMi: 15, StartingBattery: 75, EndingBattery: 65},
	}

	sessions, analysis, err := svc.DetectCharging(drives)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 1, analysis.TotalSessions)
	assert.NotEmpty(t, analysis.Recommendations)
}

func TestServiceInsufficientDataPassesThrough(t *testing.T) {
	svc := testService(t)

	eff, err := svc.AnalyzeEfficiency(nil)
	require.NoError(t, err)
	assert.False(t, eff.Sufficient)

	com, err := svc.AnalyzeCommutes(nil)
	require.NoError(t, err)
	assert.False(t, com.Sufficient)
}

func TestServiceEstimateFutureTrip(t *testing.T) {
	svc := testService(t)
	est := svc.EstimateFutureTrip(300, 65)
	assert.True(t, est.ChargingNeeded)
	assert.GreaterOrEqual(t, est.ChargingStopsNeeded, 1)
}
