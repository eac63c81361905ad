package charging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivesight/drivesight/config"
	"github.com/drivesight/drivesight/core/model"
	"github.com/drivesight/drivesight/infra/logger"
)

var monday = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func testConfigs() (config.AnalysisConfig, config.RatesConfig) {
	var cfg config.AnalysisConfig
	var rates config.RatesConfig
	cfg.SetDefaults()
	rates.SetDefaults()
	return cfg, rates
}

func testDetector() *Detector {
	cfg, rates := testConfigs()
	return NewDetector(cfg, rates, nil, logger.NopLogger{})
}

func gapDrives(gap time.Duration, endBatt, nextStartBatt float64, location string) []model.RawDrive {
	d1 := model.RawDrive{
		ID: 1, StartedAt: monday.Unix(), EndedAt: monday.Add(30 * time.Minute).Unix(),
		DistanceMi: 15, StartingBattery: endBatt + 5, EndingBattery: endBatt,
		EndLocation: location,
	}
	start2 := monday.Add(30*time.Minute + gap)
	d2 := model.RawDrive{
		ID: 2, StartedAt: start2.Unix(), EndedAt: start2.Add(30 * time.Minute).Unix(),
		DistanceMi: 15, StartingBattery: nextStartBatt, EndingBattery: nextStartBatt - 5,
	}
	return []model.RawDrive{d1, d2}
}

func TestDetectNoGainReturnsEmpty(t *testing.T) {
	drives := gapDrives(2*time.Hour, 70, 70, "Cafe, Springfield, IL")
	sessions := testDetector().Detect(drives)
	assert.Empty(t, sessions)
}

func TestDetectEmitsCostedSession(t *testing.T) {
	drives := gapDrives(2*time.Hour, 60, 80, "Garage Rd, Springfield, IL")
	sessions := testDetector().Detect(drives)
	require.Len(t, sessions, 1)

	s := sessions[0]
	assert.Equal(t, drives[0].EndedAt, s.StartedAt)
	assert.Equal(t, drives[1].StartedAt, s.EndedAt)
	assert.Equal(t, "Garage Rd, Springfield, IL", s.Location)
	assert.InDelta(t, 20.0, s.BatteryGain, 1e-9)
	assert.InDelta(t, 15.0, s.EnergyAddedKWh, 1e-9) // 20% of 75 kWh
	assert.InDelta(t, 60.0, s.MilesRestored, 1e-9)  // 4 mi/kWh
	assert.InDelta(t, 120.0, s.DurationMin, 1e-9)
	assert.InDelta(t, 7.5, s.AvgChargeRateKW, 1e-9)
	// 2 h stay with a modest gain is a public charge at the public rate.
	assert.Equal(t, model.LocationPublic, s.Type)
	assert.InDelta(t, 15*0.30, s.CostUSD, 1e-9)
}

func TestClassifyPriorityOrder(t *testing.T) {
	d := testDetector()
	d.mem.MarkHome("My House, Springfield, IL")
	d.mem.MarkWork("Office Park, Springfield, IL")

	cases := []struct {
		name     string
		location string
		duration float64
		gain     float64
		want     model.LocationType
	}{
		{"supercharger marker wins", "Tesla Supercharger - Anytown, MO", 300, 10, model.LocationSupercharger},
		{"fast charge signature", "Rest Stop, I-70, MO", 30, 45, model.LocationSupercharger},
		{"learned home beats duration", "My House, Springfield, IL", 120, 10, model.LocationHome},
		{"learned work beats duration", "Office Park, Springfield, IL", 120, 10, model.LocationWork},
		{"overnight stay is home", "Unknown Pl, Springfield, IL", 500, 10, model.LocationHome},
		{"long stay defaults to work", "Somewhere Ct, Springfield, IL", 300, 10, model.LocationWork},
		{"midlength stay is public", "Mall Dr, Springfield, IL", 120, 10, model.LocationPublic},
		{"short stay is unknown", "Stoplight St, Springfield, IL", 20, 5, model.LocationUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, d.classify(tc.location, tc.duration, tc.gain))
		})
	}
}

func TestClassifyThreeHourLargeGainIsNotPublic(t *testing.T) {
	// 40% -> 85% over 3 h: too slow for the fast-charge signature, too much
	// energy for a public stop.
	got := testDetector().classify("Driveway Ln, Springfield, IL", 180, 45)
	if got != model.LocationHome && got != model.LocationWork {
		t.Fatalf("expected home or work, got %s", got)
	}
}

func TestClassifyLongStayPromotionToHome(t *testing.T) {
	d := testDetector()
	loc := "Apartment Lot, Springfield, IL"
	for i := 0; i < 5; i++ {
		assert.Equal(t, model.LocationWork, d.classify(loc, 300, 10), "visit %d", i+1)
	}
	// Sixth long stay crosses the promotion threshold.
	assert.Equal(t, model.LocationHome, d.classify(loc, 300, 10))
	assert.True(t, d.mem.IsHome(loc))
}

func TestLearnLocationsOvernightHome(t *testing.T) {
	// Three evenings ending at the same place with 9 h overnight stays.
	var drives []model.RawDrive
	for day := 0; day < 3; day++ {
		evening := monday.AddDate(0, 0, day).Add(14 * time.Hour) // 22:00 UTC
		drives = append(drives, model.RawDrive{
			ID: int64(2*day + 1), StartedAt: evening.Add(-30 * time.Minute).Unix(), EndedAt: evening.Unix(),
			EndLocation: "742 Evergreen Terrace, Springfield, IL",
		})
		morning := evening.Add(9 * time.Hour)
		drives = append(drives, model.RawDrive{
			ID: int64(2*day + 2), StartedAt: morning.Unix(), EndedAt: morning.Add(30 * time.Minute).Unix(),
			EndLocation: "Elsewhere Ave, Springfield, IL",
		})
	}

	d := testDetector()
	d.LearnLocations(drives)
	assert.True(t, d.mem.IsHome("742 Evergreen Terrace, Springfield, IL"))
	assert.False(t, d.mem.IsHome("Elsewhere Ave, Springfield, IL"))
}

func TestLearnLocationsWorkByVisits(t *testing.T) {
	cfg, rates := testConfigs()
	cfg.WorkVisitThreshold = 2
	d := NewDetector(cfg, rates, nil, logger.NopLogger{})

	// Daytime stays of 7 h at the office, repeated past the visit threshold.
	var drives []model.RawDrive
	for day := 0; day < 3; day++ {
		morning := monday.AddDate(0, 0, day) // 08:00 UTC
		drives = append(drives, model.RawDrive{
			ID: int64(2*day + 1), StartedAt: morning.Add(-30 * time.Minute).Unix(), EndedAt: morning.Unix(),
			EndLocation: "Initech Campus, Springfield, IL",
		})
		evening := morning.Add(7 * time.Hour)
		drives = append(drives, model.RawDrive{
			ID: int64(2*day + 2), StartedAt: evening.Unix(), EndedAt: evening.Add(30 * time.Minute).Unix(),
			EndLocation: "Elsewhere Ave, Springfield, IL",
		})
	}

	d.LearnLocations(drives)
	assert.True(t, d.mem.IsWork("Initech Campus, Springfield, IL"))
}

func TestMemoryKeyIsCaseInsensitive(t *testing.T) {
	m := NewLocationMemory()
	m.MarkHome("  My House, Springfield, IL ")
	assert.True(t, m.IsHome("my house, springfield, il"))

	m.MarkWork("Office")
	assert.Equal(t, []string{"office"}, m.WorkLocations())

	m.Reset()
	assert.False(t, m.IsHome("my house, springfield, il"))
	assert.Empty(t, m.WorkLocations())
}
