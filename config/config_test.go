package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"merge_gap_minutes", cfg.Analysis.MergeGapMinutes, 7.0},
		{"merge_battery_gain_pct", cfg.Analysis.MergeBatteryGainPct, 5.0},
		{"charge_gain_pct", cfg.Analysis.ChargeGainPct, 2.0},
		{"pack_capacity_kwh", cfg.Analysis.PackCapacityKWh, 75.0},
		{"miles_per_kwh", cfg.Analysis.MilesPerKWh, 4.0},
		{"max_plausible", cfg.Analysis.MaxPlausibleKWhPer100Mi, 60.0},
		{"highway_speed", cfg.Analysis.HighwaySpeedMph, 55.0},
		{"trend_threshold", cfg.Analysis.TrendThresholdPct, 3.0},
		{"min_efficiency_drives", cfg.Analysis.MinEfficiencyDrives, 5},
		{"min_commute_drives", cfg.Analysis.MinCommuteDrives, 10},
		{"min_route_drives", cfg.Analysis.MinRouteDrives, 3},
		{"route_keyer", cfg.Analysis.RouteKeyer.Type, "citystate"},
		{"home_rate", cfg.Rates.HomeRate, 0.14},
		{"supercharger_rate", cfg.Rates.SuperchargerRate, 0.36},
		{"gas_mpg", cfg.Rates.GasMPG, 30.0},
		{"co2_per_tree_year", cfg.Rates.CO2LbPerTreeYear, 48.0},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: got %v want %v", c.name, c.got, c.want)
		}
	}
	if len(cfg.Analysis.TrendWindowsDays) != 3 || cfg.Analysis.TrendWindowsDays[1] != 30 {
		t.Errorf("trend windows mismatch: %v", cfg.Analysis.TrendWindowsDays)
	}
	if err := cfg.Analysis.Validate(); err != nil {
		t.Errorf("default analysis config invalid: %v", err)
	}
	if err := cfg.Rates.Validate(); err != nil {
		t.Errorf("default rates config invalid: %v", err)
	}
}

func TestAnalysisValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*AnalysisConfig)
	}{
		{"zero merge gap", func(c *AnalysisConfig) { c.MergeGapMinutes = -1 }},
		{"detect above merge threshold", func(c *AnalysisConfig) { c.ChargeGainPct = 10 }},
		{"negative pack", func(c *AnalysisConfig) { c.PackCapacityKWh = -75 }},
		{"zero miles per kwh", func(c *AnalysisConfig) { c.MilesPerKWh = -4 }},
		{"bad trend window", func(c *AnalysisConfig) { c.TrendWindowsDays = []int{7, -30} }},
		{"single-drive routes", func(c *AnalysisConfig) { c.MinRouteDrives = 1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default().Analysis
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestRatesValidate(t *testing.T) {
	rates := Default().Rates
	rates.HomeRate = -0.1
	if err := rates.Validate(); err == nil {
		t.Fatal("negative rate should fail")
	}
	rates = Default().Rates
	rates.PeakStartHour = 25
	if err := rates.Validate(); err == nil {
		t.Fatal("out-of-range hour should fail")
	}
}

func TestRateFor(t *testing.T) {
	rates := Default().Rates
	if got := rates.RateFor("supercharger", 12); got != 0.36 {
		t.Fatalf("supercharger rate: %v", got)
	}
	if got := rates.RateFor("work", 12); got != 0 {
		t.Fatalf("work rate: %v", got)
	}
	if got := rates.RateFor("home", 18); got != 0.14 {
		t.Fatalf("flat home rate: %v", got)
	}

	rates.TimeOfUse = true
	checks := []struct {
		hour int
		want float64
	}{
		{23, 0.10}, // off-peak start
		{2, 0.10},  // across midnight
		{6, 0.10},
		{7, 0.14}, // shoulder
		{12, 0.14},
		{16, 0.28}, // peak start
		{20, 0.28},
		{21, 0.14}, // peak end
	}
	for _, c := range checks {
		if got := rates.RateFor("home", c.hour); got != c.want {
			t.Errorf("hour %d: got %v want %v", c.hour, got, c.want)
		}
	}

	if !rates.IsPeakHour(17) || rates.IsPeakHour(22) {
		t.Error("peak window mismatch")
	}
}

func TestRateForDaytimeOffPeakWindow(t *testing.T) {
	rates := Default().Rates
	rates.TimeOfUse = true
	rates.OffPeakStartHour = 1
	rates.OffPeakEndHour = 5

	checks := []struct {
		hour int
		want float64
	}{
		{1, 0.10}, // off-peak start
		{3, 0.10},
		{5, 0.14}, // off-peak end
		{12, 0.14},
		{18, 0.28}, // still peak
		{23, 0.14}, // outside a non-wrapping window
		{0, 0.14},
	}
	for _, c := range checks {
		if got := rates.RateFor("home", c.hour); got != c.want {
			t.Errorf("hour %d: got %v want %v", c.hour, got, c.want)
		}
	}

	// A peak window that wraps past midnight stays consistent too.
	rates.PeakStartHour = 22
	rates.PeakEndHour = 2
	if !rates.IsPeakHour(23) || !rates.IsPeakHour(1) || rates.IsPeakHour(12) {
		t.Error("wrapping peak window mismatch")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `analysis:
  merge_gap_minutes: 10
  pack_capacity_kwh: 82
rates:
  home_rate: 0.11
  time_of_use: true
metrics:
  sinks:
    - type: "nop"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"merge_gap_minutes", cfg.Analysis.MergeGapMinutes, 10.0},
		{"pack_capacity_kwh", cfg.Analysis.PackCapacityKWh, 82.0},
		{"home_rate", cfg.Rates.HomeRate, 0.11},
		{"time_of_use", cfg.Rates.TimeOfUse, true},
		// Unset fields fall back to defaults.
		{"charge_gain_pct", cfg.Analysis.ChargeGainPct, 2.0},
		{"gas_mpg", cfg.Rates.GasMPG, 30.0},
		{"metrics_sink", len(cfg.Metrics.Sinks) == 1 && cfg.Metrics.Sinks[0].Type == "nop", true},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Fatal("expected unsupported format error")
	}
}

func TestLoadRejectsIncoherentThresholds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `analysis:
  charge_gain_pct: 9
  merge_battery_gain_pct: 5
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}
