package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/drivesight/drivesight/core/model"
)

// ReadDrives decodes an already-fetched RawDrive list from JSON. The engine
// never fetches; callers hand it a finite in-memory batch.
func ReadDrives(r io.Reader) ([]model.RawDrive, error) {
	var drives []model.RawDrive
	dec := json.NewDecoder(r)
	if err := dec.Decode(&drives); err != nil {
		return nil, fmt.Errorf("decode drives: %w", err)
	}
	return drives, nil
}

// WriteJSON writes any analysis result to w as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteTripsCSV writes merged drives to w in CSV format.
func WriteTripsCSV(w io.Writer, trips []model.MergedDrive) error {
	cw := csv.NewWriter(w)
	header := []string{"id", "started_at", "ended_at", "start_location", "end_location",
		"distance_mi", "duration_min", "avg_speed_mph", "stops", "predicted_autopilot_mi"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, t := range trips {
		rec := []string{
			t.ID,
			time.Unix(t.StartedAt, 0).UTC().Format(time.RFC3339),
			time.Unix(t.EndedAt, 0).UTC().Format(time.RFC3339),
			t.StartLocation,
			t.EndLocation,
			formatFloat(t.DistanceMi),
			formatFloat(t.DurationMin),
			formatFloat(t.AvgSpeedMph),
			strconv.Itoa(len(t.Stops)),
			formatFloat(t.PredictedAutopilotMi),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSessionsCSV writes charging sessions to w in CSV format.
func WriteSessionsCSV(w io.Writer, sessions []model.ChargingSession) error {
	cw := csv.NewWriter(w)
	header := []string{"id", "started_at", "ended_at", "location", "type",
		"battery_gain", "energy_added_kwh", "cost_usd", "miles_restored", "avg_charge_rate_kw"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range sessions {
		rec := []string{
			s.ID,
			time.Unix(s.StartedAt, 0).UTC().Format(time.RFC3339),
			time.Unix(s.EndedAt, 0).UTC().Format(time.RFC3339),
			s.Location,
			string(s.Type),
			formatFloat(s.BatteryGain),
			formatFloat(s.EnergyAddedKWh),
			formatFloat(s.CostUSD),
			formatFloat(s.MilesRestored),
			formatFloat(s.AvgChargeRateKW),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
