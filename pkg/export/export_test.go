package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivesight/drivesight/core/model"
)

func TestReadDrives(t *testing.T) {
	in := `[
  {"id": 1, "started_at": 1767340800, "ended_at": 1767342600, "distance_mi": 12.5,
   "starting_battery": 80, "ending_battery": 76,
   "start_location": "A St, Springfield, IL", "end_location": "B Ave, Springfield, IL",
   "avg_speed_mph": 25, "max_speed_mph": 45}
]`
	drives, err := ReadDrives(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, drives, 1)
	assert.Equal(t, int64(1), drives[0].ID)
	assert.Equal(t, 12.5, drives[0].DistanceMi)
	assert.Equal(t, "B Ave, Springfield, IL", drives[0].EndLocation)
}

func TestReadDrivesRejectsMalformedJSON(t *testing.T) {
	_, err := ReadDrives(strings.NewReader(`{"not": "a list"`))
	assert.Error(t, err)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := WriteJSON(&buf, map[string]int{"drives": 3})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"drives": 3`)
}

func TestWriteTripsCSV(t *testing.T) {
	trips := []model.MergedDrive{
		{ID: "j1", StartedAt: 1767340800, EndedAt: 1767344400, StartLocation: "A", EndLocation: "B",
			DistanceMi: 20, DurationMin: 60, AvgSpeedMph: 30,
			Stops: []model.Stop{{Kind: model.StopShort}}, PredictedAutopilotMi: 8},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteTripsCSV(&buf, trips))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "id", records[0][0])
	assert.Equal(t, "j1", records[1][0])
	assert.Equal(t, "20.00", records[1][5])
	assert.Equal(t, "1", records[1][8]) // stop count
}

func TestWriteSessionsCSV(t *testing.T) {
	sessions := []model.ChargingSession{
		{ID: "s1", StartedAt: 1767340800, EndedAt: 1767348000, Location: "Garage",
			Type: model.LocationHome, BatteryGain: 20, EnergyAddedKWh: 15, CostUSD: 2.10,
			MilesRestored: 60, AvgChargeRateKW: 7.5},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteSessionsCSV(&buf, sessions))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "home", records[1][4])
	assert.Equal(t, "2.10", records[1][7])
}
