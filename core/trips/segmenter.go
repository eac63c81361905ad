package trips

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/drivesight/drivesight/config"
	"github.com/drivesight/drivesight/core/logger"
	"github.com/drivesight/drivesight/core/model"
)

// Segmenter merges raw drives into journeys. It is a pure, synchronous
// computation; a Segmenter is safe for concurrent use.
type Segmenter struct {
	cfg config.AnalysisConfig
	log logger.Logger
}

// NewSegmenter returns a Segmenter using the provided thresholds.
func NewSegmenter(cfg config.AnalysisConfig, log logger.Logger) *Segmenter {
	return &Segmenter{cfg: cfg, log: log}
}

// Merge groups consecutive drives into journeys. Input need not be sorted;
// output is ordered by start time. Empty input yields empty output.
//
// Two drives merge when the gap between them is under the configured stop
// length, or when the battery rose enough across the gap to indicate the stop
// was a charge rather than the end of the trip.
func (s *Segmenter) Merge(drives []model.RawDrive) []model.MergedDrive {
	if len(drives) == 0 {
		return nil
	}
	sorted := model.SortedByStart(drives)

	var merged []model.MergedDrive
	group := []model.RawDrive{sorted[0]}
	var stops []model.Stop
	for _, next := range sorted[1:] {
		prev := group[len(group)-1]
		gapMin := float64(next.StartedAt-prev.EndedAt) / 60
		batteryDelta := next.StartingBattery - prev.EndingBattery
		if gapMin < s.cfg.MergeGapMinutes || batteryDelta > s.cfg.MergeBatteryGainPct {
			stops = append(stops, s.stop(prev, next, gapMin, batteryDelta))
			group = append(group, next)
			continue
		}
		md, err := s.newMergedDrive(group, stops)
		if err != nil {
			// Unreachable: groups are never empty here.
			s.log.Errorf("merge group: %v", err)
			continue
		}
		merged = append(merged, md)
		group = []model.RawDrive{next}
		stops = nil
	}
	md, err := s.newMergedDrive(group, stops)
	if err != nil {
		s.log.Errorf("merge final group: %v", err)
		return merged
	}
	return append(merged, md)
}

func (s *Segmenter) stop(prev, next model.RawDrive, gapMin, batteryDelta float64) model.Stop {
	kind := model.StopExcluded
	switch {
	case batteryDelta > s.cfg.MergeBatteryGainPct:
		kind = model.StopCharging
	case gapMin < s.cfg.MergeGapMinutes:
		kind = model.StopShort
	default:
		s.log.Warnf("stop at %q neither short nor charging (gap %.1f min, battery %+.1f)",
			prev.EndLocation, gapMin, batteryDelta)
	}
	return model.Stop{
		Location:     prev.EndLocation,
		StartedAt:    prev.EndedAt,
		EndedAt:      next.StartedAt,
		DurationMin:  gapMin,
		Kind:         kind,
		BatteryDelta: batteryDelta,
	}
}

// newMergedDrive aggregates a non-empty group of consecutive drives. An empty
// group is a logic error.
func (s *Segmenter) newMergedDrive(group []model.RawDrive, stops []model.Stop) (model.MergedDrive, error) {
	if len(group) == 0 {
		return model.MergedDrive{}, fmt.Errorf("empty drive group")
	}
	first, last := group[0], group[len(group)-1]

	md := model.MergedDrive{
		ID:            uuid.NewString(),
		StartedAt:     first.StartedAt,
		EndedAt:       last.EndedAt,
		StartLocation: first.StartLocation,
		EndLocation:   last.EndLocation,
		DurationMin:   float64(last.EndedAt-first.StartedAt) / 60,
		Stops:         stops,
	}
	for _, d := range group {
		md.DriveIDs = append(md.DriveIDs, d.ID)
		md.DistanceMi += d.DistanceMi
		md.DrivingDurationMin += d.DurationMin()
		md.BatteryUsed += d.BatteryUsed()
		if d.MaxSpeedMph > md.MaxSpeedMph {
			md.MaxSpeedMph = d.MaxSpeedMph
		}
	}
	if md.DrivingDurationMin > 0 {
		md.AvgSpeedMph = md.DistanceMi / (md.DrivingDurationMin / 60)
	}

	md.AutopilotScore = s.autopilotScore(md)
	md.PredictedAutopilotMi = md.AutopilotScore * md.DistanceMi
	return md, nil
}
