package trips

import "github.com/drivesight/drivesight/core/model"

// Autopilot score factors. The score is a deterministic heuristic built from
// speed and distance patterns; it is a labeled estimate, not ground truth.
const (
	autopilotMinDistanceMi = 5

	autopilotHighSpeedMph   = 45
	autopilotMediumSpeedMph = 35

	autopilotLongDistanceMi   = 30
	autopilotMediumDistanceMi = 15
	autopilotShortDistanceMi  = 10

	autopilotSustainedSpeedMph = 50
	autopilotSustainedMin      = 30

	autopilotMaxScore = 0.9
)

// autopilotScore returns a factor in [0, autopilotMaxScore] applied to total
// distance to estimate miles driven on autopilot.
func (s *Segmenter) autopilotScore(md model.MergedDrive) float64 {
	if md.DistanceMi < autopilotMinDistanceMi {
		return 0
	}

	score := 0.0
	switch {
	case md.AvgSpeedMph > autopilotHighSpeedMph:
		score += 0.4
	case md.AvgSpeedMph > autopilotMediumSpeedMph:
		score += 0.2
	}

	switch {
	case md.DistanceMi > autopilotLongDistanceMi:
		score += 0.3
	case md.DistanceMi > autopilotMediumDistanceMi:
		score += 0.2
	case md.DistanceMi > autopilotShortDistanceMi:
		score += 0.1
	}

	// Steady speed relative to the peak suggests cruise-style driving.
	if md.MaxSpeedMph > 0 {
		ratio := md.AvgSpeedMph / md.MaxSpeedMph
		switch {
		case ratio >= 0.70:
			score += 0.2
		case ratio >= 0.55:
			score += 0.15
		case ratio >= 0.40:
			score += 0.1
		}
	}

	if md.AvgSpeedMph > autopilotSustainedSpeedMph && md.DrivingDurationMin > autopilotSustainedMin {
		score += 0.1
	}

	if score > autopilotMaxScore {
		score = autopilotMaxScore
	}
	return score
}
