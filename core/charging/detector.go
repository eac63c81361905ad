package charging

import (
	"github.com/google/uuid"

	"github.com/drivesight/drivesight/config"
	"github.com/drivesight/drivesight/core/logger"
	"github.com/drivesight/drivesight/core/model"
)

// Detector scans the gaps between raw drives for battery-level increases and
// turns them into classified, costed charging sessions. The injected
// LocationMemory is the only mutable state; see its documentation for the
// concurrency contract.
type Detector struct {
	cfg   config.AnalysisConfig
	rates config.RatesConfig
	mem   *LocationMemory
	log   logger.Logger
}

// NewDetector returns a Detector. A nil memory gets a fresh one, scoped to
// this detector instance.
func NewDetector(cfg config.AnalysisConfig, rates config.RatesConfig, mem *LocationMemory, log logger.Logger) *Detector {
	if mem == nil {
		mem = NewLocationMemory()
	}
	return &Detector{cfg: cfg, rates: rates, mem: mem, log: log}
}

// Memory exposes the learned-location memory for inspection.
func (d *Detector) Memory() *LocationMemory { return d.mem }

// Detect emits one session per gap between consecutive drives where the
// battery rose above the detection threshold. Input need not be sorted.
func (d *Detector) Detect(drives []model.RawDrive) []model.ChargingSession {
	sorted := model.SortedByStart(drives)

	var sessions []model.ChargingSession
	for i := 0; i+1 < len(sorted); i++ {
		prev, next := sorted[i], sorted[i+1]
		gain := next.StartingBattery - prev.EndingBattery
		if gain <= d.cfg.ChargeGainPct {
			continue
		}
		sessions = append(sessions, d.newSession(prev, next, gain))
	}
	d.log.Debugf("detected %d charging sessions in %d drives", len(sessions), len(drives))
	return sessions
}

func (d *Detector) newSession(prev, next model.RawDrive, gain float64) model.ChargingSession {
	durationMin := float64(next.StartedAt-prev.EndedAt) / 60
	location := prev.EndLocation
	startHour := prev.EndTime().Hour()

	typ := d.classify(location, durationMin, gain)
	energy := gain / 100 * d.cfg.PackCapacityKWh
	cost := energy * d.rates.RateFor(string(typ), startHour)

	var rateKW float64
	if durationMin > 0 {
		rateKW = energy / (durationMin / 60)
	}
	return model.ChargingSession{
		ID:              uuid.NewString(),
		StartedAt:       prev.EndedAt,
		EndedAt:         next.StartedAt,
		DurationMin:     durationMin,
		Location:        location,
		Type:            typ,
		StartingBattery: prev.EndingBattery,
		EndingBattery:   next.StartingBattery,
		BatteryGain:     gain,
		EnergyAddedKWh:  energy,
		CostUSD:         cost,
		MilesRestored:   energy * d.cfg.MilesPerKWh,
		AvgChargeRateKW: rateKW,
	}
}

// LearnLocations infers home and work labels from stay patterns between
// drives and stores them in the detector's memory. The location with the most
// overnight stays becomes home; frequently visited locations with long
// average stays become work.
func (d *Detector) LearnLocations(drives []model.RawDrive) {
	sorted := model.SortedByStart(drives)

	overnight := make(map[string]int)
	visits := make(map[string]int)
	totalStayMin := make(map[string]float64)
	for i := 0; i+1 < len(sorted); i++ {
		prev, next := sorted[i], sorted[i+1]
		loc := memoryKey(prev.EndLocation)
		if loc == "" {
			continue
		}
		stayMin := float64(next.StartedAt-prev.EndedAt) / 60
		visits[loc]++
		totalStayMin[loc] += stayMin

		endHour := prev.EndTime().Hour()
		if stayMin > 6*60 && (endHour > 20 || endHour < 6) {
			overnight[loc]++
		}
	}

	home := ""
	best := 0
	for loc, n := range overnight {
		if n > best || (n == best && loc < home) {
			home, best = loc, n
		}
	}
	if home != "" {
		d.mem.MarkHome(home)
		d.log.Debugw("learned home location", map[string]any{"location": home, "overnight_stays": best})
	}

	for loc, n := range visits {
		if loc == home || n <= d.cfg.WorkVisitThreshold {
			continue
		}
		if totalStayMin[loc]/float64(n) > 6*60 {
			d.mem.MarkWork(loc)
			d.log.Debugw("learned work location", map[string]any{"location": loc, "visits": n})
		}
	}
}
