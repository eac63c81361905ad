package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/drivesight/drivesight/config"
	"github.com/drivesight/drivesight/core/charging"
	"github.com/drivesight/drivesight/core/commute"
	"github.com/drivesight/drivesight/core/cost"
	"github.com/drivesight/drivesight/core/efficiency"
	coremetrics "github.com/drivesight/drivesight/core/metrics"
	"github.com/drivesight/drivesight/core/model"
	"github.com/drivesight/drivesight/core/trips"
	"github.com/drivesight/drivesight/infra/logger"
)

// Service wires the analyzers together behind one facade. It validates input
// once, runs the requested pass, and records an analysis event per run.
//
// The Service owns a per-session LocationMemory through its charging
// detector; create one Service per analysis session, or guard concurrent
// charging calls externally.
type Service struct {
	cfg        *config.Config
	segmenter  *trips.Segmenter
	detector   *charging.Detector
	efficiency *efficiency.Analyzer
	commutes   *commute.Clusterer
	costs      *cost.Calculator
	sink       coremetrics.MetricsSink
	log        logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("analytics")

	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	keyer, err := commute.NewKeyer(cfg.Analysis.RouteKeyer)
	if err != nil {
		return nil, fmt.Errorf("route keyer: %w", err)
	}

	return &Service{
		cfg:        cfg,
		segmenter:  trips.NewSegmenter(cfg.Analysis, logg),
		detector:   charging.NewDetector(cfg.Analysis, cfg.Rates, charging.NewLocationMemory(), logg),
		efficiency: efficiency.NewAnalyzer(cfg.Analysis, logg),
		commutes:   commute.NewClusterer(cfg.Analysis, cfg.Rates, keyer, logg),
		costs:      cost.NewCalculator(cfg.Analysis, cfg.Rates, logg),
		sink:       sink,
		log:        logg,
	}, nil
}

// MergeTrips validates the drives and merges them into journeys.
func (s *Service) MergeTrips(drives []model.RawDrive) ([]model.MergedDrive, error) {
	if err := model.ValidateDrives(drives); err != nil {
		return nil, err
	}
	start := time.Now()
	merged := s.segmenter.Merge(drives)
	s.record("trips", len(drives), len(merged), start)
	return merged, nil
}

// DetectCharging learns locations from the drives, detects charging sessions
// and attributes cost.
func (s *Service) DetectCharging(drives []model.RawDrive) ([]model.ChargingSession, model.ChargingAnalysis, error) {
	if err := model.ValidateDrives(drives); err != nil {
		return nil, model.ChargingAnalysis{}, err
	}
	start := time.Now()
	s.detector.LearnLocations(drives)
	sessions := s.detector.Detect(drives)
	analysis := s.detector.AnalyzeCosts(sessions)
	s.record("charging", len(drives), len(sessions), start)
	return sessions, analysis, nil
}

// AnalyzeEfficiency computes the efficiency trend report.
func (s *Service) AnalyzeEfficiency(drives []model.RawDrive) (model.EfficiencyAnalysis, error) {
	if err := model.ValidateDrives(drives); err != nil {
		return model.EfficiencyAnalysis{}, err
	}
	start := time.Now()
	analysis := s.efficiency.Analyze(drives)
	s.record("efficiency", len(drives), analysis.Current.Drives, start)
	return analysis, nil
}

// AnalyzeCommutes computes the recurring-route report.
func (s *Service) AnalyzeCommutes(drives []model.RawDrive) (model.CommuteAnalysis, error) {
	if err := model.ValidateDrives(drives); err != nil {
		return model.CommuteAnalysis{}, err
	}
	start := time.Now()
	analysis := s.commutes.Analyze(drives)
	s.record("commute", len(drives), len(analysis.Routes), start)
	return analysis, nil
}

// TripCost computes the cost/emissions report at the configured default
// rates.
func (s *Service) TripCost(drives []model.RawDrive) (model.TripCostAnalysis, error) {
	if err := model.ValidateDrives(drives); err != nil {
		return model.TripCostAnalysis{}, err
	}
	start := time.Now()
	analysis := s.costs.Cost(drives, s.costs.DefaultParams())
	s.record("cost", len(drives), analysis.Drives, start)
	return analysis, nil
}

// EstimateFutureTrip projects a hypothetical trip into a charging plan.
func (s *Service) EstimateFutureTrip(distanceMi, currentChargePct float64) model.FutureTripEstimate {
	return s.costs.EstimateFutureTrip(distanceMi, currentChargePct)
}

func (s *Service) record(analysis string, drives, results int, start time.Time) {
	ev := coremetrics.AnalysisEvent{
		RunID:    uuid.NewString(),
		Analysis: analysis,
		Drives:   drives,
		Results:  results,
		Duration: time.Since(start),
		Time:     time.Now(),
	}
	if err := s.sink.RecordAnalysis([]coremetrics.AnalysisEvent{ev}); err != nil {
		s.log.Warnf("record %s analysis: %v", analysis, err)
	}
}
