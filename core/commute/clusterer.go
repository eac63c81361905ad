package commute

import (
	"fmt"
	"sort"

	"github.com/drivesight/drivesight/config"
	"github.com/drivesight/drivesight/core/logger"
	"github.com/drivesight/drivesight/core/model"
)

// Clusterer groups drives by normalized origin/destination into recurring
// routes. Pure and stateless; safe for concurrent use.
type Clusterer struct {
	cfg   config.AnalysisConfig
	rates config.RatesConfig
	keyer RouteKeyer
	log   logger.Logger
}

// NewClusterer returns a Clusterer. A nil keyer selects the city/state
// heuristic.
func NewClusterer(cfg config.AnalysisConfig, rates config.RatesConfig, keyer RouteKeyer, log logger.Logger) *Clusterer {
	if keyer == nil {
		keyer = CityStateKeyer{}
	}
	return &Clusterer{cfg: cfg, rates: rates, keyer: keyer, log: log}
}

// Analyze clusters drives into routes and computes per-route and system-wide
// statistics. Fewer drives than the minimum yields an explicit insufficient
// result.
func (c *Clusterer) Analyze(drives []model.RawDrive) model.CommuteAnalysis {
	if len(drives) < c.cfg.MinCommuteDrives {
		return model.CommuteAnalysis{
			TotalDrives: len(drives),
			Reason: fmt.Sprintf("need at least %d drives to identify commute routes, got %d",
				c.cfg.MinCommuteDrives, len(drives)),
		}
	}
	sorted := model.SortedByStart(drives)

	groups := make(map[string][]model.RawDrive)
	for _, d := range sorted {
		if c.keyer.Normalize(d.StartLocation) == "" || c.keyer.Normalize(d.EndLocation) == "" {
			continue
		}
		key := c.keyer.Key(d.StartLocation, d.EndLocation)
		groups[key] = append(groups[key], d)
	}

	analysis := model.CommuteAnalysis{
		Sufficient:  true,
		TotalDrives: len(drives),
	}
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		members := groups[key]
		if len(members) < c.cfg.MinRouteDrives {
			continue
		}
		analysis.Routes = append(analysis.Routes, c.routeStats(key, members))
		analysis.ClusteredDrives += len(members)
	}
	// Most frequent route first.
	sort.SliceStable(analysis.Routes, func(i, j int) bool {
		return analysis.Routes[i].Drives > analysis.Routes[j].Drives
	})

	analysis.Weekly = c.weeklySummary(sorted)
	analysis.Recommendations = c.recommendations(analysis)
	c.log.Debugf("clustered %d of %d drives into %d routes",
		analysis.ClusteredDrives, analysis.TotalDrives, len(analysis.Routes))
	return analysis
}
