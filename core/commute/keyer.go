package commute

import (
	"strings"

	"github.com/drivesight/drivesight/core/factory"
)

// RouteKeyer turns a pair of free-text location labels into a
// direction-independent clustering key. The key is a best-effort identity,
// not a geocoded one; implementations are selected through the factory
// registry so a geocoding-based keyer can replace the string heuristic
// without touching the clustering algorithm.
type RouteKeyer interface {
	// Normalize reduces a location label to its clustering form. An empty
	// result means the label is unusable.
	Normalize(label string) string
	// Key combines two normalized endpoints into one route key, ignoring
	// direction.
	Key(origin, destination string) string
}

// CityStateKeyer keeps only the last two comma-separated segments of a label,
// approximating city/state and discarding street-level detail.
type CityStateKeyer struct{}

// Normalize implements RouteKeyer.
func (CityStateKeyer) Normalize(label string) string {
	parts := strings.Split(label, ",")
	kept := make([]string, 0, 2)
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) > 2 {
		kept = kept[len(kept)-2:]
	}
	return strings.ToLower(strings.Join(kept, ", "))
}

// Key implements RouteKeyer. The sorted pair makes A→B and B→A the same route.
func (k CityStateKeyer) Key(origin, destination string) string {
	a, b := k.Normalize(origin), k.Normalize(destination)
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

var keyerRegistry = factory.NewRegistry[RouteKeyer]()

// RegisterKeyer adds a route keyer factory identified by name.
func RegisterKeyer(name string, f factory.Factory[RouteKeyer]) error {
	return keyerRegistry.Register(name, f)
}

// NewKeyer creates a RouteKeyer from configuration. An empty type selects the
// city/state heuristic.
func NewKeyer(cfg factory.ModuleConfig) (RouteKeyer, error) {
	if cfg.Type == "" {
		return CityStateKeyer{}, nil
	}
	return keyerRegistry.Create(cfg)
}

func init() {
	_ = RegisterKeyer("citystate", func(map[string]any) (RouteKeyer, error) {
		return CityStateKeyer{}, nil
	})
}
