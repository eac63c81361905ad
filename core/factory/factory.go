package factory

import (
	"fmt"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// ModuleConfig selects a pluggable implementation by name and carries its raw
// settings. Metrics sinks and route keyers are both configured this way: the
// Type string picks the factory and Conf holds whatever that factory decodes.
type ModuleConfig struct {
	Type string         `json:"type"`
	Conf map[string]any `json:"conf"`
}

// Factory builds a T from the raw settings of a ModuleConfig. Implementations
// typically call Decode to turn the map into their own config struct.
type Factory[T any] func(map[string]any) (T, error)

// Registry maps type names to factories. Packages register their
// implementations at init time and Create resolves a ModuleConfig against
// them, so the set of available sinks or keyers is fixed once imports are.
type Registry[T any] struct {
	mu     sync.RWMutex
	byName map[string]Factory[T]
}

// NewRegistry returns a registry with no factories.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{byName: make(map[string]Factory[T])}
}

// Register binds a factory to a type name. Names are claimed once; a second
// registration under the same name is an error rather than an override.
func (r *Registry[T]) Register(name string, f Factory[T]) error {
	if f == nil {
		return fmt.Errorf("nil factory for %q", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byName[name]; taken {
		return fmt.Errorf("duplicate factory %q", name)
	}
	r.byName[name] = f
	return nil
}

// Create resolves cfg.Type and invokes the matching factory with cfg.Conf.
func (r *Registry[T]) Create(cfg ModuleConfig) (T, error) {
	r.mu.RLock()
	f, ok := r.byName[cfg.Type]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("no factory registered for %q", cfg.Type)
	}
	return f(cfg.Conf)
}

// Decode maps raw module settings onto out, matching keys against json tags
// so the same tags serve the configuration file and the factory config.
func Decode(data map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}
