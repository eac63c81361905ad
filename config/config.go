package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/drivesight/drivesight/core/metrics"
)

// Config is the root configuration of the analytics engine.
type Config struct {
	Analysis AnalysisConfig `json:"analysis"`
	Rates    RatesConfig    `json:"rates"`
	Metrics  metrics.Config `json:"metrics"`
}

// Default returns a Config carrying the documented defaults, without reading
// any file. Useful for library callers and tests.
func Default() *Config {
	var cfg Config
	cfg.Analysis.SetDefaults()
	cfg.Rates.SetDefaults()
	return &cfg
}

// Load reads the configuration from a YAML or JSON file, applies environment
// overrides prefixed with DS_, fills defaults and validates.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("DS_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "ds_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Analysis.SetDefaults()
	cfg.Rates.SetDefaults()
	if err := cfg.Analysis.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Rates.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
