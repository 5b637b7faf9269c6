package cmd

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/aitzazisstuffed/reasons/internal/runtime"
)

// fileConfig mirrors runtime.Config with YAML tags; any field left unset
// in the document keeps DefaultConfig's value (spec §6: "configuration
// options (typed)").
type fileConfig struct {
	GolfMode            *bool   `yaml:"golf_mode"`
	MaxRecursionDepth   *uint32 `yaml:"max_recursion_depth"`
	TracingEnabled      *bool   `yaml:"tracing_enabled"`
	ExplanationsEnabled *bool   `yaml:"explanations_enabled"`
	GCThreshold         *uint64 `yaml:"gc_threshold"`
}

// loadConfig reads a YAML config file at path, if non-empty, layering it
// over runtime.DefaultConfig(). An empty path returns the defaults
// unmodified.
func loadConfig(path string) (runtime.Config, error) {
	cfg := runtime.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, err
	}

	if fc.GolfMode != nil {
		cfg.GolfMode = *fc.GolfMode
	}
	if fc.MaxRecursionDepth != nil {
		cfg.MaxRecursionDepth = *fc.MaxRecursionDepth
	}
	if fc.TracingEnabled != nil {
		cfg.TracingEnabled = *fc.TracingEnabled
	}
	if fc.ExplanationsEnabled != nil {
		cfg.ExplanationsEnabled = *fc.ExplanationsEnabled
	}
	if fc.GCThreshold != nil {
		cfg.GCThreshold = *fc.GCThreshold
	}
	return cfg, nil
}
