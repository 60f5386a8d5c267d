package adapter

import (
	"fmt"
	"os"

	m "github.com/mouse-blink/flagstrip/internal/model"
	"gopkg.in/yaml.v3"
)

// FeatureConfigAdapter loads the static feature classification.
type FeatureConfigAdapter interface {
	// Load reads the classification at path. An empty path yields the
	// built-in defaults.
	Load(path m.Path) (m.FeatureConfig, error)
}

// LocalFeatureConfigAdapter reads YAML feature files from disk.
type LocalFeatureConfigAdapter struct{}

// NewLocalFeatureConfigAdapter constructs a LocalFeatureConfigAdapter.
func NewLocalFeatureConfigAdapter() *LocalFeatureConfigAdapter {
	return &LocalFeatureConfigAdapter{}
}

// Load parses a YAML feature file such as:
//
//	prefix: ENABLE
//	guard_suffix: _H
//	extensions: [.c, .h]
//	max_passes: 10
//	enabled: [ENABLE_UART]
//	disabled: [ENABLE_NOAA]
//
// Scalar fields left out fall back to the defaults.
func (a *LocalFeatureConfigAdapter) Load(path m.Path) (m.FeatureConfig, error) {
	if path == "" {
		return m.DefaultFeatureConfig(), nil
	}

	// #nosec G304 - path is supplied by the user on purpose
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.FeatureConfig{}, fmt.Errorf("read feature file: %w", err)
	}

	var cfg m.FeatureConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return m.FeatureConfig{}, fmt.Errorf("parse feature file %s: %w", path, err)
	}

	if len(cfg.Enabled) == 0 && len(cfg.Disabled) == 0 {
		return m.FeatureConfig{}, fmt.Errorf("feature file %s lists no enabled or disabled features", path)
	}

	defaults := m.DefaultFeatureConfig()

	if cfg.FeaturePrefix == "" {
		cfg.FeaturePrefix = defaults.FeaturePrefix
	}

	if cfg.GuardSuffix == "" {
		cfg.GuardSuffix = defaults.GuardSuffix
	}

	if len(cfg.Extensions) == 0 {
		cfg.Extensions = defaults.Extensions
	}

	if cfg.MaxPasses <= 0 {
		cfg.MaxPasses = defaults.MaxPasses
	}

	return cfg, nil
}
