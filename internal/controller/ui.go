// Package controller provides output adapters for displaying resolution results.
package controller

import (
	m "github.com/mouse-blink/flagstrip/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeResolve StartMode = iota
	ModeFeatures
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithResolveMode sets the UI to batch resolution mode.
func WithResolveMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeResolve
	}
}

// WithFeaturesMode sets the UI to classification listing mode.
func WithFeaturesMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeFeatures
	}
}

// WithViewMode sets the UI to saved report mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeResolve}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// RunInfo describes a batch before any unit is resolved.
type RunInfo struct {
	Root      m.Path
	Units     int
	Threads   int
	MaxPasses int
	DryRun    bool
}

// FeatureListing is the effective classification shown by the features command.
type FeatureListing struct {
	Prefix      string
	GuardSuffix string
	Extensions  []string
	MaxPasses   int
	Enabled     []string
	Disabled    []string
	Conflicts   []string
}

// UI defines the interface for displaying resolution progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayConfigWarnings(warnings []string)
	DisplayRunInfo(info RunInfo)
	DisplayUnitOutcome(outcome m.Outcome)
	DisplaySummary(report m.Report)
	DisplayFeatures(listing FeatureListing)
}
