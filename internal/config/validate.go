package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/michaelrommel/progress-view/internal/errors"
)

var (
	progressTypes = map[string]bool{"": true, "PERCENTAGE": true, "NUMBER": true}
	fieldStyles   = map[string]bool{"": true, "NONE": true, "SPARK": true, "GAUGE": true}
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but progressview only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade progressview or lower the version field")
	}

	if err := validateProgress(cfg.Progress); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'progress' section in your .progressview.yaml.")
	}

	if err := validateStats(cfg.Stats); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'stats' section in your .progressview.yaml.")
	}

	if err := validateDemo(cfg.Demo); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'demo' section in your .progressview.yaml.")
	}

	// The engine has the final word on widths and gauge colours.
	return cfg.ToDashboard().Validate()
}

func validateProgress(p ProgressConfig) error {
	if !progressTypes[strings.ToUpper(p.Type)] {
		return fmt.Errorf("progress type %q is not PERCENTAGE or NUMBER", p.Type)
	}
	if math.IsNaN(p.Max) || math.IsInf(p.Max, 0) || p.Max < 0 {
		return fmt.Errorf("progress max %v must be a finite, non-negative number", p.Max)
	}
	return nil
}

func validateStats(stats [][]FieldConfig) error {
	for i, line := range stats {
		for _, f := range line {
			if !fieldStyles[strings.ToUpper(f.Style)] {
				return fmt.Errorf("field %q on line %d has unknown style %q (want NONE, SPARK or GAUGE)", f.Name, i+1, f.Style)
			}
		}
	}
	return nil
}

func validateDemo(d DemoConfig) error {
	if d.LogInterval <= 0 {
		return fmt.Errorf("demo log_interval must be positive, got %s", d.LogInterval)
	}
	if d.TickInterval <= 0 {
		return fmt.Errorf("demo tick_interval must be positive, got %s", d.TickInterval)
	}
	if d.Step <= 0 {
		return fmt.Errorf("demo step must be positive, got %v", d.Step)
	}
	if d.PendingDelay < 0 || d.Linger < 0 {
		return fmt.Errorf("demo pending_delay and linger cannot be negative")
	}
	return nil
}
