package config

import (
	"fmt"
	"strings"
)

// Validate checks configuration values and returns an error describing every
// invalid one. Called once at startup; a bad weighting scheme is the one
// configuration mistake that must not degrade silently.
func Validate(cfg Config) error {
	var errs []string

	if cfg.Dir == "" {
		errs = append(errs, "dir must not be empty")
	}
	if cfg.StableBand < 0 {
		errs = append(errs, fmt.Sprintf("trend.stable_band must be non-negative, got %.2f", cfg.StableBand))
	}
	if err := cfg.Weights.Validate(); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
