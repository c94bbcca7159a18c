package config

import (
	"fmt"
	"strings"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []string

	// Required fields
	if c.Pattern == "" {
		errs = append(errs, "input file or pattern is required")
	} else if len(c.Inputs) == 0 {
		errs = append(errs, fmt.Sprintf("no input files match: %s", c.Pattern))
	}

	// Visualization settings (enum values and geometry)
	if _, err := c.VisualizationRequest(); err != nil {
		errs = append(errs, fmt.Sprintf("visualization config: %v", err))
	}

	// Duration (0 means full audio length)
	if c.Duration < 0 {
		errs = append(errs, "duration cannot be negative (use 0 for full length)")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
