package config

import (
	"errors"
	"fmt"

	"flowline/internal/outputs"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutputs(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOutputs() error {
	if _, err := outputs.ParseOverwriteMode(c.Outputs.OverwriteMode); err != nil {
		return fmt.Errorf("outputs.overwrite_mode: %w", err)
	}
	if c.Outputs.Generate != nil && len(c.Outputs.GenerateByStep) > 0 {
		return errors.New("outputs.generate and outputs.generate_by_step are mutually exclusive")
	}
	if c.Outputs.Skip != nil && len(c.Outputs.SkipByStep) > 0 {
		return errors.New("outputs.skip and outputs.skip_by_step are mutually exclusive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
