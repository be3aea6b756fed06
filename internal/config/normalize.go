package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOutputs()
	c.normalizeDataset()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.DataRoot, err = ExpandPath(c.Paths.DataRoot); err != nil {
		return fmt.Errorf("paths.data_root: %w", err)
	}
	if c.Paths.DerivativesRoot, err = ExpandPath(c.Paths.DerivativesRoot); err != nil {
		return fmt.Errorf("paths.derivatives_root: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputRoot) == "" {
		// The derivatives root doubles as the output root unless set.
		c.Paths.OutputRoot = c.Paths.DerivativesRoot
	}
	if c.Paths.OutputRoot, err = ExpandPath(c.Paths.OutputRoot); err != nil {
		return fmt.Errorf("paths.output_root: %w", err)
	}
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeOutputs() {
	c.Outputs.OverwriteMode = strings.ToLower(strings.TrimSpace(c.Outputs.OverwriteMode))
	if c.Outputs.OverwriteMode == "" {
		c.Outputs.OverwriteMode = defaultOverwriteMode
	}
}

func (c *Config) normalizeDataset() {
	if strings.TrimSpace(c.Dataset.Datatype) == "" {
		c.Dataset.Datatype = defaultDatatype
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
