package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	return c.validateProfiles()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.MaxImageBytes <= 0 {
		return errors.New("analysis.max_image_bytes must be positive")
	}
	if c.Analysis.PreviewMaxDimension < 0 {
		return errors.New("analysis.preview_max_dimension must not be negative")
	}
	return nil
}

func (c *Config) validateProfiles() error {
	seen := make(map[string]bool, len(c.Profiles))
	for i, p := range c.Profiles {
		if p.Name == "" {
			return fmt.Errorf("profiles[%d].name must be set", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("profiles: duplicate name %q", p.Name)
		}
		seen[p.Name] = true
	}

	profiles, err := c.ExposureProfiles()
	if err != nil {
		return err
	}
	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("profiles: %w", err)
		}
	}
	return nil
}
