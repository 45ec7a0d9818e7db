package config

import (
	"fmt"
)

var knownQualities = map[string]struct{}{
	"lossless": {},
	"high":     {},
	"medium":   {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateEncoding(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateEncoding() error {
	if _, ok := knownQualities[c.Encoding.Quality]; !ok {
		return fmt.Errorf("encoding.quality: unknown preset %q (valid: lossless, high, medium)", c.Encoding.Quality)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}
