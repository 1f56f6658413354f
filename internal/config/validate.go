package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Vocabulary.Dir) == "" {
		return fmt.Errorf("vocabulary.dir must not be empty")
	}

	switch c.Translator.Provider {
	case "none":
	case "claude":
		if c.Translator.APIKey == "" {
			return fmt.Errorf("translator.api_key is required for provider %q", c.Translator.Provider)
		}
	default:
		return fmt.Errorf("translator.provider must be \"none\" or \"claude\" (got %q)", c.Translator.Provider)
	}

	if c.Translator.BatchThreshold < 1 {
		return fmt.Errorf("translator.batch_threshold must be >= 1 (got %d)", c.Translator.BatchThreshold)
	}

	if c.RateLimit.RequestsPerMinute < 1 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 1 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}
