package config

import (
	"github.com/teranos/logbox/errors"
	"github.com/teranos/logbox/logline"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Field paths: empty falls back to the default, anything else must parse
	if c.Timestamp.Field != "" {
		if _, err := logline.ParsePath(c.Timestamp.Field); err != nil {
			return errors.Wrapf(err, "timestamp.field %q", c.Timestamp.Field)
		}
	}
	if c.Stats.ResourceField != "" {
		if _, err := logline.ParsePath(c.Stats.ResourceField); err != nil {
			return errors.Wrapf(err, "stats.resource_field %q", c.Stats.ResourceField)
		}
	}
	if c.Stats.SeverityField != "" {
		if _, err := logline.ParsePath(c.Stats.SeverityField); err != nil {
			return errors.Wrapf(err, "stats.severity_field %q", c.Stats.SeverityField)
		}
	}
	if c.Stats.AccountField != "" {
		if _, err := logline.ParsePath(c.Stats.AccountField); err != nil {
			return errors.Wrapf(err, "stats.account_field %q", c.Stats.AccountField)
		}
	}

	// Fetch pacing: 0 = unpaced (valid per "zero means zero"), negative = invalid
	if c.Fetch.MaxRequestsPerMinute < 0 {
		return errors.Newf("fetch.max_requests_per_minute must be >= 0, got %d", c.Fetch.MaxRequestsPerMinute)
	}

	return nil
}
