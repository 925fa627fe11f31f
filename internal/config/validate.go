package config

import (
	"fmt"
	"strings"
)

const minTokenSecretLength = 32

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database: dsn is required")
	}
	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Drafts.validate(); err != nil {
		return fmt.Errorf("drafts: %w", err)
	}
	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit: requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.RateLimit.RequestsPerMinute > 0 && c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate_limit: burst must be > 0 when limiting is enabled (got %d)", c.RateLimit.Burst)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics: path must start with / (got %q)", c.Metrics.Path)
	}
	return nil
}

func (a *AuthConfig) validate() error {
	if len(a.UserTokenSecret) < minTokenSecretLength {
		return fmt.Errorf("user_token_secret must be at least %d characters (got %d)", minTokenSecretLength, len(a.UserTokenSecret))
	}
	if len(a.ServiceTokenSecret) < minTokenSecretLength {
		return fmt.Errorf("service_token_secret must be at least %d characters (got %d)", minTokenSecretLength, len(a.ServiceTokenSecret))
	}
	if a.UserTokenSecret == a.ServiceTokenSecret {
		return fmt.Errorf("user_token_secret and service_token_secret must differ")
	}
	if a.MinSecretLength < 1 {
		return fmt.Errorf("min_secret_length must be >= 1 (got %d)", a.MinSecretLength)
	}
	if a.TokenTTL <= 0 {
		return fmt.Errorf("token_ttl must be > 0 (got %v)", a.TokenTTL)
	}
	return nil
}

func (d *DraftsConfig) validate() error {
	if d.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", d.DefaultPageSize)
	}
	if d.MaxPageSize < d.DefaultPageSize {
		return fmt.Errorf("max_page_size (%d) must be >= default_page_size (%d)", d.MaxPageSize, d.DefaultPageSize)
	}
	if d.MaxDocumentBytes <= 0 {
		return fmt.Errorf("max_document_bytes must be > 0 (got %d)", d.MaxDocumentBytes)
	}
	if d.MaxStaleDays <= 0 {
		return fmt.Errorf("max_stale_days must be > 0 (got %d)", d.MaxStaleDays)
	}
	return nil
}
