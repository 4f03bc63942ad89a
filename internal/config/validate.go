package config

import (
	"errors"
	"fmt"
	"slices"
)

var (
	logLevels     = []string{"debug", "info", "warn", "error"}
	logFormats    = []string{"json", "text"}
	textProviders = []string{"anthropic", "openai", "gemini"}
	storageDriver = []string{"gcs", "local"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Auth.Enabled() && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.DefaultUserID == "" {
		return errors.New("auth.default_user_id must not be empty")
	}

	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		return fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format)
	}

	if err := c.Poller.validate(); err != nil {
		return fmt.Errorf("poller: %w", err)
	}
	if err := c.Generation.validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}
	// Claims are renewed before each topic, so a lease only has to outlive
	// one script generation.
	if c.Poller.StaleAfter <= c.AI.ScriptTimeout {
		return fmt.Errorf("poller.stale_after (%v) must be greater than ai.script_timeout (%v)", c.Poller.StaleAfter, c.AI.ScriptTimeout)
	}
	if !slices.Contains(textProviders, c.AI.TextProvider) {
		return fmt.Errorf("ai.text_provider must be one of %v (got %q)", textProviders, c.AI.TextProvider)
	}
	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if c.Keywords.MaxUploadFiles <= 0 {
		return fmt.Errorf("keywords.max_upload_files must be > 0 (got %d)", c.Keywords.MaxUploadFiles)
	}

	return nil
}

func (p *PollerConfig) validate() error {
	if p.Interval <= 0 {
		return fmt.Errorf("interval must be > 0 (got %v)", p.Interval)
	}
	if p.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", p.BatchSize)
	}
	if p.StaleAfter <= 0 {
		return fmt.Errorf("stale_after must be > 0 (got %v)", p.StaleAfter)
	}
	return nil
}

func (g *GenerationConfig) validate() error {
	if g.VariationCap <= 0 {
		return fmt.Errorf("variation_cap must be > 0 (got %d)", g.VariationCap)
	}
	if g.ThumbnailCount <= 0 {
		return fmt.Errorf("thumbnail_count must be > 0 (got %d)", g.ThumbnailCount)
	}
	if g.ThumbnailDelay < 0 {
		return fmt.Errorf("thumbnail_delay must be >= 0 (got %v)", g.ThumbnailDelay)
	}
	return nil
}

func (s *StorageConfig) validate() error {
	if !slices.Contains(storageDriver, s.Driver) {
		return fmt.Errorf("driver must be one of %v (got %q)", storageDriver, s.Driver)
	}
	if s.Driver == "gcs" && s.Bucket == "" {
		return errors.New("bucket is required for the gcs driver")
	}
	if s.Driver == "local" && s.LocalDir == "" {
		return errors.New("local_dir is required for the local driver")
	}
	if s.PublicBaseURL == "" && s.Driver == "local" {
		return errors.New("public_base_url is required for the local driver")
	}
	return nil
}
