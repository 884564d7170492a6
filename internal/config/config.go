// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultContentRoot = "content"
	DefaultImageDir    = "public/images"
	DefaultLocale      = "en"

	// DefaultRequestInterval keeps the loop under the Notion API ceiling
	// of three requests per second, with headroom for the block-children
	// calls a single page can fan into.
	DefaultRequestInterval = 400 * time.Millisecond

	// MinRequestInterval is the floor for SYNC_INTERVAL_MS overrides.
	MinRequestInterval = 100 * time.Millisecond
)

// Config holds everything the sync command needs. Values come from the
// environment (a .env file is honored by the CLI layer before Load runs).
type Config struct {
	APIKey          string `validate:"required"` // NOTION_API_KEY
	DatabaseID      string `validate:"required"` // NOTION_DATABASE_ID
	ContentRoot     string `validate:"required"` // CONTENT_ROOT
	ImageDir        string `validate:"required"` // IMAGE_DIR
	DefaultLocale   string `validate:"required"` // DEFAULT_LOCALE
	RequestInterval time.Duration
}

// Load reads configuration from the environment, applying defaults for
// everything except the Notion credential and database identifier.
func Load() (*Config, error) {
	cfg := &Config{
		APIKey:          os.Getenv("NOTION_API_KEY"),
		DatabaseID:      os.Getenv("NOTION_DATABASE_ID"),
		ContentRoot:     envOr("CONTENT_ROOT", DefaultContentRoot),
		ImageDir:        envOr("IMAGE_DIR", DefaultImageDir),
		DefaultLocale:   envOr("DEFAULT_LOCALE", DefaultLocale),
		RequestInterval: DefaultRequestInterval,
	}

	if raw := os.Getenv("SYNC_INTERVAL_MS"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("config error: SYNC_INTERVAL_MS must be an integer, got %q", raw)
		}
		cfg.RequestInterval = time.Duration(ms) * time.Millisecond
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required values are present and the request interval
// does not undercut the remote rate quota.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("config error: NOTION_API_KEY is required")
	}
	if c.DatabaseID == "" {
		return fmt.Errorf("config error: NOTION_DATABASE_ID is required")
	}

	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.RequestInterval < MinRequestInterval {
		return fmt.Errorf("config error: SYNC_INTERVAL_MS below minimum of %dms", MinRequestInterval.Milliseconds())
	}
	return nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
