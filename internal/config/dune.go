package config

import (
	"fmt"
	"net/url"
	"time"
)

const (
	defaultDuneTimeout       = 5 * time.Second
	defaultDuneMaxRetryTimes = 3
	defaultDuneRetryInterval = 1 * time.Second
)

// DuneConfig points at the external analytics API the dune proxy routes use.
type DuneConfig struct {
	BaseURL       string        `mapstructure:"base-url"`
	APIKey        string        `mapstructure:"api-key"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
	// Queries lists query paths the background poller keeps warm in the cache.
	Queries []string `mapstructure:"queries"`
}

func (cfg *DuneConfig) Validate() error {
	if cfg.BaseURL == "" {
		return fmt.Errorf("dune base-url is required")
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return fmt.Errorf("invalid dune base-url: %w", err)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultDuneTimeout
	}
	if cfg.MaxRetryTimes == 0 {
		cfg.MaxRetryTimes = defaultDuneMaxRetryTimes
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = defaultDuneRetryInterval
	}

	return nil
}
