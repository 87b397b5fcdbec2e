package config

import (
	"errors"
	"time"
)

const defaultAnalyticsRefreshInterval = 5 * time.Minute

type PollerConfig struct {
	// AnalyticsRefreshInterval is how often cached analytics queries are
	// re-fetched so the cache stays warm between revalidations.
	AnalyticsRefreshInterval time.Duration `mapstructure:"analytics-refresh-interval"`
	// Enabled turns the background refresher off entirely when false.
	Enabled bool `mapstructure:"enabled"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.AnalyticsRefreshInterval < 0 {
		return errors.New("analytics-refresh-interval must not be negative")
	}

	if cfg.AnalyticsRefreshInterval == 0 {
		cfg.AnalyticsRefreshInterval = defaultAnalyticsRefreshInterval
	}

	return nil
}
