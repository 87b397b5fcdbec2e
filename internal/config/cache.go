package config

import (
	"errors"
	"time"
)

const (
	defaultCacheMaxAge               = 60 * time.Second
	defaultCacheStaleWhileRevalidate = 300 * time.Second
)

// CacheConfig controls both the Cache-Control headers on successful
// responses and the TTL of analytics entries in the mongo-backed cache.
type CacheConfig struct {
	MaxAge               time.Duration `mapstructure:"max-age"`
	StaleWhileRevalidate time.Duration `mapstructure:"stale-while-revalidate"`
	AnalyticsTTL         time.Duration `mapstructure:"analytics-ttl"`
	// RevalidateSecret guards the revalidate routes. Empty means open.
	RevalidateSecret string `mapstructure:"revalidate-secret"`
}

func (cfg *CacheConfig) Validate() error {
	if cfg.MaxAge < 0 || cfg.StaleWhileRevalidate < 0 || cfg.AnalyticsTTL < 0 {
		return errors.New("cache durations must not be negative")
	}

	if cfg.MaxAge == 0 {
		cfg.MaxAge = defaultCacheMaxAge
	}
	if cfg.StaleWhileRevalidate == 0 {
		cfg.StaleWhileRevalidate = defaultCacheStaleWhileRevalidate
	}
	if cfg.AnalyticsTTL == 0 {
		cfg.AnalyticsTTL = defaultCacheStaleWhileRevalidate
	}

	return nil
}
