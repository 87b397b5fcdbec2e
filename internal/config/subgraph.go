package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/morlord/builders-service/internal/types"
)

const (
	defaultSubgraphTimeout       = 5 * time.Second
	defaultSubgraphMaxRetryTimes = 3
	defaultSubgraphRetryInterval = 500 * time.Millisecond
)

// SubgraphConfig defines the builder subgraph endpoints, one per network.
type SubgraphConfig struct {
	Endpoints     map[string]string `mapstructure:"endpoints"`
	Timeout       time.Duration     `mapstructure:"timeout"`
	MaxRetryTimes uint              `mapstructure:"max-retry-times"`
	RetryInterval time.Duration     `mapstructure:"retry-interval"`
}

func (cfg *SubgraphConfig) Validate() error {
	if len(cfg.Endpoints) == 0 {
		return fmt.Errorf("at least one subgraph endpoint is required")
	}
	for network, endpoint := range cfg.Endpoints {
		if _, err := types.ParseNetwork(network); err != nil {
			return fmt.Errorf("invalid subgraph network: %w", err)
		}
		if _, err := url.ParseRequestURI(endpoint); err != nil {
			return fmt.Errorf("invalid subgraph endpoint for %s: %w", network, err)
		}
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultSubgraphTimeout
	}
	if cfg.MaxRetryTimes == 0 {
		cfg.MaxRetryTimes = defaultSubgraphMaxRetryTimes
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = defaultSubgraphRetryInterval
	}

	return nil
}

// Endpoint returns the GraphQL URL for the given network, empty if the
// network is not configured.
func (cfg *SubgraphConfig) Endpoint(network types.Network) string {
	return cfg.Endpoints[network.String()]
}

// Networks returns configured networks in the service's stable order.
func (cfg *SubgraphConfig) Networks() []types.Network {
	var out []types.Network
	for _, n := range types.Networks() {
		if _, ok := cfg.Endpoints[n.String()]; ok {
			out = append(out, n)
		}
	}
	return out
}
