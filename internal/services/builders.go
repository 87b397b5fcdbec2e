package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/morlord/builders-service/internal/types"
)

type networkSubnets struct {
	network types.Network
	subnets []types.Subnet
	err     error
}

// fetchAllNetworks queries every configured subgraph concurrently. Failures
// are carried per network so callers can decide whether a partial result is
// acceptable.
func (s *Service) fetchAllNetworks(ctx context.Context) []networkSubnets {
	p := pool.NewWithResults[networkSubnets]()
	for _, network := range s.cfg.Subgraph.Networks() {
		p.Go(func() networkSubnets {
			subnets, err := s.subgraph.GetSubnets(ctx, network)
			return networkSubnets{network: network, subnets: subnets, err: err}
		})
	}

	return p.Wait()
}

// ListBuilderNames returns the display names of all builders projects across
// every configured network, de-duplicated and sorted. A single failed
// network degrades to the names the other networks returned; the call fails
// only when no network answered.
func (s *Service) ListBuilderNames(ctx context.Context) ([]string, error) {
	results := s.fetchAllNetworks(ctx)

	seen := make(map[string]struct{})
	names := make([]string, 0)
	var failed int
	for _, res := range results {
		if res.err != nil {
			failed++
			log.Ctx(ctx).Warn().
				Err(res.err).
				Str("network", res.network.String()).
				Msg("failed to fetch builders from network")
			continue
		}
		for _, subnet := range res.subnets {
			if subnet.Name == "" {
				continue
			}
			key := strings.ToLower(subnet.Name)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			names = append(names, subnet.Name)
		}
	}

	if len(results) > 0 && failed == len(results) {
		return nil, fmt.Errorf("all %d networks failed to return builders", failed)
	}

	sort.Strings(names)
	return names, nil
}
