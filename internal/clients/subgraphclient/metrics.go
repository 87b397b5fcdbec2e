package subgraphclient

import (
	"context"
	"time"

	"github.com/morlord/builders-service/internal/observability/metrics"
	"github.com/morlord/builders-service/internal/types"
)

type subgraphClientWithMetrics struct {
	subgraph SubgraphInterface
}

func NewSubgraphClientWithMetrics(subgraph SubgraphInterface) *subgraphClientWithMetrics {
	return &subgraphClientWithMetrics{subgraph: subgraph}
}

func (s *subgraphClientWithMetrics) GetSubnets(ctx context.Context, network types.Network) ([]types.Subnet, error) {
	return runSubgraphClientMethodWithMetrics("GetSubnets", network, func() ([]types.Subnet, error) {
		return s.subgraph.GetSubnets(ctx, network)
	})
}

func (s *subgraphClientWithMetrics) GetStakers(ctx context.Context, network types.Network, subnetID string) ([]types.Staker, error) {
	return runSubgraphClientMethodWithMetrics("GetStakers", network, func() ([]types.Staker, error) {
		return s.subgraph.GetStakers(ctx, network, subnetID)
	})
}

func runSubgraphClientMethodWithMetrics[T any](method string, network types.Network, f func() (T, error)) (T, error) {
	startTime := time.Now()
	v, err := f()
	duration := time.Since(startTime)

	metrics.RecordSubgraphClientLatency(duration, method, network.String(), err != nil)
	return v, err
}
