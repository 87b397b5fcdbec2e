package subgraphclient

import (
	"context"

	"github.com/morlord/builders-service/internal/types"
)

type SubgraphInterface interface {
	GetSubnets(ctx context.Context, network types.Network) ([]types.Subnet, error)
	GetStakers(ctx context.Context, network types.Network, subnetID string) ([]types.Staker, error)
}
