package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morlord/builders-service/internal/types"
)

func TestListBuilderNames(t *testing.T) {
	ctx := context.Background()

	t.Run("merges networks sorted and de-duplicated", func(t *testing.T) {
		subgraph := &fakeSubgraph{
			subnets: map[types.Network][]types.Subnet{
				types.NetworkArbitrum: {
					{Name: "Zeta"},
					{Name: "Alpha"},
				},
				types.NetworkBase: {
					{Name: "alpha"}, // duplicate up to case
					{Name: "Mid"},
					{Name: ""}, // nameless records dropped
				},
			},
		}
		svc := NewService(testConfig(), newFakeDb(), subgraph, &fakeDune{})

		names, err := svc.ListBuilderNames(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, names)
	})

	t.Run("one failed network degrades", func(t *testing.T) {
		subgraph := &fakeSubgraph{
			subnets: map[types.Network][]types.Subnet{
				types.NetworkArbitrum: {{Name: "Alpha"}},
			},
			errs: map[types.Network]error{
				types.NetworkBase: errors.New("subgraph down"),
			},
		}
		svc := NewService(testConfig(), newFakeDb(), subgraph, &fakeDune{})

		names, err := svc.ListBuilderNames(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Alpha"}, names)
	})

	t.Run("all networks failed", func(t *testing.T) {
		subgraph := &fakeSubgraph{
			errs: map[types.Network]error{
				types.NetworkArbitrum: errors.New("down"),
				types.NetworkBase:     errors.New("down"),
			},
		}
		svc := NewService(testConfig(), newFakeDb(), subgraph, &fakeDune{})

		_, err := svc.ListBuilderNames(ctx)
		assert.Error(t, err)
	})
}
