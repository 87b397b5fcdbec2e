package services

import (
	"context"
	"fmt"

	"github.com/morlord/builders-service/internal/observability/metrics"
	"github.com/morlord/builders-service/internal/slug"
	"github.com/morlord/builders-service/internal/stats"
	"github.com/morlord/builders-service/internal/token"
	"github.com/morlord/builders-service/internal/types"
)

const displayDecimals = 2

// SubnetView is one subnet shaped for the dashboard: raw wei strings kept
// for exactness, converted values alongside for display.
type SubnetView struct {
	ID                string  `json:"id"`
	Slug              string  `json:"slug"`
	Name              string  `json:"name"`
	Admin             string  `json:"admin"`
	TotalStakedWei    string  `json:"totalStakedWei"`
	TotalStaked       float64 `json:"totalStaked"`
	TotalStakedHuman  string  `json:"totalStakedHuman"`
	TotalStakers      uint64  `json:"totalStakers"`
	MinDepositWei     string  `json:"minDepositWei"`
	MinDeposit        float64 `json:"minDeposit"`
	MinDepositHuman   string  `json:"minDepositHuman"`
	LockPeriodSeconds uint64  `json:"lockPeriodSeconds"`
	StartsAt          uint64  `json:"startsAt"`
}

type SubnetsView struct {
	Subnets []SubnetView       `json:"subnets"`
	Totals  stats.SubnetTotals `json:"totals"`
}

// GetSubnets returns every subnet on one network together with aggregated
// totals.
func (s *Service) GetSubnets(ctx context.Context, network types.Network) (*SubnetsView, error) {
	subnets, err := s.subgraph.GetSubnets(ctx, network)
	if err != nil {
		return nil, fmt.Errorf("failed to get subnets: %w", err)
	}

	views := make([]SubnetView, 0, len(subnets))
	for _, subnet := range subnets {
		views = append(views, newSubnetView(subnet))
	}

	totals := stats.TotalsForSubnets(subnets)
	metrics.RecordTotalStaked(network.String(), totals.TotalStaked)
	metrics.RecordTotalStakers(network.String(), totals.TotalStakers)

	return &SubnetsView{
		Subnets: views,
		Totals:  totals,
	}, nil
}

func newSubnetView(subnet types.Subnet) SubnetView {
	return SubnetView{
		ID:                subnet.ID,
		Slug:              slug.CreateID(subnet.Name),
		Name:              subnet.Name,
		Admin:             subnet.Admin,
		TotalStakedWei:    subnet.TotalStakedWei,
		TotalStaked:       token.WeiToMOR(subnet.TotalStakedWei),
		TotalStakedHuman:  token.FormatMOR(subnet.TotalStakedWei, displayDecimals),
		TotalStakers:      subnet.TotalStakers,
		MinDepositWei:     subnet.MinDepositWei,
		MinDeposit:        token.WeiToMOR(subnet.MinDepositWei),
		MinDepositHuman:   token.FormatMOR(subnet.MinDepositWei, displayDecimals),
		LockPeriodSeconds: subnet.LockPeriodSeconds,
		StartsAt:          subnet.StartsAt,
	}
}

type StakersView struct {
	Stakers    []types.Staker   `json:"stakers"`
	Aggregates stats.Aggregates `json:"aggregates"`
}

// GetSubnetStakers returns the staking positions of one subnet plus
// aggregates. self, when non-empty, is the caller's own address and is
// excluded from the distinct-participant count.
func (s *Service) GetSubnetStakers(ctx context.Context, network types.Network, subnetID, self string) (*StakersView, error) {
	stakers, err := s.subgraph.GetStakers(ctx, network, subnetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stakers: %w", err)
	}

	return &StakersView{
		Stakers:    stakers,
		Aggregates: stats.Aggregate(stakers, self),
	}, nil
}
