// Package stats aggregates normalized staking records. Sums are accumulated
// on exact integers and converted to floating display form once at the end.
package stats

import (
	"github.com/morlord/builders-service/internal/token"
	"github.com/morlord/builders-service/internal/types"
	"github.com/morlord/builders-service/pkg"
)

type Aggregates struct {
	Count          int     `json:"count"`
	TotalStakedWei string  `json:"totalStakedWei"`
	TotalStaked    float64 `json:"totalStaked"`
	// Distinct is the number of unique staker addresses excluding the
	// querying party itself (a "referred others" style metric).
	Distinct int `json:"distinct"`
}

// Aggregate computes per-list staking stats. self is the querying party's
// own address, excluded from the distinct count; pass "" to count everyone.
// Empty input yields all zeros.
func Aggregate(stakers []types.Staker, self string) Aggregates {
	self = pkg.NormalizeEthAddress(self)

	amounts := make([]string, 0, len(stakers))
	seen := make(map[string]struct{}, len(stakers))
	for _, s := range stakers {
		amounts = append(amounts, s.StakedWei)

		addr := pkg.NormalizeEthAddress(s.Address)
		if addr == "" || addr == self {
			continue
		}
		seen[addr] = struct{}{}
	}

	sum := token.SumWei(amounts)
	return Aggregates{
		Count:          len(stakers),
		TotalStakedWei: sum.String(),
		TotalStaked:    token.BigWeiToMOR(sum),
		Distinct:       len(seen),
	}
}

type SubnetTotals struct {
	TotalSubnets   int     `json:"totalSubnets"`
	TotalStakedWei string  `json:"totalStakedWei"`
	TotalStaked    float64 `json:"totalStaked"`
	TotalStakers   uint64  `json:"totalStakers"`
}

// TotalsForSubnets sums staking totals across subnets.
func TotalsForSubnets(subnets []types.Subnet) SubnetTotals {
	amounts := make([]string, 0, len(subnets))
	var stakers uint64
	for _, s := range subnets {
		amounts = append(amounts, s.TotalStakedWei)
		stakers += s.TotalStakers
	}

	sum := token.SumWei(amounts)
	return SubnetTotals{
		TotalSubnets:   len(subnets),
		TotalStakedWei: sum.String(),
		TotalStaked:    token.BigWeiToMOR(sum),
		TotalStakers:   stakers,
	}
}
