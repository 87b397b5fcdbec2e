package subgraphclient

import (
	"strconv"
	"strings"

	"github.com/morlord/builders-service/internal/types"
	"github.com/morlord/builders-service/pkg"
)

type schemaVersion int

const (
	schemaV3 schemaVersion = iota
	schemaV4
)

// detectVersion decides which upstream shape a record uses. There is no
// version tag, so presence of version-specific fields is the rule: stakers
// count field first, admin/owner as tie breaker. Records exposing neither
// default to v3 semantics with zeroed fields.
func detectVersion(r *rawProject) schemaVersion {
	switch {
	case r.TotalStakers != nil || r.Owner != "":
		return schemaV4
	default:
		return schemaV3
	}
}

// normalizeProject maps either upstream project shape onto the canonical
// Subnet. Numeric fields parse defensively to zero.
func normalizeProject(r *rawProject) types.Subnet {
	subnet := types.Subnet{
		ID:             r.ID,
		Name:           strings.TrimSpace(r.Name),
		TotalStakedWei: zeroIfEmpty(r.TotalStaked),
		StartsAt:       parseUint(r.StartsAt),
	}

	switch detectVersion(r) {
	case schemaV4:
		subnet.Admin = pkg.NormalizeEthAddress(r.Owner)
		subnet.TotalStakers = parseUintPtr(r.TotalStakers)
		subnet.MinDepositWei = zeroIfEmpty(r.MinStake)
		subnet.LockPeriodSeconds = parseUint(r.WithdrawLockPeriodAfterStake)
	default:
		subnet.Admin = pkg.NormalizeEthAddress(r.Admin)
		subnet.TotalStakers = parseUintPtr(r.TotalUsers)
		subnet.MinDepositWei = zeroIfEmpty(r.MinimalDeposit)
		subnet.LockPeriodSeconds = parseUint(r.WithdrawLockPeriodAfterDeposit)
	}

	return subnet
}

// normalizeStaker maps either upstream position shape onto the canonical
// Staker. When the record does not carry a claim-lock end of its own, it is
// derived as lastStake + the subnet's lock period.
func normalizeStaker(r *rawStaker) types.Staker {
	staker := types.Staker{
		Address:     pkg.NormalizeEthAddress(r.Address),
		StakedWei:   zeroIfEmpty(r.Staked),
		LastStakeTs: parseUint(r.LastStake),
	}

	parent := r.BuilderSubnet
	if parent == nil {
		parent = r.BuildersProject
	}

	if parent != nil {
		staker.SubnetID = parent.ID
	}

	if r.ClaimLockEnd != "" {
		staker.ClaimLockEnd = parseUint(r.ClaimLockEnd)
	} else if parent != nil {
		subnet := normalizeProject(parent)
		staker.ClaimLockEnd = staker.LastStakeTs + subnet.LockPeriodSeconds
	}

	return staker
}

func parseUint(s string) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseUintPtr(s *string) uint64 {
	if s == nil {
		return 0
	}
	return parseUint(*s)
}

func zeroIfEmpty(wei string) string {
	wei = strings.TrimSpace(wei)
	if wei == "" {
		return "0"
	}
	return wei
}
