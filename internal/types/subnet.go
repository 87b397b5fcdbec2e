package types

// Subnet is the canonical shape of a builders project/subnet regardless of
// which subgraph schema version it was fetched from. Amounts are kept as
// base-unit (wei) decimal strings; the service only ever reads and reformats
// them, the upstream ledger owns the values.
type Subnet struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Admin             string `json:"admin"`
	TotalStakedWei    string `json:"totalStakedWei"`
	TotalStakers      uint64 `json:"totalStakers"`
	MinDepositWei     string `json:"minDepositWei"`
	LockPeriodSeconds uint64 `json:"lockPeriodSeconds"`
	StartsAt          uint64 `json:"startsAt"`
}

// Staker is a single staking position inside a subnet.
type Staker struct {
	Address     string `json:"address"`
	StakedWei   string `json:"stakedWei"`
	LastStakeTs uint64 `json:"lastStakeTs"`
	// ClaimLockEnd is the timestamp after which rewards become withdrawable.
	// When the subgraph does not supply it, it is derived as
	// LastStakeTs + the subnet's lock period.
	ClaimLockEnd uint64 `json:"claimLockEnd"`
	SubnetID     string `json:"subnetId,omitempty"`
}
