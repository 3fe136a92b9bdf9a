package types

import sdk "github.com/hbtc-chain/bhchain/types"

// query endpoints supported by the farm Querier
const (
	QueryVault      = "vault"
	QueryAllVaults  = "all_vaults"
	QueryVaultState = "vault_state"
	QueryRewardInfo = "reward_info"
	QueryUserInfo   = "user_info"
	QueryParameters = "parameters"
)

// QueryVaultParams addresses a vault either by id or by its staking denom.
// StakingDenom wins when both are set.
type QueryVaultParams struct {
	VaultID      uint32
	StakingDenom sdk.Symbol
}

func NewQueryVaultParams(vaultID uint32) QueryVaultParams {
	return QueryVaultParams{VaultID: vaultID}
}

func NewQueryVaultByDenomParams(denom sdk.Symbol) QueryVaultParams {
	return QueryVaultParams{StakingDenom: denom}
}

type QueryRewardInfoParams struct {
	VaultID uint32
	Staker  sdk.CUAddress
}

func NewQueryRewardInfoParams(vaultID uint32, staker sdk.CUAddress) QueryRewardInfoParams {
	return QueryRewardInfoParams{
		VaultID: vaultID,
		Staker:  staker,
	}
}

// RewardInfoResponse augments the raw staker record with its value at the
// current share price.
type RewardInfoResponse struct {
	Staker        sdk.CUAddress `json:"staker"`
	VaultID       uint32        `json:"vault_id"`
	BondShare     sdk.Int       `json:"bond_share"`
	TransferShare sdk.Int       `json:"transfer_share"`
	BondAmount    sdk.Int       `json:"bond_amount"`
	UserBalance   sdk.Int       `json:"user_balance"`
	DepositAmount sdk.Int       `json:"deposit_amount"`
	DepositTime   int64         `json:"deposit_time"`
	DepositCosts  []sdk.Int     `json:"deposit_costs"`
}

// UserInfoResponse reports the LP amount currently withdrawable by a staker,
// vesting applied.
type UserInfoResponse struct {
	Staker      sdk.CUAddress `json:"staker"`
	VaultID     uint32        `json:"vault_id"`
	UserBalance sdk.Int       `json:"user_balance"`
}

// VaultStateResponse pairs the share denominator with the LP balance that
// backs it. PendingRewards is what the next compound would harvest: rewards
// accrued in the generator plus rewards already sitting in the module wallet.
type VaultStateResponse struct {
	VaultID         uint32    `json:"vault_id"`
	TotalBondShare  sdk.Int   `json:"total_bond_share"`
	TotalBondAmount sdk.Int   `json:"total_bond_amount"`
	PendingRewards  sdk.Coins `json:"pending_rewards"`
}
