package types

import (
	sdk "github.com/hbtc-chain/bhchain/types"
)

// ScalingOperation selects the rounding direction when converting an LP
// amount into bond share. Minting truncates, burning rounds up, so rounding
// error always accrues to the pool.
type ScalingOperation int

const (
	Truncate ScalingOperation = iota
	Ceil
)

// VaultState holds the share denominator of one vault.
type VaultState struct {
	VaultID        uint32  `json:"vault_id"`
	TotalBondShare sdk.Int `json:"total_bond_share"`
}

func NewVaultState(vaultID uint32) *VaultState {
	return &VaultState{
		VaultID:        vaultID,
		TotalBondShare: sdk.ZeroInt(),
	}
}

// CalcBondShare converts an LP amount to bond share against the externally
// held LP balance. When the vault is empty one share equals one LP unit.
func (s *VaultState) CalcBondShare(bondAmount, lpBalance sdk.Int, op ScalingOperation) sdk.Int {
	if s.TotalBondShare.IsZero() || lpBalance.IsZero() {
		return bondAmount
	}
	if op == Ceil {
		return MulAndDivCeil(bondAmount, s.TotalBondShare, lpBalance)
	}
	return MulAndDiv(bondAmount, s.TotalBondShare, lpBalance)
}

// CalcBondAmount converts bond share back to an LP amount, truncated.
func (s *VaultState) CalcBondAmount(lpBalance, bondShare sdk.Int) sdk.Int {
	if s.TotalBondShare.IsZero() {
		return sdk.ZeroInt()
	}
	return MulAndDiv(lpBalance, bondShare, s.TotalBondShare)
}
