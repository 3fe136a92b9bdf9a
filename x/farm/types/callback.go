package types

import (
	sdk "github.com/hbtc-chain/bhchain/types"
)

// Callback is the second phase of a two-step operation. The first phase
// records the module's LP balance, hands control to an external keeper,
// then emits one of these; the handler resolves the received amount from
// the balance difference. Only the module address may send a callback.
type Callback interface {
	GetVaultID() uint32
	ValidateBasic() sdk.Error
}

// StakeCallback forwards LP tokens received since PrevBalance into the
// generator on behalf of the module itself.
type StakeCallback struct {
	VaultID        uint32   `json:"vault_id"`
	PrevBalance    sdk.Int  `json:"prev_balance"`
	MinimumReceive *sdk.Int `json:"minimum_receive,omitempty"`
}

func NewStakeCallback(vaultID uint32, prevBalance sdk.Int, minimumReceive *sdk.Int) StakeCallback {
	return StakeCallback{
		VaultID:        vaultID,
		PrevBalance:    prevBalance,
		MinimumReceive: minimumReceive,
	}
}

func (c StakeCallback) GetVaultID() uint32 {
	return c.VaultID
}

func (c StakeCallback) ValidateBasic() sdk.Error {
	if c.PrevBalance.IsNegative() {
		return ErrInvalidAmount("prev balance cannot be negative")
	}
	if c.MinimumReceive != nil && c.MinimumReceive.IsNegative() {
		return ErrInvalidAmount("minimum receive cannot be negative")
	}
	return nil
}

// BondToCallback credits the LP tokens received since PrevBalance to a
// staker's bond share.
type BondToCallback struct {
	VaultID        uint32        `json:"vault_id"`
	To             sdk.CUAddress `json:"to"`
	PrevBalance    sdk.Int       `json:"prev_balance"`
	MinimumReceive *sdk.Int      `json:"minimum_receive,omitempty"`
}

func NewBondToCallback(vaultID uint32, to sdk.CUAddress, prevBalance sdk.Int, minimumReceive *sdk.Int) BondToCallback {
	return BondToCallback{
		VaultID:        vaultID,
		To:             to,
		PrevBalance:    prevBalance,
		MinimumReceive: minimumReceive,
	}
}

func (c BondToCallback) GetVaultID() uint32 {
	return c.VaultID
}

func (c BondToCallback) ValidateBasic() sdk.Error {
	if !c.To.IsValidAddr() {
		return sdk.ErrInvalidAddr("to address is invalid")
	}
	if c.PrevBalance.IsNegative() {
		return ErrInvalidAmount("prev balance cannot be negative")
	}
	if c.MinimumReceive != nil && c.MinimumReceive.IsNegative() {
		return ErrInvalidAmount("minimum receive cannot be negative")
	}
	return nil
}
