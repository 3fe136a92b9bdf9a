package types

import (
	"encoding/json"

	sdk "github.com/hbtc-chain/bhchain/types"
)

const (
	EventTypeCreateVault   = "create_vault"
	EventTypeUpdateVault   = "update_vault"
	EventTypeBond          = "bond"
	EventTypeUnbond        = "unbond"
	EventTypeTransferShare = "transfer_share"
	EventTypeCompound      = "compound"

	AttributeKeyVaultID = "vault_id"
	AttributeKeyBond    = "bond"
	AttributeKeyUnbond  = "unbond"
	AttributeKeyShare   = "share"
	AttributeKeyAmount  = "amount"
	AttributeKeyAddress = "address"
)

type EventBond struct {
	Staker    sdk.CUAddress `json:"staker"`
	VaultID   uint32        `json:"vault_id"`
	Amount    sdk.Int       `json:"amount"`
	BondShare sdk.Int       `json:"bond_share"`
}

func NewEventBond(staker sdk.CUAddress, vaultID uint32, amount, bondShare sdk.Int) *EventBond {
	return &EventBond{
		Staker:    staker,
		VaultID:   vaultID,
		Amount:    amount,
		BondShare: bondShare,
	}
}

func (e *EventBond) String() string {
	bz, _ := json.Marshal(e)
	return string(bz)
}

type EventUnbond struct {
	Staker      sdk.CUAddress `json:"staker"`
	VaultID     uint32        `json:"vault_id"`
	Amount      sdk.Int       `json:"amount"`
	BurnedShare sdk.Int       `json:"burned_share"`
}

func NewEventUnbond(staker sdk.CUAddress, vaultID uint32, amount, burnedShare sdk.Int) *EventUnbond {
	return &EventUnbond{
		Staker:      staker,
		VaultID:     vaultID,
		Amount:      amount,
		BurnedShare: burnedShare,
	}
}

func (e *EventUnbond) String() string {
	bz, _ := json.Marshal(e)
	return string(bz)
}

type EventTransferShare struct {
	From    sdk.CUAddress `json:"from"`
	To      sdk.CUAddress `json:"to"`
	VaultID uint32        `json:"vault_id"`
	Share   sdk.Int       `json:"share"`
}

func NewEventTransferShare(from, to sdk.CUAddress, vaultID uint32, share sdk.Int) *EventTransferShare {
	return &EventTransferShare{
		From:    from,
		To:      to,
		VaultID: vaultID,
		Share:   share,
	}
}

func (e *EventTransferShare) String() string {
	bz, _ := json.Marshal(e)
	return string(bz)
}

type EventCompound struct {
	VaultID      uint32  `json:"vault_id"`
	Reward       sdk.Int `json:"reward"`
	Commission   sdk.Int `json:"commission"`
	CompoundedLP sdk.Int `json:"compounded_lp"`
}

func NewEventCompound(vaultID uint32, reward, commission, compoundedLP sdk.Int) *EventCompound {
	return &EventCompound{
		VaultID:      vaultID,
		Reward:       reward,
		Commission:   commission,
		CompoundedLP: compoundedLP,
	}
}

func (e *EventCompound) String() string {
	bz, _ := json.Marshal(e)
	return string(bz)
}
