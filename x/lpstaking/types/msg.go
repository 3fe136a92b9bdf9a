package types

import (
	"fmt"

	sdk "github.com/hbtc-chain/bhchain/types"
)

const (
	TypeMsgStake   = "stake"
	TypeMsgUnstake = "unstake"
	TypeMsgClaim   = "claim"
)

type MsgStake struct {
	From   sdk.CUAddress `json:"from"`
	Denom  sdk.Symbol    `json:"denom"`
	Amount sdk.Int       `json:"amount"`
}

func NewMsgStake(from sdk.CUAddress, denom sdk.Symbol, amount sdk.Int) MsgStake {
	return MsgStake{
		From:   from,
		Denom:  denom,
		Amount: amount,
	}
}

func (msg MsgStake) Route() string {
	return RouterKey
}

func (msg MsgStake) Type() string {
	return TypeMsgStake
}

func (msg MsgStake) ValidateBasic() sdk.Error {
	if !msg.From.IsValidAddr() {
		return sdk.ErrInvalidAddr(fmt.Sprintf("from address: %s is invalid", msg.From.String()))
	}
	if !msg.Denom.IsValidTokenName() {
		return sdk.ErrInvalidSymbol("invalid token")
	}
	if !msg.Amount.IsPositive() {
		return sdk.ErrInvalidAmount("stake amount should be positive")
	}
	return nil
}

func (msg MsgStake) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgStake) GetSigners() []sdk.CUAddress {
	return []sdk.CUAddress{msg.From}
}

type MsgUnstake struct {
	From   sdk.CUAddress `json:"from"`
	Denom  sdk.Symbol    `json:"denom"`
	Amount sdk.Int       `json:"amount"`
}

func NewMsgUnstake(from sdk.CUAddress, denom sdk.Symbol, amount sdk.Int) MsgUnstake {
	return MsgUnstake{
		From:   from,
		Denom:  denom,
		Amount: amount,
	}
}

func (msg MsgUnstake) Route() string {
	return RouterKey
}

func (msg MsgUnstake) Type() string {
	return TypeMsgUnstake
}

func (msg MsgUnstake) ValidateBasic() sdk.Error {
	if !msg.From.IsValidAddr() {
		return sdk.ErrInvalidAddr(fmt.Sprintf("from address: %s is invalid", msg.From.String()))
	}
	if !msg.Denom.IsValidTokenName() {
		return sdk.ErrInvalidSymbol("invalid token")
	}
	if !msg.Amount.IsPositive() {
		return sdk.ErrInvalidAmount("unstake amount should be positive")
	}
	return nil
}

func (msg MsgUnstake) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgUnstake) GetSigners() []sdk.CUAddress {
	return []sdk.CUAddress{msg.From}
}

type MsgClaim struct {
	From  sdk.CUAddress `json:"from"`
	Denom sdk.Symbol    `json:"denom"`
}

func NewMsgClaim(from sdk.CUAddress, denom sdk.Symbol) MsgClaim {
	return MsgClaim{
		From:  from,
		Denom: denom,
	}
}

func (msg MsgClaim) Route() string {
	return RouterKey
}

func (msg MsgClaim) Type() string {
	return TypeMsgClaim
}

func (msg MsgClaim) ValidateBasic() sdk.Error {
	if !msg.From.IsValidAddr() {
		return sdk.ErrInvalidAddr(fmt.Sprintf("from address: %s is invalid", msg.From.String()))
	}
	if !msg.Denom.IsValidTokenName() {
		return sdk.ErrInvalidSymbol("invalid token")
	}
	return nil
}

func (msg MsgClaim) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgClaim) GetSigners() []sdk.CUAddress {
	return []sdk.CUAddress{msg.From}
}
