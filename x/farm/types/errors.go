package types

import (
	"fmt"

	sdk "github.com/hbtc-chain/bhchain/types"
)

const (
	DefaultCodespace sdk.CodespaceType = ModuleName

	CodeUnauthorized            sdk.CodeType = 101
	CodeInvalidAmount           sdk.CodeType = 102
	CodeInvalidAsset            sdk.CodeType = 103
	CodeDuplicatedAsset         sdk.CodeType = 104
	CodeInvalidMessage          sdk.CodeType = 105
	CodeVaultNotFound           sdk.CodeType = 106
	CodeVaultAlreadyExists      sdk.CodeType = 107
	CodeRewardInfoNotFound      sdk.CodeType = 108
	CodeUnbondExceedBalance     sdk.CodeType = 109
	CodeAssertionMinimumReceive sdk.CodeType = 110
	CodeInvalidFee              sdk.CodeType = 111
	CodeVaultPaused             sdk.CodeType = 112
)

func ErrUnauthorized(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeUnauthorized, msg)
}

func ErrInvalidAmount(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidAmount, msg)
}

func ErrInvalidAsset(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidAsset, msg)
}

func ErrDuplicatedAsset(denom string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeDuplicatedAsset, "asset %s is duplicated", denom)
}

func ErrInvalidMessage(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidMessage, msg)
}

func ErrVaultNotFound(vaultID uint32) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeVaultNotFound, "vault %d not found", vaultID)
}

func ErrVaultNotFoundByDenom(denom string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeVaultNotFound, "vault of %s not found", denom)
}

func ErrVaultAlreadyExists(denom string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeVaultAlreadyExists, "vault of %s already exists", denom)
}

func ErrRewardInfoNotFound(staker sdk.CUAddress) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeRewardInfoNotFound, "staker %s has no bonded record", staker.String())
}

func ErrUnbondExceedBalance() sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeUnbondExceedBalance, "cannot unbond more than balance")
}

func ErrAssertionMinimumReceive(minimumReceive, amount sdk.Int) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeAssertionMinimumReceive,
		fmt.Sprintf("assertion failed; minimum receive amount: %s, actual amount: %s", minimumReceive.String(), amount.String()))
}

func ErrInvalidFee(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidFee, msg)
}

func ErrVaultPaused(vaultID uint32) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeVaultPaused, "vault %d is paused", vaultID)
}
