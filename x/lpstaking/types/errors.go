package types

import (
	sdk "github.com/hbtc-chain/bhchain/types"
)

const (
	DefaultCodespace sdk.CodespaceType = ModuleName

	CodeInvalidAmount      sdk.CodeType = 101
	CodeUnstakeExceedsBond sdk.CodeType = 102
	CodeUnsupportedLPToken sdk.CodeType = 103
)

func ErrInvalidAmount(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidAmount, msg)
}

func ErrUnstakeExceedsBond() sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeUnstakeExceedsBond, "cannot unstake more than bonded")
}

func ErrUnsupportedLPToken(denom string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeUnsupportedLPToken, "lp token %s is not registered", denom)
}
