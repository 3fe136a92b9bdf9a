package types

import (
	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/hbtc-chain/bhchain/x/custodianunit/exported"
)

type TokenKeeper interface {
	GetTokenInfo(ctx sdk.Context, symbol sdk.Symbol) *sdk.TokenInfo
}

type CUKeeper interface {
	GetCU(ctx sdk.Context, addr sdk.CUAddress) exported.CustodianUnit
	GetOrNewCU(context sdk.Context, cuType sdk.CUType, addresses sdk.CUAddress) exported.CustodianUnit
	SetCU(ctx sdk.Context, acc exported.CustodianUnit)
}

type ReceiptKeeper interface {
	NewReceipt(category sdk.CategoryType, flows []sdk.Flow) *sdk.Receipt
	SaveReceiptToResult(receipt *sdk.Receipt, result *sdk.Result) *sdk.Result
}

type TransferKeeper interface {
	SendCoins(ctx sdk.Context, fromAddr, toAddr sdk.CUAddress, amt sdk.Coins) (sdk.Result, []sdk.Flow, sdk.Error)
}

// GeneratorKeeper is the external staking contract LP tokens are forwarded
// to. Deposits are held per depositor address and keep earning third-party
// rewards until withdrawn.
type GeneratorKeeper interface {
	Deposit(ctx sdk.Context, depositor sdk.CUAddress, denom sdk.Symbol, amount sdk.Int) sdk.Error
	Withdraw(ctx sdk.Context, depositor sdk.CUAddress, denom sdk.Symbol, amount sdk.Int) sdk.Error
	ClaimRewards(ctx sdk.Context, depositor sdk.CUAddress, denom sdk.Symbol) sdk.Error
	QueryDeposit(ctx sdk.Context, depositor sdk.CUAddress, denom sdk.Symbol) sdk.Int
	QueryPendingRewards(ctx sdk.Context, depositor sdk.CUAddress, denom sdk.Symbol) sdk.Coins
}

// Compounder converts harvested reward tokens held by owner into LP tokens.
// Implementations decide routing and pricing; the farm only observes the
// owner's LP balance change. With noSwap set the assets are provided to the
// pool as they are, without rebalancing swaps.
type Compounder interface {
	Compound(ctx sdk.Context, owner sdk.CUAddress, assets sdk.Coins, lpDenom sdk.Symbol, noSwap bool, slippageTolerance sdk.Dec) sdk.Error
}

// PoolQuerier reports the reserves backing an LP token and its total supply,
// used to value a deposit for the cost basis.
type PoolQuerier interface {
	QueryPool(ctx sdk.Context, lpDenom sdk.Symbol) (balances []sdk.Int, totalSupply sdk.Int, err sdk.Error)
}
