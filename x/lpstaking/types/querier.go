package types

import sdk "github.com/hbtc-chain/bhchain/types"

// query endpoints supported by the lpstaking Querier
const (
	QueryBond           = "bond"
	QueryPendingRewards = "pending_rewards"
	QueryParameters     = "parameters"
)

type QueryBondParams struct {
	Denom sdk.Symbol
	Addr  sdk.CUAddress
}

func NewQueryBondParams(denom sdk.Symbol, addr sdk.CUAddress) QueryBondParams {
	return QueryBondParams{
		Denom: denom,
		Addr:  addr,
	}
}

type BondResponse struct {
	Denom  sdk.Symbol    `json:"denom"`
	Addr   sdk.CUAddress `json:"addr"`
	Amount sdk.Int       `json:"amount"`
}

type PendingRewardsResponse struct {
	Denom   sdk.Symbol    `json:"denom"`
	Addr    sdk.CUAddress `json:"addr"`
	Rewards sdk.Coins     `json:"rewards"`
}
