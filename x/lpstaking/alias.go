package lpstaking

import (
	"github.com/hbtc-chain/bhfarm/x/lpstaking/keeper"
	"github.com/hbtc-chain/bhfarm/x/lpstaking/types"
)

const (
	ModuleName        = types.ModuleName
	RouterKey         = types.RouterKey
	StoreKey          = types.StoreKey
	QuerierKey        = types.QuerierKey
	DefaultParamspace = types.DefaultParamspace
)

var (
	RegisterCodec   = types.RegisterCodec
	ModuleCdc       = types.ModuleCdc
	NewKeeper       = keeper.NewKeeper
	DefaultParams   = types.DefaultParams
	ModuleCUAddress = types.ModuleCUAddress
)

type (
	Keeper = keeper.Keeper
	Params = types.Params
)
