package farm

import (
	"github.com/hbtc-chain/bhfarm/x/farm/keeper"
	"github.com/hbtc-chain/bhfarm/x/farm/types"
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
	ModuleCUAddress = types.ModuleCUAddress
)

type (
	Vault      = types.Vault
	VaultState = types.VaultState
	RewardInfo = types.RewardInfo
	Keeper     = keeper.Keeper
)
