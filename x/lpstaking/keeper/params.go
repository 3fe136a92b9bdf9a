package keeper

import (
	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/hbtc-chain/bhchain/x/params"
	"github.com/hbtc-chain/bhfarm/x/lpstaking/types"
)

// ParamKeyTable for lpstaking module
func ParamKeyTable() params.KeyTable {
	return params.NewKeyTable().RegisterParamSet(&types.Params{})
}

func (k Keeper) RewardDenom(ctx sdk.Context) (res sdk.Symbol) {
	k.paramstore.Get(ctx, types.KeyRewardDenom, &res)
	return
}

func (k Keeper) MiningWeights(ctx sdk.Context) (res []*types.MiningWeight) {
	k.paramstore.Get(ctx, types.KeyMiningWeights, &res)
	return
}

func (k Keeper) MiningPlans(ctx sdk.Context) (res []*types.MiningPlan) {
	k.paramstore.Get(ctx, types.KeyMiningPlans, &res)
	return
}

// GetParams returns the total set of lpstaking parameters.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	return types.NewParams(k.RewardDenom(ctx), k.MiningWeights(ctx), k.MiningPlans(ctx))
}

// SetParams sets the lpstaking parameters to the param space.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) {
	k.paramstore.SetParamSet(ctx, &params)
}
