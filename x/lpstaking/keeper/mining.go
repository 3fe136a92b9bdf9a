package keeper

import (
	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/hbtc-chain/bhfarm/x/lpstaking/types"
)

// Mining mints the block reward and credits it to bonded LP tokens by weight.
// Called from EndBlock.
func (k Keeper) Mining(ctx sdk.Context) {
	amount := k.getMiningAmount(ctx)
	if !amount.IsPositive() {
		return
	}

	rewardDenom := k.RewardDenom(ctx)
	rewardToken := k.tokenKeeper.GetTokenInfo(ctx, rewardDenom)
	if rewardToken == nil {
		return
	}
	circulation := k.sk.GetSupply(ctx).GetTotal().AmountOf(rewardDenom.String())
	maxMining := rewardToken.TotalSupply.Sub(circulation)
	amount = sdk.MinInt(amount, maxMining)
	if !amount.IsPositive() {
		return
	}

	if err := k.sk.MintCoins(ctx, types.ModuleName, sdk.NewCoins(sdk.NewCoin(rewardDenom.String(), amount))); err != nil {
		ctx.Logger().Error("mining mint failed", "denom", rewardDenom.String(), "amount", amount.String(), "err", err)
		return
	}
	k.distribute(ctx, amount)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeMining,
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	})
}

func (k Keeper) distribute(ctx sdk.Context, amount sdk.Int) {
	totalWeight := sdk.ZeroInt()
	miningWeights := k.MiningWeights(ctx)
	for _, w := range miningWeights {
		totalWeight = totalWeight.Add(w.Weight)
	}
	if !totalWeight.IsPositive() {
		return
	}

	remaining := amount
	for i, w := range miningWeights {
		distribution := remaining
		if i < len(miningWeights)-1 {
			distribution = amount.Mul(w.Weight).Quo(totalWeight)
			remaining = remaining.Sub(distribution)
		}
		k.onMining(ctx, w.Denom, distribution)
	}
}

func (k Keeper) getMiningAmount(ctx sdk.Context) sdk.Int {
	height := uint64(ctx.BlockHeight())
	amount := sdk.ZeroInt()
	for _, plan := range k.MiningPlans(ctx) {
		if plan.StartHeight > height {
			break
		}
		amount = plan.MiningPerBlock
	}
	return amount
}

func (k Keeper) onMining(ctx sdk.Context, denom sdk.Symbol, amount sdk.Int) {
	totalBond := k.GetTotalBond(ctx, denom)
	if totalBond.IsPositive() {
		globalMaskKey := types.GlobalMaskKey(denom)
		globalMask := k.getDec(ctx, globalMaskKey)
		globalMask = globalMask.Add(amount.ToDec().Quo(totalBond.ToDec()))
		k.setDec(ctx, globalMaskKey, globalMask)
	}
}
