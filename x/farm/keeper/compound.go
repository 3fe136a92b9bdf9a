package keeper

import (
	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/hbtc-chain/bhfarm/x/farm/types"
)

// Compound harvests the vault's pending rewards, routes the commission to
// the fee collectors and converts the remainder into more staked LP. Share
// supply is untouched, so every staker's share gains value.
func (k Keeper) Compound(ctx sdk.Context, from sdk.CUAddress, vaultID uint32,
	minimumReceive *sdk.Int, slippageTolerance sdk.Dec) sdk.Result {
	vault := k.GetVault(ctx, vaultID)
	if vault == nil {
		return types.ErrVaultNotFound(vaultID).Result()
	}
	if vault.Paused {
		return types.ErrVaultPaused(vaultID).Result()
	}
	if !from.Equals(vault.Controller) {
		return types.ErrUnauthorized("only vault controller can compound").Result()
	}

	if err := k.generator.ClaimRewards(ctx, types.ModuleCUAddress, vault.StakingDenom); err != nil {
		return err.Result()
	}

	totalFee := vault.TotalFee()
	compoundAssets := sdk.NewCoins()
	totalReward, totalCommission := sdk.ZeroInt(), sdk.ZeroInt()
	flows := make([]sdk.Flow, 0, 8)
	for _, denom := range vault.AllRewardDenoms() {
		reward := k.moduleBalanceOf(ctx, denom)
		if !reward.IsPositive() {
			continue
		}
		commission := reward.ToDec().Mul(totalFee).TruncateInt()
		commissionFlows, err := k.distributeCommission(ctx, vault, denom, commission)
		if err != nil {
			return err.Result()
		}
		flows = append(flows, commissionFlows...)

		remainder := reward.Sub(commission)
		if remainder.IsPositive() {
			compoundAssets = compoundAssets.Add(sdk.NewCoins(sdk.NewCoin(denom.String(), remainder)))
		}
		totalReward = totalReward.Add(reward)
		totalCommission = totalCommission.Add(commission)
	}

	prevBalance := k.moduleBalanceOf(ctx, vault.StakingDenom)
	if !compoundAssets.IsZero() {
		if err := k.compounder.Compound(ctx, types.ModuleCUAddress, compoundAssets, vault.StakingDenom, false, slippageTolerance); err != nil {
			return err.Result()
		}
	}

	receipt := k.rk.NewReceipt(sdk.CategoryTypeTransfer, flows)
	compounded := k.moduleBalanceOf(ctx, vault.StakingDenom).Sub(prevBalance)
	if compounded.IsNegative() {
		compounded = sdk.ZeroInt()
	}

	callback := types.NewStakeCallback(vaultID, prevBalance, minimumReceive)
	result := k.HandleCallback(ctx, types.NewMsgCallback(types.ModuleCUAddress, callback))
	if !result.IsOK() {
		return result
	}
	k.rk.SaveReceiptToResult(receipt, &result)
	k.Logger(ctx).Info("compound", "vault", vaultID, "reward", totalReward.String(),
		"commission", totalCommission.String(), "compounded", compounded.String())
	event := types.NewEventCompound(vaultID, totalReward, totalCommission, compounded)
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeCompound,
			sdk.NewAttribute(types.AttributeKeyAmount, event.String()),
		),
	})
	result.Events = append(result.Events, ctx.EventManager().Events()...)
	return result
}

// distributeCommission splits the commission by fee weight. The controller
// takes whatever truncation leaves over, so the three parts always sum to
// the full commission.
func (k Keeper) distributeCommission(ctx sdk.Context, vault *types.Vault, denom sdk.Symbol, commission sdk.Int) ([]sdk.Flow, sdk.Error) {
	if !commission.IsPositive() {
		return nil, nil
	}
	totalFee := vault.TotalFee()
	communityAmount := commission.ToDec().Mul(vault.CommunityFee).Quo(totalFee).TruncateInt()
	platformAmount := commission.ToDec().Mul(vault.PlatformFee).Quo(totalFee).TruncateInt()
	controllerAmount := commission.Sub(communityAmount).Sub(platformAmount)

	var flows []sdk.Flow
	payouts := []struct {
		to     sdk.CUAddress
		amount sdk.Int
	}{
		{vault.CommunityFeeCollector, communityAmount},
		{vault.PlatformFeeCollector, platformAmount},
		{vault.ControllerFeeCollector, controllerAmount},
	}
	for _, payout := range payouts {
		if !payout.amount.IsPositive() {
			continue
		}
		coins := sdk.NewCoins(sdk.NewCoin(denom.String(), payout.amount))
		_, payoutFlows, err := k.tk.SendCoins(ctx, types.ModuleCUAddress, payout.to, coins)
		if err != nil {
			return nil, err
		}
		flows = append(flows, payoutFlows...)
	}
	return flows, nil
}
