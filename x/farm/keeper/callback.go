package keeper

import (
	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/hbtc-chain/bhfarm/x/farm/types"
)

// HandleCallback resolves the second phase of a two-step operation. The
// sender must be the module address itself; external senders can never
// produce a valid signature for it.
func (k Keeper) HandleCallback(ctx sdk.Context, msg types.MsgCallback) sdk.Result {
	if !msg.From.Equals(types.ModuleCUAddress) {
		return types.ErrUnauthorized("callbacks can only be invoked by the module itself").Result()
	}
	switch callback := msg.Callback.(type) {
	case types.StakeCallback:
		return k.handleStakeCallback(ctx, callback)
	case types.BondToCallback:
		return k.handleBondToCallback(ctx, callback)
	default:
		return types.ErrInvalidMessage("unknown callback type").Result()
	}
}

func (k Keeper) handleStakeCallback(ctx sdk.Context, callback types.StakeCallback) sdk.Result {
	vault := k.GetVault(ctx, callback.VaultID)
	if vault == nil {
		return types.ErrVaultNotFound(callback.VaultID).Result()
	}
	received := k.moduleBalanceOf(ctx, vault.StakingDenom).Sub(callback.PrevBalance)
	if received.IsNegative() {
		received = sdk.ZeroInt()
	}
	if callback.MinimumReceive != nil && received.LT(*callback.MinimumReceive) {
		return types.ErrAssertionMinimumReceive(*callback.MinimumReceive, received).Result()
	}
	if !received.IsPositive() {
		return sdk.Result{}
	}
	if err := k.generator.Deposit(ctx, types.ModuleCUAddress, vault.StakingDenom, received); err != nil {
		return err.Result()
	}
	return sdk.Result{}
}

func (k Keeper) handleBondToCallback(ctx sdk.Context, callback types.BondToCallback) sdk.Result {
	vault := k.GetVault(ctx, callback.VaultID)
	if vault == nil {
		return types.ErrVaultNotFound(callback.VaultID).Result()
	}
	received := k.moduleBalanceOf(ctx, vault.StakingDenom).Sub(callback.PrevBalance)
	if received.IsNegative() {
		received = sdk.ZeroInt()
	}
	if callback.MinimumReceive != nil && received.LT(*callback.MinimumReceive) {
		return types.ErrAssertionMinimumReceive(*callback.MinimumReceive, received).Result()
	}
	if !received.IsPositive() {
		return types.ErrInvalidAmount("no lp token received").Result()
	}
	k.Logger(ctx).Info("bond callback", "vault", callback.VaultID, "to", callback.To.String(), "received", received.String())

	lpBalance := k.StakedLPAmount(ctx, vault)
	share, err := k.bondInternal(ctx, vault, callback.To, received, lpBalance)
	if err != nil {
		return err.Result()
	}
	if err := k.generator.Deposit(ctx, types.ModuleCUAddress, vault.StakingDenom, received); err != nil {
		return err.Result()
	}

	eventBond := types.NewEventBond(callback.To, callback.VaultID, received, share)
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeBond,
			sdk.NewAttribute(types.AttributeKeyBond, eventBond.String()),
		),
	})
	result := sdk.Result{}
	result.Events = append(result.Events, ctx.EventManager().Events()...)
	return result
}
