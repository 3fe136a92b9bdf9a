package keeper

import (
	"fmt"

	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/hbtc-chain/bhfarm/x/farm/types"
)

// Bond takes LP tokens from the sender, mints share against the vault's
// staked balance and forwards the tokens into the generator. The share is
// credited to staker, which differs from the sender only when bonding on
// behalf of someone else. The share price is read before the deposit so
// the new tokens do not dilute it.
func (k Keeper) Bond(ctx sdk.Context, from, staker sdk.CUAddress, vaultID uint32, amount sdk.Int) sdk.Result {
	vault := k.GetVault(ctx, vaultID)
	if vault == nil {
		return types.ErrVaultNotFound(vaultID).Result()
	}
	if vault.Paused {
		return types.ErrVaultPaused(vaultID).Result()
	}

	fromCU := k.cuKeeper.GetCU(ctx, from)
	need := sdk.NewCoins(sdk.NewCoin(vault.StakingDenom.String(), amount))
	if fromCU.GetCoins().AmountOf(vault.StakingDenom.String()).LT(amount) {
		return sdk.ErrInsufficientFunds(fmt.Sprintf("insufficient funds, need:%v", need)).Result()
	}
	fromCU.SubCoins(need)
	k.cuKeeper.SetCU(ctx, fromCU)
	moduleCU := k.cuKeeper.GetOrNewCU(ctx, sdk.CUTypeUser, types.ModuleCUAddress)
	moduleCU.AddCoins(need)
	k.cuKeeper.SetCU(ctx, moduleCU)

	lpBalance := k.StakedLPAmount(ctx, vault)
	share, err := k.bondInternal(ctx, vault, staker, amount, lpBalance)
	if err != nil {
		return err.Result()
	}
	if err := k.generator.Deposit(ctx, types.ModuleCUAddress, vault.StakingDenom, amount); err != nil {
		return err.Result()
	}

	flows := make([]sdk.Flow, 0, 2)
	for _, flow := range fromCU.GetBalanceFlows() {
		flows = append(flows, flow)
	}
	for _, flow := range moduleCU.GetBalanceFlows() {
		flows = append(flows, flow)
	}
	receipt := k.rk.NewReceipt(sdk.CategoryTypeTransfer, flows)
	result := sdk.Result{}
	k.rk.SaveReceiptToResult(receipt, &result)

	eventBond := types.NewEventBond(staker, vaultID, amount, share)
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeBond,
			sdk.NewAttribute(types.AttributeKeyBond, eventBond.String()),
		),
	})
	result.Events = append(result.Events, ctx.EventManager().Events()...)
	return result
}

// BondAssets converts pool assets into LP tokens first. The amount of LP
// actually received is only known after the conversion, so the bond itself
// runs in a follow-up callback against the recorded balance.
func (k Keeper) BondAssets(ctx sdk.Context, from sdk.CUAddress, vaultID uint32, assets sdk.Coins,
	minimumReceive *sdk.Int, noSwap bool, slippageTolerance sdk.Dec) sdk.Result {
	vault := k.GetVault(ctx, vaultID)
	if vault == nil {
		return types.ErrVaultNotFound(vaultID).Result()
	}
	if vault.Paused {
		return types.ErrVaultPaused(vaultID).Result()
	}
	for _, asset := range assets {
		// the LP token itself would distort the received-balance measurement
		if sdk.Symbol(asset.Denom) == vault.StakingDenom {
			return types.ErrInvalidAsset(fmt.Sprintf("%s is the staking lp token, not a pool asset", asset.Denom)).Result()
		}
		if result := k.CheckSymbol(ctx, sdk.Symbol(asset.Denom)); !result.IsOK() {
			return result
		}
	}

	fromCU := k.cuKeeper.GetCU(ctx, from)
	if !fromCU.GetCoins().IsAllGTE(assets) {
		return sdk.ErrInsufficientFunds(fmt.Sprintf("insufficient funds, need:%v", assets)).Result()
	}
	fromCU.SubCoins(assets)
	k.cuKeeper.SetCU(ctx, fromCU)
	moduleCU := k.cuKeeper.GetOrNewCU(ctx, sdk.CUTypeUser, types.ModuleCUAddress)
	moduleCU.AddCoins(assets)
	k.cuKeeper.SetCU(ctx, moduleCU)

	prevBalance := k.moduleBalanceOf(ctx, vault.StakingDenom)
	if err := k.compounder.Compound(ctx, types.ModuleCUAddress, assets, vault.StakingDenom, noSwap, slippageTolerance); err != nil {
		return err.Result()
	}

	flows := make([]sdk.Flow, 0, 2)
	for _, flow := range fromCU.GetBalanceFlows() {
		flows = append(flows, flow)
	}
	for _, flow := range moduleCU.GetBalanceFlows() {
		flows = append(flows, flow)
	}
	receipt := k.rk.NewReceipt(sdk.CategoryTypeTransfer, flows)

	callback := types.NewBondToCallback(vaultID, from, prevBalance, minimumReceive)
	result := k.HandleCallback(ctx, types.NewMsgCallback(types.ModuleCUAddress, callback))
	if !result.IsOK() {
		return result
	}
	k.rk.SaveReceiptToResult(receipt, &result)
	return result
}

func (k Keeper) bondInternal(ctx sdk.Context, vault *types.Vault, staker sdk.CUAddress,
	amount, lpBalanceBefore sdk.Int) (sdk.Int, sdk.Error) {
	poolBalances, lpSupply, err := k.poolQuerier.QueryPool(ctx, vault.StakingDenom)
	if err != nil {
		return sdk.Int{}, err
	}
	state := k.GetVaultState(ctx, vault.ID)
	share := state.CalcBondShare(amount, lpBalanceBefore, types.Truncate)
	state.TotalBondShare = state.TotalBondShare.Add(share)
	// cost basis books the share's value after truncation, not the raw input
	depositAmount := state.CalcBondAmount(lpBalanceBefore.Add(amount), share)

	info := k.GetRewardInfo(ctx, vault.ID, staker)
	if info == nil {
		info = types.NewRewardInfo(len(poolBalances))
	}
	if err := info.RecordDeposit(depositAmount, ctx.BlockTime().Unix(), poolBalances, lpSupply); err != nil {
		return sdk.Int{}, err
	}
	info.BondShare = info.BondShare.Add(share)

	k.SaveRewardInfo(ctx, vault.ID, staker, info)
	k.SaveVaultState(ctx, state)
	return share, nil
}

// Unbond withdraws LP tokens up to the staker's vested balance. The share
// burned is the withdrawn fraction of the staker's own share, priced at the
// vested balance and rounded up, so withdrawing everything while gain is
// still vesting burns all share and forfeits the locked gain to the pool.
func (k Keeper) Unbond(ctx sdk.Context, from sdk.CUAddress, vaultID uint32, amount sdk.Int) sdk.Result {
	vault := k.GetVault(ctx, vaultID)
	if vault == nil {
		return types.ErrVaultNotFound(vaultID).Result()
	}
	info := k.GetRewardInfo(ctx, vaultID, from)
	if info == nil {
		return types.ErrRewardInfoNotFound(from).Result()
	}
	state := k.GetVaultState(ctx, vaultID)
	lpBalance := k.StakedLPAmount(ctx, vault)
	userBalance := info.CalcUserBalance(state, lpBalance, ctx.BlockTime().Unix(), k.VestingDuration(ctx))
	if amount.GT(userBalance) {
		return types.ErrUnbondExceedBalance().Result()
	}

	share := types.MulAndDivCeil(info.TotalShare(), amount, userBalance)
	if err := info.Unbond(share, amount, userBalance); err != nil {
		return err.Result()
	}
	state.TotalBondShare = state.TotalBondShare.Sub(share)
	k.SaveRewardInfo(ctx, vaultID, from, info)
	k.SaveVaultState(ctx, state)

	if err := k.generator.Withdraw(ctx, types.ModuleCUAddress, vault.StakingDenom, amount); err != nil {
		return err.Result()
	}

	returned := sdk.NewCoins(sdk.NewCoin(vault.StakingDenom.String(), amount))
	moduleCU := k.cuKeeper.GetCU(ctx, types.ModuleCUAddress)
	moduleCU.SubCoins(returned)
	k.cuKeeper.SetCU(ctx, moduleCU)
	fromCU := k.cuKeeper.GetCU(ctx, from)
	fromCU.AddCoins(returned)
	k.cuKeeper.SetCU(ctx, fromCU)

	flows := make([]sdk.Flow, 0, 2)
	for _, flow := range moduleCU.GetBalanceFlows() {
		flows = append(flows, flow)
	}
	for _, flow := range fromCU.GetBalanceFlows() {
		flows = append(flows, flow)
	}
	receipt := k.rk.NewReceipt(sdk.CategoryTypeTransfer, flows)
	result := sdk.Result{}
	k.rk.SaveReceiptToResult(receipt, &result)

	eventUnbond := types.NewEventUnbond(from, vaultID, amount, share)
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeUnbond,
			sdk.NewAttribute(types.AttributeKeyUnbond, eventUnbond.String()),
		),
	})
	result.Events = append(result.Events, ctx.EventManager().Events()...)
	return result
}

// TransferShare moves share units between stakers without touching the
// generator deposit. The receiver's claim keeps vesting on its own record.
func (k Keeper) TransferShare(ctx sdk.Context, from, to sdk.CUAddress, vaultID uint32, share sdk.Int) sdk.Result {
	vault := k.GetVault(ctx, vaultID)
	if vault == nil {
		return types.ErrVaultNotFound(vaultID).Result()
	}
	fromInfo := k.GetRewardInfo(ctx, vaultID, from)
	if fromInfo == nil {
		return types.ErrRewardInfoNotFound(from).Result()
	}
	toInfo := k.GetRewardInfo(ctx, vaultID, to)
	if toInfo == nil {
		toInfo = types.NewRewardInfo(len(fromInfo.DepositCosts))
	}
	if err := fromInfo.TransferTo(toInfo, share); err != nil {
		return err.Result()
	}
	k.SaveRewardInfo(ctx, vaultID, from, fromInfo)
	k.SaveRewardInfo(ctx, vaultID, to, toInfo)

	event := types.NewEventTransferShare(from, to, vaultID, share)
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeTransferShare,
			sdk.NewAttribute(types.AttributeKeyShare, event.String()),
		),
	})
	result := sdk.Result{}
	result.Events = append(result.Events, ctx.EventManager().Events()...)
	return result
}
