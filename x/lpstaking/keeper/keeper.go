package keeper

import (
	"fmt"

	"github.com/hbtc-chain/bhchain/codec"
	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/hbtc-chain/bhchain/x/params"
	"github.com/hbtc-chain/bhfarm/x/lpstaking/types"
)

// Keeper of the lpstaking store
type Keeper struct {
	storeKey    sdk.StoreKey
	cdc         *codec.Codec
	tokenKeeper types.TokenKeeper
	cuKeeper    types.CUKeeper
	rk          types.ReceiptKeeper
	sk          types.SupplyKeeper
	paramstore  params.Subspace
}

// NewKeeper creates a lpstaking keeper
func NewKeeper(cdc *codec.Codec, key sdk.StoreKey, tokenKeeper types.TokenKeeper, cuKeeper types.CUKeeper,
	rk types.ReceiptKeeper, sk types.SupplyKeeper, paramstore params.Subspace) Keeper {
	return Keeper{
		storeKey:    key,
		cdc:         cdc,
		tokenKeeper: tokenKeeper,
		cuKeeper:    cuKeeper,
		rk:          rk,
		sk:          sk,
		paramstore:  paramstore.WithKeyTable(ParamKeyTable()),
	}
}

// Stake bonds LP tokens under the staker's own address.
func (k Keeper) Stake(ctx sdk.Context, from sdk.CUAddress, denom sdk.Symbol, amount sdk.Int) sdk.Result {
	flows, err := k.deposit(ctx, from, denom, amount)
	if err != nil {
		return err.Result()
	}

	receipt := k.rk.NewReceipt(sdk.CategoryTypeTransfer, flows)
	result := sdk.Result{}
	k.rk.SaveReceiptToResult(receipt, &result)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeStake,
			sdk.NewAttribute(types.AttributeKeyAddress, from.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, denom.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	})
	result.Events = append(result.Events, ctx.EventManager().Events()...)
	return result
}

// Unstake returns bonded LP tokens to the staker.
func (k Keeper) Unstake(ctx sdk.Context, from sdk.CUAddress, denom sdk.Symbol, amount sdk.Int) sdk.Result {
	flows, err := k.withdraw(ctx, from, denom, amount)
	if err != nil {
		return err.Result()
	}

	receipt := k.rk.NewReceipt(sdk.CategoryTypeTransfer, flows)
	result := sdk.Result{}
	k.rk.SaveReceiptToResult(receipt, &result)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeUnstake,
			sdk.NewAttribute(types.AttributeKeyAddress, from.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, denom.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	})
	result.Events = append(result.Events, ctx.EventManager().Events()...)
	return result
}

// Claim pays out the staker's accrued mining rewards for the given LP token.
func (k Keeper) Claim(ctx sdk.Context, from sdk.CUAddress, denom sdk.Symbol) sdk.Result {
	pending, flows, err := k.claimRewards(ctx, from, denom)
	if err != nil {
		return err.Result()
	}
	if !pending.IsPositive() {
		return sdk.Result{}
	}

	receipt := k.rk.NewReceipt(sdk.CategoryTypeTransfer, flows)
	result := sdk.Result{}
	k.rk.SaveReceiptToResult(receipt, &result)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeClaim,
			sdk.NewAttribute(types.AttributeKeyAddress, from.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, denom.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, pending.String()),
		),
	})
	result.Events = append(result.Events, ctx.EventManager().Events()...)
	return result
}

// Deposit bonds LP tokens on behalf of the depositor.
func (k Keeper) Deposit(ctx sdk.Context, depositor sdk.CUAddress, denom sdk.Symbol, amount sdk.Int) sdk.Error {
	_, err := k.deposit(ctx, depositor, denom, amount)
	return err
}

// Withdraw unbonds LP tokens and returns them to the depositor.
func (k Keeper) Withdraw(ctx sdk.Context, depositor sdk.CUAddress, denom sdk.Symbol, amount sdk.Int) sdk.Error {
	_, err := k.withdraw(ctx, depositor, denom, amount)
	return err
}

// ClaimRewards pays out the depositor's accrued mining rewards.
func (k Keeper) ClaimRewards(ctx sdk.Context, depositor sdk.CUAddress, denom sdk.Symbol) sdk.Error {
	_, _, err := k.claimRewards(ctx, depositor, denom)
	return err
}

// QueryDeposit returns the depositor's bonded amount of the given LP token.
func (k Keeper) QueryDeposit(ctx sdk.Context, depositor sdk.CUAddress, denom sdk.Symbol) sdk.Int {
	return k.GetBond(ctx, denom, depositor)
}

// QueryPendingRewards returns the depositor's unclaimed mining rewards.
func (k Keeper) QueryPendingRewards(ctx sdk.Context, depositor sdk.CUAddress, denom sdk.Symbol) sdk.Coins {
	pending := k.PendingRewards(ctx, depositor, denom)
	if !pending.IsPositive() {
		return sdk.NewCoins()
	}
	return sdk.NewCoins(sdk.NewCoin(k.RewardDenom(ctx).String(), pending))
}

func (k Keeper) deposit(ctx sdk.Context, depositor sdk.CUAddress, denom sdk.Symbol, amount sdk.Int) ([]sdk.Flow, sdk.Error) {
	if !amount.IsPositive() {
		return nil, types.ErrInvalidAmount("deposit amount should be positive")
	}
	if k.tokenKeeper.GetTokenInfo(ctx, denom) == nil {
		return nil, types.ErrUnsupportedLPToken(denom.String())
	}

	coins := sdk.NewCoins(sdk.NewCoin(denom.String(), amount))
	depositorCU := k.cuKeeper.GetCU(ctx, depositor)
	if depositorCU.GetCoins().AmountOf(denom.String()).LT(amount) {
		return nil, sdk.ErrInsufficientFunds(fmt.Sprintf("insufficient funds, need:%v", coins))
	}
	depositorCU.SubCoins(coins)
	k.cuKeeper.SetCU(ctx, depositorCU)
	moduleCU := k.cuKeeper.GetOrNewCU(ctx, sdk.CUTypeUser, types.ModuleCUAddress)
	moduleCU.AddCoins(coins)
	k.cuKeeper.SetCU(ctx, moduleCU)

	k.onUpdateBond(ctx, depositor, denom, amount)

	flows := make([]sdk.Flow, 0, 2)
	for _, flow := range depositorCU.GetBalanceFlows() {
		flows = append(flows, flow)
	}
	for _, flow := range moduleCU.GetBalanceFlows() {
		flows = append(flows, flow)
	}
	return flows, nil
}

func (k Keeper) withdraw(ctx sdk.Context, depositor sdk.CUAddress, denom sdk.Symbol, amount sdk.Int) ([]sdk.Flow, sdk.Error) {
	if !amount.IsPositive() {
		return nil, types.ErrInvalidAmount("withdraw amount should be positive")
	}
	bond := k.GetBond(ctx, denom, depositor)
	if bond.LT(amount) {
		return nil, types.ErrUnstakeExceedsBond()
	}

	k.onUpdateBond(ctx, depositor, denom, amount.Neg())

	coins := sdk.NewCoins(sdk.NewCoin(denom.String(), amount))
	moduleCU := k.cuKeeper.GetCU(ctx, types.ModuleCUAddress)
	moduleCU.SubCoins(coins)
	k.cuKeeper.SetCU(ctx, moduleCU)
	depositorCU := k.cuKeeper.GetCU(ctx, depositor)
	depositorCU.AddCoins(coins)
	k.cuKeeper.SetCU(ctx, depositorCU)

	flows := make([]sdk.Flow, 0, 2)
	for _, flow := range moduleCU.GetBalanceFlows() {
		flows = append(flows, flow)
	}
	for _, flow := range depositorCU.GetBalanceFlows() {
		flows = append(flows, flow)
	}
	return flows, nil
}

func (k Keeper) claimRewards(ctx sdk.Context, depositor sdk.CUAddress, denom sdk.Symbol) (sdk.Int, []sdk.Flow, sdk.Error) {
	pending := k.PendingRewards(ctx, depositor, denom)
	if !pending.IsPositive() {
		return sdk.ZeroInt(), nil, nil
	}

	rewardDenom := k.RewardDenom(ctx)
	result, err := k.sk.SendCoinsFromModuleToAccount(ctx, types.ModuleName, depositor,
		sdk.NewCoins(sdk.NewCoin(rewardDenom.String(), pending)))
	if err != nil {
		return sdk.ZeroInt(), nil, err
	}

	addrMaskKey := types.AddrMaskKey(denom, depositor)
	addrMask := k.getDec(ctx, addrMaskKey)
	addrMask = addrMask.Add(pending.ToDec())
	k.setDec(ctx, addrMaskKey, addrMask)

	return pending, k.getFlowsFromResult(&result), nil
}

// PendingRewards calculates the depositor's unclaimed mining rewards.
func (k Keeper) PendingRewards(ctx sdk.Context, depositor sdk.CUAddress, denom sdk.Symbol) sdk.Int {
	bond := k.GetBond(ctx, denom, depositor)
	globalMask := k.getDec(ctx, types.GlobalMaskKey(denom))
	addrMask := k.getDec(ctx, types.AddrMaskKey(denom, depositor))
	return globalMask.Mul(bond.ToDec()).Sub(addrMask).TruncateInt()
}

// GetBond returns the bonded amount of an address for a LP token.
func (k Keeper) GetBond(ctx sdk.Context, denom sdk.Symbol, addr sdk.CUAddress) sdk.Int {
	return k.getInt(ctx, types.BondKey(denom, addr))
}

// GetTotalBond returns the total bonded amount of a LP token.
func (k Keeper) GetTotalBond(ctx sdk.Context, denom sdk.Symbol) sdk.Int {
	return k.getInt(ctx, types.TotalBondKey(denom))
}

func (k Keeper) onUpdateBond(ctx sdk.Context, addr sdk.CUAddress, denom sdk.Symbol, delta sdk.Int) {
	totalBondKey := types.TotalBondKey(denom)
	totalBond := k.getInt(ctx, totalBondKey)
	totalBond = totalBond.Add(delta)
	k.setInt(ctx, totalBondKey, totalBond)

	bondKey := types.BondKey(denom, addr)
	bond := k.getInt(ctx, bondKey)
	bond = bond.Add(delta)
	k.setInt(ctx, bondKey, bond)

	globalMask := k.getDec(ctx, types.GlobalMaskKey(denom))
	if globalMask.IsPositive() {
		addrMaskKey := types.AddrMaskKey(denom, addr)
		addrMask := k.getDec(ctx, addrMaskKey)
		addrMask = addrMask.Add(globalMask.Mul(delta.ToDec()))
		k.setDec(ctx, addrMaskKey, addrMask)
	}
}

func (k Keeper) getInt(ctx sdk.Context, key []byte) sdk.Int {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(key)
	if len(bz) == 0 {
		return sdk.ZeroInt()
	}
	var ret sdk.Int
	k.cdc.MustUnmarshalBinaryBare(bz, &ret)
	return ret
}

func (k Keeper) setInt(ctx sdk.Context, key []byte, i sdk.Int) {
	store := ctx.KVStore(k.storeKey)
	bz := k.cdc.MustMarshalBinaryBare(i)
	store.Set(key, bz)
}

func (k Keeper) getDec(ctx sdk.Context, key []byte) (ret sdk.Dec) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(key)
	if len(bz) == 0 {
		return sdk.ZeroDec()
	}
	k.cdc.MustUnmarshalBinaryBare(bz, &ret)
	return
}

func (k Keeper) setDec(ctx sdk.Context, key []byte, d sdk.Dec) {
	store := ctx.KVStore(k.storeKey)
	bz := k.cdc.MustMarshalBinaryBare(d)
	store.Set(key, bz)
}

func (k Keeper) getFlowsFromResult(result *sdk.Result) []sdk.Flow {
	receipt, err := k.rk.GetReceiptFromResult(result)
	if err != nil {
		return nil
	}
	return receipt.Flows
}
