package keeper

import (
	"fmt"

	"github.com/hbtc-chain/bhchain/codec"
	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/hbtc-chain/bhfarm/x/farm/types"
	abci "github.com/tendermint/tendermint/abci/types"
)

func NewQuerier(k Keeper) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) (res []byte, err sdk.Error) {
		switch path[0] {
		case types.QueryVault:
			return queryVault(ctx, req, k)
		case types.QueryAllVaults:
			return queryAllVaults(ctx, k)
		case types.QueryVaultState:
			return queryVaultState(ctx, req, k)
		case types.QueryRewardInfo:
			return queryRewardInfo(ctx, req, k)
		case types.QueryUserInfo:
			return queryUserInfo(ctx, req, k)
		case types.QueryParameters:
			return queryParameters(ctx, k)
		default:
			return nil, sdk.ErrUnknownRequest("unknown farm query endpoint")
		}
	}
}

func queryVault(ctx sdk.Context, req abci.RequestQuery, k Keeper) ([]byte, sdk.Error) {
	var params types.QueryVaultParams
	err := k.cdc.UnmarshalJSON(req.Data, &params)
	if err != nil {
		return nil, sdk.ErrInternal(fmt.Sprintf("failed to parse params: %s", err))
	}
	var vault *types.Vault
	if params.StakingDenom != "" {
		vault = k.GetVaultByDenom(ctx, params.StakingDenom)
		if vault == nil {
			return nil, types.ErrVaultNotFoundByDenom(params.StakingDenom.String())
		}
	} else {
		vault = k.GetVault(ctx, params.VaultID)
		if vault == nil {
			return nil, types.ErrVaultNotFound(params.VaultID)
		}
	}
	bz, err := codec.MarshalJSONIndent(k.cdc, vault)
	if err != nil {
		return nil, sdk.ErrInternal(sdk.AppendMsgToErr("could not marshal result to JSON", err.Error()))
	}
	return bz, nil
}

func queryAllVaults(ctx sdk.Context, k Keeper) ([]byte, sdk.Error) {
	vaults := k.GetAllVaults(ctx)
	bz, err := codec.MarshalJSONIndent(k.cdc, vaults)
	if err != nil {
		return nil, sdk.ErrInternal(sdk.AppendMsgToErr("could not marshal result to JSON", err.Error()))
	}
	return bz, nil
}

func queryVaultState(ctx sdk.Context, req abci.RequestQuery, k Keeper) ([]byte, sdk.Error) {
	var params types.QueryVaultParams
	err := k.cdc.UnmarshalJSON(req.Data, &params)
	if err != nil {
		return nil, sdk.ErrInternal(fmt.Sprintf("failed to parse params: %s", err))
	}
	vault := k.GetVault(ctx, params.VaultID)
	if vault == nil {
		return nil, types.ErrVaultNotFound(params.VaultID)
	}
	state := k.GetVaultState(ctx, params.VaultID)
	pending := sdk.NewCoins()
	pending = pending.Add(k.generator.QueryPendingRewards(ctx, types.ModuleCUAddress, vault.StakingDenom))
	for _, denom := range vault.AllRewardDenoms() {
		if balance := k.moduleBalanceOf(ctx, denom); balance.IsPositive() {
			pending = pending.Add(sdk.NewCoins(sdk.NewCoin(denom.String(), balance)))
		}
	}
	resp := types.VaultStateResponse{
		VaultID:         params.VaultID,
		TotalBondShare:  state.TotalBondShare,
		TotalBondAmount: k.StakedLPAmount(ctx, vault),
		PendingRewards:  pending,
	}
	bz, err := codec.MarshalJSONIndent(k.cdc, resp)
	if err != nil {
		return nil, sdk.ErrInternal(sdk.AppendMsgToErr("could not marshal result to JSON", err.Error()))
	}
	return bz, nil
}

func queryRewardInfo(ctx sdk.Context, req abci.RequestQuery, k Keeper) ([]byte, sdk.Error) {
	var params types.QueryRewardInfoParams
	err := k.cdc.UnmarshalJSON(req.Data, &params)
	if err != nil {
		return nil, sdk.ErrInternal(fmt.Sprintf("failed to parse params: %s", err))
	}
	vault := k.GetVault(ctx, params.VaultID)
	if vault == nil {
		return nil, types.ErrVaultNotFound(params.VaultID)
	}
	info := k.GetRewardInfo(ctx, params.VaultID, params.Staker)
	if info == nil {
		return nil, types.ErrRewardInfoNotFound(params.Staker)
	}
	state := k.GetVaultState(ctx, params.VaultID)
	lpBalance := k.StakedLPAmount(ctx, vault)
	resp := types.RewardInfoResponse{
		Staker:        params.Staker,
		VaultID:       params.VaultID,
		BondShare:     info.BondShare,
		TransferShare: info.TransferShare,
		BondAmount:    state.CalcBondAmount(lpBalance, info.TotalShare()),
		UserBalance:   info.CalcUserBalance(state, lpBalance, ctx.BlockTime().Unix(), k.VestingDuration(ctx)),
		DepositAmount: info.DepositAmount,
		DepositTime:   info.DepositTime,
		DepositCosts:  info.DepositCosts,
	}
	bz, err := codec.MarshalJSONIndent(k.cdc, resp)
	if err != nil {
		return nil, sdk.ErrInternal(sdk.AppendMsgToErr("could not marshal result to JSON", err.Error()))
	}
	return bz, nil
}

func queryUserInfo(ctx sdk.Context, req abci.RequestQuery, k Keeper) ([]byte, sdk.Error) {
	var params types.QueryRewardInfoParams
	err := k.cdc.UnmarshalJSON(req.Data, &params)
	if err != nil {
		return nil, sdk.ErrInternal(fmt.Sprintf("failed to parse params: %s", err))
	}
	vault := k.GetVault(ctx, params.VaultID)
	if vault == nil {
		return nil, types.ErrVaultNotFound(params.VaultID)
	}
	userBalance := sdk.ZeroInt()
	if info := k.GetRewardInfo(ctx, params.VaultID, params.Staker); info != nil {
		state := k.GetVaultState(ctx, params.VaultID)
		lpBalance := k.StakedLPAmount(ctx, vault)
		userBalance = info.CalcUserBalance(state, lpBalance, ctx.BlockTime().Unix(), k.VestingDuration(ctx))
	}
	resp := types.UserInfoResponse{
		Staker:      params.Staker,
		VaultID:     params.VaultID,
		UserBalance: userBalance,
	}
	bz, err := codec.MarshalJSONIndent(k.cdc, resp)
	if err != nil {
		return nil, sdk.ErrInternal(sdk.AppendMsgToErr("could not marshal result to JSON", err.Error()))
	}
	return bz, nil
}

func queryParameters(ctx sdk.Context, k Keeper) ([]byte, sdk.Error) {
	params := k.GetParams(ctx)
	bz, err := codec.MarshalJSONIndent(k.cdc, params)
	if err != nil {
		return nil, sdk.ErrInternal(sdk.AppendMsgToErr("could not marshal result to JSON", err.Error()))
	}
	return bz, nil
}
