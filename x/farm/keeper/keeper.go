package keeper

import (
	"encoding/binary"
	"fmt"

	"github.com/hbtc-chain/bhchain/codec"
	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/hbtc-chain/bhchain/x/params"
	"github.com/hbtc-chain/bhfarm/x/farm/types"
	"github.com/tendermint/tendermint/libs/log"
)

type Keeper struct {
	storeKey    sdk.StoreKey
	cdc         *codec.Codec
	tokenKeeper types.TokenKeeper
	cuKeeper    types.CUKeeper
	rk          types.ReceiptKeeper
	tk          types.TransferKeeper
	generator   types.GeneratorKeeper
	compounder  types.Compounder
	poolQuerier types.PoolQuerier
	paramstore  params.Subspace
}

func NewKeeper(cdc *codec.Codec, key sdk.StoreKey, tokenKeeper types.TokenKeeper, cuKeeper types.CUKeeper,
	rk types.ReceiptKeeper, tk types.TransferKeeper, generator types.GeneratorKeeper,
	compounder types.Compounder, poolQuerier types.PoolQuerier, paramstore params.Subspace) Keeper {
	return Keeper{
		storeKey:    key,
		cdc:         cdc,
		tokenKeeper: tokenKeeper,
		cuKeeper:    cuKeeper,
		rk:          rk,
		tk:          tk,
		generator:   generator,
		compounder:  compounder,
		poolQuerier: poolQuerier,
		paramstore:  paramstore.WithKeyTable(ParamKeyTable()),
	}
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

func (k Keeper) CheckSymbol(ctx sdk.Context, symbol sdk.Symbol) sdk.Result {
	tokenInfo := k.tokenKeeper.GetTokenInfo(ctx, symbol)
	if tokenInfo == nil {
		return sdk.ErrUnSupportToken(fmt.Sprintf("token %s does not exist", symbol.String())).Result()
	}
	if !tokenInfo.IsSendEnabled {
		return sdk.ErrUnSupportToken(fmt.Sprintf("token %s is not enable to send", symbol)).Result()
	}
	return sdk.Result{}
}

func (k Keeper) CreateVault(ctx sdk.Context, msg types.MsgCreateVault) sdk.Result {
	if k.GetVaultByDenom(ctx, msg.StakingDenom) != nil {
		return types.ErrVaultAlreadyExists(msg.StakingDenom.String()).Result()
	}
	if result := k.CheckSymbol(ctx, msg.StakingDenom); !result.IsOK() {
		return result
	}
	vault := types.NewVault(0, msg.StakingDenom, msg.BaseRewardDenom, msg.RewardDenoms, msg.From,
		msg.Controller, msg.CommunityFeeCollector, msg.PlatformFeeCollector, msg.ControllerFeeCollector,
		msg.CommunityFee, msg.PlatformFee, msg.ControllerFee)
	for _, denom := range vault.AllRewardDenoms() {
		if result := k.CheckSymbol(ctx, denom); !result.IsOK() {
			return result
		}
	}
	if vault.TotalFee().GT(k.MaxFee(ctx)) {
		return types.ErrInvalidFee("total fee exceeds maximum").Result()
	}

	vault.ID = k.autoIncrementVaultID(ctx)
	k.SaveVault(ctx, vault)
	k.SaveVaultState(ctx, types.NewVaultState(vault.ID))

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeCreateVault,
			sdk.NewAttribute(types.AttributeKeyVaultID, fmt.Sprintf("%d", vault.ID)),
			sdk.NewAttribute(types.AttributeKeyAddress, msg.From.String()),
		),
	})
	result := sdk.Result{}
	result.Events = append(result.Events, ctx.EventManager().Events()...)
	return result
}

func (k Keeper) UpdateVault(ctx sdk.Context, msg types.MsgUpdateVault) sdk.Result {
	vault := k.GetVault(ctx, msg.VaultID)
	if vault == nil {
		return types.ErrVaultNotFound(msg.VaultID).Result()
	}
	if !msg.From.Equals(vault.Owner) {
		return types.ErrUnauthorized("only vault owner can update").Result()
	}
	if msg.Controller != nil {
		vault.Controller = *msg.Controller
	}
	if msg.CommunityFeeCollector != nil {
		vault.CommunityFeeCollector = *msg.CommunityFeeCollector
	}
	if msg.PlatformFeeCollector != nil {
		vault.PlatformFeeCollector = *msg.PlatformFeeCollector
	}
	if msg.ControllerFeeCollector != nil {
		vault.ControllerFeeCollector = *msg.ControllerFeeCollector
	}
	if msg.CommunityFee != nil {
		vault.CommunityFee = *msg.CommunityFee
	}
	if msg.PlatformFee != nil {
		vault.PlatformFee = *msg.PlatformFee
	}
	if msg.ControllerFee != nil {
		vault.ControllerFee = *msg.ControllerFee
	}
	if msg.Paused != nil {
		vault.Paused = *msg.Paused
	}
	if err := types.ValidateFees(vault.CommunityFee, vault.PlatformFee, vault.ControllerFee); err != nil {
		return types.ErrInvalidFee(err.Error()).Result()
	}
	if vault.TotalFee().GT(k.MaxFee(ctx)) {
		return types.ErrInvalidFee("total fee exceeds maximum").Result()
	}
	k.SaveVault(ctx, vault)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeUpdateVault,
			sdk.NewAttribute(types.AttributeKeyVaultID, fmt.Sprintf("%d", vault.ID)),
		),
	})
	result := sdk.Result{}
	result.Events = append(result.Events, ctx.EventManager().Events()...)
	return result
}

func (k Keeper) autoIncrementVaultID(ctx sdk.Context) uint32 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.NextVaultIDKey)
	var id uint32 = 1
	if len(bz) != 0 {
		id = binary.BigEndian.Uint32(bz)
	}
	next := make([]byte, 4)
	binary.BigEndian.PutUint32(next, id+1)
	store.Set(types.NextVaultIDKey, next)
	return id
}

func (k Keeper) SetNextVaultID(ctx sdk.Context, id uint32) {
	store := ctx.KVStore(k.storeKey)
	bz := make([]byte, 4)
	binary.BigEndian.PutUint32(bz, id)
	store.Set(types.NextVaultIDKey, bz)
}

func (k Keeper) GetVault(ctx sdk.Context, vaultID uint32) *types.Vault {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.VaultKey(vaultID))
	if len(bz) == 0 {
		return nil
	}
	var vault types.Vault
	k.cdc.MustUnmarshalBinaryBare(bz, &vault)
	return &vault
}

func (k Keeper) GetVaultByDenom(ctx sdk.Context, denom sdk.Symbol) *types.Vault {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.VaultDenomKey(denom))
	if len(bz) == 0 {
		return nil
	}
	return k.GetVault(ctx, binary.BigEndian.Uint32(bz))
}

func (k Keeper) GetAllVaults(ctx sdk.Context) []*types.Vault {
	var ret []*types.Vault
	store := ctx.KVStore(k.storeKey)
	iter := sdk.KVStorePrefixIterator(store, types.VaultKeyPrefix)
	for ; iter.Valid(); iter.Next() {
		var vault types.Vault
		k.cdc.MustUnmarshalBinaryBare(iter.Value(), &vault)
		ret = append(ret, &vault)
	}
	iter.Close()
	return ret
}

func (k Keeper) SaveVault(ctx sdk.Context, vault *types.Vault) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.VaultKey(vault.ID), k.cdc.MustMarshalBinaryBare(vault))
	idBz := make([]byte, 4)
	binary.BigEndian.PutUint32(idBz, vault.ID)
	store.Set(types.VaultDenomKey(vault.StakingDenom), idBz)
}

func (k Keeper) GetVaultState(ctx sdk.Context, vaultID uint32) *types.VaultState {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.VaultStateKey(vaultID))
	if len(bz) == 0 {
		return types.NewVaultState(vaultID)
	}
	var state types.VaultState
	k.cdc.MustUnmarshalBinaryBare(bz, &state)
	return &state
}

func (k Keeper) SaveVaultState(ctx sdk.Context, state *types.VaultState) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.VaultStateKey(state.VaultID), k.cdc.MustMarshalBinaryBare(state))
}

func (k Keeper) GetRewardInfo(ctx sdk.Context, vaultID uint32, staker sdk.CUAddress) *types.RewardInfo {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.RewardInfoKey(vaultID, staker))
	if len(bz) == 0 {
		return nil
	}
	var info types.RewardInfo
	k.cdc.MustUnmarshalBinaryBare(bz, &info)
	return &info
}

func (k Keeper) SaveRewardInfo(ctx sdk.Context, vaultID uint32, staker sdk.CUAddress, info *types.RewardInfo) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.RewardInfoKey(vaultID, staker), k.cdc.MustMarshalBinaryBare(info))
}

func (k Keeper) GetAllRewardInfos(ctx sdk.Context, vaultID uint32) map[string]*types.RewardInfo {
	ret := make(map[string]*types.RewardInfo)
	store := ctx.KVStore(k.storeKey)
	iter := sdk.KVStorePrefixIterator(store, types.RewardInfoKeyPrefixWithVault(vaultID))
	for ; iter.Valid(); iter.Next() {
		var info types.RewardInfo
		k.cdc.MustUnmarshalBinaryBare(iter.Value(), &info)
		staker := types.GetStakerFromRewardInfoKey(iter.Key())
		ret[staker.String()] = &info
	}
	iter.Close()
	return ret
}

// StakedLPAmount is the vault's LP balance held in the external generator,
// the denominator of all share conversions.
func (k Keeper) StakedLPAmount(ctx sdk.Context, vault *types.Vault) sdk.Int {
	return k.generator.QueryDeposit(ctx, types.ModuleCUAddress, vault.StakingDenom)
}

func (k Keeper) moduleBalanceOf(ctx sdk.Context, denom sdk.Symbol) sdk.Int {
	cu := k.cuKeeper.GetOrNewCU(ctx, sdk.CUTypeUser, types.ModuleCUAddress)
	return cu.GetCoins().AmountOf(denom.String())
}
