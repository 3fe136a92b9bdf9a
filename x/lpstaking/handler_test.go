package lpstaking

import (
	"testing"

	"github.com/hbtc-chain/bhchain/codec"
	"github.com/hbtc-chain/bhchain/store"
	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/hbtc-chain/bhchain/x/custodianunit"
	cutypes "github.com/hbtc-chain/bhchain/x/custodianunit/types"
	"github.com/hbtc-chain/bhchain/x/mint"
	"github.com/hbtc-chain/bhchain/x/params"
	"github.com/hbtc-chain/bhchain/x/params/subspace"
	"github.com/hbtc-chain/bhchain/x/receipt"
	"github.com/hbtc-chain/bhchain/x/supply"
	supplyexported "github.com/hbtc-chain/bhchain/x/supply/exported"
	"github.com/hbtc-chain/bhchain/x/token"
	"github.com/hbtc-chain/bhchain/x/transfer"
	"github.com/hbtc-chain/bhfarm/x/lpstaking/keeper"
	"github.com/hbtc-chain/bhfarm/x/lpstaking/types"

	"github.com/stretchr/testify/assert"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	dbm "github.com/tendermint/tm-db"
)

type testInput struct {
	cdc     *codec.Codec
	ctx     sdk.Context
	ck      custodianunit.CUKeeperI
	k       keeper.Keeper
	handler sdk.Handler

	keeperWithSupply func(types.SupplyKeeper) keeper.Keeper
}

func setupTestInput() *testInput {
	db := dbm.NewMemDB()

	cdc := codec.New()
	codec.RegisterCrypto(cdc)
	custodianunit.RegisterCodec(cdc)
	token.RegisterCodec(cdc)
	receipt.RegisterCodec(cdc)
	supply.RegisterCodec(cdc)
	types.RegisterCodec(cdc)

	cuKey := sdk.NewKVStoreKey("cuKey")
	keyTransfer := sdk.NewKVStoreKey(transfer.StoreKey)
	keyParams := sdk.NewKVStoreKey("subspace")
	tokenKey := sdk.NewKVStoreKey(token.ModuleName)
	tkeyParams := sdk.NewTransientStoreKey(params.TStoreKey)
	lpstakingKey := sdk.NewKVStoreKey(ModuleName)
	receiptKey := sdk.NewKVStoreKey(receipt.StoreKey)
	supplyKey := sdk.NewKVStoreKey(supply.StoreKey)

	ms := store.NewCommitMultiStore(db)
	ms.MountStoreWithDB(cuKey, sdk.StoreTypeIAVL, db)
	ms.MountStoreWithDB(keyTransfer, sdk.StoreTypeIAVL, db)
	ms.MountStoreWithDB(keyParams, sdk.StoreTypeIAVL, db)
	ms.MountStoreWithDB(receiptKey, sdk.StoreTypeIAVL, db)
	ms.MountStoreWithDB(tkeyParams, sdk.StoreTypeTransient, db)
	ms.MountStoreWithDB(tokenKey, sdk.StoreTypeIAVL, db)
	ms.MountStoreWithDB(supplyKey, sdk.StoreTypeIAVL, db)
	ms.MountStoreWithDB(lpstakingKey, sdk.StoreTypeIAVL, db)
	ms.LoadLatestVersion()

	ctx := sdk.NewContext(ms, abci.Header{ChainID: "test-chain-id"}, false, log.NewNopLogger())
	ctx = ctx.WithBlockHeight(10)

	cuSp := subspace.NewSubspace(cdc, keyParams, tkeyParams, cutypes.DefaultParamspace)
	lpstakingSp := subspace.NewSubspace(cdc, keyParams, tkeyParams, types.DefaultParamspace)
	bkSp := subspace.NewSubspace(cdc, keyParams, tkeyParams, transfer.DefaultParamspace)
	tk := token.NewKeeper(tokenKey, cdc, subspace.NewSubspace(cdc, keyParams, tkeyParams, token.DefaultParamspace))
	ck := custodianunit.NewCUKeeper(cdc, cuKey, &tk, cuSp, cutypes.ProtoBaseCU)
	rk := receipt.NewKeeper(cdc)
	bk := transfer.NewBaseKeeper(cdc, keyTransfer, ck, nil, nil, rk, nil, nil, bkSp, transfer.DefaultCodespace, nil)

	maccPerms := map[string][]string{
		mint.ModuleName: {supply.Minter},
		ModuleName:      {supply.Minter},
	}
	sk := supply.NewKeeper(cdc, supplyKey, ck, bk, maccPerms)
	moduleCU := supply.NewEmptyModuleAccount(ModuleName, supply.Minter)
	sk.SetModuleAccount(ctx, moduleCU)
	sk.SetSupply(ctx, supply.NewSupply(sdk.NewCoins()))

	k := NewKeeper(cdc, lpstakingKey, &tk, ck, rk, sk, lpstakingSp)
	k.SetParams(ctx, types.NewParams("btc",
		[]*types.MiningWeight{
			types.NewMiningWeight("eth", sdk.NewInt(3)),
			types.NewMiningWeight("usdt", sdk.NewInt(1)),
		},
		[]*types.MiningPlan{
			types.NewMiningPlan(1, sdk.NewInt(1000)),
		}))

	for _, tokenInfo := range token.TestTokenData {
		token := token.NewTokenInfo(tokenInfo.Symbol, tokenInfo.Chain, tokenInfo.Issuer, tokenInfo.TokenType,
			tokenInfo.IsSendEnabled, tokenInfo.IsDepositEnabled, tokenInfo.IsWithdrawalEnabled, tokenInfo.Decimals,
			tokenInfo.TotalSupply, tokenInfo.CollectThreshold, tokenInfo.DepositThreshold, tokenInfo.OpenFee,
			tokenInfo.SysOpenFee, tokenInfo.WithdrawalFeeRate, tokenInfo.SysTransferNum, tokenInfo.OpCUSysTransferNum,
			tokenInfo.GasLimit, tokenInfo.GasPrice, tokenInfo.MaxOpCUNumber, tokenInfo.Confirmations, tokenInfo.IsNonceBased)
		tk.SetTokenInfo(ctx, token)
	}

	return &testInput{
		cdc:     cdc,
		ctx:     ctx,
		ck:      ck,
		k:       k,
		handler: NewHandler(k),
		keeperWithSupply: func(s types.SupplyKeeper) keeper.Keeper {
			sp := subspace.NewSubspace(cdc, keyParams, tkeyParams, "lpstakingalt")
			return NewKeeper(cdc, lpstakingKey, &tk, ck, rk, s, sp)
		},
	}
}

type failingMinter struct{}

func (failingMinter) SendCoinsFromModuleToAccount(ctx sdk.Context, senderModule string, recipientAddr sdk.CUAddress, amt sdk.Coins) (sdk.Result, sdk.Error) {
	return sdk.Result{}, sdk.ErrInternal("mint disabled")
}

func (failingMinter) MintCoins(ctx sdk.Context, name string, amt sdk.Coins) sdk.Error {
	return sdk.ErrInternal("mint disabled")
}

func (failingMinter) GetSupply(ctx sdk.Context) supplyexported.SupplyI {
	return supply.NewSupply(sdk.NewCoins())
}

func (input *testInput) addCoins(addr sdk.CUAddress, coins sdk.Coins) {
	cu := input.ck.GetOrNewCU(input.ctx, sdk.CUTypeUser, addr)
	cu.AddCoins(coins)
	input.ck.SetCU(input.ctx, cu)
}

func (input *testInput) balanceOf(addr sdk.CUAddress, denom string) sdk.Int {
	cu := input.ck.GetOrNewCU(input.ctx, sdk.CUTypeUser, addr)
	return cu.GetCoins().AmountOf(denom)
}

func TestHandleMsgStakeUnstake(t *testing.T) {
	input := setupTestInput()
	ctx := input.ctx
	staker := sdk.NewCUAddress()
	input.addCoins(staker, sdk.NewCoins(sdk.NewCoin("eth", sdk.NewInt(5000))))

	// unknown token
	res := input.handler(ctx, types.NewMsgStake(staker, "fakebtc", sdk.NewInt(1000)))
	assert.Equal(t, types.CodeUnsupportedLPToken, res.Code)

	// insufficient funds
	res = input.handler(ctx, types.NewMsgStake(staker, "eth", sdk.NewInt(6000)))
	assert.Equal(t, sdk.CodeInsufficientFunds, res.Code)

	res = input.handler(ctx, types.NewMsgStake(staker, "eth", sdk.NewInt(3000)))
	assert.True(t, res.IsOK())
	assert.Equal(t, sdk.NewInt(2000), input.balanceOf(staker, "eth"))
	assert.Equal(t, sdk.NewInt(3000), input.k.GetBond(ctx, "eth", staker))
	assert.Equal(t, sdk.NewInt(3000), input.k.GetTotalBond(ctx, "eth"))

	res = input.handler(ctx, types.NewMsgUnstake(staker, "eth", sdk.NewInt(4000)))
	assert.Equal(t, types.CodeUnstakeExceedsBond, res.Code)

	res = input.handler(ctx, types.NewMsgUnstake(staker, "eth", sdk.NewInt(1000)))
	assert.True(t, res.IsOK())
	assert.Equal(t, sdk.NewInt(3000), input.balanceOf(staker, "eth"))
	assert.Equal(t, sdk.NewInt(2000), input.k.GetBond(ctx, "eth", staker))
	assert.Equal(t, sdk.NewInt(2000), input.k.GetTotalBond(ctx, "eth"))
}

func TestMiningAndClaim(t *testing.T) {
	input := setupTestInput()
	ctx := input.ctx
	k := input.k

	staker1 := sdk.NewCUAddress()
	staker2 := sdk.NewCUAddress()
	staker3 := sdk.NewCUAddress()
	input.addCoins(staker1, sdk.NewCoins(sdk.NewCoin("eth", sdk.NewInt(3000))))
	input.addCoins(staker2, sdk.NewCoins(sdk.NewCoin("eth", sdk.NewInt(1000))))
	input.addCoins(staker3, sdk.NewCoins(sdk.NewCoin("usdt", sdk.NewInt(2000))))

	assert.True(t, input.handler(ctx, types.NewMsgStake(staker1, "eth", sdk.NewInt(3000))).IsOK())
	assert.True(t, input.handler(ctx, types.NewMsgStake(staker2, "eth", sdk.NewInt(1000))).IsOK())
	assert.True(t, input.handler(ctx, types.NewMsgStake(staker3, "usdt", sdk.NewInt(2000))).IsOK())

	// 1000 per block, weighted 3:1 between eth and usdt
	k.Mining(ctx)

	assert.Equal(t, sdk.NewInt(562), k.PendingRewards(ctx, staker1, "eth"))
	assert.Equal(t, sdk.NewInt(187), k.PendingRewards(ctx, staker2, "eth"))
	assert.Equal(t, sdk.NewInt(250), k.PendingRewards(ctx, staker3, "usdt"))

	res := input.handler(ctx, types.NewMsgClaim(staker1, "eth"))
	assert.True(t, res.IsOK())
	assert.Equal(t, sdk.NewInt(562), input.balanceOf(staker1, "btc"))
	assert.True(t, k.PendingRewards(ctx, staker1, "eth").IsZero())

	k.Mining(ctx)

	assert.Equal(t, sdk.NewInt(563), k.PendingRewards(ctx, staker1, "eth"))
	assert.Equal(t, sdk.NewInt(375), k.PendingRewards(ctx, staker2, "eth"))

	// unstaking keeps the accrued rewards claimable
	assert.True(t, input.handler(ctx, types.NewMsgUnstake(staker1, "eth", sdk.NewInt(3000))).IsOK())
	assert.Equal(t, sdk.NewInt(563), k.PendingRewards(ctx, staker1, "eth"))

	res = input.handler(ctx, types.NewMsgClaim(staker1, "eth"))
	assert.True(t, res.IsOK())
	assert.Equal(t, sdk.NewInt(1125), input.balanceOf(staker1, "btc"))
	assert.Equal(t, sdk.ZeroInt(), k.PendingRewards(ctx, staker1, "eth"))

	// no pending rewards is a no-op
	res = input.handler(ctx, types.NewMsgClaim(staker1, "eth"))
	assert.True(t, res.IsOK())
	assert.Equal(t, sdk.NewInt(1125), input.balanceOf(staker1, "btc"))
}

func TestMiningMintFailureSkipsDistribution(t *testing.T) {
	input := setupTestInput()
	ctx := input.ctx

	staker := sdk.NewCUAddress()
	input.addCoins(staker, sdk.NewCoins(sdk.NewCoin("eth", sdk.NewInt(3000))))
	assert.True(t, input.handler(ctx, types.NewMsgStake(staker, "eth", sdk.NewInt(3000))).IsOK())

	k := input.keeperWithSupply(failingMinter{})
	k.SetParams(ctx, input.k.GetParams(ctx))

	// a failed mint must not advance the reward masks
	k.Mining(ctx)
	assert.Equal(t, sdk.ZeroInt(), input.k.PendingRewards(ctx, staker, "eth"))
}
