package farm

import (
	"testing"
	"time"

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
	"github.com/hbtc-chain/bhchain/x/token"
	"github.com/hbtc-chain/bhchain/x/transfer"
	"github.com/hbtc-chain/bhfarm/x/farm/keeper"
	"github.com/hbtc-chain/bhfarm/x/farm/types"
	"github.com/hbtc-chain/bhfarm/x/lpstaking"
	lpkeeper "github.com/hbtc-chain/bhfarm/x/lpstaking/keeper"

	"github.com/stretchr/testify/assert"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	dbm "github.com/tendermint/tm-db"
)

const baseTime = int64(1600000000)

type mockCompounder struct {
	ck  custodianunit.CUKeeperI
	out sdk.Int
}

func (m *mockCompounder) Compound(ctx sdk.Context, owner sdk.CUAddress, assets sdk.Coins,
	lpDenom sdk.Symbol, noSwap bool, slippageTolerance sdk.Dec) sdk.Error {
	cu := m.ck.GetCU(ctx, owner)
	cu.SubCoins(assets)
	cu.AddCoins(sdk.NewCoins(sdk.NewCoin(lpDenom.String(), m.out)))
	m.ck.SetCU(ctx, cu)
	return nil
}

type mockPoolQuerier struct {
	balances    []sdk.Int
	totalSupply sdk.Int
}

func (m *mockPoolQuerier) QueryPool(ctx sdk.Context, lpDenom sdk.Symbol) ([]sdk.Int, sdk.Int, sdk.Error) {
	return m.balances, m.totalSupply, nil
}

type testInput struct {
	cdc        *codec.Codec
	ctx        sdk.Context
	tk         token.Keeper
	ck         custodianunit.CUKeeperI
	k          keeper.Keeper
	lk         lpkeeper.Keeper
	compounder *mockCompounder
	handler    sdk.Handler
}

func setupTestInput() *testInput {
	db := dbm.NewMemDB()

	cdc := codec.New()
	codec.RegisterCrypto(cdc)
	custodianunit.RegisterCodec(cdc)
	token.RegisterCodec(cdc)
	receipt.RegisterCodec(cdc)
	types.RegisterCodec(cdc)
	lpstaking.RegisterCodec(cdc)

	cuKey := sdk.NewKVStoreKey("cuKey")
	keyTransfer := sdk.NewKVStoreKey(transfer.StoreKey)
	keyParams := sdk.NewKVStoreKey("subspace")
	tokenKey := sdk.NewKVStoreKey(token.ModuleName)
	tkeyParams := sdk.NewTransientStoreKey(params.TStoreKey)
	farmKey := sdk.NewKVStoreKey(ModuleName)
	lpstakingKey := sdk.NewKVStoreKey(lpstaking.ModuleName)
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
	ms.MountStoreWithDB(farmKey, sdk.StoreTypeIAVL, db)
	ms.MountStoreWithDB(lpstakingKey, sdk.StoreTypeIAVL, db)
	ms.LoadLatestVersion()

	ctx := sdk.NewContext(ms, abci.Header{ChainID: "test-chain-id"}, false, log.NewNopLogger())
	ctx = ctx.WithBlockTime(time.Unix(baseTime, 0))

	cuSp := subspace.NewSubspace(cdc, keyParams, tkeyParams, cutypes.DefaultParamspace)
	farmSp := subspace.NewSubspace(cdc, keyParams, tkeyParams, types.DefaultParamspace)
	lpstakingSp := subspace.NewSubspace(cdc, keyParams, tkeyParams, lpstaking.DefaultParamspace)
	bkSp := subspace.NewSubspace(cdc, keyParams, tkeyParams, transfer.DefaultParamspace)
	tk := token.NewKeeper(tokenKey, cdc, subspace.NewSubspace(cdc, keyParams, tkeyParams, token.DefaultParamspace))
	ck := custodianunit.NewCUKeeper(cdc, cuKey, &tk, cuSp, cutypes.ProtoBaseCU)
	rk := receipt.NewKeeper(cdc)
	bk := transfer.NewBaseKeeper(cdc, keyTransfer, ck, nil, nil, rk, nil, nil, bkSp, transfer.DefaultCodespace, nil)

	maccPerms := map[string][]string{
		mint.ModuleName:      {supply.Minter},
		lpstaking.ModuleName: {supply.Minter},
	}
	sk := supply.NewKeeper(cdc, supplyKey, ck, bk, maccPerms)
	moduleCU := supply.NewEmptyModuleAccount(lpstaking.ModuleName, supply.Minter)
	sk.SetModuleAccount(ctx, moduleCU)
	totalSupply := sdk.NewCoins(sdk.NewCoin(sdk.NativeDefiToken, sdk.NewInt(100000000000000000)))
	sk.SetSupply(ctx, supply.NewSupply(totalSupply))

	lk := lpkeeper.NewKeeper(cdc, lpstakingKey, &tk, ck, rk, sk, lpstakingSp)
	lk.SetParams(ctx, lpstaking.DefaultParams())

	compounder := &mockCompounder{ck: ck, out: sdk.ZeroInt()}
	poolQuerier := &mockPoolQuerier{
		balances:    []sdk.Int{sdk.NewInt(500), sdk.NewInt(1000)},
		totalSupply: sdk.NewInt(10000),
	}
	k := NewKeeper(cdc, farmKey, &tk, ck, rk, bk, lk, compounder, poolQuerier, farmSp)
	k.SetParams(ctx, types.DefaultParams())

	for _, tokenInfo := range token.TestTokenData {
		token := token.NewTokenInfo(tokenInfo.Symbol, tokenInfo.Chain, tokenInfo.Issuer, tokenInfo.TokenType,
			tokenInfo.IsSendEnabled, tokenInfo.IsDepositEnabled, tokenInfo.IsWithdrawalEnabled, tokenInfo.Decimals,
			tokenInfo.TotalSupply, tokenInfo.CollectThreshold, tokenInfo.DepositThreshold, tokenInfo.OpenFee,
			tokenInfo.SysOpenFee, tokenInfo.WithdrawalFeeRate, tokenInfo.SysTransferNum, tokenInfo.OpCUSysTransferNum,
			tokenInfo.GasLimit, tokenInfo.GasPrice, tokenInfo.MaxOpCUNumber, tokenInfo.Confirmations, tokenInfo.IsNonceBased)
		tk.SetTokenInfo(ctx, token)
	}

	return &testInput{
		cdc:        cdc,
		ctx:        ctx,
		tk:         tk,
		ck:         ck,
		k:          k,
		lk:         lk,
		compounder: compounder,
		handler:    NewHandler(k),
	}
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

type testVault struct {
	owner               sdk.CUAddress
	controller          sdk.CUAddress
	communityCollector  sdk.CUAddress
	platformCollector   sdk.CUAddress
	controllerCollector sdk.CUAddress
}

func createTestVault(t *testing.T, input *testInput) *testVault {
	v := &testVault{
		owner:               sdk.NewCUAddress(),
		controller:          sdk.NewCUAddress(),
		communityCollector:  sdk.NewCUAddress(),
		platformCollector:   sdk.NewCUAddress(),
		controllerCollector: sdk.NewCUAddress(),
	}
	msg := types.NewMsgCreateVault(v.owner, "eth", "btc", nil, v.controller,
		v.communityCollector, v.platformCollector, v.controllerCollector,
		sdk.NewDecWithPrec(2, 2), sdk.ZeroDec(), sdk.NewDecWithPrec(3, 2))
	res := input.handler(input.ctx, msg)
	assert.True(t, res.IsOK())
	return v
}

func TestHandleMsgCreateVault(t *testing.T) {
	input := setupTestInput()
	v := createTestVault(t, input)

	vault := input.k.GetVault(input.ctx, 1)
	assert.NotNil(t, vault)
	assert.Equal(t, uint32(1), vault.ID)
	assert.Equal(t, sdk.Symbol("eth"), vault.StakingDenom)
	assert.Equal(t, sdk.Symbol("btc"), vault.BaseRewardDenom)
	assert.Equal(t, v.owner, vault.Owner)
	assert.Equal(t, v.controller, vault.Controller)
	assert.Equal(t, sdk.NewDecWithPrec(5, 2), vault.TotalFee())
	assert.Equal(t, vault, input.k.GetVaultByDenom(input.ctx, "eth"))

	// one vault per staking denom
	msg := types.NewMsgCreateVault(v.owner, "eth", "btc", nil, v.controller,
		v.communityCollector, v.platformCollector, v.controllerCollector,
		sdk.ZeroDec(), sdk.ZeroDec(), sdk.ZeroDec())
	res := input.handler(input.ctx, msg)
	assert.Equal(t, types.CodeVaultAlreadyExists, res.Code)

	// unknown token
	msg = types.NewMsgCreateVault(v.owner, "fakebtc", "btc", nil, v.controller,
		v.communityCollector, v.platformCollector, v.controllerCollector,
		sdk.ZeroDec(), sdk.ZeroDec(), sdk.ZeroDec())
	res = input.handler(input.ctx, msg)
	assert.Equal(t, sdk.CodeUnsupportToken, res.Code)
	assert.Contains(t, res.Log, "token fakebtc does not exist")
}

func TestHandleMsgUpdateVault(t *testing.T) {
	input := setupTestInput()
	v := createTestVault(t, input)

	// only the owner may update
	msg := types.NewMsgUpdateVault(v.controller, 1)
	res := input.handler(input.ctx, msg)
	assert.Equal(t, types.CodeUnauthorized, res.Code)

	newController := sdk.NewCUAddress()
	newFee := sdk.NewDecWithPrec(1, 2)
	paused := true
	msg = types.NewMsgUpdateVault(v.owner, 1)
	msg.Controller = &newController
	msg.ControllerFee = &newFee
	msg.Paused = &paused
	res = input.handler(input.ctx, msg)
	assert.True(t, res.IsOK())

	vault := input.k.GetVault(input.ctx, 1)
	assert.Equal(t, newController, vault.Controller)
	assert.Equal(t, newFee, vault.ControllerFee)
	assert.True(t, vault.Paused)

	// paused vault rejects bonds
	staker := sdk.NewCUAddress()
	input.addCoins(staker, sdk.NewCoins(sdk.NewCoin("eth", sdk.NewInt(1000))))
	res = input.handler(input.ctx, types.NewMsgBond(staker, 1, sdk.NewInt(1000)))
	assert.Equal(t, types.CodeVaultPaused, res.Code)
}

func TestHandleMsgBondUnbond(t *testing.T) {
	input := setupTestInput()
	createTestVault(t, input)
	ctx := input.ctx

	staker := sdk.NewCUAddress()
	input.addCoins(staker, sdk.NewCoins(sdk.NewCoin("eth", sdk.NewInt(200000))))

	// unknown vault
	res := input.handler(ctx, types.NewMsgBond(staker, 9, sdk.NewInt(100000)))
	assert.Equal(t, types.CodeVaultNotFound, res.Code)

	// insufficient funds
	res = input.handler(ctx, types.NewMsgBond(staker, 1, sdk.NewInt(300000)))
	assert.Equal(t, sdk.CodeInsufficientFunds, res.Code)

	res = input.handler(ctx, types.NewMsgBond(staker, 1, sdk.NewInt(100000)))
	assert.True(t, res.IsOK())
	assert.Equal(t, sdk.NewInt(100000), input.balanceOf(staker, "eth"))
	assert.Equal(t, sdk.NewInt(100000), input.lk.GetBond(ctx, "eth", types.ModuleCUAddress))

	info := input.k.GetRewardInfo(ctx, 1, staker)
	assert.NotNil(t, info)
	assert.Equal(t, sdk.NewInt(100000), info.BondShare)
	assert.Equal(t, sdk.NewInt(100000), info.DepositAmount)
	assert.Equal(t, baseTime, info.DepositTime)
	assert.Equal(t, sdk.NewInt(5000), info.DepositCosts[0])
	assert.Equal(t, sdk.NewInt(10000), info.DepositCosts[1])
	assert.Equal(t, sdk.NewInt(100000), input.k.GetVaultState(ctx, 1).TotalBondShare)

	// cannot withdraw more than the balance
	res = input.handler(ctx, types.NewMsgUnbond(staker, 1, sdk.NewInt(100001)))
	assert.Equal(t, types.CodeUnbondExceedBalance, res.Code)

	res = input.handler(ctx, types.NewMsgUnbond(staker, 1, sdk.NewInt(40000)))
	assert.True(t, res.IsOK())
	assert.Equal(t, sdk.NewInt(140000), input.balanceOf(staker, "eth"))
	assert.Equal(t, sdk.NewInt(60000), input.lk.GetBond(ctx, "eth", types.ModuleCUAddress))
	assert.Equal(t, sdk.NewInt(60000), input.k.GetVaultState(ctx, 1).TotalBondShare)

	info = input.k.GetRewardInfo(ctx, 1, staker)
	assert.Equal(t, sdk.NewInt(60000), info.BondShare)
	assert.Equal(t, sdk.NewInt(60000), info.DepositAmount)
	assert.Equal(t, sdk.NewInt(3000), info.DepositCosts[0])

	res = input.handler(ctx, types.NewMsgUnbond(staker, 1, sdk.NewInt(60000)))
	assert.True(t, res.IsOK())
	assert.Equal(t, sdk.NewInt(200000), input.balanceOf(staker, "eth"))
	assert.Equal(t, sdk.ZeroInt(), input.k.GetVaultState(ctx, 1).TotalBondShare)

	res = input.handler(ctx, types.NewMsgUnbond(staker, 1, sdk.NewInt(1)))
	assert.Equal(t, types.CodeUnbondExceedBalance, res.Code)
}

func TestHandleMsgBondOnBehalf(t *testing.T) {
	input := setupTestInput()
	createTestVault(t, input)
	ctx := input.ctx

	payer := sdk.NewCUAddress()
	staker := sdk.NewCUAddress()
	input.addCoins(payer, sdk.NewCoins(sdk.NewCoin("eth", sdk.NewInt(50000))))

	msg := types.NewMsgBond(payer, 1, sdk.NewInt(50000))
	msg.Staker = &staker
	res := input.handler(ctx, msg)
	assert.True(t, res.IsOK())

	// the payer funds the bond, the staker owns the share
	assert.Equal(t, sdk.ZeroInt(), input.balanceOf(payer, "eth"))
	assert.Nil(t, input.k.GetRewardInfo(ctx, 1, payer))
	info := input.k.GetRewardInfo(ctx, 1, staker)
	assert.NotNil(t, info)
	assert.Equal(t, sdk.NewInt(50000), info.BondShare)

	res = input.handler(ctx, types.NewMsgUnbond(staker, 1, sdk.NewInt(50000)))
	assert.True(t, res.IsOK())
	assert.Equal(t, sdk.NewInt(50000), input.balanceOf(staker, "eth"))
}

func TestHandleMsgTransferShare(t *testing.T) {
	input := setupTestInput()
	createTestVault(t, input)
	ctx := input.ctx

	staker := sdk.NewCUAddress()
	recipient := sdk.NewCUAddress()
	input.addCoins(staker, sdk.NewCoins(sdk.NewCoin("eth", sdk.NewInt(100000))))

	res := input.handler(ctx, types.NewMsgTransferShare(staker, recipient, 1, sdk.NewInt(30000)))
	assert.Equal(t, types.CodeRewardInfoNotFound, res.Code)

	res = input.handler(ctx, types.NewMsgBond(staker, 1, sdk.NewInt(100000)))
	assert.True(t, res.IsOK())

	res = input.handler(ctx, types.NewMsgTransferShare(staker, recipient, 1, sdk.NewInt(30000)))
	assert.True(t, res.IsOK())

	fromInfo := input.k.GetRewardInfo(ctx, 1, staker)
	assert.Equal(t, sdk.NewInt(70000), fromInfo.BondShare)
	assert.Equal(t, sdk.ZeroInt(), fromInfo.TransferShare)
	assert.Equal(t, sdk.NewInt(70000), fromInfo.DepositAmount)

	toInfo := input.k.GetRewardInfo(ctx, 1, recipient)
	assert.Equal(t, sdk.ZeroInt(), toInfo.BondShare)
	assert.Equal(t, sdk.NewInt(30000), toInfo.TransferShare)

	// share denominator is untouched by transfers
	assert.Equal(t, sdk.NewInt(100000), input.k.GetVaultState(ctx, 1).TotalBondShare)

	res = input.handler(ctx, types.NewMsgTransferShare(recipient, staker, 1, sdk.NewInt(40000)))
	assert.Equal(t, types.CodeInvalidAmount, res.Code)

	// the recipient can withdraw the received share
	res = input.handler(ctx, types.NewMsgUnbond(recipient, 1, sdk.NewInt(30000)))
	assert.True(t, res.IsOK())
	assert.Equal(t, sdk.NewInt(30000), input.balanceOf(recipient, "eth"))
}

func TestHandleMsgCompound(t *testing.T) {
	input := setupTestInput()
	v := createTestVault(t, input)
	ctx := input.ctx

	staker := sdk.NewCUAddress()
	input.addCoins(staker, sdk.NewCoins(sdk.NewCoin("eth", sdk.NewInt(100000))))
	res := input.handler(ctx, types.NewMsgBond(staker, 1, sdk.NewInt(100000)))
	assert.True(t, res.IsOK())

	// harvested rewards sitting in the module account
	input.addCoins(types.ModuleCUAddress, sdk.NewCoins(sdk.NewCoin("btc", sdk.NewInt(10000))))
	input.compounder.out = sdk.NewInt(20000)

	// only the controller may compound
	res = input.handler(ctx, types.NewMsgCompound(staker, 1, nil, sdk.ZeroDec()))
	assert.Equal(t, types.CodeUnauthorized, res.Code)

	res = input.handler(ctx, types.NewMsgCompound(v.controller, 1, nil, sdk.ZeroDec()))
	assert.True(t, res.IsOK())

	// commission 500 split 200/0/300, remainder 9500 converted to 20000 lp
	assert.Equal(t, sdk.NewInt(200), input.balanceOf(v.communityCollector, "btc"))
	assert.Equal(t, sdk.ZeroInt(), input.balanceOf(v.platformCollector, "btc"))
	assert.Equal(t, sdk.NewInt(300), input.balanceOf(v.controllerCollector, "btc"))
	assert.Equal(t, sdk.ZeroInt(), input.balanceOf(types.ModuleCUAddress, "btc"))
	assert.Equal(t, sdk.NewInt(120000), input.lk.GetBond(ctx, "eth", types.ModuleCUAddress))

	// compounding does not mint share
	state := input.k.GetVaultState(ctx, 1)
	assert.Equal(t, sdk.NewInt(100000), state.TotalBondShare)

	// half the vesting window elapsed: half of the gain withdrawable
	info := input.k.GetRewardInfo(ctx, 1, staker)
	balance := info.CalcUserBalance(state, sdk.NewInt(120000), baseTime+43200, 86400)
	assert.Equal(t, sdk.NewInt(110000), balance)

	ctx = ctx.WithBlockTime(time.Unix(baseTime+43200, 0))
	res = input.handler(ctx, types.NewMsgUnbond(staker, 1, sdk.NewInt(110001)))
	assert.Equal(t, types.CodeUnbondExceedBalance, res.Code)

	res = input.handler(ctx, types.NewMsgUnbond(staker, 1, sdk.NewInt(110000)))
	assert.True(t, res.IsOK())
	assert.Equal(t, sdk.NewInt(110000), input.balanceOf(staker, "eth"))
	// withdrawing the full vested balance burns the staker's entire share
	assert.Equal(t, sdk.ZeroInt(), input.k.GetVaultState(ctx, 1).TotalBondShare)
	assert.Equal(t, sdk.NewInt(10000), input.lk.GetBond(ctx, "eth", types.ModuleCUAddress))
}

func TestHandleMsgUnbondForfeitsUnvestedGain(t *testing.T) {
	input := setupTestInput()
	v := createTestVault(t, input)
	ctx := input.ctx

	staker := sdk.NewCUAddress()
	input.addCoins(staker, sdk.NewCoins(sdk.NewCoin("eth", sdk.NewInt(100000))))
	res := input.handler(ctx, types.NewMsgBond(staker, 1, sdk.NewInt(100000)))
	assert.True(t, res.IsOK())

	input.addCoins(types.ModuleCUAddress, sdk.NewCoins(sdk.NewCoin("btc", sdk.NewInt(10000))))
	input.compounder.out = sdk.NewInt(20000)
	res = input.handler(ctx, types.NewMsgCompound(v.controller, 1, nil, sdk.ZeroDec()))
	assert.True(t, res.IsOK())
	assert.Equal(t, sdk.NewInt(120000), input.lk.GetBond(ctx, "eth", types.ModuleCUAddress))

	// no time has passed, the whole gain is still locked
	res = input.handler(ctx, types.NewMsgUnbond(staker, 1, sdk.NewInt(100001)))
	assert.Equal(t, types.CodeUnbondExceedBalance, res.Code)

	res = input.handler(ctx, types.NewMsgUnbond(staker, 1, sdk.NewInt(100000)))
	assert.True(t, res.IsOK())
	assert.Equal(t, sdk.NewInt(100000), input.balanceOf(staker, "eth"))

	// full withdrawal burns all share, the locked gain stays in the pool
	assert.Equal(t, sdk.ZeroInt(), input.k.GetVaultState(ctx, 1).TotalBondShare)
	assert.Equal(t, sdk.NewInt(20000), input.lk.GetBond(ctx, "eth", types.ModuleCUAddress))

	// no residual claim, not even after the vesting window
	ctx = ctx.WithBlockTime(time.Unix(baseTime+2*86400, 0))
	res = input.handler(ctx, types.NewMsgUnbond(staker, 1, sdk.NewInt(1)))
	assert.Equal(t, types.CodeUnbondExceedBalance, res.Code)
}

func TestHandleMsgCompoundMinimumReceive(t *testing.T) {
	input := setupTestInput()
	v := createTestVault(t, input)
	ctx := input.ctx

	staker := sdk.NewCUAddress()
	input.addCoins(staker, sdk.NewCoins(sdk.NewCoin("eth", sdk.NewInt(100000))))
	res := input.handler(ctx, types.NewMsgBond(staker, 1, sdk.NewInt(100000)))
	assert.True(t, res.IsOK())

	input.addCoins(types.ModuleCUAddress, sdk.NewCoins(sdk.NewCoin("btc", sdk.NewInt(10000))))
	input.compounder.out = sdk.NewInt(100)

	minReceive := sdk.NewInt(1000)
	res = input.handler(ctx, types.NewMsgCompound(v.controller, 1, &minReceive, sdk.ZeroDec()))
	assert.Equal(t, types.CodeAssertionMinimumReceive, res.Code)
}

func TestHandleMsgBondAssets(t *testing.T) {
	input := setupTestInput()
	createTestVault(t, input)
	ctx := input.ctx

	staker := sdk.NewCUAddress()
	input.addCoins(staker, sdk.NewCoins(sdk.NewCoin("btc", sdk.NewInt(50000))))
	input.compounder.out = sdk.NewInt(5000)

	assets := sdk.NewCoins(sdk.NewCoin("btc", sdk.NewInt(5000)))
	res := input.handler(ctx, types.NewMsgBondAssets(staker, 1, assets, nil, false, sdk.NewDecWithPrec(1, 2)))
	assert.True(t, res.IsOK())

	assert.Equal(t, sdk.NewInt(45000), input.balanceOf(staker, "btc"))
	assert.Equal(t, sdk.NewInt(5000), input.lk.GetBond(ctx, "eth", types.ModuleCUAddress))
	info := input.k.GetRewardInfo(ctx, 1, staker)
	assert.Equal(t, sdk.NewInt(5000), info.BondShare)

	// received LP below the floor
	minReceive := sdk.NewInt(6000)
	res = input.handler(ctx, types.NewMsgBondAssets(staker, 1, assets, &minReceive, false, sdk.NewDecWithPrec(1, 2)))
	assert.Equal(t, types.CodeAssertionMinimumReceive, res.Code)

	// the lp token itself is not a pool asset
	lpAssets := sdk.NewCoins(sdk.NewCoin("eth", sdk.NewInt(1000)))
	res = input.handler(ctx, types.NewMsgBondAssets(staker, 1, lpAssets, nil, false, sdk.NewDecWithPrec(1, 2)))
	assert.Equal(t, types.CodeInvalidAsset, res.Code)

	// unknown token
	fakeAssets := sdk.NewCoins(sdk.NewCoin("fakebtc", sdk.NewInt(1000)))
	res = input.handler(ctx, types.NewMsgBondAssets(staker, 1, fakeAssets, nil, false, sdk.NewDecWithPrec(1, 2)))
	assert.Equal(t, sdk.CodeUnsupportToken, res.Code)
}

func TestQueryVaultStatePendingRewards(t *testing.T) {
	input := setupTestInput()
	createTestVault(t, input)
	ctx := input.ctx

	staker := sdk.NewCUAddress()
	input.addCoins(staker, sdk.NewCoins(sdk.NewCoin("eth", sdk.NewInt(100000))))
	res := input.handler(ctx, types.NewMsgBond(staker, 1, sdk.NewInt(100000)))
	assert.True(t, res.IsOK())

	// harvested but not yet compounded rewards count as pending
	input.addCoins(types.ModuleCUAddress, sdk.NewCoins(sdk.NewCoin("btc", sdk.NewInt(7000))))

	querier := keeper.NewQuerier(input.k)
	bz := input.cdc.MustMarshalJSON(types.NewQueryVaultParams(1))
	raw, err := querier(ctx, []string{types.QueryVaultState}, abci.RequestQuery{Data: bz})
	assert.Nil(t, err)

	var resp types.VaultStateResponse
	assert.NoError(t, input.cdc.UnmarshalJSON(raw, &resp))
	assert.Equal(t, sdk.NewInt(100000), resp.TotalBondShare)
	assert.Equal(t, sdk.NewInt(100000), resp.TotalBondAmount)
	assert.Equal(t, sdk.NewInt(7000), resp.PendingRewards.AmountOf("btc"))
}

func TestHandleMsgCallbackForged(t *testing.T) {
	input := setupTestInput()
	createTestVault(t, input)

	attacker := sdk.NewCUAddress()
	callback := types.NewStakeCallback(1, sdk.ZeroInt(), nil)
	res := input.handler(input.ctx, types.NewMsgCallback(attacker, callback))
	assert.Equal(t, types.CodeUnauthorized, res.Code)
}
