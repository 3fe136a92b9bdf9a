package types

import (
	"testing"

	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/stretchr/testify/assert"
)

func TestRecordDeposit(t *testing.T) {
	info := NewRewardInfo(2)
	poolBalances := []sdk.Int{sdk.NewInt(500), sdk.NewInt(1000)}
	lpSupply := sdk.NewInt(10000)

	err := info.RecordDeposit(sdk.NewInt(100000), 101, poolBalances, lpSupply)
	assert.Nil(t, err)
	assert.Equal(t, sdk.NewInt(100000), info.DepositAmount)
	assert.Equal(t, int64(101), info.DepositTime)
	assert.Equal(t, sdk.NewInt(5000), info.DepositCosts[0])
	assert.Equal(t, sdk.NewInt(10000), info.DepositCosts[1])

	// second deposit averages the deposit time by amount
	err = info.RecordDeposit(sdk.NewInt(100000), 201, poolBalances, lpSupply)
	assert.Nil(t, err)
	assert.Equal(t, sdk.NewInt(200000), info.DepositAmount)
	assert.Equal(t, int64(151), info.DepositTime)
	assert.Equal(t, sdk.NewInt(10000), info.DepositCosts[0])
	assert.Equal(t, sdk.NewInt(20000), info.DepositCosts[1])
}

func TestRecordDepositZeroLPSupply(t *testing.T) {
	info := NewRewardInfo(1)
	err := info.RecordDeposit(sdk.NewInt(1000), 50, []sdk.Int{sdk.NewInt(500)}, sdk.ZeroInt())
	assert.Nil(t, err)
	assert.Equal(t, sdk.NewInt(1000), info.DepositAmount)
	assert.Equal(t, sdk.ZeroInt(), info.DepositCosts[0])
}

func TestCalcUserBalance(t *testing.T) {
	vestingDuration := int64(86400)
	state := NewVaultState(1)
	state.TotalBondShare = sdk.NewInt(100000)

	info := NewRewardInfo(2)
	info.BondShare = sdk.NewInt(100000)
	info.DepositAmount = sdk.NewInt(100000)
	info.DepositTime = 101

	// no gain yet, everything withdrawable
	assert.Equal(t, sdk.NewInt(100000), info.CalcUserBalance(state, sdk.NewInt(100000), 101, vestingDuration))

	// balance grew to 120000, half of the window elapsed: half of the gain vested
	assert.Equal(t, sdk.NewInt(110000), info.CalcUserBalance(state, sdk.NewInt(120000), 101+43200, vestingDuration))

	// window fully elapsed
	assert.Equal(t, sdk.NewInt(120000), info.CalcUserBalance(state, sdk.NewInt(120000), 101+86400, vestingDuration))

	// clock behind the deposit time counts as zero elapsed
	assert.Equal(t, sdk.NewInt(100000), info.CalcUserBalance(state, sdk.NewInt(120000), 50, vestingDuration))

	// a loss is never time locked
	assert.Equal(t, sdk.NewInt(90000), info.CalcUserBalance(state, sdk.NewInt(90000), 101, vestingDuration))
}

func TestUnbond(t *testing.T) {
	info := NewRewardInfo(1)
	info.BondShare = sdk.NewInt(100)
	info.TransferShare = sdk.NewInt(50)
	info.DepositAmount = sdk.NewInt(1000)
	info.DepositCosts[0] = sdk.NewInt(500)

	// burns bond share before transfer share
	err := info.Unbond(sdk.NewInt(120), sdk.NewInt(250), sdk.NewInt(1000))
	assert.Nil(t, err)
	assert.True(t, info.BondShare.IsZero())
	assert.Equal(t, sdk.NewInt(30), info.TransferShare)
	assert.Equal(t, sdk.NewInt(750), info.DepositAmount)
	assert.Equal(t, sdk.NewInt(375), info.DepositCosts[0])

	// more share than held
	err = info.Unbond(sdk.NewInt(100), sdk.NewInt(100), sdk.NewInt(750))
	assert.NotNil(t, err)
}

func TestUnbondFullBalance(t *testing.T) {
	info := NewRewardInfo(1)
	info.BondShare = sdk.NewInt(100)
	info.DepositAmount = sdk.NewInt(1000)
	info.DepositCosts[0] = sdk.NewInt(500)

	err := info.Unbond(sdk.NewInt(100), sdk.NewInt(1000), sdk.NewInt(1000))
	assert.Nil(t, err)
	assert.True(t, info.BondShare.IsZero())
	assert.Equal(t, sdk.ZeroInt(), info.DepositAmount)
	assert.Equal(t, sdk.ZeroInt(), info.DepositCosts[0])
}

func TestTransferTo(t *testing.T) {
	from := NewRewardInfo(1)
	from.BondShare = sdk.NewInt(100)
	from.TransferShare = sdk.NewInt(20)
	from.DepositAmount = sdk.NewInt(120)
	from.DepositCosts[0] = sdk.NewInt(60)
	to := NewRewardInfo(1)

	// transfer share is consumed before bond share
	err := from.TransferTo(to, sdk.NewInt(50))
	assert.Nil(t, err)
	assert.Equal(t, sdk.NewInt(70), from.BondShare)
	assert.True(t, from.TransferShare.IsZero())
	assert.Equal(t, sdk.NewInt(50), to.TransferShare)
	assert.Equal(t, sdk.ZeroInt(), to.BondShare)

	// cost basis rescaled by the moved fraction
	assert.Equal(t, sdk.NewInt(70), from.DepositAmount)
	assert.Equal(t, sdk.NewInt(35), from.DepositCosts[0])

	err = from.TransferTo(to, sdk.NewInt(100))
	assert.NotNil(t, err)
}
