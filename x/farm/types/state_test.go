package types

import (
	"testing"

	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/stretchr/testify/assert"
)

func TestCalcBondShare(t *testing.T) {
	state := NewVaultState(1)

	// empty vault mints one share per LP unit
	assert.Equal(t, sdk.NewInt(100000), state.CalcBondShare(sdk.NewInt(100000), sdk.ZeroInt(), Truncate))

	state.TotalBondShare = sdk.NewInt(100)

	// zero external balance also bootstraps 1:1
	assert.Equal(t, sdk.NewInt(50), state.CalcBondShare(sdk.NewInt(50), sdk.ZeroInt(), Truncate))

	// share price 2 LP per share
	assert.Equal(t, sdk.NewInt(25), state.CalcBondShare(sdk.NewInt(50), sdk.NewInt(200), Truncate))
	assert.Equal(t, sdk.NewInt(25), state.CalcBondShare(sdk.NewInt(50), sdk.NewInt(200), Ceil))

	// 51 * 100 / 200 = 25.5
	assert.Equal(t, sdk.NewInt(25), state.CalcBondShare(sdk.NewInt(51), sdk.NewInt(200), Truncate))
	assert.Equal(t, sdk.NewInt(26), state.CalcBondShare(sdk.NewInt(51), sdk.NewInt(200), Ceil))
}

func TestCalcBondAmount(t *testing.T) {
	state := NewVaultState(1)
	assert.Equal(t, sdk.ZeroInt(), state.CalcBondAmount(sdk.NewInt(200), sdk.NewInt(30)))

	state.TotalBondShare = sdk.NewInt(100)
	assert.Equal(t, sdk.NewInt(60), state.CalcBondAmount(sdk.NewInt(200), sdk.NewInt(30)))
	// truncates
	assert.Equal(t, sdk.NewInt(61), state.CalcBondAmount(sdk.NewInt(205), sdk.NewInt(30)))
}
