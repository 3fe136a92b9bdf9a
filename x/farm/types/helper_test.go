package types

import (
	"testing"

	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/stretchr/testify/assert"
)

func TestMulAndDiv(t *testing.T) {
	assert.Equal(t, sdk.NewInt(33), MulAndDiv(sdk.NewInt(10), sdk.NewInt(10), sdk.NewInt(3)))
	assert.Equal(t, sdk.NewInt(50), MulAndDiv(sdk.NewInt(10), sdk.NewInt(10), sdk.NewInt(2)))

	// intermediate product exceeds 64 bits
	big := sdk.NewIntWithDecimal(1, 18)
	assert.Equal(t, big, MulAndDiv(big, big, big))
}

func TestMulAndDivCeil(t *testing.T) {
	assert.Equal(t, sdk.NewInt(34), MulAndDivCeil(sdk.NewInt(10), sdk.NewInt(10), sdk.NewInt(3)))
	assert.Equal(t, sdk.NewInt(50), MulAndDivCeil(sdk.NewInt(10), sdk.NewInt(10), sdk.NewInt(2)))

	big := sdk.NewIntWithDecimal(1, 18)
	assert.Equal(t, big, MulAndDivCeil(big, big, big))
}

func TestComputeDepositTime(t *testing.T) {
	// first deposit takes the new time
	depositTime, err := ComputeDepositTime(sdk.ZeroInt(), sdk.NewInt(100), 0, 200)
	assert.Nil(t, err)
	assert.Equal(t, int64(200), depositTime)

	// equal amounts average to the midpoint
	depositTime, err = ComputeDepositTime(sdk.NewInt(100), sdk.NewInt(100), 100, 200)
	assert.Nil(t, err)
	assert.Equal(t, int64(150), depositTime)

	// weighted by amount
	depositTime, err = ComputeDepositTime(sdk.NewInt(100), sdk.NewInt(300), 100, 200)
	assert.Nil(t, err)
	assert.Equal(t, int64(175), depositTime)
}
