package types

import (
	"math/big"

	sdk "github.com/hbtc-chain/bhchain/types"
)

var oneBigInt = big.NewInt(1)

// MulAndDiv returns amountA * amountB / amountC truncated, keeping the
// intermediate product in a big.Int so it cannot overflow 128 bits.
func MulAndDiv(amountA, amountB, amountC sdk.Int) sdk.Int {
	product := big.NewInt(0).Mul(amountA.BigInt(), amountB.BigInt())
	return sdk.NewIntFromBigInt(big.NewInt(0).Quo(product, amountC.BigInt()))
}

// MulAndDivCeil returns amountA * amountB / amountC rounded up.
func MulAndDivCeil(amountA, amountB, amountC sdk.Int) sdk.Int {
	product := big.NewInt(0).Mul(amountA.BigInt(), amountB.BigInt())
	product.Add(product, big.NewInt(0).Sub(amountC.BigInt(), oneBigInt))
	return sdk.NewIntFromBigInt(product.Quo(product, amountC.BigInt()))
}

// ComputeDepositTime returns the amount-weighted average of the previous
// deposit time and the incoming one. The weighted sum is carried in a
// big.Int, so the only representability failure is a result outside int64.
func ComputeDepositTime(lastAmount, newAmount sdk.Int, lastTime, newTime int64) (int64, sdk.Error) {
	totalAmount := lastAmount.Add(newAmount)
	if !totalAmount.IsPositive() {
		return newTime, nil
	}
	lastWeight := big.NewInt(0).Mul(lastAmount.BigInt(), big.NewInt(lastTime))
	newWeight := big.NewInt(0).Mul(newAmount.BigInt(), big.NewInt(newTime))
	avg := lastWeight.Add(lastWeight, newWeight)
	avg.Quo(avg, totalAmount.BigInt())
	if !avg.IsInt64() {
		return 0, sdk.ErrInternal("overflow in deposit time computation")
	}
	return avg.Int64(), nil
}
