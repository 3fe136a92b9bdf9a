package types

import (
	"bytes"
	"errors"
	"fmt"

	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/hbtc-chain/bhchain/x/params"
)

var (
	DefaultVestingDuration int64 = 86400 // one day
	DefaultMaxFee                = sdk.OneDec()
)

var (
	KeyVestingDuration = []byte("VestingDuration")
	KeyMaxFee          = []byte("MaxFee")
)

var _ params.ParamSet = (*Params)(nil)

// Params defines the high level settings for farming
type Params struct {
	VestingDuration int64   `json:"vesting_duration"`
	MaxFee          sdk.Dec `json:"max_fee"`
}

// NewParams creates a new Params instance
func NewParams(vestingDuration int64, maxFee sdk.Dec) Params {
	return Params{
		VestingDuration: vestingDuration,
		MaxFee:          maxFee,
	}
}

// Implements params.ParamSet
func (p *Params) ParamSetPairs() params.ParamSetPairs {
	return params.ParamSetPairs{
		{Key: KeyVestingDuration, Value: &p.VestingDuration},
		{Key: KeyMaxFee, Value: &p.MaxFee},
	}
}

func (p Params) Equal(p2 Params) bool {
	bz1 := ModuleCdc.MustMarshalBinaryLengthPrefixed(&p)
	bz2 := ModuleCdc.MustMarshalBinaryLengthPrefixed(&p2)
	return bytes.Equal(bz1, bz2)
}

// DefaultParams returns a default set of parameters.
func DefaultParams() Params {
	return NewParams(DefaultVestingDuration, DefaultMaxFee)
}

// String returns a human readable string representation of the parameters.
func (p Params) String() string {
	return fmt.Sprintf(`Params:
  VestingDuration: %d
  MaxFee: %s`,
		p.VestingDuration, p.MaxFee.String())
}

// validate a set of params
func (p Params) Validate() error {
	if p.VestingDuration <= 0 {
		return errors.New("vesting duration should be positive")
	}
	if p.MaxFee.IsNegative() || p.MaxFee.GT(sdk.OneDec()) {
		return errors.New("max fee must be between 0 to 1")
	}
	return nil
}
