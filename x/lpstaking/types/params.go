package types

import (
	"bytes"
	"errors"
	"fmt"

	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/hbtc-chain/bhchain/x/params"
)

var (
	DefaultRewardDenom = sdk.Symbol(sdk.NativeDefiToken)
	DefaultMiningPlans = []*MiningPlan{
		NewMiningPlan(1, sdk.NewInt(2000000000)),       // 20 perblock
		NewMiningPlan(1000001, sdk.NewInt(1000000000)), // 10 perblock
		NewMiningPlan(3000001, sdk.NewInt(500000000)),  // 5 perblock
	}
)

var (
	KeyRewardDenom   = []byte("RewardDenom")
	KeyMiningWeights = []byte("MiningWeights")
	KeyMiningPlans   = []byte("MiningPlans")
)

type MiningWeight struct {
	Denom  sdk.Symbol `json:"denom"`
	Weight sdk.Int    `json:"weight"`
}

func NewMiningWeight(denom sdk.Symbol, weight sdk.Int) *MiningWeight {
	return &MiningWeight{
		Denom:  denom,
		Weight: weight,
	}
}

type MiningPlan struct {
	StartHeight    uint64  `json:"start_height"`
	MiningPerBlock sdk.Int `json:"mining_per_block"`
}

func NewMiningPlan(startHeight uint64, miningPerBlock sdk.Int) *MiningPlan {
	return &MiningPlan{
		StartHeight:    startHeight,
		MiningPerBlock: miningPerBlock,
	}
}

var _ params.ParamSet = (*Params)(nil)

// Params defines the high level settings for lp staking
type Params struct {
	RewardDenom   sdk.Symbol      `json:"reward_denom"`
	MiningWeights []*MiningWeight `json:"mining_weights"`
	MiningPlans   []*MiningPlan   `json:"mining_plans"`
}

// NewParams creates a new Params instance
func NewParams(rewardDenom sdk.Symbol, miningWeights []*MiningWeight, miningPlans []*MiningPlan) Params {
	return Params{
		RewardDenom:   rewardDenom,
		MiningWeights: miningWeights,
		MiningPlans:   miningPlans,
	}
}

// Implements params.ParamSet
func (p *Params) ParamSetPairs() params.ParamSetPairs {
	return params.ParamSetPairs{
		{Key: KeyRewardDenom, Value: &p.RewardDenom},
		{Key: KeyMiningWeights, Value: &p.MiningWeights},
		{Key: KeyMiningPlans, Value: &p.MiningPlans},
	}
}

func (p Params) Equal(p2 Params) bool {
	bz1 := ModuleCdc.MustMarshalBinaryLengthPrefixed(&p)
	bz2 := ModuleCdc.MustMarshalBinaryLengthPrefixed(&p2)
	return bytes.Equal(bz1, bz2)
}

// DefaultParams returns a default set of parameters.
func DefaultParams() Params {
	return NewParams(DefaultRewardDenom, nil, DefaultMiningPlans)
}

// String returns a human readable string representation of the parameters.
func (p Params) String() string {
	return fmt.Sprintf(`Params:
  RewardDenom: %s
  MiningWeights: %v
  MiningPlans: %v`,
		p.RewardDenom, p.MiningWeights, p.MiningPlans)
}

// validate a set of params
func (p Params) Validate() error {
	if !p.RewardDenom.IsValidTokenName() {
		return errors.New("invalid reward denom")
	}
	exists := make(map[sdk.Symbol]bool)
	for _, w := range p.MiningWeights {
		if !w.Denom.IsValidTokenName() {
			return fmt.Errorf("invalid lp denom %s", w.Denom)
		}
		if exists[w.Denom] {
			return fmt.Errorf("%s is duplicated", w.Denom)
		}
		exists[w.Denom] = true
		if !w.Weight.IsPositive() {
			return errors.New("weight should be positive")
		}
	}
	if len(p.MiningPlans) == 0 {
		return errors.New("empty mining plans")
	}
	for i, w := range p.MiningPlans {
		if w.MiningPerBlock.IsNegative() {
			return errors.New("mining perblock cannot be negative")
		}
		if i > 0 && w.StartHeight <= p.MiningPlans[i-1].StartHeight {
			return errors.New("start height should be ascending")
		}
	}
	return nil
}
