package types

import (
	"errors"
	"fmt"

	sdk "github.com/hbtc-chain/bhchain/types"
)

// Vault is the per-LP-token configuration of one farming vault. The fee
// rates are applied to harvested rewards; the remainder is compounded.
type Vault struct {
	ID                     uint32        `json:"id"`
	StakingDenom           sdk.Symbol    `json:"staking_denom"`
	BaseRewardDenom        sdk.Symbol    `json:"base_reward_denom"`
	RewardDenoms           []sdk.Symbol  `json:"reward_denoms"`
	Owner                  sdk.CUAddress `json:"owner"`
	Controller             sdk.CUAddress `json:"controller"`
	CommunityFeeCollector  sdk.CUAddress `json:"community_fee_collector"`
	PlatformFeeCollector   sdk.CUAddress `json:"platform_fee_collector"`
	ControllerFeeCollector sdk.CUAddress `json:"controller_fee_collector"`
	CommunityFee           sdk.Dec       `json:"community_fee"`
	PlatformFee            sdk.Dec       `json:"platform_fee"`
	ControllerFee          sdk.Dec       `json:"controller_fee"`
	Paused                 bool          `json:"paused"`
}

func NewVault(id uint32, stakingDenom, baseRewardDenom sdk.Symbol, rewardDenoms []sdk.Symbol,
	owner, controller, communityCollector, platformCollector, controllerCollector sdk.CUAddress,
	communityFee, platformFee, controllerFee sdk.Dec) *Vault {
	return &Vault{
		ID:                     id,
		StakingDenom:           stakingDenom,
		BaseRewardDenom:        baseRewardDenom,
		RewardDenoms:           rewardDenoms,
		Owner:                  owner,
		Controller:             controller,
		CommunityFeeCollector:  communityCollector,
		PlatformFeeCollector:   platformCollector,
		ControllerFeeCollector: controllerCollector,
		CommunityFee:           communityFee,
		PlatformFee:            platformFee,
		ControllerFee:          controllerFee,
	}
}

// TotalFee is the fraction of every harvest routed to the fee collectors.
func (v *Vault) TotalFee() sdk.Dec {
	return v.CommunityFee.Add(v.PlatformFee).Add(v.ControllerFee)
}

// AllRewardDenoms returns the base reward denom followed by the extra
// reward denoms, deduplicated.
func (v *Vault) AllRewardDenoms() []sdk.Symbol {
	denoms := []sdk.Symbol{v.BaseRewardDenom}
	for _, denom := range v.RewardDenoms {
		if denom != v.BaseRewardDenom {
			denoms = append(denoms, denom)
		}
	}
	return denoms
}

// HasRewardDenom reports whether denom is one of the vault's reward tokens.
func (v *Vault) HasRewardDenom(denom sdk.Symbol) bool {
	for _, d := range v.AllRewardDenoms() {
		if d == denom {
			return true
		}
	}
	return false
}

func (v *Vault) Validate() error {
	if !v.StakingDenom.IsValidTokenName() {
		return errors.New("invalid staking denom")
	}
	if !v.BaseRewardDenom.IsValidTokenName() {
		return errors.New("invalid base reward denom")
	}
	seen := map[sdk.Symbol]bool{v.BaseRewardDenom: true}
	for _, denom := range v.RewardDenoms {
		if !denom.IsValidTokenName() {
			return fmt.Errorf("invalid reward denom %s", denom)
		}
		if seen[denom] {
			return fmt.Errorf("reward denom %s is duplicated", denom)
		}
		seen[denom] = true
	}
	if !v.Owner.IsValidAddr() {
		return errors.New("invalid owner address")
	}
	if !v.Controller.IsValidAddr() {
		return errors.New("invalid controller address")
	}
	if !v.CommunityFeeCollector.IsValidAddr() || !v.PlatformFeeCollector.IsValidAddr() ||
		!v.ControllerFeeCollector.IsValidAddr() {
		return errors.New("invalid fee collector address")
	}
	return ValidateFees(v.CommunityFee, v.PlatformFee, v.ControllerFee)
}

// ValidateFees rejects any fee component outside [0,1] and any combination
// summing above 1. Compound relies on this so that commission can never
// exceed the harvested amount.
func ValidateFees(communityFee, platformFee, controllerFee sdk.Dec) error {
	for _, fee := range []sdk.Dec{communityFee, platformFee, controllerFee} {
		if fee.IsNegative() || fee.GT(sdk.OneDec()) {
			return errors.New("fee must be 0 to 1")
		}
	}
	if communityFee.Add(platformFee).Add(controllerFee).GT(sdk.OneDec()) {
		return errors.New("total fee must be 0 to 1")
	}
	return nil
}
