package types

import (
	"fmt"

	sdk "github.com/hbtc-chain/bhchain/types"
)

const (
	TypeMsgCreateVault   = "createvault"
	TypeMsgUpdateVault   = "updatevault"
	TypeMsgBond          = "bond"
	TypeMsgBondAssets    = "bondassets"
	TypeMsgUnbond        = "unbond"
	TypeMsgTransferShare = "transfershare"
	TypeMsgCompound      = "compound"
	TypeMsgCallback      = "callback"
)

type MsgCreateVault struct {
	From                   sdk.CUAddress `json:"from"`
	StakingDenom           sdk.Symbol    `json:"staking_denom"`
	BaseRewardDenom        sdk.Symbol    `json:"base_reward_denom"`
	RewardDenoms           []sdk.Symbol  `json:"reward_denoms"`
	Controller             sdk.CUAddress `json:"controller"`
	CommunityFeeCollector  sdk.CUAddress `json:"community_fee_collector"`
	PlatformFeeCollector   sdk.CUAddress `json:"platform_fee_collector"`
	ControllerFeeCollector sdk.CUAddress `json:"controller_fee_collector"`
	CommunityFee           sdk.Dec       `json:"community_fee"`
	PlatformFee            sdk.Dec       `json:"platform_fee"`
	ControllerFee          sdk.Dec       `json:"controller_fee"`
}

func NewMsgCreateVault(from sdk.CUAddress, stakingDenom, baseRewardDenom sdk.Symbol, rewardDenoms []sdk.Symbol,
	controller, communityCollector, platformCollector, controllerCollector sdk.CUAddress,
	communityFee, platformFee, controllerFee sdk.Dec) MsgCreateVault {
	return MsgCreateVault{
		From:                   from,
		StakingDenom:           stakingDenom,
		BaseRewardDenom:        baseRewardDenom,
		RewardDenoms:           rewardDenoms,
		Controller:             controller,
		CommunityFeeCollector:  communityCollector,
		PlatformFeeCollector:   platformCollector,
		ControllerFeeCollector: controllerCollector,
		CommunityFee:           communityFee,
		PlatformFee:            platformFee,
		ControllerFee:          controllerFee,
	}
}

func (msg MsgCreateVault) Route() string {
	return RouterKey
}

func (msg MsgCreateVault) Type() string {
	return TypeMsgCreateVault
}

func (msg MsgCreateVault) ValidateBasic() sdk.Error {
	if !msg.From.IsValidAddr() {
		return sdk.ErrInvalidAddr(fmt.Sprintf("from address: %s is invalid", msg.From.String()))
	}
	vault := NewVault(0, msg.StakingDenom, msg.BaseRewardDenom, msg.RewardDenoms, msg.From,
		msg.Controller, msg.CommunityFeeCollector, msg.PlatformFeeCollector, msg.ControllerFeeCollector,
		msg.CommunityFee, msg.PlatformFee, msg.ControllerFee)
	if err := vault.Validate(); err != nil {
		return ErrInvalidMessage(err.Error())
	}
	return nil
}

func (msg MsgCreateVault) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgCreateVault) GetSigners() []sdk.CUAddress {
	return []sdk.CUAddress{msg.From}
}

// MsgUpdateVault changes the fee configuration, the controller or the
// paused flag of a vault. Nil pointer fields keep their current value.
type MsgUpdateVault struct {
	From                   sdk.CUAddress  `json:"from"`
	VaultID                uint32         `json:"vault_id"`
	Controller             *sdk.CUAddress `json:"controller,omitempty"`
	CommunityFeeCollector  *sdk.CUAddress `json:"community_fee_collector,omitempty"`
	PlatformFeeCollector   *sdk.CUAddress `json:"platform_fee_collector,omitempty"`
	ControllerFeeCollector *sdk.CUAddress `json:"controller_fee_collector,omitempty"`
	CommunityFee           *sdk.Dec       `json:"community_fee,omitempty"`
	PlatformFee            *sdk.Dec       `json:"platform_fee,omitempty"`
	ControllerFee          *sdk.Dec       `json:"controller_fee,omitempty"`
	Paused                 *bool          `json:"paused,omitempty"`
}

func NewMsgUpdateVault(from sdk.CUAddress, vaultID uint32) MsgUpdateVault {
	return MsgUpdateVault{
		From:    from,
		VaultID: vaultID,
	}
}

func (msg MsgUpdateVault) Route() string {
	return RouterKey
}

func (msg MsgUpdateVault) Type() string {
	return TypeMsgUpdateVault
}

func (msg MsgUpdateVault) ValidateBasic() sdk.Error {
	if !msg.From.IsValidAddr() {
		return sdk.ErrInvalidAddr(fmt.Sprintf("from address: %s is invalid", msg.From.String()))
	}
	for _, addr := range []*sdk.CUAddress{msg.Controller, msg.CommunityFeeCollector, msg.PlatformFeeCollector, msg.ControllerFeeCollector} {
		if addr != nil && !addr.IsValidAddr() {
			return sdk.ErrInvalidAddr("invalid address")
		}
	}
	for _, fee := range []*sdk.Dec{msg.CommunityFee, msg.PlatformFee, msg.ControllerFee} {
		if fee != nil && (fee.IsNegative() || fee.GT(sdk.OneDec())) {
			return ErrInvalidFee("fee must be 0 to 1")
		}
	}
	return nil
}

func (msg MsgUpdateVault) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgUpdateVault) GetSigners() []sdk.CUAddress {
	return []sdk.CUAddress{msg.From}
}

// MsgBond stakes LP tokens into a vault for share. The tokens are taken
// from the sender; the share is credited to Staker when set, so a
// contract-like sender can bond on behalf of a user.
type MsgBond struct {
	From    sdk.CUAddress  `json:"from"`
	VaultID uint32         `json:"vault_id"`
	Amount  sdk.Int        `json:"amount"`
	Staker  *sdk.CUAddress `json:"staker,omitempty"`
}

func NewMsgBond(from sdk.CUAddress, vaultID uint32, amount sdk.Int) MsgBond {
	return MsgBond{
		From:    from,
		VaultID: vaultID,
		Amount:  amount,
	}
}

func (msg MsgBond) Route() string {
	return RouterKey
}

func (msg MsgBond) Type() string {
	return TypeMsgBond
}

func (msg MsgBond) ValidateBasic() sdk.Error {
	if !msg.From.IsValidAddr() {
		return sdk.ErrInvalidAddr(fmt.Sprintf("from address: %s is invalid", msg.From.String()))
	}
	if !msg.Amount.IsPositive() {
		return sdk.ErrInvalidAmount("bond amount should be positive")
	}
	if msg.Staker != nil && !msg.Staker.IsValidAddr() {
		return sdk.ErrInvalidAddr(fmt.Sprintf("staker address: %s is invalid", msg.Staker.String()))
	}
	return nil
}

func (msg MsgBond) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgBond) GetSigners() []sdk.CUAddress {
	return []sdk.CUAddress{msg.From}
}

// MsgBondAssets provides pool assets instead of LP tokens. The assets are
// converted to LP first; the received LP amount is resolved in a follow-up
// callback and bonded for From.
type MsgBondAssets struct {
	From              sdk.CUAddress `json:"from"`
	VaultID           uint32        `json:"vault_id"`
	Assets            sdk.Coins     `json:"assets"`
	MinimumReceive    *sdk.Int      `json:"minimum_receive,omitempty"`
	NoSwap            bool          `json:"no_swap,omitempty"`
	SlippageTolerance sdk.Dec       `json:"slippage_tolerance"`
}

func NewMsgBondAssets(from sdk.CUAddress, vaultID uint32, assets sdk.Coins, minimumReceive *sdk.Int,
	noSwap bool, slippageTolerance sdk.Dec) MsgBondAssets {
	return MsgBondAssets{
		From:              from,
		VaultID:           vaultID,
		Assets:            assets,
		MinimumReceive:    minimumReceive,
		NoSwap:            noSwap,
		SlippageTolerance: slippageTolerance,
	}
}

func (msg MsgBondAssets) Route() string {
	return RouterKey
}

func (msg MsgBondAssets) Type() string {
	return TypeMsgBondAssets
}

func (msg MsgBondAssets) ValidateBasic() sdk.Error {
	if !msg.From.IsValidAddr() {
		return sdk.ErrInvalidAddr(fmt.Sprintf("from address: %s is invalid", msg.From.String()))
	}
	if !msg.Assets.IsValid() || msg.Assets.IsZero() {
		return sdk.ErrInvalidAmount("assets should be positive")
	}
	seen := make(map[string]bool)
	for _, asset := range msg.Assets {
		if seen[asset.Denom] {
			return ErrDuplicatedAsset(asset.Denom)
		}
		seen[asset.Denom] = true
	}
	if msg.MinimumReceive != nil && !msg.MinimumReceive.IsPositive() {
		return sdk.ErrInvalidAmount("minimum receive should be positive")
	}
	if msg.SlippageTolerance.IsNegative() || msg.SlippageTolerance.GTE(sdk.OneDec()) {
		return sdk.ErrInvalidAmount("slippage tolerance must be 0 to 1")
	}
	return nil
}

func (msg MsgBondAssets) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgBondAssets) GetSigners() []sdk.CUAddress {
	return []sdk.CUAddress{msg.From}
}

// MsgUnbond withdraws an LP amount from a vault, burning share rounded up.
type MsgUnbond struct {
	From    sdk.CUAddress `json:"from"`
	VaultID uint32        `json:"vault_id"`
	Amount  sdk.Int       `json:"amount"`
}

func NewMsgUnbond(from sdk.CUAddress, vaultID uint32, amount sdk.Int) MsgUnbond {
	return MsgUnbond{
		From:    from,
		VaultID: vaultID,
		Amount:  amount,
	}
}

func (msg MsgUnbond) Route() string {
	return RouterKey
}

func (msg MsgUnbond) Type() string {
	return TypeMsgUnbond
}

func (msg MsgUnbond) ValidateBasic() sdk.Error {
	if !msg.From.IsValidAddr() {
		return sdk.ErrInvalidAddr(fmt.Sprintf("from address: %s is invalid", msg.From.String()))
	}
	if !msg.Amount.IsPositive() {
		return sdk.ErrInvalidAmount("unbond amount should be positive")
	}
	return nil
}

func (msg MsgUnbond) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgUnbond) GetSigners() []sdk.CUAddress {
	return []sdk.CUAddress{msg.From}
}

// MsgTransferShare moves share units to another staker without touching
// the staked LP tokens.
type MsgTransferShare struct {
	From    sdk.CUAddress `json:"from"`
	To      sdk.CUAddress `json:"to"`
	VaultID uint32        `json:"vault_id"`
	Share   sdk.Int       `json:"share"`
}

func NewMsgTransferShare(from, to sdk.CUAddress, vaultID uint32, share sdk.Int) MsgTransferShare {
	return MsgTransferShare{
		From:    from,
		To:      to,
		VaultID: vaultID,
		Share:   share,
	}
}

func (msg MsgTransferShare) Route() string {
	return RouterKey
}

func (msg MsgTransferShare) Type() string {
	return TypeMsgTransferShare
}

func (msg MsgTransferShare) ValidateBasic() sdk.Error {
	if !msg.From.IsValidAddr() {
		return sdk.ErrInvalidAddr(fmt.Sprintf("from address: %s is invalid", msg.From.String()))
	}
	if !msg.To.IsValidAddr() {
		return sdk.ErrInvalidAddr(fmt.Sprintf("to address: %s is invalid", msg.To.String()))
	}
	if msg.From.Equals(msg.To) {
		return ErrInvalidMessage("cannot transfer share to self")
	}
	if !msg.Share.IsPositive() {
		return sdk.ErrInvalidAmount("share should be positive")
	}
	return nil
}

func (msg MsgTransferShare) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgTransferShare) GetSigners() []sdk.CUAddress {
	return []sdk.CUAddress{msg.From}
}

// MsgCompound harvests rewards, routes the commission and reinvests the
// remainder. Only the vault controller may send it.
type MsgCompound struct {
	From              sdk.CUAddress `json:"from"`
	VaultID           uint32        `json:"vault_id"`
	MinimumReceive    *sdk.Int      `json:"minimum_receive,omitempty"`
	SlippageTolerance sdk.Dec       `json:"slippage_tolerance"`
}

func NewMsgCompound(from sdk.CUAddress, vaultID uint32, minimumReceive *sdk.Int, slippageTolerance sdk.Dec) MsgCompound {
	return MsgCompound{
		From:              from,
		VaultID:           vaultID,
		MinimumReceive:    minimumReceive,
		SlippageTolerance: slippageTolerance,
	}
}

func (msg MsgCompound) Route() string {
	return RouterKey
}

func (msg MsgCompound) Type() string {
	return TypeMsgCompound
}

func (msg MsgCompound) ValidateBasic() sdk.Error {
	if !msg.From.IsValidAddr() {
		return sdk.ErrInvalidAddr(fmt.Sprintf("from address: %s is invalid", msg.From.String()))
	}
	if msg.MinimumReceive != nil && !msg.MinimumReceive.IsPositive() {
		return sdk.ErrInvalidAmount("minimum receive should be positive")
	}
	if msg.SlippageTolerance.IsNegative() || msg.SlippageTolerance.GTE(sdk.OneDec()) {
		return sdk.ErrInvalidAmount("slippage tolerance must be 0 to 1")
	}
	return nil
}

func (msg MsgCompound) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgCompound) GetSigners() []sdk.CUAddress {
	return []sdk.CUAddress{msg.From}
}

// MsgCallback is only valid when sent by the module address itself, so it
// cannot be forged from outside.
type MsgCallback struct {
	From     sdk.CUAddress `json:"from"`
	Callback Callback      `json:"callback"`
}

func NewMsgCallback(from sdk.CUAddress, callback Callback) MsgCallback {
	return MsgCallback{
		From:     from,
		Callback: callback,
	}
}

func (msg MsgCallback) Route() string {
	return RouterKey
}

func (msg MsgCallback) Type() string {
	return TypeMsgCallback
}

func (msg MsgCallback) ValidateBasic() sdk.Error {
	if !msg.From.IsValidAddr() {
		return sdk.ErrInvalidAddr(fmt.Sprintf("from address: %s is invalid", msg.From.String()))
	}
	if msg.Callback == nil {
		return ErrInvalidMessage("empty callback")
	}
	return msg.Callback.ValidateBasic()
}

func (msg MsgCallback) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgCallback) GetSigners() []sdk.CUAddress {
	return []sdk.CUAddress{msg.From}
}
