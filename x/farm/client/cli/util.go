package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/hbtc-chain/bhchain/client/context"
	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/hbtc-chain/bhfarm/x/farm/types"

	"github.com/spf13/viper"
)

func buildCreateVaultMsg(cliCtx context.CLIContext) (sdk.Msg, error) {
	from := cliCtx.GetFromAddress()
	stakingDenom := sdk.Symbol(viper.GetString(FlagStakingDenom))
	baseRewardDenom := sdk.Symbol(viper.GetString(FlagBaseRewardDenom))
	var rewardDenoms []sdk.Symbol
	if denomsStr := viper.GetString(FlagRewardDenoms); denomsStr != "" {
		for _, denom := range strings.Split(denomsStr, ",") {
			rewardDenoms = append(rewardDenoms, sdk.Symbol(denom))
		}
	}
	controller, err := sdk.CUAddressFromBase58(viper.GetString(FlagController))
	if err != nil {
		return nil, errors.New("invalid controller address")
	}
	collectors := make([]sdk.CUAddress, 0, 3)
	for _, flag := range []string{FlagCommunityFeeCollector, FlagPlatformFeeCollector, FlagControllerFeeCollector} {
		collector := from
		if addrStr := viper.GetString(flag); addrStr != "" {
			collector, err = sdk.CUAddressFromBase58(addrStr)
			if err != nil {
				return nil, errors.New("invalid fee collector address")
			}
		}
		collectors = append(collectors, collector)
	}
	communityFee, err := sdk.NewDecFromStr(viper.GetString(FlagCommunityFee))
	if err != nil {
		return nil, err
	}
	platformFee, err := sdk.NewDecFromStr(viper.GetString(FlagPlatformFee))
	if err != nil {
		return nil, err
	}
	controllerFee, err := sdk.NewDecFromStr(viper.GetString(FlagControllerFee))
	if err != nil {
		return nil, err
	}

	msg := types.NewMsgCreateVault(from, stakingDenom, baseRewardDenom, rewardDenoms, controller,
		collectors[0], collectors[1], collectors[2], communityFee, platformFee, controllerFee)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	return msg, nil
}

func buildUpdateVaultMsg(cliCtx context.CLIContext) (sdk.Msg, error) {
	from := cliCtx.GetFromAddress()
	msg := types.NewMsgUpdateVault(from, viper.GetUint32(FlagVaultID))

	addrFields := []struct {
		flag   string
		target **sdk.CUAddress
	}{
		{FlagController, &msg.Controller},
		{FlagCommunityFeeCollector, &msg.CommunityFeeCollector},
		{FlagPlatformFeeCollector, &msg.PlatformFeeCollector},
		{FlagControllerFeeCollector, &msg.ControllerFeeCollector},
	}
	for _, field := range addrFields {
		if addrStr := viper.GetString(field.flag); addrStr != "" {
			addr, err := sdk.CUAddressFromBase58(addrStr)
			if err != nil {
				return nil, err
			}
			*field.target = &addr
		}
	}
	feeFields := []struct {
		flag   string
		target **sdk.Dec
	}{
		{FlagCommunityFee, &msg.CommunityFee},
		{FlagPlatformFee, &msg.PlatformFee},
		{FlagControllerFee, &msg.ControllerFee},
	}
	for _, field := range feeFields {
		if decStr := viper.GetString(field.flag); decStr != "" {
			d, err := sdk.NewDecFromStr(decStr)
			if err != nil {
				return nil, err
			}
			*field.target = &d
		}
	}
	if boolStr := viper.GetString(FlagPaused); boolStr != "" {
		b, err := strconv.ParseBool(boolStr)
		if err != nil {
			return nil, err
		}
		msg.Paused = &b
	}

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	return msg, nil
}

func buildBondMsg(cliCtx context.CLIContext) (sdk.Msg, error) {
	from := cliCtx.GetFromAddress()
	amount, ok := sdk.NewIntFromString(viper.GetString(FlagAmount))
	if !ok {
		return nil, errors.New("invalid bond amount")
	}
	msg := types.NewMsgBond(from, viper.GetUint32(FlagVaultID), amount)
	if stakerStr := viper.GetString(FlagStaker); stakerStr != "" {
		staker, err := sdk.CUAddressFromBase58(stakerStr)
		if err != nil {
			return nil, errors.New("invalid staker address")
		}
		msg.Staker = &staker
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	return msg, nil
}

func buildBondAssetsMsg(cliCtx context.CLIContext) (sdk.Msg, error) {
	from := cliCtx.GetFromAddress()
	assets, err := sdk.ParseCoins(viper.GetString(FlagAssets))
	if err != nil {
		return nil, err
	}
	minimumReceive, err := parseOptionalInt(FlagMinimumReceive)
	if err != nil {
		return nil, err
	}
	slippage, err := sdk.NewDecFromStr(viper.GetString(FlagSlippageTolerance))
	if err != nil {
		return nil, err
	}
	msg := types.NewMsgBondAssets(from, viper.GetUint32(FlagVaultID), assets, minimumReceive,
		viper.GetBool(FlagNoSwap), slippage)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	return msg, nil
}

func buildUnbondMsg(cliCtx context.CLIContext) (sdk.Msg, error) {
	from := cliCtx.GetFromAddress()
	amount, ok := sdk.NewIntFromString(viper.GetString(FlagAmount))
	if !ok {
		return nil, errors.New("invalid unbond amount")
	}
	msg := types.NewMsgUnbond(from, viper.GetUint32(FlagVaultID), amount)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	return msg, nil
}

func buildTransferShareMsg(cliCtx context.CLIContext) (sdk.Msg, error) {
	from := cliCtx.GetFromAddress()
	to, err := sdk.CUAddressFromBase58(viper.GetString(FlagTo))
	if err != nil {
		return nil, errors.New("invalid recipient address")
	}
	share, ok := sdk.NewIntFromString(viper.GetString(FlagShare))
	if !ok {
		return nil, errors.New("invalid share amount")
	}
	msg := types.NewMsgTransferShare(from, to, viper.GetUint32(FlagVaultID), share)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	return msg, nil
}

func buildCompoundMsg(cliCtx context.CLIContext) (sdk.Msg, error) {
	from := cliCtx.GetFromAddress()
	minimumReceive, err := parseOptionalInt(FlagMinimumReceive)
	if err != nil {
		return nil, err
	}
	slippage, err := sdk.NewDecFromStr(viper.GetString(FlagSlippageTolerance))
	if err != nil {
		return nil, err
	}
	msg := types.NewMsgCompound(from, viper.GetUint32(FlagVaultID), minimumReceive, slippage)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	return msg, nil
}

func parseOptionalInt(flag string) (*sdk.Int, error) {
	str := viper.GetString(flag)
	if str == "" {
		return nil, nil
	}
	amount, ok := sdk.NewIntFromString(str)
	if !ok {
		return nil, errors.New("invalid amount: " + str)
	}
	return &amount, nil
}
