package cli

import (
	"github.com/hbtc-chain/bhchain/client"
	"github.com/hbtc-chain/bhchain/client/context"
	"github.com/hbtc-chain/bhchain/codec"
	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/hbtc-chain/bhchain/x/custodianunit"
	"github.com/hbtc-chain/bhchain/x/custodianunit/client/utils"
	"github.com/hbtc-chain/bhfarm/x/farm/types"

	"github.com/spf13/cobra"
)

func GetTxCmd(storeKey string, cdc *codec.Codec) *cobra.Command {
	farmTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Farm transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}
	farmTxCmd.AddCommand(client.PostCommands(
		GetCmdCreateVault(cdc),
		GetCmdUpdateVault(cdc),
		GetCmdBond(cdc),
		GetCmdBondAssets(cdc),
		GetCmdUnbond(cdc),
		GetCmdTransferShare(cdc),
		GetCmdCompound(cdc),
	)...)
	return farmTxCmd
}

func GetCmdCreateVault(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-vault",
		Short: "create a new farming vault",
		RunE: func(cmd *cobra.Command, args []string) error {
			txBldr := custodianunit.NewTxBuilderFromCLI().WithTxEncoder(utils.GetTxEncoder(cdc))
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			msg, err := buildCreateVaultMsg(cliCtx)
			if err != nil {
				return err
			}

			return utils.GenerateOrBroadcastMsgs(cliCtx, txBldr, []sdk.Msg{msg})
		},
	}

	cmd.Flags().String(FlagStakingDenom, "", "The LP token the vault stakes")
	cmd.Flags().String(FlagBaseRewardDenom, "", "The main reward token")
	cmd.Flags().String(FlagRewardDenoms, "", "Comma separated extra reward tokens")
	cmd.Flags().String(FlagController, "", "The controller address allowed to compound")
	cmd.Flags().String(FlagCommunityFeeCollector, "", "The community fee collector address")
	cmd.Flags().String(FlagPlatformFeeCollector, "", "The platform fee collector address")
	cmd.Flags().String(FlagControllerFeeCollector, "", "The controller fee collector address")
	cmd.Flags().String(FlagCommunityFee, "0", "The community fee rate")
	cmd.Flags().String(FlagPlatformFee, "0", "The platform fee rate")
	cmd.Flags().String(FlagControllerFee, "0", "The controller fee rate")

	cmd.MarkFlagRequired(client.FlagFrom)
	cmd.MarkFlagRequired(FlagStakingDenom)
	cmd.MarkFlagRequired(FlagBaseRewardDenom)
	cmd.MarkFlagRequired(FlagController)

	return cmd
}

func GetCmdUpdateVault(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-vault",
		Short: "update the configuration of a vault",
		RunE: func(cmd *cobra.Command, args []string) error {
			txBldr := custodianunit.NewTxBuilderFromCLI().WithTxEncoder(utils.GetTxEncoder(cdc))
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			msg, err := buildUpdateVaultMsg(cliCtx)
			if err != nil {
				return err
			}

			return utils.GenerateOrBroadcastMsgs(cliCtx, txBldr, []sdk.Msg{msg})
		},
	}

	cmd.Flags().Uint32(FlagVaultID, 0, "The vault id")
	cmd.Flags().String(FlagController, "", "The controller address allowed to compound")
	cmd.Flags().String(FlagCommunityFeeCollector, "", "The community fee collector address")
	cmd.Flags().String(FlagPlatformFeeCollector, "", "The platform fee collector address")
	cmd.Flags().String(FlagControllerFeeCollector, "", "The controller fee collector address")
	cmd.Flags().String(FlagCommunityFee, "", "The community fee rate")
	cmd.Flags().String(FlagPlatformFee, "", "The platform fee rate")
	cmd.Flags().String(FlagControllerFee, "", "The controller fee rate")
	cmd.Flags().String(FlagPaused, "", "Whether the vault is paused")

	cmd.MarkFlagRequired(client.FlagFrom)
	cmd.MarkFlagRequired(FlagVaultID)

	return cmd
}

func GetCmdBond(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bond",
		Short: "bond LP tokens to a vault",
		RunE: func(cmd *cobra.Command, args []string) error {
			txBldr := custodianunit.NewTxBuilderFromCLI().WithTxEncoder(utils.GetTxEncoder(cdc))
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			msg, err := buildBondMsg(cliCtx)
			if err != nil {
				return err
			}

			return utils.GenerateOrBroadcastMsgs(cliCtx, txBldr, []sdk.Msg{msg})
		},
	}

	cmd.Flags().Uint32(FlagVaultID, 0, "The vault id")
	cmd.Flags().String(FlagAmount, "", "The amount of LP tokens to bond")
	cmd.Flags().String(FlagStaker, "", "Credit the share to this address instead of the sender")

	cmd.MarkFlagRequired(client.FlagFrom)
	cmd.MarkFlagRequired(FlagVaultID)
	cmd.MarkFlagRequired(FlagAmount)

	return cmd
}

func GetCmdBondAssets(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bond-assets",
		Short: "provide pool assets and bond the resulting LP tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			txBldr := custodianunit.NewTxBuilderFromCLI().WithTxEncoder(utils.GetTxEncoder(cdc))
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			msg, err := buildBondAssetsMsg(cliCtx)
			if err != nil {
				return err
			}

			return utils.GenerateOrBroadcastMsgs(cliCtx, txBldr, []sdk.Msg{msg})
		},
	}

	cmd.Flags().Uint32(FlagVaultID, 0, "The vault id")
	cmd.Flags().String(FlagAssets, "", "The pool assets to provide, e.g. 100btc,2000usdt")
	cmd.Flags().String(FlagMinimumReceive, "", "The minimum LP amount to accept")
	cmd.Flags().Bool(FlagNoSwap, false, "Provide the assets without rebalancing swaps")
	cmd.Flags().String(FlagSlippageTolerance, "0", "The slippage tolerance")

	cmd.MarkFlagRequired(client.FlagFrom)
	cmd.MarkFlagRequired(FlagVaultID)
	cmd.MarkFlagRequired(FlagAssets)

	return cmd
}

func GetCmdUnbond(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unbond",
		Short: "unbond LP tokens from a vault",
		RunE: func(cmd *cobra.Command, args []string) error {
			txBldr := custodianunit.NewTxBuilderFromCLI().WithTxEncoder(utils.GetTxEncoder(cdc))
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			msg, err := buildUnbondMsg(cliCtx)
			if err != nil {
				return err
			}

			return utils.GenerateOrBroadcastMsgs(cliCtx, txBldr, []sdk.Msg{msg})
		},
	}

	cmd.Flags().Uint32(FlagVaultID, 0, "The vault id")
	cmd.Flags().String(FlagAmount, "", "The amount of LP tokens to unbond")

	cmd.MarkFlagRequired(client.FlagFrom)
	cmd.MarkFlagRequired(FlagVaultID)
	cmd.MarkFlagRequired(FlagAmount)

	return cmd
}

func GetCmdTransferShare(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer-share",
		Short: "transfer vault share to another address",
		RunE: func(cmd *cobra.Command, args []string) error {
			txBldr := custodianunit.NewTxBuilderFromCLI().WithTxEncoder(utils.GetTxEncoder(cdc))
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			msg, err := buildTransferShareMsg(cliCtx)
			if err != nil {
				return err
			}

			return utils.GenerateOrBroadcastMsgs(cliCtx, txBldr, []sdk.Msg{msg})
		},
	}

	cmd.Flags().Uint32(FlagVaultID, 0, "The vault id")
	cmd.Flags().String(FlagTo, "", "The recipient address")
	cmd.Flags().String(FlagShare, "", "The amount of share to transfer")

	cmd.MarkFlagRequired(client.FlagFrom)
	cmd.MarkFlagRequired(FlagVaultID)
	cmd.MarkFlagRequired(FlagTo)
	cmd.MarkFlagRequired(FlagShare)

	return cmd
}

func GetCmdCompound(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compound",
		Short: "harvest and reinvest the rewards of a vault",
		RunE: func(cmd *cobra.Command, args []string) error {
			txBldr := custodianunit.NewTxBuilderFromCLI().WithTxEncoder(utils.GetTxEncoder(cdc))
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			msg, err := buildCompoundMsg(cliCtx)
			if err != nil {
				return err
			}

			return utils.GenerateOrBroadcastMsgs(cliCtx, txBldr, []sdk.Msg{msg})
		},
	}

	cmd.Flags().Uint32(FlagVaultID, 0, "The vault id")
	cmd.Flags().String(FlagMinimumReceive, "", "The minimum LP amount to accept")
	cmd.Flags().String(FlagSlippageTolerance, "0", "The slippage tolerance")

	cmd.MarkFlagRequired(client.FlagFrom)
	cmd.MarkFlagRequired(FlagVaultID)

	return cmd
}
