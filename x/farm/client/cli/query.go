package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hbtc-chain/bhchain/client"
	"github.com/hbtc-chain/bhchain/client/context"
	"github.com/hbtc-chain/bhchain/codec"
	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/hbtc-chain/bhchain/version"
	"github.com/hbtc-chain/bhfarm/x/farm/types"

	"github.com/spf13/cobra"
)

func GetQueryCmd(queryRoute string, cdc *codec.Codec) *cobra.Command {
	farmQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the farm module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}
	farmQueryCmd.AddCommand(client.GetCommands(
		GetCmdQueryVault(queryRoute, cdc),
		GetCmdQueryAllVaults(queryRoute, cdc),
		GetCmdQueryVaultState(queryRoute, cdc),
		GetCmdQueryRewardInfo(queryRoute, cdc),
		GetCmdQueryUserInfo(queryRoute, cdc),
		GetCmdQueryParams(queryRoute, cdc),
	)...)
	return farmQueryCmd
}

func GetCmdQueryVault(storeName string, cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "vault [vault-id-or-denom]",
		Short: "Query a farming vault",
		Long: strings.TrimSpace(
			fmt.Sprintf(`Query the configuration of a farming vault by id or by staking denom.

Example:
$ %s query farm vault 1
$ %s query farm vault btcusdtlp
`,
				version.ClientName, version.ClientName,
			),
		),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			var params types.QueryVaultParams
			if vaultID, err := strconv.ParseUint(args[0], 10, 32); err == nil {
				params = types.NewQueryVaultParams(uint32(vaultID))
			} else {
				params = types.NewQueryVaultByDenomParams(sdk.Symbol(args[0]))
			}
			bz := cliCtx.Codec.MustMarshalJSON(params)

			res, _, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierKey, types.QueryVault), bz)
			if err != nil {
				return err
			}

			fmt.Println(string(res))
			return nil
		},
	}
}

func GetCmdQueryAllVaults(storeName string, cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "vaults",
		Short: "Query all farming vaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			res, _, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierKey, types.QueryAllVaults), nil)
			if err != nil {
				return err
			}

			fmt.Println(string(res))
			return nil
		},
	}
}

func GetCmdQueryVaultState(storeName string, cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "vault-state [vault-id]",
		Short: "Query the share supply and staked balance of a vault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			vaultID, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return err
			}

			params := types.NewQueryVaultParams(uint32(vaultID))
			bz := cliCtx.Codec.MustMarshalJSON(params)

			res, _, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierKey, types.QueryVaultState), bz)
			if err != nil {
				return err
			}

			fmt.Println(string(res))
			return nil
		},
	}
}

func GetCmdQueryRewardInfo(storeName string, cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "reward-info [vault-id] [addr]",
		Short: "Query the staking record of an address in a vault",
		Long: strings.TrimSpace(
			fmt.Sprintf(`Query the staking record of an address in a vault.

Example:
$ %s query farm reward-info 1 HBCWn2fXDbRPjyrzPyjYLsXYcAcUjE1PJDq9
`,
				version.ClientName,
			),
		),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			vaultID, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return err
			}
			addr, err := sdk.CUAddressFromBase58(args[1])
			if err != nil {
				return err
			}

			params := types.NewQueryRewardInfoParams(uint32(vaultID), addr)
			bz := cliCtx.Codec.MustMarshalJSON(params)

			res, _, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierKey, types.QueryRewardInfo), bz)
			if err != nil {
				return err
			}

			fmt.Println(string(res))
			return nil
		},
	}
}

func GetCmdQueryUserInfo(storeName string, cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "user-info [vault-id] [addr]",
		Short: "Query the withdrawable balance of an address in a vault",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			vaultID, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return err
			}
			addr, err := sdk.CUAddressFromBase58(args[1])
			if err != nil {
				return err
			}

			params := types.NewQueryRewardInfoParams(uint32(vaultID), addr)
			bz := cliCtx.Codec.MustMarshalJSON(params)

			res, _, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierKey, types.QueryUserInfo), bz)
			if err != nil {
				return err
			}

			fmt.Println(string(res))
			return nil
		},
	}
}

func GetCmdQueryParams(storeName string, cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Query the parameters of the farm module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			res, _, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierKey, types.QueryParameters), nil)
			if err != nil {
				return err
			}

			fmt.Println(string(res))
			return nil
		},
	}
}
