package cli

import (
	"fmt"

	"github.com/hbtc-chain/bhchain/client"
	"github.com/hbtc-chain/bhchain/client/context"
	"github.com/hbtc-chain/bhchain/codec"
	sdk "github.com/hbtc-chain/bhchain/types"
	"github.com/hbtc-chain/bhfarm/x/lpstaking/types"

	"github.com/spf13/cobra"
)

func GetQueryCmd(queryRoute string, cdc *codec.Codec) *cobra.Command {
	lpstakingQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the lpstaking module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}
	lpstakingQueryCmd.AddCommand(client.GetCommands(
		GetCmdQueryBond(queryRoute, cdc),
		GetCmdQueryPendingRewards(queryRoute, cdc),
		GetCmdQueryParams(queryRoute, cdc),
	)...)
	return lpstakingQueryCmd
}

func GetCmdQueryBond(storeName string, cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "bond [denom] [addr]",
		Short: "Query the bonded LP amount of an address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			addr, err := sdk.CUAddressFromBase58(args[1])
			if err != nil {
				return err
			}

			params := types.NewQueryBondParams(sdk.Symbol(args[0]), addr)
			bz := cliCtx.Codec.MustMarshalJSON(params)

			res, _, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierKey, types.QueryBond), bz)
			if err != nil {
				return err
			}

			fmt.Println(string(res))
			return nil
		},
	}
}

func GetCmdQueryPendingRewards(storeName string, cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "pending-rewards [denom] [addr]",
		Short: "Query the unclaimed mining rewards of an address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			addr, err := sdk.CUAddressFromBase58(args[1])
			if err != nil {
				return err
			}

			params := types.NewQueryBondParams(sdk.Symbol(args[0]), addr)
			bz := cliCtx.Codec.MustMarshalJSON(params)

			res, _, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierKey, types.QueryPendingRewards), bz)
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
		Short: "Query the parameters of the lpstaking module",
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
