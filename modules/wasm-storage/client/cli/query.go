package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/version"

	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

// getCmdDataRequestWasm defines the command to query a data request wasm by
// its hash.
func getCmdDataRequestWasm() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "data-request-wasm [hash]",
		Short:   "Query a data request wasm by its hash",
		Long:    "Query a data request or tally wasm given its hex encoded keccak256 hash",
		Example: fmt.Sprintf("%s query %s data-request-wasm [hash] --grpc-addr localhost:9090 --grpc-insecure", version.AppName, types.ModuleName),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := getClientQueryContext(cmd)
			if err != nil {
				return err
			}
			defer closeGRPC(clientCtx)
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.DataRequestWasm(cmd.Context(), &types.QueryDataRequestWasmRequest{Hash: args[0]})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// getCmdDataRequestWasms defines the command to list all data request wasms.
func getCmdDataRequestWasms() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list-data-request-wasms",
		Short:   "List hashes and types of all data request wasms",
		Example: fmt.Sprintf("%s query %s list-data-request-wasms", version.AppName, types.ModuleName),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := getClientQueryContext(cmd)
			if err != nil {
				return err
			}
			defer closeGRPC(clientCtx)
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.DataRequestWasms(cmd.Context(), &types.QueryDataRequestWasmsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// getCmdOverlayWasm defines the command to query an overlay wasm by its hash.
func getCmdOverlayWasm() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "overlay-wasm [hash]",
		Short:   "Query an overlay wasm by its hash",
		Long:    "Query an executor or relayer wasm given its hex encoded keccak256 hash",
		Example: fmt.Sprintf("%s query %s overlay-wasm [hash]", version.AppName, types.ModuleName),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := getClientQueryContext(cmd)
			if err != nil {
				return err
			}
			defer closeGRPC(clientCtx)
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.OverlayWasm(cmd.Context(), &types.QueryOverlayWasmRequest{Hash: args[0]})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// getCmdOverlayWasms defines the command to list all overlay wasms.
func getCmdOverlayWasms() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list-overlay-wasms",
		Short:   "List hashes and types of all overlay wasms",
		Example: fmt.Sprintf("%s query %s list-overlay-wasms", version.AppName, types.ModuleName),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := getClientQueryContext(cmd)
			if err != nil {
				return err
			}
			defer closeGRPC(clientCtx)
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.OverlayWasms(cmd.Context(), &types.QueryOverlayWasmsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// getCmdParams defines the command to query the module parameters.
func getCmdParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "params",
		Short:   "Query the current wasm-storage parameters",
		Example: fmt.Sprintf("%s query %s params", version.AppName, types.ModuleName),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := getClientQueryContext(cmd)
			if err != nil {
				return err
			}
			defer closeGRPC(clientCtx)
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.Params(cmd.Context(), &types.QueryParamsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}
