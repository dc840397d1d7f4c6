package cli

import (
	"fmt"
	"os"

	"github.com/CosmWasm/wasmd/x/wasm/ioutils"
	gogoproto "github.com/cosmos/gogoproto/proto"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/version"

	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

// newStoreDataRequestWasmCmd returns the command to store a data request or
// tally wasm.
func newStoreDataRequestWasmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "store-data-request-wasm [path/to/wasm-file]",
		Short:   "Store a data request wasm file",
		Long:    "Reads wasm code from the file, compresses it unless it is already gzipped, and stores it as a data request or tally wasm",
		Example: fmt.Sprintf("%s tx %s store-data-request-wasm [path/to/wasm_file] --wasm-type tally --from [address] --grpc-addr localhost:9090 --grpc-insecure", version.AppName, types.ModuleName),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := getClientTxContext(cmd)
			if err != nil {
				return err
			}

			wasmType, code, err := readStoreWasmArgs(cmd, args[0])
			if err != nil {
				closeGRPC(clientCtx)
				return err
			}

			msg := types.NewMsgStoreDataRequestWasm(clientCtx.GetFromAddress().String(), code, wasmType)
			return sendMsg(clientCtx, msg, func(msgClient types.MsgClient) (gogoproto.Message, error) {
				return msgClient.StoreDataRequestWasm(cmd.Context(), msg)
			})
		},
	}

	addStoreWasmFlags(cmd, "data-request")

	return cmd
}

// newStoreOverlayWasmCmd returns the command to store an executor or relayer
// wasm. The sender must be the module authority.
func newStoreOverlayWasmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "store-overlay-wasm [path/to/wasm-file]",
		Short:   "Store an overlay wasm file",
		Long:    "Reads wasm code from the file, compresses it unless it is already gzipped, and stores it as an executor or relayer wasm. Only the module authority may store overlay wasms.",
		Example: fmt.Sprintf("%s tx %s store-overlay-wasm [path/to/wasm_file] --wasm-type relayer --from [authority]", version.AppName, types.ModuleName),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := getClientTxContext(cmd)
			if err != nil {
				return err
			}

			wasmType, code, err := readStoreWasmArgs(cmd, args[0])
			if err != nil {
				closeGRPC(clientCtx)
				return err
			}

			msg := types.NewMsgStoreOverlayWasm(clientCtx.GetFromAddress().String(), code, wasmType)
			return sendMsg(clientCtx, msg, func(msgClient types.MsgClient) (gogoproto.Message, error) {
				return msgClient.StoreOverlayWasm(cmd.Context(), msg)
			})
		},
	}

	addStoreWasmFlags(cmd, "data-request-executor")

	return cmd
}

// newUpdateParamsCmd returns the command to update the module parameters.
func newUpdateParamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "update-params",
		Short:   "Update the wasm-storage parameters",
		Example: fmt.Sprintf("%s tx %s update-params --max-wasm-size 819200 --from [authority]", version.AppName, types.ModuleName),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := getClientTxContext(cmd)
			if err != nil {
				return err
			}

			maxWasmSize, err := cmd.Flags().GetUint64(FlagMaxWasmSize)
			if err != nil {
				closeGRPC(clientCtx)
				return err
			}

			msg := types.NewMsgUpdateParams(clientCtx.GetFromAddress().String(), types.NewParams(maxWasmSize))
			return sendMsg(clientCtx, msg, func(msgClient types.MsgClient) (gogoproto.Message, error) {
				return msgClient.UpdateParams(cmd.Context(), msg)
			})
		},
	}

	cmd.Flags().Uint64(FlagMaxWasmSize, types.DefaultMaxWasmSize, "Max size of a wasm in bytes")
	flags.AddTxFlagsToCmd(cmd)
	addGRPCFlags(cmd)

	return cmd
}

func addStoreWasmFlags(cmd *cobra.Command, defaultType string) {
	cmd.Flags().String(FlagWasmType, defaultType, "Type of the wasm: data-request, tally, data-request-executor or relayer")
	flags.AddTxFlagsToCmd(cmd)
	addGRPCFlags(cmd)
}

// readStoreWasmArgs reads the wasm type and the gzipped contents of the wasm
// file.
func readStoreWasmArgs(cmd *cobra.Command, path string) (types.WasmType, []byte, error) {
	typeArg, err := cmd.Flags().GetString(FlagWasmType)
	if err != nil {
		return types.WasmTypeNil, nil, err
	}
	wasmType := types.WasmTypeFromString(typeArg)
	if wasmType == types.WasmTypeNil {
		return types.WasmTypeNil, nil, fmt.Errorf("invalid wasm type %q", typeArg)
	}

	code, err := os.ReadFile(path)
	if err != nil {
		return types.WasmTypeNil, nil, err
	}

	if !ioutils.IsGzip(code) {
		code, err = ioutils.GzipIt(code)
		if err != nil {
			return types.WasmTypeNil, nil, err
		}
	}

	return wasmType, code, nil
}
