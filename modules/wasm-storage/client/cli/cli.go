package cli

import (
	"crypto/tls"
	"fmt"

	gogoproto "github.com/cosmos/gogoproto/proto"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

const (
	// FlagWasmType is the type of the wasm being stored.
	FlagWasmType = "wasm-type"
	// FlagMaxWasmSize is the max wasm size of an update-params transaction.
	FlagMaxWasmSize = "max-wasm-size"

	// DefaultGRPCAddress is the gRPC endpoint used when --grpc-addr is not set.
	DefaultGRPCAddress = "localhost:9090"
)

// GetQueryCmd returns the query commands for the wasm-storage module
func GetQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the wasm-storage module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	queryCmd.AddCommand(
		getCmdDataRequestWasm(),
		getCmdDataRequestWasms(),
		getCmdOverlayWasm(),
		getCmdOverlayWasms(),
		getCmdParams(),
	)

	return queryCmd
}

// NewTxCmd returns the transaction commands for the wasm-storage module
func NewTxCmd() *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Transaction commands for the wasm-storage module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	txCmd.AddCommand(
		newStoreDataRequestWasmCmd(),
		newStoreOverlayWasmCmd(),
		newUpdateParamsCmd(),
	)

	return txCmd
}

// getClientQueryContext returns the query context of cmd connected to the
// --grpc-addr endpoint.
func getClientQueryContext(cmd *cobra.Command) (client.Context, error) {
	clientCtx, err := client.GetClientQueryContext(cmd)
	if err != nil {
		return client.Context{}, err
	}

	return dialGRPC(cmd, withDefaultCodec(clientCtx))
}

// getClientTxContext returns the tx context of cmd. The node takes unsigned
// messages, so --from is resolved like with --generate-only: an address is
// used as is and a key name is looked up in the keyring.
func getClientTxContext(cmd *cobra.Command) (client.Context, error) {
	clientCtx := withDefaultCodec(client.GetClientContextFromCmd(cmd))
	if clientCtx.Keyring == nil {
		clientCtx = clientCtx.WithKeyring(keyring.NewInMemory(clientCtx.Codec))
	}

	clientCtx, err := client.ReadPersistentCommandFlags(clientCtx, cmd.Flags())
	if err != nil {
		return client.Context{}, err
	}

	from, err := cmd.Flags().GetString(flags.FlagFrom)
	if err != nil {
		return client.Context{}, err
	}
	if from == "" {
		return client.Context{}, fmt.Errorf("--%s is required", flags.FlagFrom)
	}

	fromAddr, fromName, _, err := client.GetFromFields(clientCtx.WithGenerateOnly(true), clientCtx.Keyring, from)
	if err != nil {
		return client.Context{}, fmt.Errorf("invalid --%s: %w", flags.FlagFrom, err)
	}
	clientCtx = clientCtx.WithFrom(from).WithFromAddress(fromAddr).WithFromName(fromName)

	generateOnly, err := cmd.Flags().GetBool(flags.FlagGenerateOnly)
	if err != nil {
		return client.Context{}, err
	}
	clientCtx = clientCtx.WithGenerateOnly(generateOnly)
	if generateOnly {
		return clientCtx, nil
	}

	return dialGRPC(cmd, clientCtx)
}

type validatableMsg interface {
	sdk.Msg
	ValidateBasic() error
}

// sendMsg validates msg and prints it with --generate-only. Otherwise msg is
// delivered through send and the response is printed.
func sendMsg(clientCtx client.Context, msg validatableMsg, send func(types.MsgClient) (gogoproto.Message, error)) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	if clientCtx.GenerateOnly {
		return clientCtx.PrintProto(msg)
	}
	defer closeGRPC(clientCtx)

	res, err := send(types.NewMsgClient(clientCtx))
	if err != nil {
		return err
	}

	return clientCtx.PrintProto(res)
}

// dialGRPC replaces the gRPC connection of the context with one to
// --grpc-addr that encodes messages with the codec of the interface registry.
func dialGRPC(cmd *cobra.Command, clientCtx client.Context) (client.Context, error) {
	addr, err := cmd.Flags().GetString(flags.FlagGRPC)
	if err != nil {
		return client.Context{}, err
	}
	if addr == "" {
		addr = DefaultGRPCAddress
	}

	useInsecure, err := cmd.Flags().GetBool(flags.FlagGRPCInsecure)
	if err != nil {
		return client.Context{}, err
	}
	creds := credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	if useInsecure {
		creds = insecure.NewCredentials()
	}

	closeGRPC(clientCtx)

	conn, err := grpc.NewClient(
		addr,
		grpc.WithTransportCredentials(creds),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(codec.NewProtoCodec(clientCtx.InterfaceRegistry).GRPCCodec())),
	)
	if err != nil {
		return client.Context{}, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}

	return clientCtx.WithGRPCClient(conn), nil
}

func closeGRPC(clientCtx client.Context) {
	if clientCtx.GRPCClient != nil {
		_ = clientCtx.GRPCClient.Close()
	}
}

// withDefaultCodec sets a codec with the wasm-storage types registered when
// the command runs without an app provided client context.
func withDefaultCodec(clientCtx client.Context) client.Context {
	if clientCtx.InterfaceRegistry == nil {
		registry := codectypes.NewInterfaceRegistry()
		cryptocodec.RegisterInterfaces(registry)
		types.RegisterInterfaces(registry)
		clientCtx = clientCtx.WithInterfaceRegistry(registry)
	}
	if clientCtx.Codec == nil {
		clientCtx = clientCtx.WithCodec(codec.NewProtoCodec(clientCtx.InterfaceRegistry))
	}
	return clientCtx
}

func addGRPCFlags(cmd *cobra.Command) {
	cmd.Flags().String(flags.FlagGRPC, "", fmt.Sprintf("the gRPC endpoint of the node (default %q)", DefaultGRPCAddress))
	cmd.Flags().Bool(flags.FlagGRPCInsecure, false, "allow gRPC over insecure channels, if not the server must use TLS")
}
