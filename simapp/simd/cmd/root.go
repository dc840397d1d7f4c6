package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"

	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/client/cli"
	"github.com/sedaprotocol/seda-wasm-storage/simapp"
)

// NewRootCmd creates a new root command for simd.
func NewRootCmd() *cobra.Command {
	appCodec, interfaceRegistry := simapp.MakeCodec()
	initClientCtx := client.Context{}.
		WithCodec(appCodec).
		WithInterfaceRegistry(interfaceRegistry).
		WithKeyring(keyring.NewInMemory(appCodec)).
		WithInput(os.Stdin).
		WithHomeDir(simapp.DefaultNodeHome)

	rootCmd := &cobra.Command{
		Use:           "simd",
		Short:         "wasm-storage node daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// set the default command outputs
			cmd.SetOut(cmd.OutOrStdout())
			cmd.SetErr(cmd.ErrOrStderr())

			return client.SetCmdClientContextHandler(initClientCtx.WithOutput(cmd.OutOrStdout()), cmd)
		},
	}

	rootCmd.AddCommand(
		InitCmd(),
		StartCmd(),
		ExportCmd(),
		queryCommand(),
		txCommand(),
	)

	return rootCmd
}

func queryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "query",
		Aliases:                    []string{"q"},
		Short:                      "Querying subcommands",
		DisableFlagParsing:         false,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(cli.GetQueryCmd())

	return cmd
}

func txCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "tx",
		Short:                      "Transactions subcommands",
		DisableFlagParsing:         false,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(cli.NewTxCmd())

	return cmd
}

// homeDir returns the value of the --home flag.
func homeDir(cmd *cobra.Command) (string, error) {
	return cmd.Flags().GetString(flags.FlagHome)
}
