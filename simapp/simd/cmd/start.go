package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sedaprotocol/seda-wasm-storage/simapp"
)

// StartCmd returns a command that runs the node until it is interrupted.
func StartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Run the node",
		Long:  "Opens the node database, applies the genesis file on first start and serves the gRPC and REST endpoints.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			home, err := homeDir(cmd)
			if err != nil {
				return err
			}

			cfg, err := simapp.ReadConfig(home, cmd.Flags())
			if err != nil {
				return err
			}

			logger, err := simapp.NewLogger(cmd.OutOrStdout(), cfg)
			if err != nil {
				return err
			}

			db, err := simapp.OpenDB(home, cfg)
			if err != nil {
				return err
			}

			app, err := simapp.NewApp(logger, db, cfg.Authority, simapp.WithChainID(cfg.ChainID))
			if err != nil {
				db.Close()
				return err
			}
			defer app.Close()

			if app.LastBlockHeight() == 0 {
				_, state, err := simapp.ReadGenesisFile(simapp.GenesisPath(home))
				if err != nil {
					return err
				}
				if err := app.InitChain(state); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return app.Serve(ctx, cfg)
		},
	}

	cmd.Flags().String(simapp.FlagGRPCAddress, "", "gRPC server listen address")
	cmd.Flags().String(simapp.FlagAPIAddress, "", "REST server listen address")
	cmd.Flags().Bool(simapp.FlagAPIEnable, true, "enable the REST server")
	cmd.Flags().String(simapp.FlagDBBackend, "", "database backend")

	return cmd
}
