package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"cosmossdk.io/log"

	"github.com/sedaprotocol/seda-wasm-storage/simapp"
)

// ExportCmd returns a command that prints the genesis of the latest committed
// state.
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export state to JSON",
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

			db, err := simapp.OpenDB(home, cfg)
			if err != nil {
				return err
			}

			app, err := simapp.NewApp(log.NewNopLogger(), db, cfg.Authority, simapp.WithChainID(cfg.ChainID))
			if err != nil {
				db.Close()
				return err
			}
			defer app.Close()

			state, err := app.ExportGenesis(cmd.Context())
			if err != nil {
				return err
			}

			appGenesis, err := simapp.NewAppGenesis(cfg.ChainID, state)
			if err != nil {
				return err
			}
			appGenesis.InitialHeight = app.LastBlockHeight() + 1

			bz, err := json.MarshalIndent(appGenesis, "", "  ")
			if err != nil {
				return err
			}

			cmd.Println(string(bz))
			return nil
		},
	}

	return cmd
}
