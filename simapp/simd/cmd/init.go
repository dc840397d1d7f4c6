package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sedaprotocol/seda-wasm-storage/simapp"
)

// FlagOverwrite overwrites an existing genesis file.
const FlagOverwrite = "overwrite"

// InitCmd returns a command that writes the node config and a default
// genesis file.
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the node configuration and genesis files",
		Long:  "Writes config/app.toml and a default config/genesis.json into the node home directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			home, err := homeDir(cmd)
			if err != nil {
				return err
			}

			overwrite, err := cmd.Flags().GetBool(FlagOverwrite)
			if err != nil {
				return err
			}

			genFile := simapp.GenesisPath(home)
			if _, err := os.Stat(genFile); err == nil && !overwrite {
				return fmt.Errorf("genesis file already exists: %s", genFile)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			cfg, err := simapp.ReadConfig(home, cmd.Flags())
			if err != nil {
				return err
			}

			if err := simapp.WriteConfig(home, cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			cdc, _ := simapp.MakeCodec()
			appGenesis, err := simapp.NewAppGenesis(cfg.ChainID, simapp.NewDefaultGenesisState(cdc))
			if err != nil {
				return err
			}

			if err := appGenesis.SaveAs(genFile); err != nil {
				return fmt.Errorf("failed to write genesis file: %w", err)
			}

			cmd.Printf("initialized node %s in %s\n", cfg.ChainID, home)
			return nil
		},
	}

	cmd.Flags().Bool(FlagOverwrite, false, "overwrite the genesis.json file")
	cmd.Flags().String(simapp.FlagChainID, simapp.DefaultChainID, "genesis file chain-id")
	cmd.Flags().String(simapp.FlagAuthority, "", "bech32 address allowed to store overlay wasms and update params (defaults to gov)")

	return cmd
}
