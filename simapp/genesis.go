package simapp

import (
	"encoding/json"
	"fmt"

	"github.com/cosmos/cosmos-sdk/codec"
	genutiltypes "github.com/cosmos/cosmos-sdk/x/genutil/types"

	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

// GenesisState of the blockchain is represented here as a map of raw json
// messages key'd by a identifier string.
type GenesisState map[string]json.RawMessage

// NewDefaultGenesisState generates the default state for the application.
func NewDefaultGenesisState(cdc codec.JSONCodec) GenesisState {
	return GenesisState{
		types.ModuleName: cdc.MustMarshalJSON(types.DefaultGenesisState()),
	}
}

// NewAppGenesis wraps the app state into a genesis document for the chain.
func NewAppGenesis(chainID string, state GenesisState) (*genutiltypes.AppGenesis, error) {
	appState, err := json.MarshalIndent(state, "", " ")
	if err != nil {
		return nil, err
	}

	appGenesis := genutiltypes.NewAppGenesisWithVersion(chainID, appState)
	if err := appGenesis.ValidateAndComplete(); err != nil {
		return nil, err
	}

	return appGenesis, nil
}

// ReadGenesisFile reads the genesis document at path and returns its app
// state.
func ReadGenesisFile(path string) (*genutiltypes.AppGenesis, GenesisState, error) {
	appGenesis, err := genutiltypes.AppGenesisFromFile(path)
	if err != nil {
		return nil, nil, err
	}

	var state GenesisState
	if err := json.Unmarshal(appGenesis.AppState, &state); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal app state of %s: %w", path, err)
	}

	return appGenesis, state, nil
}
