package keeper

import (
	"context"

	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

// InitGenesis initializes the wasm-storage module's state from a provided
// genesis state. Wasms are routed to the data request or overlay registry by
// their type.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}

	if err := k.Params.Set(ctx, gs.Params); err != nil {
		return err
	}

	for _, wasm := range gs.Wasms {
		registry := k.DataRequestWasm
		if wasm.WasmType.IsOverlayType() {
			registry = k.OverlayWasm
		}

		if err := registry.Set(ctx, wasm.Hash, wasm); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis returns the wasm-storage module's exported genesis. This
// includes the parameters and every stored wasm, data request wasms first.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return nil, err
	}

	wasms, err := k.GetAllWasms(ctx)
	if err != nil {
		return nil, err
	}

	return types.NewGenesisState(params, wasms), nil
}
