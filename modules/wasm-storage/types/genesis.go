package types

import (
	errorsmod "cosmossdk.io/errors"
)

// NewGenesisState creates a wasm-storage GenesisState instance.
func NewGenesisState(params Params, wasms []Wasm) *GenesisState {
	return &GenesisState{
		Params: params,
		Wasms:  wasms,
	}
}

// DefaultGenesisState returns the default GenesisState.
func DefaultGenesisState() *GenesisState {
	return NewGenesisState(DefaultParams(), []Wasm{})
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	dataRequestHashes := make(map[string]struct{})
	overlayHashes := make(map[string]struct{})
	for i, wasm := range gs.Wasms {
		var seen map[string]struct{}
		switch {
		case wasm.WasmType.IsDataRequestType():
			seen = dataRequestHashes
		case wasm.WasmType.IsOverlayType():
			seen = overlayHashes
		default:
			return errorsmod.Wrapf(ErrInvalidWasmType, "wasm %d has type %s", i, wasm.WasmType)
		}

		if err := ValidateWasmCode(wasm.Bytecode, gs.Params.MaxWasmSize); err != nil {
			return errorsmod.Wrapf(err, "wasm %d bytecode validation failed", i)
		}
		if err := ValidateWasmHash(wasm); err != nil {
			return errorsmod.Wrapf(err, "wasm %d", i)
		}

		key := string(wasm.Hash)
		if _, ok := seen[key]; ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate wasm hash %s", wasm.HashHex())
		}
		seen[key] = struct{}{}
	}

	return nil
}
