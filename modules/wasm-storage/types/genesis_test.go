package types_test

import (
	"time"

	wasmtesting "github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/testing"
	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

func (s *TypesTestSuite) TestGenesisStateValidate() {
	addedAt := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	drWasm := types.NewWasm(wasmtesting.Code, types.WasmTypeDataRequest, addedAt)
	overlayWasm := types.NewWasm(wasmtesting.Code, types.WasmTypeRelayer, addedAt)

	testCases := []struct {
		name   string
		gs     *types.GenesisState
		expErr error
	}{
		{
			"success: default",
			types.DefaultGenesisState(),
			nil,
		},
		{
			"success: same code in both registries",
			types.NewGenesisState(types.DefaultParams(), []types.Wasm{drWasm, overlayWasm}),
			nil,
		},
		{
			"failure: invalid params",
			types.NewGenesisState(types.NewParams(0), nil),
			types.ErrInvalidParams,
		},
		{
			"failure: unspecified wasm type",
			types.NewGenesisState(types.DefaultParams(), []types.Wasm{types.NewWasm(wasmtesting.Code, types.WasmTypeNil, addedAt)}),
			types.ErrInvalidWasmType,
		},
		{
			"failure: duplicate hash in one registry",
			types.NewGenesisState(types.DefaultParams(), []types.Wasm{drWasm, types.NewWasm(wasmtesting.Code, types.WasmTypeTally, addedAt)}),
			types.ErrInvalidGenesis,
		},
		{
			"failure: hash mismatch",
			types.NewGenesisState(types.DefaultParams(), []types.Wasm{{
				Hash:     drWasm.Hash,
				Bytecode: wasmtesting.AltCode,
				WasmType: types.WasmTypeDataRequest,
				AddedAt:  &addedAt,
			}}),
			types.ErrInvalidHash,
		},
		{
			"failure: bytecode larger than max wasm size",
			types.NewGenesisState(types.NewParams(uint64(len(wasmtesting.Code)-1)), []types.Wasm{drWasm}),
			types.ErrWasmCodeTooLarge,
		},
		{
			"failure: not wasm",
			types.NewGenesisState(types.DefaultParams(), []types.Wasm{types.NewWasm([]byte("this is definitely not wasm"), types.WasmTypeTally, addedAt)}),
			types.ErrWasmInvalidCode,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.gs.Validate()
			if tc.expErr == nil {
				s.Require().NoError(err)
			} else {
				s.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}
