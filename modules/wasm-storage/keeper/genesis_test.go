package keeper_test

import (
	"time"

	wasmtesting "github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/testing"
	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

func (s *KeeperTestSuite) TestInitAndExportGenesis() {
	addedAt := time.Date(2023, time.December, 24, 8, 30, 0, 0, time.UTC)
	genesis := types.NewGenesisState(types.NewParams(2048), []types.Wasm{
		types.NewWasm(wasmtesting.Code, types.WasmTypeDataRequest, addedAt),
		types.NewWasm(wasmtesting.AltCode, types.WasmTypeTally, addedAt),
		types.NewWasm(wasmtesting.Code, types.WasmTypeDataRequestExecutor, addedAt),
	})

	s.Require().NoError(s.keeper.InitGenesis(s.ctx, *genesis))

	params, err := s.keeper.GetParams(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(uint64(2048), params.MaxWasmSize)

	drWasm, err := s.keeper.GetDataRequestWasm(s.ctx, genesis.Wasms[0].Hash)
	s.Require().NoError(err)
	s.Require().Equal(genesis.Wasms[0], drWasm)

	overlayWasm, err := s.keeper.GetOverlayWasm(s.ctx, genesis.Wasms[2].Hash)
	s.Require().NoError(err)
	s.Require().Equal(genesis.Wasms[2], overlayWasm)

	exported, err := s.keeper.ExportGenesis(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(genesis.Params, exported.Params)
	s.Require().Len(exported.Wasms, 3)
	s.Require().ElementsMatch(genesis.Wasms[:2], exported.Wasms[:2])
	s.Require().Equal(genesis.Wasms[2], exported.Wasms[2])

	// re-importing the export into a fresh store yields the same state
	s.SetupTest()
	s.Require().NoError(s.keeper.InitGenesis(s.ctx, *exported))

	reexported, err := s.keeper.ExportGenesis(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(exported, reexported)
}

func (s *KeeperTestSuite) TestExportGenesisAfterStore() {
	drWasm := s.storeDataRequestWasm(wasmtesting.Code, types.WasmTypeDataRequest)
	overlayWasm := s.storeOverlayWasm(wasmtesting.AltCode, types.WasmTypeRelayer)

	exported, err := s.keeper.ExportGenesis(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(types.DefaultParams(), exported.Params)
	s.Require().Equal([]types.Wasm{drWasm, overlayWasm}, exported.Wasms)
	s.Require().Equal(blockTime, *exported.Wasms[0].AddedAt)
}

func (s *KeeperTestSuite) TestInitGenesisInvalid() {
	addedAt := time.Date(2023, time.December, 24, 8, 30, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		genesis types.GenesisState
		expErr  error
	}{
		{
			"invalid params",
			*types.NewGenesisState(types.NewParams(0), nil),
			types.ErrInvalidParams,
		},
		{
			"unspecified wasm type",
			*types.NewGenesisState(types.DefaultParams(), []types.Wasm{
				types.NewWasm(wasmtesting.Code, types.WasmTypeNil, addedAt),
			}),
			types.ErrInvalidWasmType,
		},
		{
			"duplicate data request wasm",
			*types.NewGenesisState(types.DefaultParams(), []types.Wasm{
				types.NewWasm(wasmtesting.Code, types.WasmTypeDataRequest, addedAt),
				types.NewWasm(wasmtesting.Code, types.WasmTypeTally, addedAt),
			}),
			types.ErrInvalidGenesis,
		},
		{
			"hash does not match bytecode",
			func() types.GenesisState {
				wasm := types.NewWasm(wasmtesting.Code, types.WasmTypeDataRequest, addedAt)
				wasm.Hash = types.NewWasm(wasmtesting.AltCode, types.WasmTypeDataRequest, addedAt).Hash
				return *types.NewGenesisState(types.DefaultParams(), []types.Wasm{wasm})
			}(),
			types.ErrInvalidHash,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()

			err := s.keeper.InitGenesis(s.ctx, tc.genesis)
			s.Require().ErrorIs(err, tc.expErr)

			pairs, err := s.keeper.ListDataRequestWasms(s.ctx)
			s.Require().NoError(err)
			s.Require().Empty(pairs)
		})
	}
}
