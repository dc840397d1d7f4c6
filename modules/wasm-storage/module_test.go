package wasmstorage_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	testifysuite "github.com/stretchr/testify/suite"
	"google.golang.org/grpc"

	storetypes "cosmossdk.io/store/types"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	wasmstorage "github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage"
	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/keeper"
	wasmtesting "github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/testing"
	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

type AppModuleTestSuite struct {
	testifysuite.Suite

	ctx    sdk.Context
	cdc    codec.Codec
	module wasmstorage.AppModule
}

func TestAppModuleTestSuite(t *testing.T) {
	testifysuite.Run(t, new(AppModuleTestSuite))
}

func (s *AppModuleTestSuite) SetupTest() {
	key := storetypes.NewKVStoreKey(types.StoreKey)
	testCtx := testutil.DefaultContextWithDB(s.T(), key, storetypes.NewTransientStoreKey("transient_test"))
	s.ctx = testCtx.Ctx

	registry := codectypes.NewInterfaceRegistry()
	s.cdc = codec.NewProtoCodec(registry)

	s.module = wasmstorage.NewAppModule(keeper.NewKeeper(s.cdc, runtime.NewKVStoreService(key), wasmtesting.Authority))
	s.module.RegisterInterfaces(registry)
}

func (s *AppModuleTestSuite) TestValidateGenesis() {
	addedAt := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)

	testCases := []struct {
		name     string
		genState *types.GenesisState
		expErr   bool
	}{
		{
			"success: default genesis",
			types.DefaultGenesisState(),
			false,
		},
		{
			"success: valid genesis with wasms",
			types.NewGenesisState(types.DefaultParams(), []types.Wasm{
				types.NewWasm(wasmtesting.Code, types.WasmTypeDataRequest, addedAt),
				types.NewWasm(wasmtesting.Code, types.WasmTypeRelayer, addedAt),
			}),
			false,
		},
		{
			"failure: invalid params",
			types.NewGenesisState(types.NewParams(0), nil),
			true,
		},
		{
			"failure: wasm exceeds max wasm size",
			types.NewGenesisState(types.NewParams(uint64(len(wasmtesting.Code)-1)), []types.Wasm{
				types.NewWasm(wasmtesting.Code, types.WasmTypeTally, addedAt),
			}),
			true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			bz := s.cdc.MustMarshalJSON(tc.genState)
			err := s.module.ValidateGenesis(s.cdc, nil, bz)
			if tc.expErr {
				s.Require().Error(err)
			} else {
				s.Require().NoError(err)
			}
		})
	}

	s.Require().Error(s.module.ValidateGenesis(s.cdc, nil, json.RawMessage(`{"params":`)))
}

func (s *AppModuleTestSuite) TestInitExportGenesis() {
	addedAt := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	genState := types.NewGenesisState(types.NewParams(4096), []types.Wasm{
		types.NewWasm(wasmtesting.Code, types.WasmTypeDataRequest, addedAt),
		types.NewWasm(wasmtesting.AltCode, types.WasmTypeDataRequestExecutor, addedAt),
	})

	s.module.InitGenesis(s.ctx, s.cdc, s.cdc.MustMarshalJSON(genState))

	var exported types.GenesisState
	s.cdc.MustUnmarshalJSON(s.module.ExportGenesis(s.ctx, s.cdc), &exported)
	s.Require().Equal(*genState, exported)
}

func (s *AppModuleTestSuite) TestInitGenesisPanicsOnInvalidState() {
	bz := s.cdc.MustMarshalJSON(types.NewGenesisState(types.NewParams(0), nil))

	s.Require().Panics(func() {
		s.module.InitGenesis(s.ctx, s.cdc, bz)
	})
}

func (s *AppModuleTestSuite) TestDefaultGenesis() {
	var gs types.GenesisState
	s.cdc.MustUnmarshalJSON(s.module.DefaultGenesis(s.cdc), &gs)
	s.Require().Equal(types.DefaultParams(), gs.Params)
	s.Require().Empty(gs.Wasms)
}

func (s *AppModuleTestSuite) TestAutoCLIOptions() {
	opts := s.module.AutoCLIOptions()

	s.Require().NotNil(opts)
	s.Require().NotNil(opts.Query)
	s.Require().NotNil(opts.Tx)
}

func TestRegisterServices(t *testing.T) {
	key := storetypes.NewKVStoreKey(types.StoreKey)
	cdc := codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
	module := wasmstorage.NewAppModule(keeper.NewKeeper(cdc, runtime.NewKVStoreService(key), wasmtesting.Authority))

	server := grpc.NewServer()
	require.NoError(t, module.RegisterServices(server))

	info := server.GetServiceInfo()
	require.Contains(t, info, types.QueryServiceName)
	require.Contains(t, info, types.MsgServiceName)
	require.Len(t, info[types.QueryServiceName].Methods, 5)
	require.Len(t, info[types.MsgServiceName].Methods, 3)

	require.Equal(t, types.ModuleName, module.Name())
	require.Equal(t, uint64(1), module.ConsensusVersion())
	require.NotNil(t, module.GetQueryCmd())
	require.NotNil(t, module.GetTxCmd())
}
