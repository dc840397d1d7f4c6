package simapp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	"cosmossdk.io/x/tx/signing"

	dbm "github.com/cosmos/cosmos-db"

	"github.com/cosmos/cosmos-sdk/codec"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/gogoproto/proto"

	wasmstorage "github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage"
	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/keeper"
	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

const appName = "WasmStorageApp"

// DefaultNodeHome default home directories for the application daemon
var DefaultNodeHome string

func init() {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}

	DefaultNodeHome = filepath.Join(userHomeDir, ".wasmstorage")
}

// ErrAlreadyInitialized is returned by InitChain on a store that already
// holds committed state.
var ErrAlreadyInitialized = errors.New("chain is already initialized")

// App is a single node application hosting the wasm-storage module. Every
// successful Msg is executed in its own block and committed right away.
type App struct {
	logger            log.Logger
	db                dbm.DB
	cms               storetypes.CommitMultiStore
	key               *storetypes.KVStoreKey
	appCodec          codec.Codec
	interfaceRegistry codectypes.InterfaceRegistry

	chainID string
	clock   func() time.Time

	// mu serializes block execution. Queries hold the read lock.
	mu sync.RWMutex

	WasmStorageKeeper keeper.Keeper
	module            wasmstorage.AppModule
}

// Option configures an App.
type Option func(*App)

// WithClock sets the source of block times. Defaults to time.Now.
func WithClock(clock func() time.Time) Option {
	return func(app *App) {
		app.clock = clock
	}
}

// WithChainID sets the chain id written into block headers.
func WithChainID(chainID string) Option {
	return func(app *App) {
		app.chainID = chainID
	}
}

// NewApp returns a reference to an initialized App backed by the given
// database. The latest committed state is loaded.
func NewApp(logger log.Logger, db dbm.DB, authority string, opts ...Option) (*App, error) {
	appCodec, interfaceRegistry := MakeCodec()

	app := &App{
		logger:            logger.With(log.ModuleKey, appName),
		db:                db,
		key:               storetypes.NewKVStoreKey(types.StoreKey),
		appCodec:          appCodec,
		interfaceRegistry: interfaceRegistry,
		chainID:           DefaultChainID,
		clock:             time.Now,
	}
	for _, opt := range opts {
		opt(app)
	}

	app.cms = store.NewCommitMultiStore(db, app.logger, metrics.NewNoOpMetrics())
	app.cms.MountStoreWithDB(app.key, storetypes.StoreTypeIAVL, nil)
	if err := app.cms.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load latest version: %w", err)
	}

	app.WasmStorageKeeper = keeper.NewKeeper(appCodec, runtime.NewKVStoreService(app.key), authority)
	app.module = wasmstorage.NewAppModule(app.WasmStorageKeeper)

	return app, nil
}

// MakeCodec returns the proto codec and interface registry of the app. Msg
// signers are resolved from the cosmos.msg.v1.signer option of the registered
// file descriptors.
func MakeCodec() (codec.Codec, codectypes.InterfaceRegistry) {
	interfaceRegistry, err := codectypes.NewInterfaceRegistryWithOptions(codectypes.InterfaceRegistryOptions{
		ProtoFiles: proto.HybridResolver,
		SigningOptions: signing.Options{
			AddressCodec:          addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
			ValidatorAddressCodec: addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32ValidatorAddrPrefix()),
		},
	})
	if err != nil {
		panic(err)
	}
	cryptocodec.RegisterInterfaces(interfaceRegistry)
	types.RegisterInterfaces(interfaceRegistry)
	return codec.NewProtoCodec(interfaceRegistry), interfaceRegistry
}

// AppCodec returns the app codec.
func (app *App) AppCodec() codec.Codec {
	return app.appCodec
}

// InterfaceRegistry returns the interface registry of the app.
func (app *App) InterfaceRegistry() codectypes.InterfaceRegistry {
	return app.interfaceRegistry
}

// Logger returns the app logger.
func (app *App) Logger() log.Logger {
	return app.logger
}

// LastBlockHeight returns the height of the latest committed block.
func (app *App) LastBlockHeight() int64 {
	app.mu.RLock()
	defer app.mu.RUnlock()

	return app.cms.LastCommitID().Version
}

// InitChain validates the wasm-storage genesis of the app state and writes it
// into the first block. A missing entry falls back to the default genesis.
// It fails if the store already holds committed state.
func (app *App) InitChain(state GenesisState) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.cms.LastCommitID().Version != 0 {
		return ErrAlreadyInitialized
	}

	bz, ok := state[types.ModuleName]
	if !ok {
		bz = app.module.DefaultGenesis(app.appCodec)
	}

	if err := app.module.ValidateGenesis(app.appCodec, nil, bz); err != nil {
		return fmt.Errorf("invalid genesis: %w", err)
	}

	var gs types.GenesisState
	if err := app.appCodec.UnmarshalJSON(bz, &gs); err != nil {
		return err
	}

	_, err := app.executeBlock(context.Background(), func(ctx sdk.Context) (interface{}, error) {
		return nil, app.WasmStorageKeeper.InitGenesis(ctx, gs)
	})
	if err != nil {
		return err
	}

	app.logger.Info("initialized chain", "chain_id", app.chainID, "wasms", len(gs.Wasms))
	return nil
}

// ExportGenesis returns the app state of the latest committed block.
func (app *App) ExportGenesis(ctx context.Context) (GenesisState, error) {
	res, err := app.query(ctx, func(sdkCtx sdk.Context) (interface{}, error) {
		return app.WasmStorageKeeper.ExportGenesis(sdkCtx)
	})
	if err != nil {
		return nil, err
	}

	bz, err := app.appCodec.MarshalJSON(res.(*types.GenesisState))
	if err != nil {
		return nil, err
	}

	return GenesisState{types.ModuleName: bz}, nil
}

// Close closes the underlying database.
func (app *App) Close() error {
	return app.db.Close()
}

// executeBlock runs fn on a cached context of the next block. The cache is
// written and committed only when fn succeeds.
func (app *App) executeBlock(goCtx context.Context, fn func(sdk.Context) (interface{}, error)) (interface{}, error) {
	header := cmtproto.Header{
		ChainID: app.chainID,
		Height:  app.cms.LastCommitID().Version + 1,
		Time:    app.clock().UTC(),
	}

	cacheMS := app.cms.CacheMultiStore()
	ctx := sdk.NewContext(cacheMS, header, false, app.logger).WithContext(goCtx)

	res, err := fn(ctx)
	if err != nil {
		return nil, err
	}

	cacheMS.Write()
	commitID := app.cms.Commit()

	app.logger.Debug("committed block", "height", commitID.Version, "hash", fmt.Sprintf("%X", commitID.Hash), "events", len(ctx.EventManager().Events()))
	return res, nil
}

// deliver executes a Msg handler in its own block.
func (app *App) deliver(goCtx context.Context, fn func(sdk.Context) (interface{}, error)) (interface{}, error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	return app.executeBlock(goCtx, fn)
}

// query runs fn against a throwaway cache of the latest committed state.
func (app *App) query(goCtx context.Context, fn func(sdk.Context) (interface{}, error)) (interface{}, error) {
	app.mu.RLock()
	defer app.mu.RUnlock()

	header := cmtproto.Header{
		ChainID: app.chainID,
		Height:  app.cms.LastCommitID().Version,
	}

	ctx := sdk.NewContext(app.cms.CacheMultiStore(), header, true, app.logger).WithContext(goCtx)
	return fn(ctx)
}
