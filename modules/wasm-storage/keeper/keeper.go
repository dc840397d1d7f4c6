package keeper

import (
	"context"
	"errors"
	"strings"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

// Keeper defines the wasm-storage keeper
type Keeper struct {
	cdc codec.BinaryCodec

	// the address capable of storing overlay wasms and executing a
	// MsgUpdateParams message. Typically, this should be the x/gov module account.
	authority string

	// state management
	Schema collections.Schema
	// DataRequestWasm is a map of hash to data request and tally wasms.
	DataRequestWasm collections.Map[[]byte, types.Wasm]
	// OverlayWasm is a map of hash to executor and relayer wasms.
	OverlayWasm collections.Map[[]byte, types.Wasm]
	// Params holds the module parameters.
	Params collections.Item[types.Params]
}

// NewKeeper creates a new Keeper instance
func NewKeeper(cdc codec.BinaryCodec, storeService store.KVStoreService, authority string) Keeper {
	if strings.TrimSpace(authority) == "" {
		panic(errors.New("authority must be non-empty"))
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		cdc:             cdc,
		authority:       authority,
		DataRequestWasm: collections.NewMap(sb, types.DataRequestWasmPrefix, "data_request_wasm", collections.BytesKey, codec.CollValue[types.Wasm](cdc)),
		OverlayWasm:     collections.NewMap(sb, types.OverlayWasmPrefix, "overlay_wasm", collections.BytesKey, codec.CollValue[types.Wasm](cdc)),
		Params:          collections.NewItem(sb, types.ParamsPrefix, "params", codec.CollValue[types.Params](cdc)),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}

	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// GetParams returns the current module parameters.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	return k.Params.Get(ctx)
}

// SetParams validates and stores the module parameters.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	return k.Params.Set(ctx, params)
}

// GetDataRequestWasm returns the data request wasm with the given hash.
func (k Keeper) GetDataRequestWasm(ctx context.Context, hash []byte) (types.Wasm, error) {
	return getWasm(ctx, k.DataRequestWasm, hash)
}

// GetOverlayWasm returns the overlay wasm with the given hash.
func (k Keeper) GetOverlayWasm(ctx context.Context, hash []byte) (types.Wasm, error) {
	return getWasm(ctx, k.OverlayWasm, hash)
}

func getWasm(ctx context.Context, registry collections.Map[[]byte, types.Wasm], hash []byte) (types.Wasm, error) {
	wasm, err := registry.Get(ctx, hash)
	if errors.Is(err, collections.ErrNotFound) {
		return types.Wasm{}, errorsmod.Wrapf(types.ErrWasmNotFound, "hash %x", hash)
	}
	return wasm, err
}

// ListDataRequestWasms returns "<hash>,<type>" pairs of all data request
// wasms, ordered by hash.
func (k Keeper) ListDataRequestWasms(ctx context.Context) ([]string, error) {
	return listHashTypePairs(ctx, k.DataRequestWasm)
}

// ListOverlayWasms returns "<hash>,<type>" pairs of all overlay wasms, ordered
// by hash.
func (k Keeper) ListOverlayWasms(ctx context.Context) ([]string, error) {
	return listHashTypePairs(ctx, k.OverlayWasm)
}

func listHashTypePairs(ctx context.Context, registry collections.Map[[]byte, types.Wasm]) ([]string, error) {
	pairs := []string{}
	err := registry.Walk(ctx, nil, func(_ []byte, wasm types.Wasm) (bool, error) {
		pairs = append(pairs, wasm.HashTypePair())
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return pairs, nil
}

// GetAllWasms returns all stored wasms, data request wasms first.
func (k Keeper) GetAllWasms(ctx context.Context) ([]types.Wasm, error) {
	wasms := []types.Wasm{}
	for _, registry := range []collections.Map[[]byte, types.Wasm]{k.DataRequestWasm, k.OverlayWasm} {
		err := registry.Walk(ctx, nil, func(_ []byte, wasm types.Wasm) (bool, error) {
			wasms = append(wasms, wasm)
			return false, nil
		})
		if err != nil {
			return nil, err
		}
	}
	return wasms, nil
}

// storeWasm unzips and validates the bytecode, then stores it in the given
// registry under its hash. The block time is recorded as the time it was
// added.
func (k Keeper) storeWasm(ctx sdk.Context, registry collections.Map[[]byte, types.Wasm], code []byte, wasmType types.WasmType) (types.Wasm, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return types.Wasm{}, err
	}

	bytecode, err := types.UnzipWasm(code, params.MaxWasmSize)
	if err != nil {
		return types.Wasm{}, err
	}

	if err := types.ValidateWasmCode(bytecode, params.MaxWasmSize); err != nil {
		return types.Wasm{}, err
	}

	wasm := types.NewWasm(bytecode, wasmType, ctx.BlockTime().UTC())
	exists, err := registry.Has(ctx, wasm.Hash)
	if err != nil {
		return types.Wasm{}, err
	}
	if exists {
		return types.Wasm{}, errorsmod.Wrapf(types.ErrWasmAlreadyExists, "wasm type: [%s] hash: [%s]", wasm.WasmType, wasm.HashHex())
	}

	if err := registry.Set(ctx, wasm.Hash, wasm); err != nil {
		return types.Wasm{}, err
	}

	return wasm, nil
}
