package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the wasm-storage module name
	ModuleName = "wasm-storage"

	// StoreKey is the store key string for wasm-storage
	StoreKey = ModuleName

	// RouterKey is the message route for wasm-storage
	RouterKey = ModuleName

	// QuerierRoute is the querier route for wasm-storage
	QuerierRoute = ModuleName
)

var (
	// DataRequestWasmPrefix is the prefix under which data request and tally
	// wasms are stored, keyed by hash.
	DataRequestWasmPrefix = collections.NewPrefix(0)
	// OverlayWasmPrefix is the prefix under which executor and relayer wasms
	// are stored, keyed by hash.
	OverlayWasmPrefix = collections.NewPrefix(1)
	// ParamsPrefix is the prefix of the module parameters item.
	ParamsPrefix = collections.NewPrefix(2)
)
