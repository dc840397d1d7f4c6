package types

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
)

var (
	// DataRequestWasmTypes are the wasm types stored in the data request
	// registry.
	DataRequestWasmTypes = []WasmType{WasmTypeDataRequest, WasmTypeTally}
	// OverlayWasmTypes are the wasm types stored in the overlay registry.
	OverlayWasmTypes = []WasmType{WasmTypeDataRequestExecutor, WasmTypeRelayer}
)

// NewWasm constructs a new Wasm object given bytecode and Wasm type. Its hash
// is the keccak256 digest of the bytecode.
func NewWasm(bytecode []byte, wasmType WasmType, addedAt time.Time) Wasm {
	return Wasm{
		Hash:     crypto.Keccak256(bytecode),
		Bytecode: bytecode,
		WasmType: wasmType,
		AddedAt:  &addedAt,
	}
}

// HashHex returns the hex encoding of the wasm hash.
func (m Wasm) HashHex() string {
	return hex.EncodeToString(m.Hash)
}

// HashTypePair renders the wasm as "<hex hash>,<WASM_TYPE_NAME>".
func (m Wasm) HashTypePair() string {
	return fmt.Sprintf("%s,%s", m.HashHex(), m.WasmType)
}

// IsDataRequestType reports whether the type is stored in the data request
// registry.
func (x WasmType) IsDataRequestType() bool {
	return x == WasmTypeDataRequest || x == WasmTypeTally
}

// IsOverlayType reports whether the type is stored in the overlay registry.
func (x WasmType) IsOverlayType() bool {
	return x == WasmTypeDataRequestExecutor || x == WasmTypeRelayer
}

// AsStrName returns the protobuf name of the enum value, e.g.
// "WASM_TYPE_TALLY".
func (x WasmType) AsStrName() string {
	return x.String()
}

// WasmTypeFromStrName parses a protobuf enum value name. The boolean is false
// when the name is unknown.
func WasmTypeFromStrName(name string) (WasmType, bool) {
	v, ok := WasmType_value[name]
	return WasmType(v), ok
}

// WasmTypeFromString parses the CLI spelling of a wasm type, e.g.
// "data-request" or "relayer". Protobuf names are accepted as well.
// WasmTypeNil is returned for anything else.
func WasmTypeFromString(s string) WasmType {
	switch strings.ToUpper(s) {
	case "DATA-REQUEST":
		return WasmTypeDataRequest
	case "TALLY":
		return WasmTypeTally
	case "DATA-REQUEST-EXECUTOR":
		return WasmTypeDataRequestExecutor
	case "RELAYER":
		return WasmTypeRelayer
	}
	if wasmType, ok := WasmTypeFromStrName(strings.ToUpper(s)); ok {
		return wasmType
	}
	return WasmTypeNil
}
