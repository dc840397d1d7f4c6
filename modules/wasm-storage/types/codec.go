package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/msgservice"
)

const (
	// QueryServiceName is the fully qualified name of the Query service.
	QueryServiceName = "sedachain.wasm_storage.v1.Query"
	// MsgServiceName is the fully qualified name of the Msg service.
	MsgServiceName = "sedachain.wasm_storage.v1.Msg"
)

// ModuleCdc references the global wasm-storage module codec. Note, the codec
// should ONLY be used in certain instances of tests and for JSON encoding.
var ModuleCdc = codec.NewProtoCodec(codectypes.NewInterfaceRegistry())

// RegisterInterfaces registers the wasm-storage concrete message types and the
// Msg service descriptor.
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations(
		(*sdk.Msg)(nil),
		&MsgStoreDataRequestWasm{},
		&MsgStoreOverlayWasm{},
		&MsgUpdateParams{},
	)

	msgservice.RegisterMsgServiceDesc(registry, &_Msg_serviceDesc)
}
