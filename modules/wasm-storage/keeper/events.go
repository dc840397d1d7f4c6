package keeper

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

// emitStoreWasmEvent emits a store wasm event of the given type
func emitStoreWasmEvent(ctx sdk.Context, eventType string, wasm types.Wasm, sender string) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyHash, wasm.HashHex()),
			sdk.NewAttribute(types.AttributeKeyWasmType, wasm.WasmType.String()),
			sdk.NewAttribute(types.AttributeKeySender, sender),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}

// emitUpdateParamsEvent emits an update params event
func emitUpdateParamsEvent(ctx sdk.Context, params types.Params) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeUpdateParams,
			sdk.NewAttribute(types.AttributeKeyMaxWasmSize, strconv.FormatUint(params.MaxWasmSize, 10)),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}
