package types

// wasm-storage events
const (
	EventTypeStoreDataRequestWasm = "store_data_request_wasm"
	EventTypeStoreOverlayWasm     = "store_overlay_wasm"
	EventTypeUpdateParams         = "update_params"

	AttributeKeyHash        = "hash"
	AttributeKeyWasmType    = "wasm_type"
	AttributeKeySender      = "sender"
	AttributeKeyMaxWasmSize = "max_wasm_size"

	AttributeValueCategory = ModuleName
)
