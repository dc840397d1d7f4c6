package types

import (
	"slices"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var (
	_ sdk.Msg              = (*MsgStoreDataRequestWasm)(nil)
	_ sdk.Msg              = (*MsgStoreOverlayWasm)(nil)
	_ sdk.Msg              = (*MsgUpdateParams)(nil)
	_ sdk.HasValidateBasic = (*MsgStoreDataRequestWasm)(nil)
	_ sdk.HasValidateBasic = (*MsgStoreOverlayWasm)(nil)
	_ sdk.HasValidateBasic = (*MsgUpdateParams)(nil)
)

// NewMsgStoreDataRequestWasm creates a new MsgStoreDataRequestWasm instance
func NewMsgStoreDataRequestWasm(sender string, wasm []byte, wasmType WasmType) *MsgStoreDataRequestWasm {
	return &MsgStoreDataRequestWasm{
		Sender:   sender,
		Wasm:     wasm,
		WasmType: wasmType,
	}
}

// ValidateBasic implements sdk.Msg
func (m MsgStoreDataRequestWasm) ValidateBasic() error {
	return validateStoreWasm(m.Sender, m.Wasm, m.WasmType, DataRequestWasmTypes)
}

// NewMsgStoreOverlayWasm creates a new MsgStoreOverlayWasm instance
func NewMsgStoreOverlayWasm(sender string, wasm []byte, wasmType WasmType) *MsgStoreOverlayWasm {
	return &MsgStoreOverlayWasm{
		Sender:   sender,
		Wasm:     wasm,
		WasmType: wasmType,
	}
}

// ValidateBasic implements sdk.Msg
func (m MsgStoreOverlayWasm) ValidateBasic() error {
	return validateStoreWasm(m.Sender, m.Wasm, m.WasmType, OverlayWasmTypes)
}

// NewMsgUpdateParams creates a new MsgUpdateParams instance
func NewMsgUpdateParams(authority string, params Params) *MsgUpdateParams {
	return &MsgUpdateParams{
		Authority: authority,
		Params:    params,
	}
}

// ValidateBasic implements sdk.Msg
func (m MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Authority); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "string could not be parsed as address: %v", err)
	}

	return m.Params.Validate()
}

func validateStoreWasm(sender string, wasm []byte, wasmType WasmType, allowed []WasmType) error {
	if _, err := sdk.AccAddressFromBech32(sender); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "string could not be parsed as address: %v", err)
	}

	if len(wasm) == 0 {
		return ErrWasmEmptyCode
	}

	if !slices.Contains(allowed, wasmType) {
		return errorsmod.Wrapf(ErrInvalidWasmType, "%s is not one of %v", wasmType, allowed)
	}

	return nil
}
