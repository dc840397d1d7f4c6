package types_test

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	wasmtesting "github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/testing"
	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

func (s *TypesTestSuite) TestMsgStoreDataRequestWasmValidateBasic() {
	testCases := []struct {
		name   string
		msg    *types.MsgStoreDataRequestWasm
		expErr error
	}{
		{
			"success: data request",
			types.NewMsgStoreDataRequestWasm(wasmtesting.Sender, wasmtesting.ZippedCode, types.WasmTypeDataRequest),
			nil,
		},
		{
			"success: tally",
			types.NewMsgStoreDataRequestWasm(wasmtesting.Sender, wasmtesting.ZippedCode, types.WasmTypeTally),
			nil,
		},
		{
			"failure: invalid sender",
			types.NewMsgStoreDataRequestWasm("seda1invalid", wasmtesting.ZippedCode, types.WasmTypeDataRequest),
			sdkerrors.ErrInvalidAddress,
		},
		{
			"failure: empty wasm",
			types.NewMsgStoreDataRequestWasm(wasmtesting.Sender, nil, types.WasmTypeDataRequest),
			types.ErrWasmEmptyCode,
		},
		{
			"failure: overlay type",
			types.NewMsgStoreDataRequestWasm(wasmtesting.Sender, wasmtesting.ZippedCode, types.WasmTypeRelayer),
			types.ErrInvalidWasmType,
		},
		{
			"failure: unspecified type",
			types.NewMsgStoreDataRequestWasm(wasmtesting.Sender, wasmtesting.ZippedCode, types.WasmTypeNil),
			types.ErrInvalidWasmType,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.msg.ValidateBasic()
			if tc.expErr == nil {
				s.Require().NoError(err)
			} else {
				s.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (s *TypesTestSuite) TestMsgStoreOverlayWasmValidateBasic() {
	testCases := []struct {
		name   string
		msg    *types.MsgStoreOverlayWasm
		expErr error
	}{
		{
			"success: executor",
			types.NewMsgStoreOverlayWasm(wasmtesting.Authority, wasmtesting.ZippedCode, types.WasmTypeDataRequestExecutor),
			nil,
		},
		{
			"success: relayer",
			types.NewMsgStoreOverlayWasm(wasmtesting.Authority, wasmtesting.ZippedCode, types.WasmTypeRelayer),
			nil,
		},
		{
			"failure: empty sender",
			types.NewMsgStoreOverlayWasm("", wasmtesting.ZippedCode, types.WasmTypeRelayer),
			sdkerrors.ErrInvalidAddress,
		},
		{
			"failure: empty wasm",
			types.NewMsgStoreOverlayWasm(wasmtesting.Authority, []byte{}, types.WasmTypeRelayer),
			types.ErrWasmEmptyCode,
		},
		{
			"failure: data request type",
			types.NewMsgStoreOverlayWasm(wasmtesting.Authority, wasmtesting.ZippedCode, types.WasmTypeTally),
			types.ErrInvalidWasmType,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.msg.ValidateBasic()
			if tc.expErr == nil {
				s.Require().NoError(err)
			} else {
				s.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (s *TypesTestSuite) TestMsgUpdateParamsValidateBasic() {
	testCases := []struct {
		name   string
		msg    *types.MsgUpdateParams
		expErr error
	}{
		{
			"success",
			types.NewMsgUpdateParams(wasmtesting.Authority, types.DefaultParams()),
			nil,
		},
		{
			"failure: invalid authority",
			types.NewMsgUpdateParams("authority", types.DefaultParams()),
			sdkerrors.ErrInvalidAddress,
		},
		{
			"failure: zero max wasm size",
			types.NewMsgUpdateParams(wasmtesting.Authority, types.NewParams(0)),
			types.ErrInvalidParams,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.msg.ValidateBasic()
			if tc.expErr == nil {
				s.Require().NoError(err)
			} else {
				s.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}
