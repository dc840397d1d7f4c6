package keeper_test

import (
	"bytes"
	"encoding/hex"
	"errors"

	"github.com/ethereum/go-ethereum/crypto"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	wasmtesting "github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/testing"
	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

func (s *KeeperTestSuite) TestStoreDataRequestWasm() {
	var (
		msg      *types.MsgStoreDataRequestWasm
		bytecode []byte
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success: data request wasm",
			func() {},
			nil,
		},
		{
			"success: tally wasm",
			func() {
				msg.WasmType = types.WasmTypeTally
			},
			nil,
		},
		{
			"failure: invalid sender address",
			func() {
				msg.Sender = "invalid"
			},
			sdkerrors.ErrInvalidAddress,
		},
		{
			"failure: empty wasm",
			func() {
				msg.Wasm = nil
			},
			types.ErrWasmEmptyCode,
		},
		{
			"failure: unspecified wasm type",
			func() {
				msg.WasmType = types.WasmTypeNil
			},
			types.ErrInvalidWasmType,
		},
		{
			"failure: overlay wasm type",
			func() {
				msg.WasmType = types.WasmTypeRelayer
			},
			types.ErrInvalidWasmType,
		},
		{
			"failure: uncompressed bytecode",
			func() {
				msg.Wasm = bytecode
			},
			types.ErrWasmInvalidCode,
		},
		{
			"failure: not a wasm binary",
			func() {
				msg.Wasm = wasmtesting.MustGzip([]byte("this is definitely not a wasm binary"))
			},
			types.ErrWasmInvalidCode,
		},
		{
			"failure: corrupted gzip stream",
			func() {
				msg.Wasm = msg.Wasm[:len(msg.Wasm)/2]
			},
			types.ErrWasmInvalidCode,
		},
		{
			"failure: bytecode larger than max wasm size",
			func() {
				s.Require().NoError(s.keeper.SetParams(s.ctx, types.NewParams(uint64(len(bytecode)-1))))
			},
			types.ErrWasmCodeTooLarge,
		},
		{
			"failure: unzipped bytecode larger than max wasm size",
			func() {
				large := append(bytes.Clone(bytecode), make([]byte, 4096)...)
				zipped := wasmtesting.MustGzip(large)
				s.Require().Less(len(zipped), 1024)

				s.Require().NoError(s.keeper.SetParams(s.ctx, types.NewParams(1024)))
				msg.Wasm = zipped
			},
			types.ErrWasmCodeTooLarge,
		},
		{
			"failure: wasm already exists",
			func() {
				_, err := s.msgServer.StoreDataRequestWasm(s.ctx, types.NewMsgStoreDataRequestWasm(wasmtesting.Sender, msg.Wasm, types.WasmTypeTally))
				s.Require().NoError(err)
			},
			types.ErrWasmAlreadyExists,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()

			bytecode = wasmtesting.Code
			msg = types.NewMsgStoreDataRequestWasm(wasmtesting.Sender, wasmtesting.MustGzip(bytecode), types.WasmTypeDataRequest)

			tc.malleate()

			res, err := s.msgServer.StoreDataRequestWasm(s.ctx, msg)

			if tc.expErr == nil {
				s.Require().NoError(err)
				s.Require().NotNil(res)

				expHash := crypto.Keccak256(bytecode)
				s.Require().Equal(hex.EncodeToString(expHash), res.Hash)

				wasm, err := s.keeper.GetDataRequestWasm(s.ctx, expHash)
				s.Require().NoError(err)
				s.Require().Equal(bytecode, wasm.Bytecode)
				s.Require().Equal(msg.WasmType, wasm.WasmType)
				s.Require().Equal(blockTime, *wasm.AddedAt)

				has, err := s.keeper.OverlayWasm.Has(s.ctx, expHash)
				s.Require().NoError(err)
				s.Require().False(has)

				s.Require().Contains(s.ctx.EventManager().Events(), sdk.NewEvent(
					types.EventTypeStoreDataRequestWasm,
					sdk.NewAttribute(types.AttributeKeyHash, res.Hash),
					sdk.NewAttribute(types.AttributeKeyWasmType, msg.WasmType.String()),
					sdk.NewAttribute(types.AttributeKeySender, msg.Sender),
				))
				s.Require().Contains(s.logger.Messages(), "stored data request wasm")
			} else {
				s.Require().ErrorIs(err, tc.expErr)
				s.Require().Nil(res)
			}
		})
	}
}

func (s *KeeperTestSuite) TestStoreOverlayWasm() {
	var msg *types.MsgStoreOverlayWasm

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success: executor wasm",
			func() {},
			nil,
		},
		{
			"success: relayer wasm",
			func() {
				msg.WasmType = types.WasmTypeRelayer
			},
			nil,
		},
		{
			"success: same bytecode already stored as data request wasm",
			func() {
				_, err := s.msgServer.StoreDataRequestWasm(s.ctx, types.NewMsgStoreDataRequestWasm(wasmtesting.Sender, msg.Wasm, types.WasmTypeDataRequest))
				s.Require().NoError(err)
			},
			nil,
		},
		{
			"failure: sender is not the authority",
			func() {
				msg.Sender = wasmtesting.Sender
			},
			sdkerrors.ErrUnauthorized,
		},
		{
			"failure: invalid sender address",
			func() {
				msg.Sender = "invalid"
			},
			sdkerrors.ErrInvalidAddress,
		},
		{
			"failure: uncompressed bytecode",
			func() {
				msg.Wasm = wasmtesting.Code
			},
			types.ErrWasmInvalidCode,
		},
		{
			"failure: data request wasm type",
			func() {
				msg.WasmType = types.WasmTypeDataRequest
			},
			types.ErrInvalidWasmType,
		},
		{
			"failure: tally wasm type",
			func() {
				msg.WasmType = types.WasmTypeTally
			},
			types.ErrInvalidWasmType,
		},
		{
			"failure: wasm already exists",
			func() {
				_, err := s.msgServer.StoreOverlayWasm(s.ctx, types.NewMsgStoreOverlayWasm(wasmtesting.Authority, msg.Wasm, types.WasmTypeRelayer))
				s.Require().NoError(err)
			},
			types.ErrWasmAlreadyExists,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()

			msg = types.NewMsgStoreOverlayWasm(wasmtesting.Authority, wasmtesting.ZippedCode, types.WasmTypeDataRequestExecutor)

			tc.malleate()

			res, err := s.msgServer.StoreOverlayWasm(s.ctx, msg)

			if tc.expErr == nil {
				s.Require().NoError(err)
				s.Require().NotNil(res)

				wasm, err := s.keeper.GetOverlayWasm(s.ctx, crypto.Keccak256(wasmtesting.Code))
				s.Require().NoError(err)
				s.Require().Equal(res.Hash, wasm.HashHex())
				s.Require().Equal(msg.WasmType, wasm.WasmType)
				s.Require().Equal(blockTime, *wasm.AddedAt)

				s.Require().Contains(s.ctx.EventManager().Events(), sdk.NewEvent(
					types.EventTypeStoreOverlayWasm,
					sdk.NewAttribute(types.AttributeKeyHash, res.Hash),
					sdk.NewAttribute(types.AttributeKeyWasmType, msg.WasmType.String()),
					sdk.NewAttribute(types.AttributeKeySender, msg.Sender),
				))
			} else {
				s.Require().ErrorIs(err, tc.expErr)
				s.Require().Nil(res)

				pairs, err := s.keeper.ListOverlayWasms(s.ctx)
				s.Require().NoError(err)
				if !errors.Is(tc.expErr, types.ErrWasmAlreadyExists) {
					s.Require().Empty(pairs)
				}
			}
		})
	}
}

func (s *KeeperTestSuite) TestUpdateParams() {
	var msg *types.MsgUpdateParams

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success",
			func() {},
			nil,
		},
		{
			"failure: sender is not the authority",
			func() {
				msg.Authority = wasmtesting.Sender
			},
			sdkerrors.ErrUnauthorized,
		},
		{
			"failure: invalid params",
			func() {
				msg.Params = types.NewParams(0)
			},
			types.ErrInvalidParams,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()

			msg = types.NewMsgUpdateParams(wasmtesting.Authority, types.NewParams(2048))

			tc.malleate()

			res, err := s.msgServer.UpdateParams(s.ctx, msg)

			params, getErr := s.keeper.GetParams(s.ctx)
			s.Require().NoError(getErr)

			if tc.expErr == nil {
				s.Require().NoError(err)
				s.Require().NotNil(res)
				s.Require().Equal(msg.Params, params)
				s.Require().Contains(s.ctx.EventManager().Events(), sdk.NewEvent(
					types.EventTypeUpdateParams,
					sdk.NewAttribute(types.AttributeKeyMaxWasmSize, "2048"),
				))
			} else {
				s.Require().ErrorIs(err, tc.expErr)
				s.Require().Nil(res)
				s.Require().Equal(types.DefaultParams(), params)
			}
		})
	}
}
