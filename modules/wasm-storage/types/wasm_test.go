package types_test

import (
	"encoding/hex"
	"time"

	"github.com/ethereum/go-ethereum/crypto"

	wasmtesting "github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/testing"
	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

func (s *TypesTestSuite) TestNewWasm() {
	addedAt := time.Unix(1_700_000_000, 0).UTC()
	wasm := types.NewWasm(wasmtesting.Code, types.WasmTypeTally, addedAt)

	s.Require().Equal(crypto.Keccak256(wasmtesting.Code), wasm.Hash)
	s.Require().Equal(wasmtesting.Code, wasm.Bytecode)
	s.Require().Equal(types.WasmTypeTally, wasm.WasmType)
	s.Require().Equal(addedAt, *wasm.AddedAt)
	s.Require().Equal(hex.EncodeToString(wasm.Hash)+",WASM_TYPE_TALLY", wasm.HashTypePair())
	s.Require().NoError(types.ValidateWasmHash(wasm))

	wasm.Hash = []byte{0x01}
	s.Require().ErrorIs(types.ValidateWasmHash(wasm), types.ErrInvalidHash)
}

func (s *TypesTestSuite) TestWasmTypeStrName() {
	for value := range types.WasmType_name {
		wasmType := types.WasmType(value)
		parsed, ok := types.WasmTypeFromStrName(wasmType.AsStrName())
		s.Require().True(ok)
		s.Require().Equal(wasmType, parsed)
	}

	_, ok := types.WasmTypeFromStrName("bogus")
	s.Require().False(ok)

	s.Require().Equal("WASM_TYPE_DATA_REQUEST_EXECUTOR", types.WasmTypeDataRequestExecutor.String())
	s.Require().Equal("7", types.WasmType(7).String())
}

func (s *TypesTestSuite) TestWasmTypeFromString() {
	testCases := []struct {
		input    string
		expected types.WasmType
	}{
		{"data-request", types.WasmTypeDataRequest},
		{"TALLY", types.WasmTypeTally},
		{"data-request-executor", types.WasmTypeDataRequestExecutor},
		{"relayer", types.WasmTypeRelayer},
		{"WASM_TYPE_RELAYER", types.WasmTypeRelayer},
		{"wasm_type_tally", types.WasmTypeTally},
		{"executor", types.WasmTypeNil},
		{"", types.WasmTypeNil},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			s.Require().Equal(tc.expected, types.WasmTypeFromString(tc.input))
		})
	}
}

func (s *TypesTestSuite) TestWasmTypeFamilies() {
	s.Require().True(types.WasmTypeDataRequest.IsDataRequestType())
	s.Require().True(types.WasmTypeTally.IsDataRequestType())
	s.Require().False(types.WasmTypeRelayer.IsDataRequestType())
	s.Require().True(types.WasmTypeDataRequestExecutor.IsOverlayType())
	s.Require().True(types.WasmTypeRelayer.IsOverlayType())
	s.Require().False(types.WasmTypeNil.IsOverlayType())
	s.Require().False(types.WasmTypeNil.IsDataRequestType())
}

func (s *TypesTestSuite) TestValidateWasmCode() {
	testCases := []struct {
		name    string
		code    []byte
		maxSize uint64
		expErr  error
	}{
		{"success", wasmtesting.Code, types.DefaultMaxWasmSize, nil},
		{"failure: empty", nil, types.DefaultMaxWasmSize, types.ErrWasmEmptyCode},
		{"failure: too large", wasmtesting.Code, uint64(len(wasmtesting.Code) - 1), types.ErrWasmCodeTooLarge},
		{"failure: too small", wasmtesting.WasmMagicNumber, types.DefaultMaxWasmSize, types.ErrWasmInvalidCode},
		{"failure: not wasm", []byte("this is definitely not a wasm binary"), types.DefaultMaxWasmSize, types.ErrWasmInvalidCode},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := types.ValidateWasmCode(tc.code, tc.maxSize)
			if tc.expErr == nil {
				s.Require().NoError(err)
			} else {
				s.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (s *TypesTestSuite) TestParamsValidate() {
	s.Require().NoError(types.DefaultParams().Validate())
	s.Require().Equal(uint64(800*1024), types.DefaultParams().MaxWasmSize)
	s.Require().ErrorIs(types.NewParams(0).Validate(), types.ErrInvalidParams)
}
