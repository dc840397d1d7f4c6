package types_test

import (
	"bytes"

	wasmtesting "github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/testing"
	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

func (s *TypesTestSuite) TestUnzipWasm() {
	bomb := wasmtesting.MustGzip(bytes.Repeat([]byte{0}, 64*1024))

	testCases := []struct {
		name    string
		code    []byte
		maxSize uint64
		expCode []byte
		expErr  error
	}{
		{
			"success",
			wasmtesting.ZippedCode,
			types.DefaultMaxWasmSize,
			wasmtesting.Code,
			nil,
		},
		{
			"success: alternative code",
			wasmtesting.ZippedAltCode,
			types.DefaultMaxWasmSize,
			wasmtesting.AltCode,
			nil,
		},
		{
			"failure: uncompressed bytecode",
			wasmtesting.Code,
			types.DefaultMaxWasmSize,
			nil,
			types.ErrWasmInvalidCode,
		},
		{
			"failure: empty",
			nil,
			types.DefaultMaxWasmSize,
			nil,
			types.ErrWasmInvalidCode,
		},
		{
			"failure: compressed size exceeds maximum",
			bomb,
			uint64(len(bomb) - 1),
			nil,
			types.ErrWasmCodeTooLarge,
		},
		{
			"failure: unpacked size exceeds maximum",
			bomb,
			1024,
			nil,
			types.ErrWasmCodeTooLarge,
		},
		{
			"failure: truncated gzip stream",
			wasmtesting.ZippedCode[:len(wasmtesting.ZippedCode)-6],
			types.DefaultMaxWasmSize,
			nil,
			types.ErrWasmInvalidCode,
		},
		{
			"failure: corrupted header",
			[]byte("\x1F\x8B\x08corrupted"),
			types.DefaultMaxWasmSize,
			nil,
			types.ErrWasmInvalidCode,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			code, err := types.UnzipWasm(tc.code, tc.maxSize)
			if tc.expErr == nil {
				s.Require().NoError(err)
				s.Require().Equal(tc.expCode, code)
			} else {
				s.Require().ErrorIs(err, tc.expErr)
				s.Require().Nil(code)
			}
		})
	}
}
