package types

import (
	"errors"

	"github.com/CosmWasm/wasmd/x/wasm/ioutils"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"

	errorsmod "cosmossdk.io/errors"
)

// UnzipWasm unpacks gzip compressed wasm bytecode. Uncompressed input is
// rejected and the unpacked output is bounded by maxSize.
func UnzipWasm(code []byte, maxSize uint64) ([]byte, error) {
	if !ioutils.IsGzip(code) {
		return nil, errorsmod.Wrap(ErrWasmInvalidCode, "wasm is not gzip compressed")
	}
	if uint64(len(code)) > maxSize {
		return nil, errorsmod.Wrapf(ErrWasmCodeTooLarge, "%d bytes exceeds the maximum of %d", len(code), maxSize)
	}

	bytecode, err := ioutils.Uncompress(code, int64(maxSize))
	switch {
	case errors.Is(err, wasmtypes.ErrLimit):
		return nil, errorsmod.Wrapf(ErrWasmCodeTooLarge, "unpacked wasm exceeds the maximum of %d bytes", maxSize)
	case err != nil:
		return nil, errorsmod.Wrap(ErrWasmInvalidCode, err.Error())
	}
	return bytecode, nil
}
