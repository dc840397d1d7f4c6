package types

import (
	"bytes"

	"github.com/CosmWasm/wasmd/x/wasm/ioutils"
	"github.com/ethereum/go-ethereum/crypto"

	errorsmod "cosmossdk.io/errors"
)

// MinWasmSize is the realistic minimum size of wasm bytecode.
const MinWasmSize = 20

// ValidateWasmCode validates that the size of the wasm code is in the allowed
// range and that the contents are of a wasm binary.
func ValidateWasmCode(code []byte, maxSize uint64) error {
	if len(code) == 0 {
		return ErrWasmEmptyCode
	}
	if uint64(len(code)) > maxSize {
		return errorsmod.Wrapf(ErrWasmCodeTooLarge, "%d bytes exceeds the maximum of %d", len(code), maxSize)
	}
	if len(code) < MinWasmSize {
		return errorsmod.Wrapf(ErrWasmInvalidCode, "wasm code must be at least %d bytes", MinWasmSize)
	}
	if !ioutils.IsWasm(code) {
		return errorsmod.Wrap(ErrWasmInvalidCode, "missing wasm magic number")
	}
	return nil
}

// ValidateWasmHash checks that the hash is the keccak256 digest of the
// bytecode.
func ValidateWasmHash(wasm Wasm) error {
	expected := crypto.Keccak256(wasm.Bytecode)
	if !bytes.Equal(expected, wasm.Hash) {
		return errorsmod.Wrapf(ErrInvalidHash, "expected %x, got %x", expected, wasm.Hash)
	}
	return nil
}
