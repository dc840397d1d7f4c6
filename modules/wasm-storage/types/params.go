package types

import errorsmod "cosmossdk.io/errors"

// DefaultMaxWasmSize is the default maximum size of wasm bytecode.
const DefaultMaxWasmSize uint64 = 800 * 1024

// NewParams creates a new Params instance.
func NewParams(maxWasmSize uint64) Params {
	return Params{
		MaxWasmSize: maxWasmSize,
	}
}

// DefaultParams returns default wasm-storage parameters.
func DefaultParams() Params {
	return NewParams(DefaultMaxWasmSize)
}

// Validate performs basic validation of the parameters.
func (p Params) Validate() error {
	if p.MaxWasmSize == 0 {
		return errorsmod.Wrap(ErrInvalidParams, "max wasm size must be positive")
	}
	return nil
}
