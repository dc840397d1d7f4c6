package types

import errorsmod "cosmossdk.io/errors"

var (
	ErrWasmEmptyCode     = errorsmod.Register(ModuleName, 2, "empty wasm code")
	ErrWasmCodeTooLarge  = errorsmod.Register(ModuleName, 3, "wasm code too large")
	ErrWasmInvalidCode   = errorsmod.Register(ModuleName, 4, "invalid wasm code")
	ErrWasmAlreadyExists = errorsmod.Register(ModuleName, 5, "wasm already exists")
	ErrWasmNotFound      = errorsmod.Register(ModuleName, 6, "wasm not found")
	ErrInvalidWasmType   = errorsmod.Register(ModuleName, 7, "invalid wasm type")
	ErrInvalidHash       = errorsmod.Register(ModuleName, 8, "invalid wasm hash")
	ErrInvalidParams     = errorsmod.Register(ModuleName, 9, "invalid params")
	ErrInvalidGenesis    = errorsmod.Register(ModuleName, 10, "invalid genesis state")
)
