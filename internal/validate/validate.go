package validate

import (
	"encoding/hex"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// WasmHashLength is the length in bytes of a keccak256 wasm hash.
const WasmHashLength = 32

// WasmHash validates the hex encoded wasm hash of a gRPC request and returns
// its raw bytes.
func WasmHash(hash string) ([]byte, error) {
	if hash == "" {
		return nil, status.Error(codes.InvalidArgument, "wasm hash cannot be empty")
	}

	bz, err := hex.DecodeString(hash)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid wasm hash %q: %v", hash, err))
	}

	if len(bz) != WasmHashLength {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("wasm hash must be %d bytes, got %d", WasmHashLength, len(bz)))
	}

	return bz, nil
}
