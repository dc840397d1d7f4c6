package testing

import (
	"github.com/CosmWasm/wasmd/x/wasm/ioutils"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

var (
	// WasmMagicNumber is the prefix of every wasm binary.
	WasmMagicNumber = []byte("\x00\x61\x73\x6D")
	// Code is a minimal bytecode accepted by the wasm-storage validation.
	Code = []byte("\x00\x61\x73\x6D0123456780123456780123456780")
	// AltCode is a second valid bytecode with a different hash than Code.
	AltCode = []byte("\x00\x61\x73\x6D9876543219876543219876543219")

	// ZippedCode and ZippedAltCode are the upload forms of Code and AltCode.
	ZippedCode    = MustGzip(Code)
	ZippedAltCode = MustGzip(AltCode)

	// Authority is the default authority of the wasm-storage keeper in tests.
	Authority = sdk.AccAddress(address.Module("gov")).String()
	// Sender is a regular account address used as transaction sender.
	Sender = sdk.AccAddress([]byte("wasm-storage-sender_")).String()
)

// MustGzip compresses code and panics on failure.
func MustGzip(code []byte) []byte {
	zipped, err := ioutils.GzipIt(code)
	if err != nil {
		panic(err)
	}
	return zipped
}
