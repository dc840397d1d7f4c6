package types_test

import (
	"testing"

	testifysuite "github.com/stretchr/testify/suite"

	"cosmossdk.io/x/tx/signing"

	"github.com/cosmos/cosmos-sdk/codec"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	gogoproto "github.com/cosmos/gogoproto/proto"

	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

type TypesTestSuite struct {
	testifysuite.Suite

	cdc *codec.ProtoCodec
}

func (s *TypesTestSuite) SetupTest() {
	registry, err := codectypes.NewInterfaceRegistryWithOptions(codectypes.InterfaceRegistryOptions{
		ProtoFiles: gogoproto.HybridResolver,
		SigningOptions: signing.Options{
			AddressCodec:          addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
			ValidatorAddressCodec: addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32ValidatorAddrPrefix()),
		},
	})
	s.Require().NoError(err)

	types.RegisterInterfaces(registry)
	s.cdc = codec.NewProtoCodec(registry)
}

func TestTypesTestSuite(t *testing.T) {
	testifysuite.Run(t, new(TypesTestSuite))
}
