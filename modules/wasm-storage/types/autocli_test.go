package types_test

import (
	"google.golang.org/protobuf/reflect/protoreflect"

	autocliv1 "cosmossdk.io/api/cosmos/autocli/v1"

	gogoproto "github.com/cosmos/gogoproto/proto"

	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

func (s *TypesTestSuite) TestAutoCLIOptions() {
	opts := types.AutoCLIOptions()
	s.Require().NotNil(opts.Query)
	s.Require().NotNil(opts.Tx)
	s.Require().Equal(types.QueryServiceName, opts.Query.Service)
	s.Require().Equal(types.MsgServiceName, opts.Tx.Service)

	for _, service := range []*autocliv1.ServiceCommandDescriptor{opts.Query, opts.Tx} {
		desc, err := gogoproto.HybridResolver.FindDescriptorByName(protoreflect.FullName(service.Service))
		s.Require().NoError(err)
		methods := desc.(protoreflect.ServiceDescriptor).Methods()

		for _, rpc := range service.RpcCommandOptions {
			method := methods.ByName(protoreflect.Name(rpc.RpcMethod))
			s.Require().NotNil(method, "%s/%s", service.Service, rpc.RpcMethod)

			for _, arg := range rpc.PositionalArgs {
				s.Require().NotNil(method.Input().Fields().ByName(protoreflect.Name(arg.ProtoField)), "%s field %s", rpc.RpcMethod, arg.ProtoField)
			}
		}
	}

	// every query has a command
	s.Require().Len(opts.Query.RpcCommandOptions, 5)
}
