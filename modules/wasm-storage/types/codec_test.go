package types_test

import (
	"errors"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/reflect/protoreflect"

	sdk "github.com/cosmos/cosmos-sdk/types"
	gogoproto "github.com/cosmos/gogoproto/proto"

	wasmtesting "github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/testing"
	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

type protoMessage interface {
	gogoproto.Message
	Marshal() ([]byte, error)
	Unmarshal([]byte) error
	Size() int
}

func sampleWasm() types.Wasm {
	addedAt := time.Unix(1_700_000_000, 123_456_789).UTC()
	return types.Wasm{
		Hash:     []byte{0xAB, 0xCD},
		Bytecode: []byte{0x00, 0x61, 0x73, 0x6D},
		WasmType: types.WasmTypeDataRequest,
		AddedAt:  &addedAt,
	}
}

func (s *TypesTestSuite) TestCodecTypeRegistration() {
	testCases := []struct {
		name    string
		typeURL string
		expErr  error
	}{
		{
			"success: MsgStoreDataRequestWasm",
			sdk.MsgTypeURL(&types.MsgStoreDataRequestWasm{}),
			nil,
		},
		{
			"success: MsgStoreOverlayWasm",
			sdk.MsgTypeURL(&types.MsgStoreOverlayWasm{}),
			nil,
		},
		{
			"success: MsgUpdateParams",
			sdk.MsgTypeURL(&types.MsgUpdateParams{}),
			nil,
		},
		{
			"type not registered on codec",
			"/sedachain.wasm_storage.v1.MsgInvalid",
			errors.New("unable to resolve type URL"),
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			msg, err := s.cdc.InterfaceRegistry().Resolve(tc.typeURL)

			if tc.expErr == nil {
				s.Require().NotNil(msg)
				s.Require().NoError(err)
			} else {
				s.Require().Nil(msg)
				s.Require().ErrorContains(err, tc.expErr.Error())
			}
		})
	}
}

func (s *TypesTestSuite) TestServiceDescriptors() {
	for _, name := range []string{
		types.MsgServiceName,
		types.QueryServiceName,
	} {
		desc, err := gogoproto.HybridResolver.FindDescriptorByName(protoreflect.FullName(name))
		s.Require().NoError(err, name)
		_, ok := desc.(protoreflect.ServiceDescriptor)
		s.Require().True(ok, name)
	}

	msgDesc, err := gogoproto.HybridResolver.FindDescriptorByName("sedachain.wasm_storage.v1.Msg")
	s.Require().NoError(err)
	methods := msgDesc.(protoreflect.ServiceDescriptor).Methods()
	s.Require().Equal(3, methods.Len())
	s.Require().NotNil(methods.ByName("StoreDataRequestWasm"))
	s.Require().NotNil(methods.ByName("StoreOverlayWasm"))
	s.Require().NotNil(methods.ByName("UpdateParams"))

	for _, msg := range []gogoproto.Message{
		&types.MsgStoreOverlayWasm{},
		&types.Wasm{},
		&types.GenesisState{},
		&types.QueryParamsResponse{},
	} {
		_, err := gogoproto.HybridResolver.FindDescriptorByName(protoreflect.FullName(gogoproto.MessageName(msg)))
		s.Require().NoError(err, "%T", msg)
	}
}

func (s *TypesTestSuite) TestGetMsgV1Signers() {
	sender := sdk.MustAccAddressFromBech32(wasmtesting.Sender)
	authority := sdk.MustAccAddressFromBech32(wasmtesting.Authority)

	testCases := []struct {
		name     string
		msg      sdk.Msg
		expected []byte
	}{
		{
			"store data request wasm is signed by the sender",
			types.NewMsgStoreDataRequestWasm(wasmtesting.Sender, wasmtesting.ZippedCode, types.WasmTypeTally),
			sender,
		},
		{
			"store overlay wasm is signed by the sender",
			types.NewMsgStoreOverlayWasm(wasmtesting.Authority, wasmtesting.ZippedCode, types.WasmTypeRelayer),
			authority,
		},
		{
			"update params is signed by the authority",
			types.NewMsgUpdateParams(wasmtesting.Authority, types.DefaultParams()),
			authority,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			signers, _, err := s.cdc.GetMsgV1Signers(tc.msg)
			s.Require().NoError(err)
			s.Require().Equal([][]byte{tc.expected}, signers)
		})
	}

	_, _, err := s.cdc.GetMsgV1Signers(types.NewMsgStoreDataRequestWasm("seda1invalid", wasmtesting.ZippedCode, types.WasmTypeTally))
	s.Require().Error(err)
}

func (s *TypesTestSuite) TestMessageRoundTrip() {
	wasm := sampleWasm()

	testCases := []struct {
		name  string
		msg   protoMessage
		empty func() protoMessage
	}{
		{"wasm", &wasm, func() protoMessage { return &types.Wasm{} }},
		{"wasm without added_at", &types.Wasm{Hash: []byte{0xAB, 0xCD}, Bytecode: []byte{0x00, 0x61, 0x73, 0x6D}, WasmType: types.WasmTypeDataRequest}, func() protoMessage { return &types.Wasm{} }},
		{"wasm before epoch", &types.Wasm{Hash: []byte{0x01}, WasmType: types.WasmTypeRelayer, AddedAt: timePtr(time.Unix(-86_400, 5).UTC())}, func() protoMessage { return &types.Wasm{} }},
		{"params", &types.Params{MaxWasmSize: 819200}, func() protoMessage { return &types.Params{} }},
		{"genesis", &types.GenesisState{Params: types.DefaultParams(), Wasms: []types.Wasm{wasm, {Hash: []byte{0x02}, WasmType: types.WasmTypeTally}}}, func() protoMessage { return &types.GenesisState{} }},
		{"data request wasm request", &types.QueryDataRequestWasmRequest{Hash: "abcd"}, func() protoMessage { return &types.QueryDataRequestWasmRequest{} }},
		{"data request wasm response", &types.QueryDataRequestWasmResponse{Wasm: &wasm}, func() protoMessage { return &types.QueryDataRequestWasmResponse{} }},
		{"data request wasms response", &types.QueryDataRequestWasmsResponse{HashTypePairs: []string{"abcd,WASM_TYPE_TALLY", "", "ef01,WASM_TYPE_DATA_REQUEST"}}, func() protoMessage { return &types.QueryDataRequestWasmsResponse{} }},
		{"overlay wasm response", &types.QueryOverlayWasmResponse{Wasm: &wasm}, func() protoMessage { return &types.QueryOverlayWasmResponse{} }},
		{"params response", &types.QueryParamsResponse{Params: types.DefaultParams()}, func() protoMessage { return &types.QueryParamsResponse{} }},
		{"store data request wasm", types.NewMsgStoreDataRequestWasm(wasmtesting.Sender, wasmtesting.ZippedCode, types.WasmTypeTally), func() protoMessage { return &types.MsgStoreDataRequestWasm{} }},
		{"store overlay wasm", types.NewMsgStoreOverlayWasm(wasmtesting.Authority, wasmtesting.ZippedCode, types.WasmTypeRelayer), func() protoMessage { return &types.MsgStoreOverlayWasm{} }},
		{"store overlay wasm response", &types.MsgStoreOverlayWasmResponse{Hash: "abcd"}, func() protoMessage { return &types.MsgStoreOverlayWasmResponse{} }},
		{"update params", types.NewMsgUpdateParams(wasmtesting.Authority, types.NewParams(1024)), func() protoMessage { return &types.MsgUpdateParams{} }},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			bz, err := tc.msg.Marshal()
			s.Require().NoError(err)
			s.Require().Len(bz, tc.msg.Size())

			decoded := tc.empty()
			s.Require().NoError(decoded.Unmarshal(bz))
			s.Require().Equal(tc.msg, decoded)

			cdcBz, err := s.cdc.Marshal(tc.msg)
			s.Require().NoError(err)
			s.Require().Equal(bz, cdcBz)
		})
	}
}

func (s *TypesTestSuite) TestExampleWasmEncoding() {
	wasm := types.Wasm{
		Hash:     []byte{0xAB, 0xCD},
		Bytecode: []byte{0x00, 0x61, 0x73, 0x6D},
		WasmType: types.WasmTypeDataRequest,
	}

	bz, err := wasm.Marshal()
	s.Require().NoError(err)
	s.Require().Equal([]byte{
		0x0A, 0x02, 0xAB, 0xCD,
		0x12, 0x04, 0x00, 0x61, 0x73, 0x6D,
		0x18, 0x01,
	}, bz)

	var decoded types.Wasm
	s.Require().NoError(decoded.Unmarshal(bz))
	s.Require().Equal(wasm, decoded)
	s.Require().Nil(decoded.AddedAt)
}

func (s *TypesTestSuite) TestUnknownFieldsAreSkipped() {
	wasm := sampleWasm()
	bz, err := wasm.Marshal()
	s.Require().NoError(err)

	// one unknown field of every wire type
	bz = protowire.AppendTag(bz, 15, protowire.VarintType)
	bz = protowire.AppendVarint(bz, 300)
	bz = protowire.AppendTag(bz, 16, protowire.Fixed32Type)
	bz = protowire.AppendFixed32(bz, 7)
	bz = protowire.AppendTag(bz, 17, protowire.Fixed64Type)
	bz = protowire.AppendFixed64(bz, 7)
	bz = protowire.AppendTag(bz, 18, protowire.BytesType)
	bz = protowire.AppendBytes(bz, []byte("future"))
	bz = protowire.AppendTag(bz, 19, protowire.StartGroupType)
	bz = protowire.AppendTag(bz, 1, protowire.VarintType)
	bz = protowire.AppendVarint(bz, 1)
	bz = protowire.AppendTag(bz, 19, protowire.EndGroupType)

	var decoded types.Wasm
	s.Require().NoError(decoded.Unmarshal(bz))
	s.Require().Equal(wasm, decoded)
}

func (s *TypesTestSuite) TestMalformedInput() {
	wasm := sampleWasm()
	bz, err := wasm.Marshal()
	s.Require().NoError(err)

	testCases := []struct {
		name string
		bz   []byte
	}{
		{"truncated", bz[:len(bz)-1]},
		{"truncated length prefix", []byte{0x0A, 0x05, 0x01}},
		{"invalid varint", []byte{0x18, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{"wrong wire type", []byte{0x08, 0x01}},
		{"field number zero", []byte{0x00, 0x01}},
		{"invalid timestamp", protowire.AppendBytes(protowire.AppendTag(nil, 4, protowire.BytesType), []byte{0x10, 0x80, 0x94, 0xEB, 0xDC, 0x03})},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			var decoded types.Wasm
			s.Require().Error(decoded.Unmarshal(tc.bz))
		})
	}
}

func (s *TypesTestSuite) TestGenesisJSON() {
	wasm := types.NewWasm(wasmtesting.Code, types.WasmTypeTally, time.Unix(1_700_000_000, 0).UTC())
	wasm.AddedAt = nil
	genesis := types.NewGenesisState(types.DefaultParams(), []types.Wasm{wasm})

	bz, err := s.cdc.MarshalJSON(genesis)
	s.Require().NoError(err)
	s.Require().Contains(string(bz), `"max_wasm_size":"819200"`)
	s.Require().Contains(string(bz), `"wasm_type":"WASM_TYPE_TALLY"`)

	var decoded types.GenesisState
	s.Require().NoError(s.cdc.UnmarshalJSON(bz, &decoded))
	s.Require().Equal(*genesis, decoded)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
