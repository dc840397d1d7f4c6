package keeper_test

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	wasmtesting "github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/testing"
	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

func (s *KeeperTestSuite) TestQueryDataRequestWasm() {
	var (
		req      *types.QueryDataRequestWasmRequest
		expected types.Wasm
	)

	testCases := []struct {
		name     string
		malleate func()
		expCode  codes.Code
	}{
		{
			"success",
			func() {
				expected = s.storeDataRequestWasm(wasmtesting.Code, types.WasmTypeDataRequest)
				req = &types.QueryDataRequestWasmRequest{Hash: expected.HashHex()}
			},
			codes.OK,
		},
		{
			"success: upper case hex",
			func() {
				expected = s.storeDataRequestWasm(wasmtesting.Code, types.WasmTypeTally)
				req = &types.QueryDataRequestWasmRequest{Hash: strings.ToUpper(expected.HashHex())}
			},
			codes.OK,
		},
		{
			"failure: wasm not found",
			func() {
				req = &types.QueryDataRequestWasmRequest{Hash: hex.EncodeToString(crypto.Keccak256(wasmtesting.Code))}
			},
			codes.NotFound,
		},
		{
			"failure: stored as overlay wasm only",
			func() {
				wasm := s.storeOverlayWasm(wasmtesting.Code, types.WasmTypeRelayer)
				req = &types.QueryDataRequestWasmRequest{Hash: wasm.HashHex()}
			},
			codes.NotFound,
		},
		{
			"failure: empty hash",
			func() {
				req = &types.QueryDataRequestWasmRequest{}
			},
			codes.InvalidArgument,
		},
		{
			"failure: hash is not hex",
			func() {
				req = &types.QueryDataRequestWasmRequest{Hash: "not-a-hash"}
			},
			codes.InvalidArgument,
		},
		{
			"failure: hash has wrong length",
			func() {
				req = &types.QueryDataRequestWasmRequest{Hash: "abcd"}
			},
			codes.InvalidArgument,
		},
		{
			"failure: nil request",
			func() {
				req = nil
			},
			codes.InvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()

			tc.malleate()

			res, err := s.querier.DataRequestWasm(s.ctx, req)

			if tc.expCode == codes.OK {
				s.Require().NoError(err)
				s.Require().NotNil(res)
				s.Require().Equal(expected, *res.Wasm)
			} else {
				s.Require().Error(err)
				s.Require().Nil(res)
				s.Require().Equal(tc.expCode, status.Code(err))
			}
		})
	}
}

func (s *KeeperTestSuite) TestQueryOverlayWasm() {
	var (
		req      *types.QueryOverlayWasmRequest
		expected types.Wasm
	)

	testCases := []struct {
		name     string
		malleate func()
		expCode  codes.Code
	}{
		{
			"success",
			func() {
				expected = s.storeOverlayWasm(wasmtesting.Code, types.WasmTypeDataRequestExecutor)
				req = &types.QueryOverlayWasmRequest{Hash: expected.HashHex()}
			},
			codes.OK,
		},
		{
			"failure: stored as data request wasm only",
			func() {
				wasm := s.storeDataRequestWasm(wasmtesting.Code, types.WasmTypeDataRequest)
				req = &types.QueryOverlayWasmRequest{Hash: wasm.HashHex()}
			},
			codes.NotFound,
		},
		{
			"failure: hash has wrong length",
			func() {
				req = &types.QueryOverlayWasmRequest{Hash: hex.EncodeToString(make([]byte, 31))}
			},
			codes.InvalidArgument,
		},
		{
			"failure: nil request",
			func() {
				req = nil
			},
			codes.InvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()

			tc.malleate()

			res, err := s.querier.OverlayWasm(s.ctx, req)

			if tc.expCode == codes.OK {
				s.Require().NoError(err)
				s.Require().NotNil(res)
				s.Require().Equal(expected, *res.Wasm)
			} else {
				s.Require().Error(err)
				s.Require().Nil(res)
				s.Require().Equal(tc.expCode, status.Code(err))
			}
		})
	}
}

func (s *KeeperTestSuite) TestQueryWasmLists() {
	drRes, err := s.querier.DataRequestWasms(s.ctx, &types.QueryDataRequestWasmsRequest{})
	s.Require().NoError(err)
	s.Require().NotNil(drRes.HashTypePairs)
	s.Require().Empty(drRes.HashTypePairs)

	overlayRes, err := s.querier.OverlayWasms(s.ctx, &types.QueryOverlayWasmsRequest{})
	s.Require().NoError(err)
	s.Require().Empty(overlayRes.HashTypePairs)

	dr := s.storeDataRequestWasm(wasmtesting.Code, types.WasmTypeDataRequest)
	tally := s.storeDataRequestWasm(wasmtesting.AltCode, types.WasmTypeTally)
	relayer := s.storeOverlayWasm(wasmtesting.Code, types.WasmTypeRelayer)

	expected := []string{
		dr.HashHex() + ",WASM_TYPE_DATA_REQUEST",
		tally.HashHex() + ",WASM_TYPE_TALLY",
	}
	// pairs are returned in hash order
	if tally.HashHex() < dr.HashHex() {
		expected[0], expected[1] = expected[1], expected[0]
	}

	drRes, err = s.querier.DataRequestWasms(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Equal(expected, drRes.HashTypePairs)

	overlayRes, err = s.querier.OverlayWasms(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Equal([]string{relayer.HashHex() + ",WASM_TYPE_RELAYER"}, overlayRes.HashTypePairs)
}

func (s *KeeperTestSuite) TestQueryParams() {
	res, err := s.querier.Params(s.ctx, &types.QueryParamsRequest{})
	s.Require().NoError(err)
	s.Require().Equal(types.DefaultParams(), res.Params)

	_, err = s.msgServer.UpdateParams(s.ctx, types.NewMsgUpdateParams(wasmtesting.Authority, types.NewParams(4096)))
	s.Require().NoError(err)

	res, err = s.querier.Params(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Equal(uint64(4096), res.Params.MaxWasmSize)
}
