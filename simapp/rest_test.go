package simapp_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/grpc-ecosystem/grpc-gateway/runtime"
	"google.golang.org/grpc/codes"

	wasmtesting "github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/testing"
	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
	"github.com/sedaprotocol/seda-wasm-storage/simapp"
)

func (s *AppTestSuite) TestRESTQueries() {
	storeRes, err := s.msgClient.StoreDataRequestWasm(context.Background(), types.NewMsgStoreDataRequestWasm(wasmtesting.Sender, wasmtesting.ZippedCode, types.WasmTypeTally))
	s.Require().NoError(err)

	handler, err := s.app.RESTHandler(context.Background())
	s.Require().NoError(err)
	server := httptest.NewServer(handler)
	defer server.Close()

	absentHash := types.NewWasm(wasmtesting.AltCode, types.WasmTypeDataRequest, genesisTime).HashHex()

	testCases := []struct {
		name        string
		path        string
		expStatus   int
		expContains []string
	}{
		{
			"data request wasm",
			"/data_request_wasm/" + storeRes.Hash,
			http.StatusOK,
			[]string{`"wasm_type":"WASM_TYPE_TALLY"`, `"added_at":"2024-05-01T09:00:00Z"`},
		},
		{
			"data request wasm not found",
			"/data_request_wasm/" + absentHash,
			runtime.HTTPStatusFromCode(codes.NotFound),
			nil,
		},
		{
			"malformed hash",
			"/data_request_wasm/not-hex",
			runtime.HTTPStatusFromCode(codes.InvalidArgument),
			nil,
		},
		{
			"data request wasms",
			"/data_request_wasms",
			http.StatusOK,
			[]string{storeRes.Hash + ",WASM_TYPE_TALLY"},
		},
		{
			"overlay wasm not found",
			"/overlay_wasm/" + storeRes.Hash,
			http.StatusNotFound,
			nil,
		},
		{
			"overlay wasms",
			"/overlay_wasms",
			http.StatusOK,
			[]string{`"hash_type_pairs":[]`},
		},
		{
			"params",
			"/params",
			http.StatusOK,
			[]string{`"max_wasm_size":"819200"`},
		},
		{
			"unknown route",
			"/unknown",
			runtime.HTTPStatusFromCode(codes.Unimplemented),
			nil,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			res, err := http.Get(server.URL + simapp.RESTRoutePrefix + tc.path)
			s.Require().NoError(err)
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			s.Require().NoError(err)

			s.Require().Equal(tc.expStatus, res.StatusCode, string(body))
			s.Require().True(strings.HasPrefix(res.Header.Get("Content-Type"), "application/json"))
			for _, exp := range tc.expContains {
				s.Require().Contains(string(body), exp)
			}
		})
	}
}
