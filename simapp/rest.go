package simapp

import (
	"context"
	"net/http"

	gogogateway "github.com/cosmos/gogogateway"
	"github.com/gorilla/mux"
	"github.com/grpc-ecosystem/grpc-gateway/runtime"

	sdk "github.com/cosmos/cosmos-sdk/types"

	wserrors "github.com/sedaprotocol/seda-wasm-storage/internal/errors"
	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/keeper"
	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

// RESTRoutePrefix is the path prefix of the wasm-storage REST routes.
const RESTRoutePrefix = "/seda-chain/wasm-storage"

// RESTHandler returns the HTTP handler serving the wasm-storage queries
// through the grpc-gateway routes of the Query service.
func (app *App) RESTHandler(ctx context.Context) (http.Handler, error) {
	gwMux := runtime.NewServeMux(
		// gogoproto types need the gogo aware marshaler
		runtime.WithMarshalerOption(runtime.MIMEWildcard, &gogogateway.JSONPb{
			EmitDefaults: true,
			Indent:       "",
			OrigName:     true,
			AnyResolver:  app.interfaceRegistry,
		}),
		runtime.WithProtoErrorHandler(runtime.DefaultHTTPProtoErrorHandler),
	)
	if err := types.RegisterQueryHandlerServer(ctx, gwMux, restQueryServer{app: app, querier: keeper.NewQuerier(app.WasmStorageKeeper)}); err != nil {
		return nil, err
	}

	r := mux.NewRouter()
	r.PathPrefix("/").Handler(gwMux)
	return r, nil
}

var _ types.QueryServer = restQueryServer{}

// restQueryServer runs every gateway query against the latest committed
// state.
type restQueryServer struct {
	app     *App
	querier keeper.Querier
}

func (s restQueryServer) DataRequestWasm(ctx context.Context, req *types.QueryDataRequestWasmRequest) (*types.QueryDataRequestWasmResponse, error) {
	res, err := s.run(ctx, func(sdkCtx sdk.Context) (interface{}, error) {
		return s.querier.DataRequestWasm(sdkCtx, req)
	})
	if err != nil {
		return nil, err
	}
	return res.(*types.QueryDataRequestWasmResponse), nil
}

func (s restQueryServer) DataRequestWasms(ctx context.Context, req *types.QueryDataRequestWasmsRequest) (*types.QueryDataRequestWasmsResponse, error) {
	res, err := s.run(ctx, func(sdkCtx sdk.Context) (interface{}, error) {
		return s.querier.DataRequestWasms(sdkCtx, req)
	})
	if err != nil {
		return nil, err
	}
	return res.(*types.QueryDataRequestWasmsResponse), nil
}

func (s restQueryServer) OverlayWasm(ctx context.Context, req *types.QueryOverlayWasmRequest) (*types.QueryOverlayWasmResponse, error) {
	res, err := s.run(ctx, func(sdkCtx sdk.Context) (interface{}, error) {
		return s.querier.OverlayWasm(sdkCtx, req)
	})
	if err != nil {
		return nil, err
	}
	return res.(*types.QueryOverlayWasmResponse), nil
}

func (s restQueryServer) OverlayWasms(ctx context.Context, req *types.QueryOverlayWasmsRequest) (*types.QueryOverlayWasmsResponse, error) {
	res, err := s.run(ctx, func(sdkCtx sdk.Context) (interface{}, error) {
		return s.querier.OverlayWasms(sdkCtx, req)
	})
	if err != nil {
		return nil, err
	}
	return res.(*types.QueryOverlayWasmsResponse), nil
}

func (s restQueryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	res, err := s.run(ctx, func(sdkCtx sdk.Context) (interface{}, error) {
		return s.querier.Params(sdkCtx, req)
	})
	if err != nil {
		return nil, err
	}
	return res.(*types.QueryParamsResponse), nil
}

func (s restQueryServer) run(ctx context.Context, fn func(sdk.Context) (interface{}, error)) (interface{}, error) {
	res, err := s.app.query(ctx, fn)
	if err != nil {
		return nil, wserrors.ToGRPCStatus(err)
	}
	return res, nil
}
