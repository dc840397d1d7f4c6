package keeper

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	errorsmod "cosmossdk.io/errors"

	"github.com/sedaprotocol/seda-wasm-storage/internal/validate"
	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

// Querier implements the wasm-storage QueryServer on top of a Keeper.
type Querier struct {
	Keeper
}

var _ types.QueryServer = Querier{}

// NewQuerier returns a QueryServer for the provided Keeper.
func NewQuerier(keeper Keeper) Querier {
	return Querier{Keeper: keeper}
}

// DataRequestWasm implements the Query/DataRequestWasm gRPC method
func (q Querier) DataRequestWasm(ctx context.Context, req *types.QueryDataRequestWasmRequest) (*types.QueryDataRequestWasmResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	wasm, err := q.queryWasm(ctx, q.GetDataRequestWasm, req.Hash)
	if err != nil {
		return nil, err
	}

	return &types.QueryDataRequestWasmResponse{
		Wasm: wasm,
	}, nil
}

// DataRequestWasms implements the Query/DataRequestWasms gRPC method
func (q Querier) DataRequestWasms(ctx context.Context, _ *types.QueryDataRequestWasmsRequest) (*types.QueryDataRequestWasmsResponse, error) {
	pairs, err := q.ListDataRequestWasms(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryDataRequestWasmsResponse{
		HashTypePairs: pairs,
	}, nil
}

// OverlayWasm implements the Query/OverlayWasm gRPC method
func (q Querier) OverlayWasm(ctx context.Context, req *types.QueryOverlayWasmRequest) (*types.QueryOverlayWasmResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	wasm, err := q.queryWasm(ctx, q.GetOverlayWasm, req.Hash)
	if err != nil {
		return nil, err
	}

	return &types.QueryOverlayWasmResponse{
		Wasm: wasm,
	}, nil
}

// OverlayWasms implements the Query/OverlayWasms gRPC method
func (q Querier) OverlayWasms(ctx context.Context, _ *types.QueryOverlayWasmsRequest) (*types.QueryOverlayWasmsResponse, error) {
	pairs, err := q.ListOverlayWasms(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryOverlayWasmsResponse{
		HashTypePairs: pairs,
	}, nil
}

// Params implements the Query/Params gRPC method
func (q Querier) Params(ctx context.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	params, err := q.GetParams(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryParamsResponse{
		Params: params,
	}, nil
}

func (Querier) queryWasm(ctx context.Context, get func(context.Context, []byte) (types.Wasm, error), hexHash string) (*types.Wasm, error) {
	hash, err := validate.WasmHash(hexHash)
	if err != nil {
		return nil, err
	}

	wasm, err := get(ctx, hash)
	if errors.Is(err, types.ErrWasmNotFound) {
		return nil, status.Error(codes.NotFound, errorsmod.Wrap(types.ErrWasmNotFound, hexHash).Error())
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &wasm, nil
}
