package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/sedaprotocol/seda-wasm-storage/internal/telemetry"
	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

const (
	registryDataRequest = "data_request"
	registryOverlay     = "overlay"
)

type msgServer struct {
	Keeper
}

var _ types.MsgServer = msgServer{}

// NewMsgServerImpl returns an implementation of the wasm-storage MsgServer
// interface for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// StoreDataRequestWasm defines a rpc handler method for MsgStoreDataRequestWasm
func (m msgServer) StoreDataRequestWasm(goCtx context.Context, msg *types.MsgStoreDataRequestWasm) (*types.MsgStoreDataRequestWasmResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	wasm, err := m.storeWasm(ctx, m.DataRequestWasm, msg.Wasm, msg.WasmType)
	if err != nil {
		return nil, errorsmod.Wrap(err, "storing data request wasm failed")
	}

	emitStoreWasmEvent(ctx, types.EventTypeStoreDataRequestWasm, wasm, msg.Sender)
	telemetry.ReportStoreWasm(types.ModuleName, registryDataRequest, wasm.WasmType.String(), len(wasm.Bytecode))
	m.Logger(ctx).Info("stored data request wasm", "hash", wasm.HashHex(), "wasm_type", wasm.WasmType.String(), "sender", msg.Sender)

	return &types.MsgStoreDataRequestWasmResponse{
		Hash: wasm.HashHex(),
	}, nil
}

// StoreOverlayWasm defines a rpc handler method for MsgStoreOverlayWasm
func (m msgServer) StoreOverlayWasm(goCtx context.Context, msg *types.MsgStoreOverlayWasm) (*types.MsgStoreOverlayWasmResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if m.authority != msg.Sender {
		return nil, errorsmod.Wrapf(sdkerrors.ErrUnauthorized, "invalid authority: expected %s, got %s", m.authority, msg.Sender)
	}

	wasm, err := m.storeWasm(ctx, m.OverlayWasm, msg.Wasm, msg.WasmType)
	if err != nil {
		return nil, errorsmod.Wrap(err, "storing overlay wasm failed")
	}

	emitStoreWasmEvent(ctx, types.EventTypeStoreOverlayWasm, wasm, msg.Sender)
	telemetry.ReportStoreWasm(types.ModuleName, registryOverlay, wasm.WasmType.String(), len(wasm.Bytecode))
	m.Logger(ctx).Info("stored overlay wasm", "hash", wasm.HashHex(), "wasm_type", wasm.WasmType.String())

	return &types.MsgStoreOverlayWasmResponse{
		Hash: wasm.HashHex(),
	}, nil
}

// UpdateParams defines a rpc handler method for MsgUpdateParams
func (m msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if m.authority != msg.Authority {
		return nil, errorsmod.Wrapf(sdkerrors.ErrUnauthorized, "invalid authority: expected %s, got %s", m.authority, msg.Authority)
	}

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := m.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	emitUpdateParamsEvent(ctx, msg.Params)
	m.Logger(ctx).Info("updated params", "max_wasm_size", msg.Params.MaxWasmSize)

	return &types.MsgUpdateParamsResponse{}, nil
}
