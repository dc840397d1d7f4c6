package simapp

import (
	"context"
	"path"
	"strings"

	"google.golang.org/grpc"

	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	wserrors "github.com/sedaprotocol/seda-wasm-storage/internal/errors"
	"github.com/sedaprotocol/seda-wasm-storage/internal/telemetry"
	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

// NewGRPCServer returns a gRPC server serving the wasm-storage Msg and Query
// services of the app.
func (app *App) NewGRPCServer(opts ...grpc.ServerOption) (*grpc.Server, error) {
	opts = append(opts,
		grpc.ForceServerCodec(codec.NewProtoCodec(app.interfaceRegistry).GRPCCodec()),
		grpc.ChainUnaryInterceptor(app.unaryInterceptor),
	)

	server := grpc.NewServer(opts...)
	if err := app.module.RegisterServices(server); err != nil {
		return nil, err
	}

	return server, nil
}

// unaryInterceptor provides every handler with an sdk.Context. Msg services
// run in a new block while queries read the latest committed state.
func (app *App) unaryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	run := func(sdkCtx sdk.Context) (interface{}, error) {
		return handler(sdkCtx, req)
	}

	if !isMsgMethod(info.FullMethod) {
		res, err := app.query(ctx, run)
		if err != nil {
			app.logger.Debug("query failed", "method", info.FullMethod, "err", err)
		}
		return res, err
	}

	msg, ok := req.(sdk.Msg)
	if !ok {
		return nil, wserrors.ToGRPCStatus(errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "%T is not a message", req))
	}
	signers, _, err := app.appCodec.GetMsgV1Signers(msg)
	if err != nil {
		return nil, wserrors.ToGRPCStatus(errorsmod.Wrap(sdkerrors.ErrInvalidAddress, err.Error()))
	}
	app.logger.Debug("executing message", "method", info.FullMethod, "signer", sdk.AccAddress(signers[0]).String())

	res, err := app.deliver(ctx, run)
	if err != nil {
		telemetry.ReportMsgFailure(types.ModuleName, path.Base(info.FullMethod))
		app.logger.Error("failed to execute message", "method", info.FullMethod, "err", err)
		return nil, wserrors.ToGRPCStatus(err)
	}

	return res, nil
}

func isMsgMethod(fullMethod string) bool {
	return strings.HasPrefix(fullMethod, "/"+types.MsgServiceName+"/")
}
