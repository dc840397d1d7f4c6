package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	errorsmod "cosmossdk.io/errors"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

// ToGRPCStatus converts an error returned by a Msg handler into a gRPC status
// error. Status errors with a known code are returned unchanged. Module and
// SDK errors are mapped by kind and anything else is reported as
// InvalidArgument.
func ToGRPCStatus(err error) error {
	if err == nil {
		return nil
	}

	if st, ok := status.FromError(err); ok && st.Code() != codes.Unknown {
		return err
	}

	return status.Error(codeOf(err), err.Error())
}

func codeOf(err error) codes.Code {
	switch {
	case errorsmod.IsOf(err, sdkerrors.ErrUnauthorized):
		return codes.PermissionDenied
	case errorsmod.IsOf(err, types.ErrWasmAlreadyExists):
		return codes.AlreadyExists
	case errorsmod.IsOf(err, types.ErrWasmNotFound, sdkerrors.ErrNotFound):
		return codes.NotFound
	default:
		return codes.InvalidArgument
	}
}
