package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	errorsmod "cosmossdk.io/errors"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	wserrors "github.com/sedaprotocol/seda-wasm-storage/internal/errors"
	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

func TestToGRPCStatus(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		expCode codes.Code
	}{
		{"nil", nil, codes.OK},
		{"status error is kept", status.Error(codes.ResourceExhausted, "busy"), codes.ResourceExhausted},
		{"unauthorized", errorsmod.Wrapf(sdkerrors.ErrUnauthorized, "invalid authority"), codes.PermissionDenied},
		{"already exists", errorsmod.Wrap(types.ErrWasmAlreadyExists, "data request wasm"), codes.AlreadyExists},
		{"not found", types.ErrWasmNotFound, codes.NotFound},
		{"module error", types.ErrWasmCodeTooLarge, codes.InvalidArgument},
		{"plain error", fmt.Errorf("boom"), codes.InvalidArgument},
		{"wrapped unauthorized", fmt.Errorf("msg failed: %w", sdkerrors.ErrUnauthorized), codes.PermissionDenied},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := wserrors.ToGRPCStatus(tc.err)
			require.Equal(t, tc.expCode, status.Code(err))
			if tc.err != nil {
				require.Contains(t, err.Error(), tc.err.Error())
			}
		})
	}
}
