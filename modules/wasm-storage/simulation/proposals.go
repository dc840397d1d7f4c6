package simulation

import (
	"math/rand"

	"github.com/CosmWasm/wasmd/x/wasm/ioutils"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"
	"github.com/cosmos/cosmos-sdk/x/simulation"

	"github.com/sedaprotocol/seda-wasm-storage/modules/wasm-storage/types"
)

// Simulation operation weights constants
const (
	DefaultWeightMsgStoreOverlayWasm int = 100
	DefaultWeightMsgUpdateParams     int = 50

	OpWeightMsgStoreOverlayWasm = "op_weight_msg_store_overlay_wasm" // #nosec
	OpWeightMsgUpdateParams     = "op_weight_msg_update_params"      // #nosec
)

// ProposalMsgs defines the module weighted proposals' contents
func ProposalMsgs() []simtypes.WeightedProposalMsg {
	return []simtypes.WeightedProposalMsg{
		simulation.NewWeightedProposalMsg(
			OpWeightMsgStoreOverlayWasm,
			DefaultWeightMsgStoreOverlayWasm,
			SimulateMsgStoreOverlayWasm,
		),
		simulation.NewWeightedProposalMsg(
			OpWeightMsgUpdateParams,
			DefaultWeightMsgUpdateParams,
			SimulateMsgUpdateParams,
		),
	}
}

// SimulateMsgStoreOverlayWasm returns a random MsgStoreOverlayWasm sent by the
// gov module account.
func SimulateMsgStoreOverlayWasm(r *rand.Rand, _ sdk.Context, _ []simtypes.Account) sdk.Msg {
	var authority sdk.AccAddress = address.Module("gov")

	wasmType := types.OverlayWasmTypes[r.Intn(len(types.OverlayWasmTypes))]
	bytecode := append([]byte("\x00\x61\x73\x6D"), []byte(simtypes.RandStringOfLength(r, types.MinWasmSize))...)
	zipped, err := ioutils.GzipIt(bytecode)
	if err != nil {
		panic(err)
	}

	return types.NewMsgStoreOverlayWasm(authority.String(), zipped, wasmType)
}

// SimulateMsgUpdateParams returns a random MsgUpdateParams sent by the gov
// module account.
func SimulateMsgUpdateParams(r *rand.Rand, _ sdk.Context, _ []simtypes.Account) sdk.Msg {
	var authority sdk.AccAddress = address.Module("gov")

	maxWasmSize := uint64(simtypes.RandIntBetween(r, types.MinWasmSize, int(types.DefaultMaxWasmSize)*2))

	return types.NewMsgUpdateParams(authority.String(), types.NewParams(maxWasmSize))
}
