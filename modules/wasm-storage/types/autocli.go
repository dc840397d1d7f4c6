package types

import (
	autocliv1 "cosmossdk.io/api/cosmos/autocli/v1"
)

// AutoCLIOptions implements the autocli.HasAutoCLIConfig interface.
func AutoCLIOptions() *autocliv1.ModuleOptions {
	return &autocliv1.ModuleOptions{
		Query: &autocliv1.ServiceCommandDescriptor{
			Service: _Query_serviceDesc.ServiceName,
			RpcCommandOptions: []*autocliv1.RpcCommandOptions{
				{
					RpcMethod: "DataRequestWasm",
					Use:       "data-request-wasm [hash]",
					Short:     "Query a data request or tally wasm by its hex encoded hash",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "hash"},
					},
				},
				{
					RpcMethod: "DataRequestWasms",
					Use:       "list-data-request-wasms",
					Short:     "List hashes and types of all data request wasms",
				},
				{
					RpcMethod: "OverlayWasm",
					Use:       "overlay-wasm [hash]",
					Short:     "Query an executor or relayer wasm by its hex encoded hash",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "hash"},
					},
				},
				{
					RpcMethod: "OverlayWasms",
					Use:       "list-overlay-wasms",
					Short:     "List hashes and types of all overlay wasms",
				},
				{
					RpcMethod: "Params",
					Use:       "params",
					Short:     "Query the current wasm-storage parameters",
				},
			},
		},
		Tx: &autocliv1.ServiceCommandDescriptor{
			Service:              _Msg_serviceDesc.ServiceName,
			EnhanceCustomCommand: true,
			RpcCommandOptions: []*autocliv1.RpcCommandOptions{
				// wasm files are read and gzipped by the custom commands
				{RpcMethod: "StoreDataRequestWasm", Skip: true},
				{RpcMethod: "StoreOverlayWasm", Skip: true},
				{
					RpcMethod: "UpdateParams",
					Skip:      true, // authority gated
				},
			},
		},
	}
}
