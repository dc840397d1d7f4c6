package telemetry

import (
	"github.com/hashicorp/go-metrics"

	"github.com/cosmos/cosmos-sdk/telemetry"
)

// Prometheus metric labels.
const (
	LabelRegistry = "registry"
	LabelWasmType = "wasm_type"
	LabelMsgType  = "msg_type"
)

// ReportStoreWasm records a wasm stored in the given registry along with the
// size of its bytecode.
func ReportStoreWasm(module, registry, wasmType string, size int) {
	labels := []metrics.Label{
		telemetry.NewLabel(LabelRegistry, registry),
		telemetry.NewLabel(LabelWasmType, wasmType),
	}

	telemetry.IncrCounterWithLabels(
		[]string{module, "wasm", "stored"},
		1,
		labels,
	)

	telemetry.SetGaugeWithLabels(
		[]string{module, "wasm", "size"},
		float32(size),
		labels,
	)
}

// ReportMsgFailure records a message rejected by the node.
func ReportMsgFailure(module, msgType string) {
	telemetry.IncrCounterWithLabels(
		[]string{module, "msg", "failed"},
		1,
		[]metrics.Label{telemetry.NewLabel(LabelMsgType, msgType)},
	)
}
