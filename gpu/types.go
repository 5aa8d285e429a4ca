package gpu

import algoquant "github.com/cwbudde/algo-quant"

// Complex is the shared complex constraint used by algoquant.
type Complex = algoquant.Complex

// PrecisionKind describes the precision for a device plan.
type PrecisionKind uint8

const (
	PrecisionComplex64 PrecisionKind = iota
	PrecisionComplex128
)

// DeviceInfo describes a device.
type DeviceInfo struct {
	Name       string
	Vendor     string
	Driver     string
	MemoryMB   int
	ComputeCap string
}

// BackendInfo describes a backend implementation.
type BackendInfo struct {
	Name        string
	Version     string
	Description string
}

// PlanOptions controls device plan creation.
type PlanOptions struct {
	// DeviceIndex selects which device to use (0 = default).
	DeviceIndex int

	// StreamCount requests a number of execution streams/queues.
	StreamCount int
}
