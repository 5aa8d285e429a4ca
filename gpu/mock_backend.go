package gpu

import (
	"fmt"

	algoquant "github.com/cwbudde/algo-quant"
)

// MockBackend is a CPU-backed device backend for development and tests.
// It satisfies the device backend interfaces but executes on the CPU, which
// makes it the reference for host/device equivalence testing.
type MockBackend struct {
	device DeviceInfo
}

// NewMockBackend returns a mock backend with a single fake device.
func NewMockBackend() *MockBackend {
	return &MockBackend{
		device: DeviceInfo{
			Name:       "MockGPU",
			Vendor:     "algoquant",
			Driver:     "mock",
			MemoryMB:   0,
			ComputeCap: "cpu",
		},
	}
}

func (b *MockBackend) Info() BackendInfo {
	return BackendInfo{
		Name:        "mock",
		Version:     "0.1",
		Description: "CPU-backed mock device backend",
	}
}

func (b *MockBackend) Available() bool {
	return true
}

func (b *MockBackend) Devices() ([]DeviceInfo, error) {
	return []DeviceInfo{b.device}, nil
}

func (b *MockBackend) NewContext(deviceIndex int) (Context, error) {
	if deviceIndex != 0 {
		return nil, fmt.Errorf("mock backend: device index %d out of range", deviceIndex)
	}
	return &mockContext{device: b.device}, nil
}

// RegisterMockBackend registers the mock backend as the active backend.
func RegisterMockBackend() {
	RegisterBackend(NewMockBackend())
}

type mockContext struct {
	device DeviceInfo
}

func (c *mockContext) Device() DeviceInfo {
	return c.device
}

func (c *mockContext) NewBuffer(elemCount int, precision PrecisionKind) (Buffer, error) {
	if elemCount < 0 {
		return nil, ErrLengthMismatch
	}
	switch precision {
	case PrecisionComplex64:
		return &mockBuffer{
			precision: precision,
			len:       elemCount,
			data64:    make([]complex64, elemCount),
		}, nil
	case PrecisionComplex128:
		return &mockBuffer{
			precision: precision,
			len:       elemCount,
			data128:   make([]complex128, elemCount),
		}, nil
	default:
		return nil, ErrNotImplemented
	}
}

func (c *mockContext) NewStream() (Stream, error) {
	return &mockStream{}, nil
}

func (c *mockContext) NewTransposePlan(dims []int, mask []bool, precision PrecisionKind, _ PlanOptions) (TransposeImpl, error) {
	if len(dims) == 0 {
		return nil, ErrInvalidDims
	}
	if len(mask) != len(dims) {
		return nil, ErrMaskLength
	}
	d := 1
	for _, dim := range dims {
		if dim < 1 {
			return nil, ErrInvalidDims
		}
		d *= dim
	}

	switch precision {
	case PrecisionComplex64:
		return &mockTranspose64{dims: dims, mask: mask, d: d}, nil
	case PrecisionComplex128:
		return &mockTranspose128{dims: dims, mask: mask, d: d}, nil
	default:
		return nil, ErrNotImplemented
	}
}

func (c *mockContext) Close() error {
	return nil
}

type mockBuffer struct {
	precision PrecisionKind
	len       int
	data64    []complex64
	data128   []complex128
}

func (b *mockBuffer) Len() int {
	return b.len
}

func (b *mockBuffer) Precision() PrecisionKind {
	return b.precision
}

func (b *mockBuffer) Upload(src any) error {
	switch b.precision {
	case PrecisionComplex64:
		data, ok := src.([]complex64)
		if !ok {
			return ErrNotImplemented
		}
		if len(data) < b.len {
			return ErrLengthMismatch
		}
		copy(b.data64, data[:b.len])
		return nil
	case PrecisionComplex128:
		data, ok := src.([]complex128)
		if !ok {
			return ErrNotImplemented
		}
		if len(data) < b.len {
			return ErrLengthMismatch
		}
		copy(b.data128, data[:b.len])
		return nil
	default:
		return ErrNotImplemented
	}
}

func (b *mockBuffer) Download(dst any) error {
	switch b.precision {
	case PrecisionComplex64:
		data, ok := dst.([]complex64)
		if !ok {
			return ErrNotImplemented
		}
		if len(data) < b.len {
			return ErrLengthMismatch
		}
		copy(data[:b.len], b.data64)
		return nil
	case PrecisionComplex128:
		data, ok := dst.([]complex128)
		if !ok {
			return ErrNotImplemented
		}
		if len(data) < b.len {
			return ErrLengthMismatch
		}
		copy(data[:b.len], b.data128)
		return nil
	default:
		return ErrNotImplemented
	}
}

func (b *mockBuffer) Close() error {
	b.data64 = nil
	b.data128 = nil
	b.len = 0
	return nil
}

type mockStream struct{}

func (s *mockStream) Synchronize() error { return nil }
func (s *mockStream) Close() error       { return nil }

// mockExecute runs the host partial transpose for the mock plans. The host
// kernel allocates its own output, so dst and src may alias.
func mockExecute[T Complex](dims []int, mask []bool, d int, dst, src []T) error {
	q, err := algoquant.NewDense(dims, src[:d*d])
	if err != nil {
		return err
	}
	out, err := q.PartialTranspose(mask)
	if err != nil {
		return err
	}
	copy(dst[:d*d], out.DenseData())
	return nil
}

type mockTranspose64 struct {
	dims []int
	mask []bool
	d    int
}

func (p *mockTranspose64) Dim() int {
	return p.d
}

func (p *mockTranspose64) Precision() PrecisionKind {
	return PrecisionComplex64
}

func (p *mockTranspose64) Execute(dst, src any) error {
	out, ok := dst.([]complex64)
	if !ok {
		return ErrNotImplemented
	}
	in, ok := src.([]complex64)
	if !ok {
		return ErrNotImplemented
	}
	return mockExecute(p.dims, p.mask, p.d, out, in)
}

func (p *mockTranspose64) Close() error {
	return nil
}

type mockTranspose128 struct {
	dims []int
	mask []bool
	d    int
}

func (p *mockTranspose128) Dim() int {
	return p.d
}

func (p *mockTranspose128) Precision() PrecisionKind {
	return PrecisionComplex128
}

func (p *mockTranspose128) Execute(dst, src any) error {
	out, ok := dst.([]complex128)
	if !ok {
		return ErrNotImplemented
	}
	in, ok := src.([]complex128)
	if !ok {
		return ErrNotImplemented
	}
	return mockExecute(p.dims, p.mask, p.d, out, in)
}

func (p *mockTranspose128) Close() error {
	return nil
}
