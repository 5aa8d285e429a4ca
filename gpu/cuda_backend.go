//go:build cuda

package gpu

// CUDABackend is a placeholder backend enabled with the "cuda" build tag.
// It registers under the standard discovery surface but reports no usable
// device: contexts, buffers, and partial-transpose plans cannot be created
// until a real CUDA execution path lands.
type CUDABackend struct{}

func (b *CUDABackend) Info() BackendInfo {
	return BackendInfo{
		Name:        "cuda",
		Version:     "stub",
		Description: "CUDA device backend stub (no transpose plans yet)",
	}
}

func (b *CUDABackend) Available() bool {
	return false
}

func (b *CUDABackend) Devices() ([]DeviceInfo, error) {
	return nil, ErrBackendUnavailable
}

func (b *CUDABackend) NewContext(_ int) (Context, error) {
	return nil, ErrBackendUnavailable
}

// RegisterCUDABackend installs the CUDA stub as the active backend. Plans
// requested through it fail with ErrBackendUnavailable.
func RegisterCUDABackend() {
	RegisterBackend(&CUDABackend{})
}
