//go:build opencl

package gpu

// OpenCLBackend is a placeholder backend enabled with the "opencl" build tag.
// Like the CUDA stub it only occupies the registration slot; it exposes no
// devices and cannot create buffers or partial-transpose plans.
type OpenCLBackend struct{}

func (b *OpenCLBackend) Info() BackendInfo {
	return BackendInfo{
		Name:        "opencl",
		Version:     "stub",
		Description: "OpenCL device backend stub (no transpose plans yet)",
	}
}

func (b *OpenCLBackend) Available() bool {
	return false
}

func (b *OpenCLBackend) Devices() ([]DeviceInfo, error) {
	return nil, ErrBackendUnavailable
}

func (b *OpenCLBackend) NewContext(_ int) (Context, error) {
	return nil, ErrBackendUnavailable
}

// RegisterOpenCLBackend installs the OpenCL stub as the active backend. Plans
// requested through it fail with ErrBackendUnavailable.
func RegisterOpenCLBackend() {
	RegisterBackend(&OpenCLBackend{})
}
