package gpu

import "errors"

var (
	// ErrNoBackend is returned when no device backend is registered.
	ErrNoBackend = errors.New("algoquant/gpu: no backend registered")

	// ErrBackendUnavailable is returned when the backend is registered but not
	// available on the current system (e.g., no device, driver missing).
	ErrBackendUnavailable = errors.New("algoquant/gpu: backend unavailable")

	// ErrNotImplemented is returned by stubbed operations.
	ErrNotImplemented = errors.New("algoquant/gpu: not implemented")

	// ErrInvalidDims is returned for empty or non-positive dimension lists.
	ErrInvalidDims = errors.New("algoquant/gpu: invalid subsystem dimension list")

	// ErrMaskLength is returned when the selection mask does not have one
	// entry per subsystem.
	ErrMaskLength = errors.New("algoquant/gpu: selection mask length does not match subsystem count")

	// ErrNilSlice is returned when dst or src is nil.
	ErrNilSlice = errors.New("algoquant/gpu: nil slice")

	// ErrLengthMismatch is returned when dst or src lengths are not as required.
	ErrLengthMismatch = errors.New("algoquant/gpu: length mismatch")
)
