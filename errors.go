package algoquant

import "errors"

// Sentinel errors returned by operator constructors and operations.
var (
	// ErrMaskLength is returned by PartialTranspose when the selection mask
	// does not have exactly one entry per subsystem.
	ErrMaskLength = errors.New("algoquant: selection mask length does not match subsystem count")

	// ErrInvalidDims is returned when a subsystem dimension list is empty or
	// contains a non-positive dimension.
	ErrInvalidDims = errors.New("algoquant: invalid subsystem dimension list")

	// ErrDataLength is returned when the supplied matrix data does not have
	// D*D elements for D the product of the dimension list.
	ErrDataLength = errors.New("algoquant: data length does not match dimension product")

	// ErrNilData is returned when a nil slice is passed to a constructor.
	ErrNilData = errors.New("algoquant: nil data slice")

	// ErrInvalidSparse is returned when a supplied CSC structure is malformed
	// (column pointers not monotone, indices out of range, length mismatch).
	ErrInvalidSparse = errors.New("algoquant: malformed sparse structure")

	// ErrDimsMismatch is returned when two operators that must share a
	// dimension list do not.
	ErrDimsMismatch = errors.New("algoquant: operand dimension lists differ")
)
