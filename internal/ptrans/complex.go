package ptrans

import "github.com/cwbudde/algo-quant/internal/qtypes"

// Conj returns the complex conjugate of v at the precision of T.
func Conj[T qtypes.Complex](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex(real(x), -imag(x))).(T)
	case complex128:
		return any(complex(real(x), -imag(x))).(T)
	default:
		return v
	}
}
