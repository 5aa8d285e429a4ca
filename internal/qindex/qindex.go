// Package qindex provides mixed-radix index arithmetic for operators on
// composite (tensor-product) spaces.
//
// A flat index into a space with subsystem dimensions (d1,...,dn) corresponds
// to a digit tuple (i1,...,in) with 0 <= ik < dk, most significant digit
// first: flat = ((i1*d2+i2)*d3+i3)... This row-major convention is shared by
// the dense and sparse transpose kernels; both must use this package so their
// index mappings cannot drift apart.
package qindex

// Product returns the product of all dimensions. An empty list has product 1.
func Product(dims []int) int {
	p := 1
	for _, d := range dims {
		p *= d
	}

	return p
}

// Strides returns the row-major strides for the given shape: stride[k] is the
// flat-index distance between neighbours along axis k.
func Strides(dims []int) []int {
	n := len(dims)
	strides := make([]int, n)

	acc := 1
	for k := n - 1; k >= 0; k-- {
		strides[k] = acc
		acc *= dims[k]
	}

	return strides
}

// Decompose splits a flat index into its mixed-radix digits, most significant
// first. The caller guarantees 0 <= flat < Product(dims).
func Decompose(flat int, dims []int) []int {
	digits := make([]int, len(dims))
	DecomposeInto(digits, flat, dims)

	return digits
}

// DecomposeInto is Decompose without the allocation; dst must have len(dims).
func DecomposeInto(dst []int, flat int, dims []int) {
	for k := len(dims) - 1; k >= 0; k-- {
		dst[k] = flat % dims[k]
		flat /= dims[k]
	}
}

// Recompose is the inverse of Decompose: it folds mixed-radix digits back
// into a flat index using the same most-significant-first convention.
func Recompose(digits []int, dims []int) int {
	flat := 0
	for k, d := range dims {
		flat = flat*d + digits[k]
	}

	return flat
}
