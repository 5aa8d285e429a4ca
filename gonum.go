package algoquant

import (
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"
)

// FromCDense builds a dense complex128 operator from a gonum matrix. The
// matrix must be square with side equal to the product of dims; the data is
// copied.
func FromCDense(dims []int, m *mat.CDense) (*Qop[complex128], error) {
	d, err := validateDims(dims)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNilData
	}
	r, c := m.Dims()
	if r != d || c != d {
		return nil, ErrDataLength
	}

	raw := m.RawCMatrix()
	data := make([]complex128, d*d)
	for i := 0; i < d; i++ {
		copy(data[i*d:(i+1)*d], raw.Data[i*raw.Stride:i*raw.Stride+d])
	}

	return &Qop[complex128]{dims: copyInts(dims), kind: StorageDense, dense: data}, nil
}

// ToCDense converts the operator to a gonum dense matrix, expanding sparse
// storage. The returned matrix owns its data.
func ToCDense(q *Qop[complex128]) *mat.CDense {
	d := q.Dim()

	return mat.NewCDense(d, d, q.DenseData())
}

// EqualApprox reports whether two complex128 operators have the same
// dimension list and element-wise equal matrices within tol, comparing
// across storage kinds.
func EqualApprox(a, b *Qop[complex128], tol float64) bool {
	if len(a.dims) != len(b.dims) {
		return false
	}
	for k := range a.dims {
		if a.dims[k] != b.dims[k] {
			return false
		}
	}

	return cmplxs.EqualApprox(a.DenseData(), b.DenseData(), tol)
}
