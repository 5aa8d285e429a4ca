package algoquant

import "github.com/cwbudde/algo-quant/internal/ptrans"

// StorageKind identifies the backing storage of a Qop.
type StorageKind uint8

const (
	// StorageDense stores the full D x D matrix as a row-major slice.
	StorageDense StorageKind = iota

	// StorageSparse stores only nonzero entries in compressed sparse column
	// (CSC) form.
	StorageSparse
)

func (k StorageKind) String() string {
	switch k {
	case StorageDense:
		return "dense"
	case StorageSparse:
		return "sparse"
	default:
		return "unknown"
	}
}

// Qop is a square operator on a composite Hilbert space. Its matrix is D x D
// where D is the product of the subsystem dimension list; row and column
// indices decompose into per-subsystem digits via the shared mixed-radix
// convention (most significant subsystem first).
//
// A Qop is immutable by convention: operations return new operators and never
// mutate the receiver.
type Qop[T Complex] struct {
	dims  []int
	kind  StorageKind
	dense []T            // row-major, kind == StorageDense
	sp    *ptrans.CSC[T] // kind == StorageSparse
}

// NewDense builds a dense operator from a row-major D x D slice, where D is
// the product of dims. The data is copied.
func NewDense[T Complex](dims []int, data []T) (*Qop[T], error) {
	d, err := validateDims(dims)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, ErrNilData
	}
	if len(data) != d*d {
		return nil, ErrDataLength
	}

	cp := make([]T, len(data))
	copy(cp, data)

	return &Qop[T]{dims: copyInts(dims), kind: StorageDense, dense: cp}, nil
}

// NewSparse builds a sparse operator from CSC components: colPtr has D+1
// monotone offsets, rowIdx and values hold one entry per nonzero with row
// indices strictly increasing within each column. All slices are copied.
func NewSparse[T Complex](dims []int, colPtr, rowIdx []int, values []T) (*Qop[T], error) {
	d, err := validateDims(dims)
	if err != nil {
		return nil, err
	}
	if colPtr == nil || values == nil {
		return nil, ErrNilData
	}
	if err := validateCSC(d, colPtr, rowIdx, len(values)); err != nil {
		return nil, err
	}

	sp := &ptrans.CSC[T]{
		Rows:   d,
		Cols:   d,
		ColPtr: copyInts(colPtr),
		RowIdx: copyInts(rowIdx),
		Values: make([]T, len(values)),
	}
	copy(sp.Values, values)

	return &Qop[T]{dims: copyInts(dims), kind: StorageSparse, sp: sp}, nil
}

func validateDims(dims []int) (int, error) {
	if len(dims) == 0 {
		return 0, ErrInvalidDims
	}
	d := 1
	for _, dim := range dims {
		if dim < 1 {
			return 0, ErrInvalidDims
		}
		d *= dim
	}

	return d, nil
}

func validateCSC(d int, colPtr, rowIdx []int, nnz int) error {
	if len(colPtr) != d+1 || colPtr[0] != 0 || colPtr[d] != nnz || len(rowIdx) != nnz {
		return ErrInvalidSparse
	}
	for j := 0; j < d; j++ {
		// Each offset must stay within [colPtr[j], nnz]; an oversized value
		// would index past the entry slices below.
		if colPtr[j+1] < colPtr[j] || colPtr[j+1] > nnz {
			return ErrInvalidSparse
		}
		for p := colPtr[j]; p < colPtr[j+1]; p++ {
			if rowIdx[p] < 0 || rowIdx[p] >= d {
				return ErrInvalidSparse
			}
			if p > colPtr[j] && rowIdx[p] <= rowIdx[p-1] {
				return ErrInvalidSparse
			}
		}
	}

	return nil
}

func copyInts(s []int) []int {
	cp := make([]int, len(s))
	copy(cp, s)

	return cp
}

// Dims returns a copy of the subsystem dimension list.
func (q *Qop[T]) Dims() []int {
	return copyInts(q.dims)
}

// NumSubsystems returns the number of tensor factors.
func (q *Qop[T]) NumSubsystems() int {
	return len(q.dims)
}

// Dim returns the total Hilbert-space dimension D.
func (q *Qop[T]) Dim() int {
	d := 1
	for _, dim := range q.dims {
		d *= dim
	}

	return d
}

// Storage reports the backing storage kind.
func (q *Qop[T]) Storage() StorageKind {
	return q.kind
}

// NNZ returns the number of explicitly stored entries: D*D for dense
// operators, the stored-entry count for sparse ones.
func (q *Qop[T]) NNZ() int {
	if q.kind == StorageSparse {
		return q.sp.NNZ()
	}

	return len(q.dense)
}

// At returns the matrix entry at (i, j). Indices must be within [0, D);
// bounds are the caller's responsibility.
func (q *Qop[T]) At(i, j int) T {
	if q.kind == StorageSparse {
		return q.sp.At(i, j)
	}

	return q.dense[i*q.Dim()+j]
}

// DenseData returns a newly allocated row-major copy of the full matrix,
// regardless of storage kind.
func (q *Qop[T]) DenseData() []T {
	if q.kind == StorageSparse {
		return q.sp.ToDense()
	}

	cp := make([]T, len(q.dense))
	copy(cp, q.dense)

	return cp
}

// RawSparse exposes the CSC components of a sparse operator without copying.
// It returns nils for dense operators. The slices must not be mutated.
func (q *Qop[T]) RawSparse() (colPtr, rowIdx []int, values []T) {
	if q.kind != StorageSparse {
		return nil, nil, nil
	}

	return q.sp.ColPtr, q.sp.RowIdx, q.sp.Values
}

// Clone returns a deep copy with the same storage kind.
func (q *Qop[T]) Clone() *Qop[T] {
	out := &Qop[T]{dims: copyInts(q.dims), kind: q.kind}
	if q.kind == StorageSparse {
		out.sp = q.sp.Clone()
		return out
	}
	out.dense = make([]T, len(q.dense))
	copy(out.dense, q.dense)

	return out
}

// ToDense returns an equivalent operator with dense storage.
func (q *Qop[T]) ToDense() *Qop[T] {
	if q.kind == StorageDense {
		return q.Clone()
	}

	return &Qop[T]{dims: copyInts(q.dims), kind: StorageDense, dense: q.sp.ToDense()}
}

// ToSparse returns an equivalent operator with CSC storage, dropping exact
// zeros.
func (q *Qop[T]) ToSparse() *Qop[T] {
	if q.kind == StorageSparse {
		return q.Clone()
	}
	d := q.Dim()

	return &Qop[T]{dims: copyInts(q.dims), kind: StorageSparse, sp: ptrans.FromDense(q.dense, d, d)}
}

// Trace returns the sum of the diagonal entries.
func (q *Qop[T]) Trace() T {
	if q.kind == StorageSparse {
		return ptrans.SparseTrace(q.sp)
	}

	var tr T
	d := q.Dim()
	for i := 0; i < d; i++ {
		tr += q.dense[i*d+i]
	}

	return tr
}

// Dag returns the conjugate transpose, preserving storage kind.
func (q *Qop[T]) Dag() *Qop[T] {
	out := &Qop[T]{dims: copyInts(q.dims), kind: q.kind}
	if q.kind == StorageSparse {
		out.sp = ptrans.SparseDag(q.sp)
		return out
	}

	d := q.Dim()
	data := ptrans.DenseFullTranspose(q.dense, d)
	for i := range data {
		data[i] = ptrans.Conj(data[i])
	}
	out.dense = data

	return out
}

// Kron returns the tensor product a (x) b; the dimension lists concatenate.
// The result is sparse when both operands are sparse, dense otherwise.
func Kron[T Complex](a, b *Qop[T]) *Qop[T] {
	dims := make([]int, 0, len(a.dims)+len(b.dims))
	dims = append(dims, a.dims...)
	dims = append(dims, b.dims...)

	if a.kind == StorageSparse && b.kind == StorageSparse {
		return &Qop[T]{dims: dims, kind: StorageSparse, sp: ptrans.SparseKron(a.sp, b.sp)}
	}

	da, db := a.Dim(), b.Dim()
	ad := a.DenseData()
	bd := b.DenseData()
	d := da * db
	data := make([]T, d*d)
	var zero T
	for i1 := 0; i1 < da; i1++ {
		for j1 := 0; j1 < da; j1++ {
			v := ad[i1*da+j1]
			if v == zero {
				continue
			}
			for i2 := 0; i2 < db; i2++ {
				row := (i1*db + i2) * d
				for j2 := 0; j2 < db; j2++ {
					data[row+j1*db+j2] = v * bd[i2*db+j2]
				}
			}
		}
	}

	return &Qop[T]{dims: dims, kind: StorageDense, dense: data}
}
