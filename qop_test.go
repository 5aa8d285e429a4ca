package algoquant_test

import (
	"testing"

	algoquant "github.com/cwbudde/algo-quant"
	"github.com/stretchr/testify/require"
)

func TestNewDenseValidation(t *testing.T) {
	t.Parallel()

	_, err := algoquant.NewDense(nil, []complex128{1})
	require.ErrorIs(t, err, algoquant.ErrInvalidDims)

	_, err = algoquant.NewDense([]int{2, 0}, []complex128{})
	require.ErrorIs(t, err, algoquant.ErrInvalidDims)

	_, err = algoquant.NewDense[complex128]([]int{2}, nil)
	require.ErrorIs(t, err, algoquant.ErrNilData)

	_, err = algoquant.NewDense([]int{2}, []complex128{1, 2, 3})
	require.ErrorIs(t, err, algoquant.ErrDataLength)

	q, err := algoquant.NewDense([]int{2}, []complex128{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, algoquant.StorageDense, q.Storage())
	require.Equal(t, 2, q.Dim())
}

func TestNewSparseValidation(t *testing.T) {
	t.Parallel()

	dims := []int{2}

	// Valid: entries (0,0)=1 and (1,1)=2.
	q, err := algoquant.NewSparse(dims, []int{0, 1, 2}, []int{0, 1}, []complex128{1, 2})
	require.NoError(t, err)
	require.Equal(t, algoquant.StorageSparse, q.Storage())
	require.Equal(t, 2, q.NNZ())
	require.Equal(t, complex128(1), q.At(0, 0))
	require.Equal(t, complex128(2), q.At(1, 1))
	require.Equal(t, complex128(0), q.At(0, 1))

	_, err = algoquant.NewSparse(dims, nil, nil, []complex128{})
	require.ErrorIs(t, err, algoquant.ErrNilData)

	// Wrong colPtr length.
	_, err = algoquant.NewSparse(dims, []int{0, 1}, []int{0}, []complex128{1})
	require.ErrorIs(t, err, algoquant.ErrInvalidSparse)

	// Non-monotone column pointers. The middle offset also exceeds the entry
	// count, which must be rejected rather than read out of range.
	_, err = algoquant.NewSparse(dims, []int{0, 2, 1}, []int{0}, []complex128{1})
	require.ErrorIs(t, err, algoquant.ErrInvalidSparse)

	// Monotone prefix whose offsets overrun the stored entries.
	_, err = algoquant.NewSparse([]int{4}, []int{0, 3, 3, 3, 2}, []int{0, 1}, []complex128{1, 2})
	require.ErrorIs(t, err, algoquant.ErrInvalidSparse)

	// Row index out of range.
	_, err = algoquant.NewSparse(dims, []int{0, 1, 1}, []int{5}, []complex128{1})
	require.ErrorIs(t, err, algoquant.ErrInvalidSparse)

	// Rows not strictly increasing within a column.
	_, err = algoquant.NewSparse(dims, []int{0, 2, 2}, []int{1, 1}, []complex128{1, 2})
	require.ErrorIs(t, err, algoquant.ErrInvalidSparse)
}

func TestStorageConversionsRoundTrip(t *testing.T) {
	t.Parallel()

	q := randomDensityMatrix(t, []int{2, 3}, 11)

	sp := q.ToSparse()
	require.Equal(t, algoquant.StorageSparse, sp.Storage())
	back := sp.ToDense()
	require.Equal(t, algoquant.StorageDense, back.Storage())
	requireOperatorsEqual(t, q, back, 0)

	// Sparse round trip of an already sparse operator.
	again := sp.ToSparse()
	requireOperatorsEqual(t, q, again, 0)
}

func TestCloneIndependence(t *testing.T) {
	t.Parallel()

	q := mustDense(t, []int{2}, []complex128{1, 2, 3, 4})
	c := q.Clone()
	requireOperatorsEqual(t, q, c, 0)

	// DenseData is a copy; mutating it must not leak back.
	data := c.DenseData()
	data[0] = 99
	require.Equal(t, complex128(1), c.At(0, 0))
}

func TestDimsReturnsCopy(t *testing.T) {
	t.Parallel()

	q := mustDense(t, []int{2, 2}, make([]complex128, 16))
	dims := q.Dims()
	dims[0] = 7
	require.Equal(t, []int{2, 2}, q.Dims())
}

func TestTrace(t *testing.T) {
	t.Parallel()

	q := mustDense(t, []int{2}, []complex128{1 + 1i, 5, 6, 2 - 3i})
	require.Equal(t, 3-2i, q.Trace())
	require.Equal(t, 3-2i, q.ToSparse().Trace())
}

func TestDag(t *testing.T) {
	t.Parallel()

	q := mustDense(t, []int{2}, []complex128{1 + 1i, 2i, 3, 4})
	want := mustDense(t, []int{2}, []complex128{1 - 1i, 3, -2i, 4})

	requireOperatorsEqual(t, want, q.Dag(), 0)
	requireOperatorsEqual(t, want, q.ToSparse().Dag(), 0)

	// Dag is an involution.
	requireOperatorsEqual(t, q, q.Dag().Dag(), 0)
}

func TestKron(t *testing.T) {
	t.Parallel()

	a := []complex128{1, 2, 3, 4}
	b := []complex128{0, 1i, -1i, 0}
	qa := mustDense(t, []int{2}, a)
	qb := mustDense(t, []int{2}, b)

	want := mustDense(t, []int{2, 2}, kronFlat(a, 2, b, 2))

	dense := algoquant.Kron(qa, qb)
	require.Equal(t, []int{2, 2}, dense.Dims())
	require.Equal(t, algoquant.StorageDense, dense.Storage())
	requireOperatorsEqual(t, want, dense, 0)

	sparse := algoquant.Kron(qa.ToSparse(), qb.ToSparse())
	require.Equal(t, algoquant.StorageSparse, sparse.Storage())
	requireOperatorsEqual(t, want, sparse, 0)

	// Mixed storage falls back to dense.
	mixed := algoquant.Kron(qa.ToSparse(), qb)
	require.Equal(t, algoquant.StorageDense, mixed.Storage())
	requireOperatorsEqual(t, want, mixed, 0)
}

func TestRawSparse(t *testing.T) {
	t.Parallel()

	q := mustDense(t, []int{2}, []complex128{1, 0, 0, 2}).ToSparse()
	colPtr, rowIdx, values := q.RawSparse()
	require.Equal(t, []int{0, 1, 2}, colPtr)
	require.Equal(t, []int{0, 1}, rowIdx)
	require.Equal(t, []complex128{1, 2}, values)

	colPtr, rowIdx, values = q.ToDense().RawSparse()
	require.Nil(t, colPtr)
	require.Nil(t, rowIdx)
	require.Nil(t, values)
}

func TestStorageKindString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "dense", algoquant.StorageDense.String())
	require.Equal(t, "sparse", algoquant.StorageSparse.String())
	require.Equal(t, "unknown", algoquant.StorageKind(9).String())
}
