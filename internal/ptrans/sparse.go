package ptrans

import (
	"github.com/cwbudde/algo-quant/internal/qindex"
	"github.com/cwbudde/algo-quant/internal/qtypes"
)

// Sparse applies the partial transpose to a CSC operator in a single pass
// over the stored entries, without densifying. A diagonal entry decomposes to
// identical ket and bra digit tuples, so swapping masked digits is a no-op
// and the entry is forwarded unchanged. Off-diagonal entries are decomposed,
// the masked digits exchanged between row and column, and recomposed.
//
// The coordinate remap is a bijection (applying the same mask again inverts
// it), so distinct input entries cannot collide; FromTriplets would sum them
// if they ever did. Work is O(nnz * len(dims)).
//
// The caller guarantees m is D x D with D == Product(dims) and
// len(mask) == len(dims).
func Sparse[T qtypes.Complex](m *CSC[T], dims []int, mask []bool) *CSC[T] {
	n := len(dims)
	ket := make([]int, n)
	bra := make([]int, n)
	ts := make([]Triplet[T], 0, m.NNZ())

	for j := 0; j < m.Cols; j++ {
		for p := m.ColPtr[j]; p < m.ColPtr[j+1]; p++ {
			i := m.RowIdx[p]
			v := m.Values[p]

			if i == j {
				ts = append(ts, Triplet[T]{Row: i, Col: j, Value: v})
				continue
			}

			qindex.DecomposeInto(ket, i, dims)
			qindex.DecomposeInto(bra, j, dims)
			for k, swap := range mask {
				if swap {
					ket[k], bra[k] = bra[k], ket[k]
				}
			}
			ts = append(ts, Triplet[T]{
				Row:   qindex.Recompose(ket, dims),
				Col:   qindex.Recompose(bra, dims),
				Value: v,
			})
		}
	}

	return FromTriplets(m.Rows, m.Cols, ts)
}

// SparseDag returns the conjugate transpose of a CSC matrix.
func SparseDag[T qtypes.Complex](m *CSC[T]) *CSC[T] {
	ts := make([]Triplet[T], 0, m.NNZ())
	for j := 0; j < m.Cols; j++ {
		for p := m.ColPtr[j]; p < m.ColPtr[j+1]; p++ {
			ts = append(ts, Triplet[T]{Row: j, Col: m.RowIdx[p], Value: Conj(m.Values[p])})
		}
	}

	return FromTriplets(m.Cols, m.Rows, ts)
}

// SparseTrace returns the sum of the diagonal entries.
func SparseTrace[T qtypes.Complex](m *CSC[T]) T {
	var tr T
	for j := 0; j < m.Cols && j < m.Rows; j++ {
		tr += m.At(j, j)
	}

	return tr
}

// SparseKron returns the tensor (Kronecker) product of two CSC matrices.
// Coordinates compose as (i1*rows2 + i2, j1*cols2 + j2).
func SparseKron[T qtypes.Complex](a, b *CSC[T]) *CSC[T] {
	ts := make([]Triplet[T], 0, a.NNZ()*b.NNZ())
	for ja := 0; ja < a.Cols; ja++ {
		for pa := a.ColPtr[ja]; pa < a.ColPtr[ja+1]; pa++ {
			ia := a.RowIdx[pa]
			va := a.Values[pa]
			for jb := 0; jb < b.Cols; jb++ {
				for pb := b.ColPtr[jb]; pb < b.ColPtr[jb+1]; pb++ {
					ts = append(ts, Triplet[T]{
						Row:   ia*b.Rows + b.RowIdx[pb],
						Col:   ja*b.Cols + jb,
						Value: va * b.Values[pb],
					})
				}
			}
		}
	}

	return FromTriplets(a.Rows*b.Rows, a.Cols*b.Cols, ts)
}
