package ptrans

import (
	"sort"

	"github.com/cwbudde/algo-quant/internal/qtypes"
)

// CSC is a compressed sparse column matrix. ColPtr has Cols+1 entries;
// column j occupies Values[ColPtr[j]:ColPtr[j+1]] with matching RowIdx.
// Within a column, row indices are strictly increasing.
//
// The struct trusts its invariants; validation of externally supplied
// structures happens in the public package before a CSC is built.
type CSC[T qtypes.Complex] struct {
	Rows   int
	Cols   int
	ColPtr []int
	RowIdx []int
	Values []T
}

// Triplet is a single (row, column, value) coordinate entry.
type Triplet[T qtypes.Complex] struct {
	Row, Col int
	Value    T
}

// NNZ returns the number of stored entries.
func (m *CSC[T]) NNZ() int {
	return len(m.Values)
}

// At returns the entry at (i, j), or zero if no entry is stored there.
// Indices must be in range; this is a kernel-level accessor.
func (m *CSC[T]) At(i, j int) T {
	lo, hi := m.ColPtr[j], m.ColPtr[j+1]
	p := lo + sort.SearchInts(m.RowIdx[lo:hi], i)
	if p < hi && m.RowIdx[p] == i {
		return m.Values[p]
	}

	var zero T
	return zero
}

// Clone returns a deep copy.
func (m *CSC[T]) Clone() *CSC[T] {
	out := &CSC[T]{
		Rows:   m.Rows,
		Cols:   m.Cols,
		ColPtr: make([]int, len(m.ColPtr)),
		RowIdx: make([]int, len(m.RowIdx)),
		Values: make([]T, len(m.Values)),
	}
	copy(out.ColPtr, m.ColPtr)
	copy(out.RowIdx, m.RowIdx)
	copy(out.Values, m.Values)

	return out
}

// ToDense expands the matrix into a row-major Rows x Cols slice.
func (m *CSC[T]) ToDense() []T {
	dense := make([]T, m.Rows*m.Cols)
	for j := 0; j < m.Cols; j++ {
		for p := m.ColPtr[j]; p < m.ColPtr[j+1]; p++ {
			dense[m.RowIdx[p]*m.Cols+j] = m.Values[p]
		}
	}

	return dense
}

// FromDense compresses a row-major matrix, dropping exact zeros.
func FromDense[T qtypes.Complex](data []T, rows, cols int) *CSC[T] {
	var zero T

	colPtr := make([]int, cols+1)
	var rowIdx []int
	var values []T

	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if v := data[i*cols+j]; v != zero {
				rowIdx = append(rowIdx, i)
				values = append(values, v)
			}
		}
		colPtr[j+1] = len(values)
	}

	return &CSC[T]{Rows: rows, Cols: cols, ColPtr: colPtr, RowIdx: rowIdx, Values: values}
}

// FromTriplets builds a CSC matrix from coordinate entries. Triplets sharing a
// (row, col) coordinate are summed, the standard sparse-construction contract.
// Explicit zeros and zeros arising from cancellation are kept as stored
// entries. The input slice is sorted in place.
func FromTriplets[T qtypes.Complex](rows, cols int, ts []Triplet[T]) *CSC[T] {
	sort.Slice(ts, func(a, b int) bool {
		if ts[a].Col != ts[b].Col {
			return ts[a].Col < ts[b].Col
		}
		return ts[a].Row < ts[b].Row
	})

	counts := make([]int, cols)
	rowIdx := make([]int, 0, len(ts))
	values := make([]T, 0, len(ts))

	prevRow, prevCol := -1, -1
	for _, tr := range ts {
		if tr.Row == prevRow && tr.Col == prevCol {
			values[len(values)-1] += tr.Value
			continue
		}
		rowIdx = append(rowIdx, tr.Row)
		values = append(values, tr.Value)
		counts[tr.Col]++
		prevRow, prevCol = tr.Row, tr.Col
	}

	colPtr := make([]int, cols+1)
	for j := 0; j < cols; j++ {
		colPtr[j+1] = colPtr[j] + counts[j]
	}

	return &CSC[T]{Rows: rows, Cols: cols, ColPtr: colPtr, RowIdx: rowIdx, Values: values}
}
