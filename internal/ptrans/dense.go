// Package ptrans implements the partial-transpose kernels for composite
// operators, one per storage layout. The dense kernel gathers through a
// permuted-stride view of the flat matrix; the sparse kernel remaps nonzero
// coordinates in a single pass. Both take the mixed-radix convention from
// internal/qindex, so their index mappings agree by construction.
package ptrans

import (
	"runtime"
	"sync"

	"github.com/cwbudde/algo-quant/internal/qindex"
	"github.com/cwbudde/algo-quant/internal/qtypes"
)

// denseParallelMin is the element count above which the dense kernel fans
// the row loop out across GOMAXPROCS workers. Each worker writes a disjoint
// row range, so the output is identical to the serial path.
const denseParallelMin = 1 << 15

// Dense applies the partial transpose to a row-major D x D matrix, where
// D is the product of dims, and returns a freshly allocated result. The
// matrix is read as a 2n-axis tensor with shape (dims, dims): the first n
// axes index the ket (row) side, the last n the bra (column) side. For every
// masked subsystem the corresponding ket and bra axes are exchanged.
//
// The caller guarantees len(src) == D*D and len(mask) == len(dims).
func Dense[T qtypes.Complex](src []T, dims []int, mask []bool) []T {
	n := len(dims)
	d := qindex.Product(dims)
	dst := make([]T, d*d)

	if n == 0 {
		copy(dst, src)
		return dst
	}

	// Strides of the 2n-axis view, then the axis permutation: output axis a
	// gathers from input axis perm[a]. Unmasked axes map to themselves;
	// masked axes swap ket <-> bra.
	shape := make([]int, 2*n)
	copy(shape, dims)
	copy(shape[n:], dims)
	strides := qindex.Strides(shape)

	ketStride := make([]int, n)
	braStride := make([]int, n)
	for k := 0; k < n; k++ {
		if mask[k] {
			ketStride[k] = strides[n+k]
			braStride[k] = strides[k]
		} else {
			ketStride[k] = strides[k]
			braStride[k] = strides[n+k]
		}
	}

	workers := runtime.GOMAXPROCS(0)
	if d*d < denseParallelMin || workers <= 1 {
		denseRows(dst, src, dims, ketStride, braStride, 0, d)
		return dst
	}

	if workers > d {
		workers = d
	}
	chunk := (d + workers - 1) / workers

	var wg sync.WaitGroup
	for r0 := 0; r0 < d; r0 += chunk {
		r1 := r0 + chunk
		if r1 > d {
			r1 = d
		}
		wg.Add(1)
		go func(r0, r1 int) {
			defer wg.Done()
			denseRows(dst, src, dims, ketStride, braStride, r0, r1)
		}(r0, r1)
	}
	wg.Wait()

	return dst
}

// denseRows fills output rows [r0, r1). For each row the ket digits are fixed,
// so the source offset is a base plus a bra-digit odometer that advances by
// braStride increments as the column counts up in row-major order.
func denseRows[T qtypes.Complex](dst, src []T, dims []int, ketStride, braStride []int, r0, r1 int) {
	n := len(dims)
	ket := make([]int, n)
	bra := make([]int, n)
	cols := qindex.Product(dims)

	for r := r0; r < r1; r++ {
		qindex.DecomposeInto(ket, r, dims)

		base := 0
		for k := 0; k < n; k++ {
			base += ket[k] * ketStride[k]
		}

		for k := range bra {
			bra[k] = 0
		}
		off := base
		row := dst[r*cols : (r+1)*cols]

		for c := 0; c < cols; c++ {
			row[c] = src[off]

			for k := n - 1; k >= 0; k-- {
				bra[k]++
				off += braStride[k]
				if bra[k] < dims[k] {
					break
				}
				bra[k] = 0
				off -= dims[k] * braStride[k]
			}
		}
	}
}

// DenseFullTranspose returns the ordinary transpose of a row-major d x d
// matrix. Used by operator algebra helpers; the partial-transpose kernel with
// an all-true mask produces the same result.
func DenseFullTranspose[T qtypes.Complex](src []T, d int) []T {
	dst := make([]T, d*d)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			dst[j*d+i] = src[i*d+j]
		}
	}

	return dst
}
