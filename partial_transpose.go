package algoquant

import "github.com/cwbudde/algo-quant/internal/ptrans"

// PartialTranspose transposes the operator with respect to the subsystems
// selected by mask and returns the result as a new operator with the same
// dimension list and storage kind. mask must have one entry per subsystem;
// a mismatch returns ErrMaskLength and is the only error this operation can
// produce.
//
// An all-false mask returns a value-equal copy; an all-true mask is the full
// matrix transpose. Applying the same mask twice returns the original
// operator, since swapping the same ket/bra digits is an involution.
func (q *Qop[T]) PartialTranspose(mask []bool) (*Qop[T], error) {
	if len(mask) != len(q.dims) {
		return nil, ErrMaskLength
	}

	out := &Qop[T]{dims: copyInts(q.dims), kind: q.kind}
	switch q.kind {
	case StorageSparse:
		out.sp = ptrans.Sparse(q.sp, q.dims, mask)
	default:
		out.dense = ptrans.Dense(q.dense, q.dims, mask)
	}

	return out, nil
}
