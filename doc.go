// Package algoquant implements operators on composite (tensor-product)
// Hilbert spaces, centered on the partial transpose of density matrices.
//
// A Qop is a square D x D operator tagged with an ordered list of subsystem
// dimensions whose product is D. It is backed by either dense row-major
// storage or a compressed sparse column (CSC) structure; PartialTranspose
// dispatches to a kernel matched to the storage and always returns a new
// operator. Both kernels share one mixed-radix indexing convention, so dense
// and sparse results agree exactly for the same logical operator.
//
// The gpu subpackage extends the same operation to device-resident buffers
// behind a pluggable backend interface.
package algoquant
