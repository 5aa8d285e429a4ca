// Package gpu provides an experimental device backend for algoquant.
//
// This package defines a dedicated device plan API for the partial transpose
// that mirrors the CPU surface while allowing persistent device buffers and
// backend-specific execution contexts. The implementation is intentionally
// minimal and currently requires a backend to be registered at runtime. The
// mathematical contract is the same as the host path: for a given operator
// and mask, a device plan must produce results numerically equivalent to
// Qop.PartialTranspose regardless of where the data resides.
package gpu
