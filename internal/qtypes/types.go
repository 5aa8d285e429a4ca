package qtypes

// Complex is the type constraint for complex element types supported by the
// operator kernels. All kernels are generic over this constraint and dispatch
// on the concrete type only where precision matters.
type Complex interface {
	~complex64 | ~complex128
}

// Float is the type constraint for the real component types matching Complex.
type Float interface {
	~float32 | ~float64
}
