package gpu

// Plan is a device-backed partial-transpose plan for a fixed dimension list,
// selection mask, and precision.
//
// The plan owns device buffers and streams and is safe for concurrent use
// only if the underlying backend is thread-safe.
type Plan[T Complex] struct {
	dims      []int
	mask      []bool
	d         int
	precision PrecisionKind
	ctx       Context
	streams   []Stream
	options   PlanOptions
	impl      TransposeImpl
}

// NewPlan creates a device plan using the registered backend. dims is the
// subsystem dimension list of the operators the plan will transform; mask
// selects the transposed subsystems and must have one entry per subsystem.
func NewPlan[T Complex](dims []int, mask []bool, opts PlanOptions) (*Plan[T], error) {
	if len(dims) == 0 {
		return nil, ErrInvalidDims
	}
	d := 1
	for _, dim := range dims {
		if dim < 1 {
			return nil, ErrInvalidDims
		}
		d *= dim
	}
	if len(mask) != len(dims) {
		return nil, ErrMaskLength
	}

	backend := getBackend()
	if backend == nil {
		return nil, ErrNoBackend
	}

	if !backend.Available() {
		return nil, ErrBackendUnavailable
	}

	ctx, err := backend.NewContext(opts.DeviceIndex)
	if err != nil {
		return nil, err
	}

	precision := PrecisionComplex64
	var zero T
	switch any(zero).(type) {
	case complex128:
		precision = PrecisionComplex128
	case complex64:
		precision = PrecisionComplex64
	}

	streamCount := opts.StreamCount
	if streamCount <= 0 {
		streamCount = 1
	}

	streams := make([]Stream, 0, streamCount)
	for i := 0; i < streamCount; i++ {
		stream, err := ctx.NewStream()
		if err != nil {
			for _, s := range streams {
				_ = s.Close()
			}
			_ = ctx.Close()
			return nil, err
		}
		streams = append(streams, stream)
	}

	dimsCopy := make([]int, len(dims))
	copy(dimsCopy, dims)
	maskCopy := make([]bool, len(mask))
	copy(maskCopy, mask)

	impl, err := ctx.NewTransposePlan(dimsCopy, maskCopy, precision, opts)
	if err != nil {
		for _, s := range streams {
			_ = s.Close()
		}
		_ = ctx.Close()
		return nil, err
	}

	return &Plan[T]{
		dims:      dimsCopy,
		mask:      maskCopy,
		d:         d,
		precision: precision,
		ctx:       ctx,
		streams:   streams,
		options:   opts,
		impl:      impl,
	}, nil
}

// Dim returns the total Hilbert-space dimension D; plans operate on D*D
// element buffers.
func (p *Plan[T]) Dim() int {
	if p == nil {
		return 0
	}
	return p.d
}

// Precision returns the plan precision.
func (p *Plan[T]) Precision() PrecisionKind {
	if p == nil {
		return PrecisionComplex64
	}
	return p.precision
}

// Execute applies the partial transpose to a row-major D x D matrix on the
// device. dst and src must each hold at least D*D elements and may alias.
func (p *Plan[T]) Execute(dst, src []T) error {
	if p == nil {
		return ErrNotImplemented
	}
	if dst == nil || src == nil {
		return ErrNilSlice
	}
	if len(dst) < p.d*p.d || len(src) < p.d*p.d {
		return ErrLengthMismatch
	}
	if p.impl == nil {
		return ErrNotImplemented
	}
	return p.impl.Execute(dst, src)
}

// ExecuteInPlace applies the partial transpose in-place.
func (p *Plan[T]) ExecuteInPlace(data []T) error {
	return p.Execute(data, data)
}

// Close releases device resources associated with the plan.
func (p *Plan[T]) Close() error {
	if p == nil {
		return nil
	}
	if p.impl != nil {
		_ = p.impl.Close()
		p.impl = nil
	}
	var firstErr error
	for _, s := range p.streams {
		if s == nil {
			continue
		}
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	p.streams = nil
	if p.ctx != nil {
		if err := p.ctx.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		p.ctx = nil
	}
	return firstErr
}
