package algoquant_test

import (
	"math/rand"
	"testing"

	algoquant "github.com/cwbudde/algo-quant"
	"github.com/stretchr/testify/require"
)

// Shared helpers for the operator test suites.

const testTol = 1e-12

func mustDense(t *testing.T, dims []int, data []complex128) *algoquant.Qop[complex128] {
	t.Helper()

	q, err := algoquant.NewDense(dims, data)
	require.NoError(t, err)

	return q
}

func randomOperator(t *testing.T, dims []int, seed int64) *algoquant.Qop[complex128] {
	t.Helper()

	d := 1
	for _, dim := range dims {
		d *= dim
	}
	rnd := rand.New(rand.NewSource(seed))
	data := make([]complex128, d*d)
	for i := range data {
		data[i] = complex(rnd.NormFloat64(), rnd.NormFloat64())
	}

	return mustDense(t, dims, data)
}

// randomDensityMatrix returns a valid density matrix: G G^dag normalized to
// unit trace, with ~30% of G's entries zeroed so the sparse storage has
// structure to work with.
func randomDensityMatrix(t *testing.T, dims []int, seed int64) *algoquant.Qop[complex128] {
	t.Helper()

	d := 1
	for _, dim := range dims {
		d *= dim
	}
	rnd := rand.New(rand.NewSource(seed))
	g := make([]complex128, d*d)
	for i := range g {
		if rnd.Float64() < 0.3 {
			continue
		}
		g[i] = complex(rnd.NormFloat64(), rnd.NormFloat64())
	}

	rho := make([]complex128, d*d)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			var s complex128
			for k := 0; k < d; k++ {
				gjk := g[j*d+k]
				s += g[i*d+k] * complex(real(gjk), -imag(gjk))
			}
			rho[i*d+j] = s
		}
	}

	var tr complex128
	for i := 0; i < d; i++ {
		tr += rho[i*d+i]
	}
	require.NotZero(t, real(tr))
	for i := range rho {
		rho[i] /= complex(real(tr), 0)
	}

	return mustDense(t, dims, rho)
}

// transposed returns the plain matrix transpose of a 2D complex slice laid
// out row-major with side d.
func transposed(data []complex128, d int) []complex128 {
	out := make([]complex128, d*d)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			out[j*d+i] = data[i*d+j]
		}
	}

	return out
}

// kronFlat computes the Kronecker product of two row-major square matrices
// independently of the library's Kron.
func kronFlat(a []complex128, da int, b []complex128, db int) []complex128 {
	d := da * db
	out := make([]complex128, d*d)
	for i1 := 0; i1 < da; i1++ {
		for j1 := 0; j1 < da; j1++ {
			for i2 := 0; i2 < db; i2++ {
				for j2 := 0; j2 < db; j2++ {
					out[(i1*db+i2)*d+(j1*db+j2)] = a[i1*da+j1] * b[i2*db+j2]
				}
			}
		}
	}

	return out
}

func requireOperatorsEqual(t *testing.T, want, got *algoquant.Qop[complex128], tol float64) {
	t.Helper()

	require.True(t, algoquant.EqualApprox(want, got, tol),
		"operators differ beyond tolerance %g", tol)
}
