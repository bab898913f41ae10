package infwell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/ACasey13/brief-foray-into-QM/infwell"
)

// TestAssemble_RejectsBadSize ensures sizes below 1 fail with
// ErrBadBasisSize before any allocation.
func TestAssemble_RejectsBadSize(t *testing.T) {
	for _, n := range []int{0, -1, -17} {
		h, s, err := infwell.Assemble(n)
		assert.ErrorIs(t, err, infwell.ErrBadBasisSize, "n=%d must be rejected", n)
		assert.Nil(t, h)
		assert.Nil(t, s)
	}
}

// TestAssemble_SymmetryAndParityPattern checks that the assembled matrices
// inherit the generator's symmetry and odd-parity zero pattern.
func TestAssemble_SymmetryAndParityPattern(t *testing.T) {
	const n = 6
	h, s, err := infwell.Assemble(n)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, h.At(i, j), h.At(j, i), "H(%d,%d) symmetry", i, j)
			assert.Equal(t, s.At(i, j), s.At(j, i), "S(%d,%d) symmetry", i, j)
			if (i+j)%2 != 0 {
				assert.Zero(t, h.At(i, j), "H(%d,%d) parity zero", i, j)
				assert.Zero(t, s.At(i, j), "S(%d,%d) parity zero", i, j)
			}
		}
	}
}

// TestAssemble_Idempotent verifies two assemblies of the same size are
// bit-identical: the generator is pure and matrices are freshly allocated.
func TestAssemble_Idempotent(t *testing.T) {
	h1, s1, err := infwell.Assemble(9)
	require.NoError(t, err)
	h2, s2, err := infwell.Assemble(9)
	require.NoError(t, err)

	assert.True(t, mat.Equal(h1, h2), "H must be bit-identical across calls")
	assert.True(t, mat.Equal(s1, s2), "S must be bit-identical across calls")
}

// TestAssemble_OverlapPositiveDefinite confirms the Gram-matrix invariant:
// every eigenvalue of S is strictly positive for all supported sizes.
func TestAssemble_OverlapPositiveDefinite(t *testing.T) {
	for n := 1; n <= 12; n++ {
		_, s, err := infwell.Assemble(n)
		require.NoError(t, err)

		var eig mat.EigenSym
		require.True(t, eig.Factorize(s, false), "eigendecomposition of S at n=%d", n)
		for _, v := range eig.Values(nil) {
			assert.Greater(t, v, 0.0, "S eigenvalue at n=%d", n)
		}
	}
}
