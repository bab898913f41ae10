package infwell_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ACasey13/brief-foray-into-QM/infwell"
)

// TestStudy_Validation ensures all arguments are rejected before any matrix
// work begins, with matchable sentinels.
func TestStudy_Validation(t *testing.T) {
	_, err := infwell.Study([]int{1, 2}, 0)
	assert.ErrorIs(t, err, infwell.ErrBadTruncation, "k=0 must be rejected")

	_, err = infwell.Study([]int{1, 0, 2}, 3)
	assert.ErrorIs(t, err, infwell.ErrBadBasisSize, "size 0 must be rejected")
	assert.ErrorContains(t, err, "N=0", "error must name the offending size")

	_, err = infwell.Study([]int{1, 2}, 3, infwell.WithParallel(0))
	assert.ErrorIs(t, err, infwell.ErrBadWorkers)
}

// TestStudy_EmptySizes: an empty request is not an error, just an empty report.
func TestStudy_EmptySizes(t *testing.T) {
	rep, err := infwell.Study(nil, 3)
	require.NoError(t, err)
	assert.Empty(t, rep.Sizes)
	assert.Empty(t, rep.Spectra)
}

// TestStudy_TruncationLength verifies each size contributes min(k, n) levels.
func TestStudy_TruncationLength(t *testing.T) {
	rep, err := infwell.Study([]int{1, 3, 5}, 4)
	require.NoError(t, err)

	assert.Len(t, rep.Spectra[1], 1)
	assert.Len(t, rep.Spectra[3], 3)
	assert.Len(t, rep.Spectra[5], 4)
}

// TestStudy_GroundStateMonotone checks the variational principle: enlarging
// the basis can only lower (or keep) the ground-state upper bound, which
// converges onto π²/4.
func TestStudy_GroundStateMonotone(t *testing.T) {
	sizes := make([]int, 16)
	for i := range sizes {
		sizes[i] = i + 1
	}
	rep, err := infwell.Study(sizes, 1)
	require.NoError(t, err)

	prev := rep.Spectra[1][0]
	for _, n := range sizes[1:] {
		cur := rep.Spectra[n][0]
		assert.LessOrEqual(t, cur, prev+1e-12, "ground bound rose from N=%d to N=%d", n-1, n)
		prev = cur
	}
	assert.InDelta(t, infwell.ExactLevel(0), rep.Spectra[16][0], 1e-9)
}

// TestStudy_SixteenBasisFunctions pins the documented N=16 table: the five
// lowest levels sit on the closed-form energies (j+1)²·π²/4 to better than
// 1e-3 at this size.
func TestStudy_SixteenBasisFunctions(t *testing.T) {
	rep, err := infwell.Study([]int{16}, 5)
	require.NoError(t, err)

	want := []float64{2.4674011, 9.8696044, 22.2066099, 39.4784176, 61.68502755}
	got := rep.Spectra[16]
	require.Len(t, got, 5)
	for j, w := range want {
		assert.InDelta(t, w, got[j], 1e-4, "level %d", j)
		assert.InDelta(t, infwell.ExactLevel(j), got[j], 1e-3, "level %d vs closed form", j)
	}
}

// TestStudy_ParallelMatchesSequential: sizes are independent, so the fan-out
// must be bit-identical to the sequential run.
func TestStudy_ParallelMatchesSequential(t *testing.T) {
	sizes := []int{1, 2, 3, 5, 8, 12, 16}

	seq, err := infwell.Study(sizes, 4)
	require.NoError(t, err)
	par, err := infwell.Study(sizes, 4, infwell.WithParallel(4))
	require.NoError(t, err)

	assert.Equal(t, seq.Sizes, par.Sizes)
	assert.Equal(t, seq.Spectra, par.Spectra)
}

// TestReport_Summary checks the deviation statistics and the unknown-size
// sentinel.
func TestReport_Summary(t *testing.T) {
	rep, err := infwell.Study([]int{2, 16}, 5)
	require.NoError(t, err)

	sum, err := rep.Summary(16)
	require.NoError(t, err)
	assert.Equal(t, 16, sum.Size)
	assert.Less(t, sum.MaxAbsErr, 1e-3)
	assert.LessOrEqual(t, sum.MeanAbsErr, sum.MaxAbsErr)

	_, err = rep.Summary(7)
	assert.ErrorIs(t, err, infwell.ErrUnknownSize)
}

// TestReport_String pins the rendering format used by the examples.
func TestReport_String(t *testing.T) {
	rep, err := infwell.Study([]int{1, 2}, 2)
	require.NoError(t, err)

	assert.Equal(t, "N= 1: 2.500000\nN= 2: 2.500000 10.500000\n", rep.String())
}

// TestExactLevel pins the closed-form ladder and the negative-index guard.
func TestExactLevel(t *testing.T) {
	assert.InDelta(t, 2.4674011, infwell.ExactLevel(0), 1e-7)
	assert.InDelta(t, 9.8696044, infwell.ExactLevel(1), 1e-7)
	assert.InDelta(t, 22.2066099, infwell.ExactLevel(2), 1e-7)
	assert.True(t, math.IsNaN(infwell.ExactLevel(-1)), "negative index must yield NaN")
}
