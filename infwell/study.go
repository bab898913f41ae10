package infwell

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
)

// Report holds the outcome of a convergence study: for every requested basis
// size, the ascending list of its lowest eigenvalues, truncated to the
// requested number of levels.
//
// Spectra is keyed by basis size; Sizes preserves the caller's request order
// for reporting. A Report is immutable once returned by Study.
type Report struct {
	// Sizes is the requested sequence of basis sizes, in request order.
	Sizes []int

	// Levels is the requested truncation k; size n contributes min(k, n)
	// eigenvalues.
	Levels int

	// Spectra maps basis size → ascending truncated eigenvalues.
	Spectra map[int][]float64
}

// Summary condenses one basis size's deviation from the closed-form well
// energies (j+1)²·π²/4.
type Summary struct {
	Size       int
	MeanAbsErr float64
	MaxAbsErr  float64
}

// ExactLevel returns the j-th closed-form energy level (j = 0 is the ground
// state) of the dimensionless infinite well on [−1, 1]: (j+1)²·π²/4.
// Negative j yields NaN.
func ExactLevel(j int) float64 {
	if j < 0 {
		return math.NaN()
	}
	halfPi := math.Pi / 2

	return float64(j+1) * float64(j+1) * halfPi * halfPi
}

// Study runs the full Ritz pipeline for every basis size in sizes and keeps
// the k lowest eigenvalues of each (min(k, n) for sizes below k).
//
// All sizes and k are validated before any matrix work begins. Sizes are
// mutually independent; with WithParallel they are fanned out across
// goroutines and the results are bit-identical to the sequential run.
//
// The first failing size aborts the whole study: the returned error names
// the offending size and wraps the underlying sentinel for errors.Is.
//
// Errors:
//   - ErrBadTruncation — k < 1.
//   - ErrBadBasisSize  — some requested size < 1 (wrapped with the size).
//   - ErrBadWorkers    — WithParallel given a count < 1.
//   - ErrOverlapNotSPD, ErrEigenFailed — forwarded from Solve, wrapped with
//     the offending size.
func Study(sizes []int, k int, opts ...Option) (*Report, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, ErrBadTruncation
	}
	for _, n := range sizes {
		if n < 1 {
			return nil, fmt.Errorf("study at N=%d: %w", n, ErrBadBasisSize)
		}
	}

	spectra := make([][]float64, len(sizes))
	if o.workers == 1 {
		for i, n := range sizes {
			if spectra[i], err = studyOne(n, k); err != nil {
				return nil, err
			}
		}
	} else {
		var g errgroup.Group
		g.SetLimit(o.workers)
		for i, n := range sizes {
			i, n := i, n
			g.Go(func() error {
				var gerr error
				spectra[i], gerr = studyOne(n, k)

				return gerr
			})
		}
		if err = g.Wait(); err != nil {
			return nil, err
		}
	}

	rep := &Report{
		Sizes:   append([]int(nil), sizes...),
		Levels:  k,
		Spectra: make(map[int][]float64, len(sizes)),
	}
	for i, n := range sizes {
		rep.Spectra[n] = spectra[i]
	}

	return rep, nil
}

// studyOne assembles and solves a single basis size, returning its min(k, n)
// lowest eigenvalues in ascending order.
func studyOne(n, k int) ([]float64, error) {
	h, s, err := Assemble(n)
	if err != nil {
		return nil, fmt.Errorf("study at N=%d: %w", n, err)
	}
	vals, err := Solve(h, s)
	if err != nil {
		return nil, fmt.Errorf("study at N=%d: %w", n, err)
	}

	// Ordering is the driver's contract, not the solver's.
	sort.Float64s(vals)
	if len(vals) > k {
		vals = vals[:k]
	}

	return vals, nil
}

// Summary reports the mean and maximum absolute deviation of size n's
// truncated spectrum from the closed-form levels. Only the ground-state
// deviation is variationally guaranteed to shrink with n; excited levels
// converge much more slowly and are informational.
//
// Errors:
//   - ErrUnknownSize — n was not part of this study.
func (r *Report) Summary(n int) (Summary, error) {
	spectrum, ok := r.Spectra[n]
	if !ok {
		return Summary{}, ErrUnknownSize
	}

	dev := make(stats.Float64Data, len(spectrum))
	for j, e := range spectrum {
		dev[j] = math.Abs(e - ExactLevel(j))
	}
	mean, err := stats.Mean(dev)
	if err != nil {
		return Summary{}, fmt.Errorf("summary at N=%d: %w", n, err)
	}
	maxDev, err := stats.Max(dev)
	if err != nil {
		return Summary{}, fmt.Errorf("summary at N=%d: %w", n, err)
	}

	return Summary{Size: n, MeanAbsErr: mean, MaxAbsErr: maxDev}, nil
}

// String renders one line per requested size:
//
//	N= 5: 2.467401 9.875388
func (r *Report) String() string {
	var b strings.Builder
	for _, n := range r.Sizes {
		fmt.Fprintf(&b, "N=%2d:", n)
		for _, e := range r.Spectra[n] {
			fmt.Fprintf(&b, " %.6f", e)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// WriteTo writes the String rendering to w, satisfying io.WriterTo.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	m, err := io.WriteString(w, r.String())

	return int64(m), err
}
