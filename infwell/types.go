// Package infwell: sentinel errors and functional options.
//
// Every sentinel is prefixed with "infwell: ..." for consistency and easy
// grepping. Algorithms return these sentinels directly; the study driver may
// wrap them with the offending basis size via fmt.Errorf("...: %w", err), and
// callers match with errors.Is either way.
package infwell

import "errors"

// Sentinel errors returned by the infwell package.
var (
	// ErrBadBasisSize indicates a requested basis size below 1.
	// Rejected before any matrix work begins.
	ErrBadBasisSize = errors.New("infwell: basis size must be >= 1")

	// ErrBadTruncation indicates that the number of levels to report is below 1.
	ErrBadTruncation = errors.New("infwell: truncation count must be >= 1")

	// ErrBadWorkers indicates WithParallel was given a worker count below 1.
	ErrBadWorkers = errors.New("infwell: worker count must be >= 1")

	// ErrNilMatrix indicates a nil Hamiltonian or overlap matrix was passed
	// to the solver.
	ErrNilMatrix = errors.New("infwell: nil matrix")

	// ErrDimensionMismatch indicates H and S are not of the same order.
	ErrDimensionMismatch = errors.New("infwell: dimension mismatch between H and S")

	// ErrOverlapNotSPD indicates the overlap matrix failed Cholesky
	// factorization, i.e. it is numerically not symmetric positive definite.
	// Analytically impossible for this basis family, but guarded so a defect
	// surfaces as an error instead of NaN propagation.
	ErrOverlapNotSPD = errors.New("infwell: overlap matrix is not positive definite")

	// ErrEigenFailed indicates the symmetric eigendecomposition of the
	// Cholesky-reduced problem did not converge.
	ErrEigenFailed = errors.New("infwell: eigendecomposition failed")

	// ErrUnknownSize indicates a Report lookup for a basis size that was not
	// part of the study.
	ErrUnknownSize = errors.New("infwell: size not present in report")
)

// DefaultWorkers is the default fan-out width for Study: strictly sequential.
const DefaultWorkers = 1

// Options configures the convergence study driver.
// Fields are unexported; public APIs consume ...Option.
type Options struct {
	workers int
}

// Option mutates Options; build one with the WithX constructors below.
type Option func(*Options)

// DefaultOptions returns the documented defaults: sequential processing.
func DefaultOptions() Options {
	return Options{workers: DefaultWorkers}
}

// WithParallel fans the study's basis sizes out across at most `workers`
// goroutines. Sizes are independent and side-effect-free, so results are
// bit-identical to the sequential run. Validation happens in Study:
// workers < 1 yields ErrBadWorkers.
func WithParallel(workers int) Option {
	return func(o *Options) { o.workers = workers }
}

// gatherOptions folds user options over the defaults and validates them.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.workers < 1 {
		return Options{}, ErrBadWorkers
	}

	return o, nil
}
