// Package hydrogen: sentinel errors, physical constants, and minimizer options.
package hydrogen

import "errors"

// Sentinel errors returned by the hydrogen package.
var (
	// ErrBadConstants indicates a Constants value with a non-positive field.
	ErrBadConstants = errors.New("hydrogen: physical constants must be positive")

	// ErrBadGuess indicates a NaN or infinite initial guess passed to Minimize.
	ErrBadGuess = errors.New("hydrogen: initial guess must be finite")

	// ErrNotConverged indicates the scalar minimizer failed to converge
	// within its evaluation budget.
	ErrNotConverged = errors.New("hydrogen: minimizer did not converge")
)

// Constants carries the physical constants the Gaussian-trial energy depends
// on. They are passed explicitly wherever needed; nothing is cached at
// package level.
type Constants struct {
	// Hbar is the reduced Planck constant ħ.
	Hbar float64

	// Mass is the electron mass m.
	Mass float64

	// Charge is the elementary charge e.
	Charge float64

	// FourPiEps0 is 4πε₀, the Coulomb-law denominator.
	FourPiEps0 float64
}

// AtomicUnits returns the Hartree reduction ħ = m = e = 4πε₀ = 1, in which
// energies come out in Hartree and lengths in Bohr radii.
func AtomicUnits() Constants {
	return Constants{Hbar: 1, Mass: 1, Charge: 1, FourPiEps0: 1}
}

// valid reports whether every constant is strictly positive and finite
// enough to form the energy expression.
func (c Constants) valid() bool {
	return c.Hbar > 0 && c.Mass > 0 && c.Charge > 0 && c.FourPiEps0 > 0
}

// DefaultGuess is the initial variational parameter handed to the minimizer
// by GroundState. Any positive starting point works; this one is within a
// factor of a few of the optimum in atomic units.
const DefaultGuess = 1.0

// DefaultMaxEvaluations bounds the objective-evaluation budget of Minimize.
const DefaultMaxEvaluations = 1000

// Options configures Minimize. Fields are unexported; public APIs consume
// ...Option.
type Options struct {
	maxEvals int
}

// Option mutates Options; build one with the WithX constructors below.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{maxEvals: DefaultMaxEvaluations}
}

// WithMaxEvaluations caps the number of objective evaluations. Values below 1
// fall back to the default.
func WithMaxEvaluations(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.maxEvals = n
		}
	}
}

// gatherOptions folds user options over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
