// Package hydrogen bounds the hydrogen-atom ground-state energy from above
// with a single-parameter Gaussian trial wavefunction ψ_α(r) = exp(−α·r²).
//
// Overview:
//
//   - The expectation value of the hydrogen Hamiltonian in ψ_α has a closed
//     form; no integration is performed at runtime:
//     E(α) = 3ħ²α/(2m) − (e²/(4πε₀))·2·√(2α/π)
//   - By the variational principle E(α) ≥ E₀ for every α > 0, so minimizing
//     E over α tightens the bound. The optimum is analytic:
//     α* = (m·e²/(ħ²·4πε₀))²·8/(9π), with E(α*) = −4/(3π) Hartree in atomic
//     units, about 85% of the true ground energy −1/2 Hartree.
//   - Minimization is delegated to a derivative-free Nelder–Mead simplex
//     (gonum/optimize) behind the scalar Minimize contract; any unimodal-ish
//     objective works.
//
// Physical constants enter through an explicit Constants value — there is no
// package-level mutable state. AtomicUnits() gives the Hartree reduction
// (ħ = m = e = 4πε₀ = 1) used throughout the tests.
//
// Error handling (sentinel errors):
//
//   - ErrBadConstants — a non-positive physical constant.
//   - ErrBadGuess     — a NaN or infinite initial guess.
//   - ErrNotConverged — the minimizer failed or exhausted its budget.
//
// API reference:
//
//	func AtomicUnits() Constants
//	func Energy(c Constants, alpha float64) float64
//	func Minimize(f func(float64) float64, x0 float64, opts ...Option) (float64, error)
//	func GroundState(c Constants, opts ...Option) (alpha, energy float64, err error)
package hydrogen
