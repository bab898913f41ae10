package hydrogen

import "math"

// Energy returns the expectation value ⟨ψ_α|Ĥ|ψ_α⟩ of the hydrogen
// Hamiltonian in the normalized Gaussian trial state ψ_α(r) ∝ exp(−α·r²):
//
//	E(α) = 3ħ²α/(2m) − (e²/(4πε₀))·2·√(2α/π)
//
// The kinetic term grows linearly in α while the Coulomb term only tightens
// like √α, so E has a single interior minimum on α > 0. Non-positive α does
// not describe a normalizable state and evaluates to +Inf, which steers the
// derivative-free minimizer back into the physical region.
func Energy(c Constants, alpha float64) float64 {
	if alpha <= 0 {
		return math.Inf(1)
	}
	kinetic := 3 * c.Hbar * c.Hbar * alpha / (2 * c.Mass)
	coulomb := c.Charge * c.Charge / c.FourPiEps0 * 2 * math.Sqrt(2*alpha/math.Pi)

	return kinetic - coulomb
}

// GroundState minimizes Energy over the variational parameter and returns
// the optimal α together with the resulting upper bound on the ground-state
// energy. In atomic units the analytic optimum is α* = 8/(9π) ≈ 0.2829 with
// E(α*) = −4/(3π) ≈ −0.4244 Hartree, an upper bound on the true −1/2.
//
// Errors:
//   - ErrBadConstants — some constant in c is not strictly positive.
//   - ErrBadGuess, ErrNotConverged — forwarded from Minimize.
func GroundState(c Constants, opts ...Option) (alpha, energy float64, err error) {
	if !c.valid() {
		return 0, 0, ErrBadConstants
	}

	alpha, err = Minimize(func(a float64) float64 { return Energy(c, a) }, DefaultGuess, opts...)
	if err != nil {
		return 0, 0, err
	}

	return alpha, Energy(c, alpha), nil
}
