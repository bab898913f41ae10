package infwell

// Matrix-element generator for the basis χ_m(x) = x^m·(x−1)(x+1) on [−1, 1].
//
// Both integrals reduce to moments of x over a symmetric interval, so any
// index pair of odd combined degree vanishes exactly (odd integrand). For
// even m+n the closed forms below hold; their denominators never vanish for
// m, n ≥ 0: (m+n+5), (m+n+3), (m+n+1) ≥ 1 always, and (m+n−1) = −1 at the
// single boundary case m = n = 0.
//
// Overlap and Hamiltonian are pure, deterministic, and symmetric in (m, n).

// Overlap returns ⟨χ_m|χ_n⟩ = ∫₋₁¹ x^{m+n}(x²−1)² dx.
// It is exactly 0 when m+n is odd.
func Overlap(m, n int) float64 {
	if (m+n)%2 != 0 {
		return 0
	}
	s := float64(m + n)

	return 2/(s+5) - 4/(s+3) + 2/(s+1)
}

// Hamiltonian returns ⟨χ_m|Ĥ|χ_n⟩ for the dimensionless well Hamiltonian
// Ĥ = −d²/dx² on [−1, 1]. It is exactly 0 when m+n is odd.
func Hamiltonian(m, n int) float64 {
	if (m+n)%2 != 0 {
		return 0
	}
	fm, fn := float64(m), float64(n)
	s := fm + fn

	return -8 * (1 - fm - fn - 2*fm*fn) / ((s + 3) * (s + 1) * (s - 1))
}
