// Package infwell implements the Ritz (linear variational) method for the
// one-dimensional infinite square well on the dimensionless domain [−1, 1].
//
// Overview:
//
//   - The trial wavefunction is expanded over the polynomial basis
//     χ_m(x) = x^m·(x−1)(x+1), m = 0, 1, 2, …, which vanishes at both well
//     boundaries by construction.
//   - Both the overlap integrals ⟨χ_m|χ_n⟩ and the Hamiltonian integrals
//     ⟨χ_m|Ĥ|χ_n⟩ have closed analytic forms, so no numerical quadrature is
//     ever performed; matrices are assembled exactly (up to float64).
//   - Minimizing the Rayleigh quotient over the expansion coefficients
//     reduces to the generalized symmetric eigenvalue problem
//     H·C = E·S·C, with S the Gram (overlap) matrix.
//   - By the variational principle, the lowest generalized eigenvalue is an
//     upper bound on the true ground-state energy π²/4 ≈ 2.4674011, and the
//     bound can only improve (or stay) as the basis grows.
//
// Pipeline (leaves first):
//
//	(m, n) ──Overlap/Hamiltonian──▶ matrix elements
//	       ──Assemble(n)─────────▶ (H, S) as *mat.SymDense
//	       ──Solve(H, S)─────────▶ real eigenvalues (ascending)
//	       ──Study(sizes, k)─────▶ per-size truncated spectra + report
//
// Numerical strategy:
//
//   - S is symmetric positive definite for every basis size (Gram matrix of
//     linearly independent functions). Solve factorizes S = L·Lᵀ via
//     mat.Cholesky and reduces the generalized problem to the standard
//     symmetric problem (L⁻¹·H·L⁻ᵀ)·Y = E·Y, solved by mat.EigenSym.
//   - Because the reduced problem is real symmetric, eigenvalues are real by
//     construction; no complex arithmetic and no imaginary-part truncation.
//   - A failed Cholesky factorization is the positive-definiteness guard and
//     surfaces as ErrOverlapNotSPD rather than NaN propagation.
//
// Error handling (sentinel errors):
//
//   - ErrBadBasisSize      — requested basis size < 1.
//   - ErrBadTruncation     — requested number of reported levels < 1.
//   - ErrBadWorkers        — parallel worker count < 1.
//   - ErrNilMatrix         — nil H or S passed to the solver.
//   - ErrDimensionMismatch — H and S are not square matrices of equal order.
//   - ErrOverlapNotSPD     — S failed Cholesky factorization (not SPD).
//   - ErrEigenFailed       — the symmetric eigendecomposition did not converge.
//   - ErrUnknownSize       — Report.Summary queried for a size not studied.
//
// Complexity:
//
//   - Assemble: O(n²) analytic evaluations.
//   - Solve:    O(n³) (Cholesky + triangular solves + symmetric eigen).
//   - Study:    Σ O(n³) over the requested sizes; sizes are independent and
//     may be fanned out with WithParallel (identical results either way).
//
// API reference:
//
//	func Overlap(m, n int) float64
//	func Hamiltonian(m, n int) float64
//	func Assemble(n int) (h, s *mat.SymDense, err error)
//	func Solve(h, s *mat.SymDense) ([]float64, error)
//	func Eigenpairs(h, s *mat.SymDense) ([]float64, *mat.Dense, error)
//	func Study(sizes []int, k int, opts ...Option) (*Report, error)
//	func ExactLevel(j int) float64
package infwell
