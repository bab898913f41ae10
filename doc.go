// Package briefqm is a small playground for variational approximations to
// quantum-mechanical ground-state energies.
//
// 🚀 What is brief-foray-into-QM?
//
//	A compact, deterministic library that works through two classic
//	variational exercises:
//	  • infwell/  — the Ritz (linear variational) method for the infinite
//	    square well on [−1, 1]: analytic matrix elements, a generalized
//	    symmetric eigensolver, and a convergence study across basis sizes.
//	  • hydrogen/ — a single-parameter Gaussian trial wavefunction for the
//	    hydrogen atom, minimized with a derivative-free scalar optimizer.
//
// ✨ Why this layout?
//
//   - Leaf-first design — pure analytic kernels feed a tiny assembler,
//     which feeds a solver, which feeds a study driver
//   - Fail-fast guarantees — sentinel errors, strict input validation,
//     no silent NaN propagation
//   - Pure computation — no I/O, no global state, no hidden configuration
//
// The heavy lifting (Cholesky factorization, symmetric eigendecomposition,
// Nelder–Mead) is delegated to gonum; this module contributes the physics,
// the invariants, and the convergence bookkeeping.
//
// Quick taste:
//
//	rep, err := infwell.Study([]int{1, 2, 5, 16}, 5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(rep)
//
// Dive into infwell/doc.go and hydrogen/doc.go for the full contracts.
package briefqm
