package infwell

import "gonum.org/v1/gonum/mat"

// Solve computes the generalized eigenvalues E of H·C = E·S·C for real
// symmetric H and symmetric positive definite S, returned in ascending order.
//
// Algorithm outline:
//  1. Factorize S = L·Lᵀ (mat.Cholesky). A failed factorization is the
//     positive-definiteness guard and yields ErrOverlapNotSPD.
//  2. Form T = L⁻¹·H·L⁻ᵀ by two triangular solves; T is similar to the
//     generalized pencil, so its spectrum equals the generalized spectrum.
//  3. Symmetrize T against float64 roundoff and diagonalize with
//     mat.EigenSym.
//
// The reduced problem is real symmetric, so every eigenvalue is real by
// construction; no complex components are ever produced or discarded.
//
// Errors:
//   - ErrNilMatrix         — h or s is nil.
//   - ErrDimensionMismatch — h and s are not of the same order.
//   - ErrOverlapNotSPD     — s is numerically not positive definite.
//   - ErrEigenFailed       — the symmetric eigendecomposition failed.
func Solve(h, s *mat.SymDense) ([]float64, error) {
	eig, _, err := reduce(h, s, false)
	if err != nil {
		return nil, err
	}

	return eig.Values(nil), nil
}

// Eigenpairs is Solve plus eigenvectors: column j of the returned matrix is
// the generalized eigenvector C_j belonging to the j-th ascending eigenvalue,
// normalized so that Cᵀ·S·C = I (inherited from the orthonormal reduced
// eigenvectors).
func Eigenpairs(h, s *mat.SymDense) ([]float64, *mat.Dense, error) {
	eig, l, err := reduce(h, s, true)
	if err != nil {
		return nil, nil, err
	}

	var y mat.Dense
	eig.VectorsTo(&y)

	// Back-substitute through Lᵀ: C = L⁻ᵀ·Y.
	var c mat.Dense
	if err := c.Solve(l.T(), &y); err != nil {
		return nil, nil, ErrEigenFailed
	}

	return eig.Values(nil), &c, nil
}

// reduce performs steps 1–3 of Solve and returns the factorized reduced
// eigenproblem together with the Cholesky factor L (needed for eigenvector
// recovery).
func reduce(h, s *mat.SymDense, vectors bool) (*mat.EigenSym, *mat.TriDense, error) {
	if h == nil || s == nil {
		return nil, nil, ErrNilMatrix
	}
	n, _ := h.Dims()
	if sn, _ := s.Dims(); sn != n {
		return nil, nil, ErrDimensionMismatch
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(s); !ok {
		return nil, nil, ErrOverlapNotSPD
	}
	l := mat.NewTriDense(n, mat.Lower, nil)
	chol.LTo(l)

	// x = L⁻¹·H, then t = L⁻¹·xᵀ = L⁻¹·H·L⁻ᵀ (H is symmetric).
	var x, t mat.Dense
	if err := x.Solve(l, h); err != nil {
		return nil, nil, ErrOverlapNotSPD
	}
	if err := t.Solve(l, x.T()); err != nil {
		return nil, nil, ErrOverlapNotSPD
	}

	// Symmetrize: the two triangular solves leave ~1 ulp of asymmetry.
	reduced := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			reduced.SetSym(i, j, 0.5*(t.At(i, j)+t.At(j, i)))
		}
	}

	eig := new(mat.EigenSym)
	if ok := eig.Factorize(reduced, vectors); !ok {
		return nil, nil, ErrEigenFailed
	}

	return eig, l, nil
}
