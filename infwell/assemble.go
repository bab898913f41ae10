package infwell

import "gonum.org/v1/gonum/mat"

// Assemble builds the n×n Hamiltonian and overlap matrices for the first n
// basis functions χ_0 … χ_{n−1}.
//
// The generator is symmetric in its arguments, so only the upper triangle is
// evaluated; SetSym mirrors it. Both matrices are freshly allocated on every
// call and never shared, so repeated calls with the same n are bit-identical.
//
// Errors:
//   - ErrBadBasisSize — n < 1, rejected before any allocation.
func Assemble(n int) (h, s *mat.SymDense, err error) {
	if n < 1 {
		return nil, nil, ErrBadBasisSize
	}

	h = mat.NewSymDense(n, nil)
	s = mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			h.SetSym(i, j, Hamiltonian(i, j))
			s.SetSym(i, j, Overlap(i, j))
		}
	}

	return h, s, nil
}
