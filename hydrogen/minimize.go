package hydrogen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// Minimize returns an argument approximately minimizing the scalar function
// f, starting from x0. The search is a derivative-free Nelder–Mead simplex,
// so f only needs to be evaluable, not differentiable; +Inf values are legal
// and act as soft barriers.
//
// The contract is deliberately loose: f should be unimodal-ish near x0 for
// the result to be the global minimum, as is the case for the Gaussian-trial
// energy on α > 0.
//
// Errors:
//   - ErrBadGuess     — x0 is NaN or infinite.
//   - ErrNotConverged — the simplex failed or ran out of its evaluation
//     budget (see WithMaxEvaluations); the underlying status is attached.
func Minimize(f func(float64) float64, x0 float64, opts ...Option) (float64, error) {
	if math.IsNaN(x0) || math.IsInf(x0, 0) {
		return 0, ErrBadGuess
	}
	o := gatherOptions(opts...)

	problem := optimize.Problem{
		Func: func(x []float64) float64 { return f(x[0]) },
	}
	settings := &optimize.Settings{FuncEvaluations: o.maxEvals}

	result, err := optimize.Minimize(problem, []float64{x0}, settings, &optimize.NelderMead{})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotConverged, err)
	}
	switch result.Status {
	case optimize.Success, optimize.FunctionConvergence, optimize.StepConvergence, optimize.GradientThreshold:
		return result.X[0], nil
	default:
		return 0, fmt.Errorf("%w: terminated with status %v", ErrNotConverged, result.Status)
	}
}
