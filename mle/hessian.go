package mle

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goeconometrics/optimize"
)

// hessStep is the base relative step for second differences. Larger
// than a gradient step because second differences lose two orders of
// accuracy to cancellation.
const hessStep = 1e-4

// numericalHessian estimates the Hessian of obj at x by central second
// differences. The result is exactly symmetric by construction.
func numericalHessian(obj optimize.Objective, x []float64) *mat.SymDense {
	n := len(x)
	h := make([]float64, n)
	for i := range h {
		h[i] = hessStep * math.Max(1, math.Abs(x[i]))
	}

	f0 := obj.Eval(x)
	xp := make([]float64, n)
	copy(xp, x)
	eval := func() float64 { return obj.Eval(xp) }

	hess := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		// Diagonal: (f(x+h) - 2f(x) + f(x-h)) / h^2.
		xp[i] = x[i] + h[i]
		fp := eval()
		xp[i] = x[i] - h[i]
		fm := eval()
		xp[i] = x[i]
		hess.SetSym(i, i, (fp-2*f0+fm)/(h[i]*h[i]))

		// Off-diagonal: four-point cross difference.
		for j := i + 1; j < n; j++ {
			xp[i] = x[i] + h[i]
			xp[j] = x[j] + h[j]
			fpp := eval()
			xp[j] = x[j] - h[j]
			fpm := eval()
			xp[i] = x[i] - h[i]
			fmm := eval()
			xp[j] = x[j] + h[j]
			fmp := eval()
			xp[i] = x[i]
			xp[j] = x[j]
			hess.SetSym(i, j, (fpp-fpm-fmp+fmm)/(4*h[i]*h[j]))
		}
	}
	return hess
}
