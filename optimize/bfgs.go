package optimize

import "math"

// Line-search constants (Armijo backtracking).
const (
	lsShrink     = 0.5
	lsSufficient = 1e-4
	lsMaxSteps   = 50
)

// bfgs runs the BFGS quasi-Newton method with numerical gradients.
func bfgs(obj Objective, x0 []float64, cfg Config) (*Result, error) {
	n := len(x0)

	x := append([]float64(nil), x0...)
	fx := obj.Eval(x)
	grad := Gradient(obj, x, cfg.GradStep)

	// Inverse Hessian approximation, started at the identity.
	hInv := make([][]float64, n)
	for i := range hInv {
		hInv[i] = make([]float64, n)
		hInv[i][i] = 1
	}

	dir := make([]float64, n)
	xNew := make([]float64, n)

	for iter := 1; iter <= cfg.MaxIter; iter++ {
		if infNorm(grad) <= 1e-8 {
			return &Result{X: x, Value: fx, Iterations: iter, Method: BFGS}, nil
		}

		// Search direction d = -Hinv * grad.
		for i := 0; i < n; i++ {
			s := 0.0
			for j := 0; j < n; j++ {
				s += hInv[i][j] * grad[j]
			}
			dir[i] = -s
		}

		// Backtracking line search with the Armijo condition.
		slope := dot(grad, dir)
		if slope >= 0 {
			// Not a descent direction; reset to steepest descent.
			for i := range hInv {
				for j := range hInv[i] {
					hInv[i][j] = 0
				}
				hInv[i][i] = 1
			}
			for i := range dir {
				dir[i] = -grad[i]
			}
			slope = dot(grad, dir)
		}

		step := 1.0
		var fNew float64
		accepted := false
		for ls := 0; ls < lsMaxSteps; ls++ {
			for i := 0; i < n; i++ {
				xNew[i] = x[i] + step*dir[i]
			}
			fNew = obj.Eval(xNew)
			if fNew <= fx+lsSufficient*step*slope && !math.IsInf(fNew, 0) && !math.IsNaN(fNew) {
				accepted = true
				break
			}
			step *= lsShrink
		}
		if !accepted {
			// No acceptable step along this direction; treat the
			// current point as the best available.
			return nil, &ConvergenceError{
				Method:     BFGS,
				Iterations: iter,
				BestX:      append([]float64(nil), x...),
				BestValue:  fx,
			}
		}

		gradNew := Gradient(obj, xNew, cfg.GradStep)

		// Converged on objective change.
		if math.Abs(fx-fNew) <= cfg.Tol*(math.Abs(fx)+cfg.Tol) {
			return &Result{
				X:          append([]float64(nil), xNew...),
				Value:      fNew,
				Iterations: iter,
				Method:     BFGS,
			}, nil
		}

		// BFGS update of the inverse Hessian.
		s := make([]float64, n)
		yv := make([]float64, n)
		for i := 0; i < n; i++ {
			s[i] = xNew[i] - x[i]
			yv[i] = gradNew[i] - grad[i]
		}
		sy := dot(s, yv)
		if sy > 1e-12 {
			// Hinv' = (I - s yᵀ/sy) Hinv (I - y sᵀ/sy) + s sᵀ/sy
			hy := make([]float64, n)
			for i := 0; i < n; i++ {
				v := 0.0
				for j := 0; j < n; j++ {
					v += hInv[i][j] * yv[j]
				}
				hy[i] = v
			}
			yhy := dot(yv, hy)
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					hInv[i][j] += (sy + yhy) * s[i] * s[j] / (sy * sy)
					hInv[i][j] -= (hy[i]*s[j] + s[i]*hy[j]) / sy
				}
			}
		}

		copy(x, xNew)
		fx = fNew
		copy(grad, gradNew)
	}

	return nil, &ConvergenceError{
		Method:     BFGS,
		Iterations: cfg.MaxIter,
		BestX:      append([]float64(nil), x...),
		BestValue:  fx,
	}
}

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func infNorm(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		if a := math.Abs(x); a > m {
			m = a
		}
	}
	return m
}
