// Package optimize implements unconstrained minimization of smooth
// objective functions.
package optimize

import (
	"fmt"
	"math"
)

// Objective is a real-valued function of a parameter vector to be
// minimized. Implementations must not retain or mutate x.
type Objective interface {
	Eval(x []float64) float64
}

// Func adapts a plain function to the Objective interface.
type Func func(x []float64) float64

// Eval implements Objective.
func (f Func) Eval(x []float64) float64 { return f(x) }

// Method selects the minimization algorithm.
type Method int

const (
	// NelderMead is a derivative-free simplex search. Robust to noisy
	// or non-smooth objectives; the default.
	NelderMead Method = iota
	// BFGS is a quasi-Newton method using numerical gradients and a
	// backtracking line search. Faster near a smooth optimum.
	BFGS
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case NelderMead:
		return "nelder-mead"
	case BFGS:
		return "bfgs"
	default:
		return "unknown"
	}
}

// Config controls the minimization run.
type Config struct {
	Method   Method
	MaxIter  int     // iteration budget; exceeding it fails the run
	Tol      float64 // convergence tolerance on objective-value change
	GradStep float64 // base step for numerical gradients (BFGS)
}

// DefaultConfig returns the configuration used when callers have no
// particular preference.
func DefaultConfig() Config {
	return Config{
		Method:   NelderMead,
		MaxIter:  2000,
		Tol:      1e-10,
		GradStep: 1e-6,
	}
}

// Result holds the outcome of a successful minimization.
type Result struct {
	X          []float64 // minimizer
	Value      float64   // objective value at X
	Iterations int
	Method     Method
}

// ConvergenceError reports that the iteration budget was exhausted
// before the tolerance was met. BestX and BestValue describe the best
// iterate found so the caller can inspect or restart from it.
type ConvergenceError struct {
	Method     Method
	Iterations int
	BestX      []float64
	BestValue  float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("optimize: %s did not converge within %d iterations (best objective %g)",
		e.Method, e.Iterations, e.BestValue)
}

// Minimize searches for the parameter vector minimizing obj starting
// from x0, using the method selected in cfg. x0 is not mutated. On
// failure to converge it returns a *ConvergenceError carrying the best
// iterate found.
func Minimize(obj Objective, x0 []float64, cfg Config) (*Result, error) {
	if len(x0) == 0 {
		return nil, fmt.Errorf("optimize: empty initial point")
	}
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = DefaultConfig().MaxIter
	}
	if cfg.Tol <= 0 {
		cfg.Tol = DefaultConfig().Tol
	}
	if cfg.GradStep <= 0 {
		cfg.GradStep = DefaultConfig().GradStep
	}

	switch cfg.Method {
	case NelderMead:
		return nelderMead(obj, x0, cfg)
	case BFGS:
		return bfgs(obj, x0, cfg)
	default:
		return nil, fmt.Errorf("optimize: unknown method %d", cfg.Method)
	}
}

// Gradient estimates the gradient of obj at x by central differences.
// The step for coordinate i is scaled by max(1, |x[i]|).
func Gradient(obj Objective, x []float64, step float64) []float64 {
	n := len(x)
	grad := make([]float64, n)
	xp := make([]float64, n)
	copy(xp, x)

	for i := 0; i < n; i++ {
		h := step * math.Max(1, math.Abs(x[i]))
		orig := xp[i]
		xp[i] = orig + h
		fPlus := obj.Eval(xp)
		xp[i] = orig - h
		fMinus := obj.Eval(xp)
		xp[i] = orig
		grad[i] = (fPlus - fMinus) / (2 * h)
	}
	return grad
}
