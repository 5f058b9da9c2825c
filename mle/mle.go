// Package mle implements generic maximum-likelihood estimation with
// numerically derived standard errors.
package mle

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/goeconometrics/optimize"
)

// LogLikelihood is a model's log-likelihood as a function of its
// coefficient vector. Evaluations outside the parameter domain must
// return -Inf rather than NaN.
type LogLikelihood interface {
	LogLik(beta []float64) float64
	NumParams() int
}

// Result holds a successful estimation run. It is a value object:
// created once by Fit and never mutated afterwards.
type Result struct {
	Coeffs     []float64     // estimated coefficient vector
	StdErrs    []float64     // standard errors, same order as Coeffs
	Cov        *mat.SymDense // parameter covariance matrix
	LogLik     float64       // log-likelihood at the optimum
	Iterations int
	Method     optimize.Method
}

// ZStats returns the coefficient z statistics (coefficient over
// standard error).
func (r *Result) ZStats() []float64 {
	z := make([]float64, len(r.Coeffs))
	for i := range z {
		z[i] = r.Coeffs[i] / r.StdErrs[i]
	}
	return z
}

// PValues returns two-sided p-values against the standard normal
// reference distribution.
func (r *Result) PValues() []float64 {
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	p := make([]float64, len(r.Coeffs))
	for i, z := range r.ZStats() {
		p[i] = 2 * norm.Survival(math.Abs(z))
	}
	return p
}

// SingularHessianError reports that the Hessian of the negative
// log-likelihood at the optimum could not be inverted, so standard
// errors are unavailable. Typical causes are near-perfect collinearity
// or a poorly identified model.
type SingularHessianError struct {
	Coeffs []float64 // optimum at which inversion failed
}

func (e *SingularHessianError) Error() string {
	return fmt.Sprintf("mle: Hessian is singular at the optimum %v; standard errors unavailable", e.Coeffs)
}

// InvalidParameterError reports an input value outside a model's
// domain, such as a negative count outcome.
type InvalidParameterError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("mle: invalid parameter %s=%v: %s", e.Param, e.Value, e.Reason)
}

// negLikObjective adapts a log-likelihood into a minimization
// objective. NaN evaluations are mapped to +Inf so the optimizer
// steps away from them instead of propagating NaN.
type negLikObjective struct {
	ll LogLikelihood
}

func (o negLikObjective) Eval(beta []float64) float64 {
	v := o.ll.LogLik(beta)
	if math.IsNaN(v) {
		return math.Inf(1)
	}
	return -v
}

// Fit maximizes ll starting from beta0 and derives standard errors
// from the numerical Hessian of the negative log-likelihood at the
// optimum. A nil beta0 starts from the zero vector. Failure modes:
// *optimize.ConvergenceError when the iteration budget is exhausted
// (carrying the best iterate), and *SingularHessianError when the
// covariance matrix cannot be computed. Fit never retries; rerunning
// with a different start or configuration is the caller's decision.
func Fit(ll LogLikelihood, beta0 []float64, cfg optimize.Config) (*Result, error) {
	k := ll.NumParams()
	if beta0 == nil {
		beta0 = make([]float64, k)
	}
	if len(beta0) != k {
		return nil, fmt.Errorf("mle: initial guess has %d parameters, model has %d", len(beta0), k)
	}

	obj := negLikObjective{ll: ll}
	opt, err := optimize.Minimize(obj, beta0, cfg)
	if err != nil {
		return nil, err
	}

	hess := numericalHessian(obj, opt.X)

	// Invert via Cholesky; failure means the Hessian is not positive
	// definite within working precision.
	var chol mat.Cholesky
	if ok := chol.Factorize(hess); !ok {
		return nil, &SingularHessianError{Coeffs: append([]float64(nil), opt.X...)}
	}
	var cov mat.SymDense
	if err := chol.InverseTo(&cov); err != nil {
		return nil, &SingularHessianError{Coeffs: append([]float64(nil), opt.X...)}
	}

	se := make([]float64, k)
	for i := 0; i < k; i++ {
		v := cov.At(i, i)
		if v <= 0 || math.IsNaN(v) {
			return nil, &SingularHessianError{Coeffs: append([]float64(nil), opt.X...)}
		}
		se[i] = math.Sqrt(v)
	}

	return &Result{
		Coeffs:     opt.X,
		StdErrs:    se,
		Cov:        &cov,
		LogLik:     -opt.Value,
		Iterations: opt.Iterations,
		Method:     opt.Method,
	}, nil
}
