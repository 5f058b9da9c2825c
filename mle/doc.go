// Package mle provides a generic maximum-likelihood estimation
// framework and a Poisson regression model built on it.
//
// A model supplies its log-likelihood through the LogLikelihood
// interface; Fit maximizes it with the optimize package and derives
// standard errors from the numerical Hessian of the negative
// log-likelihood at the optimum.
//
// # Fitting a Model
//
//	model, err := mle.NewPoisson(X, counts)
//	if err != nil {
//	    return err
//	}
//	result, err := mle.Fit(model, nil, optimize.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Coeffs)   // one per design column
//	fmt.Println(result.StdErrs)  // same order
//	fmt.Println(result.PValues())
//
// # Estimation Lifecycle
//
// A run moves through optimization and then standard-error
// computation; each stage has one failure mode:
//
//   - the optimizer exhausts its iteration budget:
//     *optimize.ConvergenceError, carrying the best iterate found
//   - the Hessian cannot be inverted at the optimum:
//     *SingularHessianError
//
// Failed runs are never retried automatically. Identical inputs and
// configuration always produce identical results; the package keeps no
// state between calls.
//
// # Custom Models
//
// Any type implementing LogLik and NumParams can be fitted. Return
// -Inf from LogLik at parameter values outside the model's domain;
// the optimizer treats such points as infeasible.
package mle
