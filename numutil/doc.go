// Package numutil provides overflow-safe numeric primitives shared by
// the estimation packages.
//
// Log-likelihood evaluation repeatedly exponentiates linear predictors
// and takes logs of factorials; both operations overflow or lose
// precision for inputs that are routine in count regressions. This
// package centralizes the guards:
//
//	lambda := numutil.Exp(xb)          // exp with clipped input, always finite
//	lf := numutil.LogFactorial(412)    // log-gamma, stable for large counts
//	r := numutil.SafeDiv(a, b, 0)      // guarded division
//	l := numutil.SafeLog(p)            // -Inf for p <= 0, never NaN
//
// All functions are total: no inputs cause a panic or return NaN.
package numutil
