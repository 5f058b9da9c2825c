// Package numutil provides overflow-safe numeric primitives.
package numutil

import "math"

// ExpClipLimit bounds the linear predictor before exponentiation.
// exp(20) is about 4.85e8, comfortably inside float64 range, while
// unclipped predictors from poorly scaled covariates overflow to +Inf.
const ExpClipLimit = 20.0

// Clip returns x restricted to the interval [lo, hi].
func Clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Exp computes exp(x) with x clipped to [-ExpClipLimit, ExpClipLimit].
// The result is always finite and strictly positive.
func Exp(x float64) float64 {
	return math.Exp(Clip(x, -ExpClipLimit, ExpClipLimit))
}

// LogFactorial computes log(n!) through the log-gamma function, which
// stays accurate for counts in the hundreds where iterative
// multiplication would overflow. Negative n is an invalid input and
// yields +Inf so the caller's likelihood evaluates to -Inf rather than
// a silent NaN.
func LogFactorial(n float64) float64 {
	if n < 0 {
		return math.Inf(1)
	}
	v, _ := math.Lgamma(n + 1)
	return v
}

// SafeDiv divides num by den, returning fallback when den is zero.
func SafeDiv(num, den, fallback float64) float64 {
	if den == 0 {
		return fallback
	}
	return num / den
}

// SafeLog computes log(x), returning -Inf for non-positive x instead
// of NaN for negative inputs.
func SafeLog(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	return math.Log(x)
}
