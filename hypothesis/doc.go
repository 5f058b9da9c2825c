// Package hypothesis implements the inferential procedures used to
// replicate the study's findings: a two-sample mean comparison,
// ordinary least squares, and a probit model for binary outcomes.
//
// # Two-Sample Test
//
// Compare treatment and control means with Welch's statistic:
//
//	tt, err := hypothesis.TwoSampleTTest(control, treatment)
//	fmt.Printf("diff=%.4f t=%.3f p=%.4f\n", tt.Diff, tt.Statistic, tt.PValue)
//
// The p-value uses the conservative min(n1,n2)-1 degrees of freedom;
// the full Welch-Satterthwaite value is also reported on the result.
//
// # Ordinary Least Squares
//
//	res, err := hypothesis.OLS(design.Matrix(), outcome)
//	for j, name := range design.Columns() {
//	    fmt.Printf("%-12s %9.4f (%.4f) p=%.4f\n",
//	        name, res.Coeffs[j], res.StdErrs[j], res.PValues[j])
//	}
//
// # Probit
//
// Probit fits through the mle framework and reports average marginal
// effects alongside the coefficients:
//
//	res, err := hypothesis.Probit(X, binaryOutcome, optimize.DefaultConfig())
//	fmt.Println(res.Coeffs, res.MarginalEffects)
//
// All failures are typed errors (InsufficientDataError,
// DegenerateVarianceError, RankDeficiencyError, and the mle package's
// estimation errors); no procedure returns NaN-filled results.
package hypothesis
