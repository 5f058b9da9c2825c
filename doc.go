// Package goeconometrics provides estimation and simulation tools for
// replicating applied econometric analyses.
//
// GoEconometrics is a Go package for the statistical core of an empirical
// study: hypothesis tests, regression estimators fitted by maximum
// likelihood, and Monte Carlo demonstrations of asymptotic theory. It
// receives cleaned numeric matrices and vectors and produces coefficients,
// standard errors, p-values, and simulation traces; data loading and
// plotting live outside the library.
//
// # Features
//
//   - Two-sample (Welch) mean comparison with Student-t p-values
//   - Ordinary least squares with coefficient standard errors and t tests
//   - Probit maximum likelihood with average marginal effects
//   - A generic maximum-likelihood framework with numerically derived
//     standard errors (Hessian of the negative log-likelihood)
//   - Poisson regression fitted through the MLE framework
//   - Monte Carlo illustrations of the Law of Large Numbers and the
//     Central Limit Theorem from seeded Bernoulli sampling
//
// # Quick Start
//
// Fit a Poisson regression:
//
//	model, _ := mle.NewPoisson(design.Matrix(), counts)
//	result, _ := mle.Fit(model, nil, optimize.DefaultConfig())
//	fmt.Println(result.Coeffs, result.StdErrs)
//
// Compare two samples:
//
//	tt, _ := hypothesis.TwoSampleTTest(control, treatment)
//	fmt.Printf("t=%.3f p=%.4f\n", tt.Statistic, tt.PValue)
//
// Run a Law of Large Numbers simulation:
//
//	cfg := montecarlo.Config{ControlProbability: 0.018, TreatmentProbability: 0.022,
//	    SimulationCount: 10000, Seed: 42}
//	trace, _ := montecarlo.RunningDifference(cfg)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - numutil: overflow-safe numeric primitives
//   - dataset: observation samples and design-matrix assembly
//   - optimize: unconstrained minimization (Nelder-Mead, BFGS)
//   - mle: generic maximum-likelihood estimation and the Poisson model
//   - hypothesis: two-sample tests, OLS, and probit
//   - montecarlo: LLN and CLT Bernoulli simulations
//
// # References
//
//   - Wooldridge, J.M. (2010). Econometric Analysis of Cross Section and Panel Data
//   - Cameron, A.C., & Trivedi, P.K. (2013). Regression Analysis of Count Data
package goeconometrics
