// Package optimize implements unconstrained minimization used by the
// maximum-likelihood estimators.
//
// Two methods are available behind one entry point, selectable by
// configuration:
//
//   - Nelder-Mead, a derivative-free simplex search (the default)
//   - BFGS, a quasi-Newton method with numerical gradients and a
//     backtracking line search
//
// # Usage
//
// Minimize a function:
//
//	obj := optimize.Func(func(x []float64) float64 {
//	    return (x[0]-1)*(x[0]-1) + 10*(x[1]+2)*(x[1]+2)
//	})
//	res, err := optimize.Minimize(obj, []float64{0, 0}, optimize.DefaultConfig())
//
// Select BFGS instead:
//
//	cfg := optimize.DefaultConfig()
//	cfg.Method = optimize.BFGS
//	res, err := optimize.Minimize(obj, []float64{0, 0}, cfg)
//
// A run that exhausts its iteration budget fails with a
// *ConvergenceError carrying the best iterate found. No retries happen
// inside the package; restarting from a different point is the
// caller's decision.
//
// Objectives may return +Inf at points outside their domain; both
// methods move away from such points without special handling by the
// caller.
package optimize
