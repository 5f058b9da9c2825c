package hypothesis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/goeconometrics/numutil"
)

// OLSResult is the outcome of an ordinary least squares fit. All
// slices share the design's column order.
type OLSResult struct {
	Coeffs   []float64
	StdErrs  []float64
	TStats   []float64
	PValues  []float64 // two-sided, n-k degrees of freedom
	DOF      int       // residual degrees of freedom n-k
	Sigma2   float64   // residual variance estimate
	RSquared float64
}

// OLS fits y = Xβ + ε by least squares, solving the normal equations
// through a Cholesky factorization of XᵀX. The design must have full
// column rank and more rows than columns; a singular XᵀX is reported
// as a *RankDeficiencyError rather than returning arbitrary
// coefficients.
func OLS(X *mat.Dense, y []float64) (*OLSResult, error) {
	if X == nil {
		return nil, fmt.Errorf("hypothesis: nil design matrix")
	}
	n, k := X.Dims()
	if n != len(y) {
		return nil, fmt.Errorf("hypothesis: design has %d rows, outcome has %d values", n, len(y))
	}
	if n <= k {
		return nil, &InsufficientDataError{Sample: "y", N: n, Min: k + 1}
	}

	// Normal equations: (XᵀX) β = Xᵀy.
	var xtx mat.SymDense
	xtx.SymOuterK(1, X.T())

	var chol mat.Cholesky
	if ok := chol.Factorize(&xtx); !ok {
		return nil, &RankDeficiencyError{Rows: n, Cols: k}
	}

	yVec := mat.NewVecDense(n, y)
	xty := mat.NewVecDense(k, nil)
	xty.MulVec(X.T(), yVec)

	beta := mat.NewVecDense(k, nil)
	if err := chol.SolveVecTo(beta, xty); err != nil {
		return nil, &RankDeficiencyError{Rows: n, Cols: k, Err: err}
	}

	// Residual variance and fit quality.
	fitted := mat.NewVecDense(n, nil)
	fitted.MulVec(X, beta)
	rss := 0.0
	meanY := 0.0
	for _, v := range y {
		meanY += v
	}
	meanY /= float64(n)
	tss := 0.0
	for i := 0; i < n; i++ {
		r := y[i] - fitted.AtVec(i)
		rss += r * r
		d := y[i] - meanY
		tss += d * d
	}
	dof := n - k
	sigma2 := rss / float64(dof)

	// Coefficient covariance: sigma2 * (XᵀX)^-1.
	var xtxInv mat.SymDense
	if err := chol.InverseTo(&xtxInv); err != nil {
		return nil, &RankDeficiencyError{Rows: n, Cols: k, Err: err}
	}

	coeffs := make([]float64, k)
	se := make([]float64, k)
	tStats := make([]float64, k)
	pValues := make([]float64, k)
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(dof)}
	for j := 0; j < k; j++ {
		coeffs[j] = beta.AtVec(j)
		se[j] = math.Sqrt(sigma2 * xtxInv.At(j, j))
		tStats[j] = numutil.SafeDiv(coeffs[j], se[j], 0)
		pValues[j] = 2 * tDist.Survival(math.Abs(tStats[j]))
	}

	return &OLSResult{
		Coeffs:   coeffs,
		StdErrs:  se,
		TStats:   tStats,
		PValues:  pValues,
		DOF:      dof,
		Sigma2:   sigma2,
		RSquared: 1 - numutil.SafeDiv(rss, tss, 1),
	}, nil
}
