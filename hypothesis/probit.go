package hypothesis

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/goeconometrics/mle"
	"github.com/sartorproj/goeconometrics/numutil"
	"github.com/sartorproj/goeconometrics/optimize"
)

// ProbitResult is the outcome of a probit fit. MarginalEffects holds
// the average marginal effect of each covariate, the derivative of the
// success probability at the mean linear predictor.
type ProbitResult struct {
	*mle.Result
	MarginalEffects []float64
}

// probitLik is the probit log-likelihood
// Σ [y·log Φ(xᵀβ) + (1-y)·log(1-Φ(xᵀβ))].
type probitLik struct {
	x    *mat.Dense
	y    []float64
	n, k int
}

func (p *probitLik) NumParams() int { return p.k }

func (p *probitLik) LogLik(beta []float64) float64 {
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	ll := 0.0
	for i := 0; i < p.n; i++ {
		xb := 0.0
		for j := 0; j < p.k; j++ {
			xb += p.x.At(i, j) * beta[j]
		}
		xb = numutil.Clip(xb, -numutil.ExpClipLimit, numutil.ExpClipLimit)
		if p.y[i] == 1 {
			ll += numutil.SafeLog(norm.CDF(xb))
		} else {
			// Survival avoids 1-CDF cancellation in the upper tail.
			ll += numutil.SafeLog(norm.Survival(xb))
		}
	}
	return ll
}

// Probit fits a binary-outcome probit model by maximum likelihood
// through the mle framework and computes average marginal effects.
// Outcomes must be exactly 0 or 1. Failure modes are those of
// mle.Fit.
func Probit(X *mat.Dense, y []float64, cfg optimize.Config) (*ProbitResult, error) {
	if X == nil {
		return nil, fmt.Errorf("hypothesis: nil design matrix")
	}
	n, k := X.Dims()
	if n != len(y) {
		return nil, fmt.Errorf("hypothesis: design has %d rows, outcome has %d values", n, len(y))
	}
	for i, v := range y {
		if v != 0 && v != 1 {
			return nil, &mle.InvalidParameterError{
				Param:  fmt.Sprintf("y[%d]", i),
				Value:  v,
				Reason: "probit outcomes must be 0 or 1",
			}
		}
	}

	lik := &probitLik{x: X, y: y, n: n, k: k}
	res, err := mle.Fit(lik, nil, cfg)
	if err != nil {
		return nil, err
	}

	// Average marginal effect: φ(x̄ᵀβ)·β_j.
	xbar := make([]float64, k)
	for j := 0; j < k; j++ {
		s := 0.0
		for i := 0; i < n; i++ {
			s += X.At(i, j)
		}
		xbar[j] = s / float64(n)
	}
	xbBar := 0.0
	for j := 0; j < k; j++ {
		xbBar += xbar[j] * res.Coeffs[j]
	}
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	density := norm.Prob(xbBar)
	ame := make([]float64, k)
	for j := 0; j < k; j++ {
		ame[j] = density * res.Coeffs[j]
	}

	return &ProbitResult{Result: res, MarginalEffects: ame}, nil
}

// PredictProbit returns the success probabilities Φ(xᵀβ) for each row
// of the design at the given coefficients.
func PredictProbit(X *mat.Dense, beta []float64) []float64 {
	n, k := X.Dims()
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	probs := make([]float64, n)
	for i := 0; i < n; i++ {
		xb := 0.0
		for j := 0; j < k; j++ {
			xb += X.At(i, j) * beta[j]
		}
		probs[i] = norm.CDF(xb)
	}
	return probs
}
