package mle

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goeconometrics/numutil"
	"github.com/sartorproj/goeconometrics/optimize"
)

// Poisson is a Poisson regression model: counts y with rate
// lambda_i = exp(x_iᵀβ). The linear predictor is clipped before
// exponentiation so extreme coefficients during optimization cannot
// overflow the likelihood.
type Poisson struct {
	x    *mat.Dense
	y    []float64
	lfac []float64 // precomputed log(y!) terms
	n, k int
}

// NewPoisson validates the data and builds the model. Outcomes must be
// non-negative integer-valued counts; a violation is reported as an
// *InvalidParameterError naming the offending observation.
func NewPoisson(X *mat.Dense, y []float64) (*Poisson, error) {
	if X == nil {
		return nil, fmt.Errorf("mle: nil design matrix")
	}
	n, k := X.Dims()
	if n != len(y) {
		return nil, fmt.Errorf("mle: design has %d rows, outcome has %d values", n, len(y))
	}
	if n == 0 || k == 0 {
		return nil, fmt.Errorf("mle: empty design matrix")
	}
	lfac := make([]float64, n)
	for i, v := range y {
		if v < 0 || v != math.Floor(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, &InvalidParameterError{
				Param:  fmt.Sprintf("y[%d]", i),
				Value:  v,
				Reason: "Poisson outcomes must be non-negative integer counts",
			}
		}
		lfac[i] = numutil.LogFactorial(v)
	}
	return &Poisson{x: X, y: y, lfac: lfac, n: n, k: k}, nil
}

// NumParams returns the number of coefficients, one per design column.
func (p *Poisson) NumParams() int { return p.k }

// LogLik evaluates the Poisson log-likelihood
// Σ (-λ_i + y_i·log λ_i - log y_i!) with λ_i = exp(clip(x_iᵀβ)).
func (p *Poisson) LogLik(beta []float64) float64 {
	ll := 0.0
	for i := 0; i < p.n; i++ {
		xb := 0.0
		for j := 0; j < p.k; j++ {
			xb += p.x.At(i, j) * beta[j]
		}
		xb = numutil.Clip(xb, -numutil.ExpClipLimit, numutil.ExpClipLimit)
		lambda := math.Exp(xb)
		// log(lambda) is the clipped predictor itself.
		ll += -lambda + p.y[i]*xb - p.lfac[i]
	}
	return ll
}

// Rates returns the fitted rates λ_i at the given coefficients.
func (p *Poisson) Rates(beta []float64) []float64 {
	rates := make([]float64, p.n)
	for i := 0; i < p.n; i++ {
		xb := 0.0
		for j := 0; j < p.k; j++ {
			xb += p.x.At(i, j) * beta[j]
		}
		rates[i] = numutil.Exp(xb)
	}
	return rates
}

// FitPoisson builds a Poisson model and fits it from a zero start.
func FitPoisson(X *mat.Dense, y []float64, cfg optimize.Config) (*Result, error) {
	model, err := NewPoisson(X, y)
	if err != nil {
		return nil, err
	}
	return Fit(model, nil, cfg)
}
