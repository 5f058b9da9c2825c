package hypothesis

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/goeconometrics/mle"
	"github.com/sartorproj/goeconometrics/optimize"
)

func simulateProbit(n int, beta []float64, seed uint64) (*mat.Dense, []float64) {
	src := rand.NewSource(seed)
	u := distuv.Uniform{Min: 0, Max: 1, Src: src}
	xdist := distuv.Uniform{Min: -2, Max: 2, Src: src}
	norm := distuv.Normal{Mu: 0, Sigma: 1}

	X := mat.NewDense(n, len(beta), nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		X.Set(i, 0, 1)
		xb := beta[0]
		for j := 1; j < len(beta); j++ {
			v := xdist.Rand()
			X.Set(i, j, v)
			xb += beta[j] * v
		}
		if u.Rand() < norm.CDF(xb) {
			y[i] = 1
		}
	}
	return X, y
}

func TestProbitRecoversSimulatedCoefficients(t *testing.T) {
	betaTrue := []float64{-0.2, 0.8}
	X, y := simulateProbit(2000, betaTrue, 11)

	res, err := Probit(X, y, optimize.DefaultConfig())
	if err != nil {
		t.Fatalf("Probit failed: %v", err)
	}
	for j, want := range betaTrue {
		if math.Abs(res.Coeffs[j]-want) > 0.15 {
			t.Errorf("coeff %d = %v, want about %v", j, res.Coeffs[j], want)
		}
		if res.StdErrs[j] <= 0 || res.StdErrs[j] > 0.2 {
			t.Errorf("se %d = %v, implausible", j, res.StdErrs[j])
		}
	}
}

func TestProbitMarginalEffects(t *testing.T) {
	X, y := simulateProbit(1000, []float64{0.1, 0.6}, 5)

	res, err := Probit(X, y, optimize.DefaultConfig())
	if err != nil {
		t.Fatalf("Probit failed: %v", err)
	}

	// AME_j = phi(xbar beta) * beta_j; recompute independently.
	n, k := X.Dims()
	xbBar := 0.0
	for j := 0; j < k; j++ {
		s := 0.0
		for i := 0; i < n; i++ {
			s += X.At(i, j)
		}
		xbBar += s / float64(n) * res.Coeffs[j]
	}
	density := math.Exp(-xbBar*xbBar/2) / math.Sqrt(2*math.Pi)
	for j := 0; j < k; j++ {
		want := density * res.Coeffs[j]
		if math.Abs(res.MarginalEffects[j]-want) > 1e-10 {
			t.Errorf("AME %d = %v, want %v", j, res.MarginalEffects[j], want)
		}
	}

	// marginal effects shrink the coefficients (density < 1)
	for j := 0; j < k; j++ {
		if math.Abs(res.MarginalEffects[j]) > math.Abs(res.Coeffs[j]) {
			t.Errorf("AME %d larger than coefficient", j)
		}
	}
}

func TestProbitValidation(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{1, 1, 1})

	_, err := Probit(X, []float64{0, 2, 1}, optimize.DefaultConfig())
	var ipe *mle.InvalidParameterError
	if !errors.As(err, &ipe) {
		t.Fatalf("error is %T, want *mle.InvalidParameterError", err)
	}

	if _, err := Probit(X, []float64{0, 1}, optimize.DefaultConfig()); err == nil {
		t.Error("row mismatch should fail")
	}
	if _, err := Probit(nil, []float64{0}, optimize.DefaultConfig()); err == nil {
		t.Error("nil design should fail")
	}
}

func TestPredictProbit(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1, -100,
		1, 0,
		1, 100,
	})
	probs := PredictProbit(X, []float64{0, 0.1})

	if probs[0] > 1e-6 {
		t.Errorf("prob at strongly negative predictor = %v, want near 0", probs[0])
	}
	if math.Abs(probs[1]-0.5) > 1e-12 {
		t.Errorf("prob at zero predictor = %v, want 0.5", probs[1])
	}
	if probs[2] < 1-1e-6 {
		t.Errorf("prob at strongly positive predictor = %v, want near 1", probs[2])
	}
}
