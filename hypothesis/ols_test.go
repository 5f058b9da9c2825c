package hypothesis

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestOLSNoiselessRecovery(t *testing.T) {
	// y = 2 + 3x - 0.5z exactly; OLS must recover the coefficients to
	// floating-point accuracy.
	n := 20
	betaTrue := []float64{2, 3, -0.5}
	X := mat.NewDense(n, 3, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x1 := float64(i)
		x2 := float64(i*i%7) - 3
		X.Set(i, 0, 1)
		X.Set(i, 1, x1)
		X.Set(i, 2, x2)
		y[i] = betaTrue[0] + betaTrue[1]*x1 + betaTrue[2]*x2
	}

	res, err := OLS(X, y)
	if err != nil {
		t.Fatalf("OLS failed: %v", err)
	}
	for j, want := range betaTrue {
		if math.Abs(res.Coeffs[j]-want) > 1e-8 {
			t.Errorf("coeff %d = %v, want %v", j, res.Coeffs[j], want)
		}
	}
	if res.RSquared < 1-1e-10 {
		t.Errorf("RSquared = %v, want 1 for noiseless data", res.RSquared)
	}
	if res.DOF != n-3 {
		t.Errorf("DOF = %d, want %d", res.DOF, n-3)
	}
}

func TestOLSNoisyInference(t *testing.T) {
	src := rand.NewSource(3)
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	n := 400
	X := mat.NewDense(n, 2, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x1 := norm.Rand()
		X.Set(i, 0, 1)
		X.Set(i, 1, x1)
		y[i] = 1 + 2*x1 + norm.Rand()
	}

	res, err := OLS(X, y)
	if err != nil {
		t.Fatalf("OLS failed: %v", err)
	}
	if math.Abs(res.Coeffs[0]-1) > 0.2 || math.Abs(res.Coeffs[1]-2) > 0.2 {
		t.Errorf("coeffs = %v, want about (1, 2)", res.Coeffs)
	}
	// with sigma=1 the slope's standard error is about 1/sqrt(n)
	if res.StdErrs[1] <= 0 || res.StdErrs[1] > 0.15 {
		t.Errorf("slope se = %v, implausible", res.StdErrs[1])
	}
	// a true effect this strong must be overwhelmingly significant
	if res.PValues[1] > 1e-6 {
		t.Errorf("slope p = %v, want near 0", res.PValues[1])
	}
	if res.Sigma2 < 0.7 || res.Sigma2 > 1.3 {
		t.Errorf("sigma2 = %v, want about 1", res.Sigma2)
	}
}

func TestOLSDuplicatedColumn(t *testing.T) {
	n := 10
	X := mat.NewDense(n, 3, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		v := float64(i)
		X.Set(i, 0, 1)
		X.Set(i, 1, v)
		X.Set(i, 2, v) // duplicate of column 1
		y[i] = v
	}

	_, err := OLS(X, y)
	if err == nil {
		t.Fatal("expected failure for duplicated column")
	}
	var rde *RankDeficiencyError
	if !errors.As(err, &rde) {
		t.Fatalf("error is %T, want *RankDeficiencyError", err)
	}
	if rde.Rows != n || rde.Cols != 3 {
		t.Errorf("error dims %dx%d, want %dx3", rde.Rows, rde.Cols, n)
	}
}

func TestOLSInputValidation(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{1, 0, 1, 1, 1, 2})

	if _, err := OLS(nil, []float64{1}); err == nil {
		t.Error("nil design should fail")
	}
	if _, err := OLS(X, []float64{1, 2}); err == nil {
		t.Error("row mismatch should fail")
	}
	// n == k: no residual degrees of freedom
	Xsq := mat.NewDense(2, 2, []float64{1, 0, 1, 1})
	_, err := OLS(Xsq, []float64{1, 2})
	var ide *InsufficientDataError
	if !errors.As(err, &ide) {
		t.Errorf("error is %T, want *InsufficientDataError", err)
	}
}
