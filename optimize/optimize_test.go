package optimize

import (
	"errors"
	"math"
	"testing"
)

// quadratic with minimum at (1, -2), value 3
var quadratic = Func(func(x []float64) float64 {
	return (x[0]-1)*(x[0]-1) + 10*(x[1]+2)*(x[1]+2) + 3
})

// rosenbrock has a curved valley with minimum at (1, 1)
var rosenbrock = Func(func(x []float64) float64 {
	a := 1 - x[0]
	b := x[1] - x[0]*x[0]
	return a*a + 100*b*b
})

func TestNelderMeadQuadratic(t *testing.T) {
	res, err := Minimize(quadratic, []float64{5, 5}, DefaultConfig())
	if err != nil {
		t.Fatalf("Minimize failed: %v", err)
	}
	if math.Abs(res.X[0]-1) > 1e-4 || math.Abs(res.X[1]+2) > 1e-4 {
		t.Errorf("minimizer = %v, want (1, -2)", res.X)
	}
	if math.Abs(res.Value-3) > 1e-6 {
		t.Errorf("value = %v, want 3", res.Value)
	}
	if res.Method != NelderMead {
		t.Errorf("method = %v", res.Method)
	}
}

func TestBFGSQuadratic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Method = BFGS
	res, err := Minimize(quadratic, []float64{5, 5}, cfg)
	if err != nil {
		t.Fatalf("Minimize failed: %v", err)
	}
	if math.Abs(res.X[0]-1) > 1e-4 || math.Abs(res.X[1]+2) > 1e-4 {
		t.Errorf("minimizer = %v, want (1, -2)", res.X)
	}
}

func TestNelderMeadRosenbrock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxIter = 5000
	res, err := Minimize(rosenbrock, []float64{-1.2, 1}, cfg)
	if err != nil {
		t.Fatalf("Minimize failed: %v", err)
	}
	if math.Abs(res.X[0]-1) > 1e-3 || math.Abs(res.X[1]-1) > 1e-3 {
		t.Errorf("minimizer = %v, want (1, 1)", res.X)
	}
}

func TestConvergenceError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxIter = 3
	_, err := Minimize(rosenbrock, []float64{-1.2, 1}, cfg)
	if err == nil {
		t.Fatal("expected convergence failure with 3 iterations")
	}
	var ce *ConvergenceError
	if !errors.As(err, &ce) {
		t.Fatalf("error is %T, want *ConvergenceError", err)
	}
	if len(ce.BestX) != 2 {
		t.Errorf("BestX = %v", ce.BestX)
	}
	if ce.Iterations != 3 {
		t.Errorf("Iterations = %d, want 3", ce.Iterations)
	}
	if math.IsNaN(ce.BestValue) || math.IsInf(ce.BestValue, 0) {
		t.Errorf("BestValue = %v", ce.BestValue)
	}
}

func TestInfiniteRegionsAvoided(t *testing.T) {
	// objective is +Inf for x <= 0, minimized at x = 2
	obj := Func(func(x []float64) float64 {
		if x[0] <= 0 {
			return math.Inf(1)
		}
		return x[0] - 2*math.Log(x[0])
	})
	res, err := Minimize(obj, []float64{1}, DefaultConfig())
	if err != nil {
		t.Fatalf("Minimize failed: %v", err)
	}
	if math.Abs(res.X[0]-2) > 1e-4 {
		t.Errorf("minimizer = %v, want 2", res.X[0])
	}
}

func TestGradient(t *testing.T) {
	g := Gradient(quadratic, []float64{3, 1}, 1e-6)
	// analytic gradient: (2(x-1), 20(y+2))
	if math.Abs(g[0]-4) > 1e-5 {
		t.Errorf("g[0] = %v, want 4", g[0])
	}
	if math.Abs(g[1]-60) > 1e-4 {
		t.Errorf("g[1] = %v, want 60", g[1])
	}
}

func TestMinimizeDeterministic(t *testing.T) {
	a, err := Minimize(rosenbrock, []float64{0, 0}, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Minimize(rosenbrock, []float64{0, 0}, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.X {
		if a.X[i] != b.X[i] {
			t.Errorf("run differs at coordinate %d: %v vs %v", i, a.X[i], b.X[i])
		}
	}
	if a.Iterations != b.Iterations {
		t.Errorf("iteration counts differ: %d vs %d", a.Iterations, b.Iterations)
	}
}

func TestEmptyInitialPoint(t *testing.T) {
	if _, err := Minimize(quadratic, nil, DefaultConfig()); err == nil {
		t.Error("expected error for empty initial point")
	}
}
