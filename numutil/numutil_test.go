package numutil

import (
	"math"
	"testing"
)

func TestClip(t *testing.T) {
	if v := Clip(5, -1, 1); v != 1 {
		t.Errorf("Clip(5,-1,1) = %v, want 1", v)
	}
	if v := Clip(-5, -1, 1); v != -1 {
		t.Errorf("Clip(-5,-1,1) = %v, want -1", v)
	}
	if v := Clip(0.3, -1, 1); v != 0.3 {
		t.Errorf("Clip(0.3,-1,1) = %v, want 0.3", v)
	}
}

func TestExpIsFinite(t *testing.T) {
	for _, x := range []float64{-1e6, -21, 0, 21, 1e6, math.Inf(1), math.Inf(-1)} {
		v := Exp(x)
		if math.IsInf(v, 0) || math.IsNaN(v) || v <= 0 {
			t.Errorf("Exp(%v) = %v, want finite positive", x, v)
		}
	}
	// within the clip range it matches math.Exp
	if v := Exp(3); math.Abs(v-math.Exp(3)) > 1e-12 {
		t.Errorf("Exp(3) = %v, want %v", v, math.Exp(3))
	}
	// saturation at the clip boundary
	if Exp(25) != math.Exp(ExpClipLimit) {
		t.Errorf("Exp(25) should saturate at exp(%v)", ExpClipLimit)
	}
}

func TestLogFactorial(t *testing.T) {
	// log(0!) = 0, log(1!) = 0
	if v := LogFactorial(0); math.Abs(v) > 1e-12 {
		t.Errorf("LogFactorial(0) = %v, want 0", v)
	}
	// compare against direct summation log(n!) = sum log(k)
	for _, n := range []int{1, 5, 10, 170, 500} {
		want := 0.0
		for k := 2; k <= n; k++ {
			want += math.Log(float64(k))
		}
		got := LogFactorial(float64(n))
		if math.Abs(got-want) > 1e-8*math.Max(1, want) {
			t.Errorf("LogFactorial(%d) = %v, want %v", n, got, want)
		}
	}
	if !math.IsInf(LogFactorial(-1), 1) {
		t.Errorf("LogFactorial(-1) should be +Inf")
	}
}

func TestSafeDiv(t *testing.T) {
	if v := SafeDiv(1, 0, -7); v != -7 {
		t.Errorf("SafeDiv(1,0,-7) = %v, want -7", v)
	}
	if v := SafeDiv(6, 3, 0); v != 2 {
		t.Errorf("SafeDiv(6,3,0) = %v, want 2", v)
	}
}

func TestSafeLog(t *testing.T) {
	if !math.IsInf(SafeLog(0), -1) {
		t.Errorf("SafeLog(0) should be -Inf")
	}
	if !math.IsInf(SafeLog(-3), -1) {
		t.Errorf("SafeLog(-3) should be -Inf, got %v", SafeLog(-3))
	}
	if v := SafeLog(math.E); math.Abs(v-1) > 1e-12 {
		t.Errorf("SafeLog(e) = %v, want 1", v)
	}
}
