// Package hypothesis implements the study's hypothesis tests: the
// two-sample mean comparison, ordinary least squares, and the probit
// model.
package hypothesis

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/goeconometrics/dataset"
)

// TTestResult is the outcome of a two-sample mean comparison. Created
// once per invocation and not mutated afterwards.
type TTestResult struct {
	MeanA, MeanB     float64
	Diff             float64 // MeanA - MeanB, the effect size
	SE               float64 // pooled standard error of the difference
	Statistic        float64
	DOF              float64 // conservative min(n1,n2)-1, used for PValue
	SatterthwaiteDOF float64 // full Welch-Satterthwaite value
	PValue           float64 // two-sided
}

// TwoSampleTTest compares the means of two independent samples using
// Welch's unequal-variance statistic. Each sample needs at least two
// observations.
//
// The p-value uses min(n1,n2)-1 degrees of freedom, a conservative
// simplification of the Welch-Satterthwaite formula; the full value is
// reported in SatterthwaiteDOF for callers who want the exact
// reference distribution.
func TwoSampleTTest(a, b []float64) (*TTestResult, error) {
	if len(a) < 2 {
		return nil, &InsufficientDataError{Sample: "a", N: len(a), Min: 2}
	}
	if len(b) < 2 {
		return nil, &InsufficientDataError{Sample: "b", N: len(b), Min: 2}
	}

	sa := dataset.NewSample(a)
	sb := dataset.NewSample(b)
	meanA, meanB := sa.Mean(), sb.Mean()
	varA, varB := sa.Variance(), sb.Variance()
	n1, n2 := float64(len(a)), float64(len(b))

	se := math.Sqrt(varA/n1 + varB/n2)
	diff := meanA - meanB

	if se == 0 {
		if diff != 0 {
			return nil, &DegenerateVarianceError{MeanA: meanA, MeanB: meanB}
		}
		// Identical constants: no evidence of any difference.
		return &TTestResult{
			MeanA:            meanA,
			MeanB:            meanB,
			DOF:              math.Min(n1, n2) - 1,
			SatterthwaiteDOF: math.Min(n1, n2) - 1,
			PValue:           1,
		}, nil
	}

	tStat := diff / se
	dof := math.Min(n1, n2) - 1

	// Welch-Satterthwaite degrees of freedom.
	va, vb := varA/n1, varB/n2
	wsDOF := (va + vb) * (va + vb) / (va*va/(n1-1) + vb*vb/(n2-1))

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: dof}
	pValue := 2 * tDist.Survival(math.Abs(tStat))

	return &TTestResult{
		MeanA:            meanA,
		MeanB:            meanB,
		Diff:             diff,
		SE:               se,
		Statistic:        tStat,
		DOF:              dof,
		SatterthwaiteDOF: wsDOF,
		PValue:           pValue,
	}, nil
}
