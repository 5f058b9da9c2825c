package hypothesis

import "fmt"

// InsufficientDataError reports that a sample is too small for the
// requested statistic to be defined.
type InsufficientDataError struct {
	Sample string // which input sample
	N      int    // observed size
	Min    int    // minimum required
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("hypothesis: sample %s has %d observations, need at least %d", e.Sample, e.N, e.Min)
}

// DegenerateVarianceError reports zero-variance inputs that make a
// test statistic undefined.
type DegenerateVarianceError struct {
	MeanA, MeanB float64
}

func (e *DegenerateVarianceError) Error() string {
	return fmt.Sprintf("hypothesis: both samples have zero variance with differing means (%v vs %v); statistic undefined", e.MeanA, e.MeanB)
}

// RankDeficiencyError reports a design matrix whose columns are
// linearly dependent within numerical tolerance, so the normal
// equations have no unique solution. Err, when non-nil, is the
// underlying matrix condition failure.
type RankDeficiencyError struct {
	Rows, Cols int
	Err        error
}

func (e *RankDeficiencyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("hypothesis: design matrix (%dx%d) is rank deficient: %v", e.Rows, e.Cols, e.Err)
	}
	return fmt.Sprintf("hypothesis: design matrix (%dx%d) is rank deficient", e.Rows, e.Cols)
}

// Unwrap returns the underlying condition error, if any.
func (e *RankDeficiencyError) Unwrap() error { return e.Err }
