// Package dataset provides observation samples and design-matrix assembly.
package dataset

import "math"

// Sample represents a univariate sample of observations.
type Sample struct {
	values []float64
}

// NewSample creates a sample from values. The slice is copied so later
// mutation by the caller cannot change the sample.
func NewSample(values []float64) *Sample {
	v := make([]float64, len(values))
	copy(v, values)
	return &Sample{values: v}
}

// Len returns the number of observations.
func (s *Sample) Len() int {
	return len(s.values)
}

// Values returns a copy of the observations.
func (s *Sample) Values() []float64 {
	v := make([]float64, len(s.values))
	copy(v, s.values)
	return v
}

// Mean calculates the arithmetic mean of the sample.
func (s *Sample) Mean() float64 {
	if len(s.values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.values {
		sum += v
	}
	return sum / float64(len(s.values))
}

// Variance calculates the unbiased (n-1) sample variance.
func (s *Sample) Variance() float64 {
	if len(s.values) < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range s.values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(s.values)-1)
}

// Std calculates the sample standard deviation.
func (s *Sample) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the sample.
func (s *Sample) Min() float64 {
	if len(s.values) == 0 {
		return math.NaN()
	}
	min := s.values[0]
	for _, v := range s.values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value in the sample.
func (s *Sample) Max() float64 {
	if len(s.values) == 0 {
		return math.NaN()
	}
	max := s.values[0]
	for _, v := range s.values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
