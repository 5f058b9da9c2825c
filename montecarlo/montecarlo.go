// Package montecarlo implements Bernoulli sampling experiments
// illustrating the Law of Large Numbers and the Central Limit Theorem.
package montecarlo

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Config describes a simulation run. Probabilities are Bernoulli
// success rates for the two arms; Seed makes runs reproducible.
type Config struct {
	ControlProbability   float64
	TreatmentProbability float64
	SimulationCount      int   // number of draws for the LLN trace
	SampleSizes          []int // finite-sample sizes for the CLT experiment
	Repetitions          int   // samples per size for the CLT experiment
	Seed                 uint64
}

// InvalidParameterError reports a configuration value outside its
// allowed range, naming the field.
type InvalidParameterError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("montecarlo: invalid %s=%v: %s", e.Field, e.Value, e.Reason)
}

func (c Config) validateProbabilities() error {
	if !(c.ControlProbability > 0 && c.ControlProbability < 1) {
		return &InvalidParameterError{
			Field:  "ControlProbability",
			Value:  c.ControlProbability,
			Reason: "must lie in (0,1)",
		}
	}
	if !(c.TreatmentProbability > 0 && c.TreatmentProbability < 1) {
		return &InvalidParameterError{
			Field:  "TreatmentProbability",
			Value:  c.TreatmentProbability,
			Reason: "must lie in (0,1)",
		}
	}
	return nil
}

// LLNTrace is the result of a Law of Large Numbers run: per-draw
// treatment-control differences and their running average. Created
// fresh per run and never mutated afterwards.
type LLNTrace struct {
	Diffs    []float64 // per-draw difference, length SimulationCount
	CumAvg   []float64 // cumulative average of Diffs
	TrueDiff float64   // TreatmentProbability - ControlProbability
}

// Final returns the last value of the running average, the Monte
// Carlo estimate of the true difference.
func (t *LLNTrace) Final() float64 {
	return t.CumAvg[len(t.CumAvg)-1]
}

// RunningDifference draws SimulationCount Bernoulli outcomes per arm
// from a source seeded with cfg.Seed and returns the running average
// of the per-draw differences. The sequence converges toward the true
// probability difference, with fluctuations shrinking like 1/sqrt(n).
// Identical seeds reproduce identical traces.
func RunningDifference(cfg Config) (*LLNTrace, error) {
	if err := cfg.validateProbabilities(); err != nil {
		return nil, err
	}
	if cfg.SimulationCount <= 0 {
		return nil, &InvalidParameterError{
			Field:  "SimulationCount",
			Value:  float64(cfg.SimulationCount),
			Reason: "must be positive",
		}
	}

	src := rand.NewSource(cfg.Seed)
	control := distuv.Bernoulli{P: cfg.ControlProbability, Src: src}
	treatment := distuv.Bernoulli{P: cfg.TreatmentProbability, Src: src}

	n := cfg.SimulationCount
	diffs := make([]float64, n)
	cumAvg := make([]float64, n)
	sum := 0.0
	for i := 0; i < n; i++ {
		diffs[i] = treatment.Rand() - control.Rand()
		sum += diffs[i]
		cumAvg[i] = sum / float64(i+1)
	}

	return &LLNTrace{
		Diffs:    diffs,
		CumAvg:   cumAvg,
		TrueDiff: cfg.TreatmentProbability - cfg.ControlProbability,
	}, nil
}
