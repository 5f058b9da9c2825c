package montecarlo

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CLTResult holds, for each requested sample size, the distribution of
// mean differences across repetitions. Distributions[i] has
// Repetitions values for SampleSizes[i].
type CLTResult struct {
	SampleSizes   []int
	Distributions [][]float64
}

// TraceSummary describes the shape of one mean-difference
// distribution. Under the CLT the standard deviation shrinks like
// 1/sqrt(sample size) and skewness and excess kurtosis approach zero.
type TraceSummary struct {
	SampleSize     int
	Mean           float64
	StdDev         float64
	Skewness       float64
	ExcessKurtosis float64
}

// Summaries computes per-sample-size distribution summaries.
func (r *CLTResult) Summaries() []TraceSummary {
	out := make([]TraceSummary, len(r.SampleSizes))
	for i, d := range r.Distributions {
		out[i] = TraceSummary{
			SampleSize:     r.SampleSizes[i],
			Mean:           stat.Mean(d, nil),
			StdDev:         stat.StdDev(d, nil),
			Skewness:       stat.Skew(d, nil),
			ExcessKurtosis: stat.ExKurtosis(d, nil),
		}
	}
	return out
}

// SamplingDistributions runs the Central Limit Theorem experiment: for
// each sample size it draws cfg.Repetitions independent finite samples
// from both arms and records each repetition's mean difference. A
// single source seeded with cfg.Seed drives the whole run, so
// identical configurations reproduce identical distributions.
func SamplingDistributions(cfg Config) (*CLTResult, error) {
	if err := cfg.validateProbabilities(); err != nil {
		return nil, err
	}
	if len(cfg.SampleSizes) == 0 {
		return nil, &InvalidParameterError{
			Field:  "SampleSizes",
			Value:  0,
			Reason: "at least one sample size required",
		}
	}
	for _, m := range cfg.SampleSizes {
		if m <= 0 {
			return nil, &InvalidParameterError{
				Field:  "SampleSizes",
				Value:  float64(m),
				Reason: "sample sizes must be positive",
			}
		}
	}
	if cfg.Repetitions <= 0 {
		return nil, &InvalidParameterError{
			Field:  "Repetitions",
			Value:  float64(cfg.Repetitions),
			Reason: "must be positive",
		}
	}

	src := rand.NewSource(cfg.Seed)
	control := distuv.Bernoulli{P: cfg.ControlProbability, Src: src}
	treatment := distuv.Bernoulli{P: cfg.TreatmentProbability, Src: src}

	sizes := append([]int(nil), cfg.SampleSizes...)
	dists := make([][]float64, len(sizes))
	for si, m := range sizes {
		d := make([]float64, cfg.Repetitions)
		for r := 0; r < cfg.Repetitions; r++ {
			sumT, sumC := 0.0, 0.0
			for i := 0; i < m; i++ {
				sumT += treatment.Rand()
				sumC += control.Rand()
			}
			d[r] = sumT/float64(m) - sumC/float64(m)
		}
		dists[si] = d
	}

	return &CLTResult{SampleSizes: sizes, Distributions: dists}, nil
}
