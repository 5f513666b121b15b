// Package stats holds the arithmetic behind a simulation: per-die moments,
// sample summaries, the normal density and unit-width histograms.
package stats

import (
	"math"

	"github.com/KirkDiggler/dicestats/internal/models"
)

// DieMoments returns the mean and variance of a single die with the given
// face distribution.
func DieMoments(probs models.FaceProbabilities) models.Summary {
	var mean float64
	for i, p := range probs {
		mean += float64(i+1) * p
	}

	var variance float64
	for i, p := range probs {
		diff := float64(i+1) - mean
		variance += diff * diff * p
	}

	return models.Summary{
		Mean:              mean,
		Variance:          variance,
		StandardDeviation: math.Sqrt(variance),
	}
}

// SumMoments scales per-die moments to the sum of diceCount independent dice
func SumMoments(perDie models.Summary, diceCount int) models.TheoreticalSummary {
	k := float64(diceCount)
	variance := k * perDie.Variance

	return models.TheoreticalSummary{
		Summary: models.Summary{
			Mean:              k * perDie.Mean,
			Variance:          variance,
			StandardDeviation: math.Sqrt(variance),
		},
		PerDie: perDie,
	}
}

// Summarize computes the mean, population variance and range of a sample.
// An empty sample yields the zero summary.
func Summarize(data []int) models.EmpiricalSummary {
	if len(data) == 0 {
		return models.EmpiricalSummary{}
	}

	n := float64(len(data))
	lo, hi := data[0], data[0]
	sum := 0
	for _, v := range data {
		sum += v
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	mean := float64(sum) / n

	m2 := 0.0
	for _, v := range data {
		diff := float64(v) - mean
		m2 += diff * diff
	}
	variance := m2 / n

	return models.EmpiricalSummary{
		Summary: models.Summary{
			Mean:              mean,
			Variance:          variance,
			StandardDeviation: math.Sqrt(variance),
		},
		Min: lo,
		Max: hi,
	}
}

// NormalPDF is the density of N(mean, stdDev²) at x. A degenerate
// distribution (stdDev <= 0) has no density and yields 0.
func NormalPDF(x, mean, stdDev float64) float64 {
	if stdDev <= 0 {
		return 0
	}
	z := (x - mean) / stdDev
	return math.Exp(-0.5*z*z) / (stdDev * math.Sqrt(2*math.Pi))
}

// Linspace returns n evenly spaced values over [start, stop], both ends included
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}

	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// Histogram bins data into unit-wide bins for every value in [lo, hi].
// Density is the bin count over the sample size, so densities sum to 1 when
// every value lies in range. Out-of-range values are ignored.
func Histogram(data []int, lo, hi int) []models.HistogramBin {
	if hi < lo {
		return nil
	}

	bins := make([]models.HistogramBin, hi-lo+1)
	for i := range bins {
		bins[i].Value = lo + i
	}
	for _, v := range data {
		if v < lo || v > hi {
			continue
		}
		bins[v-lo].Count++
	}

	if len(data) > 0 {
		n := float64(len(data))
		for i := range bins {
			bins[i].Density = float64(bins[i].Count) / n
		}
	}
	return bins
}
