package models

import "time"

// TheoryKind identifies the shape of the theoretical reference curve
type TheoryKind string

const (
	// TheoryKindPMF is the exact face distribution of a single die, drawn as stems
	TheoryKindPMF TheoryKind = "pmf"

	// TheoryKindNormal is the Gaussian approximation of a sum of dice
	TheoryKindNormal TheoryKind = "normal"
)

// NormalCurvePoints is how many points sample the Gaussian reference curve
const NormalCurvePoints = 1000

// Summary holds the moments of a distribution
type Summary struct {
	Mean              float64 `json:"mean"`
	Variance          float64 `json:"variance"`
	StandardDeviation float64 `json:"standard_deviation"`
}

// EmpiricalSummary describes an observed sample
type EmpiricalSummary struct {
	Summary
	Min int `json:"min"`
	Max int `json:"max"`
}

// TheoreticalSummary describes the expected distribution of a sum of dice
type TheoreticalSummary struct {
	Summary

	// PerDie holds the moments of a single die
	PerDie Summary `json:"per_die"`
}

// HistogramBin is one unit-wide bar of a density histogram
type HistogramBin struct {
	// Value is the sum the bin counts
	Value int `json:"value"`

	// Count is how many data points equal Value
	Count int `json:"count"`

	// Density is Count divided by the sample size
	Density float64 `json:"density"`
}

// Point is a point of the reference curve
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Plot holds everything needed to draw the histogram and its reference curve
type Plot struct {
	Bins   []HistogramBin `json:"bins"`
	Theory TheoryKind     `json:"theory"`
	Curve  []Point        `json:"curve"`
	XMin   int            `json:"x_min"`
	XMax   int            `json:"x_max"`
}

// MaxY returns the tallest bar or curve value in the plot
func (p *Plot) MaxY() float64 {
	var top float64
	for _, b := range p.Bins {
		if b.Density > top {
			top = b.Density
		}
	}
	for _, pt := range p.Curve {
		if pt.Y > top {
			top = pt.Y
		}
	}
	return top
}

// Run is the complete outcome of one simulation
type Run struct {
	ID            string             `json:"id"`
	StartedAt     time.Time          `json:"started_at"`
	Duration      time.Duration      `json:"duration"`
	Parameters    Parameters         `json:"parameters"`
	Probabilities FaceProbabilities  `json:"probabilities"`
	Sample        []int              `json:"-"`
	Empirical     EmpiricalSummary   `json:"empirical"`
	Theoretical   TheoreticalSummary `json:"theoretical"`
	Plot          *Plot              `json:"plot"`
}
