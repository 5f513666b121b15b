package models

import "math"

// FaceProbabilities is the categorical distribution over faces 1-6.
// Index 0 holds the probability of face 1.
type FaceProbabilities [Faces]float64

// NewFaceProbabilities derives the face distribution for a bias level.
// The probability of a six is 1/6 + bias clamped to [0, 1]; the remaining
// mass is split evenly across faces 1-5.
func NewFaceProbabilities(bias float64) FaceProbabilities {
	nominal := 1.0 / 6.0

	six := nominal + bias
	// (1 - (1/6 + b)) / 5 == 1/6 - b/5, and the latter keeps bias 0 exact
	rest := nominal - bias/5.0
	if six < 0 || six > 1 || math.IsNaN(six) {
		six = clampFloat(six, 0, 1)
		rest = (1 - six) / 5.0
	}

	var probs FaceProbabilities
	for i := 0; i < Faces-1; i++ {
		probs[i] = rest
	}
	probs[Faces-1] = six
	return probs
}

// Of returns the probability of the given face, 0 for faces outside 1-6
func (p FaceProbabilities) Of(face int) float64 {
	if face < 1 || face > Faces {
		return 0
	}
	return p[face-1]
}

// Sum returns the total probability mass
func (p FaceProbabilities) Sum() float64 {
	var total float64
	for _, v := range p {
		total += v
	}
	return total
}
