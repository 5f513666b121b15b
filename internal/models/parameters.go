package models

import "math"

const (
	// MinRollCount is the smallest number of rolls a simulation accepts
	MinRollCount = 10

	// MaxRollCount is the largest number of rolls a simulation accepts
	MaxRollCount = 1_000_000

	// DefaultRollCount is the roll count preselected on the control panel
	DefaultRollCount = 1000

	// MinDiceCount is the smallest number of dice rolled together
	MinDiceCount = 1

	// MaxDiceCount is the largest number of dice rolled together
	MaxDiceCount = 5

	// DefaultDiceCount is the dice count preselected on the control panel
	DefaultDiceCount = 1

	// MinBiasLevel is the lowest bias applied to the probability of a six
	MinBiasLevel = -0.1

	// MaxBiasLevel is the highest bias applied to the probability of a six
	MaxBiasLevel = 0.1

	// BiasStep is the granularity of the bias control
	BiasStep = 0.01

	// Faces is the number of faces on a die
	Faces = 6
)

// Parameters holds the inputs of a single simulation run
type Parameters struct {
	// RollCount is the number of data points in the sample
	RollCount int `json:"roll_count"`

	// DiceCount is the number of dice summed into each data point
	DiceCount int `json:"dice_count"`

	// BiasLevel is the offset added to the nominal 1/6 probability of a six
	BiasLevel float64 `json:"bias_level"`
}

// DefaultParameters returns the parameters the control panel starts with
func DefaultParameters() Parameters {
	return Parameters{
		RollCount: DefaultRollCount,
		DiceCount: DefaultDiceCount,
		BiasLevel: 0,
	}
}

// Clamp returns a copy of the parameters forced into their allowed ranges
func (p Parameters) Clamp() Parameters {
	return Parameters{
		RollCount: clampInt(p.RollCount, MinRollCount, MaxRollCount),
		DiceCount: clampInt(p.DiceCount, MinDiceCount, MaxDiceCount),
		BiasLevel: clampFloat(p.BiasLevel, MinBiasLevel, MaxBiasLevel),
	}
}

// MinSum is the smallest attainable sum for these parameters
func (p Parameters) MinSum() int {
	return p.DiceCount
}

// MaxSum is the largest attainable sum for these parameters
func (p Parameters) MaxSum() int {
	return Faces * p.DiceCount
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
