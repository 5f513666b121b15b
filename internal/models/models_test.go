package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFaceProbabilitiesUnbiased(t *testing.T) {
	probs := NewFaceProbabilities(0)

	for face := 1; face <= Faces; face++ {
		assert.Equal(t, 1.0/6.0, probs.Of(face), "face %d", face)
	}
}

func TestNewFaceProbabilitiesSumToOne(t *testing.T) {
	for bias := MinBiasLevel; bias <= MaxBiasLevel+1e-9; bias += BiasStep {
		probs := NewFaceProbabilities(bias)

		assert.InDelta(t, 1.0, probs.Sum(), 1e-12, "bias %.2f", bias)
		for face := 1; face <= Faces; face++ {
			assert.GreaterOrEqual(t, probs.Of(face), 0.0, "bias %.2f face %d", bias, face)
		}
		assert.InDelta(t, 1.0/6.0+bias, probs.Of(6), 1e-12)
	}
}

func TestNewFaceProbabilitiesClampsSix(t *testing.T) {
	t.Run("above one", func(t *testing.T) {
		probs := NewFaceProbabilities(2)
		assert.Equal(t, 1.0, probs.Of(6))
		assert.Equal(t, 0.0, probs.Of(1))
		assert.InDelta(t, 1.0, probs.Sum(), 1e-12)
	})

	t.Run("below zero", func(t *testing.T) {
		probs := NewFaceProbabilities(-1)
		assert.Equal(t, 0.0, probs.Of(6))
		assert.InDelta(t, 0.2, probs.Of(3), 1e-12)
		assert.InDelta(t, 1.0, probs.Sum(), 1e-12)
	})
}

func TestFaceProbabilitiesOfOutOfRange(t *testing.T) {
	probs := NewFaceProbabilities(0)
	assert.Zero(t, probs.Of(0))
	assert.Zero(t, probs.Of(7))
}

func TestParametersClamp(t *testing.T) {
	tests := []struct {
		name string
		in   Parameters
		want Parameters
	}{
		{
			name: "within bounds",
			in:   Parameters{RollCount: 5000, DiceCount: 3, BiasLevel: 0.05},
			want: Parameters{RollCount: 5000, DiceCount: 3, BiasLevel: 0.05},
		},
		{
			name: "below bounds",
			in:   Parameters{RollCount: 1, DiceCount: 0, BiasLevel: -0.5},
			want: Parameters{RollCount: MinRollCount, DiceCount: MinDiceCount, BiasLevel: MinBiasLevel},
		},
		{
			name: "above bounds",
			in:   Parameters{RollCount: 5_000_000, DiceCount: 9, BiasLevel: 0.5},
			want: Parameters{RollCount: MaxRollCount, DiceCount: MaxDiceCount, BiasLevel: MaxBiasLevel},
		},
		{
			name: "nan bias",
			in:   Parameters{RollCount: 100, DiceCount: 2, BiasLevel: math.NaN()},
			want: Parameters{RollCount: 100, DiceCount: 2, BiasLevel: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Clamp())
		})
	}
}

func TestParametersSumRange(t *testing.T) {
	p := Parameters{RollCount: 100, DiceCount: 4}
	assert.Equal(t, 4, p.MinSum())
	assert.Equal(t, 24, p.MaxSum())
}

func TestPlotMaxY(t *testing.T) {
	plot := &Plot{
		Bins:  []HistogramBin{{Value: 1, Density: 0.2}, {Value: 2, Density: 0.4}},
		Curve: []Point{{X: 1, Y: 0.3}, {X: 2, Y: 0.5}},
	}
	assert.Equal(t, 0.5, plot.MaxY())
}
