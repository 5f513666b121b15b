package dice

import (
	"testing"

	"github.com/KirkDiggler/dicestats/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFaceFor(t *testing.T) {
	fair := models.NewFaceProbabilities(0)

	tests := []struct {
		name  string
		u     float64
		probs models.FaceProbabilities
		want  int
	}{
		{name: "zero lands on first face", u: 0, probs: fair, want: 1},
		{name: "just below second boundary", u: 0.33, probs: fair, want: 2},
		{name: "middle", u: 0.5, probs: fair, want: 4},
		{name: "top of range", u: 0.999999, probs: fair, want: 6},
		{name: "rounding gap falls on last face", u: 1, probs: fair, want: 6},
		{
			name:  "certain six",
			u:     0.1,
			probs: models.FaceProbabilities{0, 0, 0, 0, 0, 1},
			want:  6,
		},
		{
			name:  "impossible six never returned",
			u:     1,
			probs: models.FaceProbabilities{0.2, 0.2, 0.2, 0.2, 0.2, 0},
			want:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, faceFor(tt.u, tt.probs))
		})
	}
}

func TestRollStaysInRange(t *testing.T) {
	roller := New(&Config{Seed: 42})
	probs := models.NewFaceProbabilities(0.1)

	for i := 0; i < 10000; i++ {
		face := roller.Roll(probs)
		assert.GreaterOrEqual(t, face, 1)
		assert.LessOrEqual(t, face, 6)
	}
}

func TestRollIsDeterministicForSeed(t *testing.T) {
	probs := models.NewFaceProbabilities(0)
	a := New(&Config{Seed: 7})
	b := New(&Config{Seed: 7})

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Roll(probs), b.Roll(probs))
	}
}

func TestRollFrequenciesFollowBias(t *testing.T) {
	roller := New(&Config{Seed: 1234})
	probs := models.NewFaceProbabilities(0.1)

	const n = 200000
	counts := make(map[int]int)
	for i := 0; i < n; i++ {
		counts[roller.Roll(probs)]++
	}

	for face := 1; face <= models.Faces; face++ {
		assert.InDelta(t, probs.Of(face), float64(counts[face])/n, 0.01, "face %d", face)
	}
}

func TestNewWithNilConfig(t *testing.T) {
	roller := New(nil)
	face := roller.Roll(models.NewFaceProbabilities(0))
	assert.True(t, face >= 1 && face <= 6)
}
