package dice

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/KirkDiggler/dicestats/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/dicestats/internal/dice Roller

// Roller draws faces from a (possibly biased) six-sided die
type Roller interface {
	// Roll returns a face in 1-6 drawn from the given distribution
	Roll(probs models.FaceProbabilities) int
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed uint64
}

// CategoricalRoller samples faces by inverting the cumulative distribution
type CategoricalRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *CategoricalRoller {
	var seed uint64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = uint64(time.Now().UnixNano())
	}

	return &CategoricalRoller{
		random: rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

// Roll draws one face from probs
func (r *CategoricalRoller) Roll(probs models.FaceProbabilities) int {
	r.mu.Lock()
	u := r.random.Float64()
	r.mu.Unlock()

	return faceFor(u, probs)
}

// faceFor maps a uniform draw in [0, 1) onto a face. Rounding can leave the
// cumulative total a hair below 1, so anything past the last boundary falls
// on the highest face with non-zero mass.
func faceFor(u float64, probs models.FaceProbabilities) int {
	var cumulative float64
	last := models.Faces
	for i, p := range probs {
		if p <= 0 {
			continue
		}
		cumulative += p
		last = i + 1
		if u < cumulative {
			return i + 1
		}
	}
	return last
}
