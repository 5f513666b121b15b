package simulation

import (
	"log/slog"

	"github.com/KirkDiggler/dicestats/internal/common/clock"
	"github.com/KirkDiggler/dicestats/internal/common/uuid"
	"github.com/KirkDiggler/dicestats/internal/dice"
	"github.com/KirkDiggler/dicestats/internal/models"
)

// Config holds configuration for the simulation service
type Config struct {
	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger receives one record per run; defaults to slog.Default()
	Logger *slog.Logger
}

// SimulateInput contains parameters for a simulation run
type SimulateInput struct {
	// RollCount is the number of data points to generate, clamped to [10, 10^6]
	RollCount int

	// DiceCount is the number of dice summed per data point, clamped to [1, 5]
	DiceCount int

	// BiasLevel shifts the probability of a six, clamped to [-0.1, 0.1]
	BiasLevel float64
}

// SimulateOutput contains the result of a simulation run
type SimulateOutput struct {
	Run *models.Run

	// Clamped reports whether any input had to be forced into range
	Clamped bool
}

// GetTheoryInput contains parameters for the theoretical reference
type GetTheoryInput struct {
	DiceCount int
	BiasLevel float64
}

// GetTheoryOutput contains the theoretical reference for a dice setup
type GetTheoryOutput struct {
	DiceCount     int
	BiasLevel     float64
	Probabilities models.FaceProbabilities
	Theoretical   models.TheoreticalSummary
}
