package simulation

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/dicestats/internal/services/simulation Service

// Service defines the interface for dice simulation operations
type Service interface {
	// Simulate rolls the dice, summarizes the sample and builds the plot data
	Simulate(ctx context.Context, input *SimulateInput) (*SimulateOutput, error)

	// GetTheory returns the face distribution and expected moments without rolling
	GetTheory(ctx context.Context, input *GetTheoryInput) (*GetTheoryOutput, error)
}
