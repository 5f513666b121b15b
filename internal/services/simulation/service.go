package simulation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/dicestats/internal/common/clock"
	"github.com/KirkDiggler/dicestats/internal/common/uuid"
	"github.com/KirkDiggler/dicestats/internal/dice"
	"github.com/KirkDiggler/dicestats/internal/models"
	"github.com/KirkDiggler/dicestats/internal/stats"
)

// cancelCheckInterval is how many data points are drawn between context checks
const cancelCheckInterval = 4096

// service implements the Service interface
type service struct {
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *slog.Logger
}

// New creates a new simulation service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger.With("component", "simulation"),
	}, nil
}

// Simulate rolls the dice, summarizes the sample and builds the plot data
func (s *service) Simulate(ctx context.Context, input *SimulateInput) (*SimulateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	requested := models.Parameters{
		RollCount: input.RollCount,
		DiceCount: input.DiceCount,
		BiasLevel: input.BiasLevel,
	}
	params := requested.Clamp()
	clamped := params != requested
	if clamped {
		s.logger.DebugContext(ctx, "clamped simulation parameters",
			"requested", requested,
			"used", params)
	}

	run := &models.Run{
		ID:            s.uuidGenerator.NewUUID(),
		StartedAt:     s.clock.Now(),
		Parameters:    params,
		Probabilities: models.NewFaceProbabilities(params.BiasLevel),
	}

	sample, err := s.rollSample(ctx, params, run.Probabilities)
	if err != nil {
		return nil, fmt.Errorf("simulation %s: %w", run.ID, err)
	}

	run.Sample = sample
	run.Empirical = stats.Summarize(sample)
	run.Theoretical = stats.SumMoments(stats.DieMoments(run.Probabilities), params.DiceCount)
	run.Plot = buildPlot(params, run.Probabilities, run.Theoretical, sample)
	run.Duration = s.clock.Since(run.StartedAt)

	s.logger.InfoContext(ctx, "simulation complete",
		"run_id", run.ID,
		"rolls", params.RollCount,
		"dice", params.DiceCount,
		"bias", params.BiasLevel,
		"empirical_mean", run.Empirical.Mean,
		"empirical_std", run.Empirical.StandardDeviation,
		"theoretical_mean", run.Theoretical.Mean,
		"theoretical_std", run.Theoretical.StandardDeviation,
		"duration", run.Duration)

	return &SimulateOutput{
		Run:     run,
		Clamped: clamped,
	}, nil
}

// GetTheory returns the face distribution and expected moments without rolling
func (s *service) GetTheory(ctx context.Context, input *GetTheoryInput) (*GetTheoryOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	params := models.Parameters{
		RollCount: models.MinRollCount,
		DiceCount: input.DiceCount,
		BiasLevel: input.BiasLevel,
	}.Clamp()
	probs := models.NewFaceProbabilities(params.BiasLevel)

	return &GetTheoryOutput{
		DiceCount:     params.DiceCount,
		BiasLevel:     params.BiasLevel,
		Probabilities: probs,
		Theoretical:   stats.SumMoments(stats.DieMoments(probs), params.DiceCount),
	}, nil
}

// rollSample draws RollCount rows of DiceCount faces and sums each row
func (s *service) rollSample(ctx context.Context, params models.Parameters, probs models.FaceProbabilities) ([]int, error) {
	sample := make([]int, params.RollCount)
	for i := range sample {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		sum := 0
		for d := 0; d < params.DiceCount; d++ {
			sum += s.diceRoller.Roll(probs)
		}
		sample[i] = sum
	}
	return sample, nil
}

// buildPlot assembles the histogram and the reference curve. One die is
// compared against its exact distribution; a sum of several dice against the
// normal approximation the Central Limit Theorem suggests.
func buildPlot(params models.Parameters, probs models.FaceProbabilities, theory models.TheoreticalSummary, sample []int) *models.Plot {
	plot := &models.Plot{
		Bins: stats.Histogram(sample, params.MinSum(), params.MaxSum()),
		XMin: params.MinSum(),
		XMax: params.MaxSum(),
	}

	if params.DiceCount == 1 {
		plot.Theory = models.TheoryKindPMF
		plot.Curve = make([]models.Point, 0, models.Faces)
		for face := 1; face <= models.Faces; face++ {
			plot.Curve = append(plot.Curve, models.Point{X: float64(face), Y: probs.Of(face)})
		}
		return plot
	}

	plot.Theory = models.TheoryKindNormal
	xs := stats.Linspace(float64(plot.XMin), float64(plot.XMax), models.NormalCurvePoints)
	plot.Curve = make([]models.Point, len(xs))
	for i, x := range xs {
		plot.Curve[i] = models.Point{
			X: x,
			Y: stats.NormalPDF(x, theory.Mean, theory.StandardDeviation),
		}
	}
	return plot
}
