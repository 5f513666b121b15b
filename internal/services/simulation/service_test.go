package simulation

import (
	"context"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/dicestats/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/dicestats/internal/common/uuid/mocks"
	"github.com/KirkDiggler/dicestats/internal/dice"
	diceMocks "github.com/KirkDiggler/dicestats/internal/dice/mocks"
	"github.com/KirkDiggler/dicestats/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SimulationServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockDiceRoller *diceMocks.MockRoller
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	service        Service
	ctx            context.Context
	logger         *slog.Logger

	// Test data
	testTime     time.Time
	testDuration time.Duration
	testRunID    string
}

func (s *SimulationServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testDuration = 15 * time.Millisecond
	s.testRunID = "test-run-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockClock.EXPECT().Since(s.testTime).Return(s.testDuration).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return(s.testRunID).AnyTimes()

	svc, err := New(&Config{
		DiceRoller:    s.mockDiceRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Logger:        s.logger,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *SimulationServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSimulationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SimulationServiceTestSuite))
}

func (s *SimulationServiceTestSuite) TestNewValidatesConfig() {
	tests := []struct {
		name string
		cfg  *Config
		err  error
	}{
		{name: "nil config", cfg: nil, err: ErrNilConfig},
		{name: "nil roller", cfg: &Config{Clock: s.mockClock, UUIDGenerator: s.mockUUID}, err: ErrNilDiceRoller},
		{name: "nil clock", cfg: &Config{DiceRoller: s.mockDiceRoller, UUIDGenerator: s.mockUUID}, err: ErrNilClock},
		{name: "nil uuid", cfg: &Config{DiceRoller: s.mockDiceRoller, Clock: s.mockClock}, err: ErrNilUUIDGenerator},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			svc, err := New(tt.cfg)
			s.Nil(svc)
			s.ErrorIs(err, tt.err)
		})
	}
}

func (s *SimulationServiceTestSuite) TestSimulateNilInput() {
	output, err := s.service.Simulate(s.ctx, nil)
	s.Nil(output)
	s.ErrorIs(err, ErrNilInput)
}

func (s *SimulationServiceTestSuite) TestSimulateSumsEachRow() {
	// Faces cycle 1..6, so with two dice the rows are (1,2) (3,4) (5,6) ...
	face := 0
	s.mockDiceRoller.EXPECT().
		Roll(models.NewFaceProbabilities(0)).
		DoAndReturn(func(models.FaceProbabilities) int {
			face = face%6 + 1
			return face
		}).
		Times(20)

	output, err := s.service.Simulate(s.ctx, &SimulateInput{
		RollCount: 10,
		DiceCount: 2,
		BiasLevel: 0,
	})
	s.Require().NoError(err)
	s.Require().NotNil(output.Run)

	run := output.Run
	s.False(output.Clamped)
	s.Equal(s.testRunID, run.ID)
	s.Equal(s.testTime, run.StartedAt)
	s.Equal(s.testDuration, run.Duration)
	s.Equal([]int{3, 7, 11, 3, 7, 11, 3, 7, 11, 3}, run.Sample)
	s.Equal(3, run.Empirical.Min)
	s.Equal(11, run.Empirical.Max)
	s.InDelta(6.6, run.Empirical.Mean, 1e-12)
}

func (s *SimulationServiceTestSuite) TestSimulateSingleDieUsesPMF() {
	s.mockDiceRoller.EXPECT().Roll(gomock.Any()).Return(6).Times(10)

	output, err := s.service.Simulate(s.ctx, &SimulateInput{
		RollCount: 10,
		DiceCount: 1,
		BiasLevel: 0.1,
	})
	s.Require().NoError(err)

	plot := output.Run.Plot
	s.Equal(models.TheoryKindPMF, plot.Theory)
	s.Require().Len(plot.Curve, 6)
	for i, pt := range plot.Curve {
		s.Equal(float64(i+1), pt.X)
		s.Equal(output.Run.Probabilities[i], pt.Y)
	}
	s.Equal(1, plot.XMin)
	s.Equal(6, plot.XMax)
	s.Require().Len(plot.Bins, 6)
	s.Equal(1.0, plot.Bins[5].Density)
}

func (s *SimulationServiceTestSuite) TestSimulateSeveralDiceUsesNormalCurve() {
	s.mockDiceRoller.EXPECT().Roll(gomock.Any()).Return(3).Times(300)

	output, err := s.service.Simulate(s.ctx, &SimulateInput{
		RollCount: 100,
		DiceCount: 3,
		BiasLevel: -0.05,
	})
	s.Require().NoError(err)

	run := output.Run
	plot := run.Plot
	s.Equal(models.TheoryKindNormal, plot.Theory)
	s.Require().Len(plot.Curve, models.NormalCurvePoints)
	s.Equal(3.0, plot.Curve[0].X)
	s.Equal(18.0, plot.Curve[len(plot.Curve)-1].X)
	s.Len(plot.Bins, 16)

	perDie := run.Theoretical.PerDie
	s.InDelta(3*perDie.Mean, run.Theoretical.Mean, 1e-12)
	s.InDelta(math.Sqrt(3*perDie.Variance), run.Theoretical.StandardDeviation, 1e-12)

	// the curve peaks at the theoretical mean
	peak := plot.Curve[0]
	for _, pt := range plot.Curve {
		if pt.Y > peak.Y {
			peak = pt
		}
	}
	s.InDelta(run.Theoretical.Mean, peak.X, 0.02)
}

func (s *SimulationServiceTestSuite) TestSimulateClampsInputs() {
	s.mockDiceRoller.EXPECT().Roll(gomock.Any()).Return(1).Times(models.MinRollCount * models.MaxDiceCount)

	output, err := s.service.Simulate(s.ctx, &SimulateInput{
		RollCount: 3,
		DiceCount: 8,
		BiasLevel: 0.7,
	})
	s.Require().NoError(err)

	s.True(output.Clamped)
	s.Equal(models.Parameters{
		RollCount: models.MinRollCount,
		DiceCount: models.MaxDiceCount,
		BiasLevel: models.MaxBiasLevel,
	}, output.Run.Parameters)
	s.Len(output.Run.Sample, models.MinRollCount)
}

func (s *SimulationServiceTestSuite) TestSimulateHonoursCancellation() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	output, err := s.service.Simulate(ctx, &SimulateInput{
		RollCount: 1000,
		DiceCount: 1,
	})
	s.Nil(output)
	s.ErrorIs(err, context.Canceled)
}

func (s *SimulationServiceTestSuite) TestGetTheory() {
	output, err := s.service.GetTheory(s.ctx, &GetTheoryInput{
		DiceCount: 1,
		BiasLevel: 0,
	})
	s.Require().NoError(err)

	s.Equal(1, output.DiceCount)
	s.InDelta(3.5, output.Theoretical.Mean, 1e-12)
	s.InDelta(1.708, output.Theoretical.StandardDeviation, 1e-3)
	for face := 1; face <= models.Faces; face++ {
		s.InDelta(0.1667, output.Probabilities.Of(face), 1e-4)
	}
}

// The remaining tests drive a real seeded roller to check the statistical
// properties of full runs.

func newSeededService(t *testing.T, seed uint64) Service {
	t.Helper()

	svc, err := New(&Config{
		DiceRoller:    dice.New(&dice.Config{Seed: seed}),
		Clock:         fixedClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		UUIDGenerator: staticUUID("seeded-run"),
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("create service: %v", err)
	}
	return svc
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time {
	return c.now
}

func (c fixedClock) Since(time.Time) time.Duration {
	return 0
}

type staticUUID string

func (u staticUUID) NewUUID() string { return string(u) }

func TestSimulateSampleStaysInSupport(t *testing.T) {
	svc := newSeededService(t, 99)

	for n := models.MinDiceCount; n <= models.MaxDiceCount; n++ {
		output, err := svc.Simulate(context.Background(), &SimulateInput{
			RollCount: 2000,
			DiceCount: n,
			BiasLevel: 0.1,
		})
		if err != nil {
			t.Fatalf("simulate %d dice: %v", n, err)
		}

		run := output.Run
		if len(run.Sample) != 2000 {
			t.Fatalf("sample size = %d, want 2000", len(run.Sample))
		}
		for _, v := range run.Sample {
			if v < n || v > 6*n {
				t.Fatalf("value %d outside [%d, %d]", v, n, 6*n)
			}
		}

		var total float64
		for _, b := range run.Plot.Bins {
			total += b.Density
		}
		if math.Abs(total-1) > 1e-9 {
			t.Fatalf("densities sum to %f, want 1", total)
		}
	}
}

func TestSimulateMeanConverges(t *testing.T) {
	tests := []struct {
		name string
		bias float64
	}{
		{name: "fair", bias: 0},
		{name: "loaded six", bias: 0.1},
		{name: "shaved six", bias: -0.1},
	}

	svc := newSeededService(t, 2024)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := svc.Simulate(context.Background(), &SimulateInput{
				RollCount: 200000,
				DiceCount: 1,
				BiasLevel: tt.bias,
			})
			if err != nil {
				t.Fatalf("simulate: %v", err)
			}

			run := output.Run
			p6 := 1.0/6.0 + tt.bias
			wantMean := 3*(1-p6) + 6*p6
			if math.Abs(run.Theoretical.Mean-wantMean) > 1e-12 {
				t.Fatalf("theoretical mean = %f, want %f", run.Theoretical.Mean, wantMean)
			}
			if math.Abs(run.Empirical.Mean-wantMean) > 0.02 {
				t.Fatalf("empirical mean = %f, want about %f", run.Empirical.Mean, wantMean)
			}
			if math.Abs(run.Empirical.StandardDeviation-run.Theoretical.StandardDeviation) > 0.02 {
				t.Fatalf("empirical std = %f, theoretical %f",
					run.Empirical.StandardDeviation, run.Theoretical.StandardDeviation)
			}
		})
	}
}

func TestSimulateFairDieExample(t *testing.T) {
	svc := newSeededService(t, 5)

	output, err := svc.Simulate(context.Background(), &SimulateInput{
		RollCount: 1000,
		DiceCount: 1,
		BiasLevel: 0,
	})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	run := output.Run
	if math.Abs(run.Theoretical.Mean-3.5) > 1e-12 {
		t.Fatalf("theoretical mean = %f, want 3.5", run.Theoretical.Mean)
	}
	if math.Abs(run.Theoretical.StandardDeviation-1.708) > 1e-3 {
		t.Fatalf("theoretical std = %f, want 1.708", run.Theoretical.StandardDeviation)
	}
	if math.Abs(run.Empirical.Mean-3.5) > 0.25 {
		t.Fatalf("empirical mean = %f, want about 3.5", run.Empirical.Mean)
	}
}
