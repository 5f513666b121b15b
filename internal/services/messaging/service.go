package messaging

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/dicestats/internal/models"
)

// closeZScore is how many standard errors the sample mean may sit from the
// theoretical mean and still count as agreeing with it
const closeZScore = 2.0

var (
	commentCloseKeys = []string{"comment.close.0", "comment.close.1", "comment.close.2"}
	commentFarKeys   = []string{"comment.far.0", "comment.far.1", "comment.far.2"}
)

// service implements the Service interface
type service struct {
	defaultLanguage language.Tag

	// Random number generator for selecting comments
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		config = &ServiceConfig{}
	}

	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	defaultLanguage := config.DefaultLanguage
	if defaultLanguage == language.Und {
		defaultLanguage = Default()
	}

	return &service{
		defaultLanguage: Match(defaultLanguage),
		rand:            rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}, nil
}

// GetLabels returns the localized copy of the control panel and result view
func (s *service) GetLabels(ctx context.Context, input *GetLabelsInput) (*GetLabelsOutput, error) {
	if input == nil {
		input = &GetLabelsInput{}
	}

	tag := s.resolve(input.Language)
	p := message.NewPrinter(tag)

	labels := &Labels{
		Language: tag.String(),

		PageTitle: p.Sprintf("page.title"),
		Subtitle:  p.Sprintf("page.subtitle"),
		Course:    p.Sprintf("page.course"),

		ParametersHeading: p.Sprintf("controls.heading"),
		RollCountLabel:    p.Sprintf("controls.rolls"),
		RollCountHelp:     p.Sprintf("controls.rolls.help"),
		DiceCountLabel:    p.Sprintf("controls.dice"),
		BiasLabel:         p.Sprintf("controls.bias"),
		BiasHelp:          p.Sprintf("controls.bias.help"),
		RunButton:         p.Sprintf("controls.run"),
		Running:           p.Sprintf("controls.running"),
		Done:              p.Sprintf("controls.done"),
		RunAgainButton:    p.Sprintf("controls.again"),

		AxisY:            p.Sprintf("plot.axis.density"),
		LegendExperiment: p.Sprintf("plot.legend.experiment"),

		ResultsHeading:     p.Sprintf("results.heading"),
		EmpiricalHeading:   p.Sprintf("results.empirical"),
		TheoreticalHeading: p.Sprintf("results.theoretical"),
		MetricMean:         p.Sprintf("results.mean"),
		MetricStd:          p.Sprintf("results.std"),
		MetricExpectedMean: p.Sprintf("results.expected_mean"),
		MetricExpectedStd:  p.Sprintf("results.expected_std"),

		ClampedNotice: p.Sprintf("results.clamped"),
		ErrorTitle:    p.Sprintf("error.title"),
	}

	if input.DiceCount > 1 {
		labels.AxisX = p.Sprintf("plot.axis.sum")
		labels.LegendTheory = p.Sprintf("plot.legend.normal")
	} else {
		labels.AxisX = p.Sprintf("plot.axis.value")
		labels.LegendTheory = p.Sprintf("plot.legend.theory")
	}

	return &GetLabelsOutput{
		Labels: labels,
	}, nil
}

// GetResultMessage formats the metrics of a run and comments on them
func (s *service) GetResultMessage(ctx context.Context, input *GetResultMessageInput) (*GetResultMessageOutput, error) {
	if input == nil || input.Run == nil {
		return nil, errors.New("input and run cannot be nil")
	}

	run := input.Run
	p := message.NewPrinter(s.resolve(input.Language))

	keys := commentCloseKeys
	if !agrees(run) {
		keys = commentFarKeys
	}

	return &GetResultMessageOutput{
		Empirical: []Metric{
			{Label: p.Sprintf("results.mean"), Value: p.Sprintf("%.2f", run.Empirical.Mean)},
			{Label: p.Sprintf("results.std"), Value: p.Sprintf("%.2f", run.Empirical.StandardDeviation)},
		},
		Theoretical: []Metric{
			{Label: p.Sprintf("results.expected_mean"), Value: p.Sprintf("%.2f", run.Theoretical.Mean)},
			{Label: p.Sprintf("results.expected_std"), Value: p.Sprintf("%.2f", run.Theoretical.StandardDeviation)},
		},
		Summary: p.Sprintf("results.summary",
			run.Parameters.RollCount,
			run.Parameters.DiceCount,
			run.Parameters.BiasLevel),
		Comment: p.Sprintf(s.pick(keys)),
	}, nil
}

// GetTheoryMessage returns the theory reference shown next to the results
func (s *service) GetTheoryMessage(ctx context.Context, input *GetTheoryMessageInput) (*GetTheoryMessageOutput, error) {
	tag := s.defaultLanguage
	if input != nil {
		tag = s.resolve(input.Language)
	}
	p := message.NewPrinter(tag)

	return &GetTheoryMessageOutput{
		Title:   p.Sprintf("theory.title"),
		Heading: p.Sprintf("theory.heading"),
		Points: []string{
			p.Sprintf("theory.one_die"),
			p.Sprintf("theory.several_dice"),
			p.Sprintf("theory.bias"),
		},
	}, nil
}

func (s *service) resolve(tag language.Tag) language.Tag {
	if tag == language.Und {
		return s.defaultLanguage
	}
	return Match(tag)
}

func (s *service) pick(keys []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return keys[s.rand.IntN(len(keys))]
}

// agrees reports whether the sample mean is within closeZScore standard
// errors of the theoretical mean
func agrees(run *models.Run) bool {
	n := float64(run.Parameters.RollCount)
	if n <= 0 || run.Theoretical.StandardDeviation <= 0 {
		return run.Empirical.Mean == run.Theoretical.Mean
	}
	stdErr := run.Theoretical.StandardDeviation / math.Sqrt(n)
	return math.Abs(run.Empirical.Mean-run.Theoretical.Mean) <= closeZScore*stdErr
}

// FormatPercent renders a probability as a localized percentage
func FormatPercent(tag language.Tag, p float64) string {
	return Printer(tag).Sprintf("%.1f%%", p*100)
}
