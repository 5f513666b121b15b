package messaging

import (
	"golang.org/x/text/language"

	"github.com/KirkDiggler/dicestats/internal/models"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// DefaultLanguage is used when a request does not carry a usable language
	DefaultLanguage language.Tag

	// Seed for the comment picker; zero seeds from the clock
	Seed uint64
}

// Labels is the localized copy of the dashboard
type Labels struct {
	Language string

	PageTitle string
	Subtitle  string
	Course    string

	ParametersHeading string
	RollCountLabel    string
	RollCountHelp     string
	DiceCountLabel    string
	BiasLabel         string
	BiasHelp          string
	RunButton         string
	Running           string
	Done              string
	RunAgainButton    string

	// AxisX is the horizontal axis label, which depends on the dice count
	AxisX            string
	AxisY            string
	LegendExperiment string
	LegendTheory     string

	ResultsHeading     string
	EmpiricalHeading   string
	TheoreticalHeading string
	MetricMean         string
	MetricStd          string
	MetricExpectedMean string
	MetricExpectedStd  string

	ClampedNotice string
	ErrorTitle    string
}

// GetLabelsInput contains parameters for getting the dashboard copy
type GetLabelsInput struct {
	// Language is the requested language tag
	Language language.Tag

	// DiceCount picks the axis and legend wording; zero means one die
	DiceCount int
}

// GetLabelsOutput contains the dashboard copy
type GetLabelsOutput struct {
	Labels *Labels
}

// Metric is one labeled number of the results panel
type Metric struct {
	Label string
	Value string
}

// GetResultMessageInput contains parameters for formatting a run
type GetResultMessageInput struct {
	Language language.Tag
	Run      *models.Run
}

// GetResultMessageOutput contains the formatted metrics of a run
type GetResultMessageOutput struct {
	// Empirical holds mean and standard deviation of the sample
	Empirical []Metric

	// Theoretical holds expected mean and standard deviation
	Theoretical []Metric

	// Summary is a one-line description of the parameters
	Summary string

	// Comment remarks on how close the sample landed to theory
	Comment string
}

// GetTheoryMessageInput contains parameters for the theory reference
type GetTheoryMessageInput struct {
	Language language.Tag
}

// GetTheoryMessageOutput contains the theory reference
type GetTheoryMessageOutput struct {
	Title   string
	Heading string
	Points  []string
}
