package messaging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/dicestats/internal/models"
)

func newTestService(t *testing.T, def language.Tag) Service {
	t.Helper()
	svc, err := NewService(&ServiceConfig{DefaultLanguage: def, Seed: 11})
	require.NoError(t, err)
	return svc
}

func TestGetLabelsEnglish(t *testing.T) {
	svc := newTestService(t, language.English)

	out, err := svc.GetLabels(context.Background(), &GetLabelsInput{DiceCount: 1})
	require.NoError(t, err)

	labels := out.Labels
	assert.Equal(t, "en", labels.Language)
	assert.Equal(t, "Dice roll statistics", labels.PageTitle)
	assert.Equal(t, "Run simulation", labels.RunButton)
	assert.Equal(t, "Value", labels.AxisX)
	assert.Equal(t, "Theory", labels.LegendTheory)
	assert.Equal(t, "Probability density", labels.AxisY)
}

func TestGetLabelsSeveralDice(t *testing.T) {
	svc := newTestService(t, language.English)

	out, err := svc.GetLabels(context.Background(), &GetLabelsInput{DiceCount: 3})
	require.NoError(t, err)

	assert.Equal(t, "Sum of points", out.Labels.AxisX)
	assert.Equal(t, "Normal distribution", out.Labels.LegendTheory)
}

func TestGetLabelsRussian(t *testing.T) {
	svc := newTestService(t, language.English)

	out, err := svc.GetLabels(context.Background(), &GetLabelsInput{
		Language:  language.Russian,
		DiceCount: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, "ru", out.Labels.Language)
	assert.Equal(t, "Статистика бросков игральных костей", out.Labels.PageTitle)
	assert.Equal(t, "Сумма очков", out.Labels.AxisX)
	assert.Equal(t, "Готово!", out.Labels.Done)
}

func TestGetLabelsFallsBackToDefault(t *testing.T) {
	svc := newTestService(t, language.Russian)

	out, err := svc.GetLabels(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "ru", out.Labels.Language)
	assert.Equal(t, "Значение", out.Labels.AxisX)
}

func TestGetResultMessage(t *testing.T) {
	svc := newTestService(t, language.English)

	run := &models.Run{
		Parameters: models.Parameters{RollCount: 1000, DiceCount: 1, BiasLevel: 0},
		Empirical: models.EmpiricalSummary{
			Summary: models.Summary{Mean: 3.4987, StandardDeviation: 1.7123},
		},
		Theoretical: models.TheoreticalSummary{
			Summary: models.Summary{Mean: 3.5, StandardDeviation: 1.7078},
		},
	}

	out, err := svc.GetResultMessage(context.Background(), &GetResultMessageInput{Run: run})
	require.NoError(t, err)

	require.Len(t, out.Empirical, 2)
	require.Len(t, out.Theoretical, 2)
	assert.Equal(t, Metric{Label: "Mean", Value: "3.50"}, out.Empirical[0])
	assert.Equal(t, Metric{Label: "Standard deviation", Value: "1.71"}, out.Empirical[1])
	assert.Equal(t, Metric{Label: "Expected mean", Value: "3.50"}, out.Theoretical[0])
	assert.Equal(t, Metric{Label: "Expected deviation", Value: "1.71"}, out.Theoretical[1])
	assert.Contains(t, out.Summary, "1,000 rolls of 1 dice")

	english := rendered(t, language.English, commentCloseKeys)
	assert.Contains(t, english, out.Comment)
}

func TestGetResultMessageFarFromTheory(t *testing.T) {
	svc := newTestService(t, language.English)

	run := &models.Run{
		Parameters: models.Parameters{RollCount: 10000, DiceCount: 1},
		Empirical: models.EmpiricalSummary{
			Summary: models.Summary{Mean: 4.2},
		},
		Theoretical: models.TheoreticalSummary{
			Summary: models.Summary{Mean: 3.5, StandardDeviation: 1.7078},
		},
	}

	out, err := svc.GetResultMessage(context.Background(), &GetResultMessageInput{Run: run})
	require.NoError(t, err)
	assert.Contains(t, rendered(t, language.English, commentFarKeys), out.Comment)
}

func TestGetResultMessageNilRun(t *testing.T) {
	svc := newTestService(t, language.English)

	out, err := svc.GetResultMessage(context.Background(), &GetResultMessageInput{})
	assert.Nil(t, out)
	assert.Error(t, err)
}

func TestGetTheoryMessage(t *testing.T) {
	svc := newTestService(t, language.English)

	out, err := svc.GetTheoryMessage(context.Background(), &GetTheoryMessageInput{Language: language.Russian})
	require.NoError(t, err)

	assert.Equal(t, "Теоретическая справка", out.Title)
	require.Len(t, out.Points, 3)
	assert.Contains(t, out.Points[1], "ЦПТ")
}

func TestResolveTag(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		accept   string
		fallback language.Tag
		want     language.Tag
	}{
		{name: "explicit wins", explicit: "ru", accept: "en-US", fallback: language.English, want: language.Russian},
		{name: "accept header", accept: "ru-RU,ru;q=0.9,en;q=0.8", fallback: language.English, want: language.Russian},
		{name: "unsupported explicit ignored", explicit: "xx-invalid-tag-", accept: "en-GB", fallback: language.Russian, want: language.English},
		{name: "fallback", fallback: language.Russian, want: language.Russian},
		{name: "undefined fallback", fallback: language.Und, want: language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveTag(tt.explicit, tt.accept, tt.fallback))
		})
	}
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "16.7%", FormatPercent(language.English, 1.0/6.0))
}

// rendered renders keys the way the service would for tag
func rendered(t *testing.T, tag language.Tag, keys []string) []string {
	t.Helper()
	p := Printer(tag)
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = p.Sprintf(k)
	}
	return out
}
