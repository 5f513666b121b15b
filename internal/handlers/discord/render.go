package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/dicestats/internal/common/uuid"
	"github.com/KirkDiggler/dicestats/internal/models"
	"github.com/KirkDiggler/dicestats/internal/plot"
	"github.com/KirkDiggler/dicestats/internal/services/messaging"
	"github.com/KirkDiggler/dicestats/internal/services/simulation"
)

const (
	colorResult = 0x1f77b4
	colorTheory = 0x00ff00
	colorError  = 0xff0000

	// ButtonRerun prefixes the custom ID of the "Run again" button
	ButtonRerun = "dice_rerun"
)

// encodeRerunID packs the parameters of a run into a button custom ID
func encodeRerunID(params models.Parameters) string {
	return fmt.Sprintf("%s:%d:%d:%s", ButtonRerun, params.RollCount, params.DiceCount,
		strconv.FormatFloat(params.BiasLevel, 'g', -1, 64))
}

// decodeRerunID reverses encodeRerunID
func decodeRerunID(customID string) (models.Parameters, error) {
	parts := strings.Split(customID, ":")
	if len(parts) != 4 || parts[0] != ButtonRerun {
		return models.Parameters{}, fmt.Errorf("unknown button %q", customID)
	}

	rolls, err := strconv.Atoi(parts[1])
	if err != nil {
		return models.Parameters{}, fmt.Errorf("invalid roll count in %q: %w", customID, err)
	}

	dice, err := strconv.Atoi(parts[2])
	if err != nil {
		return models.Parameters{}, fmt.Errorf("invalid dice count in %q: %w", customID, err)
	}

	bias, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return models.Parameters{}, fmt.Errorf("invalid bias in %q: %w", customID, err)
	}

	return models.Parameters{RollCount: rolls, DiceCount: dice, BiasLevel: bias}, nil
}

// renderRun builds the embed showing a finished simulation
func renderRun(labels *messaging.Labels, result *messaging.GetResultMessageOutput, run *models.Run, clamped bool) *discordgo.MessageEmbed {
	var description strings.Builder
	description.WriteString(result.Summary)
	description.WriteString("\n```\n")
	description.WriteString(labels.AxisX)
	description.WriteString("\n")
	description.WriteString(plot.Text(run.Plot, plot.DefaultTextWidth))
	description.WriteString("```")

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   labels.EmpiricalHeading,
			Value:  formatMetrics(result.Empirical),
			Inline: true,
		},
		{
			Name:   labels.TheoreticalHeading,
			Value:  formatMetrics(result.Theoretical),
			Inline: true,
		},
	}

	if clamped {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "⚠️",
			Value: labels.ClampedNotice,
		})
	}

	fields = append(fields, &discordgo.MessageEmbedField{
		Name:  labels.Done,
		Value: result.Comment,
	})

	return &discordgo.MessageEmbed{
		Title:       labels.PageTitle,
		Description: description.String(),
		Color:       colorResult,
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s · %s", uuid.Short(run.ID), run.Duration.Round(time.Microsecond)),
		},
	}
}

// renderRunComponents builds the "Run again" button for a run
func renderRunComponents(labels *messaging.Labels, params models.Parameters) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    labels.RunAgainButton,
					Style:    discordgo.PrimaryButton,
					CustomID: encodeRerunID(params),
					Emoji: &discordgo.ComponentEmoji{
						Name: "🎲",
					},
				},
			},
		},
	}
}

// renderTheory builds the theory reference embed with the expected moments
// and face probabilities for the requested dice
func renderTheory(tag language.Tag, labels *messaging.Labels, theory *messaging.GetTheoryMessageOutput, output *simulation.GetTheoryOutput) *discordgo.MessageEmbed {
	var points strings.Builder
	for _, p := range theory.Points {
		points.WriteString("• ")
		points.WriteString(p)
		points.WriteString("\n")
	}

	faces := make([]string, 0, models.Faces)
	for face := 1; face <= models.Faces; face++ {
		faces = append(faces, fmt.Sprintf("%d: %s", face, messaging.FormatPercent(tag, output.Probabilities.Of(face))))
	}

	return &discordgo.MessageEmbed{
		Title:       theory.Title,
		Description: fmt.Sprintf("**%s**\n%s", theory.Heading, points.String()),
		Color:       colorTheory,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: labels.TheoreticalHeading,
				Value: formatMetrics([]messaging.Metric{
					{Label: labels.MetricExpectedMean, Value: fmt.Sprintf("%.2f", output.Theoretical.Mean)},
					{Label: labels.MetricExpectedStd, Value: fmt.Sprintf("%.2f", output.Theoretical.StandardDeviation)},
				}),
				Inline: true,
			},
			{
				Name:   labels.DiceCountLabel,
				Value:  fmt.Sprintf("%d (%+.2f)", output.DiceCount, output.BiasLevel),
				Inline: true,
			},
			{
				Name:  labels.BiasLabel,
				Value: strings.Join(faces, " | "),
			},
		},
	}
}

// errorTitle is the localized heading of error embeds
func errorTitle(ctx context.Context, svc messaging.Service, tag language.Tag) string {
	out, err := svc.GetLabels(ctx, &messaging.GetLabelsInput{Language: tag})
	if err != nil || out.Labels.ErrorTitle == "" {
		return "Error"
	}
	return out.Labels.ErrorTitle
}

func renderError(title, message string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       colorError,
	}
}

func formatMetrics(metrics []messaging.Metric) string {
	var b strings.Builder
	for _, m := range metrics {
		fmt.Fprintf(&b, "%s: **%s**\n", m.Label, m.Value)
	}
	return b.String()
}
