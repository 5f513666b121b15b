package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/dicestats/internal/models"
	"github.com/KirkDiggler/dicestats/internal/services/messaging"
	"github.com/KirkDiggler/dicestats/internal/services/simulation"
)

// Subcommand and option names of /dice
const (
	subcommandSimulate = "simulate"
	subcommandTheory   = "theory"

	optionRolls = "rolls"
	optionDice  = "dice"
	optionBias  = "bias"
)

// simulateTimeout bounds one simulation; a deferred interaction token stays
// valid for fifteen minutes
const simulateTimeout = time.Minute

// DiceCommand handles the /dice command and its "Run again" button
type DiceCommand struct {
	BaseCommand
	simulationService simulation.Service
	messagingService  messaging.Service
	defaultLanguage   language.Tag
	logger            *slog.Logger
}

// DiceCommandConfig holds the dependencies of the /dice command
type DiceCommandConfig struct {
	SimulationService simulation.Service
	MessagingService  messaging.Service
	DefaultLanguage   language.Tag
	Logger            *slog.Logger
}

// NewDiceCommand creates a new dice command handler
func NewDiceCommand(cfg *DiceCommandConfig) *DiceCommand {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	minRolls := float64(models.MinRollCount)
	minBias := models.MinBiasLevel

	diceChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, models.MaxDiceCount)
	for n := models.MinDiceCount; n <= models.MaxDiceCount; n++ {
		diceChoices = append(diceChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprint(n),
			Value: n,
		})
	}

	diceOption := func() *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        optionDice,
			Description: "Number of dice summed per roll",
			Choices:     diceChoices,
		}
	}
	biasOption := func() *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionNumber,
			Name:        optionBias,
			Description: "Shift of the probability of a six (0 = perfect die)",
			MinValue:    &minBias,
			MaxValue:    models.MaxBiasLevel,
		}
	}

	return &DiceCommand{
		BaseCommand: BaseCommand{
			Name:        "dice",
			Description: "Dice roll statistics",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandSimulate,
					Description: "Roll dice many times and compare the histogram with theory",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        optionRolls,
							Description: "Number of rolls",
							MinValue:    &minRolls,
							MaxValue:    float64(models.MaxRollCount),
						},
						diceOption(),
						biasOption(),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandTheory,
					Description: "Show the expected distribution without rolling",
					Options: []*discordgo.ApplicationCommandOption{
						diceOption(),
						biasOption(),
					},
				},
			},
		},
		simulationService: cfg.SimulationService,
		messagingService:  cfg.MessagingService,
		defaultLanguage:   cfg.DefaultLanguage,
		logger:            logger.With("command", "dice"),
	}
}

// Handle processes a Discord interaction for the dice command
func (c *DiceCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	tag := c.language(i)
	sub := data.Options[0]
	params := parseOptions(sub.Options)

	switch sub.Name {
	case subcommandSimulate:
		return c.respondWithRun(s, i, tag, params)
	case subcommandTheory:
		return c.handleTheory(s, i, tag, params)
	default:
		return errors.New("unknown subcommand")
	}
}

// ComponentPrefix returns the custom ID prefix of the "Run again" button
func (c *DiceCommand) ComponentPrefix() string {
	return ButtonRerun
}

// HandleComponent reruns the simulation encoded in the clicked button
func (c *DiceCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	tag := c.language(i)

	params, err := decodeRerunID(i.MessageComponentData().CustomID)
	if err != nil {
		return RespondWithError(s, i, errorTitle(context.Background(), c.messagingService, tag), err.Error())
	}

	return c.respondWithRun(s, i, tag, params)
}

func (c *DiceCommand) respondWithRun(s *discordgo.Session, i *discordgo.InteractionCreate, tag language.Tag, params models.Parameters) error {
	if err := DeferResponse(s, i); err != nil {
		return fmt.Errorf("failed to defer response: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), simulateTimeout)
	defer cancel()

	embed, components, err := c.simulate(ctx, tag, params)
	if err != nil {
		c.logger.Error("simulation failed", "user", invoker(i), "error", err)
		embed, components = renderError(errorTitle(ctx, c.messagingService, tag), err.Error()), nil
	}

	return EditDeferredResponse(s, i, []*discordgo.MessageEmbed{embed}, components)
}

// simulate runs one simulation and renders it
func (c *DiceCommand) simulate(ctx context.Context, tag language.Tag, params models.Parameters) (*discordgo.MessageEmbed, []discordgo.MessageComponent, error) {
	output, err := c.simulationService.Simulate(ctx, &simulation.SimulateInput{
		RollCount: params.RollCount,
		DiceCount: params.DiceCount,
		BiasLevel: params.BiasLevel,
	})
	if err != nil {
		return nil, nil, err
	}
	run := output.Run

	labels, err := c.messagingService.GetLabels(ctx, &messaging.GetLabelsInput{
		Language:  tag,
		DiceCount: run.Parameters.DiceCount,
	})
	if err != nil {
		return nil, nil, err
	}

	result, err := c.messagingService.GetResultMessage(ctx, &messaging.GetResultMessageInput{
		Language: tag,
		Run:      run,
	})
	if err != nil {
		return nil, nil, err
	}

	return renderRun(labels.Labels, result, run, output.Clamped),
		renderRunComponents(labels.Labels, run.Parameters),
		nil
}

func (c *DiceCommand) handleTheory(s *discordgo.Session, i *discordgo.InteractionCreate, tag language.Tag, params models.Parameters) error {
	ctx := context.Background()

	embed, err := c.theory(ctx, tag, params)
	if err != nil {
		c.logger.Error("theory failed", "user", invoker(i), "error", err)
		return RespondWithError(s, i, errorTitle(ctx, c.messagingService, tag), err.Error())
	}
	return RespondWithEmbed(s, i, embed)
}

// theory renders the reference for the requested dice
func (c *DiceCommand) theory(ctx context.Context, tag language.Tag, params models.Parameters) (*discordgo.MessageEmbed, error) {
	output, err := c.simulationService.GetTheory(ctx, &simulation.GetTheoryInput{
		DiceCount: params.DiceCount,
		BiasLevel: params.BiasLevel,
	})
	if err != nil {
		return nil, err
	}

	labels, err := c.messagingService.GetLabels(ctx, &messaging.GetLabelsInput{
		Language:  tag,
		DiceCount: output.DiceCount,
	})
	if err != nil {
		return nil, err
	}

	theory, err := c.messagingService.GetTheoryMessage(ctx, &messaging.GetTheoryMessageInput{
		Language: tag,
	})
	if err != nil {
		return nil, err
	}

	return renderTheory(tag, labels.Labels, theory, output), nil
}

// language picks the reply language from the user's Discord client locale
func (c *DiceCommand) language(i *discordgo.InteractionCreate) language.Tag {
	return messaging.ResolveTag(string(i.Locale), "", c.defaultLanguage)
}

// parseOptions reads the subcommand options; anything not given keeps its
// default and out-of-range values are left for the simulation to clamp
func parseOptions(options []*discordgo.ApplicationCommandInteractionDataOption) models.Parameters {
	params := models.DefaultParameters()

	for _, opt := range options {
		switch opt.Name {
		case optionRolls:
			if opt.Type == discordgo.ApplicationCommandOptionInteger {
				params.RollCount = int(opt.IntValue())
			}
		case optionDice:
			if opt.Type == discordgo.ApplicationCommandOptionInteger {
				params.DiceCount = int(opt.IntValue())
			}
		case optionBias:
			if opt.Type == discordgo.ApplicationCommandOptionNumber {
				params.BiasLevel = opt.FloatValue()
			}
		}
	}

	return params
}

// invoker names the user behind an interaction for logs
func invoker(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		if i.Member.Nick != "" {
			return i.Member.Nick
		}
		return i.Member.User.Username
	}
	if i.User != nil {
		return i.User.Username
	}
	return ""
}
