package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/dicestats/internal/services/messaging"
	"github.com/KirkDiggler/dicestats/internal/services/simulation"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	components map[string]ComponentHandler
	config     *Config
	logger     *slog.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// DefaultLanguage is used when the user's client locale is not supported
	DefaultLanguage language.Tag

	SimulationService simulation.Service
	MessagingService  messaging.Service
	Logger            *slog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.SimulationService == nil {
		return nil, errors.New("simulation service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		components: make(map[string]ComponentHandler),
		config:     cfg,
		logger:     logger.With("component", "discord"),
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	diceCmd := NewDiceCommand(&DiceCommandConfig{
		SimulationService: b.config.SimulationService,
		MessagingService:  b.config.MessagingService,
		DefaultLanguage:   b.config.DefaultLanguage,
		Logger:            b.logger,
	})
	if err := b.RegisterCommand(diceCmd); err != nil {
		return fmt.Errorf("failed to register dice command: %w", err)
	}

	b.logger.Info("bot is now running")
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command", "command", cmdName, "id", cmdID, "error", err)
		} else {
			b.logger.Info("deleted command", "command", cmdName, "id", cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord. Commands that own
// message components are routed their button clicks as well.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	if b.config.GuildID != "" {
		b.logger.Info("registering command", "command", cmd.GetName(), "guild", b.config.GuildID)
	} else {
		b.logger.Info("registering command globally", "command", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.addCommand(cmd)
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command", "command", cmd.GetName(), "id", createdCmd.ID)

	return nil
}

// addCommand stores the command handler and its component routes
func (b *Bot) addCommand(cmd CommandHandler) {
	b.commands[cmd.GetName()] = cmd
	if ch, ok := cmd.(ComponentHandler); ok {
		b.components[ch.ComponentPrefix()] = ch
	}
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("failed to handle command", "command", name, "user", invoker(i), "error", err)
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error("failed to handle component interaction", "user", invoker(i), "error", err)
		}
	}
}

// handleComponentInteraction routes button clicks by custom ID prefix
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	h, ok := b.componentHandler(customID)
	if !ok {
		tag := messaging.ResolveTag(string(i.Locale), "", b.config.DefaultLanguage)
		title := errorTitle(context.Background(), b.config.MessagingService, tag)
		return RespondWithError(s, i, title, fmt.Sprintf("Unknown button: %s", customID))
	}
	return h.HandleComponent(s, i)
}

func (b *Bot) componentHandler(customID string) (ComponentHandler, bool) {
	prefix, _, _ := strings.Cut(customID, ":")
	h, ok := b.components[prefix]
	return h, ok
}
