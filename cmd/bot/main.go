package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/dicestats/internal/common/clock"
	"github.com/KirkDiggler/dicestats/internal/common/uuid"
	"github.com/KirkDiggler/dicestats/internal/config"
	"github.com/KirkDiggler/dicestats/internal/dice"
	"github.com/KirkDiggler/dicestats/internal/handlers/discord"
	"github.com/KirkDiggler/dicestats/internal/logging"
	"github.com/KirkDiggler/dicestats/internal/services/messaging"
	"github.com/KirkDiggler/dicestats/internal/services/simulation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	if cfg.Discord.Token == "" {
		logger.Error("DISCORD_TOKEN environment variable is required")
		os.Exit(1)
	}

	// Initialize dice roller
	diceRoller := dice.New(&dice.Config{Seed: cfg.Seed})

	simulationSvc, err := simulation.New(&simulation.Config{
		DiceRoller:    diceRoller,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		logger.Error("failed to create simulation service", "error", err)
		os.Exit(1)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		DefaultLanguage: cfg.LanguageTag(),
		Seed:            cfg.Seed,
	})
	if err != nil {
		logger.Error("failed to create messaging service", "error", err)
		os.Exit(1)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:             cfg.Discord.Token,
		ApplicationID:     cfg.Discord.ApplicationID,
		GuildID:           cfg.Discord.GuildID,
		DefaultLanguage:   cfg.LanguageTag(),
		SimulationService: simulationSvc,
		MessagingService:  messagingSvc,
		Logger:            logger,
	})
	if err != nil {
		logger.Error("failed to create Discord bot", "error", err)
		os.Exit(1)
	}

	if err := bot.Start(); err != nil {
		logger.Error("failed to start Discord bot", "error", err)
		os.Exit(1)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		logger.Error("error stopping bot", "error", err)
	}

	logger.Info("bot has been shut down")
}
