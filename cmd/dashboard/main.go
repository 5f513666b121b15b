package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/dicestats/internal/common/clock"
	"github.com/KirkDiggler/dicestats/internal/common/uuid"
	"github.com/KirkDiggler/dicestats/internal/config"
	"github.com/KirkDiggler/dicestats/internal/dice"
	"github.com/KirkDiggler/dicestats/internal/handlers/web"
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

	server, err := web.New(&web.Config{
		Addr:              cfg.HTTPAddr,
		DefaultLanguage:   cfg.LanguageTag(),
		SimulationService: simulationSvc,
		MessagingService:  messagingSvc,
		Logger:            logger,
	})
	if err != nil {
		logger.Error("failed to create dashboard", "error", err)
		os.Exit(1)
	}

	// Serve until interrupted, then shut down gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		logger.Error("dashboard stopped", "error", err)
		os.Exit(1)
	}

	logger.Info("dashboard has been shut down")
}
