package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/fadedpez/blackjack/internal/config"
	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/session"
	"github.com/fadedpez/blackjack/internal/terminal"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/repositories/round"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Default.Error("Invalid configuration: %v", err)
		os.Exit(2)
	}

	logger := logging.NewLogger(cfg.LogLevel)
	rng := entities.NewRNG(cfg.Seed)
	if cfg.Seed != 0 {
		logger.Info("Using seed %d", cfg.Seed)
	}

	// Choose the round history store, both live only as long as the process
	var repo round.Repository
	if cfg.StorageType == config.StorageSQLite {
		sqliteRepo, err := round.NewSQLiteRepository(logger)
		if err != nil {
			logger.Warn("Failed to initialize SQLite repository: %v", err)
			logger.Warn("Falling back to in-memory repository")
			repo = round.NewMemoryRepository()
		} else {
			repo = sqliteRepo
		}
	} else {
		repo = round.NewMemoryRepository()
	}
	defer repo.Close()

	term := terminal.New(terminal.Options{
		BotDelay: cfg.BotDelay,
		RNG:      rng,
		Logger:   logger,
	})

	s, err := session.New(session.Options{
		HumanPlayers: cfg.HumanPlayers,
		BotPlayers:   cfg.BotPlayers,
		Prompter:     term,
		Input:        term,
		Display:      term,
		Repository:   repo,
		RNG:          rng,
		Logger:       logger,
	})
	if err != nil {
		logger.LogError(err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := s.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.LogError(err)
		repo.Close()
		os.Exit(1)
	}
}
