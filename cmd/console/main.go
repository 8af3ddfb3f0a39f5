package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/modern-world/internal/config"
	"github.com/jwebster45206/modern-world/internal/game"
	"github.com/jwebster45206/modern-world/internal/logger"
	"github.com/jwebster45206/modern-world/internal/services"
	"github.com/jwebster45206/modern-world/internal/services/events"
	"github.com/jwebster45206/modern-world/internal/storage"
	"github.com/jwebster45206/modern-world/pkg/oracle"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(cfg.ConsoleLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open console log: %w", err)
	}
	defer func() {
		_ = logFile.Close() // Ignore error in defer
	}()
	log := logger.SetupWriter(cfg, logFile)

	ctx := context.Background()
	initCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	llmService, err := services.NewLLMService(initCtx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create LLM service: %w", err)
	}
	if err := llmService.InitModel(initCtx, cfg.ModelName); err != nil {
		return fmt.Errorf("failed to initialize model %s: %w", cfg.ModelName, err)
	}

	store, err := storage.New(initCtx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Error closing storage", "error", err)
		}
	}()

	var oracleOpts []oracle.Option
	if services.EnforcesSchema(llmService) {
		oracleOpts = append(oracleOpts, oracle.WithNativeSchema())
	}

	var sessionOpts []game.Option
	if cfg.CommitDegradedTurns {
		sessionOpts = append(sessionOpts, game.WithDegradedTurns())
	}
	if cfg.EventsEnabled {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisURL})
		defer func() {
			_ = redisClient.Close()
		}()
		sessionOpts = append(sessionOpts, game.WithNotifier(events.NewBroadcaster(redisClient, log)))
	}

	session := game.NewSession(oracle.NewClient(llmService, log, oracleOpts...), store, log, sessionOpts...)

	log.Info("Console started",
		"llm_provider", cfg.LLMProvider,
		"model_name", cfg.ModelName,
		"storage_backend", cfg.StorageBackend)

	p := tea.NewProgram(NewConsoleUI(ctx, session, log),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
