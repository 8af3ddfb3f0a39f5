package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/modern-world/internal/config"
	"github.com/jwebster45206/modern-world/internal/game"
	"github.com/jwebster45206/modern-world/internal/handlers"
	"github.com/jwebster45206/modern-world/internal/logger"
	"github.com/jwebster45206/modern-world/internal/middleware"
	"github.com/jwebster45206/modern-world/internal/services"
	"github.com/jwebster45206/modern-world/internal/services/events"
	"github.com/jwebster45206/modern-world/internal/storage"
	"github.com/jwebster45206/modern-world/pkg/oracle"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting Modern World API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"llm_provider", cfg.LLMProvider,
		"model_name", cfg.ModelName,
		"storage_backend", cfg.StorageBackend)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	llmService, err := services.NewLLMService(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to create LLM service", "error", err)
		os.Exit(1)
	}
	if err := llmService.InitModel(ctx, cfg.ModelName); err != nil {
		log.Error("Failed to initialize LLM model", "error", err, "model", cfg.ModelName)
		os.Exit(1)
	}

	store, err := storage.New(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to open storage", "error", err)
		os.Exit(1)
	}
	log.Info("Storage connection established successfully")

	var oracleOpts []oracle.Option
	if services.EnforcesSchema(llmService) {
		oracleOpts = append(oracleOpts, oracle.WithNativeSchema())
	}
	client := oracle.NewClient(llmService, log, oracleOpts...)

	var sessionOpts []game.Option
	if cfg.CommitDegradedTurns {
		sessionOpts = append(sessionOpts, game.WithDegradedTurns())
	}

	var redisClient *redis.Client
	if cfg.EventsEnabled {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisURL})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Error("Failed to connect to event bus", "error", err)
			os.Exit(1)
		}
		sessionOpts = append(sessionOpts, game.WithNotifier(events.NewBroadcaster(redisClient, log)))
		log.Info("Event broadcasting enabled", "redis_url", cfg.RedisURL)
	}

	session := game.NewSession(client, store, log, sessionOpts...)
	if ok, err := session.Resume(ctx); err != nil {
		log.Warn("Failed to resume saved game", "error", err)
	} else if ok {
		log.Info("Resumed saved game")
	}

	mux := http.NewServeMux()
	mux.Handle("/health", handlers.NewHealthHandler(store, log))

	gameHandler := handlers.NewGameHandler(session, log)
	mux.Handle("/v1/game", gameHandler)
	mux.Handle("/v1/game/", gameHandler)

	mux.Handle("/v1/catalog", handlers.NewCatalogHandler(log))

	if redisClient != nil {
		mux.Handle("/v1/events/game/", handlers.NewEventsHandler(redisClient, log))
	}

	handler := middleware.Chain(mux,
		middleware.RecoverPanic(log),
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.CORS(),
	)
	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		// No WriteTimeout: turns can outlast it and the event stream is long-lived.
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	if err := store.Close(); err != nil {
		log.Error("Error closing storage connection", "error", err)
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing event bus connection", "error", err)
		}
	}
	if closer, ok := llmService.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Error("Error closing LLM client", "error", err)
		}
	}

	log.Info("Server exited")
}
