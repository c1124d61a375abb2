package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/alaw810/blackjack-engine/internal/common/clock"
	"github.com/alaw810/blackjack-engine/internal/common/uuid"
	"github.com/alaw810/blackjack-engine/internal/deck"
	"github.com/alaw810/blackjack-engine/internal/handlers/rest"
	gameRepo "github.com/alaw810/blackjack-engine/internal/repositories/game"
	playerRepo "github.com/alaw810/blackjack-engine/internal/repositories/player"
	gameService "github.com/alaw810/blackjack-engine/internal/services/game"
	playerService "github.com/alaw810/blackjack-engine/internal/services/player"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "blackjack",
	})

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect to Redis", "error", err)
	}

	// Initialize repositories
	games, err := gameRepo.NewRedis(&gameRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("failed to create game repository", "error", err)
	}

	players, err := playerRepo.NewRedis(&playerRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("failed to create player repository", "error", err)
	}

	// Initialize services
	gameSvc, err := gameService.New(&gameService.Config{
		GameRepo:   games,
		PlayerRepo: players,
		Shuffler:   deck.New(&deck.Config{}),
		Clock:      &clock.DefaultClock{},
		UUID:       uuid.New(),
	})
	if err != nil {
		logger.Fatal("failed to create game service", "error", err)
	}

	playerSvc, err := playerService.New(&playerService.Config{
		PlayerRepo: players,
		Clock:      &clock.DefaultClock{},
	})
	if err != nil {
		logger.Fatal("failed to create player service", "error", err)
	}

	// Initialize the REST handler
	handler, err := rest.New(&rest.Config{
		GameService:   gameSvc,
		PlayerService: playerSvc,
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal("failed to create REST handler", "error", err)
	}

	addr := ":" + getEnv("PORT", "8080")
	server := &http.Server{
		Addr:              addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownTimeout := getEnvDuration("SHUTDOWN_TIMEOUT_SECONDS", 10)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutting down server", "error", err)
	}

	logger.Info("server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration reads a whole number of seconds from the environment
func getEnvDuration(key string, defaultSeconds int) time.Duration {
	seconds := defaultSeconds
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			seconds = parsed
		}
	}
	return time.Duration(seconds) * time.Second
}
