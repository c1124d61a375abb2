package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alaw810/blackjack-engine/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	gameKeyPrefix = "game:"
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// ErrVersionConflict is returned when a save loses a concurrent write race.
// The caller should reload the game and retry or give up.
var ErrVersionConflict = errors.New("game was modified concurrently")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveGame persists a game to Redis, guarded by an optimistic version
// check. The stored version must equal the version the caller loaded; the
// write bumps it by one. A concurrent writer that got there first leaves
// this save with ErrVersionConflict.
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	if input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.Game.ID)

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		storedJSON, err := tx.Get(ctx, gameKey).Result()
		switch {
		case err == redis.Nil:
			// New game: only version 0 may create the key
			if input.Game.Version != 0 {
				return ErrVersionConflict
			}
		case err != nil:
			return fmt.Errorf("failed to read current game: %w", err)
		default:
			var stored models.Game
			if err := json.Unmarshal([]byte(storedJSON), &stored); err != nil {
				return fmt.Errorf("failed to unmarshal stored game: %w", err)
			}

			if stored.Version != input.Game.Version {
				return ErrVersionConflict
			}
		}

		next := *input.Game
		next.Version++

		gameJSON, err := json.Marshal(&next)
		if err != nil {
			return fmt.Errorf("failed to marshal game: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, gameKey, gameJSON, 0) // No expiration for now
			return nil
		})
		if err != nil {
			return err
		}

		input.Game.Version = next.Version
		return nil
	}, gameKey)

	if err != nil {
		// The watched key changed between read and write
		if errors.Is(err, redis.TxFailedErr) {
			return ErrVersionConflict
		}
		if errors.Is(err, ErrVersionConflict) {
			return ErrVersionConflict
		}
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	// Get the game from Redis
	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.GameID)
	gameJSON, err := r.client.Get(ctx, gameKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	// Unmarshal the game from JSON
	var game models.Game
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// DeleteGame removes a game from Redis
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.GameID)
	deleted, err := r.client.Del(ctx, gameKey).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	if deleted == 0 {
		return ErrGameNotFound
	}

	return nil
}
