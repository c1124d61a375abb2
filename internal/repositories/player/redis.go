package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alaw810/blackjack-engine/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	playerKeyPrefix     = "player:"
	playerNameKeyPrefix = "player_name:"
	playersKey          = "players"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// ErrVersionConflict is returned when a save loses a concurrent write race.
// The caller should reload the record and retry.
var ErrVersionConflict = errors.New("player was modified concurrently")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
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

// SavePlayer persists a player record to Redis, guarded by an optimistic
// version check so concurrent settlements never lose an increment. It also
// maintains the name-to-ID index and the set of all player IDs used by
// the ranking scan.
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	if input.Player.ID == "" {
		return errors.New("player ID cannot be empty")
	}

	playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, input.Player.ID)

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		previousName := ""

		storedJSON, err := tx.Get(ctx, playerKey).Result()
		switch {
		case err == redis.Nil:
			// New player: only version 0 may create the key
			if input.Player.Version != 0 {
				return ErrVersionConflict
			}
		case err != nil:
			return fmt.Errorf("failed to read current player: %w", err)
		default:
			var stored models.Player
			if err := json.Unmarshal([]byte(storedJSON), &stored); err != nil {
				return fmt.Errorf("failed to unmarshal stored player: %w", err)
			}

			if stored.Version != input.Player.Version {
				return ErrVersionConflict
			}

			previousName = stored.Name
		}

		next := *input.Player
		next.Version++

		playerJSON, err := json.Marshal(&next)
		if err != nil {
			return fmt.Errorf("failed to marshal player: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, playerKey, playerJSON, 0) // No expiration for now
			pipe.SAdd(ctx, playersKey, next.ID)

			// Keep the name index current; a rename drops the old entry
			if previousName != "" && previousName != next.Name {
				pipe.Del(ctx, fmt.Sprintf("%s%s", playerNameKeyPrefix, previousName))
			}
			pipe.Set(ctx, fmt.Sprintf("%s%s", playerNameKeyPrefix, next.Name), next.ID, 0)

			return nil
		})
		if err != nil {
			return err
		}

		input.Player.Version = next.Version
		return nil
	}, playerKey)

	if err != nil {
		// The watched key changed between read and write
		if errors.Is(err, redis.TxFailedErr) {
			return ErrVersionConflict
		}
		if errors.Is(err, ErrVersionConflict) {
			return ErrVersionConflict
		}
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	// Get the player from Redis
	playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, input.PlayerID)
	playerJSON, err := r.client.Get(ctx, playerKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	// Unmarshal the player from JSON
	var player models.Player
	if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}

// GetPlayerByName retrieves a player by exact display name from Redis
func (r *redisRepository) GetPlayerByName(ctx context.Context, input *GetPlayerByNameInput) (*models.Player, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and name cannot be empty")
	}

	// Resolve the name to a player ID through the index
	nameKey := fmt.Sprintf("%s%s", playerNameKeyPrefix, input.Name)
	playerID, err := r.client.Get(ctx, nameKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player ID for name: %w", err)
	}

	// Get the player using the player ID
	return r.GetPlayer(ctx, &GetPlayerInput{
		PlayerID: playerID,
	})
}

// ListPlayers retrieves all player records from Redis
func (r *redisRepository) ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error) {
	// Get all player IDs from the set
	playerIDs, err := r.client.SMembers(ctx, playersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player IDs: %w", err)
	}

	// If there are no players, return an empty slice
	if len(playerIDs) == 0 {
		return &ListPlayersOutput{
			Players: []*models.Player{},
		}, nil
	}

	// Get all player records in parallel using a pipeline
	pipe := r.client.Pipeline()
	playerCommands := make(map[string]*redis.StringCmd)

	for _, playerID := range playerIDs {
		playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, playerID)
		playerCommands[playerID] = pipe.Get(ctx, playerKey)
	}

	// Execute the pipeline
	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	// Process the results
	players := make([]*models.Player, 0, len(playerIDs))
	for playerID, cmd := range playerCommands {
		playerJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Player was deleted between getting the IDs and fetching the record
				continue
			}
			return nil, fmt.Errorf("failed to get player %s: %w", playerID, err)
		}

		var player models.Player
		if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", playerID, err)
		}

		players = append(players, &player)
	}

	return &ListPlayersOutput{
		Players: players,
	}, nil
}
