package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/alaw810/blackjack-engine/internal/repositories/player Repository

import (
	"context"

	"github.com/alaw810/blackjack-engine/internal/models"
)

// Repository defines the interface for player record persistence
type Repository interface {
	// SavePlayer persists a player record. The record's Version must match
	// the stored record (0 for a new player); on success the Version is
	// bumped on the passed record. A mismatch returns ErrVersionConflict.
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// GetPlayerByName retrieves a player by exact display name
	GetPlayerByName(ctx context.Context, input *GetPlayerByNameInput) (*models.Player, error)

	// ListPlayers retrieves all player records
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)
}
