package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/alaw810/blackjack-engine/internal/repositories/game Repository

import (
	"context"

	"github.com/alaw810/blackjack-engine/internal/models"
)

// Repository defines the interface for game data persistence
type Repository interface {
	// SaveGame persists a game. The game's Version must match the stored
	// record (0 for a new game); on success the Version is bumped on the
	// passed game. A mismatch returns ErrVersionConflict.
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// DeleteGame removes a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error
}
