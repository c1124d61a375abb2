package player

import (
	"github.com/alaw810/blackjack-engine/internal/common/clock"
	"github.com/alaw810/blackjack-engine/internal/models"
	playerRepo "github.com/alaw810/blackjack-engine/internal/repositories/player"
)

// Config holds the dependencies for the player service
type Config struct {
	// PlayerRepo persists player records
	PlayerRepo playerRepo.Repository

	// Clock provides the current time
	Clock clock.Clock
}

// UpdateNameInput contains parameters for renaming a player
type UpdateNameInput struct {
	PlayerID string

	// NewName is the replacement display name; trimmed, must be non-empty
	NewName string
}

// UpdateNameOutput contains the updated player summary
type UpdateNameOutput struct {
	PlayerID    string
	Name        string
	GamesPlayed int
	GamesWon    int
	GamesLost   int
}

// GetRankingInput contains parameters for the ranking query
type GetRankingInput struct {
}

// GetRankingOutput contains the ordered ranking entries
type GetRankingOutput struct {
	Entries []*models.RankingEntry
}
