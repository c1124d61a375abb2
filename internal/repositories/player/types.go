package player

import "github.com/alaw810/blackjack-engine/internal/models"

// SavePlayerInput contains parameters for saving a player record
type SavePlayerInput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player by ID
type GetPlayerInput struct {
	PlayerID string
}

// GetPlayerByNameInput contains parameters for retrieving a player by name
type GetPlayerByNameInput struct {
	Name string
}

// ListPlayersInput contains parameters for listing all players
type ListPlayersInput struct {
}

// ListPlayersOutput contains the result of listing all players
type ListPlayersOutput struct {
	Players []*models.Player
}
