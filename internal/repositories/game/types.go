package game

import "github.com/alaw810/blackjack-engine/internal/models"

// SaveGameInput contains parameters for saving a game
type SaveGameInput struct {
	Game *models.Game
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	GameID string
}

// DeleteGameInput contains parameters for deleting a game
type DeleteGameInput struct {
	GameID string
}
