package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/alaw810/blackjack-engine/internal/services/game Service

import "context"

// Service defines the interface for game operations
type Service interface {
	// CreateGame starts a new game for a named player, dealing two cards
	// each to player and dealer
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GetGame returns the current view of a game
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// PlayMove applies a HIT, STAND or DOUBLE to an in-progress game,
	// running dealer play and settlement when the move ends the game
	PlayMove(ctx context.Context, input *PlayMoveInput) (*PlayMoveOutput, error)

	// DeleteGame removes a game; player records are untouched
	DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error)
}
