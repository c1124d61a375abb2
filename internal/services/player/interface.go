package player

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/alaw810/blackjack-engine/internal/services/player Service

import "context"

// Service defines the interface for player record operations
type Service interface {
	// UpdateName renames a player
	UpdateName(ctx context.Context, input *UpdateNameInput) (*UpdateNameOutput, error)

	// GetRanking returns all players ordered by wins, win rate, then ID
	GetRanking(ctx context.Context, input *GetRankingInput) (*GetRankingOutput, error)
}
