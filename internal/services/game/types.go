package game

import (
	"github.com/alaw810/blackjack-engine/internal/common/clock"
	"github.com/alaw810/blackjack-engine/internal/common/uuid"
	"github.com/alaw810/blackjack-engine/internal/deck"
	gameRepo "github.com/alaw810/blackjack-engine/internal/repositories/game"
	playerRepo "github.com/alaw810/blackjack-engine/internal/repositories/player"
)

// Config holds the dependencies and tunables for the game service
type Config struct {
	// GameRepo persists games
	GameRepo gameRepo.Repository

	// PlayerRepo persists player records
	PlayerRepo playerRepo.Repository

	// Shuffler produces shuffled decks for new games
	Shuffler deck.Shuffler

	// Clock provides the current time
	Clock clock.Clock

	// UUID generates game and player identifiers
	UUID uuid.UUID

	// SettleRetries bounds how often a settlement is retried when the
	// player record is being written concurrently. Defaults to 3.
	SettleRetries int
}

// CreateGameInput contains parameters for starting a game
type CreateGameInput struct {
	// PlayerName is the display name of the player; trimmed, must be
	// non-empty
	PlayerName string
}

// CreateGameOutput is the caller-facing view of a freshly dealt game.
// While the game is in progress the dealer hand shows only the first
// dealt card and DealerValue counts only the visible cards.
type CreateGameOutput struct {
	GameID            string
	PlayerName        string
	PlayerHand        []string
	DealerHand        []string
	PlayerValue       int
	DealerValue       int
	RemainingDeckSize int
	Status            string
}

// GetGameInput contains parameters for reading a game
type GetGameInput struct {
	GameID string
}

// GetGameOutput is the caller-facing view of an existing game, with the
// same hole-card visibility rule as CreateGameOutput
type GetGameOutput struct {
	GameID            string
	PlayerName        string
	PlayerHand        []string
	DealerHand        []string
	PlayerValue       int
	DealerValue       int
	RemainingDeckSize int
	Status            string
}

// PlayMoveInput contains parameters for applying a move
type PlayMoveInput struct {
	GameID string

	// Move is one of "HIT", "STAND" or "DOUBLE" (case-insensitive,
	// surrounding whitespace ignored)
	Move string
}

// PlayMoveOutput is the caller-facing result of a move
type PlayMoveOutput struct {
	GameID            string
	Status            string
	PlayerHand        []string
	DealerHand        []string
	PlayerValue       int
	DealerValue       int
	RemainingDeckSize int

	// Message is a human-readable summary of the game's state
	Message string
}

// DeleteGameInput contains parameters for deleting a game
type DeleteGameInput struct {
	GameID string
}

// DeleteGameOutput contains the result of deleting a game
type DeleteGameOutput struct {
	Success bool
}
