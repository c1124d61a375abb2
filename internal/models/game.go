package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusInProgress indicates the player may still act
	GameStatusInProgress GameStatus = "IN_PROGRESS"

	// GameStatusPlayerWin indicates the player beat the dealer's total
	GameStatusPlayerWin GameStatus = "PLAYER_WIN"

	// GameStatusPlayerLose indicates the dealer beat the player's total
	GameStatusPlayerLose GameStatus = "PLAYER_LOSE"

	// GameStatusPlayerBust indicates the player drew past 21
	GameStatusPlayerBust GameStatus = "PLAYER_BUST"

	// GameStatusDealerBust indicates the dealer drew past 21
	GameStatusDealerBust GameStatus = "DEALER_BUST"

	// GameStatusTie indicates equal totals after dealer play
	GameStatusTie GameStatus = "TIE"
)

// Terminal reports whether the status is an end state. Terminal states
// accept no further moves.
func (s GameStatus) Terminal() bool {
	return s != GameStatusInProgress
}

// Game is one blackjack hand between a player and the automated dealer
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// PlayerID references the owning player record
	PlayerID string

	// PlayerHand holds the player's cards in deal order
	PlayerHand Hand

	// DealerHand holds the dealer's cards in deal order
	DealerHand Hand

	// Deck is the remaining undealt cards, owned exclusively by this game
	Deck Deck

	// Status is the current state of the game
	Status GameStatus

	// Settled is set once the terminal outcome has been pushed into the
	// owning player's record
	Settled bool

	// Version is the optimistic concurrency token; the repository rejects
	// a save whose version does not match the stored record
	Version int64

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}

// InProgress reports whether the game still accepts moves.
func (g *Game) InProgress() bool {
	return g.Status == GameStatusInProgress
}
