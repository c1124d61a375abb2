package models

import (
	"time"
)

// Player is the cumulative win/loss record for one named player
type Player struct {
	// ID is the unique identifier for the player
	ID string

	// Name is the display name of the player
	Name string

	// GamesPlayed counts every settled game, ties included
	GamesPlayed int

	// GamesWon counts games settled as PLAYER_WIN or DEALER_BUST
	GamesWon int

	// GamesLost counts games settled as PLAYER_LOSE or PLAYER_BUST
	GamesLost int

	// Version is the optimistic concurrency token; the repository rejects
	// a save whose version does not match the stored record
	Version int64

	// CreatedAt is when the player record was created
	CreatedAt time.Time

	// UpdatedAt is when the player record was last updated
	UpdatedAt time.Time
}

// WinRate returns GamesWon / GamesPlayed, or 0 for a player with no
// settled games.
func (p *Player) WinRate() float64 {
	if p.GamesPlayed == 0 {
		return 0
	}
	return float64(p.GamesWon) / float64(p.GamesPlayed)
}
