package models

// RankingEntry is a derived projection of a player record used by the
// ranking list. It is never persisted.
type RankingEntry struct {
	// PlayerID is the unique identifier for the player
	PlayerID string

	// PlayerName is the display name of the player
	PlayerName string

	// GamesPlayed is the player's settled game count
	GamesPlayed int

	// GamesWon is the player's win count
	GamesWon int

	// GamesLost is the player's loss count
	GamesLost int

	// WinRate is GamesWon / GamesPlayed (0 with no games played)
	WinRate float64
}
