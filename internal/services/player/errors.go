package player

// PlayerError is a custom error type for player-related errors
type PlayerError string

// Error implements the error interface
func (e PlayerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrPlayerNotFound   PlayerError = "player not found"
	ErrEmptyPlayerName  PlayerError = "player name cannot be empty"
	ErrConcurrentUpdate PlayerError = "player record was modified concurrently; retry"
	ErrNilConfig        PlayerError = "config cannot be nil"
	ErrNilPlayerRepo    PlayerError = "player repository cannot be nil"
	ErrNilClock         PlayerError = "clock cannot be nil"
)
