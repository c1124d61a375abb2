package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound    GameError = "game not found"
	ErrPlayerNotFound  GameError = "player not found"
	ErrEmptyPlayerName GameError = "player name cannot be empty"
	ErrInvalidMove     GameError = "move must be HIT, STAND or DOUBLE"
	ErrGameFinished    GameError = "game is already finished"
	ErrConcurrentMove  GameError = "another move is in flight for this game; retry"
	ErrSettleConflict  GameError = "player record update kept conflicting; retry"
	ErrNilConfig       GameError = "config cannot be nil"
	ErrNilGameRepo     GameError = "game repository cannot be nil"
	ErrNilPlayerRepo   GameError = "player repository cannot be nil"
	ErrNilShuffler     GameError = "shuffler cannot be nil"
	ErrNilClock        GameError = "clock cannot be nil"
	ErrNilUUID         GameError = "UUID generator cannot be nil"
)
