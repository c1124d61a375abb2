package rest

// newGameRequest is the body of POST /game/new
type newGameRequest struct {
	PlayerName string `json:"playerName"`
}

// playMoveRequest is the body of POST /game/{gameId}/play
type playMoveRequest struct {
	Move string `json:"move"`
}

// updatePlayerRequest is the body of PUT /player/{playerId}
type updatePlayerRequest struct {
	NewName string `json:"newName"`
}

// gameResponse is the wire view of a game
type gameResponse struct {
	GameID            string   `json:"gameId"`
	PlayerName        string   `json:"playerName,omitempty"`
	PlayerHand        []string `json:"playerHand"`
	DealerHand        []string `json:"dealerHand"`
	PlayerValue       int      `json:"playerValue"`
	DealerValue       int      `json:"dealerValue"`
	RemainingDeckSize int      `json:"remainingDeckSize"`
	Status            string   `json:"status"`
	Message           string   `json:"message,omitempty"`
}

// playerResponse is the wire view of a player summary
type playerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	GamesPlayed int    `json:"gamesPlayed"`
	GamesWon    int    `json:"gamesWon"`
	GamesLost   int    `json:"gamesLost"`
}

// rankingEntryResponse is one row of GET /ranking
type rankingEntryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	GamesPlayed int     `json:"gamesPlayed"`
	GamesWon    int     `json:"gamesWon"`
	GamesLost   int     `json:"gamesLost"`
	WinRate     float64 `json:"winRate"`
}

// errorResponse is the body of every non-2xx reply
type errorResponse struct {
	Message string `json:"message"`
}
