// Package rest exposes the game and player services as a JSON HTTP API.
// It does routing and decoding only; all rules live in the services.
package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"

	gameService "github.com/alaw810/blackjack-engine/internal/services/game"
	playerService "github.com/alaw810/blackjack-engine/internal/services/player"
)

// Config holds the dependencies for the REST handler
type Config struct {
	// GameService handles game operations
	GameService gameService.Service

	// PlayerService handles player record operations
	PlayerService playerService.Service

	// Logger receives request-level diagnostics
	Logger *log.Logger
}

// Handler routes HTTP requests to the services
type Handler struct {
	gameService   gameService.Service
	playerService playerService.Service
	logger        *log.Logger
}

// New creates a new REST handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.PlayerService == nil {
		return nil, errors.New("player service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Handler{
		gameService:   cfg.GameService,
		playerService: cfg.PlayerService,
		logger:        logger,
	}, nil
}

// Routes returns the request multiplexer for the API
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /game/new", h.createGame)
	mux.HandleFunc("GET /game/{gameId}", h.getGame)
	mux.HandleFunc("POST /game/{gameId}/play", h.playMove)
	mux.HandleFunc("DELETE /game/{gameId}/delete", h.deleteGame)
	mux.HandleFunc("PUT /player/{playerId}", h.updatePlayerName)
	mux.HandleFunc("GET /ranking", h.getRanking)

	return mux
}

func (h *Handler) createGame(w http.ResponseWriter, r *http.Request) {
	var req newGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	output, err := h.gameService.CreateGame(r.Context(), &gameService.CreateGameInput{
		PlayerName: req.PlayerName,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.logger.Info("game created", "game_id", output.GameID, "player", output.PlayerName)

	h.writeJSON(w, http.StatusCreated, &gameResponse{
		GameID:            output.GameID,
		PlayerName:        output.PlayerName,
		PlayerHand:        output.PlayerHand,
		DealerHand:        output.DealerHand,
		PlayerValue:       output.PlayerValue,
		DealerValue:       output.DealerValue,
		RemainingDeckSize: output.RemainingDeckSize,
		Status:            output.Status,
	})
}

func (h *Handler) getGame(w http.ResponseWriter, r *http.Request) {
	output, err := h.gameService.GetGame(r.Context(), &gameService.GetGameInput{
		GameID: r.PathValue("gameId"),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, &gameResponse{
		GameID:            output.GameID,
		PlayerName:        output.PlayerName,
		PlayerHand:        output.PlayerHand,
		DealerHand:        output.DealerHand,
		PlayerValue:       output.PlayerValue,
		DealerValue:       output.DealerValue,
		RemainingDeckSize: output.RemainingDeckSize,
		Status:            output.Status,
	})
}

func (h *Handler) playMove(w http.ResponseWriter, r *http.Request) {
	var req playMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	gameID := r.PathValue("gameId")

	output, err := h.gameService.PlayMove(r.Context(), &gameService.PlayMoveInput{
		GameID: gameID,
		Move:   req.Move,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.logger.Debug("move played", "game_id", gameID, "move", req.Move, "status", output.Status)

	h.writeJSON(w, http.StatusOK, &gameResponse{
		GameID:            output.GameID,
		PlayerHand:        output.PlayerHand,
		DealerHand:        output.DealerHand,
		PlayerValue:       output.PlayerValue,
		DealerValue:       output.DealerValue,
		RemainingDeckSize: output.RemainingDeckSize,
		Status:            output.Status,
		Message:           output.Message,
	})
}

func (h *Handler) deleteGame(w http.ResponseWriter, r *http.Request) {
	_, err := h.gameService.DeleteGame(r.Context(), &gameService.DeleteGameInput{
		GameID: r.PathValue("gameId"),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updatePlayerName(w http.ResponseWriter, r *http.Request) {
	var req updatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	output, err := h.playerService.UpdateName(r.Context(), &playerService.UpdateNameInput{
		PlayerID: r.PathValue("playerId"),
		NewName:  req.NewName,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, &playerResponse{
		ID:          output.PlayerID,
		Name:        output.Name,
		GamesPlayed: output.GamesPlayed,
		GamesWon:    output.GamesWon,
		GamesLost:   output.GamesLost,
	})
}

func (h *Handler) getRanking(w http.ResponseWriter, r *http.Request) {
	output, err := h.playerService.GetRanking(r.Context(), &playerService.GetRankingInput{})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	entries := make([]*rankingEntryResponse, 0, len(output.Entries))
	for _, e := range output.Entries {
		entries = append(entries, &rankingEntryResponse{
			ID:          e.PlayerID,
			Name:        e.PlayerName,
			GamesPlayed: e.GamesPlayed,
			GamesWon:    e.GamesWon,
			GamesLost:   e.GamesLost,
			WinRate:     e.WinRate,
		})
	}

	h.writeJSON(w, http.StatusOK, entries)
}

// writeServiceError maps service errors onto HTTP status codes:
// unknown ids are 404, rejected input is 400, contention and moves on
// finished games are 409, anything else is a 500.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gameService.ErrGameNotFound),
		errors.Is(err, gameService.ErrPlayerNotFound),
		errors.Is(err, playerService.ErrPlayerNotFound):
		h.writeError(w, http.StatusNotFound, err)

	case errors.Is(err, gameService.ErrEmptyPlayerName),
		errors.Is(err, gameService.ErrInvalidMove),
		errors.Is(err, playerService.ErrEmptyPlayerName):
		h.writeError(w, http.StatusBadRequest, err)

	case errors.Is(err, gameService.ErrGameFinished),
		errors.Is(err, gameService.ErrConcurrentMove),
		errors.Is(err, gameService.ErrSettleConflict),
		errors.Is(err, playerService.ErrConcurrentUpdate):
		h.writeError(w, http.StatusConflict, err)

	default:
		h.logger.Error("request failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, errors.New("internal server error"))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, &errorResponse{
		Message: err.Error(),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
