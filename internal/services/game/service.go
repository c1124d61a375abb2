package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alaw810/blackjack-engine/internal/blackjack"
	"github.com/alaw810/blackjack-engine/internal/common/clock"
	"github.com/alaw810/blackjack-engine/internal/common/keymutex"
	"github.com/alaw810/blackjack-engine/internal/common/uuid"
	"github.com/alaw810/blackjack-engine/internal/deck"
	"github.com/alaw810/blackjack-engine/internal/models"
	gameRepo "github.com/alaw810/blackjack-engine/internal/repositories/game"
	playerRepo "github.com/alaw810/blackjack-engine/internal/repositories/player"
)

const defaultSettleRetries = 3

// service implements the Service interface
type service struct {
	gameRepo      gameRepo.Repository
	playerRepo    playerRepo.Repository
	shuffler      deck.Shuffler
	clock         clock.Clock
	uuid          uuid.UUID
	moveLocks     *keymutex.KeyMutex
	settleRetries int
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.Shuffler == nil {
		return nil, ErrNilShuffler
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	settleRetries := cfg.SettleRetries
	if settleRetries <= 0 {
		settleRetries = defaultSettleRetries
	}

	return &service{
		gameRepo:      cfg.GameRepo,
		playerRepo:    cfg.PlayerRepo,
		shuffler:      cfg.Shuffler,
		clock:         cfg.Clock,
		uuid:          cfg.UUID,
		moveLocks:     keymutex.New(),
		settleRetries: settleRetries,
	}, nil
}

// CreateGame starts a new game for a named player. The player record is
// created lazily on first game for a new name. The deal order is player,
// dealer, player, dealer.
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	playerName := strings.TrimSpace(input.PlayerName)
	if playerName == "" {
		return nil, ErrEmptyPlayerName
	}

	player, err := s.findOrCreatePlayer(ctx, playerName)
	if err != nil {
		return nil, err
	}

	newDeck := s.shuffler.NewShuffledDeck()

	game := &models.Game{
		ID:       s.uuid.NewUUID(),
		PlayerID: player.ID,
		Deck:     newDeck,
		Status:   models.GameStatusInProgress,
	}

	// Strict deal order: player, dealer, player, dealer
	for i := 0; i < 2; i++ {
		card, err := game.Deck.Draw()
		if err != nil {
			return nil, fmt.Errorf("failed to deal player card: %w", err)
		}
		game.PlayerHand = append(game.PlayerHand, card)

		card, err = game.Deck.Draw()
		if err != nil {
			return nil, fmt.Errorf("failed to deal dealer card: %w", err)
		}
		game.DealerHand = append(game.DealerHand, card)
	}

	now := s.clock.Now()
	game.CreatedAt = now
	game.UpdatedAt = now

	err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	return &CreateGameOutput{
		GameID:            game.ID,
		PlayerName:        player.Name,
		PlayerHand:        game.PlayerHand.Tokens(),
		DealerHand:        visibleDealerHand(game).Tokens(),
		PlayerValue:       blackjack.HandValue(game.PlayerHand),
		DealerValue:       blackjack.HandValue(visibleDealerHand(game)),
		RemainingDeckSize: game.Deck.Size(),
		Status:            string(game.Status),
	}, nil
}

// GetGame returns the current view of a game
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: game.PlayerID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	return &GetGameOutput{
		GameID:            game.ID,
		PlayerName:        player.Name,
		PlayerHand:        game.PlayerHand.Tokens(),
		DealerHand:        visibleDealerHand(game).Tokens(),
		PlayerValue:       blackjack.HandValue(game.PlayerHand),
		DealerValue:       blackjack.HandValue(visibleDealerHand(game)),
		RemainingDeckSize: game.Deck.Size(),
		Status:            string(game.Status),
	}, nil
}

// PlayMove applies one move to an in-progress game. Moves on the same
// game are serialized: a second concurrent call fails fast with
// ErrConcurrentMove instead of queueing. When the move ends the game the
// outcome is settled into the owning player's record exactly once.
func (s *service) PlayMove(ctx context.Context, input *PlayMoveInput) (*PlayMoveOutput, error) {
	move, ok := blackjack.ParseMove(input.Move)
	if !ok {
		return nil, ErrInvalidMove
	}

	lockKey := "game:" + input.GameID
	if !s.moveLocks.TryLock(lockKey) {
		return nil, ErrConcurrentMove
	}
	defer s.moveLocks.Unlock(lockKey)

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	if !game.InProgress() {
		return nil, ErrGameFinished
	}

	outcome, err := blackjack.Apply(game, move)
	if err != nil {
		return nil, fmt.Errorf("failed to apply move: %w", err)
	}

	game.UpdatedAt = s.clock.Now()
	if outcome == blackjack.OutcomeSettled {
		game.Settled = true
	}

	// The version check makes the terminal transition exclusive: a mover
	// racing us from another process loses here, and settlement runs only
	// for the mover whose save committed.
	err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrVersionConflict) {
			return nil, ErrConcurrentMove
		}
		return nil, err
	}

	if outcome == blackjack.OutcomeSettled {
		if err := s.settlePlayer(ctx, game); err != nil {
			return nil, err
		}
	}

	return &PlayMoveOutput{
		GameID:            game.ID,
		Status:            string(game.Status),
		PlayerHand:        game.PlayerHand.Tokens(),
		DealerHand:        visibleDealerHand(game).Tokens(),
		PlayerValue:       blackjack.HandValue(game.PlayerHand),
		DealerValue:       blackjack.HandValue(visibleDealerHand(game)),
		RemainingDeckSize: game.Deck.Size(),
		Message:           statusMessage(game.Status),
	}, nil
}

// DeleteGame removes a game. Player records are untouched.
func (s *service) DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error) {
	err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	return &DeleteGameOutput{
		Success: true,
	}, nil
}

// findOrCreatePlayer resolves a player record by trimmed name, creating
// a fresh record on first game for a new name.
func (s *service) findOrCreatePlayer(ctx context.Context, playerName string) (*models.Player, error) {
	player, err := s.playerRepo.GetPlayerByName(ctx, &playerRepo.GetPlayerByNameInput{
		Name: playerName,
	})
	if err == nil {
		return player, nil
	}

	if !errors.Is(err, playerRepo.ErrPlayerNotFound) {
		return nil, err
	}

	now := s.clock.Now()
	player = &models.Player{
		ID:        s.uuid.NewUUID(),
		Name:      playerName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
		Player: player,
	})
	if err != nil {
		return nil, err
	}

	return player, nil
}

// settlePlayer pushes a terminal game outcome into the owning player's
// record: played always increments, won on PLAYER_WIN or DEALER_BUST,
// lost on PLAYER_LOSE or PLAYER_BUST, neither on TIE. A conflicting
// concurrent write (another game settling for the same player) rereads
// the record and retries, so no increment is ever lost.
func (s *service) settlePlayer(ctx context.Context, game *models.Game) error {
	for attempt := 0; attempt < s.settleRetries; attempt++ {
		player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
			PlayerID: game.PlayerID,
		})
		if err != nil {
			if errors.Is(err, playerRepo.ErrPlayerNotFound) {
				return ErrPlayerNotFound
			}
			return err
		}

		player.GamesPlayed++
		switch game.Status {
		case models.GameStatusPlayerWin, models.GameStatusDealerBust:
			player.GamesWon++
		case models.GameStatusPlayerLose, models.GameStatusPlayerBust:
			player.GamesLost++
		}
		player.UpdatedAt = s.clock.Now()

		err = s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
			Player: player,
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, playerRepo.ErrVersionConflict) {
			return err
		}
	}

	return ErrSettleConflict
}

// visibleDealerHand applies the hole-card rule: while the game is in
// progress only the first dealt dealer card is shown; once terminal the
// full hand is visible.
func visibleDealerHand(game *models.Game) models.Hand {
	if game.InProgress() && len(game.DealerHand) > 1 {
		return game.DealerHand[:1]
	}
	return game.DealerHand
}

// statusMessage renders a game status as a human-readable summary
func statusMessage(status models.GameStatus) string {
	switch status {
	case models.GameStatusPlayerWin:
		return "Player wins!"
	case models.GameStatusPlayerLose:
		return "Player loses!"
	case models.GameStatusPlayerBust:
		return "Player busts!"
	case models.GameStatusDealerBust:
		return "Dealer busts!"
	case models.GameStatusTie:
		return "It's a tie!"
	default:
		return "Game in progress"
	}
}
