package player

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/alaw810/blackjack-engine/internal/common/clock"
	"github.com/alaw810/blackjack-engine/internal/models"
	playerRepo "github.com/alaw810/blackjack-engine/internal/repositories/player"
)

// service implements the Service interface
type service struct {
	playerRepo playerRepo.Repository
	clock      clock.Clock
}

// New creates a new player service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		playerRepo: cfg.PlayerRepo,
		clock:      cfg.Clock,
	}, nil
}

// UpdateName renames a player. The new name is trimmed and must be
// non-empty.
func (s *service) UpdateName(ctx context.Context, input *UpdateNameInput) (*UpdateNameOutput, error) {
	newName := strings.TrimSpace(input.NewName)
	if newName == "" {
		return nil, ErrEmptyPlayerName
	}

	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	player.Name = newName
	player.UpdatedAt = s.clock.Now()

	err = s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
		Player: player,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrVersionConflict) {
			return nil, ErrConcurrentUpdate
		}
		return nil, err
	}

	return &UpdateNameOutput{
		PlayerID:    player.ID,
		Name:        player.Name,
		GamesPlayed: player.GamesPlayed,
		GamesWon:    player.GamesWon,
		GamesLost:   player.GamesLost,
	}, nil
}

// GetRanking returns every player as a ranking entry, ordered by games
// won descending, then win rate descending, then player ID ascending.
// The order is a deterministic total order: equal records always land in
// the same positions.
func (s *service) GetRanking(ctx context.Context, input *GetRankingInput) (*GetRankingOutput, error) {
	output, err := s.playerRepo.ListPlayers(ctx, &playerRepo.ListPlayersInput{})
	if err != nil {
		return nil, err
	}

	players := output.Players
	sort.Slice(players, func(i, j int) bool {
		if players[i].GamesWon != players[j].GamesWon {
			return players[i].GamesWon > players[j].GamesWon
		}
		if players[i].WinRate() != players[j].WinRate() {
			return players[i].WinRate() > players[j].WinRate()
		}
		return players[i].ID < players[j].ID
	})

	entries := make([]*models.RankingEntry, 0, len(players))
	for _, p := range players {
		entries = append(entries, &models.RankingEntry{
			PlayerID:    p.ID,
			PlayerName:  p.Name,
			GamesPlayed: p.GamesPlayed,
			GamesWon:    p.GamesWon,
			GamesLost:   p.GamesLost,
			WinRate:     p.WinRate(),
		})
	}

	return &GetRankingOutput{
		Entries: entries,
	}, nil
}
