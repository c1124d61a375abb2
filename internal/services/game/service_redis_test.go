package game

import (
	"context"
	"errors"
	"testing"

	"github.com/alaw810/blackjack-engine/internal/common/clock"
	"github.com/alaw810/blackjack-engine/internal/common/uuid"
	"github.com/alaw810/blackjack-engine/internal/deck"
	"github.com/alaw810/blackjack-engine/internal/models"
	gameRepo "github.com/alaw810/blackjack-engine/internal/repositories/game"
	playerRepo "github.com/alaw810/blackjack-engine/internal/repositories/player"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

// fixedShuffler deals a known card order so game flows are deterministic
type fixedShuffler struct {
	cards []models.Card
}

func (f *fixedShuffler) NewShuffledDeck() models.Deck {
	cards := make([]models.Card, len(f.cards))
	copy(cards, f.cards)
	return models.Deck{Cards: cards}
}

// GameServiceRedisTestSuite runs the service against real Redis-backed
// repositories, covering the behavior the gomock suite cannot: version
// conflicts and settlement under true concurrency.
type GameServiceRedisTestSuite struct {
	suite.Suite
	mr         *miniredis.Miniredis
	client     *redis.Client
	gameRepo   gameRepo.Repository
	playerRepo playerRepo.Repository
}

func (s *GameServiceRedisTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	gr, err := gameRepo.NewRedis(&gameRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.gameRepo = gr

	pr, err := playerRepo.NewRedis(&playerRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.playerRepo = pr
}

func (s *GameServiceRedisTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestGameServiceRedisTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceRedisTestSuite))
}

func (s *GameServiceRedisTestSuite) newService(shuffler deck.Shuffler) *service {
	svc, err := New(&Config{
		GameRepo:   s.gameRepo,
		PlayerRepo: s.playerRepo,
		Shuffler:   shuffler,
		Clock:      &clock.DefaultClock{},
		UUID:       uuid.New(),
	})
	s.Require().NoError(err)
	return svc
}

func (s *GameServiceRedisTestSuite) riggedShuffler(tokens ...string) *fixedShuffler {
	cards := make([]models.Card, 0, len(tokens))
	for _, token := range tokens {
		card, err := models.ParseCard(token)
		s.Require().NoError(err)
		cards = append(cards, card)
	}
	return &fixedShuffler{cards: cards}
}

func (s *GameServiceRedisTestSuite) TestCreateGameDealsFromFullDeck() {
	svc := s.newService(deck.New(&deck.Config{Seed: 42}))

	output, err := svc.CreateGame(context.Background(), &CreateGameInput{
		PlayerName: "Alice",
	})
	s.Require().NoError(err)

	s.Len(output.PlayerHand, 2)
	s.Len(output.DealerHand, 1) // hole card hidden
	s.Equal(48, output.RemainingDeckSize)
	s.Equal("IN_PROGRESS", output.Status)
	s.Equal("Alice", output.PlayerName)

	// The stored game holds both dealer cards
	stored, err := s.gameRepo.GetGame(context.Background(), &gameRepo.GetGameInput{
		GameID: output.GameID,
	})
	s.Require().NoError(err)
	s.Len(stored.DealerHand, 2)
	s.Equal(48, stored.Deck.Size())
}

func (s *GameServiceRedisTestSuite) TestHitBustSettlesPlayerRecord() {
	// Player draws 10H,9D (19), dealer KC,7S; the hit draws 8C and busts
	svc := s.newService(s.riggedShuffler("10H", "KC", "9D", "7S", "8C", "2H"))

	created, err := svc.CreateGame(context.Background(), &CreateGameInput{
		PlayerName: "Alice",
	})
	s.Require().NoError(err)

	output, err := svc.PlayMove(context.Background(), &PlayMoveInput{
		GameID: created.GameID,
		Move:   "HIT",
	})
	s.Require().NoError(err)
	s.Equal("PLAYER_BUST", output.Status)
	s.Equal(27, output.PlayerValue)

	player, err := s.playerRepo.GetPlayerByName(context.Background(), &playerRepo.GetPlayerByNameInput{
		Name: "Alice",
	})
	s.Require().NoError(err)
	s.Equal(1, player.GamesPlayed)
	s.Equal(0, player.GamesWon)
	s.Equal(1, player.GamesLost)

	// The game is settled; further moves are rejected
	_, err = svc.PlayMove(context.Background(), &PlayMoveInput{
		GameID: created.GameID,
		Move:   "STAND",
	})
	s.Require().ErrorIs(err, ErrGameFinished)
}

func (s *GameServiceRedisTestSuite) TestConcurrentMovesSettleExactlyOnce() {
	svc := s.newService(s.riggedShuffler(
		"10H", "KC", "9D", "7S", "8C", "2H", "3C", "4D", "5S",
	))

	created, err := svc.CreateGame(context.Background(), &CreateGameInput{
		PlayerName: "Alice",
	})
	s.Require().NoError(err)

	const movers = 8
	results := make([]error, movers)

	var g errgroup.Group
	for i := 0; i < movers; i++ {
		g.Go(func() error {
			_, err := svc.PlayMove(context.Background(), &PlayMoveInput{
				GameID: created.GameID,
				Move:   "STAND",
			})
			results[i] = err
			return nil
		})
	}
	s.Require().NoError(g.Wait())

	// Exactly one mover commits the terminal transition; the rest fail
	// fast on the lock or observe the already-finished game
	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		s.True(
			errors.Is(err, ErrConcurrentMove) || errors.Is(err, ErrGameFinished),
			"unexpected error: %v", err,
		)
	}
	s.Equal(1, succeeded)

	// The player record took exactly one settlement: the stand holds 19
	// against the dealer's 17, a win
	player, err := s.playerRepo.GetPlayerByName(context.Background(), &playerRepo.GetPlayerByNameInput{
		Name: "Alice",
	})
	s.Require().NoError(err)
	s.Equal(1, player.GamesPlayed)
	s.Equal(1, player.GamesWon)
	s.Equal(0, player.GamesLost)
}

func (s *GameServiceRedisTestSuite) TestConcurrentSettlementsForSamePlayer() {
	// Two finished games for the same player settling back to back must
	// both land their increments
	svc := s.newService(s.riggedShuffler("10H", "KC", "9D", "7S", "8C", "2H"))

	first, err := svc.CreateGame(context.Background(), &CreateGameInput{PlayerName: "Alice"})
	s.Require().NoError(err)
	second, err := svc.CreateGame(context.Background(), &CreateGameInput{PlayerName: "Alice"})
	s.Require().NoError(err)

	var g errgroup.Group
	for _, gameID := range []string{first.GameID, second.GameID} {
		g.Go(func() error {
			_, err := svc.PlayMove(context.Background(), &PlayMoveInput{
				GameID: gameID,
				Move:   "HIT",
			})
			return err
		})
	}
	s.Require().NoError(g.Wait())

	player, err := s.playerRepo.GetPlayerByName(context.Background(), &playerRepo.GetPlayerByNameInput{
		Name: "Alice",
	})
	s.Require().NoError(err)
	s.Equal(2, player.GamesPlayed)
	s.Equal(2, player.GamesLost)
}
