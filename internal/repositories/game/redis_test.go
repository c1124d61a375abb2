package game

import (
	"context"
	"testing"
	"time"

	"github.com/alaw810/blackjack-engine/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newTestGame() *models.Game {
	return &models.Game{
		ID:       "test-game-id",
		PlayerID: "test-player-id",
		PlayerHand: models.Hand{
			{Rank: models.RankTen, Suit: models.SuitHearts},
			{Rank: models.RankNine, Suit: models.SuitDiamonds},
		},
		DealerHand: models.Hand{
			{Rank: models.RankKing, Suit: models.SuitClubs},
			{Rank: models.RankSeven, Suit: models.SuitSpades},
		},
		Deck: models.Deck{
			Cards: []models.Card{
				{Rank: models.RankEight, Suit: models.SuitClubs},
				{Rank: models.RankTwo, Suit: models.SuitHearts},
			},
		},
		Status:    models.GameStatusInProgress,
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetGame() {
	game := s.newTestGame()

	err := s.repo.SaveGame(context.Background(), &SaveGameInput{
		Game: game,
	})
	s.Require().NoError(err)

	// The save bumps the version on the passed game
	s.Equal(int64(1), game.Version)

	retrieved, err := s.repo.GetGame(context.Background(), &GetGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-game-id", retrieved.ID)
	s.Equal("test-player-id", retrieved.PlayerID)
	s.Equal(models.GameStatusInProgress, retrieved.Status)
	s.Equal(int64(1), retrieved.Version)
	s.Len(retrieved.PlayerHand, 2)
	s.Len(retrieved.DealerHand, 2)
	s.Equal(2, retrieved.Deck.Size())
	s.Equal("10H", retrieved.PlayerHand[0].String())
	s.Equal("KC", retrieved.DealerHand[0].String())
}

func (s *RedisRepositoryTestSuite) TestGetGameNotFound() {
	_, err := s.repo.GetGame(context.Background(), &GetGameInput{
		GameID: "no-such-game",
	})
	s.Require().ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveGameVersionConflict() {
	game := s.newTestGame()

	err := s.repo.SaveGame(context.Background(), &SaveGameInput{Game: game})
	s.Require().NoError(err)

	// Two movers load the same stored state
	first, err := s.repo.GetGame(context.Background(), &GetGameInput{GameID: game.ID})
	s.Require().NoError(err)
	second, err := s.repo.GetGame(context.Background(), &GetGameInput{GameID: game.ID})
	s.Require().NoError(err)

	first.Status = models.GameStatusPlayerBust
	err = s.repo.SaveGame(context.Background(), &SaveGameInput{Game: first})
	s.Require().NoError(err)
	s.Equal(int64(2), first.Version)

	// The stale mover is rejected
	second.Status = models.GameStatusTie
	err = s.repo.SaveGame(context.Background(), &SaveGameInput{Game: second})
	s.Require().ErrorIs(err, ErrVersionConflict)

	// The first write survives
	stored, err := s.repo.GetGame(context.Background(), &GetGameInput{GameID: game.ID})
	s.Require().NoError(err)
	s.Equal(models.GameStatusPlayerBust, stored.Status)
	s.Equal(int64(2), stored.Version)
}

func (s *RedisRepositoryTestSuite) TestSaveGameStaleCreateRejected() {
	game := s.newTestGame()
	game.Version = 3

	err := s.repo.SaveGame(context.Background(), &SaveGameInput{Game: game})
	s.Require().ErrorIs(err, ErrVersionConflict)
}

func (s *RedisRepositoryTestSuite) TestDeleteGame() {
	game := s.newTestGame()

	err := s.repo.SaveGame(context.Background(), &SaveGameInput{Game: game})
	s.Require().NoError(err)

	err = s.repo.DeleteGame(context.Background(), &DeleteGameInput{GameID: game.ID})
	s.Require().NoError(err)

	_, err = s.repo.GetGame(context.Background(), &GetGameInput{GameID: game.ID})
	s.Require().ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteGameNotFound() {
	err := s.repo.DeleteGame(context.Background(), &DeleteGameInput{GameID: "no-such-game"})
	s.Require().ErrorIs(err, ErrGameNotFound)
}
