package player

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/alaw810/blackjack-engine/internal/common/clock/mocks"
	"github.com/alaw810/blackjack-engine/internal/models"
	playerRepo "github.com/alaw810/blackjack-engine/internal/repositories/player"
	playerMocks "github.com/alaw810/blackjack-engine/internal/repositories/player/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PlayerServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockPlayerRepo *playerMocks.MockRepository
	mockClock      *clockMocks.MockClock
	playerService  Service
	ctx            context.Context

	// Test data
	testTime     time.Time
	testPlayerID string
}

func (s *PlayerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.testPlayerID = "test-player-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		PlayerRepo: s.mockPlayerRepo,
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)
	s.playerService = svc
}

func (s *PlayerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPlayerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerServiceTestSuite))
}

func (s *PlayerServiceTestSuite) TestUpdateName() {
	stored := &models.Player{
		ID:          s.testPlayerID,
		Name:        "Alice",
		GamesPlayed: 10,
		GamesWon:    9,
		GamesLost:   1,
	}

	s.mockPlayerRepo.EXPECT().
		GetPlayer(s.ctx, &playerRepo.GetPlayerInput{PlayerID: s.testPlayerID}).
		Return(stored, nil)
	s.mockPlayerRepo.EXPECT().
		SavePlayer(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *playerRepo.SavePlayerInput) error {
			s.Equal("Alicia", input.Player.Name)
			s.Equal(s.testTime, input.Player.UpdatedAt)
			return nil
		})

	output, err := s.playerService.UpdateName(s.ctx, &UpdateNameInput{
		PlayerID: s.testPlayerID,
		NewName:  "  Alicia  ",
	})
	s.Require().NoError(err)

	s.Equal(s.testPlayerID, output.PlayerID)
	s.Equal("Alicia", output.Name)
	s.Equal(10, output.GamesPlayed)
	s.Equal(9, output.GamesWon)
	s.Equal(1, output.GamesLost)
}

func (s *PlayerServiceTestSuite) TestUpdateNameBlank() {
	_, err := s.playerService.UpdateName(s.ctx, &UpdateNameInput{
		PlayerID: s.testPlayerID,
		NewName:  "   ",
	})
	s.Require().ErrorIs(err, ErrEmptyPlayerName)
}

func (s *PlayerServiceTestSuite) TestUpdateNameNotFound() {
	s.mockPlayerRepo.EXPECT().
		GetPlayer(s.ctx, &playerRepo.GetPlayerInput{PlayerID: "no-such-player"}).
		Return(nil, playerRepo.ErrPlayerNotFound)

	_, err := s.playerService.UpdateName(s.ctx, &UpdateNameInput{
		PlayerID: "no-such-player",
		NewName:  "Alicia",
	})
	s.Require().ErrorIs(err, ErrPlayerNotFound)
}

func (s *PlayerServiceTestSuite) TestUpdateNameConcurrentConflict() {
	stored := &models.Player{ID: s.testPlayerID, Name: "Alice"}

	s.mockPlayerRepo.EXPECT().
		GetPlayer(s.ctx, &playerRepo.GetPlayerInput{PlayerID: s.testPlayerID}).
		Return(stored, nil)
	s.mockPlayerRepo.EXPECT().
		SavePlayer(s.ctx, gomock.Any()).
		Return(playerRepo.ErrVersionConflict)

	_, err := s.playerService.UpdateName(s.ctx, &UpdateNameInput{
		PlayerID: s.testPlayerID,
		NewName:  "Alicia",
	})
	s.Require().ErrorIs(err, ErrConcurrentUpdate)
}

func (s *PlayerServiceTestSuite) TestGetRankingOrder() {
	s.mockPlayerRepo.EXPECT().
		ListPlayers(s.ctx, &playerRepo.ListPlayersInput{}).
		Return(&playerRepo.ListPlayersOutput{
			Players: []*models.Player{
				{ID: "player-c", Name: "Carol", GamesPlayed: 10, GamesWon: 7, GamesLost: 3},
				{ID: "player-b", Name: "Bob", GamesPlayed: 10, GamesWon: 9, GamesLost: 1},
				{ID: "player-a", Name: "Alice", GamesPlayed: 10, GamesWon: 9, GamesLost: 0},
				{ID: "player-d", Name: "Dan", GamesPlayed: 12, GamesWon: 9, GamesLost: 3},
			},
		}, nil)

	output, err := s.playerService.GetRanking(s.ctx, &GetRankingInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 4)

	// 9 wins sort above 7; the 9-win group orders by win rate, with the
	// equal-rate pair broken by ID ascending
	s.Equal("player-a", output.Entries[0].PlayerID)
	s.Equal("player-b", output.Entries[1].PlayerID)
	s.Equal("player-d", output.Entries[2].PlayerID)
	s.Equal("player-c", output.Entries[3].PlayerID)

	s.InDelta(0.9, output.Entries[0].WinRate, 1e-9)
	s.InDelta(0.75, output.Entries[2].WinRate, 1e-9)
}

func (s *PlayerServiceTestSuite) TestGetRankingTieBrokenByID() {
	s.mockPlayerRepo.EXPECT().
		ListPlayers(s.ctx, &playerRepo.ListPlayersInput{}).
		Return(&playerRepo.ListPlayersOutput{
			Players: []*models.Player{
				{ID: "player-b", Name: "Bob", GamesPlayed: 10, GamesWon: 9, GamesLost: 1},
				{ID: "player-a", Name: "Alice", GamesPlayed: 10, GamesWon: 9, GamesLost: 1},
				{ID: "player-c", Name: "Carol", GamesPlayed: 10, GamesWon: 7, GamesLost: 3},
			},
		}, nil)

	output, err := s.playerService.GetRanking(s.ctx, &GetRankingInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 3)

	s.Equal("player-a", output.Entries[0].PlayerID)
	s.Equal("player-b", output.Entries[1].PlayerID)
	s.Equal("player-c", output.Entries[2].PlayerID)
}

func (s *PlayerServiceTestSuite) TestGetRankingZeroGamesHasZeroRate() {
	s.mockPlayerRepo.EXPECT().
		ListPlayers(s.ctx, &playerRepo.ListPlayersInput{}).
		Return(&playerRepo.ListPlayersOutput{
			Players: []*models.Player{
				{ID: "player-a", Name: "Alice"},
			},
		}, nil)

	output, err := s.playerService.GetRanking(s.ctx, &GetRankingInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 1)
	s.Zero(output.Entries[0].WinRate)
}

func (s *PlayerServiceTestSuite) TestGetRankingEmpty() {
	s.mockPlayerRepo.EXPECT().
		ListPlayers(s.ctx, &playerRepo.ListPlayersInput{}).
		Return(&playerRepo.ListPlayersOutput{Players: []*models.Player{}}, nil)

	output, err := s.playerService.GetRanking(s.ctx, &GetRankingInput{})
	s.Require().NoError(err)
	s.Empty(output.Entries)
}
