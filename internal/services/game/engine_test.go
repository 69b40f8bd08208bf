package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/calumh/ghostsnake/internal/dependencies/mocks"
	"github.com/calumh/ghostsnake/internal/model"
	"github.com/calumh/ghostsnake/internal/services/leaderboard"
	"github.com/calumh/ghostsnake/internal/storage/memory"
	"github.com/calumh/ghostsnake/internal/testutil"
)

type EngineSuite struct {
	suite.Suite
	storage     *memory.Storage
	clock       *mocks.MockClock
	random      *mocks.MockRandom
	leaderboard *leaderboard.Service
	engine      *Engine
	ctx         context.Context
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.leaderboard = leaderboard.New(s.storage, s.clock, testutil.NopLogger())
	s.engine = NewEngine(s.leaderboard, s.clock, s.random, Config{
		GridWidth:    10,
		GridHeight:   10,
		TickInterval: 10 * time.Millisecond,
	}, testutil.NopLogger())
	s.ctx = context.Background()
}

// NewGame tests

func (s *EngineSuite) TestNewGameInitialState() {
	g := s.engine.NewGame("alice")

	s.Equal("alice", g.Username)
	s.Equal([]model.Cell{{X: 5, Y: 5}}, g.Body)
	s.Equal(model.DirectionRight, g.Direction)
	s.Equal(0, g.Score)
	s.Equal(model.GamePhaseRunning, g.Phase)
	s.False(g.Contains(g.Food))
}

func (s *EngineSuite) TestNewGameFoodUsesRandomness() {
	s.random.QueueIntn(2, 7)

	g := s.engine.NewGame("alice")
	s.Equal(model.Cell{X: 2, Y: 7}, g.Food)
}

func (s *EngineSuite) TestZeroConfigFallsBackToDefaults() {
	engine := NewEngine(s.leaderboard, s.clock, s.random, Config{}, testutil.NopLogger())
	s.Equal(DefaultConfig(), engine.Config())
}

// Movement tests

func (s *EngineSuite) TestTickMovesRightWithoutGrowth() {
	g := s.engine.NewGame("alice")

	_, err := s.engine.Tick(s.ctx, g)
	s.Require().NoError(err)

	s.Equal(model.Cell{X: 6, Y: 5}, g.Head())
	s.Equal(1, g.Length())
	s.Equal(0, g.Score)
}

func (s *EngineSuite) TestTickMovesInEachTurnableDirection() {
	cases := []struct {
		dir  model.Direction
		want model.Cell
	}{
		{model.DirectionUp, model.Cell{X: 5, Y: 4}},
		{model.DirectionDown, model.Cell{X: 5, Y: 6}},
	}

	for _, tc := range cases {
		g := s.engine.NewGame("alice")
		s.engine.SetDirection(g, tc.dir)

		_, err := s.engine.Tick(s.ctx, g)
		s.Require().NoError(err)
		s.Equal(tc.want, g.Head(), "direction %s", tc.dir)
		s.Equal(1, g.Length())
	}
}

func (s *EngineSuite) TestPendingDirectionAppliesOnNextTickOnly() {
	g := s.engine.NewGame("alice")

	s.engine.SetDirection(g, model.DirectionDown)
	s.Equal(model.DirectionRight, g.Direction)

	_, err := s.engine.Tick(s.ctx, g)
	s.Require().NoError(err)
	s.Equal(model.DirectionDown, g.Direction)
	s.Equal(model.Cell{X: 5, Y: 6}, g.Head())
}

func (s *EngineSuite) TestReverseDirectionIsIgnored() {
	g := s.engine.NewGame("alice")

	// Moving right; an immediate left would reverse 180 degrees
	s.engine.SetDirection(g, model.DirectionLeft)

	_, err := s.engine.Tick(s.ctx, g)
	s.Require().NoError(err)
	s.Equal(model.DirectionRight, g.Direction)
	s.Equal(model.Cell{X: 6, Y: 5}, g.Head())
}

// Food tests

func (s *EngineSuite) TestEatingFoodGrowsAndScores() {
	g := s.engine.NewGame("alice")
	g.Food = model.Cell{X: 6, Y: 5}
	s.random.QueueIntn(1, 1)

	_, err := s.engine.Tick(s.ctx, g)
	s.Require().NoError(err)

	s.Equal(1, g.Score)
	s.Equal(2, g.Length())
	s.Equal(model.Cell{X: 6, Y: 5}, g.Head())
	s.Equal(model.Cell{X: 1, Y: 1}, g.Food)
}

func (s *EngineSuite) TestFoodNeverSpawnsOnBody() {
	g := s.engine.NewGame("alice")
	g.Food = model.Cell{X: 6, Y: 5}

	// First sample lands on the new head, second is free
	s.random.QueueIntn(6, 5, 2, 3)

	_, err := s.engine.Tick(s.ctx, g)
	s.Require().NoError(err)
	s.Equal(model.Cell{X: 2, Y: 3}, g.Food)
}

func (s *EngineSuite) TestFoodFallsBackToScanWhenSamplingRunsDry() {
	g := s.engine.NewGame("alice")
	g.Body = []model.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}
	g.Food = s.engine.placeFood(g)

	// Mock randomness returns (0,0) forever, which is occupied;
	// the scan should hand out the first free cell instead
	s.Equal(model.Cell{X: 2, Y: 0}, g.Food)
}

// Collision tests

func (s *EngineSuite) TestWallCollisionEndsGameAndRecordsScore() {
	g := s.engine.NewGame("alice")
	g.Body = []model.Cell{{X: 9, Y: 5}}
	g.Score = 3

	entry, err := s.engine.Tick(s.ctx, g)
	s.Require().NoError(err)

	s.Equal(model.GamePhaseCollided, g.Phase)
	s.Require().NotNil(entry)
	s.Equal("alice", entry.Username)
	s.Equal(3, entry.Score)
	s.Equal(s.clock.CurrentTime, entry.RecordedAt)

	scores, err := s.storage.ListScores(s.ctx)
	s.Require().NoError(err)
	s.Len(scores, 1)
}

func (s *EngineSuite) TestEveryWallIsTerminal() {
	cases := []struct {
		head model.Cell
		dir  model.Direction
	}{
		{model.Cell{X: 0, Y: 5}, model.DirectionLeft},
		{model.Cell{X: 9, Y: 5}, model.DirectionRight},
		{model.Cell{X: 5, Y: 0}, model.DirectionUp},
		{model.Cell{X: 5, Y: 9}, model.DirectionDown},
	}

	for _, tc := range cases {
		g := s.engine.NewGame("alice")
		g.Body = []model.Cell{tc.head}
		g.Direction = tc.dir
		g.PendingDirection = tc.dir

		entry, err := s.engine.Tick(s.ctx, g)
		s.Require().NoError(err)
		s.NotNil(entry, "direction %s", tc.dir)
		s.Equal(model.GamePhaseCollided, g.Phase)
	}
}

func (s *EngineSuite) TestCollisionRecordsZeroScore() {
	g := s.engine.NewGame("alice")
	g.Body = []model.Cell{{X: 9, Y: 5}}

	entry, err := s.engine.Tick(s.ctx, g)
	s.Require().NoError(err)
	s.Equal(0, entry.Score)
}

func (s *EngineSuite) TestTickAfterCollisionFails() {
	g := s.engine.NewGame("alice")
	g.Body = []model.Cell{{X: 9, Y: 5}}

	_, err := s.engine.Tick(s.ctx, g)
	s.Require().NoError(err)

	_, err = s.engine.Tick(s.ctx, g)
	s.ErrorIs(err, model.ErrGameComplete)
}

func (s *EngineSuite) TestSetDirectionIgnoredAfterCollision() {
	g := s.engine.NewGame("alice")
	g.Body = []model.Cell{{X: 9, Y: 5}}

	_, err := s.engine.Tick(s.ctx, g)
	s.Require().NoError(err)

	s.engine.SetDirection(g, model.DirectionUp)
	s.Equal(model.DirectionRight, g.PendingDirection)
}

func (s *EngineSuite) TestSelfCollisionDoesNotEndGame() {
	g := s.engine.NewGame("alice")

	// Head at (5,5) after moving down from (5,4); turning right steps onto
	// the snake's own tail cell (6,5)
	g.Body = []model.Cell{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 5}}
	g.Direction = model.DirectionDown
	g.PendingDirection = model.DirectionDown
	s.engine.SetDirection(g, model.DirectionRight)

	entry, err := s.engine.Tick(s.ctx, g)
	s.Require().NoError(err)

	s.Nil(entry)
	s.Equal(model.GamePhaseRunning, g.Phase)
	s.Equal(model.Cell{X: 6, Y: 5}, g.Head())
	s.Equal(4, g.Length())

	scores, err := s.storage.ListScores(s.ctx)
	s.Require().NoError(err)
	s.Empty(scores)
}
