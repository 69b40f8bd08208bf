package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/calumh/ghostsnake/internal/dependencies/clock"
	"github.com/calumh/ghostsnake/internal/dependencies/random"
	"github.com/calumh/ghostsnake/internal/model"
	"github.com/calumh/ghostsnake/internal/services/leaderboard"
)

// Config holds game-loop parameters
type Config struct {
	GridWidth  int
	GridHeight int
	// TickInterval is the wall-clock time between ticks. The engine itself
	// is pull-based; the caller's loop owns the timer.
	TickInterval time.Duration
}

// DefaultConfig returns the standard grid and tick rate
func DefaultConfig() Config {
	return Config{
		GridWidth:    30,
		GridHeight:   20,
		TickInterval: 90 * time.Millisecond,
	}
}

// Engine advances snake games tick by tick and reports terminal scores to the
// leaderboard. Games move through exactly one transition: Running -> Collided.
type Engine struct {
	leaderboard *leaderboard.Service
	clock       clock.Clock
	random      random.Random
	cfg         Config
	logger      *slog.Logger
}

// NewEngine creates a new game Engine. Zero-valued config fields fall back to
// DefaultConfig.
func NewEngine(
	leaderboard *leaderboard.Service,
	clock clock.Clock,
	random random.Random,
	cfg Config,
	logger *slog.Logger,
) *Engine {
	def := DefaultConfig()
	if cfg.GridWidth <= 0 {
		cfg.GridWidth = def.GridWidth
	}
	if cfg.GridHeight <= 0 {
		cfg.GridHeight = def.GridHeight
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = def.TickInterval
	}

	return &Engine{
		leaderboard: leaderboard,
		clock:       clock,
		random:      random,
		cfg:         cfg,
		logger:      logger,
	}
}

// Config returns the engine's effective configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// NewGame starts a game for the given user: a length-1 snake at the grid
// center moving right, with food placed off the body.
func (e *Engine) NewGame(username string) *model.Game {
	now := e.clock.Now()

	g := &model.Game{
		Username:         username,
		Body:             []model.Cell{{X: e.cfg.GridWidth / 2, Y: e.cfg.GridHeight / 2}},
		Direction:        model.DirectionRight,
		PendingDirection: model.DirectionRight,
		Phase:            model.GamePhaseRunning,
		StartedAt:        now,
		UpdatedAt:        now,
	}
	g.Food = e.placeFood(g)

	e.logger.Info("game started",
		slog.String("username", username),
		slog.Int("grid_width", e.cfg.GridWidth),
		slog.Int("grid_height", e.cfg.GridHeight),
	)

	return g
}

// SetDirection records the direction for the next tick. A direction that is
// the exact reverse of the current one is ignored.
func (e *Engine) SetDirection(g *model.Game, dir model.Direction) {
	if g.Phase != model.GamePhaseRunning {
		return
	}
	if dir == g.Direction.Opposite() {
		return
	}
	g.PendingDirection = dir
}

// Tick advances the game by one step. On wall collision the game transitions
// to Collided, the final score is recorded, and the new entry is returned.
// Ticking a collided game returns model.ErrGameComplete.
//
// The snake crossing its own body is allowed: only walls end the game.
func (e *Engine) Tick(ctx context.Context, g *model.Game) (*model.ScoreEntry, error) {
	if g.Phase == model.GamePhaseCollided {
		return nil, model.ErrGameComplete
	}

	g.Direction = g.PendingDirection
	next := g.Head().Step(g.Direction)
	g.UpdatedAt = e.clock.Now()

	if next.X < 0 || next.X >= e.cfg.GridWidth || next.Y < 0 || next.Y >= e.cfg.GridHeight {
		g.Phase = model.GamePhaseCollided

		e.logger.Info("wall collision",
			slog.String("username", g.Username),
			slog.Int("score", g.Score),
			slog.Int("length", g.Length()),
		)

		return e.leaderboard.Record(ctx, g.Username, g.Score)
	}

	g.Body = append([]model.Cell{next}, g.Body...)
	if next == g.Food {
		// Growth: keep the tail, bump the score, respawn food
		g.Score++
		g.Food = e.placeFood(g)
	} else {
		g.Body = g.Body[:len(g.Body)-1]
	}

	return nil, nil
}

// placeFood picks a cell off the snake body. Rejection sampling is bounded so
// mocked randomness that runs dry cannot spin; after that the first free cell
// in scan order is used.
func (e *Engine) placeFood(g *model.Game) model.Cell {
	for attempts := 0; attempts < e.cfg.GridWidth*e.cfg.GridHeight; attempts++ {
		c := model.Cell{X: e.random.Intn(e.cfg.GridWidth), Y: e.random.Intn(e.cfg.GridHeight)}
		if !g.Contains(c) {
			return c
		}
	}

	for y := 0; y < e.cfg.GridHeight; y++ {
		for x := 0; x < e.cfg.GridWidth; x++ {
			c := model.Cell{X: x, Y: y}
			if !g.Contains(c) {
				return c
			}
		}
	}

	// Snake fills the grid; unreachable at these grid sizes
	return model.Cell{}
}
