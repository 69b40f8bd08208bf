package ui

import (
	"context"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/calumh/ghostsnake/internal/factory"
	"github.com/calumh/ghostsnake/internal/model"
)

// Config holds window rendering parameters
type Config struct {
	CellSize int
}

// Run opens the game window and drives the loop for the given (already
// verified) user until the window is closed. The single UI thread owns both
// the tick timer and input; each tick is atomic, so closing the window at any
// point needs no rollback.
func Run(app *factory.App, username string, cfg Config) error {
	ctx := context.Background()
	gameCfg := app.Game.Config()

	cell := int32(cfg.CellSize)
	if cell <= 0 {
		cell = 20
	}

	r := newRenderer(cell, int32(gameCfg.GridWidth), int32(gameCfg.GridHeight))

	rl.InitWindow(r.windowWidth(), r.windowHeight(), "ghostsnake - "+username)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	g := app.Game.NewGame(username)
	best, err := app.Leaderboard.Best(ctx, username)
	if err != nil {
		return err
	}

	lastTick := time.Now()

	for !rl.WindowShouldClose() {
		if dir, ok := pressedDirection(); ok {
			app.Game.SetDirection(g, dir)
		}

		if g.Phase == model.GamePhaseRunning && time.Since(lastTick) >= gameCfg.TickInterval {
			lastTick = time.Now()
			entry, err := app.Game.Tick(ctx, g)
			if err != nil {
				return err
			}
			if entry != nil && entry.Score > best {
				best = entry.Score
			}
		}

		if g.Phase == model.GamePhaseCollided && rl.IsKeyPressed(rl.KeyR) {
			g = app.Game.NewGame(username)
			lastTick = time.Now()
		}

		r.draw(g, best)
	}

	return nil
}

// pressedDirection maps arrow keys and WASD to a direction
func pressedDirection() (model.Direction, bool) {
	switch {
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW):
		return model.DirectionUp, true
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS):
		return model.DirectionDown, true
	case rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA):
		return model.DirectionLeft, true
	case rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD):
		return model.DirectionRight, true
	}
	return 0, false
}
