package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/calumh/ghostsnake/internal/model"
)

const hudHeight = 40

// Palette
var (
	background = rl.NewColor(10, 10, 10, 255)
	gridLine   = rl.NewColor(17, 17, 17, 255)
	headColor  = rl.NewColor(57, 255, 20, 255)
	bodyColor  = rl.NewColor(11, 139, 0, 255)
	foodColor  = rl.NewColor(255, 65, 54, 255)
	overColor  = rl.NewColor(255, 51, 51, 255)
)

// renderer draws the grid, snake, food, HUD and game-over overlay
type renderer struct {
	cellSize int32
	gridW    int32
	gridH    int32
}

func newRenderer(cellSize, gridW, gridH int32) *renderer {
	return &renderer{cellSize: cellSize, gridW: gridW, gridH: gridH}
}

func (r *renderer) windowWidth() int32 {
	return r.gridW * r.cellSize
}

func (r *renderer) windowHeight() int32 {
	return r.gridH*r.cellSize + hudHeight
}

func (r *renderer) draw(g *model.Game, best int) {
	rl.BeginDrawing()
	rl.ClearBackground(background)

	r.drawGrid()
	r.drawCell(g.Food, foodColor)
	for i, c := range g.Body {
		if i == 0 {
			r.drawCell(c, headColor)
		} else {
			r.drawCell(c, bodyColor)
		}
	}

	r.drawHUD(g, best)
	if g.Phase == model.GamePhaseCollided {
		r.drawGameOver(g, best)
	}

	rl.EndDrawing()
}

func (r *renderer) drawGrid() {
	for x := int32(0); x < r.gridW; x++ {
		for y := int32(0); y < r.gridH; y++ {
			rl.DrawRectangleLines(x*r.cellSize, y*r.cellSize, r.cellSize, r.cellSize, gridLine)
		}
	}
}

func (r *renderer) drawCell(c model.Cell, color rl.Color) {
	rl.DrawRectangle(int32(c.X)*r.cellSize, int32(c.Y)*r.cellSize, r.cellSize, r.cellSize, color)
}

func (r *renderer) drawHUD(g *model.Game, best int) {
	text := fmt.Sprintf("%s  Score: %d  Best: %d", g.Username, g.Score, best)
	rl.DrawText(text, 10, r.gridH*r.cellSize+10, 20, headColor)
}

func (r *renderer) drawGameOver(g *model.Game, best int) {
	centerX := r.windowWidth() / 2
	centerY := r.gridH * r.cellSize / 2

	title := "GAME OVER"
	titleWidth := rl.MeasureText(title, 40)
	rl.DrawText(title, centerX-titleWidth/2, centerY-50, 40, overColor)

	score := fmt.Sprintf("%s  Score: %d  (Best: %d)", g.Username, g.Score, best)
	scoreWidth := rl.MeasureText(score, 20)
	rl.DrawText(score, centerX-scoreWidth/2, centerY, 20, headColor)

	hint := "press R to retry"
	hintWidth := rl.MeasureText(hint, 20)
	rl.DrawText(hint, centerX-hintWidth/2, centerY+30, 20, rl.Gray)
}
