package model

import "time"

// Direction is a snake movement direction on the grid
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Delta returns the per-tick cell offset for the direction.
// The grid origin is top-left, so up decreases Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the 180-degree reverse of the direction
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	default:
		return DirectionLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	default:
		return "right"
	}
}

// Cell is a position on the game grid
type Cell struct {
	X int
	Y int
}

// Step returns the neighbouring cell in the given direction
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// GamePhase represents the current phase of a game
type GamePhase string

const (
	GamePhaseRunning  GamePhase = "running"
	GamePhaseCollided GamePhase = "collided" // terminal
)

// Game is the state of one snake run. Created at game start, mutated each
// tick, terminal once Phase is GamePhaseCollided.
type Game struct {
	Username string

	// Body holds the occupied cells, head first
	Body []Cell

	// Direction is the direction applied on the last tick;
	// PendingDirection is what the next tick will use
	Direction        Direction
	PendingDirection Direction

	Food  Cell
	Score int
	Phase GamePhase

	StartedAt time.Time
	UpdatedAt time.Time
}

// Head returns the head cell
func (g *Game) Head() Cell {
	return g.Body[0]
}

// Length returns the number of cells the snake occupies
func (g *Game) Length() int {
	return len(g.Body)
}

// Contains reports whether the snake body occupies the given cell
func (g *Game) Contains(c Cell) bool {
	for _, b := range g.Body {
		if b == c {
			return true
		}
	}
	return false
}
