// Package world simulates a single actor walking around a rectangular world
// scattered with static obstacles. It has no notion of how anything is drawn;
// the game package reads the state after each tick and renders it.
package world

import (
	"errors"
	"fmt"

	"chosenoffset.com/herobound/internal/core/geom"
)

// Sentinel errors for world construction and obstacle generation
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrWorldTooDense   = errors.New("world too dense")
)

// Direction is the way the actor faces. The numeric values match the row
// order of the character sprite sheet.
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

// String returns a lowercase name for the direction
func (d Direction) String() string {
	switch d {
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Input is a snapshot of the directional controls held during one tick
type Input struct {
	Up, Down, Left, Right bool
}

// Any reports whether any directional control is held
func (in Input) Any() bool {
	return in.Up || in.Down || in.Left || in.Right
}

// TieBreak decides which axis sets the facing direction when both a
// horizontal and a vertical control are held.
type TieBreak int

const (
	VerticalWins TieBreak = iota
	HorizontalWins
)

// ParseTieBreak maps a config value to a TieBreak
func ParseTieBreak(s string) (TieBreak, error) {
	switch s {
	case "", "vertical":
		return VerticalWins, nil
	case "horizontal":
		return HorizontalWins, nil
	default:
		return VerticalWins, fmt.Errorf("%w: unknown tie break %q", ErrInvalidArgument, s)
	}
}

// Actor is the user controlled walker. X and Y are the top-left corner.
type Actor struct {
	X, Y   float64
	W, H   float64
	Speed  float64
	DX, DY float64 // Velocity applied on the last tick
	Dir    Direction
	Moving bool
}

// Bounds returns the actor's bounding box
func (a *Actor) Bounds() geom.Rect {
	return geom.Rect{X: a.X, Y: a.Y, W: a.W, H: a.H}
}

// ObstacleKind selects which sprite sheet an obstacle is drawn from
type ObstacleKind int

const (
	Boulder ObstacleKind = iota
	Tree
)

// String returns the kind name
func (k ObstacleKind) String() string {
	if k == Tree {
		return "tree"
	}
	return "boulder"
}

// SheetGrid returns the column and row count of the kind's sprite sheet
func (k ObstacleKind) SheetGrid() (cols, rows int) {
	if k == Tree {
		return 5, 5
	}
	return 5, 6
}

// Obstacle is a static rectangle that blocks movement
type Obstacle struct {
	geom.Rect
	Kind        ObstacleKind
	SpriteIndex int // Cell within the kind's sprite sheet
}
