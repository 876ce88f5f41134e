package world

import (
	"fmt"
	"time"

	"chosenoffset.com/herobound/internal/core/geom"
)

// Options configures a new World
type Options struct {
	Width, Height           float64
	ActorWidth, ActorHeight float64
	Speed                   float64
	Frames                  int
	FrameRate               float64
	TieBreak                TieBreak
}

// World owns the actor and every obstacle
type World struct {
	Width, Height float64
	Actor         Actor
	Obstacles     []Obstacle
	Anim          Animation
	TieBreak      TieBreak
}

// TickResult reports what happened during one tick
type TickResult struct {
	Moving        bool
	BlockedX      bool // Horizontal move rejected by an obstacle
	BlockedY      bool // Vertical move rejected by an obstacle
	FrameAdvanced bool
}

// New creates an empty world with the actor at its center, facing down
func New(opts Options) (*World, error) {
	switch {
	case opts.Width <= 0 || opts.Height <= 0:
		return nil, fmt.Errorf("%w: world size %vx%v", ErrInvalidArgument, opts.Width, opts.Height)
	case opts.ActorWidth <= 0 || opts.ActorHeight <= 0:
		return nil, fmt.Errorf("%w: actor size %vx%v", ErrInvalidArgument, opts.ActorWidth, opts.ActorHeight)
	case opts.Speed <= 0:
		return nil, fmt.Errorf("%w: actor speed %v", ErrInvalidArgument, opts.Speed)
	case opts.Frames <= 0 || opts.FrameRate <= 0:
		return nil, fmt.Errorf("%w: animation %d frames at %v fps", ErrInvalidArgument, opts.Frames, opts.FrameRate)
	}

	return &World{
		Width:  opts.Width,
		Height: opts.Height,
		Actor: Actor{
			X:     opts.Width / 2,
			Y:     opts.Height / 2,
			W:     opts.ActorWidth,
			H:     opts.ActorHeight,
			Speed: opts.Speed,
			Dir:   DirDown,
		},
		Anim:     NewAnimation(opts.Frames, opts.FrameRate),
		TieBreak: opts.TieBreak,
	}, nil
}

// Bounds returns the world rectangle
func (w *World) Bounds() geom.Rect {
	return geom.Rect{W: w.Width, H: w.Height}
}

// Blocked reports whether r overlaps any obstacle
func (w *World) Blocked(r geom.Rect) bool {
	for i := range w.Obstacles {
		if r.Overlaps(w.Obstacles[i].Rect) {
			return true
		}
	}
	return false
}

// Tick advances the simulation by one step.
//
// Left beats right and up beats down. When both axes are active the
// TieBreak picks the facing direction. X is moved and checked first using
// the current Y, then Y is moved and checked using the committed X, so a
// diagonal move into a wall slides along the free axis.
func (w *World) Tick(in Input, dt time.Duration) TickResult {
	a := &w.Actor

	hDir, hActive := horizontal(in)
	vDir, vActive := vertical(in)

	a.DX, a.DY = 0, 0
	if hActive {
		a.DX = a.Speed
		if hDir == DirLeft {
			a.DX = -a.Speed
		}
	}
	if vActive {
		a.DY = a.Speed
		if vDir == DirUp {
			a.DY = -a.Speed
		}
	}

	switch {
	case hActive && vActive:
		if w.TieBreak == HorizontalWins {
			a.Dir = hDir
		} else {
			a.Dir = vDir
		}
	case hActive:
		a.Dir = hDir
	case vActive:
		a.Dir = vDir
	}

	res := TickResult{Moving: hActive || vActive}
	a.Moving = res.Moving
	res.FrameAdvanced = w.Anim.Advance(res.Moving, dt)

	if a.DX != 0 {
		if w.Blocked(a.Bounds().Translate(a.DX, 0)) {
			res.BlockedX = true
		} else {
			a.X += a.DX
		}
	}
	if a.DY != 0 {
		if w.Blocked(a.Bounds().Translate(0, a.DY)) {
			res.BlockedY = true
		} else {
			a.Y += a.DY
		}
	}

	return res
}

// Camera returns the top-left corner of a viewW x viewH viewport centered
// on the actor.
func (w *World) Camera(viewW, viewH float64) geom.Point {
	return geom.Point{
		X: w.Actor.X - viewW/2 + w.Actor.W/2,
		Y: w.Actor.Y - viewH/2 + w.Actor.H/2,
	}
}

func horizontal(in Input) (Direction, bool) {
	switch {
	case in.Left:
		return DirLeft, true
	case in.Right:
		return DirRight, true
	}
	return DirDown, false
}

func vertical(in Input) (Direction, bool) {
	switch {
	case in.Up:
		return DirUp, true
	case in.Down:
		return DirDown, true
	}
	return DirDown, false
}
