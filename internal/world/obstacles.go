package world

import (
	"fmt"
	"math/rand"

	"chosenoffset.com/herobound/internal/core/geom"
)

// GenOptions controls obstacle generation
type GenOptions struct {
	Count       int     // Obstacles to place
	MinSize     float64 // Smallest width/height
	SizeRange   float64 // Width/height are drawn from [MinSize, MinSize+SizeRange)
	MaxAttempts int     // Candidates sampled before giving up; 0 = Count*1000
}

// GenerateObstacles places opts.Count random rectangles inside a
// worldW x worldH area, resampling any candidate that overlaps spawn.
// Obstacles may overlap one another.
func GenerateObstacles(rng *rand.Rand, worldW, worldH float64, spawn geom.Rect, opts GenOptions) ([]Obstacle, error) {
	switch {
	case opts.Count < 0:
		return nil, fmt.Errorf("%w: obstacle count %d", ErrInvalidArgument, opts.Count)
	case opts.MinSize <= 0 || opts.SizeRange < 0:
		return nil, fmt.Errorf("%w: obstacle size %v+%v", ErrInvalidArgument, opts.MinSize, opts.SizeRange)
	case worldW < opts.MinSize+opts.SizeRange || worldH < opts.MinSize+opts.SizeRange:
		return nil, fmt.Errorf("%w: %vx%v world cannot hold a %v obstacle",
			ErrInvalidArgument, worldW, worldH, opts.MinSize+opts.SizeRange)
	}

	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = max(opts.Count*1000, 1000)
	}

	obstacles := make([]Obstacle, 0, opts.Count)
	for attempts := 0; len(obstacles) < opts.Count; attempts++ {
		if attempts >= maxAttempts {
			return nil, fmt.Errorf("%w: placed %d of %d obstacles in %d attempts",
				ErrWorldTooDense, len(obstacles), opts.Count, maxAttempts)
		}

		w := opts.MinSize + rng.Float64()*opts.SizeRange
		h := opts.MinSize + rng.Float64()*opts.SizeRange
		rect := geom.Rect{
			X: rng.Float64() * (worldW - w),
			Y: rng.Float64() * (worldH - h),
			W: w,
			H: h,
		}
		if rect.Overlaps(spawn) {
			continue
		}

		kind := Boulder
		if rng.Float64() >= 0.5 {
			kind = Tree
		}
		cols, rows := kind.SheetGrid()
		obstacles = append(obstacles, Obstacle{
			Rect:        rect,
			Kind:        kind,
			SpriteIndex: rng.Intn(cols * rows),
		})
	}
	return obstacles, nil
}

// Populate replaces the world's obstacles with freshly generated ones that
// keep clear of the actor's current position.
func (w *World) Populate(rng *rand.Rand, opts GenOptions) error {
	obstacles, err := GenerateObstacles(rng, w.Width, w.Height, w.Actor.Bounds(), opts)
	if err != nil {
		return err
	}
	w.Obstacles = obstacles
	return nil
}
