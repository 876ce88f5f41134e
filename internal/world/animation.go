package world

import "time"

// Animation cycles the walk frame at a fixed rate regardless of how often
// the simulation ticks.
type Animation struct {
	Frame     int     // Current frame, 0..Frames-1
	Frames    int     // Frames per direction
	FrameRate float64 // Frames per second

	acc time.Duration
}

// NewAnimation creates an animation resting on frame 0
func NewAnimation(frames int, frameRate float64) Animation {
	return Animation{Frames: frames, FrameRate: frameRate}
}

// FrameDuration is how long one frame stays on screen
func (a *Animation) FrameDuration() time.Duration {
	if a.FrameRate <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / a.FrameRate)
}

// Pending returns the time accumulated toward the next frame
func (a *Animation) Pending() time.Duration {
	return a.acc
}

// Advance moves the animation forward by dt. While moving, the frame steps
// once the accumulator reaches one frame duration and the remainder is kept.
// When idle, the frame and the accumulator reset. Returns true when the frame
// changed to a new walk frame.
func (a *Animation) Advance(moving bool, dt time.Duration) bool {
	if !moving {
		a.Frame = 0
		a.acc = 0
		return false
	}

	frameDur := a.FrameDuration()
	if a.Frames <= 0 || frameDur <= 0 {
		return false
	}

	a.acc += dt
	if a.acc >= frameDur {
		a.Frame = (a.Frame + 1) % a.Frames
		a.acc -= frameDur
		return true
	}
	return false
}
