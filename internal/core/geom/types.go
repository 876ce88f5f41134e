// Package geom holds the small set of 2D primitives shared by the world
// simulation and the renderer.
package geom

// Point represents a 2D point in world space
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Extent
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether two rectangles share any interior area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return !(r.Right() <= o.X ||
		r.X >= o.Right() ||
		r.Bottom() <= o.Y ||
		r.Y >= o.Bottom())
}

// Translate returns the rectangle moved by (dx, dy)
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Center returns the center point of the rectangle
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}
