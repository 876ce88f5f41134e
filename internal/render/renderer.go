package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrResourceUnavailable is returned when an image asset cannot be loaded.
// Callers are expected to fall back to placeholder art.
var ErrResourceUnavailable = errors.New("resource unavailable")

// ErrQuit is returned from Game.Update to end the game loop cleanly.
var ErrQuit = errors.New("quit")

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// game logic.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image
	NewImageFromImage(src image.Image) Image

	// Vector operations (for drawing shapes)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	StrokeRect(dst Image, x, y, width, height float32, strokeWidth float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image represents a renderable image surface that can be drawn to or drawn from.
// It abstracts the underlying image implementation.
type Image interface {
	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Sub-image extraction
	SubImage(r image.Rectangle) Image

	// Fill operations
	Fill(clr color.Color)
	Clear()

	// Drawing operations
	DrawImage(src Image, opts *DrawImageOptions)

	// Resource management
	Dispose()
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM GeoM
}

// GeoM represents a geometric transformation matrix.
type GeoM interface {
	// Translate shifts the image by (tx, ty).
	Translate(tx, ty float64)

	// Scale scales the image by (sx, sy).
	Scale(sx, sy float64)

	// Reset resets the matrix to identity.
	Reset()
}

// NewGeoM creates a new geometric transformation matrix.
// This is implemented by the specific renderer backend.
var NewGeoM func() GeoM

// InputManager handles input from the user.
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the walker listens to
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1 // Debug overlay toggle
	KeyEscape
)

// ResourceLoader handles loading resources like images from disk.
type ResourceLoader interface {
	// LoadImage loads an image ready for drawing.
	LoadImage(path string) (Image, error)

	// LoadSource decodes an image into memory without uploading it, so
	// callers can preprocess pixels first.
	LoadSource(path string) (image.Image, error)
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the window is closed.
	RunGame(game Game) error
}
