package ebiten

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/herobound/internal/render"
)

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct{}

func init() {
	render.NewGeoM = func() render.GeoM {
		return NewGeoM()
	}
}

// NewRenderer creates a new Ebiten-based renderer.
func NewRenderer() render.Renderer {
	return &EbitenRenderer{}
}

// NewImage creates a new image with the given dimensions.
func (r *EbitenRenderer) NewImage(width, height int) render.Image {
	return &EbitenImage{img: ebiten.NewImage(width, height)}
}

// NewImageFromImage uploads a decoded image.
func (r *EbitenRenderer) NewImageFromImage(src image.Image) render.Image {
	return &EbitenImage{img: ebiten.NewImageFromImage(src)}
}

// FillRect draws a filled rectangle on the destination image.
func (r *EbitenRenderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	vector.DrawFilledRect(dst.(*EbitenImage).img, x, y, width, height, clr, false)
}

// StrokeRect draws a rectangle outline on the destination image.
func (r *EbitenRenderer) StrokeRect(dst render.Image, x, y, width, height float32, strokeWidth float32, clr color.Color) {
	vector.StrokeRect(dst.(*EbitenImage).img, x, y, width, height, strokeWidth, clr, false)
}

// FillCircle draws a filled circle on the destination image.
func (r *EbitenRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(dst.(*EbitenImage).img, x, y, radius, clr, true)
}

// DrawText draws text on the destination image using the debug font.
// Color and scale are ignored; the debug font is always white and fixed size.
func (r *EbitenRenderer) DrawText(dst render.Image, str string, x, y int, clr color.Color, scale float64) {
	ebitenutil.DebugPrintAt(dst.(*EbitenImage).img, str, x, y)
}

// MeasureText approximates text size from the debug font's 6x16 glyph cell.
func (r *EbitenRenderer) MeasureText(str string, scale float64) (width, height int) {
	return int(float64(len(str)) * 6 * scale), int(16 * scale)
}

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Bounds returns the bounds of the image.
func (i *EbitenImage) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// SubImage returns a sub-image of the image.
func (i *EbitenImage) SubImage(r image.Rectangle) render.Image {
	return &EbitenImage{img: i.img.SubImage(r).(*ebiten.Image)}
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// Clear clears the image to transparent.
func (i *EbitenImage) Clear() {
	i.img.Clear()
}

// Dispose releases the image resources.
func (i *EbitenImage) Dispose() {
	if i.img != nil {
		i.img.Dispose()
	}
}

// DrawImage draws the source image onto this image.
func (i *EbitenImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	srcImg := src.(*EbitenImage).img

	if opts == nil {
		i.img.DrawImage(srcImg, nil)
		return
	}

	ebitenOpts := &ebiten.DrawImageOptions{}
	if opts.GeoM != nil {
		ebitenOpts.GeoM = opts.GeoM.(*EbitenGeoM).geoM
	}
	i.img.DrawImage(srcImg, ebitenOpts)
}

// EbitenGeoM wraps ebiten's GeoM to implement the render.GeoM interface.
type EbitenGeoM struct {
	geoM ebiten.GeoM
}

// NewGeoM creates a new geometric transformation matrix.
func NewGeoM() render.GeoM {
	return &EbitenGeoM{}
}

// Translate shifts the image by (tx, ty).
func (g *EbitenGeoM) Translate(tx, ty float64) {
	g.geoM.Translate(tx, ty)
}

// Scale scales the image by (sx, sy).
func (g *EbitenGeoM) Scale(sx, sy float64) {
	g.geoM.Scale(sx, sy)
}

// Reset resets the matrix to identity.
func (g *EbitenGeoM) Reset() {
	g.geoM.Reset()
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyPressed returns whether the specified key is currently pressed.
func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && ebiten.IsKeyPressed(k)
}

// IsKeyJustPressed returns whether the specified key was just pressed this frame.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && inpututil.IsKeyJustPressed(k)
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) (ebiten.Key, bool) {
	switch key {
	case render.KeyW:
		return ebiten.KeyW, true
	case render.KeyA:
		return ebiten.KeyA, true
	case render.KeyS:
		return ebiten.KeyS, true
	case render.KeyD:
		return ebiten.KeyD, true
	case render.KeyUp:
		return ebiten.KeyArrowUp, true
	case render.KeyDown:
		return ebiten.KeyArrowDown, true
	case render.KeyLeft:
		return ebiten.KeyArrowLeft, true
	case render.KeyRight:
		return ebiten.KeyArrowRight, true
	case render.KeyF1:
		return ebiten.KeyF1, true
	case render.KeyEscape:
		return ebiten.KeyEscape, true
	default:
		return 0, false
	}
}

// EbitenResourceLoader implements the ResourceLoader interface using Ebiten.
type EbitenResourceLoader struct{}

// NewResourceLoader creates a new Ebiten-based resource loader.
func NewResourceLoader() render.ResourceLoader {
	return &EbitenResourceLoader{}
}

// LoadImage loads an image from the specified file path.
func (l *EbitenResourceLoader) LoadImage(path string) (render.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, unavailable(path, err)
	}
	return &EbitenImage{img: img}, nil
}

// LoadSource decodes an image file without creating a GPU texture.
func (l *EbitenResourceLoader) LoadSource(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, unavailable(path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, unavailable(path, err)
	}
	return img, nil
}

func unavailable(path string, err error) error {
	if errors.Is(err, render.ErrResourceUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", render.ErrResourceUnavailable, path, err)
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	err := ebiten.RunGame(&gameAdapter{game: game})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	err := a.game.Update()
	if errors.Is(err, render.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
