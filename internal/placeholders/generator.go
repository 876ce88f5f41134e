// Package placeholders draws stand-in sprite sheets for the walker. They are
// used at runtime when the real art is missing and can be written to disk
// with cmd/genplaceholders.
package placeholders

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

const (
	// CellSize is the side of one boulder or tree cell
	CellSize = 32

	// ActorFrameWidth and ActorFrameHeight are the size of one walk frame
	ActorFrameWidth  = 32
	ActorFrameHeight = 48

	// ActorCols is the number of walk frames per direction, ActorRows the
	// number of directions (down, up, left, right)
	ActorCols = 4
	ActorRows = 4
)

// ColorPalette defines the colors used by the placeholder art
var ColorPalette = struct {
	// Ground
	Grass color.RGBA

	// Obstacles
	Boulder     color.RGBA
	TreeCanopy  color.RGBA
	TreeTrunk   color.RGBA
	SheetBorder color.RGBA

	// Actor
	ActorBody   color.RGBA
	ActorHead   color.RGBA
	ActorLegs   color.RGBA
	ActorFacing color.RGBA
	KeyWhite    color.RGBA
}{
	Grass: color.RGBA{144, 238, 144, 255}, // Light green

	Boulder:     color.RGBA{128, 124, 118, 255},
	TreeCanopy:  color.RGBA{46, 125, 50, 255},
	TreeTrunk:   color.RGBA{101, 67, 33, 255},
	SheetBorder: color.RGBA{0, 0, 0, 0},

	ActorBody:   color.RGBA{40, 90, 200, 255},
	ActorHead:   color.RGBA{240, 200, 160, 255},
	ActorLegs:   color.RGBA{60, 45, 30, 255},
	ActorFacing: color.RGBA{255, 215, 0, 255}, // Marker on the facing side
	KeyWhite:    color.RGBA{255, 255, 255, 255},
}

// CreateSolidCell creates a w x h image filled with one color
func CreateSolidCell(w, h int, col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateBoulder draws a shaded rock. Variant shifts the shading so sheet
// cells are distinguishable.
func CreateBoulder(variant int) *image.RGBA {
	img := CreateSolidCell(CellSize, CellSize, color.RGBA{})

	base := Darken(ColorPalette.Boulder, 0.8+0.04*float64(variant%5))
	highlight := Lighten(base, 0.3)
	outline := Darken(base, 0.5)

	center := CellSize / 2
	radius := CellSize/2 - 2 - variant%3
	for y := 0; y < CellSize; y++ {
		for x := 0; x < CellSize; x++ {
			dx := x - center
			dy := (y - center) * 5 / 4 // Squash into a rounded lump
			distSq := dx*dx + dy*dy

			switch {
			case distSq <= (radius-3)*(radius-3) && dx < 0 && dy < 0:
				img.Set(x, y, highlight)
			case distSq <= radius*radius:
				img.Set(x, y, base)
			case distSq <= (radius+1)*(radius+1):
				img.Set(x, y, outline)
			}
		}
	}
	return img
}

// CreateTree draws a round canopy on a trunk
func CreateTree(variant int) *image.RGBA {
	img := CreateSolidCell(CellSize, CellSize, color.RGBA{})

	canopy := Darken(ColorPalette.TreeCanopy, 0.8+0.05*float64(variant%5))
	outline := Darken(canopy, 0.6)

	// Trunk
	trunkW := 6
	for y := CellSize * 2 / 3; y < CellSize; y++ {
		for x := CellSize/2 - trunkW/2; x < CellSize/2+trunkW/2; x++ {
			img.Set(x, y, ColorPalette.TreeTrunk)
		}
	}

	// Canopy
	cx, cy := CellSize/2, CellSize/2-3
	radius := CellSize/2 - 3 - variant%2
	for y := 0; y < CellSize; y++ {
		for x := 0; x < CellSize; x++ {
			dx, dy := x-cx, y-cy
			distSq := dx*dx + dy*dy
			if distSq <= radius*radius {
				img.Set(x, y, canopy)
			} else if distSq <= (radius+1)*(radius+1) {
				img.Set(x, y, outline)
			}
		}
	}
	return img
}

// CreateActorFrame draws one walk frame on a white background. row is the
// facing direction (0 down, 1 up, 2 left, 3 right); frame is the step.
func CreateActorFrame(row, frame int) *image.RGBA {
	img := CreateSolidCell(ActorFrameWidth, ActorFrameHeight, ColorPalette.KeyWhite)

	fill := func(x0, y0, x1, y1 int, col color.RGBA) {
		draw.Draw(img, image.Rect(x0, y0, x1, y1), &image.Uniform{col}, image.Point{}, draw.Src)
	}

	// Head and body
	fill(10, 4, 22, 16, ColorPalette.ActorHead)
	fill(8, 16, 24, 34, ColorPalette.ActorBody)

	// Legs alternate with the frame
	stride := []int{0, 3, 0, -3}[frame%4]
	fill(10, 34, 15, 44+stride, ColorPalette.ActorLegs)
	fill(17, 34, 22, 44-stride, ColorPalette.ActorLegs)

	// Facing marker
	switch row {
	case 0: // down: eyes
		fill(12, 9, 14, 11, ColorPalette.ActorFacing)
		fill(18, 9, 20, 11, ColorPalette.ActorFacing)
	case 1: // up: no face, marker on the back of the head
		fill(14, 4, 18, 6, ColorPalette.ActorFacing)
	case 2: // left
		fill(10, 9, 12, 11, ColorPalette.ActorFacing)
	case 3: // right
		fill(20, 9, 22, 11, ColorPalette.ActorFacing)
	}
	return img
}

// CreateSheet lays out cells of cellW x cellH into a grid with the given
// number of columns.
func CreateSheet(cells []*image.RGBA, columns, cellW, cellH int) *image.RGBA {
	rows := (len(cells) + columns - 1) / columns
	sheet := image.NewRGBA(image.Rect(0, 0, columns*cellW, rows*cellH))
	draw.Draw(sheet, sheet.Bounds(), &image.Uniform{ColorPalette.SheetBorder}, image.Point{}, draw.Src)

	for i, cell := range cells {
		if cell == nil {
			continue
		}
		x := (i % columns) * cellW
		y := (i / columns) * cellH
		draw.Draw(sheet, image.Rect(x, y, x+cellW, y+cellH), cell, image.Point{}, draw.Src)
	}
	return sheet
}

// GenerateActorSheet builds the 4x4 character sheet (rows are directions)
func GenerateActorSheet() *image.RGBA {
	cells := make([]*image.RGBA, 0, ActorCols*ActorRows)
	for row := 0; row < ActorRows; row++ {
		for frame := 0; frame < ActorCols; frame++ {
			cells = append(cells, CreateActorFrame(row, frame))
		}
	}
	return CreateSheet(cells, ActorCols, ActorFrameWidth, ActorFrameHeight)
}

// GenerateBoulderSheet builds a cols x rows sheet of boulder variants
func GenerateBoulderSheet(cols, rows int) *image.RGBA {
	cells := make([]*image.RGBA, cols*rows)
	for i := range cells {
		cells[i] = CreateBoulder(i)
	}
	return CreateSheet(cells, cols, CellSize, CellSize)
}

// GenerateTreeSheet builds a cols x rows sheet of tree variants
func GenerateTreeSheet(cols, rows int) *image.RGBA {
	cells := make([]*image.RGBA, cols*rows)
	for i := range cells {
		cells[i] = CreateTree(i)
	}
	return CreateSheet(cells, cols, CellSize, CellSize)
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
