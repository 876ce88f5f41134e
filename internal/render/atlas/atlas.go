// Package atlas cuts sprite sheets into evenly sized cells.
package atlas

import (
	"fmt"
	"image"

	"chosenoffset.com/herobound/internal/render"
)

// Sheet is an image laid out as a Cols x Rows grid of cells, indexed
// row-major from the top-left.
type Sheet struct {
	Image render.Image
	Cols  int
	Rows  int
}

// New wraps img as a cols x rows sheet
func New(img render.Image, cols, rows int) (*Sheet, error) {
	if img == nil {
		return nil, fmt.Errorf("sheet image is nil")
	}
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("invalid sheet grid: %dx%d", cols, rows)
	}
	w, h := img.Size()
	if w < cols || h < rows {
		return nil, fmt.Errorf("%dx%d image is too small for a %dx%d grid", w, h, cols, rows)
	}
	return &Sheet{Image: img, Cols: cols, Rows: rows}, nil
}

// Len returns the number of cells
func (s *Sheet) Len() int {
	return s.Cols * s.Rows
}

// CellSize returns the pixel size of one cell. Leftover pixels at the right
// and bottom edges are never part of a cell.
func (s *Sheet) CellSize() (w, h int) {
	iw, ih := s.Image.Size()
	return iw / s.Cols, ih / s.Rows
}

// CellRectAt returns the bounds of the cell at col, row
func (s *Sheet) CellRectAt(col, row int) image.Rectangle {
	b := s.Image.Bounds()
	w, h := s.CellSize()
	x := b.Min.X + col*w
	y := b.Min.Y + row*h
	return image.Rect(x, y, x+w, y+h)
}

// CellRect returns the bounds of cell index. Indices wrap around the grid.
func (s *Sheet) CellRect(index int) image.Rectangle {
	index %= s.Len()
	if index < 0 {
		index += s.Len()
	}
	return s.CellRectAt(index%s.Cols, index/s.Cols)
}

// Cell returns the sub-image for cell index
func (s *Sheet) Cell(index int) render.Image {
	return s.Image.SubImage(s.CellRect(index))
}

// CellAt returns the sub-image for the cell at col, row
func (s *Sheet) CellAt(col, row int) render.Image {
	return s.Image.SubImage(s.CellRectAt(col, row))
}
