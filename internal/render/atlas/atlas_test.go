package atlas

import (
	"image"
	"image/color"
	"testing"

	"chosenoffset.com/herobound/internal/render"
)

type fakeImage struct {
	bounds image.Rectangle
}

func (i *fakeImage) Bounds() image.Rectangle { return i.bounds }
func (i *fakeImage) Size() (int, int)        { return i.bounds.Dx(), i.bounds.Dy() }
func (i *fakeImage) SubImage(r image.Rectangle) render.Image {
	return &fakeImage{bounds: r.Intersect(i.bounds)}
}
func (i *fakeImage) Fill(color.Color)                                  {}
func (i *fakeImage) Clear()                                            {}
func (i *fakeImage) Dispose()                                          {}
func (i *fakeImage) DrawImage(render.Image, *render.DrawImageOptions) {}

func TestNewValidatesGrid(t *testing.T) {
	img := &fakeImage{bounds: image.Rect(0, 0, 160, 192)}
	tests := []struct {
		name       string
		img        render.Image
		cols, rows int
		wantErr    bool
	}{
		{"boulder grid", img, 5, 6, false},
		{"nil image", nil, 5, 6, true},
		{"zero cols", img, 0, 6, true},
		{"too small", &fakeImage{bounds: image.Rect(0, 0, 3, 3)}, 5, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.img, tt.cols, tt.rows)
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCellRect(t *testing.T) {
	s, err := New(&fakeImage{bounds: image.Rect(0, 0, 160, 192)}, 5, 6)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if w, h := s.CellSize(); w != 32 || h != 32 {
		t.Fatalf("Expected 32x32 cells, got %dx%d", w, h)
	}
	if s.Len() != 30 {
		t.Errorf("Expected 30 cells, got %d", s.Len())
	}

	tests := []struct {
		index int
		want  image.Rectangle
	}{
		{0, image.Rect(0, 0, 32, 32)},
		{4, image.Rect(128, 0, 160, 32)},
		{5, image.Rect(0, 32, 32, 64)},
		{29, image.Rect(128, 160, 160, 192)},
		{30, image.Rect(0, 0, 32, 32)}, // Wraps
		{-1, image.Rect(128, 160, 160, 192)},
	}
	for _, tt := range tests {
		if got := s.CellRect(tt.index); got != tt.want {
			t.Errorf("CellRect(%d): expected %v, got %v", tt.index, tt.want, got)
		}
	}
}

func TestCellRespectsSubImageOrigin(t *testing.T) {
	// A sheet that is itself a sub-image keeps its offset
	s, err := New(&fakeImage{bounds: image.Rect(100, 50, 228, 242)}, 4, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	got := s.CellAt(1, 2).Bounds()
	want := image.Rect(132, 146, 164, 194)
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestLeftoverPixelsIgnored(t *testing.T) {
	s, err := New(&fakeImage{bounds: image.Rect(0, 0, 103, 100)}, 4, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if w, h := s.CellSize(); w != 25 || h != 25 {
		t.Errorf("Expected 25x25 cells, got %dx%d", w, h)
	}
	if got := s.Cell(3).Bounds(); got != image.Rect(75, 0, 100, 25) {
		t.Errorf("Expected last column to end at 100, got %v", got)
	}
}
