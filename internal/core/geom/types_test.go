package geom

import "testing"

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 100, Y: 100, W: 50, H: 50}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"contained", Rect{X: 110, Y: 110, W: 10, H: 10}, true},
		{"partial", Rect{X: 140, Y: 140, W: 50, H: 50}, true},
		{"touching right edge", Rect{X: 150, Y: 100, W: 10, H: 10}, false},
		{"touching left edge", Rect{X: 90, Y: 100, W: 10, H: 10}, false},
		{"touching bottom edge", Rect{X: 100, Y: 150, W: 10, H: 10}, false},
		{"touching top edge", Rect{X: 100, Y: 90, W: 10, H: 10}, false},
		{"far away", Rect{X: 500, Y: 500, W: 10, H: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps(%v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %v", tt.other)
			}
		})
	}
}

func TestRectTranslateAndCenter(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	moved := r.Translate(5, -5)
	if moved.X != 15 || moved.Y != 15 || moved.W != 30 || moved.H != 40 {
		t.Errorf("Expected (15, 15, 30, 40), got %v", moved)
	}

	c := r.Center()
	if c.X != 25 || c.Y != 40 {
		t.Errorf("Expected center (25, 40), got (%v, %v)", c.X, c.Y)
	}
}
