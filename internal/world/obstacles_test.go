package world

import (
	"errors"
	"math/rand"
	"testing"

	"chosenoffset.com/herobound/internal/core/geom"
)

func TestGenerateObstaclesRespectsSpawnAndBounds(t *testing.T) {
	spawn := geom.Rect{X: 1000, Y: 1000, W: 40, H: 60}
	opts := GenOptions{Count: 50, MinSize: 50, SizeRange: 150}

	obstacles, err := GenerateObstacles(rand.New(rand.NewSource(42)), 2000, 2000, spawn, opts)
	if err != nil {
		t.Fatalf("GenerateObstacles failed: %v", err)
	}
	if len(obstacles) != 50 {
		t.Fatalf("Expected 50 obstacles, got %d", len(obstacles))
	}

	world := geom.Rect{W: 2000, H: 2000}
	for i, o := range obstacles {
		if o.Overlaps(spawn) {
			t.Errorf("Obstacle %d overlaps the spawn rectangle", i)
		}
		if o.W < 50 || o.W >= 200 || o.H < 50 || o.H >= 200 {
			t.Errorf("Obstacle %d has size %vx%v outside [50, 200)", i, o.W, o.H)
		}
		if o.X < world.X || o.Y < world.Y || o.Right() > world.Right() || o.Bottom() > world.Bottom() {
			t.Errorf("Obstacle %d at %v leaves the world", i, o.Rect)
		}
		cols, rows := o.Kind.SheetGrid()
		if o.SpriteIndex < 0 || o.SpriteIndex >= cols*rows {
			t.Errorf("Obstacle %d sprite index %d out of range for %s", i, o.SpriteIndex, o.Kind)
		}
	}
}

func TestGenerateObstaclesIsSeeded(t *testing.T) {
	spawn := geom.Rect{X: 500, Y: 500, W: 10, H: 10}
	opts := GenOptions{Count: 20, MinSize: 10, SizeRange: 30}

	a, err := GenerateObstacles(rand.New(rand.NewSource(9)), 1000, 1000, spawn, opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateObstacles(rand.New(rand.NewSource(9)), 1000, 1000, spawn, opts)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Obstacle %d differs between runs with the same seed", i)
		}
	}
}

func TestGenerateObstaclesTooDense(t *testing.T) {
	// Spawn covers the whole world so every candidate is rejected
	spawn := geom.Rect{W: 300, H: 300}
	opts := GenOptions{Count: 3, MinSize: 10, SizeRange: 10, MaxAttempts: 100}

	_, err := GenerateObstacles(rand.New(rand.NewSource(1)), 300, 300, spawn, opts)
	if !errors.Is(err, ErrWorldTooDense) {
		t.Fatalf("Expected ErrWorldTooDense, got %v", err)
	}
}

func TestGenerateObstaclesInvalidArguments(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	spawn := geom.Rect{X: 10, Y: 10, W: 1, H: 1}

	cases := []struct {
		name string
		w, h float64
		opts GenOptions
	}{
		{"negative count", 1000, 1000, GenOptions{Count: -1, MinSize: 10, SizeRange: 10}},
		{"zero min size", 1000, 1000, GenOptions{Count: 1, MinSize: 0, SizeRange: 10}},
		{"negative range", 1000, 1000, GenOptions{Count: 1, MinSize: 10, SizeRange: -1}},
		{"world too small", 100, 100, GenOptions{Count: 1, MinSize: 50, SizeRange: 150}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := GenerateObstacles(rng, tc.w, tc.h, spawn, tc.opts); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestPopulateKeepsActorClear(t *testing.T) {
	w := testWorld(t)
	if err := w.Populate(rand.New(rand.NewSource(3)), GenOptions{Count: 50, MinSize: 50, SizeRange: 150}); err != nil {
		t.Fatalf("Populate failed: %v", err)
	}
	if len(w.Obstacles) != 50 {
		t.Fatalf("Expected 50 obstacles, got %d", len(w.Obstacles))
	}
	if w.Blocked(w.Actor.Bounds()) {
		t.Error("Actor spawn overlaps an obstacle")
	}
}

func TestGenerateZeroObstacles(t *testing.T) {
	obstacles, err := GenerateObstacles(rand.New(rand.NewSource(1)), 100, 100, geom.Rect{}, GenOptions{MinSize: 5})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(obstacles) != 0 {
		t.Errorf("Expected no obstacles, got %d", len(obstacles))
	}
}
