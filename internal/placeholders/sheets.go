package placeholders

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"chosenoffset.com/herobound/internal/assets"
	"chosenoffset.com/herobound/internal/world"
)

// Sheet grids match the cell counts obstacles index into
var (
	BoulderCols, BoulderRows = world.Boulder.SheetGrid()
	TreeCols, TreeRows       = world.Tree.SheetGrid()
)

// GenerateAndSave writes the placeholder sheets under dir using the same
// layout assets.Scan looks for.
func GenerateAndSave(dir string) error {
	fmt.Println("Generating placeholder sprite sheets...")

	sheets := []struct {
		rel  string
		img  image.Image
		desc string
	}{
		{assets.CharacterSheet, GenerateActorSheet(),
			fmt.Sprintf("%dx%d frames @ %dx%dpx", ActorCols, ActorRows, ActorFrameWidth, ActorFrameHeight)},
		{assets.BoulderSheet, GenerateBoulderSheet(BoulderCols, BoulderRows),
			fmt.Sprintf("%dx%d cells @ %dpx", BoulderCols, BoulderRows, CellSize)},
		{assets.TreeSheet, GenerateTreeSheet(TreeCols, TreeRows),
			fmt.Sprintf("%dx%d cells @ %dpx", TreeCols, TreeRows, CellSize)},
	}

	for _, s := range sheets {
		path := filepath.Join(dir, filepath.FromSlash(s.rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
		}
		if err := SavePNG(s.img, path); err != nil {
			return fmt.Errorf("failed to save %s: %w", s.rel, err)
		}
		b := s.img.Bounds()
		fmt.Printf("✓ Generated %s (%dx%d pixels, %s)\n", path, b.Dx(), b.Dy(), s.desc)
	}

	fmt.Println("Placeholder sheets generated successfully!")
	return nil
}
