// Package assets locates the sprite sheets the walker draws with.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sheet paths relative to the assets directory
const (
	CharacterSheet = "sprites/characters/sprite.png"
	BoulderSheet   = "sprites/environment/boulders.png"
	TreeSheet      = "sprites/environment/trees.png"
)

// Catalog records which sprite sheets exist under an assets directory.
// Paths are absolute (or relative to the working directory, as given);
// an empty path means the sheet is missing.
type Catalog struct {
	Dir       string
	Character string
	Boulders  string
	Trees     string
}

// Complete reports whether every sheet was found
func (c Catalog) Complete() bool {
	return c.Character != "" && c.Boulders != "" && c.Trees != ""
}

// Missing lists the relative paths of sheets that were not found
func (c Catalog) Missing() []string {
	var missing []string
	if c.Character == "" {
		missing = append(missing, CharacterSheet)
	}
	if c.Boulders == "" {
		missing = append(missing, BoulderSheet)
	}
	if c.Trees == "" {
		missing = append(missing, TreeSheet)
	}
	return missing
}

// Scan checks dir for the expected sprite sheets. A missing sheet is not an
// error; only an unreadable dir is.
func Scan(dir string) (Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read assets directory: %w", err)
	}
	if !info.IsDir() {
		return Catalog{}, fmt.Errorf("assets path %s is not a directory", dir)
	}

	return Catalog{
		Dir:       dir,
		Character: findSheet(dir, CharacterSheet),
		Boulders:  findSheet(dir, BoulderSheet),
		Trees:     findSheet(dir, TreeSheet),
	}, nil
}

// findSheet returns the full path of rel under dir if it is a regular file
func findSheet(dir, rel string) string {
	path := filepath.Join(dir, filepath.FromSlash(rel))
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return ""
	}
	return path
}
