package game

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"log"
	"path/filepath"

	"chosenoffset.com/herobound/internal/assets"
	"chosenoffset.com/herobound/internal/placeholders"
	"chosenoffset.com/herobound/internal/render"
	"chosenoffset.com/herobound/internal/render/atlas"
	"chosenoffset.com/herobound/internal/world"
)

// CharacterRows is the number of direction rows in the character sheet
const CharacterRows = 4

// whiteKey is the channel value above which a pixel counts as background
const whiteKey = 240

// Sprites holds the three sheets the game draws from. A sheet whose file
// could not be loaded is replaced by generated placeholder art and flagged.
type Sprites struct {
	Character *atlas.Sheet
	Boulders  *atlas.Sheet
	Trees     *atlas.Sheet

	CharacterFallback bool
	BouldersFallback  bool
	TreesFallback     bool
}

// AnyFallback reports whether any sheet is placeholder art
func (s *Sprites) AnyFallback() bool {
	return s.CharacterFallback || s.BouldersFallback || s.TreesFallback
}

// Sheet returns the sheet used for an obstacle kind
func (s *Sprites) Sheet(kind world.ObstacleKind) *atlas.Sheet {
	if kind == world.Tree {
		return s.Trees
	}
	return s.Boulders
}

// KeyOutWhite returns a copy of src where every pixel whose red, green and
// blue channels all exceed 240 is fully transparent.
func KeyOutWhite(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := dst.NRGBAAt(x, y)
			if c.R > whiteKey && c.G > whiteKey && c.B > whiteKey {
				c.A = 0
				dst.SetNRGBA(x, y, c)
			}
		}
	}
	return dst
}

// LoadSprites loads the sheets from an assets directory laid out as
// assets.Scan expects. Missing or unusable sheets fall back to placeholder
// art; this never fails. frames is the number of walk frames per row of
// the character sheet.
func LoadSprites(r render.Renderer, loader render.ResourceLoader, dir string, frames int) *Sprites {
	s := &Sprites{}

	charPath := filepath.Join(dir, filepath.FromSlash(assets.CharacterSheet))
	if src, err := loader.LoadSource(charPath); err != nil {
		logFallback("character", err)
	} else if s.Character, err = atlas.New(r.NewImageFromImage(KeyOutWhite(src)), frames, CharacterRows); err != nil {
		logFallback("character", err)
	}
	if s.Character == nil {
		s.Character = mustSheet(r, KeyOutWhite(placeholders.GenerateActorSheet()), placeholders.ActorCols, placeholders.ActorRows)
		s.CharacterFallback = true
	}

	s.Boulders, s.BouldersFallback = loadObstacleSheet(r, loader, dir, world.Boulder)
	s.Trees, s.TreesFallback = loadObstacleSheet(r, loader, dir, world.Tree)
	return s
}

func loadObstacleSheet(r render.Renderer, loader render.ResourceLoader, dir string, kind world.ObstacleKind) (*atlas.Sheet, bool) {
	rel, gen := assets.BoulderSheet, placeholders.GenerateBoulderSheet
	if kind == world.Tree {
		rel, gen = assets.TreeSheet, placeholders.GenerateTreeSheet
	}
	cols, rows := kind.SheetGrid()

	img, err := loader.LoadImage(filepath.Join(dir, filepath.FromSlash(rel)))
	if err == nil {
		var sheet *atlas.Sheet
		if sheet, err = atlas.New(img, cols, rows); err == nil {
			return sheet, false
		}
	}
	logFallback(kind.String(), err)
	return mustSheet(r, gen(cols, rows), cols, rows), true
}

// mustSheet wraps generated art, whose size always fits its grid
func mustSheet(r render.Renderer, img image.Image, cols, rows int) *atlas.Sheet {
	sheet, err := atlas.New(r.NewImageFromImage(img), cols, rows)
	if err != nil {
		panic(err)
	}
	return sheet
}

func logFallback(sheet string, err error) {
	if errors.Is(err, render.ErrResourceUnavailable) {
		log.Printf("Warning: %s sheet unavailable, using placeholder art: %v", sheet, err)
		return
	}
	log.Printf("Warning: failed to load %s sheet, using placeholder art: %v", sheet, err)
}

// ActorSize derives the actor's collision box from the character sheet:
// one frame scaled by scale. Placeholder art uses the fixed fallback size
// instead.
func (s *Sprites) ActorSize(scale, fallbackW, fallbackH float64) (w, h float64) {
	if s.CharacterFallback || s.Character == nil {
		return fallbackW, fallbackH
	}
	cw, ch := s.Character.CellSize()
	return float64(cw) * scale, float64(ch) * scale
}

var (
	borderColor = color.RGBA{60, 60, 60, 255}
	textColor   = color.RGBA{255, 255, 255, 255}
)
