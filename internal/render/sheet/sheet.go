// Package sheet renders a roster as a printable PDF table.
package sheet

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"chosenoffset.com/herobound/internal/roster"
)

// Column is one field of the roster table
type Column struct {
	Header string
	Key    string  // Record attribute, "Name" for the hero name
	Width  float64 // Points
}

// Columns lists the hero fields shown on a roster sheet, in order
var Columns = []Column{
	{"Name", "Name", 90},
	{"Class", "Class", 60},
	{"Faction", "Faction", 60},
	{"Kingdom", "Kingdom", 60},
	{"STR", "Strength", 26},
	{"DEX", "Dexterity", 26},
	{"CON", "Constitution", 26},
	{"INT", "Intelligence", 26},
	{"WIS", "Wisdom", 26},
	{"CHA", "Charisma", 26},
	{"HP", "Health", 26},
	{"MP", "Mana", 26},
	{"Ability", "Ability", 45},
}

// Cell returns the display value of column c for a hero
func (c Column) Cell(r roster.Record) string {
	if c.Key == "Name" {
		return r.Name
	}
	return r.AttrString(c.Key, "-")
}

const (
	margin   = 36.0
	rowH     = 16.0
	fontSize = 8.0
)

// Generate renders heroes as a one-page A4 table headed by title and the
// key the roster was derived from.
func Generate(title, key string, heroes []roster.Record) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AddPage()

	pdf.SetTextColor(40, 25, 15)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 20, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 14, fmt.Sprintf("Derived from key %s, %d heroes", key, len(heroes)), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	// Header row
	pdf.SetFont("Helvetica", "B", fontSize)
	pdf.SetFillColor(220, 205, 170)
	pdf.SetDrawColor(80, 50, 30)
	for _, col := range Columns {
		pdf.CellFormat(col.Width, rowH, col.Header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", fontSize)
	for i, hero := range heroes {
		// Alternate row shading
		fill := i%2 == 1
		pdf.SetFillColor(245, 235, 210)
		for _, col := range Columns {
			align := "C"
			if col.Width > 30 {
				align = "L"
			}
			pdf.CellFormat(col.Width, rowH, fit(pdf, col.Cell(hero), col.Width-4), "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render roster sheet: %w", err)
	}
	return buf.Bytes(), nil
}

// fit truncates s so it fits in width points at the current font
func fit(pdf *gofpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"..") > width {
		r = r[:len(r)-1]
	}
	return string(r) + ".."
}
