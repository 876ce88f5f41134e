package sheet

import (
	"bytes"
	"testing"

	"chosenoffset.com/herobound/internal/roster"
)

func TestGenerateReturnsPDF(t *testing.T) {
	heroes := []roster.Record{
		{Name: "Aldric", Attributes: map[string]any{"Class": "Knight", "Strength": 16.0, "Health": 120.0}},
		{Name: "Brynja", Attributes: map[string]any{"Class": "Ranger of the Far Northern Marches and Beyond"}},
	}
	b, err := Generate("Roster", "xpub-test", heroes)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Error("output is not a PDF (missing %PDF header)")
	}
	if len(b) < 500 {
		t.Errorf("PDF too short: %d bytes", len(b))
	}
}

func TestGenerateEmptyRoster(t *testing.T) {
	b, err := Generate("Empty", "k", nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

func TestColumnCell(t *testing.T) {
	hero := roster.Record{Name: "Caelum", Attributes: map[string]any{"Strength": 12.0}}
	tests := []struct {
		col  Column
		want string
	}{
		{Columns[0], "Caelum"},
		{Column{Key: "Strength"}, "12"},
		{Column{Key: "Mana"}, "-"},
	}
	for _, tt := range tests {
		if got := tt.col.Cell(hero); got != tt.want {
			t.Errorf("Cell(%s): expected %q, got %q", tt.col.Key, tt.want, got)
		}
	}
}
