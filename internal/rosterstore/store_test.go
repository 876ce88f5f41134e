package rosterstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"chosenoffset.com/herobound/internal/roster"
)

func sampleRoster() []roster.Record {
	return []roster.Record{
		{Name: "Aldric", Attributes: map[string]any{"Class": "Knight", "Health": 120.0}},
		{Name: "Brynja", Attributes: map[string]any{"Class": "Ranger", "Health": 90.0}},
		{Name: "Caelum", Attributes: map[string]any{"Class": "Mage"}},
	}
}

func checkRoster(t *testing.T, h Handoff, key string) {
	t.Helper()
	if h.Key != key {
		t.Errorf("Expected key %q, got %q", key, h.Key)
	}
	want := sampleRoster()
	if len(h.Roster) != len(want) {
		t.Fatalf("Expected %d heroes, got %d", len(want), len(h.Roster))
	}
	for i := range want {
		if h.Roster[i].Name != want[i].Name {
			t.Errorf("Index %d: expected %s, got %s", i, want[i].Name, h.Roster[i].Name)
		}
		if h.Roster[i].AttrString("Class", "") != want[i].AttrString("Class", "") {
			t.Errorf("Index %d: Class mismatch", i)
		}
	}
}

func TestEncodeHandoffShape(t *testing.T) {
	created := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	doc, err := EncodeHandoff(`xpub"6.weird*key`, sampleRoster(), created)
	if err != nil {
		t.Fatalf("EncodeHandoff failed: %v", err)
	}

	h, err := DecodeHandoff(doc)
	if err != nil {
		t.Fatalf("DecodeHandoff failed: %v", err)
	}
	checkRoster(t, h, `xpub"6.weird*key`)
	if !h.CreatedAt.Equal(created) {
		t.Errorf("Expected created_at %v, got %v", created, h.CreatedAt)
	}
}

func TestDecodeHandoffRejectsBadDocs(t *testing.T) {
	for _, doc := range []string{`nope`, `{"key":"k"}`, `{"key":"k","roster":[{"Class":"x"}]}`, `{"created_at":"yesterday","roster":[]}`} {
		if _, err := DecodeHandoff([]byte(doc)); err == nil {
			t.Errorf("Expected error for %s", doc)
		}
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, err := s.Load(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if err := s.Save(ctx, "k1", sampleRoster()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	h, err := s.Load(ctx, "k1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	checkRoster(t, h, "k1")

	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := s.Load(ctx, "k1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected store to be empty after Close, got %v", err)
	}
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "rosters.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}

	if _, err := s.Load(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if err := s.Save(ctx, "k1", sampleRoster()[:1]); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// Second save for the same key replaces the first
	if err := s.Save(ctx, "k1", sampleRoster()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	h, err := reopened.Load(ctx, "k1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	checkRoster(t, h, "k1")
}

func TestOpenSQLiteEmptyPath(t *testing.T) {
	if _, err := OpenSQLite(""); err == nil {
		t.Error("Expected error for empty path")
	}
}
