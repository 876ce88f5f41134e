package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, rel string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("png"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestScanEmptyDir(t *testing.T) {
	dir := t.TempDir()
	cat, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if cat.Complete() {
		t.Error("Expected an empty dir to be incomplete")
	}
	if got := len(cat.Missing()); got != 3 {
		t.Errorf("Expected 3 missing sheets, got %d", got)
	}
}

func TestScanFindsSheets(t *testing.T) {
	dir := t.TempDir()
	char := touch(t, dir, CharacterSheet)
	trees := touch(t, dir, TreeSheet)

	cat, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if cat.Character != char {
		t.Errorf("Expected character sheet %s, got %s", char, cat.Character)
	}
	if cat.Trees != trees {
		t.Errorf("Expected tree sheet %s, got %s", trees, cat.Trees)
	}
	missing := cat.Missing()
	if len(missing) != 1 || missing[0] != BoulderSheet {
		t.Errorf("Expected only %s missing, got %v", BoulderSheet, missing)
	}

	touch(t, dir, BoulderSheet)
	cat, _ = Scan(dir)
	if !cat.Complete() {
		t.Errorf("Expected complete catalog, missing %v", cat.Missing())
	}
}

func TestScanIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, filepath.FromSlash(CharacterSheet)), 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	cat, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if cat.Character != "" {
		t.Errorf("Expected a directory not to count as a sheet, got %s", cat.Character)
	}
}

func TestScanMissingDir(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Expected an error for a missing directory")
	}
}
