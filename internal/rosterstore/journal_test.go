package rosterstore

import (
	"bufio"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/klauspost/compress/zstd"
)

func readJournal(t *testing.T, path string) []JournalEntry {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		t.Fatalf("zstd reader: %v", err)
	}
	defer dec.Close()

	var entries []JournalEntry
	sc := bufio.NewScanner(dec)
	for sc.Scan() {
		var e JournalEntry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("bad journal line %q: %v", sc.Text(), err)
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scan journal: %v", err)
	}
	return entries
}

func TestJournalRecordsAndRotates(t *testing.T) {
	dir := t.TempDir()
	j := NewJournal(dir, "rosters")

	clock := time.Date(2025, 1, 2, 10, 15, 0, 0, time.UTC)
	j.now = func() time.Time { return clock }

	if err := j.Record("k1", sampleRoster()); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := j.Record("k2", sampleRoster()[:2]); err != nil {
		t.Fatalf("Record: %v", err)
	}

	clock = clock.Add(time.Hour)
	if err := j.Record("k3", sampleRoster()[:1]); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := j.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	first := readJournal(t, j.PathForHour("2025-01-02-10"))
	if len(first) != 2 {
		t.Fatalf("Expected 2 entries in first hour, got %d", len(first))
	}
	if first[0].Key != "k1" || first[0].Count != 3 || first[0].Heroes[2] != "Caelum" {
		t.Errorf("Unexpected first entry %+v", first[0])
	}
	if first[1].Key != "k2" || first[1].Count != 2 {
		t.Errorf("Unexpected second entry %+v", first[1])
	}

	second := readJournal(t, j.PathForHour("2025-01-02-11"))
	if len(second) != 1 || second[0].Key != "k3" {
		t.Errorf("Unexpected second hour entries %+v", second)
	}
}
