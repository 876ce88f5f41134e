package rosterstore

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"

	"chosenoffset.com/herobound/internal/roster"
)

// JournalEntry is one line of the selection journal
type JournalEntry struct {
	At     time.Time `json:"at"`
	Key    string    `json:"key"`
	Count  int       `json:"count"`
	Heroes []string  `json:"heroes"`
}

// Journal appends every derived roster to hourly zstd-compressed JSONL files
// named <prefix>-YYYY-MM-DD-HH.jsonl.zst.
type Journal struct {
	baseDir string
	prefix  string
	now     func() time.Time

	mu      sync.Mutex
	curHour string
	f       *os.File
	enc     *zstd.Encoder
	w       *bufio.Writer
}

// NewJournal creates a journal writing into baseDir
func NewJournal(baseDir, prefix string) *Journal {
	return &Journal{
		baseDir: baseDir,
		prefix:  prefix,
		now:     time.Now,
	}
}

// Record appends a roster derived for key
func (j *Journal) Record(key string, heroes []roster.Record) error {
	names := make([]string, len(heroes))
	for i, h := range heroes {
		names[i] = h.Name
	}
	return j.Write(JournalEntry{
		At:     j.now().UTC(),
		Key:    key,
		Count:  len(heroes),
		Heroes: names,
	})
}

// Write appends one JSON line
func (j *Journal) Write(v any) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	hour := j.now().UTC().Format("2006-01-02-15")
	if hour != j.curHour {
		if err := j.rotateLocked(hour); err != nil {
			return err
		}
	}

	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := j.w.Write(b); err != nil {
		return err
	}
	if err := j.w.WriteByte('\n'); err != nil {
		return err
	}
	return j.w.Flush()
}

// Close flushes and closes the current file
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.closeLocked()
}

// PathForHour returns the file used for the given UTC hour stamp
func (j *Journal) PathForHour(hour string) string {
	return filepath.Join(j.baseDir, fmt.Sprintf("%s-%s.jsonl.zst", j.prefix, hour))
}

func (j *Journal) rotateLocked(hour string) error {
	if err := j.closeLocked(); err != nil {
		return err
	}
	if err := os.MkdirAll(j.baseDir, 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(j.PathForHour(hour), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return err
	}
	j.f = f
	j.enc = enc
	j.w = bufio.NewWriterSize(enc, 64*1024)
	j.curHour = hour
	return nil
}

func (j *Journal) closeLocked() error {
	var err error
	if j.w != nil {
		_ = j.w.Flush()
	}
	if j.enc != nil {
		err = j.enc.Close()
		j.enc = nil
	}
	if j.f != nil {
		_ = j.f.Close()
		j.f = nil
	}
	j.w = nil
	j.curHour = ""
	return err
}
