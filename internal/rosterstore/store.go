package rosterstore

import (
	"context"
	"sync"
	"time"

	"chosenoffset.com/herobound/internal/roster"
)

// Store keeps the most recent roster for each key
type Store interface {
	Save(ctx context.Context, key string, heroes []roster.Record) error
	Load(ctx context.Context, key string) (Handoff, error)
	Close() error
}

// MemoryStore is a session-scoped store that lives as long as the process.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
	now  func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: make(map[string][]byte),
		now:  time.Now,
	}
}

// Save replaces the roster stored under key
func (s *MemoryStore) Save(ctx context.Context, key string, heroes []roster.Record) error {
	doc, err := EncodeHandoff(key, heroes, s.now())
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.docs[key] = doc
	s.mu.Unlock()
	return nil
}

// Load returns the roster stored under key
func (s *MemoryStore) Load(ctx context.Context, key string) (Handoff, error) {
	s.mu.RLock()
	doc, ok := s.docs[key]
	s.mu.RUnlock()
	if !ok {
		return Handoff{}, ErrNotFound
	}
	return DecodeHandoff(doc)
}

// Close drops every stored roster
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	s.docs = make(map[string][]byte)
	s.mu.Unlock()
	return nil
}
