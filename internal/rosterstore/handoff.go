// Package rosterstore hands a derived roster from the selector to whatever
// displays it next. A roster travels as a small JSON document keyed by the
// public key it was derived from.
package rosterstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"chosenoffset.com/herobound/internal/roster"
)

// ErrNotFound is returned when no roster is stored for a key
var ErrNotFound = errors.New("roster not found")

// Handoff is the decoded form of a stored roster document
type Handoff struct {
	Key       string
	CreatedAt time.Time
	Roster    []roster.Record
}

// EncodeHandoff builds the hand-off document:
//
//	{"key": "...", "created_at": "RFC3339", "roster": [flat hero objects]}
func EncodeHandoff(key string, heroes []roster.Record, createdAt time.Time) ([]byte, error) {
	raw, err := json.Marshal(heroes)
	if err != nil {
		return nil, fmt.Errorf("failed to encode roster: %w", err)
	}

	doc := []byte(`{}`)
	if doc, err = sjson.SetBytes(doc, "key", key); err != nil {
		return nil, err
	}
	if doc, err = sjson.SetBytes(doc, "created_at", createdAt.UTC().Format(time.RFC3339)); err != nil {
		return nil, err
	}
	if doc, err = sjson.SetRawBytes(doc, "roster", raw); err != nil {
		return nil, err
	}
	return doc, nil
}

// DecodeHandoff parses a document produced by EncodeHandoff
func DecodeHandoff(doc []byte) (Handoff, error) {
	if !gjson.ValidBytes(doc) {
		return Handoff{}, fmt.Errorf("hand-off document is not valid JSON")
	}

	h := Handoff{Key: gjson.GetBytes(doc, "key").String()}
	if ts := gjson.GetBytes(doc, "created_at").String(); ts != "" {
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return Handoff{}, fmt.Errorf("bad created_at: %w", err)
		}
		h.CreatedAt = t
	}

	list := gjson.GetBytes(doc, "roster")
	if !list.IsArray() {
		return Handoff{}, fmt.Errorf("hand-off document has no roster array")
	}
	for i, item := range list.Array() {
		var rec roster.Record
		if err := json.Unmarshal([]byte(item.Raw), &rec); err != nil {
			return Handoff{}, fmt.Errorf("roster entry %d: %w", i, err)
		}
		h.Roster = append(h.Roster, rec)
	}
	return h, nil
}
