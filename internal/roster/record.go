// Package roster derives a deterministic set of heroes from a user supplied
// key. The same key, candidate list, and roster size always yield the same
// heroes in the same order.
package roster

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors returned by the selector and the data loader
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrSafetyCapExceeded = errors.New("safety cap exceeded")
)

// Record is one hero from the candidate list. Name is the only field the
// selector looks at; everything else is carried untouched for display.
type Record struct {
	Name       string
	Attributes map[string]any
}

// Attr returns the named attribute, or nil when the record has no such field
func (r Record) Attr(key string) any {
	if r.Attributes == nil {
		return nil
	}
	return r.Attributes[key]
}

// AttrString formats an attribute for display, returning def when missing
func (r Record) AttrString(key, def string) string {
	v := r.Attr(key)
	switch val := v.(type) {
	case nil:
		return def
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	default:
		return fmt.Sprint(val)
	}
}

// MarshalJSON writes the record back in its flat data-file shape.
func (r Record) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(r.Attributes)+1)
	for k, v := range r.Attributes {
		flat[k] = v
	}
	flat["Name"] = r.Name
	return json.Marshal(flat)
}

// UnmarshalJSON reads a flat hero object, lifting Name out of the attributes.
func (r *Record) UnmarshalJSON(data []byte) error {
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	rec, err := recordFromMap(flat)
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

func recordFromMap(flat map[string]any) (Record, error) {
	name, ok := flat["Name"].(string)
	if !ok || name == "" {
		return Record{}, fmt.Errorf("%w: hero record has no Name", ErrInvalidArgument)
	}
	attrs := make(map[string]any, len(flat))
	for k, v := range flat {
		if k == "Name" {
			continue
		}
		attrs[k] = v
	}
	return Record{Name: name, Attributes: attrs}, nil
}

// Candidates is the fixed, ordered list of heroes eligible for selection.
// It is immutable once built and safe to share between selectors.
type Candidates struct {
	records  []Record
	distinct int
}

// NewCandidates copies records into a new candidate list
func NewCandidates(records []Record) *Candidates {
	c := &Candidates{records: make([]Record, len(records))}
	copy(c.records, records)

	seen := make(map[string]struct{}, len(records))
	for _, r := range c.records {
		seen[r.Name] = struct{}{}
	}
	c.distinct = len(seen)
	return c
}

// Len returns the number of records, duplicates included
func (c *Candidates) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// At returns the record at index i
func (c *Candidates) At(i int) Record {
	return c.records[i]
}

// DistinctNames returns how many unique identifiers the list holds
func (c *Candidates) DistinctNames() int {
	if c == nil {
		return 0
	}
	return c.distinct
}

// Records returns a copy of the candidate list
func (c *Candidates) Records() []Record {
	if c == nil {
		return nil
	}
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}
