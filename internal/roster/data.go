package roster

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/gjson"
)

//go:embed hero.schema.json
var heroSchemaSrc string

var heroSchema = jsonschema.MustCompileString("hero.schema.json", heroSchemaSrc)

// LoadCandidates reads a heroes data file from disk.
func LoadCandidates(path string) (*Candidates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read heroes data: %w", err)
	}
	c, err := ParseCandidates(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ParseCandidates accepts either a JSON array of hero objects or a JSON
// object whose values are hero objects. Object values are taken in document
// order. Every hero is checked against the embedded hero schema.
func ParseCandidates(data []byte) (*Candidates, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: heroes data is not valid JSON", ErrInvalidArgument)
	}

	root := gjson.ParseBytes(data)
	var items []gjson.Result
	switch {
	case root.IsArray():
		items = root.Array()
	case root.IsObject():
		root.ForEach(func(_, value gjson.Result) bool {
			items = append(items, value)
			return true
		})
	default:
		return nil, fmt.Errorf("%w: heroes data must be an array or object", ErrInvalidArgument)
	}

	records := make([]Record, 0, len(items))
	for i, item := range items {
		v := item.Value()
		if err := heroSchema.Validate(v); err != nil {
			return nil, fmt.Errorf("%w: hero %d: %v", ErrInvalidArgument, i, err)
		}
		flat, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: hero %d is not an object", ErrInvalidArgument, i)
		}
		rec, err := recordFromMap(flat)
		if err != nil {
			return nil, fmt.Errorf("hero %d: %w", i, err)
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: heroes data holds no records", ErrInvalidArgument)
	}
	return NewCandidates(records), nil
}
