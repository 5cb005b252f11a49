package review

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ObjectiveIndex groups objectives by parent category, preserving the order
// categories first appear in the source table. It never holds a category with
// zero objectives.
type ObjectiveIndex struct {
	categories []string
	items      map[string][]Objective
}

// NewObjectiveIndex creates an empty index.
func NewObjectiveIndex() *ObjectiveIndex {
	return &ObjectiveIndex{items: make(map[string][]Objective)}
}

// Add files an objective under category, registering the category on first use.
func (ix *ObjectiveIndex) Add(category string, obj Objective) {
	if _, ok := ix.items[category]; !ok {
		ix.categories = append(ix.categories, category)
	}
	ix.items[category] = append(ix.items[category], obj)
}

// Categories returns the category names in first-encounter order.
func (ix *ObjectiveIndex) Categories() []string {
	out := make([]string, 0, len(ix.categories))
	return append(out, ix.categories...)
}

// Get returns the objectives filed under category, in row order.
func (ix *ObjectiveIndex) Get(category string) []Objective {
	return ix.items[category]
}

// Len returns the number of categories.
func (ix *ObjectiveIndex) Len() int {
	return len(ix.categories)
}

// Total returns the number of objectives across all categories.
func (ix *ObjectiveIndex) Total() int {
	total := 0
	for _, objs := range ix.items {
		total += len(objs)
	}
	return total
}

// MarshalJSON emits a JSON object whose keys keep insertion order.
func (ix *ObjectiveIndex) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range ix.categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(ix.items[category])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON rebuilds the index from a JSON object, keeping key order.
func (ix *ObjectiveIndex) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("objective index must be a JSON object")
	}

	ix.categories = nil
	ix.items = make(map[string][]Objective)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		category, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("objective index key must be a string, got %v", keyTok)
		}
		var objs []Objective
		if err := dec.Decode(&objs); err != nil {
			return fmt.Errorf("objective index category %q: %w", category, err)
		}
		if _, exists := ix.items[category]; !exists {
			ix.categories = append(ix.categories, category)
		}
		ix.items[category] = append(ix.items[category], objs...)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
