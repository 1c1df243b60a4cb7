// Package checklist tracks which items of the recommended supply kit have
// been acquired, persisted as a list of checked item ids.
package checklist

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"tableflip.dev/pup/pkg/kv"
)

// SelectionKey is the fixed storage key holding the checked item ids.
const SelectionKey = "pup-checklist"

// Item is one entry of the fixed supply catalog.
type Item struct {
	ID    string
	Label string
}

// Catalog returns the supply kit in display order.
func Catalog() []Item {
	return []Item{
		{ID: "crate", Label: `42" crate with divider`},
		{ID: "x-pen", Label: "Exercise pen"},
		{ID: "baby-gates", Label: "Baby gates"},
		{ID: "flat-collar", Label: "Flat collar"},
		{ID: "leash", Label: "6-ft leash"},
		{ID: "long-line", Label: "Long line"},
		{ID: "harness", Label: "Front-clip harness"},
		{ID: "treat-pouch", Label: "Treat pouch"},
		{ID: "chews", Label: "Chew trio"},
		{ID: "puzzle-feeder", Label: "Puzzle feeder"},
		{ID: "snuffle-mat", Label: "Snuffle mat"},
		{ID: "cleaner", Label: "Enzymatic cleaner"},
	}
}

// Lookup finds a catalog item by id.
func Lookup(id string) (Item, bool) {
	for _, item := range Catalog() {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// Selection is the set of checked item ids, written through to the backend
// on every toggle.
type Selection struct {
	kv   kv.Store
	warn io.Writer
	ids  map[string]bool
}

// NewSelection loads the persisted selection. A missing value starts empty;
// a value that fails to parse is discarded as corrupt after a warning.
func NewSelection(backend kv.Store) *Selection {
	s := &Selection{kv: backend, warn: os.Stderr}
	s.ids = s.load()
	return s
}

func (s *Selection) load() map[string]bool {
	ids := make(map[string]bool)
	raw, ok := s.kv.Get(SelectionKey)
	if !ok {
		return ids
	}
	var checked []string
	if err := json.Unmarshal([]byte(raw), &checked); err != nil {
		fmt.Fprintf(s.warn, "checklist: discarding corrupt stored selection: %v\n", err)
		if err := s.kv.Remove(SelectionKey); err != nil {
			fmt.Fprintf(s.warn, "checklist: removing corrupt value: %v\n", err)
		}
		return ids
	}
	for _, id := range checked {
		if _, ok := Lookup(id); ok {
			ids[id] = true
		}
	}
	return ids
}

func (s *Selection) save() error {
	data, err := json.Marshal(s.IDs())
	if err != nil {
		return err
	}
	return s.kv.Set(SelectionKey, string(data))
}

// Toggle flips an item and persists the selection, returning the new
// checked state. Unknown ids are rejected.
func (s *Selection) Toggle(id string) (bool, error) {
	if _, ok := Lookup(id); !ok {
		return false, fmt.Errorf("checklist: unknown item %q", id)
	}
	if s.ids[id] {
		delete(s.ids, id)
	} else {
		s.ids[id] = true
	}
	if err := s.save(); err != nil {
		return false, err
	}
	return s.ids[id], nil
}

// Checked reports whether the item is checked.
func (s *Selection) Checked(id string) bool {
	return s.ids[id]
}

// IDs returns the checked item ids in catalog order.
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for _, item := range Catalog() {
		if s.ids[item.ID] {
			out = append(out, item.ID)
		}
	}
	return out
}
