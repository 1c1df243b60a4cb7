// Package diary maintains the authoritative collection of training diary
// entries and writes it through to a key-value backend on every mutation.
package diary

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"tableflip.dev/pup/pkg/entry"
	"tableflip.dev/pup/pkg/kv"
)

// EntriesKey is the fixed storage key holding the serialized collection.
const EntriesKey = "pup-diary-entries"

// Validation failures reported by Add.
var (
	ErrDateRequired = errors.New("diary: date is required")
	ErrTextRequired = errors.New("diary: entry text is required")
)

// Renderer projects the current collection onto a display surface.
type Renderer interface {
	Render(entries []*entry.Entry)
}

// Store owns the in-memory entry collection. The persisted value and the
// rendered view are never allowed to diverge: every mutation ends with a
// persist and a re-render performed together.
type Store struct {
	kv       kv.Store
	renderer Renderer
	confirm  func(prompt string) bool
	warn     io.Writer

	entries []*entry.Entry
}

// Option configures a Store.
type Option func(*Store)

// WithConfirm sets the guard consulted before irreversible operations.
// Without one, Clear always declines.
func WithConfirm(f func(prompt string) bool) Option {
	return func(s *Store) {
		s.confirm = f
	}
}

// WithWarnings redirects non-fatal diagnostics away from stderr.
func WithWarnings(w io.Writer) Option {
	return func(s *Store) {
		s.warn = w
	}
}

// New builds a Store over the given backend and display surface and loads
// the persisted collection. A nil renderer disables rendering, for callers
// that provide their own view.
func New(backend kv.Store, r Renderer, opts ...Option) *Store {
	s := &Store{
		kv:       backend,
		renderer: r,
		confirm:  func(string) bool { return false },
		warn:     os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.entries = s.Load()
	return s
}

// Load reads the persisted collection. A missing key yields an empty
// collection. A value that fails to parse is discarded as corrupt after a
// warning, so the next load starts clean. Load never fails the caller.
func (s *Store) Load() []*entry.Entry {
	raw, ok := s.kv.Get(EntriesKey)
	if !ok {
		return []*entry.Entry{}
	}
	var entries []*entry.Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		fmt.Fprintf(s.warn, "diary: discarding corrupt stored entries: %v\n", err)
		if err := s.kv.Remove(EntriesKey); err != nil {
			fmt.Fprintf(s.warn, "diary: removing corrupt value: %v\n", err)
		}
		return []*entry.Entry{}
	}
	if entries == nil {
		entries = []*entry.Entry{}
	}
	return entries
}

// Save serializes entries and overwrites the stored collection.
func (s *Store) Save(entries []*entry.Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.kv.Set(EntriesKey, string(data))
}

// Add validates and appends a new entry, then persists and re-renders.
// Nothing is mutated on a validation failure.
func (s *Store) Add(date, focus, text string) (*entry.Entry, error) {
	if strings.TrimSpace(date) == "" {
		return nil, ErrDateRequired
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}

	e := entry.New(date, focus, text)
	s.entries = append(s.entries, e)
	if err := s.flush(); err != nil {
		return nil, err
	}
	return e, nil
}

// Remove deletes the entry with the given id. Unknown ids are a no-op.
func (s *Store) Remove(id string) error {
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return s.flush()
		}
	}
	return nil
}

// Clear empties the collection once the confirm guard approves. A declined
// confirmation leaves everything untouched and reports false.
func (s *Store) Clear() (bool, error) {
	if !s.confirm("Remove all diary entries?") {
		return false, nil
	}
	s.entries = []*entry.Entry{}
	if err := s.flush(); err != nil {
		return false, err
	}
	return true, nil
}

// Entries returns the collection ordered most recent first.
func (s *Store) Entries() []*entry.Entry {
	out := make([]*entry.Entry, len(s.entries))
	copy(out, s.entries)
	entry.Sort(out)
	return out
}

// Len reports the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Render re-projects the current collection without mutating it.
func (s *Store) Render() {
	if s.renderer != nil {
		s.renderer.Render(s.Entries())
	}
}

// flush is the single exit point for mutations: persist and render always
// happen together.
func (s *Store) flush() error {
	if err := s.Save(s.entries); err != nil {
		return err
	}
	s.Render()
	return nil
}
