package entry

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

const (
	layoutISO = "2006-01-02"
	layoutUS  = "January 2, 2006"
)

// New creates a diary entry with a freshly generated unique id.
func New(date, focus, text string) *Entry {
	return &Entry{
		ID:      uuid.NewString(),
		Date:    date,
		Focus:   focus,
		Text:    text,
		Created: Timestamp{Time: time.Now()},
	}
}

// Entry is a single training session record. Entries are immutable once
// created; they are removed, never edited.
type Entry struct {
	ID      string    `json:"id"`
	Date    string    `json:"date"`
	Focus   string    `json:"focus,omitempty"`
	Text    string    `json:"text"`
	Created Timestamp `json:"created"`
}

// Row returns the display columns for the entry.
func (e *Entry) Row() (string, string, string) {
	return e.FormattedDate(), e.Focus, e.Text
}

// FormattedDate renders the ISO date in the long US layout. Dates that do
// not parse are shown as stored.
func (e *Entry) FormattedDate() string {
	t, err := time.Parse(layoutISO, e.Date)
	if err != nil {
		return e.Date
	}
	return t.Format(layoutUS)
}

// Sort orders entries most recent first. Entries with equal dates keep
// their original insertion order.
func Sort(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
}
