package entry

import (
	"encoding/json"
	"testing"
)

func TestNewAssignsUniqueIDs(t *testing.T) {
	a := New("2024-05-01", "leash training", "Walked nicely")
	b := New("2024-05-01", "leash training", "Walked nicely")

	if a.ID == "" || b.ID == "" {
		t.Fatalf("expected ids to be assigned")
	}
	if a.ID == b.ID {
		t.Fatalf("expected unique ids, both got %s", a.ID)
	}
	if a.Created.IsZero() {
		t.Fatalf("expected created timestamp to be set")
	}
}

func TestSortDescendingByDate(t *testing.T) {
	entries := []*Entry{
		New("2024-01-01", "", "one"),
		New("2024-03-05", "", "two"),
		New("2024-02-10", "", "three"),
	}

	Sort(entries)

	want := []string{"2024-03-05", "2024-02-10", "2024-01-01"}
	for i, date := range want {
		if entries[i].Date != date {
			t.Fatalf("position %d: expected %s, got %s", i, date, entries[i].Date)
		}
	}
}

func TestSortKeepsInsertionOrderOnTies(t *testing.T) {
	entries := []*Entry{
		New("2024-02-10", "", "first"),
		New("2024-02-10", "", "second"),
		New("2024-03-05", "", "later"),
		New("2024-02-10", "", "third"),
	}

	Sort(entries)

	if entries[0].Text != "later" {
		t.Fatalf("expected most recent entry first, got %s", entries[0].Text)
	}
	want := []string{"first", "second", "third"}
	for i, text := range want {
		if entries[i+1].Text != text {
			t.Fatalf("tied position %d: expected %s, got %s", i, text, entries[i+1].Text)
		}
	}
}

func TestEntryRoundTripsThroughJSON(t *testing.T) {
	e := New("2024-05-01", "recall", "Hallway come ping-pong,\ntwo sessions")

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Entry
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.ID != e.ID || got.Date != e.Date || got.Focus != e.Focus || got.Text != e.Text {
		t.Fatalf("round trip mismatch: %+v != %+v", got, e)
	}
	// RFC3339 drops sub-second precision.
	if got.Created.Unix() != e.Created.Unix() {
		t.Fatalf("created timestamp lost: %v != %v", got.Created, e.Created)
	}
}

func TestFormattedDate(t *testing.T) {
	e := New("2024-05-01", "", "note")
	if got := e.FormattedDate(); got != "May 1, 2024" {
		t.Fatalf("expected May 1, 2024, got %s", got)
	}

	e.Date = "sometime in spring"
	if got := e.FormattedDate(); got != "sometime in spring" {
		t.Fatalf("unparseable dates should display as stored, got %s", got)
	}
}
