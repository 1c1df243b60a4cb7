package checklist

import (
	"strings"
	"testing"

	"tableflip.dev/pup/pkg/kv"
)

func TestTogglePersists(t *testing.T) {
	backend := kv.NewMemory()
	sel := NewSelection(backend)

	checked, err := sel.Toggle("leash")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !checked || !sel.Checked("leash") {
		t.Fatalf("expected leash checked")
	}

	// A fresh selection over the same backend sees the toggle.
	reloaded := NewSelection(backend)
	if !reloaded.Checked("leash") {
		t.Fatalf("expected persisted selection to survive reload")
	}

	checked, err = reloaded.Toggle("leash")
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if checked || reloaded.Checked("leash") {
		t.Fatalf("expected leash unchecked after second toggle")
	}
}

func TestToggleUnknownItem(t *testing.T) {
	sel := NewSelection(kv.NewMemory())
	if _, err := sel.Toggle("flamethrower"); err == nil {
		t.Fatalf("expected unknown item to be rejected")
	}
	if len(sel.IDs()) != 0 {
		t.Fatalf("rejected toggle must not change the selection")
	}
}

func TestIDsInCatalogOrder(t *testing.T) {
	sel := NewSelection(kv.NewMemory())
	for _, id := range []string{"treat-pouch", "crate", "leash"} {
		if _, err := sel.Toggle(id); err != nil {
			t.Fatalf("toggle %s: %v", id, err)
		}
	}

	got := strings.Join(sel.IDs(), ",")
	if got != "crate,leash,treat-pouch" {
		t.Fatalf("expected catalog order, got %s", got)
	}
}

func TestCorruptSelectionSelfHeals(t *testing.T) {
	backend := kv.NewMemory()
	if err := backend.Set(SelectionKey, "][ nope"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	sel := NewSelection(backend)
	if len(sel.IDs()) != 0 {
		t.Fatalf("corrupt selection must load as empty")
	}
	if _, ok := backend.Get(SelectionKey); ok {
		t.Fatalf("corrupt value must be removed")
	}
}

func TestLoadDropsRetiredIDs(t *testing.T) {
	backend := kv.NewMemory()
	if err := backend.Set(SelectionKey, `["leash","retired-item"]`); err != nil {
		t.Fatalf("seed: %v", err)
	}

	sel := NewSelection(backend)
	if !sel.Checked("leash") {
		t.Fatalf("expected known id kept")
	}
	if sel.Checked("retired-item") {
		t.Fatalf("expected unknown id dropped")
	}
}
