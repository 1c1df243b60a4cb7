package kv

import "testing"

type testConfig string

func (c testConfig) BasePath() string { return string(c) }

func TestDiskRoundTrip(t *testing.T) {
	s, err := Open(testConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, ok := s.Get("missing"); ok {
		t.Fatalf("expected missing key to be absent")
	}
	if err := s.Set("k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set("k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if v, ok := s.Get("k"); !ok || v != "v2" {
		t.Fatalf("expected v2, got %q (present=%v)", v, ok)
	}
	if err := s.Remove("k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := s.Get("k"); ok {
		t.Fatalf("expected key removed")
	}
}

func TestDiskRemoveAbsentKey(t *testing.T) {
	s, err := Open(testConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Remove("never-set"); err != nil {
		t.Fatalf("removing an absent key should not fail: %v", err)
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	s := NewMemory()

	if err := s.Set("k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, ok := s.Get("k"); !ok || v != "v" {
		t.Fatalf("expected v, got %q (present=%v)", v, ok)
	}
	if err := s.Remove("k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := s.Get("k"); ok {
		t.Fatalf("expected key removed")
	}
	if err := s.Remove("k"); err != nil {
		t.Fatalf("remove is idempotent: %v", err)
	}
}
