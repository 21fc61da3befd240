package store

import (
	"path/filepath"
	"testing"
)

func TestJournal_MemoryRecords(t *testing.T) {
	j, err := Open("test-service", "memory")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer j.Close()

	if err := j.Record("session-1", "create_tree", "root-id"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := j.Record("session-1", "add_leaf", "leaf-id"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := j.Record("session-2", "reset", ""); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	n, err := j.Count("session-1")
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}

func TestJournal_EmptyURLDefaultsToMemory(t *testing.T) {
	j, err := Open("test-service", "")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer j.Close()

	if err := j.Record("s", "op", ""); err != nil {
		t.Errorf("Record failed: %v", err)
	}
}

func TestJournal_FileBacked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := Open("test-service", path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := j.Record("s", "op", "detail"); err != nil {
		t.Errorf("Record failed: %v", err)
	}
	if err := j.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestJournal_NilSafe(t *testing.T) {
	var j *Journal
	if err := j.Record("s", "op", ""); err != nil {
		t.Errorf("nil journal Record should be a no-op, got %v", err)
	}
	if _, err := j.Count("s"); err != nil {
		t.Errorf("nil journal Count should be a no-op, got %v", err)
	}
	if err := j.Close(); err != nil {
		t.Errorf("nil journal Close should be a no-op, got %v", err)
	}
}
