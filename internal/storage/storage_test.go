package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreGetMissingKey(t *testing.T) {
	fs := NewFileStore(t.TempDir())

	data, ok, err := fs.Get("tasks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected ok=false for missing key")
	}
	if data != nil {
		t.Errorf("expected nil data, got %q", data)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	fs := NewFileStore(t.TempDir())

	want := []byte(`[{"id":"a","title":"milk","completed":false}]`)
	if err := fs.Set("tasks", want); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, ok, err := fs.Get("tasks")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true after set")
	}
	if string(got) != string(want) {
		t.Errorf("round trip mismatch: got %q, want %q", got, want)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	fs := NewFileStore(t.TempDir())

	if err := fs.Set("tasks", []byte("[1]")); err != nil {
		t.Fatalf("first set failed: %v", err)
	}
	if err := fs.Set("tasks", []byte("[2]")); err != nil {
		t.Fatalf("second set failed: %v", err)
	}

	got, _, err := fs.Get("tasks")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != "[2]" {
		t.Errorf("expected last write to win, got %q", got)
	}
}

func TestFileStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	fs := NewFileStore(dir)

	if err := fs.Set("tasks", []byte("[]")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, err := os.Stat(fs.Path("tasks")); err != nil {
		t.Errorf("expected file to exist: %v", err)
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(dir)

	if err := fs.Set("tasks", []byte("[]")); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "tasks.json" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("expected only tasks.json, got %v", names)
	}
}
