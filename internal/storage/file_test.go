package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileBackendRoundTrip(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}

	if _, ok, err := backend.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want absent without error", ok, err)
	}
	if _, ok := backend.ModTime("missing"); ok {
		t.Fatal("ModTime(missing) reported a time")
	}

	if err := backend.Set("progress", []byte(`{"history":{}}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, ok, err := backend.Get("progress")
	if err != nil || !ok {
		t.Fatalf("Get after Set = ok=%v err=%v", ok, err)
	}
	if string(data) != `{"history":{}}` {
		t.Fatalf("Get = %q", data)
	}
	if _, ok := backend.ModTime("progress"); !ok {
		t.Fatal("ModTime after Set reported no time")
	}
}

func TestFileBackendOverwriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}

	if err := backend.Set("progress", []byte("first")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := backend.Set("progress", []byte("second")); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}

	data, _, _ := backend.Get("progress")
	if string(data) != "second" {
		t.Fatalf("Get after overwrite = %q, want %q", data, "second")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Fatalf("leftover temp file %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Fatalf("dir has %d entries, want 1", len(entries))
	}
}

func TestFileBackendSanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}

	key := "nested" + string(os.PathSeparator) + "key"
	if err := backend.Set(key, []byte("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, ok, err := backend.Get(key)
	if err != nil || !ok || string(data) != "v" {
		t.Fatalf("Get = %q ok=%v err=%v", data, ok, err)
	}

	// The value must land inside the backend dir, not in a subdirectory.
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 || entries[0].IsDir() {
		t.Fatalf("unexpected dir layout: %v", entries)
	}
}
