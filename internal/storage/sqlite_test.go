package storage

import (
	"path/filepath"
	"testing"
)

func TestSQLiteBackendRoundTrip(t *testing.T) {
	backend, err := OpenSQLite(filepath.Join(t.TempDir(), "tmanina.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer func() { _ = backend.Close() }()

	if _, ok, err := backend.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want absent without error", ok, err)
	}

	if err := backend.Set("progress", []byte(`{"history":{"2024-06-11":10}}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, ok, err := backend.Get("progress")
	if err != nil || !ok {
		t.Fatalf("Get after Set = ok=%v err=%v", ok, err)
	}
	if string(data) != `{"history":{"2024-06-11":10}}` {
		t.Fatalf("Get = %q", data)
	}

	first, ok := backend.ModTime("progress")
	if !ok {
		t.Fatal("ModTime after Set reported no time")
	}

	// Overwrite replaces the value and advances the mod time.
	if err := backend.Set("progress", []byte(`{"history":{}}`)); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	data, _, _ = backend.Get("progress")
	if string(data) != `{"history":{}}` {
		t.Fatalf("Get after overwrite = %q", data)
	}
	second, _ := backend.ModTime("progress")
	if second.Before(first) {
		t.Fatalf("mod time went backwards: %v -> %v", first, second)
	}
}
