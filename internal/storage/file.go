package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileBackend stores each key as a JSON file under a directory.
// This is the default backend.
type FileBackend struct {
	dir string
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "tmanina")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "tmanina")
}

// NewFileBackend creates a file backend rooted at dir, creating it if needed.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

// path maps a key to its on-disk file. Keys are simple identifiers
// ("tmanina_progress"); path separators are stripped defensively.
func (f *FileBackend) path(key string) string {
	key = strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(f.dir, key+".json")
}

// Get implements Backend.
func (f *FileBackend) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading %s: %w", key, err)
	}
	return data, true, nil
}

// Set implements Backend. The value is written to a temp file in the same
// directory and renamed over the target, so readers never observe a partial
// write.
func (f *FileBackend) Set(key string, value []byte) error {
	target := f.path(key)

	// The pattern must use the sanitized name: CreateTemp rejects
	// patterns containing path separators.
	tmp, err := os.CreateTemp(f.dir, filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", key, err)
	}
	return nil
}

// ModTime implements Backend.
func (f *FileBackend) ModTime(key string) (time.Time, bool) {
	fi, err := os.Stat(f.path(key))
	if err != nil {
		return time.Time{}, false
	}
	return fi.ModTime(), true
}
