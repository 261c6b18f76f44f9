// Package storage provides key-value backends for persisted app state.
package storage

import "time"

// Backend is the persistence port used by the progress store.
// A missing key is reported as ok=false, not as an error.
type Backend interface {
	// Get returns the stored value for key, or ok=false if the key is absent.
	Get(key string) ([]byte, bool, error)
	// Set stores value under key, replacing any previous value atomically.
	Set(key string, value []byte) error
	// ModTime returns the last modification time of key, or ok=false if the
	// key is absent or the backend cannot tell.
	ModTime(key string) (time.Time, bool)
}
