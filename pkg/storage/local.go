// Package storage persists the client's local state the way browser
// localStorage does: one JSON-encoded value per fixed string key. Each key
// maps to a file under the state directory; writes go through a temp file
// and rename so a crash never leaves a half-written cart behind.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store is a key/value store rooted at a single directory.
type Store struct {
	root string
}

// Open returns a Store rooted at dir, creating it when missing.
func Open(dir string) (*Store, error) {
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("storage: resolve root: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: mkdir %s: %w", dir, err)
	}
	return &Store{root: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.root, key+".json")
}

// Get returns the value stored under key, or (nil, false) when absent.
func (s *Store) Get(key string) ([]byte, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// GetString returns the stored value as a string, or "" when absent.
func (s *Store) GetString(key string) string {
	data, ok := s.Get(key)
	if !ok {
		return ""
	}
	return string(data)
}

// Put writes value under key atomically.
func (s *Store) Put(key string, value []byte) error {
	full := s.path(key)
	tmp, err := os.CreateTemp(s.root, key+".*")
	if err != nil {
		return fmt.Errorf("storage: temp for %s: %w", key, err)
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: close %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), full); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: rename %s: %w", key, err)
	}
	return nil
}

// PutString writes a string value under key.
func (s *Store) PutString(key, value string) error {
	return s.Put(key, []byte(value))
}

// Remove deletes the value under key; deleting a missing key is not an error.
func (s *Store) Remove(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: remove %s: %w", key, err)
	}
	return nil
}
