package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type fileStore struct {
	Version int               `json:"version"`
	Values  map[string]string `json:"values"`
}

// JSONStore keeps the whole key space in a single JSON file and
// rewrites it on every mutation.
type JSONStore struct {
	path  string
	store *fileStore
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &fileStore{
		Version: 1,
		Values:  make(map[string]string),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'misbaha init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &fileStore{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Values == nil {
		s.store.Values = make(map[string]string)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) (string, bool, error) {
	if s.store == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}

	value, ok := s.store.Values[key]
	return value, ok, nil
}

func (s *JSONStore) Set(key, value string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Values[key] = value
	return s.save()
}

func (s *JSONStore) Delete(key string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	delete(s.store.Values, key)
	return s.save()
}

func (s *JSONStore) Clear() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Values = make(map[string]string)
	return s.save()
}

func (s *JSONStore) Path() string {
	return s.path
}
