package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// schemaVersion is written to PRAGMA user_version. The key/value
// schema is a single table, so there is no migration runner; a newer
// on-disk version than this binary understands is refused.
const schemaVersion = 1

// SQLiteStore keeps the key space in a single kv table.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("failed to set schema version: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'misbaha init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("database schema version %d is newer than this binary supports (%d)", version, schemaVersion)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

// Ping verifies the connection with a trivial query.
func (s *SQLiteStore) Ping() error {
	if s.db == nil {
		return fmt.Errorf("database is not open")
	}
	var one int
	if err := s.db.QueryRow("SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

// SchemaVersion reads PRAGMA user_version.
func (s *SQLiteStore) SchemaVersion() (int, error) {
	if s.db == nil {
		return 0, fmt.Errorf("database is not open")
	}
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

func (s *SQLiteStore) Get(key string) (string, bool, error) {
	if s.db == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}

	return value, true, nil
}

func (s *SQLiteStore) Set(key, value string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}

	return nil
}

func (s *SQLiteStore) Delete(key string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}

	return nil
}

func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, err := s.db.Exec("DELETE FROM kv"); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Path() string {
	return s.path
}
