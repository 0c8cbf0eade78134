// Package backup manages timestamped copies of the store file, for
// both the SQLite and the JSON backends.
package backup

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const (
	// MaxBackups is the retention bound; older backups are rotated out.
	MaxBackups = 14
	// BackupDirName is created next to the store file.
	BackupDirName = "backups"
	// BackupFilePrefix prefixes every backup filename.
	BackupFilePrefix = "misbaha-"
)

// Info describes one backup file.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles backup operations for one store file. The backup
// keeps the store's own extension, so a .json store produces .json
// backups and a .db store produces .db backups.
type Manager struct {
	storePath string
	backupDir string
	suffix    string
}

func NewManager(storePath string) *Manager {
	return &Manager{
		storePath: storePath,
		backupDir: filepath.Join(filepath.Dir(storePath), BackupDirName),
		suffix:    filepath.Ext(storePath),
	}
}

// BackupDir returns the backup directory path.
func (m *Manager) BackupDir() string {
	return m.backupDir
}

// Create copies the current store into the backup directory and
// rotates old backups past the retention bound.
func (m *Manager) Create() (string, error) {
	return m.create(false)
}

func (m *Manager) create(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.storePath); os.IsNotExist(err) {
		return "", fmt.Errorf("store does not exist: %s", m.storePath)
	}

	// Minute precision first, seconds when that name is taken.
	timestamp := time.Now().Format("20060102-1504")
	backupPath := filepath.Join(m.backupDir, BackupFilePrefix+timestamp+m.suffix)
	if _, err := os.Stat(backupPath); err == nil {
		timestamp = time.Now().Format("20060102-150405")
		backupPath = filepath.Join(m.backupDir, BackupFilePrefix+timestamp+m.suffix)
	}

	if err := m.copyStore(backupPath); err != nil {
		return "", fmt.Errorf("failed to back up store: %w", err)
	}

	if !skipRotation {
		if err := m.rotate(); err != nil {
			// Rotation failure never fails the backup itself.
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
		}
	}

	return backupPath, nil
}

// copyStore snapshots the store. SQLite stores go through VACUUM INTO
// for a consistent copy; JSON stores are plain file copies.
func (m *Manager) copyStore(destPath string) error {
	if m.suffix != ".db" {
		return copyFile(m.storePath, destPath)
	}

	srcDB, err := sql.Open("sqlite", m.storePath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer srcDB.Close()

	var count int
	if err := srcDB.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := srcDB.Exec("VACUUM INTO ?", destPath); err != nil {
		// VACUUM INTO needs SQLite >= 3.27; fall back to a file copy.
		srcDB.Close()
		return copyFile(m.storePath, destPath)
	}

	return nil
}

// List returns available backups, newest first.
func (m *Manager) List() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, BackupFilePrefix) || !strings.HasSuffix(name, m.suffix) {
			continue
		}

		timestampStr := strings.TrimSuffix(strings.TrimPrefix(name, BackupFilePrefix), m.suffix)
		timestamp, err := time.Parse("20060102-1504", timestampStr)
		if err != nil {
			timestamp, err = time.Parse("20060102-150405", timestampStr)
			if err != nil {
				continue
			}
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		backups = append(backups, Info{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}

	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}

	return nil
}

// Restore replaces the store with a backup. The current store is
// snapshotted first, so a mistaken restore is itself recoverable.
func (m *Manager) Restore(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}

	if err := m.verify(backupPath); err != nil {
		return fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	if _, err := os.Stat(m.storePath); err == nil {
		currentBackup, err := m.create(true)
		if err != nil {
			return fmt.Errorf("failed to back up current store before restore: %w", err)
		}
		fmt.Printf("Created backup of current store: %s\n", filepath.Base(currentBackup))
	}

	// Copy then rename, so a failed restore never leaves a truncated
	// store behind.
	tempPath := m.storePath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tempPath, m.storePath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove temporary file %s: %v\n", tempPath, removeErr)
		}
		return fmt.Errorf("failed to restore store: %w", err)
	}

	return nil
}

func (m *Manager) verify(path string) error {
	if m.suffix != ".db" {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if !json.Valid(data) {
			return fmt.Errorf("not valid JSON")
		}
		return nil
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	return destFile.Sync()
}
