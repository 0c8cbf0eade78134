// Package lockfile marks a running interactive session with a pid
// file next to the store. The lock is advisory: a stale file left by
// a crashed process is detected by checking whether the recorded pid
// is still alive.
package lockfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/donikhodjaev/misbaha/internal/constants"
)

var findProcessFunc = ps.FindProcess

// Lock is a held session lock.
type Lock struct {
	path string
}

func pathFor(storePath string) string {
	return filepath.Join(filepath.Dir(storePath), constants.LockfileName)
}

// Acquire writes a pid file next to the store. It fails when another
// live process already holds the lock; a stale file is replaced.
func Acquire(storePath string) (*Lock, error) {
	path := pathFor(storePath)

	if pid, running, err := check(path); err == nil && running {
		return nil, fmt.Errorf("another session is already running (pid %d)", pid)
	}

	content := strconv.Itoa(os.Getpid())
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}
	return &Lock{path: path}, nil
}

// Release removes the pid file.
func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lockfile: %w", err)
	}
	return nil
}

// Check reports whether a live process currently holds the lock for
// storePath. A missing or stale lockfile yields running=false.
func Check(storePath string) (pid int, running bool, err error) {
	return check(pathFor(storePath))
}

func check(path string) (int, bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to read lockfile: %w", err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil {
		return 0, false, fmt.Errorf("lockfile is malformed")
	}

	proc, err := findProcessFunc(pid)
	if err != nil {
		return pid, false, fmt.Errorf("failed to inspect process %d: %w", pid, err)
	}
	if proc == nil {
		return pid, false, nil
	}
	return pid, true, nil
}
