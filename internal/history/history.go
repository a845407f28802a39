// Package history keeps a local log of operations the CLI performed against
// the scheduler service, so "todo history" works without a network call.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const maxEntries = 200

// Entry records one operation against the service.
type Entry struct {
	Timestamp string `json:"ts"`
	Action    string `json:"action"` // created, updated, deleted, synced, pushed
	TaskID    int    `json:"task_id,omitempty"`
	Title     string `json:"title,omitempty"`
	Deadline  string `json:"deadline,omitempty"`
}

// dataDir is overridable for testing.
var dataDir = defaultDataDir

func defaultDataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "todo")
}

func historyPath() string {
	return filepath.Join(dataDir(), "history.json")
}

func lockPath() string {
	return historyPath() + ".lock"
}

// Load reads the history file and returns all entries.
// Returns nil slice and nil error if the file does not exist.
func Load() ([]Entry, error) {
	data, err := os.ReadFile(historyPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Append adds a new entry to the history file, capping at maxEntries.
// The read-modify-write cycle is guarded by a file lock so concurrent
// invocations (e.g. the launchd agent racing a manual command) don't lose
// entries. Swallows load errors on corrupt files (starts fresh).
func Append(e Entry) error {
	if err := os.MkdirAll(dataDir(), 0o700); err != nil {
		return err
	}

	fl := flock.New(lockPath())
	if err := fl.Lock(); err != nil {
		return err
	}
	defer fl.Unlock() //nolint:errcheck // unlock failure leaves a stale lock file at worst

	entries, err := Load()
	if err != nil {
		// Corrupt file — start fresh.
		entries = nil
	}

	if e.Timestamp == "" {
		e.Timestamp = time.Now().Format(time.RFC3339)
	}
	entries = append(entries, e)

	// Cap at maxEntries (drop oldest).
	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}

	return atomicWrite(entries)
}

// Clear removes all history entries.
func Clear() error {
	return os.Remove(historyPath())
}

func atomicWrite(entries []Entry) error {
	path := historyPath()

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
