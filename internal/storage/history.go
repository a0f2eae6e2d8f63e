// Package storage persists interactive session history as JSON under the
// menuforge data directory.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// MaxEntries caps history.json; older entries are dropped on append.
const MaxEntries = 500

// Entry is one command chosen from a menu.
type Entry struct {
	Skin      string    `json:"skin"`
	Menu      string    `json:"menu"`
	Command   string    `json:"command"`
	Label     string    `json:"label,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryStore keeps entries in dir/history.json.
type HistoryStore struct {
	mu  sync.Mutex
	dir string
	now func() time.Time
}

// NewHistoryStore returns a store rooted at dir. The directory is created on
// first write.
func NewHistoryStore(dir string) *HistoryStore {
	return &HistoryStore{dir: dir, now: time.Now}
}

// Path is the history file location.
func (s *HistoryStore) Path() string {
	return filepath.Join(s.dir, "history.json")
}

// Append stamps e and adds it. A corrupt file is replaced rather than
// blocking new entries.
func (s *HistoryStore) Append(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readLocked()
	if err != nil {
		entries = nil
	}

	e.CreatedAt = s.now()
	entries = append(entries, e)
	if len(entries) > MaxEntries {
		entries = entries[len(entries)-MaxEntries:]
	}
	return s.writeLocked(entries)
}

// List returns every entry, oldest first.
func (s *HistoryStore) List() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readLocked()
}

// Recent returns the last n entries.
func (s *HistoryStore) Recent(n int) ([]Entry, error) {
	entries, err := s.List()
	if err != nil {
		return nil, err
	}
	if n <= 0 || len(entries) <= n {
		return entries, nil
	}
	return entries[len(entries)-n:], nil
}

// Clear empties the history.
func (s *HistoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeLocked(nil)
}

func (s *HistoryStore) readLocked() ([]Entry, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse history %s: %w", s.Path(), err)
	}
	return entries, nil
}

func (s *HistoryStore) writeLocked(entries []Entry) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	tmp := s.Path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return os.Rename(tmp, s.Path())
}
