// Package session persists the bearer token between CLI invocations.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/finlens/finlens/internal/config"
)

// State is the saved authentication state.
type State struct {
	Token   string    `json:"token"`
	Email   string    `json:"email,omitempty"`
	SavedAt time.Time `json:"saved_at"`
}

// Store reads and writes the session state file. The zero value is not
// usable; construct with NewStore.
type Store struct {
	path string
}

// NewStore creates a store using the default state file location.
func NewStore() (*Store, error) {
	dir, err := config.DataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}
	return &Store{path: filepath.Join(dir, "session.json")}, nil
}

// NewStoreAt creates a store backed by an explicit file path. Used by tests
// and by the --session-file override.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the saved session. A missing file is not an error; it returns
// an empty state.
func (s *Store) Load() (State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("failed to read session file: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, fmt.Errorf("failed to parse session file: %w", err)
	}

	return state, nil
}

// Token returns the saved bearer token, or "" when logged out.
func (s *Store) Token() string {
	state, err := s.Load()
	if err != nil {
		slog.Warn("Could not load session state", "error", err, "path", s.path)
		return ""
	}
	return state.Token
}

// Save persists a new session, replacing any existing one. The write goes
// through a temp file and rename so a crash never leaves a torn state file.
func (s *Store) Save(state State) error {
	if state.SavedAt.IsZero() {
		state.SavedAt = time.Now()
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}

	return nil
}

// Clear removes the persisted session. Clearing an absent session is a
// no-op.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
