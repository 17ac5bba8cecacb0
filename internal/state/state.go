// Package state persists the window-manager state across daemon restarts.
// The snapshot is a JSON file in the runtime directory holding the full
// multi-workspace manager plus bookkeeping metadata.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/gvassallo/layerwm/internal/runtimepath"
	"github.com/gvassallo/layerwm/internal/wm"
)

// SchemaVersion guards against loading snapshots written by an
// incompatible build.
const SchemaVersion = 1

// Snapshot is the on-disk representation of the manager state.
type Snapshot struct {
	Version int                  `json:"version"`
	SavedAt time.Time            `json:"saved_at"`
	Manager *wm.MultiWorkspaceWM `json:"manager"`
}

// Store reads and writes snapshots at a fixed path.
type Store struct {
	path string
}

// NewStore returns a store at the default runtime location.
func NewStore() (*Store, error) {
	path, err := runtimepath.StatePath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve state path: %w", err)
	}
	return &Store{path: path}, nil
}

// NewStoreAt returns a store at an explicit path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the snapshot file path.
func (s *Store) Path() string { return s.path }

// Save writes the manager state. The write goes through a temp file and a
// rename so a crash mid-write never leaves a truncated snapshot behind.
func (s *Store) Save(m *wm.MultiWorkspaceWM) error {
	snap := Snapshot{
		Version: SchemaVersion,
		SavedAt: time.Now(),
		Manager: m,
	}

	data, err := json.MarshalIndent(&snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state snapshot: %w", err)
	}
	data = append(data, '\n')

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write state snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace state snapshot: %w", err)
	}
	return nil
}

// Load reads the last saved manager state. A missing snapshot returns
// (nil, nil): the caller starts fresh.
func (s *Store) Load() (*wm.MultiWorkspaceWM, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read state snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse state snapshot: %w", err)
	}
	if snap.Version != SchemaVersion {
		return nil, fmt.Errorf("state snapshot version %d is not supported", snap.Version)
	}
	if snap.Manager == nil || len(snap.Manager.Workspaces) != int(wm.MaxWorkspaceIndex)+1 {
		return nil, fmt.Errorf("state snapshot is malformed")
	}
	return snap.Manager, nil
}

// Clear removes the snapshot file if present.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove state snapshot: %w", err)
	}
	return nil
}
