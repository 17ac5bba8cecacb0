package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gvassallo/layerwm/internal/wm"
)

func TestStore_SaveAndLoad(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "state.json"))

	m := wm.NewMultiWorkspaceWM(wm.Screen{Width: 800, Height: 600})
	if err := m.AddWindow(wm.NewTiledWindow(1, wm.Geometry{Width: 100, Height: 100})); err != nil {
		t.Fatalf("AddWindow: %v", err)
	}
	if err := m.SwitchWorkspace(2); err != nil {
		t.Fatalf("SwitchWorkspace: %v", err)
	}
	if err := m.AddWindow(wm.NewFloatingWindow(9, wm.Geometry{X: 5, Y: 6, Width: 70, Height: 80})); err != nil {
		t.Fatalf("AddWindow: %v", err)
	}

	if err := store.Save(m); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.CurrentWorkspace() != 2 {
		t.Fatalf("expected workspace 2, got %d", got.CurrentWorkspace())
	}
	if len(got.Windows()) != 2 || !got.IsFloating(9) {
		t.Fatalf("restored state mismatch: windows=%v", got.Windows())
	}
}

func TestStore_LoadMissingIsNil(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "state.json"))
	got, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil manager for missing snapshot")
	}
}

func TestStore_LoadRejectsBadSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewStoreAt(path)

	if err := os.WriteFile(path, []byte(`{"version": 99}`), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := store.Load(); err == nil {
		t.Fatalf("expected error for unsupported version")
	}

	if err := os.WriteFile(path, []byte(`not json`), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := store.Load(); err == nil {
		t.Fatalf("expected error for corrupt snapshot")
	}
}

func TestStore_Clear(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "state.json"))
	if err := store.Save(wm.NewMultiWorkspaceWM(wm.Screen{Width: 800, Height: 600})); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Fatalf("expected snapshot removed")
	}
	// Clearing twice is fine.
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear again: %v", err)
	}
}
