package daemon

import (
	"path/filepath"
	"testing"

	"github.com/gvassallo/layerwm/internal/config"
	"github.com/gvassallo/layerwm/internal/platform"
	"github.com/gvassallo/layerwm/internal/state"
	"github.com/gvassallo/layerwm/internal/wm"
)

func newTestEngine(t *testing.T, gap wm.GapSize) (*Engine, *platform.Fake) {
	t.Helper()
	screen := wm.Screen{Width: 800, Height: 600}
	backend := platform.NewFake(screen)
	store := state.NewStoreAt(filepath.Join(t.TempDir(), "state.json"))
	engine := NewEngine(wm.NewMultiWorkspaceWM(screen), backend, store, gap)
	return engine, backend
}

func TestEngine_AddWindowAppliesLayout(t *testing.T) {
	engine, backend := newTestEngine(t, 0)

	if err := engine.AddWindow(wm.NewTiledWindow(1, wm.Geometry{Width: 100, Height: 100})); err != nil {
		t.Fatalf("AddWindow: %v", err)
	}
	layout, ok := backend.LastApplied()
	if !ok {
		t.Fatalf("expected a layout to be applied")
	}
	if len(layout.Windows) != 1 || layout.Windows[0].Geometry != (wm.Geometry{Width: 800, Height: 600}) {
		t.Fatalf("unexpected layout %+v", layout.Windows)
	}

	// Duplicate adds fail without touching the backend again.
	applied := backend.Applied()
	if err := engine.AddWindow(wm.NewTiledWindow(1, wm.Geometry{})); err == nil {
		t.Fatalf("expected duplicate add to fail")
	}
	if backend.Applied() != applied {
		t.Fatalf("failed op must not re-apply layout")
	}
}

func TestEngine_GapAppliedToTilesOnly(t *testing.T) {
	engine, backend := newTestEngine(t, 5)

	if err := engine.AddWindow(wm.NewTiledWindow(1, wm.Geometry{Width: 100, Height: 100})); err != nil {
		t.Fatalf("AddWindow: %v", err)
	}
	floatGeom := wm.Geometry{X: 50, Y: 60, Width: 200, Height: 150}
	if err := engine.AddWindow(wm.NewFloatingWindow(9, floatGeom)); err != nil {
		t.Fatalf("AddWindow: %v", err)
	}

	layout, _ := backend.LastApplied()
	if layout.Windows[0].Geometry != (wm.Geometry{X: 5, Y: 5, Width: 790, Height: 590}) {
		t.Fatalf("expected gapped tile, got %+v", layout.Windows[0].Geometry)
	}
	if layout.Windows[1].Geometry != floatGeom {
		t.Fatalf("float must keep its rectangle, got %+v", layout.Windows[1].Geometry)
	}
}

func TestEngine_MonocleShowsOnlyFocusedWindow(t *testing.T) {
	engine, backend := newTestEngine(t, 5)

	if err := engine.AddWindow(wm.NewTiledWindow(1, wm.Geometry{Width: 10, Height: 10})); err != nil {
		t.Fatalf("AddWindow: %v", err)
	}
	if err := engine.AddWindow(wm.NewTiledWindow(2, wm.Geometry{Width: 10, Height: 10})); err != nil {
		t.Fatalf("AddWindow: %v", err)
	}
	engine.SetLayoutMode(config.LayoutModeMonocle)

	layout, _ := backend.LastApplied()
	if len(layout.Windows) != 1 || layout.Windows[0].Window != 2 {
		t.Fatalf("expected only focused window 2, got %+v", layout.Windows)
	}
	// Monocle fills the screen and ignores the gap.
	if layout.Windows[0].Geometry != (wm.Geometry{Width: 800, Height: 600}) {
		t.Fatalf("unexpected monocle geometry %+v", layout.Windows[0].Geometry)
	}
	hidden := backend.LastHidden()
	if len(hidden) != 1 || hidden[0] != 1 {
		t.Fatalf("expected window 1 hidden, got %v", hidden)
	}
}

func TestEngine_MinimisedWindowsAreHidden(t *testing.T) {
	engine, backend := newTestEngine(t, 0)
	if err := engine.AddWindow(wm.NewTiledWindow(1, wm.Geometry{Width: 10, Height: 10})); err != nil {
		t.Fatalf("AddWindow: %v", err)
	}
	if err := engine.AddWindow(wm.NewTiledWindow(2, wm.Geometry{Width: 10, Height: 10})); err != nil {
		t.Fatalf("AddWindow: %v", err)
	}
	if err := engine.ToggleMinimised(2); err != nil {
		t.Fatalf("ToggleMinimised: %v", err)
	}
	hidden := backend.LastHidden()
	if len(hidden) != 1 || hidden[0] != 2 {
		t.Fatalf("expected window 2 hidden, got %v", hidden)
	}
}

func TestEngine_SwitchWorkspaceHidesOtherWorkspace(t *testing.T) {
	engine, backend := newTestEngine(t, 0)
	if err := engine.AddWindow(wm.NewTiledWindow(1, wm.Geometry{Width: 10, Height: 10})); err != nil {
		t.Fatalf("AddWindow: %v", err)
	}
	if err := engine.SwitchWorkspace(1); err != nil {
		t.Fatalf("SwitchWorkspace: %v", err)
	}
	layout, _ := backend.LastApplied()
	if len(layout.Windows) != 0 {
		t.Fatalf("expected empty layout on workspace 1, got %v", layout.Windows)
	}
	hidden := backend.LastHidden()
	if len(hidden) != 1 || hidden[0] != 1 {
		t.Fatalf("expected window 1 hidden, got %v", hidden)
	}
}

func TestEngine_HandleEvent(t *testing.T) {
	engine, backend := newTestEngine(t, 0)

	engine.HandleEvent(platform.WindowMapped{Info: wm.NewTiledWindow(1, wm.Geometry{Width: 10, Height: 10})})
	engine.HandleEvent(platform.WindowMapped{Info: wm.NewFloatingWindow(2, wm.Geometry{Width: 20, Height: 20})})
	engine.HandleEvent(platform.GeometryRequested{Window: 2, Geometry: wm.Geometry{X: 1, Y: 2, Width: 30, Height: 40}})
	engine.HandleEvent(platform.WindowUnmapped{Window: 1})
	engine.HandleEvent(platform.ScreenResized{Screen: wm.Screen{Width: 1024, Height: 768}})

	st := engine.Status()
	if st.WindowCount != 1 {
		t.Fatalf("expected 1 window, got %d", st.WindowCount)
	}
	if st.Screen != (wm.Screen{Width: 1024, Height: 768}) {
		t.Fatalf("expected resized screen, got %v", st.Screen)
	}
	layout, _ := backend.LastApplied()
	if len(layout.Windows) != 1 || layout.Windows[0].Geometry != (wm.Geometry{X: 1, Y: 2, Width: 30, Height: 40}) {
		t.Fatalf("expected moved float, got %+v", layout.Windows)
	}

	// Events for unmanaged windows are ignored without failing.
	engine.HandleEvent(platform.WindowUnmapped{Window: 99})
}

func TestEngine_StatePersistsAcrossEngines(t *testing.T) {
	screen := wm.Screen{Width: 800, Height: 600}
	store := state.NewStoreAt(filepath.Join(t.TempDir(), "state.json"))

	engine := NewEngine(wm.NewMultiWorkspaceWM(screen), platform.NewFake(screen), store, 0)
	if err := engine.AddWindow(wm.NewTiledWindow(7, wm.Geometry{Width: 10, Height: 10})); err != nil {
		t.Fatalf("AddWindow: %v", err)
	}
	if err := engine.SwitchWorkspace(2); err != nil {
		t.Fatalf("SwitchWorkspace: %v", err)
	}

	restored, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	second := NewEngine(restored, platform.NewFake(screen), store, 0)
	st := second.Status()
	if st.CurrentWorkspace != 2 || st.WindowCount != 1 {
		t.Fatalf("restored engine mismatch: %+v", st)
	}
	windows := second.Windows()
	if len(windows) != 1 || windows[0].Window != 7 || windows[0].Workspace != 0 {
		t.Fatalf("restored windows mismatch: %+v", windows)
	}
}
