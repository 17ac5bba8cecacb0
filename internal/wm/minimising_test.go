package wm

import "testing"

func newTestMinimise() *MinimiseWM {
	return NewMinimiseWM(Screen{Width: 800, Height: 600})
}

func TestToggleMinimised_HidesTileFromLayout(t *testing.T) {
	m := newTestMinimise()
	addTiles(t, m, 1, 2, 3)

	if err := m.ToggleMinimised(2); err != nil {
		t.Fatalf("ToggleMinimised: %v", err)
	}
	if !m.IsMinimised(2) {
		t.Fatalf("expected 2 minimised")
	}
	layout := m.Layout()
	if len(layout.Windows) != 2 {
		t.Fatalf("expected 2 visible windows, got %d", len(layout.Windows))
	}
	// 1 and 3 retile as master and single stack slice.
	if layout.Windows[1] != (LayoutWindow{Window: 3, Geometry: Geometry{X: 400, Y: 0, Width: 400, Height: 600}}) {
		t.Fatalf("expected 3 on the right half, got %+v", layout.Windows[1])
	}
	// 2 stays managed and inspectable while hidden.
	if !m.IsManaged(2) {
		t.Fatalf("expected 2 still managed")
	}
	if _, err := m.WindowInfo(2); err != nil {
		t.Fatalf("WindowInfo on minimised: %v", err)
	}
}

func TestToggleMinimised_RestoreAppendsToStack(t *testing.T) {
	m := newTestMinimise()
	addTiles(t, m, 1, 2, 3)

	if err := m.ToggleMinimised(1); err != nil {
		t.Fatalf("ToggleMinimised: %v", err)
	}
	if err := m.ToggleMinimised(1); err != nil {
		t.Fatalf("ToggleMinimised: %v", err)
	}
	// Restoring does not give the old master slot back.
	layout := m.Layout()
	if layout.Windows[0].Window != 2 || layout.Windows[2].Window != 1 {
		t.Fatalf("expected tiles [2 3 1], got %v", layout.Windows)
	}
	if got, _ := m.FocusedWindow(); got != 1 {
		t.Fatalf("expected restored window focused, got %d", got)
	}
}

func TestToggleMinimised_FocusFallsBack(t *testing.T) {
	m := newTestMinimise()
	addTiles(t, m, 1, 2, 3)

	// 3 is focused; hiding it falls back to the most recently focused
	// visible window.
	if err := m.ToggleMinimised(3); err != nil {
		t.Fatalf("ToggleMinimised: %v", err)
	}
	if got, ok := m.FocusedWindow(); !ok || got != 2 {
		t.Fatalf("expected fallback focus on 2, got %d (ok=%v)", got, ok)
	}
}

func TestToggleMinimised_OnlyWindowClearsFocus(t *testing.T) {
	m := newTestMinimise()
	addTiles(t, m, 1)

	if err := m.ToggleMinimised(1); err != nil {
		t.Fatalf("ToggleMinimised: %v", err)
	}
	if _, ok := m.FocusedWindow(); ok {
		t.Fatalf("expected no focus with every window hidden")
	}
	if len(m.Layout().Windows) != 0 {
		t.Fatalf("expected empty layout")
	}
}

func TestToggleMinimised_OldestFirstOrder(t *testing.T) {
	m := newTestMinimise()
	addTiles(t, m, 1, 2, 3)
	if err := m.ToggleMinimised(2); err != nil {
		t.Fatalf("ToggleMinimised: %v", err)
	}
	if err := m.ToggleMinimised(1); err != nil {
		t.Fatalf("ToggleMinimised: %v", err)
	}
	got := m.MinimisedWindows()
	if len(got) != 2 || got[0] != 2 || got[1] != 1 {
		t.Fatalf("expected minimised [2 1], got %v", got)
	}
	if err := m.ToggleMinimised(99); err == nil {
		t.Fatalf("expected error for unknown window")
	}
}

func TestMinimisedFloat_KeepsGeometry(t *testing.T) {
	m := newTestMinimise()
	g := Geometry{X: 30, Y: 40, Width: 200, Height: 100}
	if err := m.AddWindow(NewFloatingWindow(9, g)); err != nil {
		t.Fatalf("AddWindow: %v", err)
	}
	if err := m.ToggleMinimised(9); err != nil {
		t.Fatalf("ToggleMinimised: %v", err)
	}
	if len(m.FloatingWindows()) != 0 {
		t.Fatalf("hidden float must not be reported as floating")
	}
	if err := m.ToggleMinimised(9); err != nil {
		t.Fatalf("ToggleMinimised: %v", err)
	}
	info, _ := m.WindowInfo(9)
	if info.Geometry != g || info.FloatOrTile != Float {
		t.Fatalf("expected float restored at %+v, got %+v", g, info)
	}
}

func TestFocusWindow_RestoresMinimised(t *testing.T) {
	m := newTestMinimise()
	addTiles(t, m, 1, 2)
	if err := m.ToggleMinimised(1); err != nil {
		t.Fatalf("ToggleMinimised: %v", err)
	}
	if err := m.FocusWindow(1); err != nil {
		t.Fatalf("FocusWindow: %v", err)
	}
	if m.IsMinimised(1) {
		t.Fatalf("expected focusing to restore 1")
	}
	if got, _ := m.FocusedWindow(); got != 1 {
		t.Fatalf("expected focus on 1, got %d", got)
	}
}

func TestCycleFocus_RestoresLandedWindow(t *testing.T) {
	m := newTestMinimise()
	addTiles(t, m, 1, 2, 3)
	if err := m.ToggleMinimised(1); err != nil {
		t.Fatalf("ToggleMinimised: %v", err)
	}
	// Hiding keeps 1's slot in the focus order; cycling still visits it and
	// brings it back.
	for i := 0; i < 3; i++ {
		m.CycleFocus(Next)
		if got, _ := m.FocusedWindow(); got == 1 {
			break
		}
	}
	if m.IsMinimised(1) {
		t.Fatalf("expected cycling onto 1 to restore it")
	}
}

func TestRemoveWindow_MinimisedWindow(t *testing.T) {
	m := newTestMinimise()
	addTiles(t, m, 1, 2)
	if err := m.ToggleMinimised(1); err != nil {
		t.Fatalf("ToggleMinimised: %v", err)
	}
	if err := m.RemoveWindow(1); err != nil {
		t.Fatalf("RemoveWindow: %v", err)
	}
	if m.IsManaged(1) || len(m.MinimisedWindows()) != 0 {
		t.Fatalf("expected 1 fully unmanaged")
	}
}

func TestToggleFloating_RestoresMinimisedFirst(t *testing.T) {
	m := newTestMinimise()
	addTiles(t, m, 1, 2)
	if err := m.ToggleMinimised(1); err != nil {
		t.Fatalf("ToggleMinimised: %v", err)
	}
	if err := m.ToggleFloating(1); err != nil {
		t.Fatalf("ToggleFloating: %v", err)
	}
	if m.IsMinimised(1) || !m.IsFloating(1) {
		t.Fatalf("expected 1 restored and floating")
	}
}
