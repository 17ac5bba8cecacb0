package wm

import "testing"

func TestMonocleLayout_OnlyTopWindowVisible(t *testing.T) {
	m := NewMonocleWM(Screen{Width: 800, Height: 600})
	addTiles(t, m, 1, 2, 3)

	layout := m.Layout()
	if len(layout.Windows) != 1 {
		t.Fatalf("expected 1 visible window, got %d", len(layout.Windows))
	}
	if layout.Windows[0].Window != 3 {
		t.Fatalf("expected 3 on top, got %d", layout.Windows[0].Window)
	}
	if layout.Windows[0].Geometry != (Geometry{X: 0, Y: 0, Width: 800, Height: 600}) {
		t.Fatalf("expected fullscreen geometry, got %+v", layout.Windows[0].Geometry)
	}
}

func TestMonocleCycleFocus_ChangesVisibleWindow(t *testing.T) {
	m := NewMonocleWM(Screen{Width: 800, Height: 600})
	addTiles(t, m, 1, 2, 3)

	m.CycleFocus(Next)
	if got := m.Layout().Windows[0].Window; got != 1 {
		t.Fatalf("expected 1 visible after Next, got %d", got)
	}
	m.CycleFocus(Prev)
	if got := m.Layout().Windows[0].Window; got != 3 {
		t.Fatalf("expected 3 visible after Prev, got %d", got)
	}
}

func TestMonocleRemoveWindow_RevealsPrevious(t *testing.T) {
	m := NewMonocleWM(Screen{Width: 800, Height: 600})
	addTiles(t, m, 1, 2)

	if err := m.RemoveWindow(2); err != nil {
		t.Fatalf("RemoveWindow: %v", err)
	}
	if got := m.Layout().Windows[0].Window; got != 1 {
		t.Fatalf("expected 1 visible, got %d", got)
	}
	if err := m.RemoveWindow(1); err != nil {
		t.Fatalf("RemoveWindow: %v", err)
	}
	if len(m.Layout().Windows) != 0 {
		t.Fatalf("expected empty layout")
	}
	if err := m.RemoveWindow(1); err == nil {
		t.Fatalf("expected error removing unknown window")
	}
}

func TestMonocleWindowInfo_AlwaysScreenSized(t *testing.T) {
	m := NewMonocleWM(Screen{Width: 640, Height: 480})
	addTiles(t, m, 5)
	info, err := m.WindowInfo(5)
	if err != nil {
		t.Fatalf("WindowInfo: %v", err)
	}
	if info.Geometry != (Geometry{X: 0, Y: 0, Width: 640, Height: 480}) {
		t.Fatalf("expected screen geometry, got %+v", info.Geometry)
	}
}
