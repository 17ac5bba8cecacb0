package wm

import "testing"

func TestGapsLayout_TwoTiles(t *testing.T) {
	m := NewGapsWM(Screen{Width: 800, Height: 600}, 5)
	addTiles(t, m, 1, 2)

	// Ungapped halves are 400x600; each shrinks by 5 on every side.
	want := []LayoutWindow{
		{Window: 1, Geometry: Geometry{X: 5, Y: 5, Width: 390, Height: 590}},
		{Window: 2, Geometry: Geometry{X: 405, Y: 5, Width: 390, Height: 590}},
	}
	layout := m.Layout()
	if len(layout.Windows) != len(want) {
		t.Fatalf("expected %d windows, got %d", len(want), len(layout.Windows))
	}
	for i, lw := range layout.Windows {
		if lw != want[i] {
			t.Fatalf("window %d: expected %+v, got %+v", i, want[i], lw)
		}
	}
}

func TestGapsLayout_SingleTile(t *testing.T) {
	m := NewGapsWM(Screen{Width: 800, Height: 600}, 10)
	addTiles(t, m, 1)
	got := m.Layout().Windows[0].Geometry
	if got != (Geometry{X: 10, Y: 10, Width: 780, Height: 580}) {
		t.Fatalf("expected inset fullscreen tile, got %+v", got)
	}
}

func TestGapsSetGapSize(t *testing.T) {
	m := NewGapsWM(Screen{Width: 800, Height: 600}, 0)
	addTiles(t, m, 1)

	// Zero gap reproduces the plain tiled layout.
	if got := m.Layout().Windows[0].Geometry; got != (Geometry{X: 0, Y: 0, Width: 800, Height: 600}) {
		t.Fatalf("expected ungapped layout, got %+v", got)
	}

	m.SetGapSize(20)
	if m.GapSize() != 20 {
		t.Fatalf("expected gap 20, got %d", m.GapSize())
	}
	if got := m.Layout().Windows[0].Geometry; got != (Geometry{X: 20, Y: 20, Width: 760, Height: 560}) {
		t.Fatalf("expected gapped layout, got %+v", got)
	}
}

func TestGapsWindowInfo_MatchesLayout(t *testing.T) {
	m := NewGapsWM(Screen{Width: 800, Height: 600}, 5)
	addTiles(t, m, 1, 2)
	info, err := m.WindowInfo(2)
	if err != nil {
		t.Fatalf("WindowInfo: %v", err)
	}
	if info.Geometry != (Geometry{X: 405, Y: 5, Width: 390, Height: 590}) {
		t.Fatalf("expected gapped tile geometry, got %+v", info.Geometry)
	}
}
