package wm

// GapsWM wraps TilingWM and shrinks every laid-out tile by a configurable
// gap on all four sides, leaving visible space between neighbouring tiles
// and around the screen edge. A gap of zero reproduces the wrapped layout
// exactly.
type GapsWM struct {
	Tiling TilingWM `json:"tiling"`
	Gap    GapSize  `json:"gap"`
}

// NewGapsWM returns an empty gapped tiling manager for the given screen
// and initial gap size.
func NewGapsWM(screen Screen, gap GapSize) *GapsWM {
	return &GapsWM{Tiling: *NewTilingWM(screen), Gap: gap}
}

func (m *GapsWM) Windows() []Window             { return m.Tiling.Windows() }
func (m *GapsWM) IsManaged(w Window) bool       { return m.Tiling.IsManaged(w) }
func (m *GapsWM) FocusedWindow() (Window, bool) { return m.Tiling.FocusedWindow() }

func (m *GapsWM) AddWindow(info WindowWithInfo) error { return m.Tiling.AddWindow(info) }
func (m *GapsWM) RemoveWindow(w Window) error         { return m.Tiling.RemoveWindow(w) }

// Layout insets every tile of the wrapped layout by the gap. Because each
// tile shrinks on all sides, two adjacent tiles end up separated by twice
// the gap.
func (m *GapsWM) Layout() WindowLayout {
	layout := m.Tiling.Layout()
	if m.Gap == 0 {
		return layout
	}
	for i, lw := range layout.Windows {
		layout.Windows[i].Geometry = Inset(lw.Geometry, m.Gap)
	}
	return layout
}

func (m *GapsWM) FocusWindow(w Window) error { return m.Tiling.FocusWindow(w) }
func (m *GapsWM) ClearFocus()                { m.Tiling.ClearFocus() }
func (m *GapsWM) CycleFocus(dir PrevOrNext)  { m.Tiling.CycleFocus(dir) }

// WindowInfo reports the gapped geometry for a tiled window, matching what
// Layout hands out.
func (m *GapsWM) WindowInfo(w Window) (WindowWithInfo, error) {
	info, err := m.Tiling.WindowInfo(w)
	if err != nil {
		return WindowWithInfo{}, err
	}
	if info.FloatOrTile == Tile && m.Gap != 0 {
		info.Geometry = Inset(info.Geometry, m.Gap)
	}
	return info, nil
}

func (m *GapsWM) Screen() Screen        { return m.Tiling.Screen() }
func (m *GapsWM) ResizeScreen(s Screen) { m.Tiling.ResizeScreen(s) }

func (m *GapsWM) MasterWindow() (Window, bool)  { return m.Tiling.MasterWindow() }
func (m *GapsWM) SwapWithMaster(w Window) error { return m.Tiling.SwapWithMaster(w) }
func (m *GapsWM) SwapWindows(dir PrevOrNext)    { m.Tiling.SwapWindows(dir) }

func (m *GapsWM) GapSize() GapSize { return m.Gap }

func (m *GapsWM) SetGapSize(gap GapSize) { m.Gap = gap }

// Inset shrinks a rectangle by gap on all four sides.
func Inset(g Geometry, gap GapSize) Geometry {
	n := int(gap)
	return Geometry{
		X:      g.X + n,
		Y:      g.Y + n,
		Width:  g.Width - 2*n,
		Height: g.Height - 2*n,
	}
}
