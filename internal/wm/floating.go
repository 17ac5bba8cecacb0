package wm

// FloatingWM extends TilingWM with floating windows: windows positioned
// and sized independently of the tiling algorithm, always drawn above the
// tiles. Floats maps each floating window to its explicit geometry; the
// window's entry in the wrapped manager's focus order is kept so focus
// handling stays uniform across tiled and floating windows.
type FloatingWM struct {
	Tiling TilingWM            `json:"tiling"`
	Floats map[Window]Geometry `json:"floats"`
}

// NewFloatingWM returns an empty floating manager for the given screen.
func NewFloatingWM(screen Screen) *FloatingWM {
	return &FloatingWM{
		Tiling: *NewTilingWM(screen),
		Floats: make(map[Window]Geometry),
	}
}

func (m *FloatingWM) Windows() []Window            { return m.Tiling.Windows() }
func (m *FloatingWM) IsManaged(w Window) bool      { return m.Tiling.IsManaged(w) }
func (m *FloatingWM) FocusedWindow() (Window, bool) { return m.Tiling.FocusedWindow() }

func (m *FloatingWM) AddWindow(info WindowWithInfo) error {
	if err := m.Tiling.AddWindow(info); err != nil {
		return err
	}
	if info.FloatOrTile == Float {
		m.Floats[info.Window] = info.Geometry
	}
	return nil
}

func (m *FloatingWM) RemoveWindow(w Window) error {
	if err := m.Tiling.RemoveWindow(w); err != nil {
		return err
	}
	delete(m.Floats, w)
	return nil
}

// Layout appends the floating windows after the tiled layout, in focus
// order, so floats always stack above the tiles and the most recently
// focused float is on top.
func (m *FloatingWM) Layout() WindowLayout {
	layout := m.Tiling.Layout()
	for _, w := range m.Tiling.Order {
		if g, ok := m.Floats[w]; ok {
			layout.Windows = append(layout.Windows, LayoutWindow{Window: w, Geometry: g})
		}
	}
	return layout
}

func (m *FloatingWM) FocusWindow(w Window) error { return m.Tiling.FocusWindow(w) }
func (m *FloatingWM) ClearFocus()                { m.Tiling.ClearFocus() }
func (m *FloatingWM) CycleFocus(dir PrevOrNext)  { m.Tiling.CycleFocus(dir) }

func (m *FloatingWM) WindowInfo(w Window) (WindowWithInfo, error) {
	return m.Tiling.WindowInfo(w)
}

func (m *FloatingWM) Screen() Screen         { return m.Tiling.Screen() }
func (m *FloatingWM) ResizeScreen(s Screen)  { m.Tiling.ResizeScreen(s) }

func (m *FloatingWM) MasterWindow() (Window, bool) { return m.Tiling.MasterWindow() }

func (m *FloatingWM) SwapWithMaster(w Window) error {
	return m.Tiling.SwapWithMaster(w)
}

// SwapWindows is a no-op while a floating window is focused; tiles keep
// their arrangement.
func (m *FloatingWM) SwapWindows(dir PrevOrNext) {
	focused, ok := m.FocusedWindow()
	if !ok || m.IsFloating(focused) {
		return
	}
	m.Tiling.SwapWindows(dir)
}

func (m *FloatingWM) FloatingWindows() []Window {
	// Report floats in focus order so callers see a stable ordering.
	floating := make([]Window, 0, len(m.Floats))
	for _, w := range m.Tiling.Order {
		if _, ok := m.Floats[w]; ok {
			floating = append(floating, w)
		}
	}
	return floating
}

func (m *FloatingWM) IsFloating(w Window) bool {
	_, ok := m.Floats[w]
	return ok
}

// ToggleFloating sinks a floating window to the back of the tile stack, or
// lifts a tiled window out of it. A window lifted to float reuses its
// recorded geometry; a sunk window's float geometry is dropped since the
// tiling algorithm assigns its rectangle.
func (m *FloatingWM) ToggleFloating(w Window) error {
	info, ok := m.Tiling.Infos[w]
	if !ok {
		return &UnknownWindowError{Window: w}
	}
	if info.FloatOrTile == Float {
		delete(m.Floats, w)
		m.Tiling.Tiles = append(m.Tiling.Tiles, w)
		info.FloatOrTile = Tile
	} else {
		if i := indexOf(m.Tiling.Tiles, w); i >= 0 {
			m.Tiling.Tiles = removeAt(m.Tiling.Tiles, i)
		}
		m.Floats[w] = info.Geometry
		info.FloatOrTile = Float
	}
	m.Tiling.Infos[w] = info
	return nil
}

// SetWindowGeometry records a new geometry for a floating window. On a
// managed but non-floating window it silently does nothing; the tiling
// algorithm owns that window's rectangle.
func (m *FloatingWM) SetWindowGeometry(w Window, g Geometry) error {
	info, ok := m.Tiling.Infos[w]
	if !ok {
		return &UnknownWindowError{Window: w}
	}
	if _, floating := m.Floats[w]; floating {
		m.Floats[w] = g
		info.Geometry = g
		m.Tiling.Infos[w] = info
	}
	return nil
}
