package wm

// MinimiseWM extends FloatingWM with the ability to hide windows
// temporarily. A minimised window keeps its management record (focus-order
// slot and recorded info) but is removed from the live tile stack or float
// map, so it vanishes from the layout until it is restored.
//
// Restoring a minimised tile appends it to the back of the tile stack, not
// its original slot; minimise-then-unminimise therefore does not restore
// the previous tiling arrangement exactly. This asymmetry is deliberate.
type MinimiseWM struct {
	Floating  FloatingWM `json:"floating"`
	Minimised []Window   `json:"minimised"`
}

// NewMinimiseWM returns an empty minimising manager for the given screen.
func NewMinimiseWM(screen Screen) *MinimiseWM {
	return &MinimiseWM{Floating: *NewFloatingWM(screen)}
}

func (m *MinimiseWM) Windows() []Window             { return m.Floating.Windows() }
func (m *MinimiseWM) IsManaged(w Window) bool       { return m.Floating.IsManaged(w) }
func (m *MinimiseWM) FocusedWindow() (Window, bool) { return m.Floating.FocusedWindow() }

func (m *MinimiseWM) AddWindow(info WindowWithInfo) error {
	return m.Floating.AddWindow(info)
}

// RemoveWindow restores a minimised window first so the wrapped managers
// see a consistent live state while unmanaging it.
func (m *MinimiseWM) RemoveWindow(w Window) error {
	if m.IsManaged(w) && m.IsMinimised(w) {
		if err := m.ToggleMinimised(w); err != nil {
			return err
		}
	}
	return m.Floating.RemoveWindow(w)
}

func (m *MinimiseWM) Layout() WindowLayout { return m.Floating.Layout() }

// FocusWindow restores w if it is minimised; focusing a hidden window
// reveals it.
func (m *MinimiseWM) FocusWindow(w Window) error {
	if m.IsManaged(w) && m.IsMinimised(w) {
		if err := m.ToggleMinimised(w); err != nil {
			return err
		}
	}
	return m.Floating.FocusWindow(w)
}

func (m *MinimiseWM) ClearFocus() { m.Floating.ClearFocus() }

// CycleFocus rotates over every managed window, minimised ones included;
// landing on a minimised window restores it.
func (m *MinimiseWM) CycleFocus(dir PrevOrNext) {
	if len(m.Floating.Tiling.Order) == 0 {
		return
	}
	m.Floating.CycleFocus(dir)
	if focused, ok := m.FocusedWindow(); ok && m.IsMinimised(focused) {
		m.ToggleMinimised(focused)
	}
}

// WindowInfo returns the recorded info verbatim, so a minimised window's
// remembered geometry and classification stay inspectable while hidden.
func (m *MinimiseWM) WindowInfo(w Window) (WindowWithInfo, error) {
	info, ok := m.Floating.Tiling.Infos[w]
	if !ok {
		return WindowWithInfo{}, &UnknownWindowError{Window: w}
	}
	return info, nil
}

func (m *MinimiseWM) Screen() Screen        { return m.Floating.Screen() }
func (m *MinimiseWM) ResizeScreen(s Screen) { m.Floating.ResizeScreen(s) }

func (m *MinimiseWM) MasterWindow() (Window, bool) { return m.Floating.MasterWindow() }

func (m *MinimiseWM) SwapWithMaster(w Window) error {
	if !m.IsManaged(w) {
		return &UnknownWindowError{Window: w}
	}
	if m.Floating.Tiling.Infos[w].FloatOrTile == Float {
		return nil
	}
	if m.IsMinimised(w) {
		if err := m.ToggleMinimised(w); err != nil {
			return err
		}
	}
	return m.Floating.SwapWithMaster(w)
}

func (m *MinimiseWM) SwapWindows(dir PrevOrNext) { m.Floating.SwapWindows(dir) }

func (m *MinimiseWM) FloatingWindows() []Window { return m.Floating.FloatingWindows() }
func (m *MinimiseWM) IsFloating(w Window) bool  { return m.Floating.IsFloating(w) }

func (m *MinimiseWM) ToggleFloating(w Window) error {
	if m.IsManaged(w) && m.IsMinimised(w) {
		if err := m.ToggleMinimised(w); err != nil {
			return err
		}
	}
	return m.Floating.ToggleFloating(w)
}

// SetWindowGeometry restores a minimised floating window before resizing
// it. A minimised tile stays hidden; the wrapped manager ignores the new
// geometry for it anyway.
func (m *MinimiseWM) SetWindowGeometry(w Window, g Geometry) error {
	if !m.IsManaged(w) {
		return &UnknownWindowError{Window: w}
	}
	if m.IsMinimised(w) && m.Floating.Tiling.Infos[w].FloatOrTile == Float {
		if err := m.ToggleMinimised(w); err != nil {
			return err
		}
	}
	return m.Floating.SetWindowGeometry(w, g)
}

func (m *MinimiseWM) MinimisedWindows() []Window {
	minimised := make([]Window, len(m.Minimised))
	copy(minimised, m.Minimised)
	return minimised
}

func (m *MinimiseWM) IsMinimised(w Window) bool {
	return indexOf(m.Minimised, w) >= 0
}

// ToggleMinimised hides a visible window or restores a hidden one.
//
// Hiding removes the window from the tile stack or float map and appends
// it to the minimised list (oldest first). If it had focus, focus falls
// back to the nearest preceding window that is still visible, or is
// cleared when none remains. Restoring reinserts the window per its
// remembered classification and focuses it.
func (m *MinimiseWM) ToggleMinimised(w Window) error {
	info, ok := m.Floating.Tiling.Infos[w]
	if !ok {
		return &UnknownWindowError{Window: w}
	}

	if m.IsMinimised(w) {
		if info.FloatOrTile == Float {
			m.Floating.Floats[w] = info.Geometry
		} else {
			m.Floating.Tiling.Tiles = append(m.Floating.Tiling.Tiles, w)
		}
		m.Minimised = removeAt(m.Minimised, indexOf(m.Minimised, w))
		return m.Floating.FocusWindow(w)
	}

	m.Minimised = append(m.Minimised, w)
	if info.FloatOrTile == Float {
		delete(m.Floating.Floats, w)
	} else if i := indexOf(m.Floating.Tiling.Tiles, w); i >= 0 {
		m.Floating.Tiling.Tiles = removeAt(m.Floating.Tiling.Tiles, i)
	}

	focused, ok := m.FocusedWindow()
	if !ok || focused != w {
		return nil
	}
	if len(m.Floating.Tiling.Order) == len(m.Minimised) {
		// Every managed window is hidden.
		m.ClearFocus()
		return nil
	}
	order := m.Floating.Tiling.Order
	for i := len(order) - 2; i >= 0; i-- {
		if !m.IsMinimised(order[i]) {
			return m.Floating.FocusWindow(order[i])
		}
	}
	m.ClearFocus()
	return nil
}
