package wm

// FullWM extends MinimiseWM with fullscreen support: at most one window
// can occupy the whole screen exclusively, hiding everything else from the
// layout. Any structural operation (swaps, float/minimise toggles,
// geometry changes, additions) first drops the fullscreen mode so the
// invariants of the wrapped managers are never violated behind the
// fullscreen window's back.
type FullWM struct {
	Minimise   MinimiseWM `json:"minimise"`
	Fullscreen *Window    `json:"fullscreen,omitempty"`
}

// NewFullWM returns an empty fullscreen-capable manager for the given
// screen.
func NewFullWM(screen Screen) *FullWM {
	return &FullWM{Minimise: *NewMinimiseWM(screen)}
}

func (m *FullWM) Windows() []Window             { return m.Minimise.Windows() }
func (m *FullWM) IsManaged(w Window) bool       { return m.Minimise.IsManaged(w) }
func (m *FullWM) FocusedWindow() (Window, bool) { return m.Minimise.FocusedWindow() }

// AddWindow drops an existing fullscreen window before adding, then
// honours the new window's fullscreen request.
func (m *FullWM) AddWindow(info WindowWithInfo) error {
	if m.IsManaged(info.Window) {
		return &AlreadyManagedWindowError{Window: info.Window}
	}
	if m.Fullscreen != nil {
		m.demote()
	}
	if err := m.Minimise.AddWindow(info); err != nil {
		return err
	}
	if info.Fullscreen {
		return m.ToggleFullscreen(info.Window)
	}
	return nil
}

func (m *FullWM) RemoveWindow(w Window) error {
	if m.Fullscreen != nil && *m.Fullscreen == w {
		m.demote()
	}
	return m.Minimise.RemoveWindow(w)
}

// Layout shows only the fullscreen window when one is set, sized to the
// whole screen and focused.
func (m *FullWM) Layout() WindowLayout {
	if m.Fullscreen == nil {
		return m.Minimise.Layout()
	}
	w := *m.Fullscreen
	return WindowLayout{
		FocusedWindow: &w,
		Windows:       []LayoutWindow{{Window: w, Geometry: m.Screen().Geometry()}},
	}
}

// FocusWindow cancels fullscreen when focus moves to any other window.
func (m *FullWM) FocusWindow(w Window) error {
	if !m.IsManaged(w) {
		return &UnknownWindowError{Window: w}
	}
	if m.Fullscreen != nil && *m.Fullscreen != w {
		m.demote()
	}
	return m.Minimise.FocusWindow(w)
}

// ClearFocus cancels an existing fullscreen; an unfocused window cannot
// stay exclusively visible.
func (m *FullWM) ClearFocus() {
	if m.Fullscreen != nil {
		m.demote()
	}
	m.Minimise.ClearFocus()
}

// CycleFocus drops fullscreen before rotating, unless the fullscreen
// window is the only one managed.
func (m *FullWM) CycleFocus(dir PrevOrNext) {
	if m.Fullscreen != nil {
		if len(m.Windows()) <= 1 {
			return
		}
		m.demote()
	}
	m.Minimise.CycleFocus(dir)
}

func (m *FullWM) WindowInfo(w Window) (WindowWithInfo, error) {
	return m.Minimise.WindowInfo(w)
}

func (m *FullWM) Screen() Screen        { return m.Minimise.Screen() }
func (m *FullWM) ResizeScreen(s Screen) { m.Minimise.ResizeScreen(s) }

func (m *FullWM) MasterWindow() (Window, bool) { return m.Minimise.MasterWindow() }

func (m *FullWM) SwapWithMaster(w Window) error {
	if m.IsManaged(w) && m.Fullscreen != nil {
		m.demote()
	}
	return m.Minimise.SwapWithMaster(w)
}

func (m *FullWM) SwapWindows(dir PrevOrNext) {
	if m.Fullscreen != nil {
		m.demote()
	}
	m.Minimise.SwapWindows(dir)
}

// FloatingWindows reports only the visible floats: under fullscreen that
// is the fullscreen window itself when it floats, or nothing.
func (m *FullWM) FloatingWindows() []Window {
	if m.Fullscreen != nil {
		if m.IsFloating(*m.Fullscreen) {
			return []Window{*m.Fullscreen}
		}
		return nil
	}
	return m.Minimise.FloatingWindows()
}

func (m *FullWM) IsFloating(w Window) bool { return m.Minimise.IsFloating(w) }

func (m *FullWM) ToggleFloating(w Window) error {
	if m.IsManaged(w) && m.Fullscreen != nil {
		m.demote()
	}
	return m.Minimise.ToggleFloating(w)
}

func (m *FullWM) SetWindowGeometry(w Window, g Geometry) error {
	if m.IsManaged(w) && m.Fullscreen != nil {
		m.demote()
	}
	return m.Minimise.SetWindowGeometry(w, g)
}

func (m *FullWM) MinimisedWindows() []Window { return m.Minimise.MinimisedWindows() }
func (m *FullWM) IsMinimised(w Window) bool  { return m.Minimise.IsMinimised(w) }

// ToggleMinimised remembers the fullscreen flag when the fullscreen window
// is minimised, so restoring the window also restores its fullscreen mode.
func (m *FullWM) ToggleMinimised(w Window) error {
	if !m.IsManaged(w) {
		return &UnknownWindowError{Window: w}
	}
	if !m.IsMinimised(w) {
		if m.Fullscreen != nil {
			wasFullscreen := *m.Fullscreen == w
			m.demote()
			if wasFullscreen {
				info := m.Minimise.Floating.Tiling.Infos[w]
				info.Fullscreen = true
				m.Minimise.Floating.Tiling.Infos[w] = info
			}
		}
		return m.Minimise.ToggleMinimised(w)
	}
	if m.Fullscreen != nil {
		m.demote()
	}
	restoreFullscreen := m.Minimise.Floating.Tiling.Infos[w].Fullscreen
	if err := m.Minimise.ToggleMinimised(w); err != nil {
		return err
	}
	if restoreFullscreen {
		return m.ToggleFullscreen(w)
	}
	return nil
}

func (m *FullWM) FullscreenWindow() (Window, bool) {
	if m.Fullscreen == nil {
		return 0, false
	}
	return *m.Fullscreen, true
}

// ToggleFullscreen promotes w to the exclusive fullscreen window, demoting
// any other fullscreen window first, or clears the mode when w already
// holds it. Clearing changes nothing structurally: the window keeps its
// tile or float slot.
func (m *FullWM) ToggleFullscreen(w Window) error {
	if !m.IsManaged(w) {
		return &UnknownWindowError{Window: w}
	}
	if m.Fullscreen != nil && *m.Fullscreen == w {
		m.demote()
		return nil
	}
	if m.Fullscreen != nil {
		m.demote()
	}
	m.promote(w)
	return m.Minimise.FocusWindow(w)
}

func (m *FullWM) demote() {
	w := *m.Fullscreen
	info := m.Minimise.Floating.Tiling.Infos[w]
	info.Fullscreen = false
	m.Minimise.Floating.Tiling.Infos[w] = info
	m.Fullscreen = nil
}

func (m *FullWM) promote(w Window) {
	info := m.Minimise.Floating.Tiling.Infos[w]
	info.Fullscreen = true
	m.Minimise.Floating.Tiling.Infos[w] = info
	m.Fullscreen = &w
}
