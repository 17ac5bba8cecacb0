package wm

// MonocleWM is the simplest manager: every window is drawn fullscreen and
// only the focused window is visible. It keeps no per-window geometry; the
// screen rectangle is the only geometry it ever hands out.
type MonocleWM struct {
	Order   []Window `json:"order"`
	Size    Screen   `json:"screen"`
	Focused bool     `json:"focused"`
}

// NewMonocleWM returns an empty monocle manager for the given screen.
func NewMonocleWM(screen Screen) *MonocleWM {
	return &MonocleWM{Size: screen}
}

func (m *MonocleWM) Windows() []Window {
	windows := make([]Window, len(m.Order))
	copy(windows, m.Order)
	return windows
}

func (m *MonocleWM) IsManaged(w Window) bool {
	return indexOf(m.Order, w) >= 0
}

func (m *MonocleWM) FocusedWindow() (Window, bool) {
	if !m.Focused || len(m.Order) == 0 {
		return 0, false
	}
	return m.Order[len(m.Order)-1], true
}

func (m *MonocleWM) AddWindow(info WindowWithInfo) error {
	if m.IsManaged(info.Window) {
		return &AlreadyManagedWindowError{Window: info.Window}
	}
	m.Order = append(m.Order, info.Window)
	m.Focused = true
	return nil
}

func (m *MonocleWM) RemoveWindow(w Window) error {
	i := indexOf(m.Order, w)
	if i < 0 {
		return &UnknownWindowError{Window: w}
	}
	m.Order = removeAt(m.Order, i)
	if len(m.Order) == 0 {
		m.Focused = false
	}
	return nil
}

// Layout shows only the most recently focused window, fullscreen.
func (m *MonocleWM) Layout() WindowLayout {
	if len(m.Order) == 0 {
		return WindowLayout{}
	}
	top := m.Order[len(m.Order)-1]
	layout := WindowLayout{
		Windows: []LayoutWindow{{Window: top, Geometry: m.Size.Geometry()}},
	}
	if m.Focused {
		layout.FocusedWindow = &top
	}
	return layout
}

func (m *MonocleWM) FocusWindow(w Window) error {
	i := indexOf(m.Order, w)
	if i < 0 {
		return &UnknownWindowError{Window: w}
	}
	m.Order = append(removeAt(m.Order, i), w)
	m.Focused = true
	return nil
}

func (m *MonocleWM) ClearFocus() {
	m.Focused = false
}

func (m *MonocleWM) CycleFocus(dir PrevOrNext) {
	switch len(m.Order) {
	case 0:
		return
	case 1:
	case 2:
		m.Order[0], m.Order[1] = m.Order[1], m.Order[0]
	default:
		if dir == Prev {
			last := m.Order[len(m.Order)-1]
			m.Order = append([]Window{last}, m.Order[:len(m.Order)-1]...)
		} else {
			first := m.Order[0]
			m.Order = append(m.Order[1:], first)
		}
	}
	m.Focused = true
}

func (m *MonocleWM) WindowInfo(w Window) (WindowWithInfo, error) {
	if !m.IsManaged(w) {
		return WindowWithInfo{}, &UnknownWindowError{Window: w}
	}
	return NewTiledWindow(w, m.Size.Geometry()), nil
}

func (m *MonocleWM) Screen() Screen {
	return m.Size
}

func (m *MonocleWM) ResizeScreen(s Screen) {
	m.Size = s
}
