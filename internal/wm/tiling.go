package wm

// TilingWM lays windows out with a master/stack algorithm: the master tile
// takes the left half of the screen and the remaining tiles split the
// right half into equal horizontal slices. A single tile takes the whole
// screen.
//
// Order holds every managed window in focus order (the last entry is the
// focused window when Focused is set). Tiles holds only the windows that
// occupy a tile, front entry first as the master. Floating windows added
// through a wrapping FloatingWM appear in Order and Infos but never in
// Tiles.
type TilingWM struct {
	Order   []Window                  `json:"order"`
	Tiles   []Window                  `json:"tiles"`
	Infos   map[Window]WindowWithInfo `json:"infos"`
	Size    Screen                    `json:"screen"`
	Focused bool                      `json:"focused"`
}

// NewTilingWM returns an empty tiling manager for the given screen.
func NewTilingWM(screen Screen) *TilingWM {
	return &TilingWM{
		Infos: make(map[Window]WindowWithInfo),
		Size:  screen,
	}
}

func (m *TilingWM) Windows() []Window {
	windows := make([]Window, len(m.Order))
	copy(windows, m.Order)
	return windows
}

func (m *TilingWM) IsManaged(w Window) bool {
	_, ok := m.Infos[w]
	return ok
}

func (m *TilingWM) FocusedWindow() (Window, bool) {
	if !m.Focused || len(m.Order) == 0 {
		return 0, false
	}
	return m.Order[len(m.Order)-1], true
}

func (m *TilingWM) AddWindow(info WindowWithInfo) error {
	if m.IsManaged(info.Window) {
		return &AlreadyManagedWindowError{Window: info.Window}
	}
	m.Order = append(m.Order, info.Window)
	m.Infos[info.Window] = info
	// A floating window keeps its slot in the focus order but never holds
	// a tile; the wrapping FloatingWM owns its geometry.
	if info.FloatOrTile == Tile {
		m.Tiles = append(m.Tiles, info.Window)
	}
	m.Focused = true
	return nil
}

func (m *TilingWM) RemoveWindow(w Window) error {
	i := indexOf(m.Order, w)
	if i < 0 {
		return &UnknownWindowError{Window: w}
	}
	floating := m.Infos[w].FloatOrTile == Float
	m.Order = removeAt(m.Order, i)
	delete(m.Infos, w)
	if floating {
		return nil
	}
	if j := indexOf(m.Tiles, w); j >= 0 {
		m.Tiles = removeAt(m.Tiles, j)
	}
	if len(m.Order) == 0 {
		m.Focused = false
	}
	return nil
}

// Layout places the master tile on the left half of the screen and splits
// the right half evenly over the remaining tiles. With a single tile the
// whole screen is used.
func (m *TilingWM) Layout() WindowLayout {
	if len(m.Order) == 0 {
		return WindowLayout{}
	}

	var layout WindowLayout
	if m.Focused {
		focused := m.Order[len(m.Order)-1]
		layout.FocusedWindow = &focused
	}

	full := m.Size.Geometry()
	switch n := len(m.Tiles); n {
	case 0:
		// Only floating windows are managed; nothing to tile.
	case 1:
		layout.Windows = []LayoutWindow{{Window: m.Tiles[0], Geometry: full}}
	default:
		layout.Windows = make([]LayoutWindow, 0, n)
		master := Geometry{X: 0, Y: 0, Width: full.Width / 2, Height: full.Height}
		layout.Windows = append(layout.Windows, LayoutWindow{Window: m.Tiles[0], Geometry: master})
		sliceHeight := full.Height / (n - 1)
		for i := 1; i < n; i++ {
			layout.Windows = append(layout.Windows, LayoutWindow{
				Window: m.Tiles[i],
				Geometry: Geometry{
					X:      master.Width,
					Y:      (i - 1) * sliceHeight,
					Width:  master.Width,
					Height: sliceHeight,
				},
			})
		}
	}
	return layout
}

func (m *TilingWM) FocusWindow(w Window) error {
	i := indexOf(m.Order, w)
	if i < 0 {
		return &UnknownWindowError{Window: w}
	}
	m.Order = append(removeAt(m.Order, i), w)
	m.Focused = true
	return nil
}

func (m *TilingWM) ClearFocus() {
	m.Focused = false
}

// CycleFocus rotates the focus order circularly. With two windows either
// direction swaps them; with one it only (re)sets the focus flag.
func (m *TilingWM) CycleFocus(dir PrevOrNext) {
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

// WindowInfo returns the recorded state of w. For a tiled window the
// geometry reflects the tile it currently occupies rather than the
// geometry it was added with.
func (m *TilingWM) WindowInfo(w Window) (WindowWithInfo, error) {
	info, ok := m.Infos[w]
	if !ok {
		return WindowWithInfo{}, &UnknownWindowError{Window: w}
	}
	if info.FloatOrTile == Tile {
		for _, lw := range m.Layout().Windows {
			if lw.Window == w {
				info.Geometry = lw.Geometry
				break
			}
		}
	}
	return info, nil
}

func (m *TilingWM) Screen() Screen {
	return m.Size
}

func (m *TilingWM) ResizeScreen(s Screen) {
	m.Size = s
}

func (m *TilingWM) MasterWindow() (Window, bool) {
	if len(m.Tiles) == 0 {
		return 0, false
	}
	return m.Tiles[0], true
}

// SwapWithMaster exchanges w with the master tile and focuses w. A managed
// window without a tile is left alone.
func (m *TilingWM) SwapWithMaster(w Window) error {
	if !m.IsManaged(w) {
		return &UnknownWindowError{Window: w}
	}
	i := indexOf(m.Tiles, w)
	if i < 0 {
		return nil
	}
	m.Tiles[0], m.Tiles[i] = m.Tiles[i], m.Tiles[0]
	return m.FocusWindow(w)
}

// SwapWindows exchanges the focused window's tile with its circular
// neighbour. Exactly two tiles always swap regardless of direction.
func (m *TilingWM) SwapWindows(dir PrevOrNext) {
	if !m.Focused || len(m.Order) == 0 {
		return
	}
	n := len(m.Tiles)
	if n < 2 {
		return
	}
	if n == 2 {
		m.Tiles[0], m.Tiles[1] = m.Tiles[1], m.Tiles[0]
		return
	}
	i := indexOf(m.Tiles, m.Order[len(m.Order)-1])
	if i < 0 {
		// Focused window holds no tile; nothing to swap.
		return
	}
	var j int
	if dir == Prev {
		j = (i - 1 + n) % n
	} else {
		j = (i + 1) % n
	}
	m.Tiles[i], m.Tiles[j] = m.Tiles[j], m.Tiles[i]
}

func indexOf(ws []Window, w Window) int {
	for i, x := range ws {
		if x == w {
			return i
		}
	}
	return -1
}

func removeAt(ws []Window, i int) []Window {
	out := make([]Window, 0, len(ws)-1)
	out = append(out, ws[:i]...)
	return append(out, ws[i+1:]...)
}
