package wm

// MultiWorkspaceWM multiplexes a fixed set of fullscreen-capable managers,
// one per workspace. Exactly one workspace is current at a time; layout,
// focus and cycling act on the current workspace, while window-addressed
// operations are routed to the workspace that owns the window. Queries
// over the managed set (Windows, FloatingWindows, MinimisedWindows,
// IsManaged and friends) cover every workspace, not just the current one.
type MultiWorkspaceWM struct {
	Workspaces []FullWM       `json:"workspaces"`
	Current    WorkspaceIndex `json:"current"`
}

// NewMultiWorkspaceWM returns a manager with MaxWorkspaceIndex+1 empty
// workspaces, all sharing the given screen, with workspace 0 current.
func NewMultiWorkspaceWM(screen Screen) *MultiWorkspaceWM {
	workspaces := make([]FullWM, MaxWorkspaceIndex+1)
	for i := range workspaces {
		workspaces[i] = *NewFullWM(screen)
	}
	return &MultiWorkspaceWM{Workspaces: workspaces}
}

func (m *MultiWorkspaceWM) current() *FullWM {
	return &m.Workspaces[m.Current]
}

// owner returns the workspace holding w.
func (m *MultiWorkspaceWM) owner(w Window) (WorkspaceIndex, bool) {
	for i := range m.Workspaces {
		if m.Workspaces[i].IsManaged(w) {
			return WorkspaceIndex(i), true
		}
	}
	return 0, false
}

func (m *MultiWorkspaceWM) Windows() []Window {
	var windows []Window
	for i := range m.Workspaces {
		windows = append(windows, m.Workspaces[i].Windows()...)
	}
	return windows
}

func (m *MultiWorkspaceWM) IsManaged(w Window) bool {
	_, ok := m.owner(w)
	return ok
}

func (m *MultiWorkspaceWM) FocusedWindow() (Window, bool) {
	return m.current().FocusedWindow()
}

// AddWindow manages a new window on the current workspace. A window known
// to any workspace counts as already managed.
func (m *MultiWorkspaceWM) AddWindow(info WindowWithInfo) error {
	if m.IsManaged(info.Window) {
		return &AlreadyManagedWindowError{Window: info.Window}
	}
	return m.current().AddWindow(info)
}

func (m *MultiWorkspaceWM) RemoveWindow(w Window) error {
	i, ok := m.owner(w)
	if !ok {
		return &UnknownWindowError{Window: w}
	}
	return m.Workspaces[i].RemoveWindow(w)
}

func (m *MultiWorkspaceWM) Layout() WindowLayout {
	return m.current().Layout()
}

// FocusWindow focuses w on its own workspace and then makes that workspace
// current, so focusing a window on another workspace also switches to it.
func (m *MultiWorkspaceWM) FocusWindow(w Window) error {
	i, ok := m.owner(w)
	if !ok {
		return &UnknownWindowError{Window: w}
	}
	if err := m.Workspaces[i].FocusWindow(w); err != nil {
		return err
	}
	return m.SwitchWorkspace(i)
}

func (m *MultiWorkspaceWM) ClearFocus() {
	m.current().ClearFocus()
}

func (m *MultiWorkspaceWM) CycleFocus(dir PrevOrNext) {
	m.current().CycleFocus(dir)
}

func (m *MultiWorkspaceWM) WindowInfo(w Window) (WindowWithInfo, error) {
	i, ok := m.owner(w)
	if !ok {
		return WindowWithInfo{}, &UnknownWindowError{Window: w}
	}
	return m.Workspaces[i].WindowInfo(w)
}

func (m *MultiWorkspaceWM) Screen() Screen {
	return m.current().Screen()
}

// ResizeScreen resizes every workspace; they all view the same screen.
func (m *MultiWorkspaceWM) ResizeScreen(s Screen) {
	for i := range m.Workspaces {
		m.Workspaces[i].ResizeScreen(s)
	}
}

func (m *MultiWorkspaceWM) MasterWindow() (Window, bool) {
	return m.current().MasterWindow()
}

// SwapWithMaster swaps w on its own workspace without switching to it.
func (m *MultiWorkspaceWM) SwapWithMaster(w Window) error {
	i, ok := m.owner(w)
	if !ok {
		return &UnknownWindowError{Window: w}
	}
	return m.Workspaces[i].SwapWithMaster(w)
}

func (m *MultiWorkspaceWM) SwapWindows(dir PrevOrNext) {
	m.current().SwapWindows(dir)
}

func (m *MultiWorkspaceWM) FloatingWindows() []Window {
	var floating []Window
	for i := range m.Workspaces {
		floating = append(floating, m.Workspaces[i].FloatingWindows()...)
	}
	return floating
}

func (m *MultiWorkspaceWM) IsFloating(w Window) bool {
	i, ok := m.owner(w)
	if !ok {
		return false
	}
	return m.Workspaces[i].IsFloating(w)
}

func (m *MultiWorkspaceWM) ToggleFloating(w Window) error {
	i, ok := m.owner(w)
	if !ok {
		return &UnknownWindowError{Window: w}
	}
	return m.Workspaces[i].ToggleFloating(w)
}

func (m *MultiWorkspaceWM) SetWindowGeometry(w Window, g Geometry) error {
	i, ok := m.owner(w)
	if !ok {
		return &UnknownWindowError{Window: w}
	}
	return m.Workspaces[i].SetWindowGeometry(w, g)
}

func (m *MultiWorkspaceWM) MinimisedWindows() []Window {
	var minimised []Window
	for i := range m.Workspaces {
		minimised = append(minimised, m.Workspaces[i].MinimisedWindows()...)
	}
	return minimised
}

func (m *MultiWorkspaceWM) IsMinimised(w Window) bool {
	i, ok := m.owner(w)
	if !ok {
		return false
	}
	return m.Workspaces[i].IsMinimised(w)
}

// ToggleMinimised hides w in place; restoring a window on another
// workspace switches to that workspace first so the restored window
// becomes visible.
func (m *MultiWorkspaceWM) ToggleMinimised(w Window) error {
	i, ok := m.owner(w)
	if !ok {
		return &UnknownWindowError{Window: w}
	}
	if m.Workspaces[i].IsMinimised(w) && i != m.Current {
		if err := m.SwitchWorkspace(i); err != nil {
			return err
		}
	}
	return m.Workspaces[i].ToggleMinimised(w)
}

func (m *MultiWorkspaceWM) FullscreenWindow() (Window, bool) {
	return m.current().FullscreenWindow()
}

// ToggleFullscreen switches to w's workspace before toggling; a window
// made fullscreen is always on the current workspace afterwards.
func (m *MultiWorkspaceWM) ToggleFullscreen(w Window) error {
	i, ok := m.owner(w)
	if !ok {
		return &UnknownWindowError{Window: w}
	}
	if err := m.SwitchWorkspace(i); err != nil {
		return err
	}
	return m.Workspaces[i].ToggleFullscreen(w)
}

func (m *MultiWorkspaceWM) CurrentWorkspace() WorkspaceIndex {
	return m.Current
}

// SwitchWorkspace makes workspace i current. Leaving a workspace drops its
// fullscreen mode, so coming back shows the regular layout.
func (m *MultiWorkspaceWM) SwitchWorkspace(i WorkspaceIndex) error {
	if i < 0 || i > MaxWorkspaceIndex {
		return &InvalidWorkspaceError{Index: i}
	}
	if i == m.Current {
		return nil
	}
	if fw, ok := m.current().FullscreenWindow(); ok {
		if err := m.current().ToggleFullscreen(fw); err != nil {
			return err
		}
	}
	m.Current = i
	return nil
}

// Workspace exposes the manager behind a single workspace, mainly for
// inspection.
func (m *MultiWorkspaceWM) Workspace(i WorkspaceIndex) (*FullWM, error) {
	if i < 0 || i > MaxWorkspaceIndex {
		return nil, &InvalidWorkspaceError{Index: i}
	}
	return &m.Workspaces[i], nil
}
