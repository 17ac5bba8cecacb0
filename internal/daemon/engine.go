// Package daemon hosts the running window manager: the state engine that
// serializes operations on the workspace manager, realizes layouts through
// the display backend and snapshots state after every mutation.
package daemon

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gvassallo/layerwm/internal/config"
	"github.com/gvassallo/layerwm/internal/platform"
	"github.com/gvassallo/layerwm/internal/state"
	"github.com/gvassallo/layerwm/internal/wm"
)

// Engine owns the workspace manager. All access goes through its methods;
// the mutex makes IPC handlers and the backend event loop safe to run
// concurrently. After every successful mutation the resulting layout is
// applied to the backend and the state is snapshotted.
type Engine struct {
	mu      sync.Mutex
	manager *wm.MultiWorkspaceWM
	backend platform.Backend
	store   *state.Store
	gap     wm.GapSize
	mode    config.LayoutMode
	started time.Time
}

// Status is a point-in-time summary of the engine for IPC and tooling.
type Status struct {
	CurrentWorkspace wm.WorkspaceIndex
	WindowCount      int
	FocusedWindow    *wm.Window
	FullscreenWindow *wm.Window
	Screen           wm.Screen
	GapSize          wm.GapSize
	UptimeSeconds    int64
}

// WindowState describes one managed window for IPC and tooling.
type WindowState struct {
	Window     wm.Window
	Workspace  wm.WorkspaceIndex
	Geometry   wm.Geometry
	Floating   bool
	Minimised  bool
	Fullscreen bool
	Focused    bool
}

// NewEngine builds an engine around an existing manager (usually restored
// from a snapshot, or fresh). store may be nil to disable persistence.
func NewEngine(manager *wm.MultiWorkspaceWM, backend platform.Backend, store *state.Store, gap wm.GapSize) *Engine {
	return &Engine{
		manager: manager,
		backend: backend,
		store:   store,
		gap:     gap,
		mode:    config.LayoutModeMasterStack,
		started: time.Now(),
	}
}

// SetLayoutMode switches between master-stack and monocle rendering and
// re-applies the layout.
func (e *Engine) SetLayoutMode(mode config.LayoutMode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mode = mode
	e.sync()
}

// sync applies the current layout and persists the state. Backend and
// snapshot failures are logged, not propagated: the in-memory state is
// already committed.
func (e *Engine) sync() {
	layout := e.layoutLocked()

	visible := make(map[wm.Window]struct{}, len(layout.Windows))
	for _, lw := range layout.Windows {
		visible[lw.Window] = struct{}{}
	}
	var hidden []wm.Window
	for _, w := range e.manager.Windows() {
		if _, ok := visible[w]; !ok {
			hidden = append(hidden, w)
		}
	}

	if err := e.backend.Apply(layout, hidden); err != nil {
		slog.Error("failed to apply layout", "error", err)
	}
	if e.store != nil {
		if err := e.store.Save(e.manager); err != nil {
			slog.Error("failed to snapshot state", "error", err)
		}
	}
}

// layoutLocked computes the visible layout with the configured gap applied
// to tiled windows. Floats and a fullscreen window keep their exact
// rectangles.
func (e *Engine) layoutLocked() wm.WindowLayout {
	layout := e.manager.Layout()

	// Monocle shows only the focused window, fullscreen. Gaps do not apply.
	if e.mode == config.LayoutModeMonocle {
		w, ok := layout.Focus()
		if !ok {
			return layout
		}
		screen := e.manager.Screen()
		return wm.WindowLayout{
			FocusedWindow: &w,
			Windows: []wm.LayoutWindow{{
				Window:   w,
				Geometry: wm.Geometry{Width: screen.Width, Height: screen.Height},
			}},
		}
	}

	if e.gap == 0 {
		return layout
	}
	if _, fullscreen := e.manager.FullscreenWindow(); fullscreen {
		return layout
	}
	for i, lw := range layout.Windows {
		if !e.manager.IsFloating(lw.Window) {
			layout.Windows[i].Geometry = wm.Inset(lw.Geometry, e.gap)
		}
	}
	return layout
}

// HandleEvent reacts to one backend event.
func (e *Engine) HandleEvent(ev platform.Event) {
	switch ev := ev.(type) {
	case platform.WindowMapped:
		if err := e.AddWindow(ev.Info); err != nil {
			slog.Warn("ignoring mapped window", "window", ev.Info.Window, "error", err)
		}
	case platform.WindowUnmapped:
		if err := e.RemoveWindow(ev.Window); err != nil {
			// Unmaps of never-managed windows are routine.
			slog.Debug("unmap for unmanaged window", "window", ev.Window)
		}
	case platform.WindowFocused:
		if err := e.FocusWindow(ev.Window); err != nil {
			slog.Debug("focus for unmanaged window", "window", ev.Window)
		}
	case platform.GeometryRequested:
		if err := e.SetWindowGeometry(ev.Window, ev.Geometry); err != nil {
			slog.Debug("geometry request for unmanaged window", "window", ev.Window)
		}
	case platform.ScreenResized:
		e.ResizeScreen(ev.Screen)
	}
}

func (e *Engine) AddWindow(info wm.WindowWithInfo) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.manager.AddWindow(info); err != nil {
		return err
	}
	slog.Info("managing window", "window", info.Window, "mode", info.FloatOrTile)
	e.sync()
	return nil
}

func (e *Engine) RemoveWindow(w wm.Window) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.manager.RemoveWindow(w); err != nil {
		return err
	}
	slog.Info("unmanaging window", "window", w)
	e.sync()
	return nil
}

func (e *Engine) FocusWindow(w wm.Window) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.manager.FocusWindow(w); err != nil {
		return err
	}
	e.sync()
	return nil
}

func (e *Engine) ClearFocus() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.manager.ClearFocus()
	e.sync()
}

func (e *Engine) CycleFocus(dir wm.PrevOrNext) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.manager.CycleFocus(dir)
	e.sync()
}

func (e *Engine) SwapWithMaster(w wm.Window) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.manager.SwapWithMaster(w); err != nil {
		return err
	}
	e.sync()
	return nil
}

func (e *Engine) SwapWindows(dir wm.PrevOrNext) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.manager.SwapWindows(dir)
	e.sync()
}

func (e *Engine) ToggleFloating(w wm.Window) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.manager.ToggleFloating(w); err != nil {
		return err
	}
	e.sync()
	return nil
}

func (e *Engine) SetWindowGeometry(w wm.Window, g wm.Geometry) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.manager.SetWindowGeometry(w, g); err != nil {
		return err
	}
	e.sync()
	return nil
}

func (e *Engine) ToggleMinimised(w wm.Window) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.manager.ToggleMinimised(w); err != nil {
		return err
	}
	e.sync()
	return nil
}

func (e *Engine) ToggleFullscreen(w wm.Window) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.manager.ToggleFullscreen(w); err != nil {
		return err
	}
	e.sync()
	return nil
}

func (e *Engine) SwitchWorkspace(i wm.WorkspaceIndex) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.manager.SwitchWorkspace(i); err != nil {
		return err
	}
	slog.Info("switched workspace", "workspace", i)
	e.sync()
	return nil
}

func (e *Engine) ResizeScreen(s wm.Screen) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.manager.ResizeScreen(s)
	slog.Info("screen resized", "screen", s)
	e.sync()
}

// SetGapSize changes the gap applied to tiled windows and re-applies the
// layout.
func (e *Engine) SetGapSize(gap wm.GapSize) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gap = gap
	e.sync()
}

// Snapshot persists the current state immediately.
func (e *Engine) Snapshot() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.store == nil {
		return nil
	}
	return e.store.Save(e.manager)
}

// Layout returns the layout currently on screen, gap included.
func (e *Engine) Layout() wm.WindowLayout {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.layoutLocked()
}

// Status summarizes the engine.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := Status{
		CurrentWorkspace: e.manager.CurrentWorkspace(),
		WindowCount:      len(e.manager.Windows()),
		Screen:           e.manager.Screen(),
		GapSize:          e.gap,
		UptimeSeconds:    int64(time.Since(e.started).Seconds()),
	}
	if w, ok := e.manager.FocusedWindow(); ok {
		st.FocusedWindow = &w
	}
	if w, ok := e.manager.FullscreenWindow(); ok {
		st.FullscreenWindow = &w
	}
	return st
}

// Windows lists every managed window across all workspaces.
func (e *Engine) Windows() []WindowState {
	e.mu.Lock()
	defer e.mu.Unlock()

	focused, hasFocus := e.manager.FocusedWindow()
	var out []WindowState
	for i := wm.WorkspaceIndex(0); i <= wm.MaxWorkspaceIndex; i++ {
		ws, err := e.manager.Workspace(i)
		if err != nil {
			continue
		}
		for _, w := range ws.Windows() {
			info, err := ws.WindowInfo(w)
			if err != nil {
				continue
			}
			out = append(out, WindowState{
				Window:     w,
				Workspace:  i,
				Geometry:   info.Geometry,
				Floating:   ws.IsFloating(w),
				Minimised:  ws.IsMinimised(w),
				Fullscreen: info.Fullscreen,
				Focused:    hasFocus && i == e.manager.CurrentWorkspace() && w == focused,
			})
		}
	}
	return out
}
