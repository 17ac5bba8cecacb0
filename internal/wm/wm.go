// Package wm implements the window-manager state engine: given window
// lifecycle events and user commands it computes the canonical on-screen
// layout. It never talks to a display server; the display backend feeds it
// events and applies the layouts it produces.
//
// The engine is built by composition. TilingWM implements the master/stack
// algorithm; FloatingWM, MinimiseWM and FullWM each wrap the previous
// manager and add one orthogonal piece of state; GapsWM is an independent
// variant of TilingWM; MultiWorkspaceWM partitions windows over four
// independent FullWM instances. Every layer preserves the invariants of
// the layers below it.
//
// Managers are not safe for concurrent use. The owning event loop must
// call at most one operation at a time.
package wm

// Manager is the capability every window manager offers: tracking windows,
// focus handling and layout computation.
//
// Operations that return an error leave the manager unchanged when they
// do. Operations without an error result degrade to no-ops on empty or
// invalid state.
type Manager interface {
	// Windows returns every managed window, visible or not, in the order
	// they received focus (last entry focused most recently).
	Windows() []Window
	// FocusedWindow reports the window that currently has input focus.
	FocusedWindow() (Window, bool)
	// AddWindow starts managing a window and focuses it.
	AddWindow(info WindowWithInfo) error
	// RemoveWindow stops managing a window.
	RemoveWindow(w Window) error
	// Layout computes the visible layout for the display backend.
	Layout() WindowLayout
	// FocusWindow gives w input focus.
	FocusWindow(w Window) error
	// ClearFocus leaves no window focused.
	ClearFocus()
	// CycleFocus moves focus to the previous or next window, treating the
	// focus order as circular.
	CycleFocus(dir PrevOrNext)
	// WindowInfo returns the state recorded for w.
	WindowInfo(w Window) (WindowWithInfo, error)
	// IsManaged reports whether w is tracked by this manager.
	IsManaged(w Window) bool
	// Screen returns the screen the manager lays windows out on.
	Screen() Screen
	// ResizeScreen records a new screen size; the next Layout reflects it.
	ResizeScreen(s Screen)
}

// TilingManager is a Manager with a master/stack tiled layout.
type TilingManager interface {
	Manager
	// MasterWindow reports the window occupying the master tile.
	MasterWindow() (Window, bool)
	// SwapWithMaster exchanges w with the master tile and focuses w. A
	// managed window that currently holds no tile (a floating one) is a
	// no-op, not an error.
	SwapWithMaster(w Window) error
	// SwapWindows exchanges the tile of the focused window with its
	// circular neighbour. No-op without focus or with fewer than two
	// tiles.
	SwapWindows(dir PrevOrNext)
}

// FloatManager is a Manager whose windows can float above the tiles.
type FloatManager interface {
	Manager
	FloatingWindows() []Window
	IsFloating(w Window) bool
	// ToggleFloating lets a tiled window float at its recorded geometry,
	// or sinks a floating window back into the tile stack.
	ToggleFloating(w Window) error
	// SetWindowGeometry moves/resizes a floating window. On a managed but
	// non-floating window it is a silent no-op.
	SetWindowGeometry(w Window, g Geometry) error
}

// MinimiseManager is a Manager whose windows can be hidden temporarily.
type MinimiseManager interface {
	Manager
	// MinimisedWindows returns the minimised windows, oldest first.
	MinimisedWindows() []Window
	IsMinimised(w Window) bool
	ToggleMinimised(w Window) error
}

// FullscreenManager is a Manager that can show one window exclusively.
type FullscreenManager interface {
	Manager
	FullscreenWindow() (Window, bool)
	// ToggleFullscreen makes w the sole visible window, or undoes that if
	// w is already fullscreen.
	ToggleFullscreen(w Window) error
}

// GapManager is a Manager that insets tiled windows by a uniform margin.
type GapManager interface {
	Manager
	GapSize() GapSize
	SetGapSize(g GapSize)
}

// WorkspaceManager is a Manager that partitions windows over a fixed set
// of workspaces, exactly one of which is visible.
type WorkspaceManager interface {
	Manager
	CurrentWorkspace() WorkspaceIndex
	SwitchWorkspace(i WorkspaceIndex) error
	// Workspace returns the manager backing workspace i.
	Workspace(i WorkspaceIndex) (*FullWM, error)
}

var (
	_ Manager           = (*MonocleWM)(nil)
	_ TilingManager     = (*TilingWM)(nil)
	_ FloatManager      = (*FloatingWM)(nil)
	_ TilingManager     = (*FloatingWM)(nil)
	_ MinimiseManager   = (*MinimiseWM)(nil)
	_ FullscreenManager = (*FullWM)(nil)
	_ MinimiseManager   = (*FullWM)(nil)
	_ FloatManager      = (*FullWM)(nil)
	_ TilingManager     = (*FullWM)(nil)
	_ GapManager        = (*GapsWM)(nil)
	_ TilingManager     = (*GapsWM)(nil)
	_ WorkspaceManager  = (*MultiWorkspaceWM)(nil)
	_ FullscreenManager = (*MultiWorkspaceWM)(nil)
	_ MinimiseManager   = (*MultiWorkspaceWM)(nil)
	_ FloatManager      = (*MultiWorkspaceWM)(nil)
	_ TilingManager     = (*MultiWorkspaceWM)(nil)
)
