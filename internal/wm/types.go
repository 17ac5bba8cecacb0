package wm

import "fmt"

// Window is the identifier of a managed window. Identifiers are issued by
// the display backend (they match X11 window ids); the state engine never
// creates or destroys them, it only tracks them.
type Window uint32

// Geometry is the position and size of a window. The origin lies in the
// top-left corner of the screen; the X axis grows to the right and the Y
// axis grows downward.
type Geometry struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d at %d,%d", g.Width, g.Height, g.X, g.Y)
}

// Screen is the single output the window manager lays windows out on.
// Its origin is implicitly (0,0).
type Screen struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Geometry returns the full-screen rectangle of the screen.
func (s Screen) Geometry() Geometry {
	return Geometry{X: 0, Y: 0, Width: s.Width, Height: s.Height}
}

func (s Screen) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// FloatOrTile classifies a window as floating above the tiled layout or as
// a tile placed by the tiling algorithm.
type FloatOrTile string

const (
	Float FloatOrTile = "float"
	Tile  FloatOrTile = "tile"
)

// PrevOrNext selects a direction when cycling focus or swapping tiles.
type PrevOrNext string

const (
	Prev PrevOrNext = "prev"
	Next PrevOrNext = "next"
)

// Opposite returns the other direction.
func (d PrevOrNext) Opposite() PrevOrNext {
	if d == Prev {
		return Next
	}
	return Prev
}

// GapSize is the uniform inward margin applied to tiled windows.
type GapSize int

// WorkspaceIndex identifies one of the fixed set of workspaces.
type WorkspaceIndex int

// MaxWorkspaceIndex is the highest valid WorkspaceIndex. Indices start at
// zero, so there are MaxWorkspaceIndex+1 workspaces.
const MaxWorkspaceIndex WorkspaceIndex = 3

// WindowWithInfo bundles a window with the state recorded for it: its
// geometry, whether it floats or tiles, and whether it wants to be
// fullscreen. The backend fills this in from window hints when a window is
// first mapped; afterwards it tracks the window's current classification.
type WindowWithInfo struct {
	Window      Window      `json:"window"`
	Geometry    Geometry    `json:"geometry"`
	FloatOrTile FloatOrTile `json:"float_or_tile"`
	Fullscreen  bool        `json:"fullscreen"`
}

// NewTiledWindow returns the info for a tiled, non-fullscreen window.
func NewTiledWindow(w Window, g Geometry) WindowWithInfo {
	return WindowWithInfo{Window: w, Geometry: g, FloatOrTile: Tile}
}

// NewFloatingWindow returns the info for a floating, non-fullscreen window.
func NewFloatingWindow(w Window, g Geometry) WindowWithInfo {
	return WindowWithInfo{Window: w, Geometry: g, FloatOrTile: Float}
}

// NewFullscreenWindow returns the info for a tiled window that wants to be
// shown fullscreen.
func NewFullscreenWindow(w Window, g Geometry) WindowWithInfo {
	return WindowWithInfo{Window: w, Geometry: g, FloatOrTile: Tile, Fullscreen: true}
}

// LayoutWindow is one visible window with the rectangle it should occupy.
type LayoutWindow struct {
	Window   Window   `json:"window"`
	Geometry Geometry `json:"geometry"`
}

// WindowLayout fully describes what the display backend should show: which
// window has input focus and the rectangle of every visible window. The
// order of Windows is the stacking order, bottom first; the last entry is
// drawn on top.
//
// Invariant: if FocusedWindow is non-nil it refers to an entry of Windows.
type WindowLayout struct {
	FocusedWindow *Window        `json:"focused_window,omitempty"`
	Windows       []LayoutWindow `json:"windows"`
}

// Focus reports the focused window, if any.
func (l WindowLayout) Focus() (Window, bool) {
	if l.FocusedWindow == nil {
		return 0, false
	}
	return *l.FocusedWindow, true
}
