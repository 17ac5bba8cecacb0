package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/gvassallo/layerwm/internal/wm"
)

// MoveResizeWindow moves and resizes a window to the specified geometry.
func (c *Connection) MoveResizeWindow(windowID xproto.Window, g wm.Geometry) error {
	// Use EWMH MoveResize first for compositor compatibility; fall back to
	// a direct configure.
	err := ewmh.MoveresizeWindow(c.XUtil, windowID, g.X, g.Y, g.Width, g.Height)
	if err != nil {
		xwindow.New(c.XUtil, windowID).MoveResize(g.X, g.Y, g.Width, g.Height)
	}
	return nil
}

// ShowWindow maps a window and raises it to the top of the stack.
func (c *Connection) ShowWindow(windowID xproto.Window) {
	win := xwindow.New(c.XUtil, windowID)
	win.Map()
	win.Stack(xproto.StackModeAbove)
}

// HideWindow unmaps a window without destroying it.
func (c *Connection) HideWindow(windowID xproto.Window) {
	xwindow.New(c.XUtil, windowID).Unmap()
}

// FocusWindow moves input focus to a window.
func (c *Connection) FocusWindow(windowID xproto.Window) error {
	xwindow.New(c.XUtil, windowID).Focus()
	return ewmh.ActiveWindowSet(c.XUtil, windowID)
}

// WindowInfo derives the state-engine record for a freshly mapped window
// from its geometry and hints.
func (c *Connection) WindowInfo(windowID xproto.Window) (wm.WindowWithInfo, error) {
	win := xwindow.New(c.XUtil, windowID)
	geom, err := win.Geometry()
	if err != nil {
		return wm.WindowWithInfo{}, err
	}

	info := wm.NewTiledWindow(wm.Window(windowID), wm.Geometry{
		X:      geom.X(),
		Y:      geom.Y(),
		Width:  geom.Width(),
		Height: geom.Height(),
	})
	if c.wantsFloat(windowID) {
		info.FloatOrTile = wm.Float
	}
	if c.wantsFullscreen(windowID) {
		info.Fullscreen = true
	}
	return info, nil
}

// WindowClass returns the WM_CLASS class name, or "" when unavailable.
func (c *Connection) WindowClass(windowID xproto.Window) string {
	hints, err := icccm.WmClassGet(c.XUtil, windowID)
	if err != nil {
		return ""
	}
	return hints.Class
}

// wantsFloat reports whether a window's hints ask for floating: dialogs,
// utility windows and transients.
func (c *Connection) wantsFloat(windowID xproto.Window) bool {
	if transient, err := icccm.WmTransientForGet(c.XUtil, windowID); err == nil && transient != 0 {
		return true
	}
	types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	if err != nil {
		return false
	}
	for _, t := range types {
		switch t {
		case "_NET_WM_WINDOW_TYPE_DIALOG",
			"_NET_WM_WINDOW_TYPE_UTILITY",
			"_NET_WM_WINDOW_TYPE_SPLASH":
			return true
		}
	}
	return false
}

// wantsFullscreen reports whether a window maps with the fullscreen state
// already set.
func (c *Connection) wantsFullscreen(windowID xproto.Window) bool {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return false
	}
	for _, state := range states {
		if state == "_NET_WM_STATE_FULLSCREEN" {
			return true
		}
	}
	return false
}

// IsNormalWindow filters out desktop furniture that should never be
// managed: docks, desktops, notifications.
func (c *Connection) IsNormalWindow(windowID xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	if err != nil {
		return true
	}
	for _, t := range types {
		switch t {
		case "_NET_WM_WINDOW_TYPE_DESKTOP",
			"_NET_WM_WINDOW_TYPE_DOCK",
			"_NET_WM_WINDOW_TYPE_NOTIFICATION":
			return false
		}
	}
	return true
}
