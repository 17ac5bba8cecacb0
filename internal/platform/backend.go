// Package platform abstracts the display server. The daemon consumes the
// backend's event stream, feeds it to the state engine and hands the
// resulting layouts back to the backend to realize on screen.
package platform

import (
	"context"

	"github.com/gvassallo/layerwm/internal/wm"
)

// Event is a window-system event the state engine reacts to. Concrete
// types: WindowMapped, WindowUnmapped, WindowFocused, GeometryRequested,
// ScreenResized.
type Event interface{ isEvent() }

// WindowMapped reports a new top-level window asking to be shown, with
// the classification derived from its hints.
type WindowMapped struct {
	Info wm.WindowWithInfo
}

// WindowUnmapped reports a window that disappeared.
type WindowUnmapped struct {
	Window wm.Window
}

// WindowFocused reports the user focusing a window (click or pointer).
type WindowFocused struct {
	Window wm.Window
}

// GeometryRequested reports a client asking to move or resize itself.
type GeometryRequested struct {
	Window   wm.Window
	Geometry wm.Geometry
}

// ScreenResized reports a change of the output size.
type ScreenResized struct {
	Screen wm.Screen
}

func (WindowMapped) isEvent()      {}
func (WindowUnmapped) isEvent()    {}
func (WindowFocused) isEvent()     {}
func (GeometryRequested) isEvent() {}
func (ScreenResized) isEvent()     {}

// Backend abstracts window-system operations.
type Backend interface {
	// ScreenSize reports the current output size.
	ScreenSize() (wm.Screen, error)
	// Run delivers events until ctx is cancelled.
	Run(ctx context.Context, events chan<- Event) error
	// Apply realizes a layout: positions and stacks the layout's windows,
	// hides the given windows, and moves input focus.
	Apply(layout wm.WindowLayout, hidden []wm.Window) error
	// Close releases the display connection.
	Close() error
}
