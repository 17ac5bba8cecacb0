package x11

import (
	"context"
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/gvassallo/layerwm/internal/config"
	"github.com/gvassallo/layerwm/internal/platform"
	"github.com/gvassallo/layerwm/internal/wm"
)

// Backend implements platform.Backend on an X11 display.
type Backend struct {
	conn *Connection
	cfg  *config.Config
}

var _ platform.Backend = (*Backend)(nil)

// NewBackend connects to the X server and claims window management.
func NewBackend(cfg *config.Config) (*Backend, error) {
	display := ""
	if cfg != nil {
		display = cfg.Display
	}
	conn, err := NewConnection(display)
	if err != nil {
		return nil, err
	}
	return &Backend{conn: conn, cfg: cfg}, nil
}

func (b *Backend) ScreenSize() (wm.Screen, error) {
	return b.conn.ScreenSize()
}

// Conn exposes the underlying X connection for keybinding registration.
func (b *Backend) Conn() *Connection {
	return b.conn
}

// Run translates X events into platform events until ctx is cancelled.
func (b *Backend) Run(ctx context.Context, events chan<- platform.Event) error {
	xu := b.conn.XUtil

	send := func(ev platform.Event) {
		select {
		case events <- ev:
		case <-ctx.Done():
		}
	}

	xevent.MapRequestFun(func(xu *xgbutil.XUtil, e xevent.MapRequestEvent) {
		win := e.Window
		if !b.conn.IsNormalWindow(win) {
			// Unmanaged windows are mapped where they asked to be.
			xproto.MapWindow(xu.Conn(), win)
			return
		}
		info, err := b.conn.WindowInfo(win)
		if err != nil {
			slog.Warn("dropping map request, window vanished", "window", win, "error", err)
			return
		}
		if b.cfg != nil {
			class := b.conn.WindowClass(win)
			if b.cfg.ShouldFloat(class) {
				info.FloatOrTile = wm.Float
			}
			if b.cfg.ShouldFullscreen(class) {
				info.Fullscreen = true
			}
		}
		xproto.MapWindow(xu.Conn(), win)
		send(platform.WindowMapped{Info: info})
	}).Connect(xu, b.conn.Root)

	xevent.UnmapNotifyFun(func(xu *xgbutil.XUtil, e xevent.UnmapNotifyEvent) {
		send(platform.WindowUnmapped{Window: wm.Window(e.Window)})
	}).Connect(xu, b.conn.Root)

	xevent.DestroyNotifyFun(func(xu *xgbutil.XUtil, e xevent.DestroyNotifyEvent) {
		send(platform.WindowUnmapped{Window: wm.Window(e.Window)})
	}).Connect(xu, b.conn.Root)

	xevent.ConfigureRequestFun(func(xu *xgbutil.XUtil, e xevent.ConfigureRequestEvent) {
		send(platform.GeometryRequested{
			Window: wm.Window(e.Window),
			Geometry: wm.Geometry{
				X:      int(e.X),
				Y:      int(e.Y),
				Width:  int(e.Width),
				Height: int(e.Height),
			},
		})
	}).Connect(xu, b.conn.Root)

	xevent.ConfigureNotifyFun(func(xu *xgbutil.XUtil, e xevent.ConfigureNotifyEvent) {
		if e.Window != b.conn.Root {
			return
		}
		send(platform.ScreenResized{Screen: wm.Screen{
			Width:  int(e.Width),
			Height: int(e.Height),
		}})
	}).Connect(xu, b.conn.Root)

	go func() {
		<-ctx.Done()
		b.conn.Quit()
	}()

	b.conn.EventLoop()
	return ctx.Err()
}

// Apply positions the layout's windows bottom-to-top, unmaps the hidden
// set and moves input focus.
func (b *Backend) Apply(layout wm.WindowLayout, hidden []wm.Window) error {
	for _, w := range hidden {
		b.conn.HideWindow(xproto.Window(w))
	}
	for _, lw := range layout.Windows {
		id := xproto.Window(lw.Window)
		if err := b.conn.MoveResizeWindow(id, lw.Geometry); err != nil {
			slog.Warn("move/resize failed", "window", lw.Window, "error", err)
		}
		b.conn.ShowWindow(id)
	}
	if focused, ok := layout.Focus(); ok {
		if err := b.conn.FocusWindow(xproto.Window(focused)); err != nil {
			slog.Warn("focus failed", "window", focused, "error", err)
		}
	}
	return nil
}

func (b *Backend) Close() error {
	b.conn.Close()
	return nil
}
