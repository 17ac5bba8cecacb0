// Package hotkeys registers global X11 keybindings that drive the window
// manager engine: focus cycling, master swap, float/minimise/fullscreen
// toggles and workspace switching.
package hotkeys

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/gvassallo/layerwm/internal/config"
	"github.com/gvassallo/layerwm/internal/daemon"
	"github.com/gvassallo/layerwm/internal/wm"
)

// Handler manages global keyboard shortcuts.
type Handler struct {
	xu     *xgbutil.XUtil
	root   xproto.Window
	engine *daemon.Engine
}

var initOnce sync.Once

// NewHandler creates a hotkey handler on the window manager's X connection.
func NewHandler(xu *xgbutil.XUtil, root xproto.Window, engine *daemon.Engine) *Handler {
	initOnce.Do(func() {
		keybind.Initialize(xu)
		configureIgnoreMods(xu)
	})

	return &Handler{
		xu:     xu,
		root:   root,
		engine: engine,
	}
}

// RegisterAll registers every configured keybinding. Empty bindings are
// skipped; a malformed key sequence fails registration.
func (h *Handler) RegisterAll(kb config.Keybindings) error {
	bindings := []struct {
		seq string
		fn  func()
	}{
		{kb.CycleNext, func() { h.engine.CycleFocus(wm.Next) }},
		{kb.CyclePrev, func() { h.engine.CycleFocus(wm.Prev) }},
		{kb.SwapMaster, h.focusedAction("swap with master", h.engine.SwapWithMaster)},
		{kb.ToggleFloat, h.focusedAction("toggle floating", h.engine.ToggleFloating)},
		{kb.ToggleMinimise, h.focusedAction("toggle minimised", h.engine.ToggleMinimised)},
		{kb.ToggleFullscreen, h.focusedAction("toggle fullscreen", h.engine.ToggleFullscreen)},
	}

	for _, b := range bindings {
		if b.seq == "" {
			continue
		}
		if err := h.RegisterFunc(b.seq, b.fn); err != nil {
			return fmt.Errorf("failed to register %q: %w", b.seq, err)
		}
	}

	for i, seq := range kb.Workspaces {
		if seq == "" {
			continue
		}
		idx := wm.WorkspaceIndex(i)
		if err := h.RegisterFunc(seq, func() {
			if err := h.engine.SwitchWorkspace(idx); err != nil {
				slog.Warn("workspace hotkey failed", "workspace", idx, "error", err)
			}
		}); err != nil {
			return fmt.Errorf("failed to register %q: %w", seq, err)
		}
	}
	return nil
}

// focusedAction wraps an engine operation so it targets the currently
// focused window. With nothing focused the hotkey is a no-op.
func (h *Handler) focusedAction(name string, fn func(wm.Window) error) func() {
	return func() {
		st := h.engine.Status()
		if st.FocusedWindow == nil {
			return
		}
		if err := fn(*st.FocusedWindow); err != nil {
			slog.Warn("hotkey failed", "action", name, "window", *st.FocusedWindow, "error", err)
		}
	}
}

// RegisterFunc registers an arbitrary hotkey callback.
func (h *Handler) RegisterFunc(keySequence string, callback func()) error {
	return keybind.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		callback()
	}).Connect(h.xu, h.root, keySequence, true)
}

func configureIgnoreMods(xu *xgbutil.XUtil) {
	// Always ignore CapsLock.
	caps := uint16(xproto.ModMaskLock)

	numLock := modMaskForKeysym(xu, "Num_Lock")
	scrollLock := modMaskForKeysym(xu, "Scroll_Lock")

	unique := make(map[uint16]struct{})
	add := func(mask uint16) {
		unique[mask] = struct{}{}
	}

	add(0)
	base := []uint16{caps}
	if numLock != 0 && numLock != caps {
		base = append(base, numLock)
	}
	if scrollLock != 0 && scrollLock != caps && scrollLock != numLock {
		base = append(base, scrollLock)
	}

	for subset := 1; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		add(mask)
	}

	ignore := make([]uint16, 0, len(unique))
	for mask := range unique {
		ignore = append(ignore, mask)
	}

	xevent.IgnoreMods = ignore
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
