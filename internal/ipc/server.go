package ipc

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"os"
	"sync"

	"github.com/gvassallo/layerwm/internal/daemon"
	"github.com/gvassallo/layerwm/internal/runtimepath"
	"github.com/gvassallo/layerwm/internal/wm"
)

// Server listens on the layerwm unix socket and translates IPC commands
// into engine operations.
type Server struct {
	engine     *daemon.Engine
	socketPath string
	listener   net.Listener

	// ReloadFunc is invoked for RELOAD requests. Optional.
	ReloadFunc func() error

	mu           sync.Mutex
	shuttingDown bool
}

// NewServer creates a server bound to the default runtime socket path.
func NewServer(engine *daemon.Engine) (*Server, error) {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		return nil, err
	}
	return NewServerAt(engine, socketPath), nil
}

// NewServerAt creates a server bound to an explicit socket path.
func NewServerAt(engine *daemon.Engine, socketPath string) *Server {
	return &Server{
		engine:     engine,
		socketPath: socketPath,
	}
}

// SocketPath returns the socket path the server listens on.
func (s *Server) SocketPath() string {
	return s.socketPath
}

func (s *Server) String() string { return "ipc.Server" }

// Serve binds the unix socket and accepts connections until ctx is
// cancelled. A stale socket from a previous run is removed first.
func (s *Server) Serve(ctx context.Context) error {
	if err := os.Remove(s.socketPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to listen on socket: %w", err)
	}

	s.mu.Lock()
	s.listener = listener
	s.shuttingDown = false
	s.mu.Unlock()

	slog.Info("ipc server listening", "socket", s.socketPath)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			s.mu.Lock()
			stopping := s.shuttingDown
			s.mu.Unlock()
			if stopping {
				return ctx.Err()
			}
			slog.Warn("failed to accept connection", "error", err)
			continue
		}
		go s.handleConnection(conn)
	}
}

// Stop closes the listener and removes the socket.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shuttingDown {
		return
	}
	s.shuttingDown = true
	if s.listener != nil {
		s.listener.Close()
	}
	os.Remove(s.socketPath)
}

// handleConnection reads one newline-terminated request and writes one
// newline-terminated response.
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)
	line, err := reader.ReadBytes('\n')
	if err != nil {
		slog.Debug("failed to read request", "error", err)
		return
	}

	req, err := ParseRequest(line)
	var resp *Response
	if err != nil {
		resp = NewErrorResponse(err.Error())
	} else {
		resp = s.handleCommand(req)
	}

	data, err := resp.Marshal()
	if err != nil {
		slog.Error("failed to marshal response", "error", err)
		return
	}
	data = append(data, '\n')
	if _, err := conn.Write(data); err != nil {
		slog.Debug("failed to write response", "error", err)
	}
}

func (s *Server) handleCommand(req *Request) *Response {
	switch req.Command {
	case CommandAddWindow:
		var p AddWindowPayload
		if err := unmarshalPayload(req.Payload, &p); err != nil {
			return NewErrorResponse(err.Error())
		}
		info := wm.NewTiledWindow(p.Window, p.Geometry)
		if p.Floating {
			info = wm.NewFloatingWindow(p.Window, p.Geometry)
		}
		info.Fullscreen = p.Fullscreen
		return s.resultResponse(s.engine.AddWindow(info))

	case CommandRemoveWindow:
		var p WindowPayload
		if err := unmarshalPayload(req.Payload, &p); err != nil {
			return NewErrorResponse(err.Error())
		}
		return s.resultResponse(s.engine.RemoveWindow(p.Window))

	case CommandFocusWindow:
		var p WindowPayload
		if err := unmarshalPayload(req.Payload, &p); err != nil {
			return NewErrorResponse(err.Error())
		}
		return s.resultResponse(s.engine.FocusWindow(p.Window))

	case CommandClearFocus:
		s.engine.ClearFocus()
		return s.resultResponse(nil)

	case CommandCycleFocus:
		var p DirectionPayload
		if err := unmarshalPayload(req.Payload, &p); err != nil {
			return NewErrorResponse(err.Error())
		}
		dir, err := parseDirection(p.Direction)
		if err != nil {
			return NewErrorResponse(err.Error())
		}
		s.engine.CycleFocus(dir)
		return s.resultResponse(nil)

	case CommandSwapWithMaster:
		var p WindowPayload
		if err := unmarshalPayload(req.Payload, &p); err != nil {
			return NewErrorResponse(err.Error())
		}
		return s.resultResponse(s.engine.SwapWithMaster(p.Window))

	case CommandSwapWindows:
		var p DirectionPayload
		if err := unmarshalPayload(req.Payload, &p); err != nil {
			return NewErrorResponse(err.Error())
		}
		dir, err := parseDirection(p.Direction)
		if err != nil {
			return NewErrorResponse(err.Error())
		}
		s.engine.SwapWindows(dir)
		return s.resultResponse(nil)

	case CommandToggleFloating:
		var p WindowPayload
		if err := unmarshalPayload(req.Payload, &p); err != nil {
			return NewErrorResponse(err.Error())
		}
		return s.resultResponse(s.engine.ToggleFloating(p.Window))

	case CommandSetGeometry:
		var p GeometryPayload
		if err := unmarshalPayload(req.Payload, &p); err != nil {
			return NewErrorResponse(err.Error())
		}
		return s.resultResponse(s.engine.SetWindowGeometry(p.Window, p.Geometry))

	case CommandToggleMinimised:
		var p WindowPayload
		if err := unmarshalPayload(req.Payload, &p); err != nil {
			return NewErrorResponse(err.Error())
		}
		return s.resultResponse(s.engine.ToggleMinimised(p.Window))

	case CommandToggleFullscreen:
		var p WindowPayload
		if err := unmarshalPayload(req.Payload, &p); err != nil {
			return NewErrorResponse(err.Error())
		}
		return s.resultResponse(s.engine.ToggleFullscreen(p.Window))

	case CommandSwitchWorkspace:
		var p WorkspacePayload
		if err := unmarshalPayload(req.Payload, &p); err != nil {
			return NewErrorResponse(err.Error())
		}
		return s.resultResponse(s.engine.SwitchWorkspace(p.Index))

	case CommandSetGap:
		var p GapPayload
		if err := unmarshalPayload(req.Payload, &p); err != nil {
			return NewErrorResponse(err.Error())
		}
		if p.Size < 0 {
			return NewErrorResponse("gap size must not be negative")
		}
		s.engine.SetGapSize(p.Size)
		return s.resultResponse(nil)

	case CommandResizeScreen:
		var p ScreenPayload
		if err := unmarshalPayload(req.Payload, &p); err != nil {
			return NewErrorResponse(err.Error())
		}
		if p.Screen.Width <= 0 || p.Screen.Height <= 0 {
			return NewErrorResponse("screen width and height must be positive")
		}
		s.engine.ResizeScreen(p.Screen)
		return s.resultResponse(nil)

	case CommandSnapshot:
		return s.resultResponse(s.engine.Snapshot())

	case CommandGetStatus:
		return s.dataResponse(statusData(s.engine.Status()))

	case CommandGetLayout:
		return s.dataResponse(LayoutData{
			Workspace: s.engine.Status().CurrentWorkspace,
			Layout:    s.engine.Layout(),
		})

	case CommandGetWindows:
		return s.dataResponse(windowsData(s.engine.Windows()))

	case CommandReload:
		if s.ReloadFunc == nil {
			return NewErrorResponse("reload is not supported by this daemon")
		}
		return s.resultResponse(s.ReloadFunc())

	default:
		return NewErrorResponse(fmt.Sprintf("unknown command: %s", req.Command))
	}
}

func (s *Server) resultResponse(err error) *Response {
	if err != nil {
		return NewErrorResponse(err.Error())
	}
	resp, merr := NewOKResponse(nil)
	if merr != nil {
		return NewErrorResponse(merr.Error())
	}
	return resp
}

func (s *Server) dataResponse(data interface{}) *Response {
	resp, err := NewOKResponse(data)
	if err != nil {
		return NewErrorResponse(err.Error())
	}
	return resp
}

func unmarshalPayload(raw json.RawMessage, v interface{}) error {
	if len(raw) == 0 {
		return fmt.Errorf("missing payload")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	return nil
}

func parseDirection(d wm.PrevOrNext) (wm.PrevOrNext, error) {
	switch d {
	case wm.Prev, wm.Next:
		return d, nil
	default:
		return "", fmt.Errorf("invalid direction: %q", d)
	}
}

func statusData(st daemon.Status) StatusData {
	return StatusData{
		CurrentWorkspace: st.CurrentWorkspace,
		WindowCount:      st.WindowCount,
		FocusedWindow:    st.FocusedWindow,
		FullscreenWindow: st.FullscreenWindow,
		Screen:           st.Screen,
		GapSize:          st.GapSize,
		UptimeSeconds:    st.UptimeSeconds,
		DaemonRunning:    true,
	}
}

func windowsData(states []daemon.WindowState) WindowsData {
	data := WindowsData{Windows: make([]WindowInfo, 0, len(states))}
	for _, ws := range states {
		data.Windows = append(data.Windows, WindowInfo{
			Window:     ws.Window,
			Workspace:  ws.Workspace,
			Geometry:   ws.Geometry,
			Floating:   ws.Floating,
			Minimised:  ws.Minimised,
			Fullscreen: ws.Fullscreen,
			Focused:    ws.Focused,
		})
	}
	return data
}
