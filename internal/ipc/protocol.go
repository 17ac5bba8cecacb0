// Package ipc implements the JSON-over-unix-socket protocol between the
// layerwm daemon and its command-line clients. Each connection carries one
// newline-terminated request and one newline-terminated response.
package ipc

import (
	"encoding/json"
	"fmt"

	"github.com/gvassallo/layerwm/internal/wm"
)

// CommandType represents different IPC command types.
type CommandType string

const (
	CommandAddWindow        CommandType = "ADD_WINDOW"
	CommandRemoveWindow     CommandType = "REMOVE_WINDOW"
	CommandFocusWindow      CommandType = "FOCUS_WINDOW"
	CommandClearFocus       CommandType = "CLEAR_FOCUS"
	CommandCycleFocus       CommandType = "CYCLE_FOCUS"
	CommandSwapWithMaster   CommandType = "SWAP_WITH_MASTER"
	CommandSwapWindows      CommandType = "SWAP_WINDOWS"
	CommandToggleFloating   CommandType = "TOGGLE_FLOATING"
	CommandSetGeometry      CommandType = "SET_GEOMETRY"
	CommandToggleMinimised  CommandType = "TOGGLE_MINIMISED"
	CommandToggleFullscreen CommandType = "TOGGLE_FULLSCREEN"
	CommandSwitchWorkspace  CommandType = "SWITCH_WORKSPACE"
	CommandSetGap           CommandType = "SET_GAP"
	CommandResizeScreen     CommandType = "RESIZE_SCREEN"
	CommandSnapshot         CommandType = "SNAPSHOT"
	CommandGetStatus        CommandType = "GET_STATUS"
	CommandGetLayout        CommandType = "GET_LAYOUT"
	CommandGetWindows       CommandType = "GET_WINDOWS"
	CommandReload           CommandType = "RELOAD"
)

// Request represents an IPC request from client to server.
type Request struct {
	Command CommandType     `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response represents an IPC response from server to client.
type Response struct {
	Status string          `json:"status"` // "OK" or "ERROR"
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// WindowPayload addresses a single window.
type WindowPayload struct {
	Window wm.Window `json:"window"`
}

// AddWindowPayload carries a full window record for ADD_WINDOW.
type AddWindowPayload struct {
	Window     wm.Window   `json:"window"`
	Geometry   wm.Geometry `json:"geometry"`
	Floating   bool        `json:"floating,omitempty"`
	Fullscreen bool        `json:"fullscreen,omitempty"`
}

// DirectionPayload selects a cycle/swap direction.
type DirectionPayload struct {
	Direction wm.PrevOrNext `json:"direction"`
}

// GeometryPayload carries a target rectangle for SET_GEOMETRY.
type GeometryPayload struct {
	Window   wm.Window   `json:"window"`
	Geometry wm.Geometry `json:"geometry"`
}

// WorkspacePayload selects a workspace for SWITCH_WORKSPACE.
type WorkspacePayload struct {
	Index wm.WorkspaceIndex `json:"index"`
}

// GapPayload carries a gap size for SET_GAP.
type GapPayload struct {
	Size wm.GapSize `json:"size"`
}

// ScreenPayload carries a screen size for RESIZE_SCREEN.
type ScreenPayload struct {
	Screen wm.Screen `json:"screen"`
}

// StatusData represents the data returned by GET_STATUS.
type StatusData struct {
	CurrentWorkspace wm.WorkspaceIndex `json:"current_workspace"`
	WindowCount      int               `json:"window_count"`
	FocusedWindow    *wm.Window        `json:"focused_window,omitempty"`
	FullscreenWindow *wm.Window        `json:"fullscreen_window,omitempty"`
	Screen           wm.Screen         `json:"screen"`
	GapSize          wm.GapSize        `json:"gap_size"`
	UptimeSeconds    int64             `json:"uptime_seconds"`
	DaemonRunning    bool              `json:"daemon_running"`
}

// LayoutData represents the data returned by GET_LAYOUT.
type LayoutData struct {
	Workspace wm.WorkspaceIndex `json:"workspace"`
	Layout    wm.WindowLayout   `json:"layout"`
}

// WindowInfo describes one managed window in GET_WINDOWS.
type WindowInfo struct {
	Window     wm.Window         `json:"window"`
	Workspace  wm.WorkspaceIndex `json:"workspace"`
	Geometry   wm.Geometry       `json:"geometry"`
	Floating   bool              `json:"floating"`
	Minimised  bool              `json:"minimised"`
	Fullscreen bool              `json:"fullscreen"`
	Focused    bool              `json:"focused"`
}

// WindowsData represents the data returned by GET_WINDOWS.
type WindowsData struct {
	Windows []WindowInfo `json:"windows"`
}

// NewOKResponse creates a successful response with optional data.
func NewOKResponse(data interface{}) (*Response, error) {
	var dataBytes json.RawMessage
	if data != nil {
		bytes, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response data: %w", err)
		}
		dataBytes = bytes
	}

	return &Response{
		Status: "OK",
		Data:   dataBytes,
	}, nil
}

// NewErrorResponse creates an error response with a message.
func NewErrorResponse(errMsg string) *Response {
	return &Response{
		Status: "ERROR",
		Error:  errMsg,
	}
}

// ParseRequest parses a request from JSON bytes.
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	return &req, nil
}

// Marshal converts a response to JSON bytes.
func (r *Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
