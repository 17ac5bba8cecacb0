package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/gvassallo/layerwm/internal/runtimepath"
	"github.com/gvassallo/layerwm/internal/wm"
)

// DefaultTimeout bounds a full request/response round trip.
const DefaultTimeout = 5 * time.Second

// Client talks to a running layerwm daemon over the unix socket. Each
// request opens a fresh connection.
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient creates a client for the default runtime socket path.
func NewClient() (*Client, error) {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		return nil, err
	}
	return NewClientAt(socketPath), nil
}

// NewClientAt creates a client for an explicit socket path.
func NewClientAt(socketPath string) *Client {
	return &Client{
		socketPath: socketPath,
		timeout:    DefaultTimeout,
	}
}

// sendRequest performs one request/response exchange.
func (c *Client) sendRequest(command CommandType, payload interface{}) (*Response, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to daemon (is it running?): %w", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(c.timeout))

	req := Request{Command: command}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		req.Payload = data
	}

	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	data = append(data, '\n')
	if _, err := conn.Write(data); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	line, err := bufio.NewReader(conn).ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(line, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.Status != "OK" {
		return nil, fmt.Errorf("%s", resp.Error)
	}
	return &resp, nil
}

// AddWindow asks the daemon to manage a window.
func (c *Client) AddWindow(p AddWindowPayload) error {
	_, err := c.sendRequest(CommandAddWindow, p)
	return err
}

// RemoveWindow asks the daemon to stop managing a window.
func (c *Client) RemoveWindow(w wm.Window) error {
	_, err := c.sendRequest(CommandRemoveWindow, WindowPayload{Window: w})
	return err
}

// FocusWindow moves focus to a window, switching workspaces if needed.
func (c *Client) FocusWindow(w wm.Window) error {
	_, err := c.sendRequest(CommandFocusWindow, WindowPayload{Window: w})
	return err
}

// ClearFocus leaves every window unfocused.
func (c *Client) ClearFocus() error {
	_, err := c.sendRequest(CommandClearFocus, nil)
	return err
}

// CycleFocus moves focus to the previous or next visible window.
func (c *Client) CycleFocus(dir wm.PrevOrNext) error {
	_, err := c.sendRequest(CommandCycleFocus, DirectionPayload{Direction: dir})
	return err
}

// SwapWithMaster swaps a window with the master tile on its workspace.
func (c *Client) SwapWithMaster(w wm.Window) error {
	_, err := c.sendRequest(CommandSwapWithMaster, WindowPayload{Window: w})
	return err
}

// SwapWindows swaps the focused window with its previous or next neighbour.
func (c *Client) SwapWindows(dir wm.PrevOrNext) error {
	_, err := c.sendRequest(CommandSwapWindows, DirectionPayload{Direction: dir})
	return err
}

// ToggleFloating flips a window between tiled and floating.
func (c *Client) ToggleFloating(w wm.Window) error {
	_, err := c.sendRequest(CommandToggleFloating, WindowPayload{Window: w})
	return err
}

// SetGeometry moves or resizes a floating window.
func (c *Client) SetGeometry(w wm.Window, g wm.Geometry) error {
	_, err := c.sendRequest(CommandSetGeometry, GeometryPayload{Window: w, Geometry: g})
	return err
}

// ToggleMinimised hides a window or restores it.
func (c *Client) ToggleMinimised(w wm.Window) error {
	_, err := c.sendRequest(CommandToggleMinimised, WindowPayload{Window: w})
	return err
}

// ToggleFullscreen promotes a window to fullscreen or demotes it.
func (c *Client) ToggleFullscreen(w wm.Window) error {
	_, err := c.sendRequest(CommandToggleFullscreen, WindowPayload{Window: w})
	return err
}

// SwitchWorkspace makes the given workspace current.
func (c *Client) SwitchWorkspace(i wm.WorkspaceIndex) error {
	_, err := c.sendRequest(CommandSwitchWorkspace, WorkspacePayload{Index: i})
	return err
}

// SetGap changes the gap around tiled windows.
func (c *Client) SetGap(size wm.GapSize) error {
	_, err := c.sendRequest(CommandSetGap, GapPayload{Size: size})
	return err
}

// ResizeScreen relayouts every workspace for a new screen size.
func (c *Client) ResizeScreen(s wm.Screen) error {
	_, err := c.sendRequest(CommandResizeScreen, ScreenPayload{Screen: s})
	return err
}

// Snapshot asks the daemon to persist its state immediately.
func (c *Client) Snapshot() error {
	_, err := c.sendRequest(CommandSnapshot, nil)
	return err
}

// GetStatus returns a summary of the daemon state.
func (c *Client) GetStatus() (*StatusData, error) {
	resp, err := c.sendRequest(CommandGetStatus, nil)
	if err != nil {
		return nil, err
	}
	var data StatusData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse status data: %w", err)
	}
	return &data, nil
}

// GetLayout returns the layout currently on screen.
func (c *Client) GetLayout() (*LayoutData, error) {
	resp, err := c.sendRequest(CommandGetLayout, nil)
	if err != nil {
		return nil, err
	}
	var data LayoutData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse layout data: %w", err)
	}
	return &data, nil
}

// GetWindows lists every managed window across all workspaces.
func (c *Client) GetWindows() (*WindowsData, error) {
	resp, err := c.sendRequest(CommandGetWindows, nil)
	if err != nil {
		return nil, err
	}
	var data WindowsData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse windows data: %w", err)
	}
	return &data, nil
}

// Reload asks the daemon to reload its configuration file.
func (c *Client) Reload() error {
	_, err := c.sendRequest(CommandReload, nil)
	return err
}

// Ping reports whether a daemon is reachable on the socket.
func (c *Client) Ping() bool {
	_, err := c.GetStatus()
	return err == nil
}
