// Package mcp exposes the layerwm daemon to MCP clients. Every tool is a
// thin wrapper around the IPC client, so the daemon stays the single
// authority on window state.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gvassallo/layerwm/internal/ipc"
)

const (
	ServerName    = "layerwm"
	ServerVersion = "0.1.0"
)

// Server is the MCP server for layerwm window control.
type Server struct {
	mcpServer *mcpsdk.Server
	client    *ipc.Client
}

// NewServer creates an MCP server talking to the daemon over the given
// IPC client.
func NewServer(client *ipc.Client) *Server {
	s := &Server{
		client: client,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_status",
		Description: "Get a summary of the window manager: current workspace, window count, focused and fullscreen windows, screen size and gap.",
	}, s.handleGetStatus)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List every managed window across all workspaces with geometry, floating/minimised/fullscreen flags and focus. Optionally filter by workspace.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_layout",
		Description: "Get the layout currently on screen: the visible windows of the current workspace with their on-screen rectangles, gap included.",
	}, s.handleGetLayout)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "focus_window",
		Description: "Move focus to a window by ID, switching to its workspace if it lives elsewhere.",
	}, s.handleFocusWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "cycle_focus",
		Description: "Move focus to the previous or next visible window on the current workspace.",
	}, s.handleCycleFocus)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "switch_workspace",
		Description: "Switch to a workspace by index (0-3).",
	}, s.handleSwitchWorkspace)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "toggle_floating",
		Description: "Flip a window between tiled and floating.",
	}, s.handleToggleFloating)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "toggle_minimised",
		Description: "Hide a window, or restore it if it is already minimised. Restoring switches to the window's workspace.",
	}, s.handleToggleMinimised)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "toggle_fullscreen",
		Description: "Promote a window to fullscreen, or demote it back into the layout. Switches to the window's workspace first.",
	}, s.handleToggleFullscreen)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "swap_with_master",
		Description: "Swap a tiled window with the master tile on its workspace.",
	}, s.handleSwapWithMaster)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_gap",
		Description: "Change the gap in pixels around every tiled window.",
	}, s.handleSetGap)
}
