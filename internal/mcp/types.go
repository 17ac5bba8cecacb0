package mcp

// GetStatusInput is the input for the get_status tool.
type GetStatusInput struct{}

// GetStatusOutput is the output for the get_status tool.
type GetStatusOutput struct {
	CurrentWorkspace int     `json:"current_workspace"`
	WindowCount      int     `json:"window_count"`
	FocusedWindow    *uint32 `json:"focused_window,omitempty"`
	FullscreenWindow *uint32 `json:"fullscreen_window,omitempty"`
	ScreenWidth      int     `json:"screen_width"`
	ScreenHeight     int     `json:"screen_height"`
	GapSize          int     `json:"gap_size"`
	UptimeSeconds    int64   `json:"uptime_seconds"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct {
	Workspace *int `json:"workspace,omitempty" jsonschema:"Only list windows on this workspace (0-3). Default: all workspaces."`
}

// WindowEntry describes one managed window.
type WindowEntry struct {
	Window     uint32 `json:"window"`
	Workspace  int    `json:"workspace"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Floating   bool   `json:"floating"`
	Minimised  bool   `json:"minimised"`
	Fullscreen bool   `json:"fullscreen"`
	Focused    bool   `json:"focused"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []WindowEntry `json:"windows"`
}

// GetLayoutInput is the input for the get_layout tool.
type GetLayoutInput struct{}

// LayoutEntry describes one visible window with its on-screen rectangle.
type LayoutEntry struct {
	Window  uint32 `json:"window"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Focused bool   `json:"focused"`
}

// GetLayoutOutput is the output for the get_layout tool.
type GetLayoutOutput struct {
	Workspace int           `json:"workspace"`
	Windows   []LayoutEntry `json:"windows"`
}

// FocusWindowInput is the input for the focus_window tool.
type FocusWindowInput struct {
	Window uint32 `json:"window" jsonschema:"required,X11 window ID to focus"`
}

// CycleFocusInput is the input for the cycle_focus tool.
type CycleFocusInput struct {
	Direction string `json:"direction" jsonschema:"required,Either prev or next"`
}

// SwitchWorkspaceInput is the input for the switch_workspace tool.
type SwitchWorkspaceInput struct {
	Workspace int `json:"workspace" jsonschema:"required,Workspace index (0-3)"`
}

// WindowActionInput addresses a window for toggle and swap tools.
type WindowActionInput struct {
	Window uint32 `json:"window" jsonschema:"required,X11 window ID"`
}

// SetGapInput is the input for the set_gap tool.
type SetGapInput struct {
	Size int `json:"size" jsonschema:"required,Gap in pixels around every tiled window"`
}

// ActionOutput is the output of tools that mutate state.
type ActionOutput struct {
	OK bool `json:"ok"`
}
