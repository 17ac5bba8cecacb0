package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gvassallo/layerwm/internal/wm"
)

func (s *Server) handleGetStatus(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetStatusInput) (*mcpsdk.CallToolResult, GetStatusOutput, error) {
	st, err := s.client.GetStatus()
	if err != nil {
		return nil, GetStatusOutput{}, err
	}

	out := GetStatusOutput{
		CurrentWorkspace: int(st.CurrentWorkspace),
		WindowCount:      st.WindowCount,
		ScreenWidth:      st.Screen.Width,
		ScreenHeight:     st.Screen.Height,
		GapSize:          int(st.GapSize),
		UptimeSeconds:    st.UptimeSeconds,
	}
	if st.FocusedWindow != nil {
		id := uint32(*st.FocusedWindow)
		out.FocusedWindow = &id
	}
	if st.FullscreenWindow != nil {
		id := uint32(*st.FullscreenWindow)
		out.FullscreenWindow = &id
	}
	return nil, out, nil
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	if args.Workspace != nil && (*args.Workspace < 0 || *args.Workspace > int(wm.MaxWorkspaceIndex)) {
		return nil, ListWindowsOutput{}, fmt.Errorf("invalid workspace: %d", *args.Workspace)
	}

	data, err := s.client.GetWindows()
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}

	out := ListWindowsOutput{Windows: make([]WindowEntry, 0, len(data.Windows))}
	for _, w := range data.Windows {
		if args.Workspace != nil && int(w.Workspace) != *args.Workspace {
			continue
		}
		out.Windows = append(out.Windows, WindowEntry{
			Window:     uint32(w.Window),
			Workspace:  int(w.Workspace),
			X:          w.Geometry.X,
			Y:          w.Geometry.Y,
			Width:      w.Geometry.Width,
			Height:     w.Geometry.Height,
			Floating:   w.Floating,
			Minimised:  w.Minimised,
			Fullscreen: w.Fullscreen,
			Focused:    w.Focused,
		})
	}
	return nil, out, nil
}

func (s *Server) handleGetLayout(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetLayoutInput) (*mcpsdk.CallToolResult, GetLayoutOutput, error) {
	data, err := s.client.GetLayout()
	if err != nil {
		return nil, GetLayoutOutput{}, err
	}

	out := GetLayoutOutput{
		Workspace: int(data.Workspace),
		Windows:   make([]LayoutEntry, 0, len(data.Layout.Windows)),
	}
	focused := data.Layout.FocusedWindow
	for _, lw := range data.Layout.Windows {
		out.Windows = append(out.Windows, LayoutEntry{
			Window:  uint32(lw.Window),
			X:       lw.Geometry.X,
			Y:       lw.Geometry.Y,
			Width:   lw.Geometry.Width,
			Height:  lw.Geometry.Height,
			Focused: focused != nil && *focused == lw.Window,
		})
	}
	return nil, out, nil
}

func (s *Server) handleFocusWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args FocusWindowInput) (*mcpsdk.CallToolResult, ActionOutput, error) {
	if err := s.client.FocusWindow(wm.Window(args.Window)); err != nil {
		return nil, ActionOutput{}, err
	}
	return nil, ActionOutput{OK: true}, nil
}

func (s *Server) handleCycleFocus(_ context.Context, _ *mcpsdk.CallToolRequest, args CycleFocusInput) (*mcpsdk.CallToolResult, ActionOutput, error) {
	var dir wm.PrevOrNext
	switch args.Direction {
	case "prev":
		dir = wm.Prev
	case "next":
		dir = wm.Next
	default:
		return nil, ActionOutput{}, fmt.Errorf("invalid direction %q; use prev or next", args.Direction)
	}
	if err := s.client.CycleFocus(dir); err != nil {
		return nil, ActionOutput{}, err
	}
	return nil, ActionOutput{OK: true}, nil
}

func (s *Server) handleSwitchWorkspace(_ context.Context, _ *mcpsdk.CallToolRequest, args SwitchWorkspaceInput) (*mcpsdk.CallToolResult, ActionOutput, error) {
	if err := s.client.SwitchWorkspace(wm.WorkspaceIndex(args.Workspace)); err != nil {
		return nil, ActionOutput{}, err
	}
	return nil, ActionOutput{OK: true}, nil
}

func (s *Server) handleToggleFloating(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowActionInput) (*mcpsdk.CallToolResult, ActionOutput, error) {
	if err := s.client.ToggleFloating(wm.Window(args.Window)); err != nil {
		return nil, ActionOutput{}, err
	}
	return nil, ActionOutput{OK: true}, nil
}

func (s *Server) handleToggleMinimised(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowActionInput) (*mcpsdk.CallToolResult, ActionOutput, error) {
	if err := s.client.ToggleMinimised(wm.Window(args.Window)); err != nil {
		return nil, ActionOutput{}, err
	}
	return nil, ActionOutput{OK: true}, nil
}

func (s *Server) handleToggleFullscreen(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowActionInput) (*mcpsdk.CallToolResult, ActionOutput, error) {
	if err := s.client.ToggleFullscreen(wm.Window(args.Window)); err != nil {
		return nil, ActionOutput{}, err
	}
	return nil, ActionOutput{OK: true}, nil
}

func (s *Server) handleSwapWithMaster(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowActionInput) (*mcpsdk.CallToolResult, ActionOutput, error) {
	if err := s.client.SwapWithMaster(wm.Window(args.Window)); err != nil {
		return nil, ActionOutput{}, err
	}
	return nil, ActionOutput{OK: true}, nil
}

func (s *Server) handleSetGap(_ context.Context, _ *mcpsdk.CallToolRequest, args SetGapInput) (*mcpsdk.CallToolResult, ActionOutput, error) {
	if args.Size < 0 {
		return nil, ActionOutput{}, fmt.Errorf("gap size must not be negative")
	}
	if err := s.client.SetGap(wm.GapSize(args.Size)); err != nil {
		return nil, ActionOutput{}, err
	}
	return nil, ActionOutput{OK: true}, nil
}
