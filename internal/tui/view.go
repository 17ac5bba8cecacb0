package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gvassallo/layerwm/internal/ipc"
	"github.com/gvassallo/layerwm/internal/wm"
)

var (
	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("250")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	focusedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	activeWorkspaceStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("62")).
				Padding(0, 1)

	inactiveWorkspaceStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Background(lipgloss.Color("236")).
				Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)
)

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	statusBar := m.renderStatusBar()
	workspaceBar := m.renderWorkspaceBar()
	helpBar := m.renderHelpBar()

	var content string
	if m.snap.err != nil {
		content = dimStyle.Render("cannot reach daemon: " + m.snap.err.Error())
	} else {
		content = lipgloss.JoinVertical(lipgloss.Left,
			m.renderWindows(),
			"",
			m.renderLayout(),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		statusBar,
		workspaceBar,
		content,
		helpBar,
	)
}

func (m model) renderStatusBar() string {
	var status string
	if m.snap.err != nil {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("●")
		status = dot + " daemon not running"
	} else {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("●")
		st := m.snap.status
		parts := []string{
			dot + " layerwm",
			fmt.Sprintf("screen %dx%d", st.Screen.Width, st.Screen.Height),
			fmt.Sprintf("gap %d", st.GapSize),
			fmt.Sprintf("%d windows", st.WindowCount),
		}
		if m.lastAction != "" {
			parts = append(parts, m.lastAction)
		}
		status = strings.Join(parts, "  ")
	}
	return statusBarStyle.Width(m.width).Render(status)
}

func (m model) renderWorkspaceBar() string {
	current := wm.WorkspaceIndex(-1)
	if m.snap.status != nil {
		current = m.snap.status.CurrentWorkspace
	}

	counts := make(map[wm.WorkspaceIndex]int)
	for _, w := range m.snap.windows {
		counts[w.Workspace]++
	}

	var tabs []string
	for i := wm.WorkspaceIndex(0); i <= wm.MaxWorkspaceIndex; i++ {
		label := fmt.Sprintf("%d (%d)", i, counts[i])
		if i == current {
			tabs = append(tabs, activeWorkspaceStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveWorkspaceStyle.Render(label))
		}
	}
	return lipgloss.NewStyle().MarginBottom(1).Width(m.width).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m model) renderWindows() string {
	if len(m.snap.windows) == 0 {
		return dimStyle.Render("no managed windows")
	}

	lines := []string{headerStyle.Render("windows")}
	for _, w := range m.snap.windows {
		lines = append(lines, renderWindowLine(w))
	}
	return strings.Join(lines, "\n")
}

func renderWindowLine(w ipc.WindowInfo) string {
	var flags []string
	if w.Floating {
		flags = append(flags, "float")
	}
	if w.Minimised {
		flags = append(flags, "min")
	}
	if w.Fullscreen {
		flags = append(flags, "full")
	}

	line := fmt.Sprintf("  0x%08x  ws%d  %s  %s",
		uint32(w.Window), w.Workspace, w.Geometry.String(), strings.Join(flags, ","))
	if w.Focused {
		return focusedStyle.Render(line)
	}
	if w.Minimised {
		return dimStyle.Render(line)
	}
	return line
}

func (m model) renderLayout() string {
	if m.snap.layout == nil || len(m.snap.layout.Layout.Windows) == 0 {
		return dimStyle.Render("empty layout")
	}

	lines := []string{headerStyle.Render("on screen")}
	for _, lw := range m.snap.layout.Layout.Windows {
		lines = append(lines, fmt.Sprintf("  0x%08x  %s", uint32(lw.Window), lw.Geometry.String()))
	}
	return strings.Join(lines, "\n")
}

func (m model) renderHelpBar() string {
	help := "0-3: workspace  n/p: cycle focus  s: master  f: float  h: minimise  z: fullscreen  r: refresh  q: quit"
	return helpStyle.Width(m.width).Render(help)
}
