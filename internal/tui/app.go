package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gvassallo/layerwm/internal/ipc"
	"github.com/gvassallo/layerwm/internal/wm"
)

const refreshInterval = time.Second

// snapshot is one polled view of the daemon.
type snapshot struct {
	status  *ipc.StatusData
	windows []ipc.WindowInfo
	layout  *ipc.LayoutData
	err     error
}

type tickMsg time.Time

// model is the root bubbletea model for the inspector.
type model struct {
	client *ipc.Client
	snap   snapshot

	// lastAction holds the result of the most recent keybinding, shown in
	// the status bar until the next action.
	lastAction string

	width  int
	height int
}

func newModel(client *ipc.Client) model {
	m := model{client: client}
	m.snap = m.refresh()
	return m
}

func (m model) refresh() snapshot {
	var snap snapshot
	snap.status, snap.err = m.client.GetStatus()
	if snap.err != nil {
		return snap
	}
	if windows, err := m.client.GetWindows(); err == nil {
		snap.windows = windows.Windows
	}
	snap.layout, _ = m.client.GetLayout()
	return snap
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return tick()
}

// focusedWindow returns the focused window from the last snapshot.
func (m model) focusedWindow() (wm.Window, bool) {
	if m.snap.status == nil || m.snap.status.FocusedWindow == nil {
		return 0, false
	}
	return *m.snap.status.FocusedWindow, true
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.snap = m.refresh()
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "r":
			m.snap = m.refresh()
			m.lastAction = "refreshed"
			return m, nil

		case "0", "1", "2", "3":
			idx := wm.WorkspaceIndex(msg.String()[0] - '0')
			m.apply("switch workspace", m.client.SwitchWorkspace(idx))
			return m, nil

		case "n", "tab":
			m.apply("cycle next", m.client.CycleFocus(wm.Next))
			return m, nil

		case "p", "shift+tab":
			m.apply("cycle prev", m.client.CycleFocus(wm.Prev))
			return m, nil

		case "s":
			if w, ok := m.focusedWindow(); ok {
				m.apply("swap with master", m.client.SwapWithMaster(w))
			}
			return m, nil

		case "f":
			if w, ok := m.focusedWindow(); ok {
				m.apply("toggle floating", m.client.ToggleFloating(w))
			}
			return m, nil

		case "h":
			if w, ok := m.focusedWindow(); ok {
				m.apply("minimise", m.client.ToggleMinimised(w))
			}
			return m, nil

		case "z":
			if w, ok := m.focusedWindow(); ok {
				m.apply("toggle fullscreen", m.client.ToggleFullscreen(w))
			}
			return m, nil
		}
	}

	return m, nil
}

// apply records the outcome of an action and refreshes the snapshot.
func (m *model) apply(name string, err error) {
	if err != nil {
		m.lastAction = name + ": " + err.Error()
	} else {
		m.lastAction = name
	}
	m.snap = m.refresh()
}
