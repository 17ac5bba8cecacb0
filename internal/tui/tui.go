// Package tui is an interactive inspector for a running layerwm daemon.
// It polls the daemon over IPC and renders workspaces, windows and the
// current layout, with keybindings for the common operations.
package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/gvassallo/layerwm/internal/ipc"
)

// Run starts the inspector main loop.
func Run(client *ipc.Client) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("inspect requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	p := tea.NewProgram(newModel(client), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
