package wm

import "fmt"

// UnknownWindowError reports an operation that referenced a window the
// manager does not track. The manager's state is unchanged when this is
// returned.
type UnknownWindowError struct {
	Window Window
}

func (e *UnknownWindowError) Error() string {
	return fmt.Sprintf("unknown window: %d", e.Window)
}

// AlreadyManagedWindowError reports an AddWindow call for a window that is
// already tracked.
type AlreadyManagedWindowError struct {
	Window Window
}

func (e *AlreadyManagedWindowError) Error() string {
	return fmt.Sprintf("already managed window: %d", e.Window)
}

// InvalidWorkspaceError reports a workspace index outside 0..MaxWorkspaceIndex.
type InvalidWorkspaceError struct {
	Index WorkspaceIndex
}

func (e *InvalidWorkspaceError) Error() string {
	return fmt.Sprintf("workspace index is not valid: %d", e.Index)
}
