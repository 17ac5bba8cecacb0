package ipc

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/gvassallo/layerwm/internal/daemon"
	"github.com/gvassallo/layerwm/internal/platform"
	"github.com/gvassallo/layerwm/internal/state"
	"github.com/gvassallo/layerwm/internal/wm"
)

func startTestServer(t *testing.T) (*Client, *daemon.Engine) {
	t.Helper()

	screen := wm.Screen{Width: 800, Height: 600}
	store := state.NewStoreAt(filepath.Join(t.TempDir(), "state.json"))
	engine := daemon.NewEngine(wm.NewMultiWorkspaceWM(screen), platform.NewFake(screen), store, 0)

	socketPath := filepath.Join(t.TempDir(), "layerwm.sock")
	server := NewServerAt(engine, socketPath)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		server.Serve(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// Wait for the socket to appear.
	deadline := time.Now().Add(2 * time.Second)
	for {
		conn, err := net.Dial("unix", socketPath)
		if err == nil {
			conn.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server did not start: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	return NewClientAt(socketPath), engine
}

func TestServer_AddAndQueryWindows(t *testing.T) {
	client, _ := startTestServer(t)

	if err := client.AddWindow(AddWindowPayload{Window: 1, Geometry: wm.Geometry{Width: 100, Height: 100}}); err != nil {
		t.Fatalf("AddWindow: %v", err)
	}
	if err := client.AddWindow(AddWindowPayload{Window: 2, Geometry: wm.Geometry{X: 10, Y: 20, Width: 300, Height: 200}, Floating: true}); err != nil {
		t.Fatalf("AddWindow: %v", err)
	}

	st, err := client.GetStatus()
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if st.WindowCount != 2 || !st.DaemonRunning {
		t.Fatalf("unexpected status %+v", st)
	}
	if st.FocusedWindow == nil || *st.FocusedWindow != 2 {
		t.Fatalf("expected focus on window 2, got %v", st.FocusedWindow)
	}

	windows, err := client.GetWindows()
	if err != nil {
		t.Fatalf("GetWindows: %v", err)
	}
	if len(windows.Windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(windows.Windows))
	}
	for _, w := range windows.Windows {
		if w.Window == 2 && !w.Floating {
			t.Fatalf("window 2 must be floating: %+v", w)
		}
	}
}

func TestServer_LayoutReflectsOperations(t *testing.T) {
	client, _ := startTestServer(t)

	if err := client.AddWindow(AddWindowPayload{Window: 1, Geometry: wm.Geometry{Width: 100, Height: 100}}); err != nil {
		t.Fatalf("AddWindow: %v", err)
	}
	if err := client.AddWindow(AddWindowPayload{Window: 2, Geometry: wm.Geometry{Width: 100, Height: 100}}); err != nil {
		t.Fatalf("AddWindow: %v", err)
	}

	layout, err := client.GetLayout()
	if err != nil {
		t.Fatalf("GetLayout: %v", err)
	}
	if len(layout.Layout.Windows) != 2 {
		t.Fatalf("expected 2 laid-out windows, got %d", len(layout.Layout.Windows))
	}
	// Master takes the left half once a second tile arrives.
	if layout.Layout.Windows[0].Geometry != (wm.Geometry{Width: 400, Height: 600}) {
		t.Fatalf("unexpected master geometry %+v", layout.Layout.Windows[0].Geometry)
	}

	if err := client.ToggleFullscreen(2); err != nil {
		t.Fatalf("ToggleFullscreen: %v", err)
	}
	layout, err = client.GetLayout()
	if err != nil {
		t.Fatalf("GetLayout: %v", err)
	}
	if len(layout.Layout.Windows) != 1 || layout.Layout.Windows[0].Window != 2 {
		t.Fatalf("expected only fullscreen window 2, got %+v", layout.Layout.Windows)
	}
}

func TestServer_ErrorsPropagate(t *testing.T) {
	client, _ := startTestServer(t)

	if err := client.FocusWindow(99); err == nil {
		t.Fatalf("expected unknown window error")
	}
	if err := client.SwitchWorkspace(9); err == nil {
		t.Fatalf("expected invalid workspace error")
	}
	if err := client.Reload(); err == nil {
		t.Fatalf("expected reload to be unsupported")
	}
}

func TestServer_SwitchWorkspace(t *testing.T) {
	client, engine := startTestServer(t)

	if err := client.AddWindow(AddWindowPayload{Window: 1, Geometry: wm.Geometry{Width: 100, Height: 100}}); err != nil {
		t.Fatalf("AddWindow: %v", err)
	}
	if err := client.SwitchWorkspace(3); err != nil {
		t.Fatalf("SwitchWorkspace: %v", err)
	}

	st := engine.Status()
	if st.CurrentWorkspace != 3 {
		t.Fatalf("expected workspace 3, got %d", st.CurrentWorkspace)
	}
	layout, err := client.GetLayout()
	if err != nil {
		t.Fatalf("GetLayout: %v", err)
	}
	if layout.Workspace != 3 || len(layout.Layout.Windows) != 0 {
		t.Fatalf("expected empty workspace 3, got %+v", layout)
	}
}

func TestServer_ResizeScreen(t *testing.T) {
	client, engine := startTestServer(t)

	if err := client.AddWindow(AddWindowPayload{Window: 1, Geometry: wm.Geometry{Width: 100, Height: 100}}); err != nil {
		t.Fatalf("AddWindow: %v", err)
	}
	if err := client.ResizeScreen(wm.Screen{Width: 1920, Height: 1080}); err != nil {
		t.Fatalf("ResizeScreen: %v", err)
	}
	if err := client.ResizeScreen(wm.Screen{Width: -1, Height: 600}); err == nil {
		t.Fatalf("expected error for negative screen size")
	}

	st := engine.Status()
	if st.Screen != (wm.Screen{Width: 1920, Height: 1080}) {
		t.Fatalf("unexpected screen %+v", st.Screen)
	}
	layout, err := client.GetLayout()
	if err != nil {
		t.Fatalf("GetLayout: %v", err)
	}
	if layout.Layout.Windows[0].Geometry != (wm.Geometry{Width: 1920, Height: 1080}) {
		t.Fatalf("sole tile must fill the resized screen, got %+v", layout.Layout.Windows[0].Geometry)
	}
}

func TestServer_Snapshot(t *testing.T) {
	client, _ := startTestServer(t)

	if err := client.AddWindow(AddWindowPayload{Window: 1, Geometry: wm.Geometry{Width: 100, Height: 100}}); err != nil {
		t.Fatalf("AddWindow: %v", err)
	}
	if err := client.Snapshot(); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
}

func TestServer_UnknownCommand(t *testing.T) {
	client, _ := startTestServer(t)

	if _, err := client.sendRequest(CommandType("BOGUS"), nil); err == nil {
		t.Fatalf("expected unknown command error")
	}
}
