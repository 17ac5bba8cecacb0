package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gvassallo/layerwm/internal/ipc"
	"github.com/gvassallo/layerwm/internal/tui"
	"github.com/gvassallo/layerwm/internal/wm"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "daemon":
		os.Exit(runDaemon(os.Args[2:]))
	case "status":
		os.Exit(runStatus(os.Args[2:]))
	case "windows":
		os.Exit(runWindows(os.Args[2:]))
	case "layout":
		os.Exit(runLayout(os.Args[2:]))
	case "focus":
		os.Exit(runFocus(os.Args[2:]))
	case "cycle":
		os.Exit(runCycle(os.Args[2:]))
	case "swap":
		os.Exit(runSwap(os.Args[2:]))
	case "master":
		os.Exit(runWindowAction("master", os.Args[2:], func(c *ipc.Client, w wm.Window) error {
			return c.SwapWithMaster(w)
		}))
	case "float":
		os.Exit(runWindowAction("float", os.Args[2:], func(c *ipc.Client, w wm.Window) error {
			return c.ToggleFloating(w)
		}))
	case "minimise":
		os.Exit(runWindowAction("minimise", os.Args[2:], func(c *ipc.Client, w wm.Window) error {
			return c.ToggleMinimised(w)
		}))
	case "fullscreen":
		os.Exit(runWindowAction("fullscreen", os.Args[2:], func(c *ipc.Client, w wm.Window) error {
			return c.ToggleFullscreen(w)
		}))
	case "workspace":
		os.Exit(runWorkspace(os.Args[2:]))
	case "move":
		os.Exit(runMove(os.Args[2:]))
	case "gap":
		os.Exit(runGap(os.Args[2:]))
	case "resize":
		os.Exit(runResize(os.Args[2:]))
	case "snapshot":
		os.Exit(runSnapshot(os.Args[2:]))
	case "reload":
		os.Exit(runReload(os.Args[2:]))
	case "inspect", "tui":
		os.Exit(runInspect(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: layerwm <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  daemon              Start the layerwm daemon (foreground)")
	fmt.Fprintln(w, "  status              Show daemon status")
	fmt.Fprintln(w, "  windows             List managed windows")
	fmt.Fprintln(w, "  layout              Show the layout currently on screen")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  focus <window>      Focus a window (switches workspace if needed)")
	fmt.Fprintln(w, "  cycle <prev|next>   Move focus to the previous/next visible window")
	fmt.Fprintln(w, "  swap <prev|next>    Swap the focused window with its neighbour")
	fmt.Fprintln(w, "  master <window>     Swap a window with the master tile")
	fmt.Fprintln(w, "  float <window>      Toggle a window between tiled and floating")
	fmt.Fprintln(w, "  minimise <window>   Hide a window, or restore it")
	fmt.Fprintln(w, "  fullscreen <window> Toggle fullscreen for a window")
	fmt.Fprintln(w, "  workspace <0-3>     Switch to a workspace")
	fmt.Fprintln(w, "  move <window> <x> <y> <w> <h>")
	fmt.Fprintln(w, "                      Move/resize a floating window")
	fmt.Fprintln(w, "  gap <px>            Set the gap around tiled windows")
	fmt.Fprintln(w, "  resize <w> <h>      Relayout for a new screen size")
	fmt.Fprintln(w, "  snapshot            Persist the daemon state now")
	fmt.Fprintln(w, "  reload              Reload the daemon configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  inspect             Open the interactive inspector")
	fmt.Fprintln(w, "  mcp                 Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Window IDs accept decimal or hex (0x...) notation.")
}

func newClient() (*ipc.Client, int) {
	client, err := ipc.NewClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, 1
	}
	return client, 0
}

// parseWindow accepts decimal and 0x-prefixed hex window IDs.
func parseWindow(s string) (wm.Window, error) {
	id, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid window id %q", s)
	}
	return wm.Window(id), nil
}

func runStatus(args []string) int {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	jsonOut := fs.Bool("json", false, "Output as JSON")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	client, code := newClient()
	if client == nil {
		return code
	}
	status, err := client.GetStatus()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *jsonOut {
		return printJSON(status)
	}
	fmt.Printf("daemon_running:    %v\n", status.DaemonRunning)
	fmt.Printf("current_workspace: %d\n", status.CurrentWorkspace)
	fmt.Printf("window_count:      %d\n", status.WindowCount)
	if status.FocusedWindow != nil {
		fmt.Printf("focused_window:    0x%08x\n", uint32(*status.FocusedWindow))
	}
	if status.FullscreenWindow != nil {
		fmt.Printf("fullscreen_window: 0x%08x\n", uint32(*status.FullscreenWindow))
	}
	fmt.Printf("screen:            %dx%d\n", status.Screen.Width, status.Screen.Height)
	fmt.Printf("gap_size:          %d\n", status.GapSize)
	fmt.Printf("uptime_seconds:    %d\n", status.UptimeSeconds)
	return 0
}

func runWindows(args []string) int {
	fs := flag.NewFlagSet("windows", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	jsonOut := fs.Bool("json", false, "Output as JSON")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	client, code := newClient()
	if client == nil {
		return code
	}
	data, err := client.GetWindows()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *jsonOut {
		return printJSON(data)
	}
	for _, w := range data.Windows {
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
		if w.Focused {
			flags = append(flags, "focused")
		}
		fmt.Printf("0x%08x  ws%d  %s  %s\n",
			uint32(w.Window), w.Workspace, w.Geometry.String(), strings.Join(flags, ","))
	}
	return 0
}

func runLayout(args []string) int {
	fs := flag.NewFlagSet("layout", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	jsonOut := fs.Bool("json", false, "Output as JSON")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	client, code := newClient()
	if client == nil {
		return code
	}
	data, err := client.GetLayout()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *jsonOut {
		return printJSON(data)
	}
	fmt.Printf("workspace: %d\n", data.Workspace)
	for _, lw := range data.Layout.Windows {
		focused := ""
		if data.Layout.FocusedWindow != nil && *data.Layout.FocusedWindow == lw.Window {
			focused = "  focused"
		}
		fmt.Printf("0x%08x  %s%s\n", uint32(lw.Window), lw.Geometry.String(), focused)
	}
	return 0
}

func runFocus(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: layerwm focus <window>")
		return 2
	}
	w, err := parseWindow(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	client, code := newClient()
	if client == nil {
		return code
	}
	if err := client.FocusWindow(w); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func parseDirectionArg(s string) (wm.PrevOrNext, error) {
	switch s {
	case "prev":
		return wm.Prev, nil
	case "next":
		return wm.Next, nil
	default:
		return "", fmt.Errorf("direction must be prev or next, got %q", s)
	}
}

func runCycle(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: layerwm cycle <prev|next>")
		return 2
	}
	dir, err := parseDirectionArg(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	client, code := newClient()
	if client == nil {
		return code
	}
	if err := client.CycleFocus(dir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runSwap(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: layerwm swap <prev|next>")
		return 2
	}
	dir, err := parseDirectionArg(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	client, code := newClient()
	if client == nil {
		return code
	}
	if err := client.SwapWindows(dir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runWindowAction(name string, args []string, fn func(*ipc.Client, wm.Window) error) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: layerwm %s <window>\n", name)
		return 2
	}
	w, err := parseWindow(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	client, code := newClient()
	if client == nil {
		return code
	}
	if err := fn(client, w); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runWorkspace(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: layerwm workspace <0-3>")
		return 2
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid workspace %q\n", args[0])
		return 2
	}

	client, code := newClient()
	if client == nil {
		return code
	}
	if err := client.SwitchWorkspace(wm.WorkspaceIndex(idx)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runMove(args []string) int {
	if len(args) != 5 {
		fmt.Fprintln(os.Stderr, "Usage: layerwm move <window> <x> <y> <w> <h>")
		return 2
	}
	w, err := parseWindow(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	nums := make([]int, 4)
	for i, arg := range args[1:] {
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid number %q\n", arg)
			return 2
		}
		nums[i] = n
	}

	client, code := newClient()
	if client == nil {
		return code
	}
	geom := wm.Geometry{X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3]}
	if err := client.SetGeometry(w, geom); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runGap(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: layerwm gap <px>")
		return 2
	}
	size, err := strconv.Atoi(args[0])
	if err != nil || size < 0 {
		fmt.Fprintf(os.Stderr, "invalid gap size %q\n", args[0])
		return 2
	}

	client, code := newClient()
	if client == nil {
		return code
	}
	if err := client.SetGap(wm.GapSize(size)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runResize(args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: layerwm resize <width> <height>")
		return 2
	}
	width, werr := strconv.Atoi(args[0])
	height, herr := strconv.Atoi(args[1])
	if werr != nil || herr != nil || width <= 0 || height <= 0 {
		fmt.Fprintf(os.Stderr, "invalid screen size %q x %q\n", args[0], args[1])
		return 2
	}

	client, code := newClient()
	if client == nil {
		return code
	}
	if err := client.ResizeScreen(wm.Screen{Width: width, Height: height}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runSnapshot(args []string) int {
	if len(args) != 0 {
		fmt.Fprintln(os.Stderr, "Usage: layerwm snapshot")
		return 2
	}

	client, code := newClient()
	if client == nil {
		return code
	}
	if err := client.Snapshot(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runReload(args []string) int {
	if len(args) != 0 {
		fmt.Fprintln(os.Stderr, "Usage: layerwm reload")
		return 2
	}

	client, code := newClient()
	if client == nil {
		return code
	}
	if err := client.Reload(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runInspect(args []string) int {
	if len(args) != 0 {
		fmt.Fprintln(os.Stderr, "Usage: layerwm inspect")
		return 2
	}

	client, code := newClient()
	if client == nil {
		return code
	}
	if err := tui.Run(client); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func printJSON(v interface{}) int {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
