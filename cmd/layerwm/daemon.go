package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/phsym/console-slog"

	"github.com/gvassallo/layerwm/internal/config"
	"github.com/gvassallo/layerwm/internal/daemon"
	"github.com/gvassallo/layerwm/internal/hotkeys"
	"github.com/gvassallo/layerwm/internal/ipc"
	"github.com/gvassallo/layerwm/internal/mcp"
	"github.com/gvassallo/layerwm/internal/state"
	"github.com/gvassallo/layerwm/internal/sutureext"
	"github.com/gvassallo/layerwm/internal/wm"
	"github.com/gvassallo/layerwm/internal/x11"
)

func initLogger(level string) {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level: l,
	})))
}

func runDaemon(args []string) int {
	if len(args) != 0 {
		fmt.Fprintln(os.Stderr, "Usage: layerwm daemon")
		return 2
	}

	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		return 1
	}
	initLogger(cfg.LogLevel)
	slog.Info("configuration loaded", "layout_mode", cfg.LayoutMode, "gap", cfg.GapSize)

	backend, err := x11.NewBackend(cfg)
	if err != nil {
		slog.Error("failed to connect to display", "error", err)
		return 1
	}
	defer backend.Close()

	screen, err := backend.ScreenSize()
	if err != nil {
		slog.Warn("falling back to configured screen size", "error", err)
		screen = wm.Screen{Width: cfg.Screen.Width, Height: cfg.Screen.Height}
	}

	var store *state.Store
	if cfg.GetPersistState() {
		store, err = state.NewStore()
		if err != nil {
			slog.Error("failed to open state store", "error", err)
			return 1
		}
	}

	manager := wm.NewMultiWorkspaceWM(screen)
	if store != nil {
		if restored, err := store.Load(); err != nil {
			slog.Warn("discarding unreadable state snapshot", "error", err)
		} else if restored != nil {
			restored.ResizeScreen(screen)
			manager = restored
			slog.Info("restored previous state", "windows", len(manager.Windows()))
		}
	}

	engine := daemon.NewEngine(manager, backend, store, wm.GapSize(cfg.GapSize))
	engine.SetLayoutMode(cfg.LayoutMode)

	ipcServer, err := ipc.NewServer(engine)
	if err != nil {
		slog.Error("failed to create ipc server", "error", err)
		return 1
	}

	reload := func() error {
		newCfg, err := config.Load()
		if err != nil {
			return err
		}
		initLogger(newCfg.LogLevel)
		engine.SetGapSize(wm.GapSize(newCfg.GapSize))
		engine.SetLayoutMode(newCfg.LayoutMode)
		*cfg = *newCfg
		slog.Info("configuration reloaded", "layout_mode", cfg.LayoutMode, "gap", cfg.GapSize)
		return nil
	}
	ipcServer.ReloadFunc = reload

	conn := backend.Conn()
	hotkeyHandler := hotkeys.NewHandler(conn.XUtil, conn.Root, engine)
	if err := hotkeyHandler.RegisterAll(cfg.Keybindings); err != nil {
		slog.Warn("failed to register keybindings", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		for range hup {
			if err := reload(); err != nil {
				slog.Error("config reload failed", "error", err)
			}
		}
	}()

	super := sutureext.NewSupervisor("layerwm")
	sutureext.Add(super, ipcServer)
	sutureext.Add(super, daemon.NewEventPump(engine, backend))

	slog.Info("layerwm daemon started", "screen", screen)
	err = super.Serve(ctx)

	if cfg.SnapshotOnExit {
		if serr := engine.Snapshot(); serr != nil {
			slog.Error("failed to snapshot state on exit", "error", serr)
		}
	}
	ipcServer.Stop()

	if err != nil && err != context.Canceled {
		slog.Error("daemon exited", "error", err)
		return 1
	}
	slog.Info("layerwm daemon stopped")
	return 0
}

func runMCP(args []string) int {
	if len(args) != 0 {
		fmt.Fprintln(os.Stderr, "Usage: layerwm mcp")
		return 2
	}

	// MCP uses stdio for the protocol, so logs must stay on stderr.
	initLogger("warning")

	client, code := newClient()
	if client == nil {
		return code
	}
	server := mcp.NewServer(client)
	if err := server.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
