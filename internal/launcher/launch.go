package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/jot/internal/app"
	"github.com/thenoetrevino/jot/internal/config"
	"github.com/thenoetrevino/jot/internal/daemon"
	"github.com/thenoetrevino/jot/internal/database"
	"github.com/thenoetrevino/jot/internal/events"
	"github.com/thenoetrevino/jot/internal/logging"
	"github.com/thenoetrevino/jot/internal/tui/core"
	"github.com/thenoetrevino/jot/internal/tui/theme"
	"github.com/thenoetrevino/jot/internal/user"
)

// Launch starts the TUI application
func Launch() error {
	// Initialize logging to file before anything else
	logFile, err := logging.Init()
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	theme.Init(cfg.ColorScheme)

	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	publisher, stopRelay := startEvents(ctx)
	defer stopRelay()
	application := app.New(
		database.NewRepository(db),
		app.WithEventPublisher(publisher),
		app.WithLogger(logging.Logger),
	)
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing app", "error", err)
		}
	}()

	userID := user.GetCurrentUsername()
	slog.Info("starting jot", "user_id", userID)

	tuiApp := core.New(ctx, application, cfg, userID)
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}

	slog.Info("jot exited")
	return nil
}

// startEvents returns the publisher the TUI writes to and refreshes from.
// The first TUI hosts a bus and relays it over the event socket, so `jot note`
// commands reach it. A second TUI joins that relay as a client. If the socket
// is unusable the TUI still refreshes from its own writes. The returned func
// stops the relay and removes its socket.
func startEvents(ctx context.Context) (events.EventPublisher, func()) {
	noop := func() {}
	bus := events.NewBus(events.DefaultBufferSize)

	socketPath, err := events.SocketPath()
	if err != nil {
		slog.Warn("event socket unavailable", "error", err)
		return bus, noop
	}

	srv, err := daemon.NewServer(socketPath, bus)
	switch {
	case err == nil:
		go func() {
			if err := srv.Start(ctx); err != nil {
				slog.Error("event relay stopped", "error", err)
			}
		}()
		return bus, func() { _ = srv.Shutdown() }
	case errors.Is(err, daemon.ErrAlreadyRunning):
		client := events.NewClient(socketPath)
		if err := client.Connect(ctx); err != nil {
			slog.Warn("failed to join event relay", "error", err)
			return bus, noop
		}
		_ = bus.Close()
		slog.Info("joined running event relay", "socket", socketPath)
		return client, noop
	default:
		slog.Warn("failed to start event relay", "error", err)
		return bus, noop
	}
}
