package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/jot/internal/app"
	"github.com/thenoetrevino/jot/internal/cli/styles"
	"github.com/thenoetrevino/jot/internal/config"
	"github.com/thenoetrevino/jot/internal/database"
	"github.com/thenoetrevino/jot/internal/events"
	"github.com/thenoetrevino/jot/internal/user"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	UserID string // Owner used when --user is not given

	db *sql.DB // nil when the app was injected
}

type appContextKey struct{}

// WithApp returns a context carrying an existing App. GetCLIFromContext uses
// it instead of opening the database, which lets commands run against an
// in-memory store.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appContextKey{}, a)
}

// GetCLIFromContext returns a CLI for the App carried by ctx, or opens the
// configured database when there is none.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appContextKey{}).(*app.App); ok && a != nil {
		return &CLI{
			App:    a,
			Config: config.Default(),
			UserID: user.GetCurrentUsername(),
		}, nil
	}
	return NewCLI(ctx)
}

// NewCLI loads config and opens the note database
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	styles.Init(cfg.ColorScheme)

	// An empty path falls back to ~/.jot/notes.db
	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	var opts []app.Option
	if publisher := connectEvents(ctx); publisher != nil {
		opts = append(opts, app.WithEventPublisher(publisher))
	}

	return &CLI{
		App:    app.New(database.NewRepository(db), opts...),
		Config: cfg,
		UserID: user.GetCurrentUsername(),
		db:     db,
	}, nil
}

const connectTimeout = 500 * time.Millisecond

// connectEvents joins the event relay of a running TUI so writes made here
// refresh it. It returns nil when no TUI is serving events.
func connectEvents(ctx context.Context) events.EventPublisher {
	socketPath, err := events.SocketPath()
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client := events.NewClient(socketPath)
	if err := client.Connect(ctx); err != nil {
		slog.Debug("no event relay reachable", "socket", socketPath, "error", err)
		return nil
	}
	return client
}

// Close cleans up CLI resources. An injected App is left open for its owner.
func (c *CLI) Close() error {
	if c.db == nil {
		return nil
	}
	if err := c.App.Close(); err != nil {
		return err
	}
	return c.db.Close()
}
