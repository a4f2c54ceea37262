package cli

import (
	"context"
	"fmt"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/app"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/styles"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/config"
)

type contextKey string

// appKey carries an already opened App, e.g. one built over an in-memory
// store by tests or shared by the root command
const appKey contextKey = "kanbanApp"

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with the board store

	owned bool
}

// WithApp returns a context that makes GetCLIFromContext use a instead of
// opening the configured store
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// NewCLI loads the user configuration and opens the board it points at
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	application, err := app.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open board: %w", err)
	}
	styles.Init(application.Palette(ctx))

	return &CLI{App: application, owned: true}, nil
}

// GetCLIFromContext returns a CLI for the App stored in ctx, or opens a
// new one through NewCLI
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}
	return NewCLI(ctx)
}

// Close saves pending changes and releases the store. An App taken from the
// context belongs to whoever put it there and is left open.
func (c *CLI) Close() error {
	if !c.owned {
		c.App.Flush(context.Background())
		return nil
	}
	return c.App.Close()
}
