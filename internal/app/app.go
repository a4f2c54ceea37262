package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/backup"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/board"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/clock"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/config"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/events"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/persistence"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/seed"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/storage"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/theme"
)

// ErrUnknownTheme is returned by SetTheme for ids with no palette
var ErrUnknownTheme = errors.New("unknown theme")

// App holds the board store and everything around it.
// This is the main application container that manages component lifecycles.
type App struct {
	Config  *config.Config
	Store   *board.Store
	Adapter *persistence.Adapter
	Backup  *backup.Codec

	// Boot describes how the initial board was obtained
	Boot persistence.BootstrapResult

	kv     storage.KV
	bus    *events.Bus
	syncer *persistence.Syncer
	clock  clock.Clock
	logger *slog.Logger
}

// Open opens the storage selected by cfg and builds the App on top of it
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	var kv storage.KV
	if cfg.Storage.Memory {
		kv = storage.NewMemoryStore()
	} else {
		sqlite, err := storage.OpenSQLite(ctx, cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open storage: %w", err)
		}
		kv = sqlite
	}

	a, err := New(ctx, kv, append([]Option{WithConfig(cfg)}, opts...)...)
	if err != nil {
		_ = kv.Close()
		return nil, err
	}
	return a, nil
}

// New wires the store, persistence and backup around kv, loads the stored
// board, and starts background saving. The App owns kv from here on.
func New(ctx context.Context, kv storage.KV, opts ...Option) (*App, error) {
	ac := &appConfig{}
	for _, opt := range opts {
		opt(ac)
	}
	if ac.cfg == nil {
		ac.cfg = config.Default()
	}
	if ac.clock == nil {
		ac.clock = clock.Real()
	}
	if ac.logger == nil {
		ac.logger = slog.Default()
	}
	if ac.generator == nil {
		demoSeed := ac.cfg.Demo.Seed
		if demoSeed == 0 {
			demoSeed = time.Now().UnixNano()
		}
		ac.generator = seed.New(demoSeed)
	}

	bus := events.NewBus(0, ac.logger)
	store := board.NewStore(
		board.WithClock(ac.clock),
		board.WithPublisher(bus),
		board.WithGenerator(ac.generator),
		board.WithLogger(ac.logger),
	)
	adapter := persistence.NewAdapter(kv,
		persistence.WithClock(ac.clock),
		persistence.WithLogger(ac.logger),
	)

	var bootGen board.Generator
	if ac.cfg.Demo.ShouldSeed() {
		bootGen = ac.generator
	}
	boot := persistence.Bootstrap(ctx, store, adapter, bootGen)

	syncer := persistence.NewSyncer(adapter, store, ac.logger)
	if err := syncer.Start(context.Background(), bus); err != nil {
		_ = bus.Close()
		return nil, err
	}

	return &App{
		Config:  ac.cfg,
		Store:   store,
		Adapter: adapter,
		Backup:  backup.NewCodec(kv, backup.WithClock(ac.clock), backup.WithLogger(ac.logger)),
		Boot:    boot,
		kv:      kv,
		bus:     bus,
		syncer:  syncer,
		clock:   ac.clock,
		logger:  ac.logger,
	}, nil
}

// Now returns the current time of the app clock
func (a *App) Now() time.Time {
	return a.clock.Now()
}

// Events subscribes to store change notifications until ctx is done
func (a *App) Events(ctx context.Context) (<-chan events.Event, error) {
	return a.bus.Listen(ctx)
}

// Theme returns the stored theme, or the configured one if none was chosen
func (a *App) Theme(ctx context.Context) string {
	if id, ok := a.Adapter.LoadTheme(ctx); ok && theme.Valid(id) {
		return id
	}
	return a.Config.Theme
}

// Palette returns the colors of the current theme. Overrides from the
// config file apply only while its base theme is selected.
func (a *App) Palette(ctx context.Context) theme.Palette {
	id := a.Theme(ctx)
	if id == a.Config.Colors.ID {
		return a.Config.Colors
	}
	return theme.Get(id)
}

// SetTheme stores the theme preference
func (a *App) SetTheme(ctx context.Context, id string) error {
	if !theme.Valid(id) {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, id)
	}
	if !a.Adapter.SaveTheme(ctx, id) {
		return errors.New("failed to save theme")
	}
	if err := a.bus.SendEvent(events.Event{
		Type:      events.EventThemeChanged,
		BoardID:   a.Store.Board().ID.String(),
		Timestamp: a.clock.Now(),
	}); err != nil {
		a.logger.Warn("failed to publish theme change", "error", err)
	}
	return nil
}

// Flush waits until the latest board and filters are saved
func (a *App) Flush(ctx context.Context) {
	a.syncer.Flush(ctx)
}

// Reload re-reads the stored board and filters into the store, e.g. after
// a backup import
func (a *App) Reload(ctx context.Context) {
	a.Boot = persistence.Bootstrap(ctx, a.Store, a.Adapter, nil)
}

// ImportBackup restores a backup document and loads it into the store.
// Pending saves are written first so they cannot overwrite the import.
func (a *App) ImportBackup(ctx context.Context, r io.Reader) bool {
	if err := a.Restore(ctx, r); err != nil {
		a.logger.Error("backup import failed", "error", err)
		return false
	}
	return true
}

// Restore is ImportBackup returning why the document was rejected
func (a *App) Restore(ctx context.Context, r io.Reader) error {
	a.syncer.Flush(ctx)
	if err := a.Backup.Import(ctx, r); err != nil {
		return err
	}
	a.Reload(ctx)
	return nil
}

// Reset replaces the board with a fresh demo board, clears the filters,
// and saves both right away
func (a *App) Reset(ctx context.Context) bool {
	a.syncer.Flush(ctx)
	return persistence.Reset(ctx, a.Store, a.Adapter)
}

// Close saves pending changes and releases storage
func (a *App) Close() error {
	var errs []error
	if err := a.syncer.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := a.bus.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := a.kv.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
