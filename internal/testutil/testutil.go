// Package testutil builds boards and apps for tests
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/app"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/clock"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/config"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/logging"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/seed"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/storage"
)

// Now is the fixed time every test app runs at
var Now = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

// SetupTestDB opens a sqlite store in a temporary directory
func SetupTestDB(t *testing.T) storage.KV {
	t.Helper()
	kv, err := storage.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "kanban.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return kv
}

// NoDemoConfig returns a config that starts from an empty board
func NoDemoConfig() *config.Config {
	cfg := config.Default()
	seedWhenEmpty := false
	cfg.Demo.SeedWhenEmpty = &seedWhenEmpty
	return cfg
}

// SetupTestApp builds an App over an in-memory store with a fake clock
// and an empty board. It is closed when the test ends.
func SetupTestApp(t *testing.T, opts ...app.Option) (*app.App, *clock.FakeClock) {
	t.Helper()
	return SetupTestAppWithKV(t, storage.NewMemoryStore(), opts...)
}

// SetupTestAppWithKV is SetupTestApp over a caller-provided store
func SetupTestAppWithKV(t *testing.T, kv storage.KV, opts ...app.Option) (*app.App, *clock.FakeClock) {
	t.Helper()
	clk := clock.Fake(Now)
	base := []app.Option{
		app.WithConfig(NoDemoConfig()),
		app.WithClock(clk),
		app.WithGenerator(seed.New(1)),
		app.WithLogger(logging.Discard()),
	}
	a, err := app.New(context.Background(), kv, append(base, opts...)...)
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a, clk
}
