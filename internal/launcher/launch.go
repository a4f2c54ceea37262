package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/app"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/config"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/logging"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/tui/core"
)

// Launch starts the TUI application
func Launch() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logging to file before anything else touches the board
	logFile, err := logging.Init(cfg.Log.Path, cfg.SlogLevel())
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logFile.Close()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	a, err := app.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open board: %w", err)
	}

	// Close flushes the board and filters one last time
	defer func() {
		if err := a.Close(); err != nil {
			slog.Error("error closing board", "error", err)
		}
	}()

	if err := core.Run(ctx, a); err != nil {
		return err
	}
	if ctx.Err() != nil {
		slog.Info("shutdown signal received, cleaning up")
	}
	return nil
}
