package app

import (
	"log/slog"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/board"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/clock"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/config"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	cfg       *config.Config
	clock     clock.Clock
	generator board.Generator
	logger    *slog.Logger
}

// WithConfig sets the user configuration
func WithConfig(cfg *config.Config) Option {
	return func(c *appConfig) {
		c.cfg = cfg
	}
}

// WithClock sets the time source for every timestamp the app produces
func WithClock(clk clock.Clock) Option {
	return func(c *appConfig) {
		c.clock = clk
	}
}

// WithGenerator sets the demo board generator
func WithGenerator(g board.Generator) Option {
	return func(c *appConfig) {
		c.generator = g
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(c *appConfig) {
		c.logger = logger
	}
}
