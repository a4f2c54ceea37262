// Package persistence saves and loads the board, the filter criteria and the
// theme preference through a storage.KV. Every failure is logged and turned
// into a false or nil result; nothing here returns an error to the store.
package persistence

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/clock"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/storage"
)

// Keys the adapter reads and writes
const (
	BoardKey   = "kanban-board-data"
	FiltersKey = "kanban-filters"
	ThemeKey   = "kanban-theme-preference"
)

// Keys lists every key this domain persists
var Keys = []string{BoardKey, FiltersKey, ThemeKey}

// Adapter maps domain values to KV entries
type Adapter struct {
	kv     storage.KV
	clock  clock.Clock
	logger *slog.Logger
}

// Option configures an Adapter
type Option func(*Adapter)

// WithClock sets the clock used to fill in missing timestamps
func WithClock(c clock.Clock) Option {
	return func(a *Adapter) { a.clock = c }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(a *Adapter) { a.logger = l }
}

func NewAdapter(kv storage.KV, opts ...Option) *Adapter {
	a := &Adapter{
		kv:     kv,
		clock:  clock.Real(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// KV returns the underlying store
func (a *Adapter) KV() storage.KV { return a.kv }

// SaveBoard writes the board. Reports whether the write succeeded.
func (a *Adapter) SaveBoard(ctx context.Context, b models.Board) bool {
	raw, err := EncodeBoard(b)
	if err != nil {
		a.logger.Error("failed to encode board", "error", err)
		return false
	}
	return a.set(ctx, BoardKey, raw)
}

// LoadBoard reads the board. Returns nil when nothing usable is stored.
func (a *Adapter) LoadBoard(ctx context.Context) *models.Board {
	raw, ok := a.get(ctx, BoardKey)
	if !ok {
		return nil
	}
	b, err := DecodeBoard(raw, a.clock.Now(), a.logger)
	if err != nil {
		a.logDecodeFailure(ctx, BoardKey, err)
		return nil
	}
	return &b
}

// SaveFilters writes the filter criteria
func (a *Adapter) SaveFilters(ctx context.Context, f models.FilterCriteria) bool {
	raw, err := EncodeFilters(f)
	if err != nil {
		a.logger.Error("failed to encode filters", "error", err)
		return false
	}
	return a.set(ctx, FiltersKey, raw)
}

// LoadFilters reads the filter criteria. Returns nil when nothing usable is stored.
func (a *Adapter) LoadFilters(ctx context.Context) *models.FilterCriteria {
	raw, ok := a.get(ctx, FiltersKey)
	if !ok {
		return nil
	}
	f, err := DecodeFilters(raw, a.clock.Now())
	if err != nil {
		a.logDecodeFailure(ctx, FiltersKey, err)
		return nil
	}
	return &f
}

// SaveTheme stores the theme id as a bare string
func (a *Adapter) SaveTheme(ctx context.Context, themeID string) bool {
	return a.set(ctx, ThemeKey, themeID)
}

// LoadTheme returns the stored theme id
func (a *Adapter) LoadTheme(ctx context.Context) (string, bool) {
	raw, ok := a.get(ctx, ThemeKey)
	if !ok || raw == "" {
		return "", false
	}
	return raw, true
}

func (a *Adapter) get(ctx context.Context, key string) (string, bool) {
	raw, err := a.kv.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return "", false
	}
	if err != nil {
		a.logger.Error("failed to read stored value", "key", key, "error", err)
		return "", false
	}
	return raw, true
}

func (a *Adapter) set(ctx context.Context, key, value string) bool {
	if err := a.kv.Set(ctx, key, value); err != nil {
		a.logger.Error("failed to save", "key", key, "error", err)
		return false
	}
	return true
}

// logDecodeFailure leaves the stored value in place so a backup can still
// capture it. Expired legacy values are removed.
func (a *Adapter) logDecodeFailure(ctx context.Context, key string, err error) {
	if errors.Is(err, ErrExpired) {
		a.logger.Info("stored value expired", "key", key)
		if delErr := a.kv.Delete(ctx, key); delErr != nil {
			a.logger.Warn("failed to remove expired value", "key", key, "error", delErr)
		}
		return
	}
	a.logger.Error("failed to decode stored value", "key", key, "error", err)
}
