package persistence

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/board"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/events"
)

// Source is anything that can hand out a consistent board state
type Source interface {
	Snapshot() board.State
}

// Syncer saves the store after it changes. Saves happen on a background
// goroutine and always write the latest snapshot, so a burst of mutations
// collapses into a single write. Mutations never wait on it.
type Syncer struct {
	adapter *Adapter
	source  Source
	logger  *slog.Logger

	mu           sync.Mutex
	idle         *sync.Cond
	dirtyBoard   bool
	dirtyFilters bool
	saving       bool
	stopped      bool

	wake   chan struct{}
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSyncer(adapter *Adapter, source Source, logger *slog.Logger) *Syncer {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Syncer{
		adapter: adapter,
		source:  source,
		logger:  logger,
		wake:    make(chan struct{}, 1),
	}
	s.idle = sync.NewCond(&s.mu)
	return s
}

// Start subscribes to publisher and begins saving in the background
func (s *Syncer) Start(ctx context.Context, publisher events.EventPublisher) error {
	ctx, cancel := context.WithCancel(ctx)
	ch, err := publisher.Listen(ctx)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to subscribe to board events: %w", err)
	}
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	s.wg.Add(2)
	go func() {
		defer s.wg.Done()
		for event := range ch {
			s.Notify(event.Type)
		}
	}()
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()

	s.logger.Debug("persistence syncer started")
	return nil
}

// Notify marks the part of the state touched by eventType as unsaved
func (s *Syncer) Notify(eventType events.EventType) {
	s.mu.Lock()
	switch eventType {
	case events.EventBoardChanged:
		s.dirtyBoard = true
	case events.EventFiltersChanged:
		s.dirtyFilters = true
	default:
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Flush saves the current board and filters and waits until every pending
// save has finished. Without a running worker it saves inline.
func (s *Syncer) Flush(ctx context.Context) {
	s.mu.Lock()
	if s.cancel == nil || s.stopped {
		s.mu.Unlock()
		s.saveState(ctx, true, true)
		return
	}
	s.dirtyBoard = true
	s.dirtyFilters = true
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}

	s.mu.Lock()
	for s.dirtyBoard || s.dirtyFilters || s.saving {
		if s.stopped {
			break
		}
		s.idle.Wait()
	}
	s.mu.Unlock()
}

// Close stops the background worker after a final save
func (s *Syncer) Close() error {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel == nil {
		return nil
	}
	s.Flush(context.Background())
	cancel()
	s.wg.Wait()
	return nil
}

func (s *Syncer) run(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.stopped = true
		s.idle.Broadcast()
		s.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.wake:
		}

		s.mu.Lock()
		saveBoard, saveFilters := s.dirtyBoard, s.dirtyFilters
		s.dirtyBoard, s.dirtyFilters = false, false
		s.saving = true
		s.mu.Unlock()

		s.saveState(ctx, saveBoard, saveFilters)

		s.mu.Lock()
		s.saving = false
		s.idle.Broadcast()
		s.mu.Unlock()
	}
}

func (s *Syncer) saveState(ctx context.Context, saveBoard, saveFilters bool) {
	state := s.source.Snapshot()
	if state.IsLoading {
		return
	}
	if saveBoard && !s.adapter.SaveBoard(ctx, state.Board) {
		s.logger.Warn("board not persisted, continuing in memory")
	}
	if saveFilters && !s.adapter.SaveFilters(ctx, state.Filters) {
		s.logger.Warn("filters not persisted, continuing in memory")
	}
}
