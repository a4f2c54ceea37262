// Package board holds the Store, the single mutation authority for the
// board. Every mutation runs to completion under the store lock, recomputes
// the visible ticket set, and then notifies listeners.
package board

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/clock"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/events"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/filter"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/types"
)

// Generator produces a fresh board for the refresh/reset flow
type Generator interface {
	Board(now time.Time) models.Board
}

// State is an immutable snapshot of the store. Nothing in a State is shared
// with the store, so later mutations never change it.
type State struct {
	Board           models.Board
	FilteredTickets []models.Ticket
	Filters         models.FilterCriteria
	IsLoading       bool
	Error           string
}

// Store owns the board, the active filter criteria, and the derived
// visible ticket list.
type Store struct {
	mu      sync.RWMutex
	board   models.Board
	filters models.FilterCriteria
	visible []models.Ticket
	loading bool
	errMsg  string

	clock     clock.Clock
	publisher events.EventPublisher
	generator Generator
	newID     func() types.TicketID
	logger    *slog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithClock sets the time source used for all timestamps
func WithClock(c clock.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithPublisher sets the publisher notified after every settled mutation
func WithPublisher(p events.EventPublisher) Option {
	return func(s *Store) { s.publisher = p }
}

// WithGenerator sets the board generator used by RefreshBoard
func WithGenerator(g Generator) Option {
	return func(s *Store) { s.generator = g }
}

// WithIDFunc overrides ticket id generation
func WithIDFunc(fn func() types.TicketID) Option {
	return func(s *Store) { s.newID = fn }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// NewStore creates a store holding an empty board in the loading state.
// Call Load once the initial board is known.
func NewStore(opts ...Option) *Store {
	s := &Store{
		board:   models.Board{Tickets: []models.Ticket{}},
		visible: []models.Ticket{},
		loading: true,
		clock:   clock.Real(),
		newID:   types.NewTicketID,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ============================================================================
// READS
// ============================================================================

// Snapshot returns a deep copy of the current state
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		Board:           s.board.Clone(),
		FilteredTickets: models.CloneTickets(s.visible),
		Filters:         s.filters.Clone(),
		IsLoading:       s.loading,
		Error:           s.errMsg,
	}
}

// Board returns a deep copy of the board
func (s *Store) Board() models.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Clone()
}

// Filters returns a copy of the active filter criteria
func (s *Store) Filters() models.FilterCriteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters.Clone()
}

// Ticket returns a copy of one ticket
func (s *Store) Ticket(id types.TicketID) (models.Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.board.Ticket(id)
	if !ok {
		return models.Ticket{}, false
	}
	return t.Clone(), true
}

// ============================================================================
// LIFECYCLE
// ============================================================================

// Load replaces the board and, when filters is non-nil, the filter
// criteria. It ends the loading state and clears any error. Load does not
// publish: the data it receives is already durable.
func (s *Store) Load(board models.Board, filters *models.FilterCriteria) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.board = board.Clone()
	if s.board.Tickets == nil {
		s.board.Tickets = []models.Ticket{}
	}
	if filters != nil {
		s.filters = filters.Clone()
	}
	s.loading = false
	s.errMsg = ""
	s.recompute()
}

// SetLoading toggles the loading flag
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// SetError records an error message for the UI and ends loading
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.loading = false
	s.mu.Unlock()
}

// RefreshBoard fully replaces the board with a freshly generated one.
// Without a generator the columns are kept and every ticket is dropped.
func (s *Store) RefreshBoard() {
	s.mu.Lock()
	now := s.clock.Now()
	if s.generator != nil {
		s.board = s.generator.Board(now).Clone()
	} else {
		s.board = models.Board{ID: s.board.ID, Name: s.board.Name, Columns: s.board.Columns}
	}
	if s.board.Tickets == nil {
		s.board.Tickets = []models.Ticket{}
	}
	s.loading = false
	s.errMsg = ""
	s.recompute()
	boardID := s.board.ID
	s.mu.Unlock()

	s.logger.Info("board refreshed", "board_id", boardID)
	s.publish(events.EventBoardChanged, boardID, now)
}

// ============================================================================
// TICKET MUTATIONS
// ============================================================================

// CreateTicket inserts a new ticket at the head of the ticket list and
// returns its id. An empty status defaults to todo and an empty priority to
// medium. A draft with an unknown priority, negative estimated hours or a
// status no column serves is dropped and the empty id is returned.
func (s *Store) CreateTicket(draft models.TicketDraft) types.TicketID {
	if draft.Status == "" {
		draft.Status = models.StatusTodo
	}
	if draft.Priority == "" {
		draft.Priority = models.DefaultPriority
	}
	if !draft.Priority.Valid() {
		s.logger.Warn("create ticket rejected: unknown priority", "priority", draft.Priority)
		return ""
	}
	if draft.EstimatedHours != nil && *draft.EstimatedHours < 0 {
		s.logger.Warn("create ticket rejected: negative estimated hours", "hours", *draft.EstimatedHours)
		return ""
	}

	s.mu.Lock()
	if _, ok := s.board.ColumnForStatus(draft.Status); !ok {
		s.mu.Unlock()
		s.logger.Warn("create ticket rejected: no column for status", "status", draft.Status)
		return ""
	}

	now := s.clock.Now()
	t := models.Ticket{
		ID:          s.uniqueID(),
		Title:       draft.Title,
		Description: draft.Description,
		Status:      draft.Status,
		Priority:    draft.Priority,
		Assignee:    draft.Assignee,
		CreatedAt:   now,
		UpdatedAt:   now,
		Tags:        cloneTags(draft.Tags),
	}
	if draft.DueDate != nil {
		due := *draft.DueDate
		t.DueDate = &due
	}
	if draft.EstimatedHours != nil {
		h := *draft.EstimatedHours
		t.EstimatedHours = &h
	}
	if t.Status == models.StatusDone {
		completed := now
		if draft.CompletedAt != nil && !draft.CompletedAt.Before(now) {
			completed = *draft.CompletedAt
		}
		t.CompletedAt = &completed
	}

	s.board.Tickets = append([]models.Ticket{t}, s.board.Tickets...)
	s.recompute()
	boardID := s.board.ID
	s.mu.Unlock()

	s.logger.Debug("ticket created", "ticket_id", t.ID, "status", t.Status)
	s.publish(events.EventBoardChanged, boardID, now)
	return t.ID
}

// UpdateTicket merges a partial update into a ticket and bumps updatedAt.
// Unknown ids are a silent no-op. Updates carrying an unknown status or
// priority, a status no column serves, or negative estimated hours are
// dropped whole. Reports whether the update was applied.
func (s *Store) UpdateTicket(id types.TicketID, u models.TicketUpdate) bool {
	s.mu.Lock()
	i := s.board.TicketIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	if err := s.validateUpdate(u); err != nil {
		s.mu.Unlock()
		s.logger.Warn("update ticket rejected", "ticket_id", id, "error", err)
		return false
	}

	now := s.clock.Now()
	t := &s.board.Tickets[i]
	previous := t.Status

	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.Assignee != nil {
		t.Assignee = *u.Assignee
	}
	if u.Tags != nil {
		t.Tags = cloneTags(*u.Tags)
	}
	switch {
	case u.ClearDueDate:
		t.DueDate = nil
	case u.DueDate != nil:
		due := *u.DueDate
		t.DueDate = &due
	}
	switch {
	case u.ClearEstimatedHours:
		t.EstimatedHours = nil
	case u.EstimatedHours != nil:
		h := *u.EstimatedHours
		t.EstimatedHours = &h
	}
	if t.Status == models.StatusDone && previous != models.StatusDone {
		s.markCompleted(t, now)
	}
	s.touch(t, now)

	s.recompute()
	boardID := s.board.ID
	s.mu.Unlock()

	s.publish(events.EventBoardChanged, boardID, now)
	return true
}

// DeleteTicket removes a ticket. Unknown ids are a silent no-op.
// Reports whether a ticket was removed.
func (s *Store) DeleteTicket(id types.TicketID) bool {
	s.mu.Lock()
	i := s.board.TicketIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}

	tickets := make([]models.Ticket, 0, len(s.board.Tickets)-1)
	tickets = append(tickets, s.board.Tickets[:i]...)
	tickets = append(tickets, s.board.Tickets[i+1:]...)
	s.board.Tickets = tickets

	now := s.clock.Now()
	s.recompute()
	boardID := s.board.ID
	s.mu.Unlock()

	s.logger.Debug("ticket deleted", "ticket_id", id)
	s.publish(events.EventBoardChanged, boardID, now)
	return true
}

// MoveTicket unconditionally sets the ticket's status and bumps updatedAt.
// Moving into done stamps completedAt; moving out of done leaves it as is.
// Capacity is the caller's responsibility (see CanAccept and TryMoveTicket).
// Unknown ids and statuses no column serves are a silent no-op.
// Reports whether the move was applied.
func (s *Store) MoveTicket(id types.TicketID, newStatus models.Status) bool {
	s.mu.Lock()
	i := s.board.TicketIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	if _, ok := s.board.ColumnForStatus(newStatus); !ok {
		s.mu.Unlock()
		s.logger.Warn("move ticket rejected: no column for status", "ticket_id", id, "status", newStatus)
		return false
	}

	now := s.clock.Now()
	t := &s.board.Tickets[i]
	t.Status = newStatus
	if newStatus == models.StatusDone {
		s.markCompleted(t, now)
	}
	s.touch(t, now)

	s.recompute()
	boardID := s.board.ID
	s.mu.Unlock()

	s.publish(events.EventBoardChanged, boardID, now)
	return true
}

// TryMoveTicket applies the column capacity rule before moving. The check
// and the move happen under one lock, so concurrent callers cannot both
// squeeze into the last free slot.
func (s *Store) TryMoveTicket(id types.TicketID, newStatus models.Status) error {
	s.mu.Lock()
	t, ok := s.board.Ticket(id)
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", models.ErrTicketNotFound, id)
	}
	col, ok := s.board.ColumnForStatus(newStatus)
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", models.ErrUnknownColumn, newStatus)
	}
	if t.Status == newStatus {
		s.mu.Unlock()
		return models.ErrSameColumn
	}
	if !CanAccept(col, s.board.CountByStatus(newStatus), t.Status) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s holds %d of %d", models.ErrColumnFull, col.Title, s.board.CountByStatus(newStatus), *col.Limit)
	}

	now := s.clock.Now()
	i := s.board.TicketIndex(id)
	moved := &s.board.Tickets[i]
	moved.Status = newStatus
	if newStatus == models.StatusDone {
		s.markCompleted(moved, now)
	}
	s.touch(moved, now)

	s.recompute()
	boardID := s.board.ID
	s.mu.Unlock()

	s.publish(events.EventBoardChanged, boardID, now)
	return nil
}

// ============================================================================
// FILTERS
// ============================================================================

// SetFilters merges a partial update into the active criteria
func (s *Store) SetFilters(u models.FilterUpdate) {
	s.mu.Lock()
	s.filters = u.Apply(s.filters)
	now := s.clock.Now()
	s.recompute()
	boardID := s.board.ID
	s.mu.Unlock()

	s.publish(events.EventFiltersChanged, boardID, now)
}

// ClearFilters resets the criteria so every ticket is visible
func (s *Store) ClearFilters() {
	s.mu.Lock()
	s.filters = models.FilterCriteria{}
	now := s.clock.Now()
	s.recompute()
	boardID := s.board.ID
	s.mu.Unlock()

	s.publish(events.EventFiltersChanged, boardID, now)
}

// ============================================================================
// HELPERS
// ============================================================================

// recompute rebuilds the visible list. Callers must hold the write lock.
func (s *Store) recompute() {
	s.visible = filter.ComputeVisible(s.board.Tickets, s.filters, s.clock.Now())
}

// touch bumps updatedAt, never letting it precede createdAt
func (s *Store) touch(t *models.Ticket, now time.Time) {
	if now.Before(t.CreatedAt) {
		now = t.CreatedAt
	}
	t.UpdatedAt = now
}

// markCompleted stamps completedAt, never before createdAt
func (s *Store) markCompleted(t *models.Ticket, now time.Time) {
	if now.Before(t.CreatedAt) {
		now = t.CreatedAt
	}
	t.CompletedAt = &now
}

func (s *Store) validateUpdate(u models.TicketUpdate) error {
	if u.Status != nil {
		if !u.Status.Valid() {
			return fmt.Errorf("unknown status %q", *u.Status)
		}
		if _, ok := s.board.ColumnForStatus(*u.Status); !ok {
			return fmt.Errorf("%w: %s", models.ErrUnknownColumn, *u.Status)
		}
	}
	if u.Priority != nil && !u.Priority.Valid() {
		return fmt.Errorf("unknown priority %q", *u.Priority)
	}
	if !u.ClearEstimatedHours && u.EstimatedHours != nil && *u.EstimatedHours < 0 {
		return fmt.Errorf("estimated hours must be non-negative, got %v", *u.EstimatedHours)
	}
	return nil
}

// uniqueID draws ids until one is unused. Callers must hold the write lock.
func (s *Store) uniqueID() types.TicketID {
	for {
		id := s.newID()
		if s.board.TicketIndex(id) < 0 {
			return id
		}
	}
}

// publish sends a change notification if a publisher is configured.
// Errors are logged but not returned (fire-and-forget).
func (s *Store) publish(eventType events.EventType, boardID types.BoardID, at time.Time) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.SendEvent(events.Event{
		Type:      eventType,
		BoardID:   boardID.String(),
		Timestamp: at,
	}); err != nil {
		s.logger.Warn("failed to publish event", "event_type", eventType, "error", err)
	}
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return append([]string{}, tags...)
}
