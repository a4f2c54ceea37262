// Package tui is the interactive board viewer. It renders a snapshot of the
// board store and turns key presses into store operations.
package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/app"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/board"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/config"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/events"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/tui/components"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/tui/forms"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/tui/state"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/types"
)

// RefreshMsg is sent when the store reports a change
type RefreshMsg struct {
	Event events.Event
}

// Model represents the application state for the TUI
type Model struct {
	Ctx               context.Context
	App               *app.App
	Config            *config.Config
	UiState           *state.UIState
	NotificationState *state.NotificationState
	EventChan         <-chan events.Event

	// Snapshot is the board state currently on screen
	Snapshot board.State

	keys   keyMap
	help   help.Model
	search textinput.Model
	detail viewport.Model

	// searchBefore is restored when a search is cancelled
	searchBefore string

	// form is the open ticket form, nil outside TicketFormMode
	form       *huh.Form
	formValues *forms.TicketValues
	// formEditing is the ticket being edited, empty when creating
	formEditing types.TicketID
	// formStatus is the column a new ticket is created in
	formStatus models.Status
}

// InitialModel creates the TUI model over an opened App
func InitialModel(ctx context.Context, a *app.App) Model {
	eventChan, err := a.Events(ctx)
	if err != nil {
		slog.Warn("board changes will not refresh the view", "error", err)
		eventChan = nil
	}

	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search title, description, assignee, tags"

	components.InitStyles(a.Palette(ctx))

	m := Model{
		Ctx:               ctx,
		App:               a,
		Config:            a.Config,
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		EventChan:         eventChan,
		keys:              newKeyMap(a.Config.KeyMappings),
		help:              help.New(),
		search:            search,
		detail:            viewport.New(),
	}
	m.reload()
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return SubscribeToEvents(m)
}

// SubscribeToEvents returns a command that waits for the next store change
// and sends RefreshMsg. Returns nil if EventChan is not initialized.
func SubscribeToEvents(m Model) tea.Cmd {
	if m.EventChan == nil {
		return nil
	}
	ch, ctx := m.EventChan, m.Ctx

	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return RefreshMsg{Event: event}
		case <-ctx.Done():
			return nil
		}
	}
}

// reload takes a fresh snapshot and keeps the cursor on the board
func (m *Model) reload() {
	m.Snapshot = m.App.Store.Snapshot()
	m.UiState.ClampSelection(len(m.Snapshot.Board.Columns), len(m.currentTickets()))
}

// columnTickets returns the visible tickets of the column at index i
func (m Model) columnTickets(i int) []models.Ticket {
	cols := m.Snapshot.Board.Columns
	if i < 0 || i >= len(cols) {
		return nil
	}
	var out []models.Ticket
	for _, t := range m.Snapshot.FilteredTickets {
		if t.Status == cols[i].Status {
			out = append(out, t)
		}
	}
	return out
}

// currentColumn returns the selected column
func (m Model) currentColumn() (models.Column, bool) {
	cols := m.Snapshot.Board.Columns
	i := m.UiState.SelectedColumn()
	if i < 0 || i >= len(cols) {
		return models.Column{}, false
	}
	return cols[i], true
}

// currentTickets returns the visible tickets of the selected column
func (m Model) currentTickets() []models.Ticket {
	return m.columnTickets(m.UiState.SelectedColumn())
}

// currentTicket returns the selected ticket
func (m Model) currentTicket() (models.Ticket, bool) {
	tickets := m.currentTickets()
	i := m.UiState.SelectedTicket()
	if i < 0 || i >= len(tickets) {
		return models.Ticket{}, false
	}
	return tickets[i], true
}
