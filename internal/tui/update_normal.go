package tui

import (
	"errors"
	"fmt"
	"slices"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
	ktheme "github.com/Pranshu640/Kanban-Ticketing-System/internal/theme"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/tui/components"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.ShowHelp):
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case key.Matches(msg, k.PrevColumn):
		return m.handleNavigateLeft()
	case key.Matches(msg, k.NextColumn):
		return m.handleNavigateRight()
	case key.Matches(msg, k.PrevTicket):
		return m.handleNavigateUp()
	case key.Matches(msg, k.NextTicket):
		return m.handleNavigateDown()
	case key.Matches(msg, k.AddTicket):
		return m.handleAddTicket()
	case key.Matches(msg, k.EditTicket):
		return m.handleEditTicket()
	case key.Matches(msg, k.MoveTicketLeft):
		return m.handleMoveTicket(-1)
	case key.Matches(msg, k.MoveTicketRight):
		return m.handleMoveTicket(1)
	case key.Matches(msg, k.ViewTicket):
		return m.handleViewTicket()
	case key.Matches(msg, k.DeleteTicket):
		return m.handleDeleteTicket()
	case key.Matches(msg, k.Search):
		return m.handleEnterSearch()
	case key.Matches(msg, k.ToggleOverdue):
		return m.handleToggleOverdue()
	case key.Matches(msg, k.ClearFilters):
		return m.handleClearFilters()
	case key.Matches(msg, k.RefreshBoard):
		m.UiState.SetMode(state.ResetConfirmMode)
		return m, nil
	case key.Matches(msg, k.CycleTheme):
		return m.handleCycleTheme()
	}

	return m, nil
}

func (m Model) handleNavigateLeft() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedColumn() > 0 {
		m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() - 1)
		m.UiState.SetSelectedTicket(0)
		m.UiState.EnsureSelectionVisible(m.UiState.SelectedColumn())
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the first column")
	}
	return m, nil
}

func (m Model) handleNavigateRight() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedColumn() < len(m.Snapshot.Board.Columns)-1 {
		m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() + 1)
		m.UiState.SetSelectedTicket(0)
		m.UiState.EnsureSelectionVisible(m.UiState.SelectedColumn())
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the last column")
	}
	return m, nil
}

func (m Model) handleNavigateUp() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedTicket() > 0 {
		m.UiState.SetSelectedTicket(m.UiState.SelectedTicket() - 1)
		m.ensureTicketVisible()
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the first ticket")
	}
	return m, nil
}

func (m Model) handleNavigateDown() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedTicket() < len(m.currentTickets())-1 {
		m.UiState.SetSelectedTicket(m.UiState.SelectedTicket() + 1)
		m.ensureTicketVisible()
	} else if len(m.currentTickets()) > 0 {
		m.NotificationState.Add(state.LevelInfo, "Already at the last ticket")
	}
	return m, nil
}

func (m Model) ensureTicketVisible() {
	col, ok := m.currentColumn()
	if !ok {
		return
	}
	visible := components.VisibleTickets(m.UiState.ContentHeight())
	m.UiState.EnsureTicketVisible(col.ID, m.UiState.SelectedTicket(), visible)
}

// handleMoveTicket moves the selected ticket one column in direction dir.
// Column limits apply; a full column leaves the ticket where it is.
func (m Model) handleMoveTicket(dir int) (tea.Model, tea.Cmd) {
	t, ok := m.currentTicket()
	if !ok {
		return m, nil
	}
	target := m.UiState.SelectedColumn() + dir
	cols := m.Snapshot.Board.Columns
	if target < 0 || target >= len(cols) {
		m.NotificationState.Add(state.LevelInfo, "No column in that direction")
		return m, nil
	}
	col := cols[target]

	if err := m.App.Store.TryMoveTicket(t.ID, col.Status); err != nil {
		switch {
		case errors.Is(err, models.ErrColumnFull):
			m.NotificationState.Add(state.LevelWarning, fmt.Sprintf("%s is full (limit %d)", col.Title, *col.Limit))
		case errors.Is(err, models.ErrTicketNotFound):
			m.NotificationState.Add(state.LevelError, "Ticket no longer exists")
			m.reload()
		default:
			m.NotificationState.Add(state.LevelError, err.Error())
		}
		return m, nil
	}

	// The selection follows the moved ticket
	m.UiState.SetSelectedColumn(target)
	m.UiState.SetSelectedTicket(0)
	m.reload()
	if i := slices.IndexFunc(m.currentTickets(), func(c models.Ticket) bool { return c.ID == t.ID }); i >= 0 {
		m.UiState.SetSelectedTicket(i)
	}
	m.UiState.EnsureSelectionVisible(target)
	m.ensureTicketVisible()
	return m, nil
}

func (m Model) handleViewTicket() (tea.Model, tea.Cmd) {
	t, ok := m.currentTicket()
	if !ok {
		return m, nil
	}
	m.resizeDetail()
	m.detail.SetContent(components.RenderTicketDetail(t, m.detailWidth(), m.App.Now()))
	m.detail.GotoTop()
	m.UiState.SetMode(state.DetailMode)
	return m, nil
}

func (m Model) handleDeleteTicket() (tea.Model, tea.Cmd) {
	t, ok := m.currentTicket()
	if !ok {
		return m, nil
	}
	m.UiState.SetPendingDelete(t.ID)
	m.UiState.SetMode(state.DeleteConfirmMode)
	return m, nil
}

func (m Model) handleEnterSearch() (tea.Model, tea.Cmd) {
	m.searchBefore = m.Snapshot.Filters.Search
	m.search.SetValue(m.searchBefore)
	m.search.CursorEnd()
	m.UiState.SetMode(state.SearchMode)
	cmd := m.search.Focus()
	return m, cmd
}

func (m Model) handleToggleOverdue() (tea.Model, tea.Cmd) {
	overdue := !m.Snapshot.Filters.Overdue
	m.App.Store.SetFilters(models.FilterUpdate{Overdue: &overdue})
	m.reload()
	if overdue {
		m.NotificationState.Add(state.LevelInfo, "Showing overdue tickets only")
	} else {
		m.NotificationState.Add(state.LevelInfo, "Showing all due dates")
	}
	return m, nil
}

func (m Model) handleClearFilters() (tea.Model, tea.Cmd) {
	if m.Snapshot.Filters.IsEmpty() {
		m.NotificationState.Add(state.LevelInfo, "No filters to clear")
		return m, nil
	}
	m.App.Store.ClearFilters()
	m.reload()
	m.NotificationState.Add(state.LevelInfo, "Filters cleared")
	return m, nil
}

func (m Model) handleCycleTheme() (tea.Model, tea.Cmd) {
	ids := ktheme.IDs()
	next := ids[(slices.Index(ids, m.App.Theme(m.Ctx))+1)%len(ids)]
	if err := m.App.SetTheme(m.Ctx, next); err != nil {
		m.NotificationState.Add(state.LevelError, "Theme not saved")
		return m, nil
	}
	palette := m.App.Palette(m.Ctx)
	components.InitStyles(palette)
	m.NotificationState.Add(state.LevelInfo, "Theme: "+palette.Name)
	return m, nil
}
