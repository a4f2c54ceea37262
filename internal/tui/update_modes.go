package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/tui/state"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/types"
)

// ============================================================================
// HELP MODE HANDLERS
// ============================================================================

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter", "space":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// ============================================================================
// CONFIRMATION HANDLERS
// ============================================================================

func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.UiState.PendingDelete()
		m.UiState.SetPendingDelete(types.TicketID(""))
		m.UiState.SetMode(state.NormalMode)
		if !m.App.Store.DeleteTicket(id) {
			m.NotificationState.Add(state.LevelError, "Ticket no longer exists")
		} else {
			m.NotificationState.Add(state.LevelInfo, "Ticket deleted")
		}
		m.reload()
	case "n", "N", "esc":
		m.UiState.SetPendingDelete(types.TicketID(""))
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

func (m Model) handleResetConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.UiState.SetMode(state.NormalMode)
		if !m.App.Reset(m.Ctx) {
			m.NotificationState.Add(state.LevelError, "New board could not be saved")
		} else {
			m.NotificationState.Add(state.LevelInfo, "Generated a new demo board")
		}
		m.UiState.ResetSelection()
		m.reload()
	case "n", "N", "esc":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// ============================================================================
// SEARCH MODE HANDLERS
// ============================================================================

// handleSearchMode filters the board as the query is typed. Enter keeps the
// query, esc restores the previous one.
func (m Model) handleSearchMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.search.Blur()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	case "esc":
		m.setSearch(m.searchBefore)
		m.search.Blur()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.Snapshot.Filters.Search {
		m.setSearch(m.search.Value())
	}
	return m, cmd
}

func (m *Model) setSearch(query string) {
	m.App.Store.SetFilters(models.FilterUpdate{Search: &query})
	m.UiState.SetSelectedTicket(0)
	m.reload()
}

// ============================================================================
// DETAIL MODE HANDLERS
// ============================================================================

func (m Model) handleDetailMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "esc", key.Matches(msg, m.keys.ViewTicket), key.Matches(msg, m.keys.Quit):
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}
