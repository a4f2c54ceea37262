package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/events"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/tui/components"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/tui/state"
)

// Update handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.UiState.EnsureSelectionVisible(m.UiState.SelectedColumn())
		m.resizeDetail()
		if m.form != nil {
			m.form = m.form.WithWidth(m.formWidth())
		}
		return m, nil

	case RefreshMsg:
		if msg.Event.Type == events.EventThemeChanged {
			components.InitStyles(m.App.Palette(m.Ctx))
		}
		m.reload()
		return m, SubscribeToEvents(m)
	}

	// Forms need every message, not just key presses
	if m.UiState.Mode() == state.TicketFormMode {
		return m.handleTicketForm(msg)
	}

	if msg, ok := msg.(tea.KeyPressMsg); ok {
		return m.handleKey(msg)
	}

	if m.UiState.Mode() == state.SearchMode {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey dispatches a key press to the handler of the current mode
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.UiState.Mode() {
	case state.HelpMode:
		return m.handleHelpMode(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(msg)
	case state.ResetConfirmMode:
		return m.handleResetConfirm(msg)
	case state.SearchMode:
		return m.handleSearchMode(msg)
	case state.DetailMode:
		return m.handleDetailMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

func (m *Model) resizeDetail() {
	m.detail.SetWidth(m.detailWidth())
	m.detail.SetHeight(max(m.UiState.Height()-6, 5))
}

// detailWidth leaves room for the border and padding of the detail box
func (m Model) detailWidth() int {
	return max(m.UiState.Width()-8, 20)
}
