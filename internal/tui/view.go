package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/tui/components"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/tui/notifications"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/tui/state"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/tui/theme"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	switch m.UiState.Mode() {
	case state.HelpMode:
		view.Content = m.centered(components.HelpBoxStyle.Render(m.viewHelp()))
	case state.DeleteConfirmMode:
		view.Content = m.centered(components.DeleteConfirmBoxStyle.Render(m.viewDeleteConfirm()))
	case state.ResetConfirmMode:
		view.Content = m.centered(components.DeleteConfirmBoxStyle.Render(
			"Replace every ticket with a new demo board?\n\n[y]es  [n]o"))
	case state.DetailMode:
		view.Content = m.centered(components.HelpBoxStyle.Render(m.detail.View()))
	case state.TicketFormMode:
		view.Content = m.centered(components.HelpBoxStyle.Render(m.viewTicketForm()))
	default:
		view.Content = m.viewBoard()
	}
	return view
}

func (m Model) centered(content string) string {
	return lipgloss.Place(m.UiState.Width(), m.UiState.Height(), lipgloss.Center, lipgloss.Center, content)
}

// viewBoard renders the header, the visible columns and the status bar
func (m Model) viewBoard() string {
	header := components.TitleStyle.Render(m.Snapshot.Board.Name)
	if m.Snapshot.Error != "" {
		header += "  " + notifications.RenderError(m.Snapshot.Error)
	}
	filters := components.SubtleStyle.Render(describeFilters(m.Snapshot.Filters))

	cols := m.Snapshot.Board.Columns
	start := m.UiState.ViewportOffset()
	end := min(start+m.UiState.ViewportSize(), len(cols))
	height := m.UiState.ContentHeight()

	rendered := make([]string, 0, end-start+2)
	if start > 0 {
		rendered = append(rendered, components.IndicatorStyle.Render("◀"))
	}
	for i := start; i < end; i++ {
		col := cols[i]
		selected := i == m.UiState.SelectedColumn()
		rendered = append(rendered, components.RenderColumn(components.ColumnProps{
			Column:      col,
			Tickets:     m.columnTickets(i),
			Count:       m.Snapshot.Board.CountByStatus(col.Status),
			Selected:    selected,
			SelectedIdx: m.UiState.SelectedTicket(),
			Height:      height,
			Offset:      m.UiState.TicketScrollOffset(col.ID),
			Now:         m.App.Now(),
		}))
	}
	if end < len(cols) {
		rendered = append(rendered, components.IndicatorStyle.Render("▶"))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	return lipgloss.JoinVertical(lipgloss.Left, header, filters, board, m.viewStatusBar())
}

func (m Model) viewStatusBar() string {
	var left string
	switch {
	case m.UiState.Mode() == state.SearchMode:
		left = m.search.View()
	case m.NotificationState.HasAny():
		n, _ := m.NotificationState.Latest()
		left = notifications.Render(n)
	default:
		left = m.help.View(m.keys)
	}

	right := fmt.Sprintf("%d of %d tickets", len(m.Snapshot.FilteredTickets), len(m.Snapshot.Board.Tickets))
	return components.RenderStatusBar(components.StatusBarProps{
		Width: m.UiState.Width(),
		Left:  left,
		Right: right,
	})
}

func (m Model) viewHelp() string {
	h := m.help
	h.ShowAll = true
	return components.TitleStyle.Render("Keyboard shortcuts") + "\n\n" + h.View(m.keys)
}

func (m Model) viewTicketForm() string {
	if m.form == nil {
		return ""
	}
	title := "New ticket in " + m.formStatus.Label()
	if m.formEditing != "" {
		title = "Edit ticket " + string(m.formEditing)
	}
	parts := []string{components.TitleStyle.Render(title), m.form.View()}
	if n, ok := m.NotificationState.Latest(); ok {
		parts = append(parts, notifications.Render(n))
	}
	parts = append(parts, components.SubtleStyle.Render(m.Config.KeyMappings.SaveForm+" save · esc discard"))
	return strings.Join(parts, "\n\n")
}

func (m Model) viewDeleteConfirm() string {
	title := string(m.UiState.PendingDelete())
	if t, ok := m.Snapshot.Board.Ticket(m.UiState.PendingDelete()); ok {
		title = t.Title
	}
	return fmt.Sprintf("Delete ticket '%s'?\n\n[y]es  [n]o", title)
}

// describeFilters summarizes the active filters in one line
func describeFilters(f models.FilterCriteria) string {
	if f.IsEmpty() {
		return "No filters"
	}
	var parts []string
	if f.Search != "" {
		parts = append(parts, fmt.Sprintf("search %q", f.Search))
	}
	if len(f.Priorities) > 0 {
		parts = append(parts, "priority "+joinStrings(f.Priorities))
	}
	if len(f.Statuses) > 0 {
		parts = append(parts, "status "+joinStrings(f.Statuses))
	}
	if len(f.Assignees) > 0 {
		parts = append(parts, "assignee "+strings.Join(f.Assignees, ","))
	}
	if len(f.Tags) > 0 {
		parts = append(parts, "tag "+strings.Join(f.Tags, ","))
	}
	if f.Overdue {
		parts = append(parts, "overdue")
	}
	return "Filters: " + strings.Join(parts, " · ")
}

func joinStrings[T ~string](values []T) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return strings.Join(out, ",")
}
