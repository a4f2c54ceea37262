package tui

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/events"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/tui/state"
)

func lastNotification(m Model) state.Notification {
	n, _ := m.NotificationState.Latest()
	return n
}

func TestNavigation(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(m, "h")
	assert.Equal(t, 0, m.UiState.SelectedColumn())
	assert.Equal(t, "Already at the first column", lastNotification(m).Message)

	m = press(m, "l", "right")
	assert.Equal(t, 2, m.UiState.SelectedColumn())
	assert.False(t, m.NotificationState.HasAny(), "a new key press clears notifications")

	m = press(m, "l", "l")
	assert.Equal(t, 3, m.UiState.SelectedColumn())
	assert.Equal(t, "Already at the last column", lastNotification(m).Message)
}

func TestNavigation_Tickets(t *testing.T) {
	m, a := setupTestModel(t)
	a.Store.CreateTicket(models.TicketDraft{Title: "one"})
	a.Store.CreateTicket(models.TicketDraft{Title: "two"})
	m = UpdateModelWithMessage(m, RefreshMsg{})

	m = press(m, "j")
	assert.Equal(t, 1, m.UiState.SelectedTicket())
	m = press(m, "j")
	assert.Equal(t, 1, m.UiState.SelectedTicket())
	assert.Equal(t, "Already at the last ticket", lastNotification(m).Message)
	m = press(m, "up")
	assert.Equal(t, 0, m.UiState.SelectedTicket())
}

func TestMoveTicket_SelectionFollows(t *testing.T) {
	m, a := setupTestModel(t)
	id := a.Store.CreateTicket(models.TicketDraft{Title: "Fix login"})
	m = UpdateModelWithMessage(m, RefreshMsg{})

	m = press(m, ">")

	moved, ok := a.Store.Ticket(id)
	require.True(t, ok)
	assert.Equal(t, models.StatusInProgress, moved.Status)
	assert.Equal(t, 1, m.UiState.SelectedColumn())
	current, ok := m.currentTicket()
	require.True(t, ok)
	assert.Equal(t, id, current.ID)

	m = press(m, "<", "<")
	moved, _ = a.Store.Ticket(id)
	assert.Equal(t, models.StatusTodo, moved.Status)
	assert.Equal(t, "No column in that direction", lastNotification(m).Message)
}

func TestMoveTicket_FullColumnIsRefused(t *testing.T) {
	m, a := setupTestModel(t)
	for i := 0; i < 3; i++ {
		a.Store.CreateTicket(models.TicketDraft{Title: "review", Status: models.StatusInReview})
	}
	id := a.Store.CreateTicket(models.TicketDraft{Title: "waiting", Status: models.StatusInProgress})
	m = UpdateModelWithMessage(m, RefreshMsg{})

	m = press(m, "l", ">")

	stayed, _ := a.Store.Ticket(id)
	assert.Equal(t, models.StatusInProgress, stayed.Status)
	assert.Equal(t, 1, m.UiState.SelectedColumn())
	n := lastNotification(m)
	assert.Equal(t, state.LevelWarning, n.Level)
	assert.Contains(t, n.Message, "In Review is full")
}

func TestDeleteTicket(t *testing.T) {
	m, a := setupTestModel(t)
	id := a.Store.CreateTicket(models.TicketDraft{Title: "Old"})
	m = UpdateModelWithMessage(m, RefreshMsg{})

	m = press(m, "x")
	assert.Equal(t, state.DeleteConfirmMode, m.UiState.Mode())
	assert.Contains(t, m.View().Content, "Delete ticket 'Old'?")

	m = press(m, "n")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	_, ok := a.Store.Ticket(id)
	assert.True(t, ok)

	m = press(m, "x", "y")
	_, ok = a.Store.Ticket(id)
	assert.False(t, ok)
	assert.Empty(t, m.Snapshot.Board.Tickets)
	assert.Equal(t, "Ticket deleted", lastNotification(m).Message)
}

func TestSearchMode(t *testing.T) {
	m, a := setupTestModel(t)
	a.Store.CreateTicket(models.TicketDraft{Title: "Login page"})
	a.Store.CreateTicket(models.TicketDraft{Title: "Docs"})
	m = UpdateModelWithMessage(m, RefreshMsg{})

	m = press(m, "/", "l", "o", "g")
	assert.Equal(t, state.SearchMode, m.UiState.Mode())
	assert.Equal(t, "log", a.Store.Filters().Search)
	assert.Len(t, m.Snapshot.FilteredTickets, 1)

	t.Run("esc restores the previous query", func(t *testing.T) {
		m := press(m, "esc")
		assert.Equal(t, state.NormalMode, m.UiState.Mode())
		assert.Equal(t, "", a.Store.Filters().Search)
		assert.Len(t, m.Snapshot.FilteredTickets, 2)
	})
}

func TestSearchMode_EnterKeepsQuery(t *testing.T) {
	m, a := setupTestModel(t)
	m = press(m, "/", "a", "b", "backspace", "enter")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, "a", a.Store.Filters().Search)
	assert.Contains(t, m.View().Content, `search "a"`)
}

func TestFilterKeys(t *testing.T) {
	m, a := setupTestModel(t)
	past := a.Now().Add(-time.Hour)
	a.Store.CreateTicket(models.TicketDraft{Title: "late", DueDate: &past})
	a.Store.CreateTicket(models.TicketDraft{Title: "fine"})
	m = UpdateModelWithMessage(m, RefreshMsg{})

	m = press(m, "o")
	assert.True(t, a.Store.Filters().Overdue)
	require.Len(t, m.Snapshot.FilteredTickets, 1)
	assert.Equal(t, "late", m.Snapshot.FilteredTickets[0].Title)

	m = press(m, "c")
	assert.True(t, a.Store.Filters().IsEmpty())
	assert.Equal(t, "Filters cleared", lastNotification(m).Message)

	m = press(m, "c")
	assert.Equal(t, "No filters to clear", lastNotification(m).Message)
}

func TestResetBoard(t *testing.T) {
	m, a := setupTestModel(t)

	m = press(m, "r", "n")
	assert.Empty(t, a.Store.Board().Tickets)

	m = press(m, "r", "y")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Len(t, a.Store.Board().Tickets, 10)
	assert.Len(t, m.Snapshot.Board.Tickets, 10)
}

func TestCycleTheme(t *testing.T) {
	m, a := setupTestModel(t)

	m = press(m, "t")
	assert.Equal(t, "dark", a.Theme(t.Context()))
	assert.Equal(t, "Theme: Dark Mode", lastNotification(m).Message)

	press(m, "t", "t")
	assert.Equal(t, "light", a.Theme(t.Context()))
}

func TestDetailAndHelpModes(t *testing.T) {
	m, a := setupTestModel(t)
	a.Store.CreateTicket(models.TicketDraft{Title: "Readable", Assignee: "Alice"})
	m = UpdateModelWithMessage(m, RefreshMsg{})

	m = press(m, "enter")
	assert.Equal(t, state.DetailMode, m.UiState.Mode())
	assert.Contains(t, m.View().Content, "Alice")
	m = press(m, "esc")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())

	m = press(m, "?")
	assert.Equal(t, state.HelpMode, m.UiState.Mode())
	assert.Contains(t, m.View().Content, "Keyboard shortcuts")
	m = press(m, "?")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestQuit(t *testing.T) {
	m, _ := setupTestModel(t)
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRefreshMsg_ReloadsAndResubscribes(t *testing.T) {
	m, a := setupTestModel(t)
	m = press(m, "l", "l", "l")

	// Another writer empties the board under the cursor
	a.Store.CreateTicket(models.TicketDraft{Title: "external"})
	updated, cmd := m.Update(RefreshMsg{Event: events.Event{Type: events.EventBoardChanged}})
	m = updated.(Model)

	assert.Len(t, m.Snapshot.Board.Tickets, 1)
	assert.NotNil(t, cmd, "the model keeps listening for changes")
}

func TestSubscribeToEvents(t *testing.T) {
	m, a := setupTestModel(t)
	cmd := SubscribeToEvents(m)
	require.NotNil(t, cmd)

	a.Store.CreateTicket(models.TicketDraft{Title: "ping"})
	msg := cmd()
	refresh, ok := msg.(RefreshMsg)
	require.True(t, ok)
	assert.Equal(t, events.EventBoardChanged, refresh.Event.Type)
}

func TestView(t *testing.T) {
	m, a := setupTestModel(t)
	a.Store.CreateTicket(models.TicketDraft{Title: "Visible card", Priority: models.PriorityUrgent})
	m = UpdateModelWithMessage(m, RefreshMsg{})

	content := m.View().Content
	for _, want := range []string{"Project Board", "To Do", "In Progress", "(0/5)", "(0/3)", "Done", "Visible card", "1 of 1 tickets"} {
		assert.True(t, strings.Contains(content, want), "view should contain %q", want)
	}
}

func TestView_Loading(t *testing.T) {
	_, a := setupTestModel(t)
	m := InitialModel(t.Context(), a)
	assert.Equal(t, "Loading...", m.View().Content)
}
