package core

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/testutil"
)

func TestApp_KeepsUpdatedModel(t *testing.T) {
	a, _ := testutil.SetupTestApp(t)
	a.Store.CreateTicket(models.TicketDraft{Title: "Fix login"})
	viewer := New(t.Context(), a)

	next, _ := viewer.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	require.Same(t, viewer, next)
	assert.Equal(t, 120, viewer.Model().UiState.Width())

	viewer.Update(tea.KeyPressMsg(tea.Key{Code: 'l', Text: "l"}))
	assert.Equal(t, 1, viewer.Model().UiState.SelectedColumn())
	assert.Contains(t, viewer.View().Content, "Project Board")
}
