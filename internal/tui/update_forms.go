package tui

import (
	"log/slog"
	"slices"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/tui/forms"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/tui/state"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/types"
)

// formLocation is the zone calendar due dates are entered in
var formLocation = time.Local

// handleAddTicket opens the create form for the selected column
func (m Model) handleAddTicket() (tea.Model, tea.Cmd) {
	col, ok := m.currentColumn()
	if !ok {
		m.NotificationState.Add(state.LevelError, "No column selected")
		return m, nil
	}
	m.formValues = forms.NewTicketValues()
	m.formEditing = ""
	m.formStatus = col.Status
	return m.openForm(false)
}

// handleEditTicket opens the edit form for the selected ticket
func (m Model) handleEditTicket() (tea.Model, tea.Cmd) {
	t, ok := m.currentTicket()
	if !ok {
		m.NotificationState.Add(state.LevelInfo, "No ticket selected")
		return m, nil
	}
	m.formValues = forms.ValuesFromTicket(t, formLocation)
	m.formEditing = t.ID
	m.formStatus = t.Status
	return m.openForm(true)
}

func (m Model) openForm(isEdit bool) (tea.Model, tea.Cmd) {
	m.form = forms.NewTicketForm(m.formValues, isEdit, m.App.Now(), formLocation).
		WithTheme(forms.CreateTheme(m.App.Palette(m.Ctx))).
		WithWidth(m.formWidth())
	m.UiState.SetMode(state.TicketFormMode)
	return m, m.form.Init()
}

// handleTicketForm handles all messages while the ticket form is open
func (m Model) handleTicketForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		m.NotificationState.Clear()
		switch keyMsg.String() {
		case "esc":
			m.closeForm()
			m.NotificationState.Add(state.LevelInfo, "Changes discarded")
			return m, nil
		case m.Config.KeyMappings.SaveForm:
			// Quick save skips the remaining fields but not validation
			if err := m.formValues.Validate(m.App.Now(), formLocation); err != nil {
				m.NotificationState.Add(state.LevelError, err.Error())
				return m, nil
			}
			m.formValues.Confirm = true
			m.submitForm()
			return m, nil
		}
	}

	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.formValues.Confirm {
			m.submitForm()
		} else {
			m.closeForm()
		}
		return m, nil
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

// submitForm applies the form to the store and closes it
func (m *Model) submitForm() {
	defer m.closeForm()

	if m.formEditing == "" {
		draft, err := m.formValues.Draft(m.formStatus, formLocation)
		if err != nil {
			m.NotificationState.Add(state.LevelError, err.Error())
			return
		}
		id := m.App.Store.CreateTicket(draft)
		if id == "" {
			m.NotificationState.Add(state.LevelError, "Ticket could not be created")
			return
		}
		slog.Debug("ticket created from form", "ticket_id", id)
		m.reload()
		m.selectTicket(id)
		m.NotificationState.Add(state.LevelInfo, "Ticket created")
		return
	}

	original, ok := m.App.Store.Ticket(m.formEditing)
	if !ok {
		m.NotificationState.Add(state.LevelError, "Ticket no longer exists")
		return
	}
	update, err := m.formValues.Update(original, formLocation)
	if err != nil {
		m.NotificationState.Add(state.LevelError, err.Error())
		return
	}
	if update.IsEmpty() {
		m.NotificationState.Add(state.LevelInfo, "No changes")
		return
	}
	if !m.App.Store.UpdateTicket(m.formEditing, update) {
		m.NotificationState.Add(state.LevelError, "Ticket could not be updated")
		return
	}
	m.reload()
	m.selectTicket(m.formEditing)
	m.NotificationState.Add(state.LevelInfo, "Ticket updated")
}

func (m *Model) closeForm() {
	m.form = nil
	m.formValues = nil
	m.formEditing = ""
	m.formStatus = ""
	m.UiState.SetMode(state.NormalMode)
}

// selectTicket moves the cursor onto id when it is visible
func (m *Model) selectTicket(id types.TicketID) {
	for ci := range m.Snapshot.Board.Columns {
		i := slices.IndexFunc(m.columnTickets(ci), func(t models.Ticket) bool { return t.ID == id })
		if i < 0 {
			continue
		}
		m.UiState.SetSelectedColumn(ci)
		m.UiState.SetSelectedTicket(i)
		m.UiState.EnsureSelectionVisible(ci)
		m.ensureTicketVisible()
		return
	}
}

// formWidth keeps the form readable on wide terminals
func (m Model) formWidth() int {
	return min(max(m.UiState.Width()-8, 30), 80)
}
