package tui

import (
	"testing"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/app"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/testutil"
)

// setupTestModel creates a sized model over an empty test board
func setupTestModel(t *testing.T) (Model, *app.App) {
	t.Helper()
	a, _ := testutil.SetupTestApp(t)
	m := InitialModel(t.Context(), a)
	m = UpdateModelWithMessage(m, tea.WindowSizeMsg{Width: 160, Height: 40})
	return m, a
}

// UpdateModelWithMessage updates the model with a message and returns the updated model
func UpdateModelWithMessage(m Model, msg tea.Msg) Model {
	updatedModel, _ := m.Update(msg)
	return updatedModel.(Model)
}

// press sends key presses to the model. Single characters are typed as
// text, anything else is looked up as a special key.
func press(m Model, keys ...string) Model {
	for _, k := range keys {
		m = UpdateModelWithMessage(m, keyMsg(k))
	}
	return m
}

func keyMsg(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "right":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyRight})
	case "left":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyLeft})
	case "down":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
	case "up":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyUp})
	case "backspace":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyBackspace})
	case "ctrl+s":
		return tea.KeyPressMsg(tea.Key{Code: 's', Mod: tea.ModCtrl})
	}
	r, _ := utf8.DecodeRuneInString(k)
	return tea.KeyPressMsg(tea.Key{Code: r, Text: k})
}
