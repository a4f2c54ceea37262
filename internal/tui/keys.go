package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/config"
)

// keyMap holds the normal mode bindings built from the configured keys.
// It implements help.KeyMap for the footer and the help screen.
type keyMap struct {
	PrevColumn      key.Binding
	NextColumn      key.Binding
	PrevTicket      key.Binding
	NextTicket      key.Binding
	AddTicket       key.Binding
	EditTicket      key.Binding
	MoveTicketLeft  key.Binding
	MoveTicketRight key.Binding
	ViewTicket      key.Binding
	DeleteTicket    key.Binding
	Search          key.Binding
	ToggleOverdue   key.Binding
	ClearFilters    key.Binding
	RefreshBoard    key.Binding
	CycleTheme      key.Binding
	ShowHelp        key.Binding
	Quit            key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		PrevColumn:      key.NewBinding(key.WithKeys(km.PrevColumn, "left"), key.WithHelp(km.PrevColumn+"/←", "prev column")),
		NextColumn:      key.NewBinding(key.WithKeys(km.NextColumn, "right"), key.WithHelp(km.NextColumn+"/→", "next column")),
		PrevTicket:      key.NewBinding(key.WithKeys(km.PrevTicket, "up"), key.WithHelp(km.PrevTicket+"/↑", "prev ticket")),
		NextTicket:      key.NewBinding(key.WithKeys(km.NextTicket, "down"), key.WithHelp(km.NextTicket+"/↓", "next ticket")),
		AddTicket:       key.NewBinding(key.WithKeys(km.AddTicket), key.WithHelp(km.AddTicket, "new ticket")),
		EditTicket:      key.NewBinding(key.WithKeys(km.EditTicket), key.WithHelp(km.EditTicket, "edit")),
		MoveTicketLeft:  key.NewBinding(key.WithKeys(km.MoveTicketLeft), key.WithHelp(km.MoveTicketLeft, "move left")),
		MoveTicketRight: key.NewBinding(key.WithKeys(km.MoveTicketRight), key.WithHelp(km.MoveTicketRight, "move right")),
		ViewTicket:      key.NewBinding(key.WithKeys(km.ViewTicket), key.WithHelp(km.ViewTicket, "details")),
		DeleteTicket:    key.NewBinding(key.WithKeys(km.DeleteTicket), key.WithHelp(km.DeleteTicket, "delete")),
		Search:          key.NewBinding(key.WithKeys(km.Search), key.WithHelp(km.Search, "search")),
		ToggleOverdue:   key.NewBinding(key.WithKeys(km.ToggleOverdue), key.WithHelp(km.ToggleOverdue, "overdue only")),
		ClearFilters:    key.NewBinding(key.WithKeys(km.ClearFilters), key.WithHelp(km.ClearFilters, "clear filters")),
		RefreshBoard:    key.NewBinding(key.WithKeys(km.RefreshBoard), key.WithHelp(km.RefreshBoard, "new demo board")),
		CycleTheme:      key.NewBinding(key.WithKeys(km.CycleTheme), key.WithHelp(km.CycleTheme, "next theme")),
		ShowHelp:        key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:            key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// ShortHelp returns the bindings shown in the footer
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddTicket, k.MoveTicketLeft, k.MoveTicketRight, k.Search, k.ToggleOverdue, k.ShowHelp, k.Quit}
}

// FullHelp returns the bindings shown on the help screen, grouped by column
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevColumn, k.NextColumn, k.PrevTicket, k.NextTicket},
		{k.AddTicket, k.EditTicket, k.ViewTicket, k.DeleteTicket},
		{k.MoveTicketLeft, k.MoveTicketRight},
		{k.Search, k.ToggleOverdue, k.ClearFilters},
		{k.RefreshBoard, k.CycleTheme, k.ShowHelp, k.Quit},
	}
}
