package models

import (
	"fmt"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/types"
)

// Board is the ownership unit for columns and tickets.
// Tickets are kept newest-first.
type Board struct {
	ID      types.BoardID
	Name    string
	Columns []Column
	Tickets []Ticket
}

// Clone returns a deep copy of the board
func (b Board) Clone() Board {
	c := Board{ID: b.ID, Name: b.Name}
	if b.Columns != nil {
		c.Columns = make([]Column, len(b.Columns))
		for i, col := range b.Columns {
			c.Columns[i] = col.Clone()
		}
	}
	if b.Tickets != nil {
		c.Tickets = CloneTickets(b.Tickets)
	}
	return c
}

// ColumnForStatus returns the column bound to status
func (b Board) ColumnForStatus(status Status) (Column, bool) {
	for _, col := range b.Columns {
		if col.Status == status {
			return col, true
		}
	}
	return Column{}, false
}

// Ticket returns the ticket with the given id
func (b Board) Ticket(id types.TicketID) (Ticket, bool) {
	if i := b.TicketIndex(id); i >= 0 {
		return b.Tickets[i], true
	}
	return Ticket{}, false
}

// TicketIndex returns the position of the ticket in the ticket list, or -1
func (b Board) TicketIndex(id types.TicketID) int {
	for i := range b.Tickets {
		if b.Tickets[i].ID == id {
			return i
		}
	}
	return -1
}

// CountByStatus returns how many tickets currently sit in the status column
func (b Board) CountByStatus(status Status) int {
	n := 0
	for i := range b.Tickets {
		if b.Tickets[i].Status == status {
			n++
		}
	}
	return n
}

// TicketsByStatus returns the tickets of one column, preserving board order
func (b Board) TicketsByStatus(status Status) []Ticket {
	var out []Ticket
	for i := range b.Tickets {
		if b.Tickets[i].Status == status {
			out = append(out, b.Tickets[i].Clone())
		}
	}
	return out
}

// Validate checks the board configuration invariants: every column has a
// known status, no two columns share a status, column ids are unique, and
// every ticket's status is served by some column.
func (b Board) Validate() error {
	seenStatus := make(map[Status]bool, len(b.Columns))
	seenID := make(map[types.ColumnID]bool, len(b.Columns))
	for _, col := range b.Columns {
		if !col.Status.Valid() {
			return fmt.Errorf("%w: column %q has status %q", ErrInvalidBoard, col.ID, col.Status)
		}
		if seenStatus[col.Status] {
			return fmt.Errorf("%w: status %q is bound to more than one column", ErrInvalidBoard, col.Status)
		}
		if seenID[col.ID] {
			return fmt.Errorf("%w: duplicate column id %q", ErrInvalidBoard, col.ID)
		}
		if col.Limit != nil && *col.Limit < 0 {
			return fmt.Errorf("%w: column %q has negative limit", ErrInvalidBoard, col.ID)
		}
		seenStatus[col.Status] = true
		seenID[col.ID] = true
	}

	seenTicket := make(map[types.TicketID]bool, len(b.Tickets))
	for _, t := range b.Tickets {
		if t.ID == "" {
			return fmt.Errorf("%w: ticket without id", ErrInvalidBoard)
		}
		if seenTicket[t.ID] {
			return fmt.Errorf("%w: duplicate ticket id %q", ErrInvalidBoard, t.ID)
		}
		if !seenStatus[t.Status] {
			return fmt.Errorf("%w: ticket %q has status %q with no column", ErrInvalidBoard, t.ID, t.Status)
		}
		seenTicket[t.ID] = true
	}
	return nil
}

// CloneTickets deep-copies a ticket slice
func CloneTickets(tickets []Ticket) []Ticket {
	out := make([]Ticket, len(tickets))
	for i := range tickets {
		out[i] = tickets[i].Clone()
	}
	return out
}
