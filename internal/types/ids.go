package types

import "github.com/google/uuid"

// ID types give semantic meaning to the opaque string identifiers used across
// the board. They are plain strings on the wire.

// BoardID identifies a board
type BoardID string

// ColumnID identifies a column within a board
type ColumnID string

// TicketID identifies a ticket within a board. Ticket ids are never reused
// after deletion.
type TicketID string

// ticketIDPrefix is kept for readability in exports and logs
const ticketIDPrefix = "TICKET-"

// NewTicketID returns a fresh, globally unique ticket id.
func NewTicketID() TicketID {
	return TicketID(ticketIDPrefix + uuid.NewString())
}

func (id BoardID) String() string {
	return string(id)
}

func (id ColumnID) String() string {
	return string(id)
}

func (id TicketID) String() string {
	return string(id)
}
