package models

import "github.com/Pranshu640/Kanban-Ticketing-System/internal/types"

// Column represents a kanban board column bound to exactly one status.
// A nil Limit means the column accepts any number of tickets.
type Column struct {
	ID     types.ColumnID
	Title  string
	Status Status
	Color  string // Hex color code (e.g., "#3b82f6")
	Limit  *int
}

// HasLimit reports whether the column has a capacity limit
func (c Column) HasLimit() bool {
	return c.Limit != nil
}

// Clone returns a copy that does not share the limit pointer
func (c Column) Clone() Column {
	cc := c
	if c.Limit != nil {
		l := *c.Limit
		cc.Limit = &l
	}
	return cc
}
