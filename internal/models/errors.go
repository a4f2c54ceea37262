package models

import "errors"

// Domain-specific errors for board configuration and ticket movement
var (
	// ErrInvalidBoard indicates a board whose columns or tickets break the configuration invariants
	ErrInvalidBoard = errors.New("invalid board configuration")

	// ErrTicketNotFound indicates an unknown ticket id
	ErrTicketNotFound = errors.New("ticket not found")

	// ErrUnknownColumn indicates a status that no column serves
	ErrUnknownColumn = errors.New("no column for status")

	// ErrSameColumn indicates a move into the column the ticket is already in
	ErrSameColumn = errors.New("ticket is already in this column")

	// ErrColumnFull indicates the destination column is at its capacity limit
	ErrColumnFull = errors.New("column limit reached")
)
