package models

import (
	"time"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/types"
)

// Ticket represents a single unit of work on the board
type Ticket struct {
	ID             types.TicketID
	Title          string
	Description    string
	Status         Status
	Priority       Priority
	Assignee       string
	CreatedAt      time.Time  // Immutable after creation
	UpdatedAt      time.Time  // Bumped on every mutation
	DueDate        *time.Time // Optional
	Tags           []string
	EstimatedHours *float64   // Optional, non-negative
	CompletedAt    *time.Time // Set when the ticket enters done
}

// Clone returns a deep copy of the ticket so callers can hand it out
// without sharing pointers or the tag slice.
func (t Ticket) Clone() Ticket {
	c := t
	c.DueDate = cloneTime(t.DueDate)
	c.CompletedAt = cloneTime(t.CompletedAt)
	if t.EstimatedHours != nil {
		h := *t.EstimatedHours
		c.EstimatedHours = &h
	}
	if t.Tags != nil {
		c.Tags = make([]string, len(t.Tags))
		copy(c.Tags, t.Tags)
	}
	return c
}

// HasTag reports whether the ticket carries the exact tag
func (t Ticket) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

// TicketDraft carries everything needed to create a ticket.
// The store assigns the id and the creation timestamps.
type TicketDraft struct {
	Title          string
	Description    string
	Status         Status
	Priority       Priority
	Assignee       string
	DueDate        *time.Time
	Tags           []string
	EstimatedHours *float64
	CompletedAt    *time.Time
}

// TicketUpdate is a partial update for a ticket.
// Pointer fields are optional - nil means don't update.
type TicketUpdate struct {
	Title          *string
	Description    *string
	Status         *Status
	Priority       *Priority
	Assignee       *string
	DueDate        *time.Time
	Tags           *[]string
	EstimatedHours *float64

	// ClearDueDate and ClearEstimatedHours remove the optional values.
	// They win over DueDate and EstimatedHours when both are set.
	ClearDueDate        bool
	ClearEstimatedHours bool
}

// IsEmpty reports whether the update carries no changes
func (u TicketUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil &&
		u.Priority == nil && u.Assignee == nil && u.DueDate == nil &&
		u.Tags == nil && u.EstimatedHours == nil &&
		!u.ClearDueDate && !u.ClearEstimatedHours
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
