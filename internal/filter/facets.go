package filter

import (
	"math"
	"slices"
	"sort"
	"time"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
)

// UniqueAssignees returns the sorted, de-duplicated assignees of tickets.
// Empty assignees are skipped.
func UniqueAssignees(tickets []models.Ticket) []string {
	seen := make(map[string]struct{})
	for _, t := range tickets {
		if t.Assignee != "" {
			seen[t.Assignee] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// UniqueTags returns every tag used on the board, sorted and de-duplicated
func UniqueTags(tickets []models.Ticket) []string {
	seen := make(map[string]struct{})
	for _, t := range tickets {
		for _, tag := range t.Tags {
			seen[tag] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// Stats summarizes a ticket list
type Stats struct {
	Total      int
	ByStatus   map[models.Status]int
	ByPriority map[models.Priority]int
	Overdue    int
	Completed  int
}

// ComputeStats counts tickets per status and priority, plus overdue and
// completed totals. Every known status and priority has an entry.
func ComputeStats(tickets []models.Ticket, now time.Time) Stats {
	s := Stats{
		Total:      len(tickets),
		ByStatus:   make(map[models.Status]int),
		ByPriority: make(map[models.Priority]int),
	}
	for _, st := range models.AllStatuses() {
		s.ByStatus[st] = 0
	}
	for _, p := range models.AllPriorities() {
		s.ByPriority[p] = 0
	}

	for _, t := range tickets {
		s.ByStatus[t.Status]++
		s.ByPriority[t.Priority]++
		if t.Status == models.StatusDone {
			s.Completed++
		}
		if IsOverdue(t, now) {
			s.Overdue++
		}
	}
	return s
}

// DaysUntilDue returns the number of days until the due date, rounded up.
// Negative values mean the ticket is late. ok is false without a due date.
func DaysUntilDue(t models.Ticket, now time.Time) (days int, ok bool) {
	if t.DueDate == nil {
		return 0, false
	}
	diff := t.DueDate.Sub(now)
	return int(math.Ceil(diff.Hours() / 24)), true
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ============================================================================
// SORTING
// ============================================================================

// SortByPriority returns a copy sorted most urgent first
func SortByPriority(tickets []models.Ticket) []models.Ticket {
	out := models.CloneTickets(tickets)
	slices.SortStableFunc(out, func(a, b models.Ticket) int {
		return a.Priority.Rank() - b.Priority.Rank()
	})
	return out
}

// SortByDueDate returns a copy sorted by due date, tickets without one last
func SortByDueDate(tickets []models.Ticket) []models.Ticket {
	out := models.CloneTickets(tickets)
	slices.SortStableFunc(out, func(a, b models.Ticket) int {
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return 0
		case a.DueDate == nil:
			return 1
		case b.DueDate == nil:
			return -1
		}
		return a.DueDate.Compare(*b.DueDate)
	})
	return out
}

// SortByCreated returns a copy sorted newest first
func SortByCreated(tickets []models.Ticket) []models.Ticket {
	out := models.CloneTickets(tickets)
	slices.SortStableFunc(out, func(a, b models.Ticket) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}

// SortByUpdated returns a copy sorted most recently updated first
func SortByUpdated(tickets []models.Ticket) []models.Ticket {
	out := models.CloneTickets(tickets)
	slices.SortStableFunc(out, func(a, b models.Ticket) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return out
}
