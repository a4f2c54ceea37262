// Package filter computes the visible subset of a board's tickets from a
// FilterCriteria value. Every function here is pure: inputs are never
// modified and outputs never alias inputs.
package filter

import (
	"strings"
	"time"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
)

// ComputeVisible returns the tickets that satisfy criteria, preserving their
// relative order. The result is a fresh slice of cloned tickets.
func ComputeVisible(tickets []models.Ticket, criteria models.FilterCriteria, now time.Time) []models.Ticket {
	m := newMatcher(criteria)
	out := make([]models.Ticket, 0, len(tickets))
	for i := range tickets {
		if m.matches(&tickets[i], now) {
			out = append(out, tickets[i].Clone())
		}
	}
	return out
}

// Matches reports whether a single ticket satisfies criteria
func Matches(t models.Ticket, criteria models.FilterCriteria, now time.Time) bool {
	return newMatcher(criteria).matches(&t, now)
}

// IsOverdue reports whether the ticket has a due date strictly in the past
// and is not done.
func IsOverdue(t models.Ticket, now time.Time) bool {
	if t.DueDate == nil || t.Status == models.StatusDone {
		return false
	}
	return t.DueDate.Before(now)
}

// NormalizeSearch lowercases a search query. Whitespace is kept, so a
// trailing space only matches text that has one.
func NormalizeSearch(query string) string {
	return strings.ToLower(query)
}

// matcher holds criteria pre-processed into set lookups so that filtering a
// whole board does not rebuild them per ticket.
type matcher struct {
	search     string
	priorities map[models.Priority]struct{}
	assignees  map[string]struct{}
	statuses   map[models.Status]struct{}
	tags       map[string]struct{}
	overdue    bool
}

func newMatcher(c models.FilterCriteria) matcher {
	return matcher{
		search:     NormalizeSearch(c.Search),
		priorities: toSet(c.Priorities),
		assignees:  toSet(c.Assignees),
		statuses:   toSet(c.Statuses),
		tags:       toSet(c.Tags),
		overdue:    c.Overdue,
	}
}

func (m matcher) matches(t *models.Ticket, now time.Time) bool {
	if m.search != "" && !matchesSearch(t, m.search) {
		return false
	}
	if !inSet(m.priorities, t.Priority) {
		return false
	}
	if !inSet(m.assignees, t.Assignee) {
		return false
	}
	if !inSet(m.statuses, t.Status) {
		return false
	}
	if len(m.tags) > 0 && !hasAnyTag(t, m.tags) {
		return false
	}
	// Overdue is additive only: false never excludes overdue tickets.
	if m.overdue && !IsOverdue(*t, now) {
		return false
	}
	return true
}

func matchesSearch(t *models.Ticket, needle string) bool {
	if strings.Contains(strings.ToLower(t.Title), needle) ||
		strings.Contains(strings.ToLower(t.Description), needle) ||
		strings.Contains(strings.ToLower(t.Assignee), needle) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func hasAnyTag(t *models.Ticket, accepted map[string]struct{}) bool {
	for _, tag := range t.Tags {
		if _, ok := accepted[tag]; ok {
			return true
		}
	}
	return false
}

// inSet treats an empty set as "accept everything"
func inSet[T comparable](set map[T]struct{}, v T) bool {
	if len(set) == 0 {
		return true
	}
	_, ok := set[v]
	return ok
}

func toSet[T comparable](values []T) map[T]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
