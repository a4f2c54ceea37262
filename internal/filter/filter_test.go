package filter

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var now = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time { return &t }

func ticketIDs(tickets []models.Ticket) []string {
	ids := make([]string, len(tickets))
	for i, t := range tickets {
		ids[i] = string(t.ID)
	}
	return ids
}

func sampleTickets() []models.Ticket {
	return []models.Ticket{
		{
			ID: "t1", Title: "Fix login bug", Description: "Users cannot log in",
			Status: models.StatusTodo, Priority: models.PriorityHigh, Assignee: "Alice",
			Tags: []string{"bug", "backend"},
		},
		{
			ID: "t2", Title: "Design navigation", Description: "Mobile first",
			Status: models.StatusInProgress, Priority: models.PriorityLow, Assignee: "Bob",
			Tags:    []string{"frontend", "design"},
			DueDate: timePtr(now.Add(-48 * time.Hour)),
		},
		{
			ID: "t3", Title: "API docs", Description: "Document the LOGIN endpoint",
			Status: models.StatusDone, Priority: models.PriorityMedium, Assignee: "Carol",
			Tags:    []string{"documentation"},
			DueDate: timePtr(now.Add(-24 * time.Hour)),
		},
		{
			ID: "t4", Title: "Security audit", Description: "Quarterly review",
			Status: models.StatusInReview, Priority: models.PriorityUrgent, Assignee: "Loginov",
			Tags:    []string{"security"},
			DueDate: timePtr(now.Add(72 * time.Hour)),
		},
		{
			ID: "t5", Title: "Cache tuning", Description: "Warm caches",
			Status: models.StatusTodo, Priority: models.PriorityMedium, Assignee: "Alice",
			Tags: []string{"performance", "single-login"},
		},
	}
}

// randomTickets builds a deterministic pseudo-random ticket list
func randomTickets(r *rand.Rand, n int) []models.Ticket {
	statuses := models.AllStatuses()
	priorities := models.AllPriorities()
	assignees := []string{"Alice", "Bob", "Carol", ""}
	tags := []string{"bug", "api", "frontend", "login"}

	out := make([]models.Ticket, n)
	for i := range out {
		t := models.Ticket{
			ID:       types.TicketID(fmt.Sprintf("t%d", i)),
			Title:    fmt.Sprintf("Ticket %d", i),
			Status:   statuses[r.Intn(len(statuses))],
			Priority: priorities[r.Intn(len(priorities))],
			Assignee: assignees[r.Intn(len(assignees))],
		}
		for _, tag := range tags {
			if r.Intn(3) == 0 {
				t.Tags = append(t.Tags, tag)
			}
		}
		if r.Intn(2) == 0 {
			t.DueDate = timePtr(now.Add(time.Duration(r.Intn(200)-100) * time.Hour))
		}
		out[i] = t
	}
	return out
}

// ============================================================================
// ComputeVisible
// ============================================================================

func TestComputeVisible_EmptyCriteriaReturnsAll(t *testing.T) {
	tickets := sampleTickets()
	got := ComputeVisible(tickets, models.FilterCriteria{}, now)
	assert.Equal(t, ticketIDs(tickets), ticketIDs(got))
}

func TestComputeVisible_Search(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"title match", "fix", []string{"t1"}},
		{"case insensitive across fields", "login", []string{"t1", "t3", "t4", "t5"}},
		{"assignee match", "bob", []string{"t2"}},
		{"tag match", "documentation", []string{"t3"}},
		{"leading space is part of the query", " audit", []string{"t4"}},
		{"trailing space is part of the query", "login ", []string{"t1", "t3"}},
		{"trailing space does not match a word end", "bug ", []string{}},
		{"no match", "zzz", []string{}},
		{"empty search matches all", "", []string{"t1", "t2", "t3", "t4", "t5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeVisible(sampleTickets(), models.FilterCriteria{Search: tt.search}, now)
			assert.Equal(t, tt.want, ticketIDs(got))
		})
	}
}

func TestComputeVisible_SetFilters(t *testing.T) {
	tests := []struct {
		name     string
		criteria models.FilterCriteria
		want     []string
	}{
		{
			name:     "priorities",
			criteria: models.FilterCriteria{Priorities: []models.Priority{models.PriorityMedium, models.PriorityUrgent}},
			want:     []string{"t3", "t4", "t5"},
		},
		{
			name:     "assignees exact match",
			criteria: models.FilterCriteria{Assignees: []string{"Alice"}},
			want:     []string{"t1", "t5"},
		},
		{
			name:     "statuses",
			criteria: models.FilterCriteria{Statuses: []models.Status{models.StatusTodo}},
			want:     []string{"t1", "t5"},
		},
		{
			name:     "tags any-of",
			criteria: models.FilterCriteria{Tags: []string{"design", "security"}},
			want:     []string{"t2", "t4"},
		},
		{
			name: "axes combine with AND",
			criteria: models.FilterCriteria{
				Search:    "login",
				Assignees: []string{"Alice"},
				Tags:      []string{"bug"},
			},
			want: []string{"t1"},
		},
		{
			name:     "unknown status never matches",
			criteria: models.FilterCriteria{Statuses: []models.Status{"blocked"}},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeVisible(sampleTickets(), tt.criteria, now)
			assert.Equal(t, tt.want, ticketIDs(got))
		})
	}
}

func TestComputeVisible_OverdueIsAdditiveOnly(t *testing.T) {
	tickets := sampleTickets()

	onlyOverdue := ComputeVisible(tickets, models.FilterCriteria{Overdue: true}, now)
	// t3 is past due but done, so it is not overdue
	assert.Equal(t, []string{"t2"}, ticketIDs(onlyOverdue))

	notFiltered := ComputeVisible(tickets, models.FilterCriteria{Overdue: false}, now)
	assert.Contains(t, ticketIDs(notFiltered), "t2", "overdue=false must not exclude overdue tickets")
	assert.Len(t, notFiltered, len(tickets))
}

func TestComputeVisible_DueExactlyNowIsNotOverdue(t *testing.T) {
	tickets := []models.Ticket{{ID: "t1", Status: models.StatusTodo, DueDate: timePtr(now)}}
	got := ComputeVisible(tickets, models.FilterCriteria{Overdue: true}, now)
	assert.Empty(t, got)
}

func TestComputeVisible_DoesNotAliasInput(t *testing.T) {
	tickets := sampleTickets()
	got := ComputeVisible(tickets, models.FilterCriteria{}, now)
	require.NotEmpty(t, got)

	got[0].Title = "changed"
	got[0].Tags[0] = "changed"
	assert.Equal(t, "Fix login bug", tickets[0].Title)
	assert.Equal(t, "bug", tickets[0].Tags[0])
}

func TestComputeVisible_NilInput(t *testing.T) {
	got := ComputeVisible(nil, models.FilterCriteria{Search: "x"}, now)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ============================================================================
// Properties
// ============================================================================

func TestComputeVisible_OrderPreservingAndIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	criteriaSets := []models.FilterCriteria{
		{},
		{Search: "login"},
		{Priorities: []models.Priority{models.PriorityHigh}},
		{Assignees: []string{"Alice", "Carol"}, Overdue: true},
		{Tags: []string{"api"}, Statuses: []models.Status{models.StatusTodo, models.StatusDone}},
	}

	for round := 0; round < 50; round++ {
		tickets := randomTickets(r, 40)
		position := make(map[types.TicketID]int, len(tickets))
		for i, tk := range tickets {
			position[tk.ID] = i
		}

		for _, c := range criteriaSets {
			first := ComputeVisible(tickets, c, now)
			second := ComputeVisible(tickets, c, now)
			require.Equal(t, first, second, "results differ between identical calls")

			for i := 1; i < len(first); i++ {
				require.Less(t, position[first[i-1].ID], position[first[i].ID], "relative order not preserved")
			}
			for _, tk := range first {
				require.True(t, Matches(tk, c, now))
			}
		}
	}
}

func TestComputeVisible_EmptySetNeverExcludes(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	tickets := randomTickets(r, 100)

	empty := models.FilterCriteria{
		Priorities: []models.Priority{},
		Assignees:  []string{},
		Statuses:   []models.Status{},
		Tags:       []string{},
	}
	assert.Len(t, ComputeVisible(tickets, empty, now), len(tickets))
}

// ============================================================================
// IsOverdue
// ============================================================================

func TestIsOverdue(t *testing.T) {
	tests := []struct {
		name   string
		ticket models.Ticket
		want   bool
	}{
		{"no due date", models.Ticket{Status: models.StatusTodo}, false},
		{"past due", models.Ticket{Status: models.StatusTodo, DueDate: timePtr(now.Add(-time.Second))}, true},
		{"past due but done", models.Ticket{Status: models.StatusDone, DueDate: timePtr(now.Add(-time.Hour))}, false},
		{"future due", models.Ticket{Status: models.StatusInReview, DueDate: timePtr(now.Add(time.Hour))}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOverdue(tt.ticket, now))
		})
	}
}
