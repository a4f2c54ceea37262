package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func testBoard() Board {
	return Board{
		ID:   "main-board",
		Name: "Project Board",
		Columns: []Column{
			{ID: "todo", Title: "To Do", Status: StatusTodo},
			{ID: "in-progress", Title: "In Progress", Status: StatusInProgress, Limit: intPtr(5)},
			{ID: "in-review", Title: "In Review", Status: StatusInReview, Limit: intPtr(3)},
			{ID: "done", Title: "Done", Status: StatusDone},
		},
	}
}

// ============================================================================
// Enum Tests
// ============================================================================

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
		ok   bool
	}{
		{"todo", StatusTodo, true},
		{"in-progress", StatusInProgress, true},
		{"in-review", StatusInReview, true},
		{"done", StatusDone, true},
		{"Done", "", false},
		{"", "", false},
		{"blocked", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseStatus(tt.raw)
		assert.Equal(t, tt.ok, ok, "ParseStatus(%q) ok", tt.raw)
		if tt.ok {
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestParsePriority(t *testing.T) {
	for _, p := range AllPriorities() {
		got, ok := ParsePriority(string(p))
		assert.True(t, ok)
		assert.Equal(t, p, got)
	}
	_, ok := ParsePriority("critical")
	assert.False(t, ok)
}

func TestPriorityRank_MostUrgentFirst(t *testing.T) {
	assert.Less(t, PriorityUrgent.Rank(), PriorityHigh.Rank())
	assert.Less(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Less(t, PriorityMedium.Rank(), PriorityLow.Rank())
	assert.Less(t, PriorityLow.Rank(), Priority("bogus").Rank())
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "In Review", StatusInReview.Label())
	assert.Equal(t, "weird", Status("weird").Label())
}

// ============================================================================
// Clone Tests
// ============================================================================

func TestTicketClone_DoesNotShareState(t *testing.T) {
	due := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	hours := 4.5
	orig := Ticket{ID: "t1", Tags: []string{"api"}, DueDate: &due, EstimatedHours: &hours}

	c := orig.Clone()
	c.Tags[0] = "changed"
	*c.DueDate = due.Add(time.Hour)
	*c.EstimatedHours = 9

	assert.Equal(t, "api", orig.Tags[0])
	assert.Equal(t, due, *orig.DueDate)
	assert.Equal(t, 4.5, *orig.EstimatedHours)
}

func TestBoardClone_DoesNotShareState(t *testing.T) {
	b := testBoard()
	b.Tickets = []Ticket{{ID: "t1", Status: StatusTodo, Title: "a"}}

	c := b.Clone()
	c.Tickets[0].Title = "b"
	*c.Columns[1].Limit = 99

	assert.Equal(t, "a", b.Tickets[0].Title)
	assert.Equal(t, 5, *b.Columns[1].Limit)
}

// ============================================================================
// Board Tests
// ============================================================================

func TestBoardValidate(t *testing.T) {
	t.Run("valid board", func(t *testing.T) {
		b := testBoard()
		b.Tickets = []Ticket{{ID: "t1", Status: StatusDone}}
		assert.NoError(t, b.Validate())
	})

	t.Run("duplicate status", func(t *testing.T) {
		b := testBoard()
		b.Columns = append(b.Columns, Column{ID: "extra", Status: StatusDone})
		assert.True(t, errors.Is(b.Validate(), ErrInvalidBoard))
	})

	t.Run("orphaned ticket status", func(t *testing.T) {
		b := testBoard()
		b.Columns = b.Columns[:3]
		b.Tickets = []Ticket{{ID: "t1", Status: StatusDone}}
		assert.ErrorIs(t, b.Validate(), ErrInvalidBoard)
	})

	t.Run("duplicate ticket id", func(t *testing.T) {
		b := testBoard()
		b.Tickets = []Ticket{{ID: "t1", Status: StatusTodo}, {ID: "t1", Status: StatusDone}}
		assert.ErrorIs(t, b.Validate(), ErrInvalidBoard)
	})

	t.Run("unknown column status", func(t *testing.T) {
		b := testBoard()
		b.Columns[0].Status = "backlog"
		assert.ErrorIs(t, b.Validate(), ErrInvalidBoard)
	})
}

func TestBoardLookups(t *testing.T) {
	b := testBoard()
	b.Tickets = []Ticket{
		{ID: "t1", Status: StatusTodo},
		{ID: "t2", Status: StatusInProgress},
		{ID: "t3", Status: StatusTodo},
	}

	col, ok := b.ColumnForStatus(StatusInReview)
	require.True(t, ok)
	assert.Equal(t, 3, *col.Limit)

	assert.Equal(t, 2, b.CountByStatus(StatusTodo))
	assert.Equal(t, 0, b.CountByStatus(StatusDone))
	assert.Equal(t, 1, b.TicketIndex("t2"))
	assert.Equal(t, -1, b.TicketIndex("missing"))

	todo := b.TicketsByStatus(StatusTodo)
	require.Len(t, todo, 2)
	assert.Equal(t, "t1", string(todo[0].ID))
	assert.Equal(t, "t3", string(todo[1].ID))
}

// ============================================================================
// Filter Tests
// ============================================================================

func TestFilterUpdateApply_MergesOnlySetFields(t *testing.T) {
	base := FilterCriteria{Search: "login", Priorities: []Priority{PriorityHigh}}
	overdue := true
	tags := []string{"bug"}

	got := FilterUpdate{Overdue: &overdue, Tags: &tags}.Apply(base)

	assert.Equal(t, "login", got.Search)
	assert.Equal(t, []Priority{PriorityHigh}, got.Priorities)
	assert.Equal(t, []string{"bug"}, got.Tags)
	assert.True(t, got.Overdue)

	tags[0] = "mutated"
	assert.Equal(t, "bug", got.Tags[0])
}

func TestFilterCriteriaIsEmpty(t *testing.T) {
	assert.True(t, FilterCriteria{}.IsEmpty())
	assert.False(t, FilterCriteria{Overdue: true}.IsEmpty())
	assert.False(t, FilterCriteria{Assignees: []string{"Alice"}}.IsEmpty())
}

func TestTicketUpdateIsEmpty(t *testing.T) {
	assert.True(t, TicketUpdate{}.IsEmpty())
	title := "x"
	assert.False(t, TicketUpdate{Title: &title}.IsEmpty())
	assert.False(t, TicketUpdate{ClearDueDate: true}.IsEmpty())
}
