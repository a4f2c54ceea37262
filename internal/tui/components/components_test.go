package components

import (
	"strings"
	"testing"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
)

var now = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func TestTruncateDescription(t *testing.T) {
	short := "fits"
	if got := TruncateDescription(short); got != short {
		t.Errorf("TruncateDescription(%q) = %q", short, got)
	}

	exact := strings.Repeat("a", DescriptionMaxLength)
	if got := TruncateDescription(exact); got != exact {
		t.Error("a description of exactly the limit should not be cut")
	}

	long := strings.Repeat("é", DescriptionMaxLength+5)
	got := TruncateDescription(long)
	if got != strings.Repeat("é", DescriptionMaxLength)+"..." {
		t.Errorf("TruncateDescription cut at the wrong place: %q", got)
	}
}

// TestRenderTicket_FixedHeight ensures every card has the same height so
// columns scroll by whole cards.
func TestRenderTicket_FixedHeight(t *testing.T) {
	hours := 3.0
	due := now.Add(-time.Hour)
	tickets := []models.Ticket{
		{ID: "TICKET-1", Title: "Short", Priority: models.PriorityLow},
		{
			ID:             "TICKET-2",
			Title:          "A very long title that goes well past the card width",
			Description:    strings.Repeat("word ", 60),
			Priority:       models.PriorityUrgent,
			Assignee:       "Alice",
			Tags:           []string{"frontend", "auth", "security", "release"},
			DueDate:        &due,
			EstimatedHours: &hours,
		},
	}
	for _, tk := range tickets {
		for _, selected := range []bool{false, true} {
			if h := lipgloss.Height(RenderTicket(tk, selected, now)); h != TicketCardHeight {
				t.Errorf("card %s (selected=%v) height = %d, want %d", tk.ID, selected, h, TicketCardHeight)
			}
		}
	}
}

func TestRenderTicket_Overdue(t *testing.T) {
	due := now.Add(-time.Hour)
	card := RenderTicket(models.Ticket{Title: "Late", Priority: models.PriorityMedium, DueDate: &due}, false, now)
	if !strings.Contains(card, "overdue") {
		t.Error("overdue tickets should be marked")
	}

	card = RenderTicket(models.Ticket{Title: "Late", Status: models.StatusDone, DueDate: &due}, false, now)
	if strings.Contains(card, "overdue") {
		t.Error("done tickets are never overdue")
	}
}

func TestRenderColumn(t *testing.T) {
	limit := 3
	col := models.Column{ID: "col-review", Title: "In Review", Status: models.StatusInReview, Limit: &limit}

	empty := RenderColumn(ColumnProps{Column: col, Height: 30, Now: now})
	if !strings.Contains(empty, "No tickets") || !strings.Contains(empty, "(0/3)") {
		t.Errorf("empty column missing placeholder or counter:\n%s", empty)
	}

	var tickets []models.Ticket
	for i := 0; i < 5; i++ {
		tickets = append(tickets, models.Ticket{Title: "card", Status: models.StatusInReview, Priority: models.PriorityMedium})
	}
	height := 3 + 1 + 1 + 2*TicketCardHeight
	out := RenderColumn(ColumnProps{Column: col, Tickets: tickets, Count: 5, Height: height, Now: now})
	if !strings.Contains(out, "▼ more below") {
		t.Error("expected a more-below indicator when cards overflow")
	}
	if got := lipgloss.Height(out); got != height {
		t.Errorf("column height = %d, want %d", got, height)
	}
	if strings.Contains(out, "▲ more above") {
		t.Error("no more-above indicator at the top")
	}

	out = RenderColumn(ColumnProps{Column: col, Tickets: tickets, Count: 5, Height: height, Offset: 3, Now: now})
	if !strings.Contains(out, "▲ more above") {
		t.Error("expected a more-above indicator when scrolled")
	}
}

func TestVisibleTickets(t *testing.T) {
	if got := VisibleTickets(0); got != 1 {
		t.Errorf("VisibleTickets(0) = %d, want at least 1", got)
	}
	if got := VisibleTickets(5 + 3*TicketCardHeight); got != 3 {
		t.Errorf("VisibleTickets = %d, want 3", got)
	}
}
