package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/filter"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/persistence"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/tui/theme"
)

// RenderTicketDetail renders every field of a ticket for the detail view.
// The description is rendered as markdown.
func RenderTicketDetail(t models.Ticket, width int, now time.Time) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(t.Title) + "\n")
	b.WriteString(SubtleStyle.Render(t.ID.String()) + "\n\n")

	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "%s %s\n", SubtleStyle.Render(fmt.Sprintf("%-10s", label)), value)
	}
	row("Status", t.Status.Label())
	row("Priority", string(t.Priority))
	row("Assignee", t.Assignee)
	if len(t.Tags) > 0 {
		row("Tags", "#"+strings.Join(t.Tags, " #"))
	}
	if t.DueDate != nil {
		due := t.DueDate.Local().Format("2006-01-02 15:04")
		if filter.IsOverdue(t, now) {
			due += " " + OverdueStyle.Render("overdue")
		}
		row("Due", due)
	}
	if t.EstimatedHours != nil {
		row("Estimate", fmt.Sprintf("%gh", *t.EstimatedHours))
	}
	row("Created", persistence.FormatTime(t.CreatedAt))
	row("Updated", persistence.FormatTime(t.UpdatedAt))
	if t.CompletedAt != nil {
		row("Completed", persistence.FormatTime(*t.CompletedAt))
	}

	if t.Description != "" {
		b.WriteString("\n" + renderMarkdown(t.Description, width))
	}
	return b.String()
}

func renderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme.Markdown),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
