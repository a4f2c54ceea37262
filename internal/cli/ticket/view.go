package ticket

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/styles"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/filter"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/persistence"
)

// View is the output shape of a single ticket
type View struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Status         string   `json:"status"`
	Priority       string   `json:"priority"`
	Assignee       string   `json:"assignee"`
	Tags           []string `json:"tags"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
	DueDate        string   `json:"dueDate,omitempty"`
	EstimatedHours *float64 `json:"estimatedHours,omitempty"`
	CompletedAt    string   `json:"completedAt,omitempty"`
	Overdue        bool     `json:"overdue"`

	// Message is printed above the card in human-readable output
	Message string `json:"-"`
	// Detailed switches from the one-line summary to the full card
	Detailed bool `json:"-"`

	ticket models.Ticket
	now    time.Time
}

// NewView builds the output shape of t as seen at now
func NewView(t models.Ticket, now time.Time) *View {
	v := &View{
		ID:             t.ID.String(),
		Title:          t.Title,
		Description:    t.Description,
		Status:         t.Status.String(),
		Priority:       t.Priority.String(),
		Assignee:       t.Assignee,
		Tags:           t.Tags,
		CreatedAt:      persistence.FormatTime(t.CreatedAt),
		UpdatedAt:      persistence.FormatTime(t.UpdatedAt),
		EstimatedHours: t.EstimatedHours,
		Overdue:        filter.IsOverdue(t, now),
		ticket:         t,
		now:            now,
	}
	if v.Tags == nil {
		v.Tags = []string{}
	}
	if t.DueDate != nil {
		v.DueDate = persistence.FormatTime(*t.DueDate)
	}
	if t.CompletedAt != nil {
		v.CompletedAt = persistence.FormatTime(*t.CompletedAt)
	}
	return v
}

// GetID returns the ticket id for quiet output
func (v *View) GetID() string {
	return v.ID
}

// Render prints the ticket for a human reader
func (v *View) Render(w io.Writer) error {
	if v.Message != "" {
		if _, err := fmt.Fprintln(w, styles.SuccessStyle.Render("✓ ")+v.Message); err != nil {
			return err
		}
	}
	if !v.Detailed {
		_, err := fmt.Fprintf(w, "  %s  %s  %s\n", v.ID, v.ticket.Status.Label(), styles.RenderPriority(v.ticket.Priority))
		return err
	}
	_, err := fmt.Fprintln(w, styles.RenderCard(v.card()))
	return err
}

func (v *View) card() string {
	t := v.ticket
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(v.ID + ": " + t.Title))
	content.WriteString("\n\n")

	if v.Overdue {
		content.WriteString(styles.OverdueStyle.Render("OVERDUE"))
		content.WriteString("\n\n")
	}

	if t.Description != "" {
		content.WriteString(styles.SectionStyle.Render("Description"))
		content.WriteString("\n")
		content.WriteString(renderMarkdown(t.Description, styles.CardWidth-8))
		content.WriteString("\n")
	}

	fmt.Fprintf(&content, "%s %s  %s %s\n",
		styles.LabelStyle.Render("Status:"),
		styles.ValueStyle.Render(t.Status.Label()),
		styles.LabelStyle.Render("Priority:"),
		styles.RenderPriority(t.Priority),
	)

	assignee := t.Assignee
	if assignee == "" {
		assignee = "Unassigned"
	}
	fmt.Fprintf(&content, "%s %s\n", styles.LabelStyle.Render("Assignee:"), styles.ValueStyle.Render(assignee))

	if t.DueDate != nil {
		due := t.DueDate.Local().Format("Jan 2, 2006")
		if days, ok := filter.DaysUntilDue(t, v.now); ok {
			due += fmt.Sprintf(" (%s)", describeDays(days))
		}
		fmt.Fprintf(&content, "%s %s\n", styles.LabelStyle.Render("Due:"), styles.ValueStyle.Render(due))
	}
	if t.EstimatedHours != nil {
		fmt.Fprintf(&content, "%s %s\n", styles.LabelStyle.Render("Estimate:"),
			styles.ValueStyle.Render(strconv.FormatFloat(*t.EstimatedHours, 'f', -1, 64)+"h"))
	}

	fmt.Fprintf(&content, "%s %s\n", styles.LabelStyle.Render("Created:"),
		styles.SubtitleStyle.Render(t.CreatedAt.Local().Format("Jan 2, 2006 3:04 PM")))
	fmt.Fprintf(&content, "%s %s\n", styles.LabelStyle.Render("Updated:"),
		styles.SubtitleStyle.Render(t.UpdatedAt.Local().Format("Jan 2, 2006 3:04 PM")))
	if t.CompletedAt != nil {
		fmt.Fprintf(&content, "%s %s\n", styles.LabelStyle.Render("Completed:"),
			styles.SubtitleStyle.Render(t.CompletedAt.Local().Format("Jan 2, 2006 3:04 PM")))
	}

	if len(t.Tags) > 0 {
		content.WriteString(styles.SectionStyle.Render("Tags"))
		content.WriteString("\n  " + styles.RenderTagChips(t.Tags) + "\n")
	}

	return strings.TrimRight(content.String(), "\n")
}

func describeDays(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("%d days late", -days)
	case days == 0:
		return "due today"
	case days == 1:
		return "due tomorrow"
	}
	return fmt.Sprintf("in %d days", days)
}

// renderMarkdown renders a description through glamour, falling back to the
// raw text indented by two spaces
func renderMarkdown(text string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if out, err := renderer.Render(text); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		b.WriteString("  " + styles.ValueStyle.Render(line) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// ListView is the output shape of a ticket list
type ListView struct {
	Tickets []*View `json:"tickets"`
	Total   int     `json:"total"`
	Visible int     `json:"visible"`
}

// Render prints one summary line per ticket
func (l *ListView) Render(w io.Writer) error {
	if len(l.Tickets) == 0 {
		_, err := fmt.Fprintln(w, styles.SubtitleStyle.Render("No tickets match."))
		return err
	}
	for _, v := range l.Tickets {
		line := styles.RenderTicketReference(v.ticket)
		meta := []string{v.ticket.Status.Label(), styles.RenderPriority(v.ticket.Priority)}
		if v.Assignee != "" {
			meta = append(meta, "@"+v.Assignee)
		}
		if v.Overdue {
			meta = append(meta, styles.ErrorStyle.Render("overdue"))
		}
		if _, err := fmt.Fprintf(w, "%s  %s\n", line, styles.SubtitleStyle.Render(strings.Join(meta, " · "))); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s\n", styles.SubtitleStyle.Render(fmt.Sprintf("%d of %d tickets", l.Visible, l.Total)))
	return err
}
