package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/filter"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/tui/theme"
)

// RenderTicket renders a single ticket as a card
//
//	┏━━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Title}              ┃
//	┃ {description preview}┃
//	┃ priority @assignee   ┃
//	┃ #tag #tag            ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━┛
//
// The card has a fixed height so columns can be scrolled by whole cards.
func RenderTicket(t models.Ticket, selected bool, now time.Time) string {
	inner := ColumnContentWidth - 4 // border and padding
	bg := theme.TicketBg
	if selected {
		bg = theme.SelectedBg
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Normal)).
		Render(truncate(t.Title, inner))

	description := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Width(inner).
		Height(2).
		MaxHeight(2).
		Render(TruncateDescription(t.Description))

	content := strings.Join([]string{
		title,
		description,
		renderMetadata(t, now, inner),
		renderTags(t.Tags, inner),
	}, "\n")

	border := theme.Border
	if selected {
		border = theme.SelectedBorder
	}
	return TicketStyle.
		BorderForeground(lipgloss.Color(border)).
		Background(lipgloss.Color(bg)).
		Render(content)
}

// TruncateDescription shortens a description for card previews
func TruncateDescription(desc string) string {
	r := []rune(desc)
	if len(r) <= DescriptionMaxLength {
		return desc
	}
	return string(r[:DescriptionMaxLength]) + "..."
}

// PriorityColor returns the color a priority is drawn with
func PriorityColor(p models.Priority) string {
	switch p {
	case models.PriorityUrgent:
		return theme.ErrorBg
	case models.PriorityHigh:
		return theme.WarningBg
	case models.PriorityLow:
		return theme.Success
	default:
		return theme.InfoBg
	}
}

func renderMetadata(t models.Ticket, now time.Time, width int) string {
	parts := []string{
		lipgloss.NewStyle().
			Foreground(lipgloss.Color(PriorityColor(t.Priority))).
			Render("● " + string(t.Priority)),
	}
	if t.Assignee != "" {
		parts = append(parts, SubtleStyle.Render("@"+t.Assignee))
	}
	if filter.IsOverdue(t, now) {
		parts = append(parts, OverdueStyle.Render("overdue"))
	} else if days, ok := filter.DaysUntilDue(t, now); ok && t.Status != models.StatusDone {
		parts = append(parts, SubtleStyle.Render(fmt.Sprintf("due %dd", days)))
	}
	if t.EstimatedHours != nil {
		parts = append(parts, SubtleStyle.Render(fmt.Sprintf("%gh", *t.EstimatedHours)))
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(parts, " "))
}

func renderTags(tags []string, width int) string {
	if len(tags) == 0 {
		return ""
	}
	chips := make([]string, len(tags))
	for i, tag := range tags {
		chips[i] = "#" + tag
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Highlight)).
		Render(truncate(strings.Join(chips, " "), width))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
