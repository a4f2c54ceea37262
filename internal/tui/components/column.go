package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/tui/theme"
)

// ColumnProps describes one column to render
type ColumnProps struct {
	Column models.Column
	// Tickets are the visible tickets of the column, after filters
	Tickets []models.Ticket
	// Count is the number of tickets in the column ignoring filters
	Count       int
	Selected    bool
	SelectedIdx int // index of the selected ticket, ignored unless Selected
	Height      int // total height of the column box, 0 for auto
	Offset      int // index of the first visible ticket
	Now         time.Time
}

// VisibleTickets returns how many cards fit in a column of the given height
func VisibleTickets(height int) int {
	available := height - columnBorderOverhead - headerLines - topIndicatorLines
	return max(available/TicketCardHeight, 1)
}

// RenderColumn renders a complete column with its title and tickets
//
// Layout:
//
//	{Title} ({count}/{limit})
//	▲ (if scrolled down)
//	{Ticket 1}
//	{Ticket 2}
//	...
//	▼ (if more tickets below)
func RenderColumn(props ColumnProps) string {
	content := renderColumnHeader(props.Column, props.Count) + "\n"

	if len(props.Tickets) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Padding(1, 0)
		content += emptyStyle.Render("No tickets")
	} else {
		maxVisible := VisibleTickets(props.Height)
		offset := min(max(props.Offset, 0), len(props.Tickets)-1)

		if offset > 0 {
			content += IndicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		end := min(offset+maxVisible, len(props.Tickets))
		cards := make([]string, 0, end-offset)
		for i := offset; i < end; i++ {
			cards = append(cards, RenderTicket(props.Tickets[i], props.Selected && i == props.SelectedIdx, props.Now))
		}
		content += strings.Join(cards, "\n")

		if end < len(props.Tickets) {
			content += "\n" + IndicatorStyle.Render("▼ more below")
		}
	}

	style := ColumnStyle
	if props.Selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if props.Height > 0 {
		// Height and MaxHeight count the border
		style = style.Height(props.Height).MaxHeight(props.Height)
	}
	return style.Render(content)
}

func renderColumnHeader(col models.Column, count int) string {
	counter := fmt.Sprintf("(%d)", count)
	counterStyle := SubtleStyle
	if col.Limit != nil {
		counter = fmt.Sprintf("(%d/%d)", count, *col.Limit)
		if count >= *col.Limit {
			counterStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.WarningBg))
		}
	}

	color := col.Color
	if color == "" {
		color = theme.Highlight
	}
	title := TitleStyle.Foreground(lipgloss.Color(color)).Render(col.Title)
	return title + " " + counterStyle.Render(counter)
}
