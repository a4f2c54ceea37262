package board

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	kboard "github.com/Pranshu640/Kanban-Ticketing-System/internal/board"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/handler"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/styles"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/ticket"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/filter"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
)

const columnWidth = 30

// ColumnView is the output shape of one column
type ColumnView struct {
	ID      string         `json:"id"`
	Title   string         `json:"title"`
	Status  string         `json:"status"`
	Limit   *int           `json:"limit,omitempty"`
	Count   int            `json:"count"`
	Tickets []*ticket.View `json:"tickets"`

	column  models.Column
	tickets []models.Ticket
}

// View is the output shape of the whole board
type View struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Columns  []*ColumnView `json:"columns"`
	Filtered bool          `json:"filtered"`
	Error    string        `json:"error,omitempty"`

	now time.Time
}

// NewView groups the visible tickets by column. Count is the number of
// tickets in the column regardless of filters, since limits apply to it.
func NewView(state kboard.State, now time.Time) *View {
	v := &View{
		ID:       state.Board.ID.String(),
		Name:     state.Board.Name,
		Filtered: !state.Filters.IsEmpty(),
		Error:    state.Error,
		now:      now,
	}
	for _, col := range state.Board.Columns {
		cv := &ColumnView{
			ID:      col.ID.String(),
			Title:   col.Title,
			Status:  col.Status.String(),
			Limit:   col.Limit,
			Count:   state.Board.CountByStatus(col.Status),
			Tickets: []*ticket.View{},
			column:  col,
		}
		for _, t := range state.FilteredTickets {
			if t.Status == col.Status {
				cv.Tickets = append(cv.Tickets, ticket.NewView(t, now))
				cv.tickets = append(cv.tickets, t)
			}
		}
		v.Columns = append(v.Columns, cv)
	}
	return v
}

// Render draws the columns side by side
func (v *View) Render(w io.Writer) error {
	header := styles.TitleStyle.Render(v.Name)
	if v.Filtered {
		header += " " + styles.WarningStyle.Render("(filtered)")
	}
	fmt.Fprintln(w, header)
	if v.Error != "" {
		fmt.Fprintln(w, styles.ErrorStyle.Render(v.Error))
	}

	blocks := make([]string, len(v.Columns))
	for i, col := range v.Columns {
		blocks[i] = col.render(v.now)
	}
	_, err := fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	return err
}

func (c *ColumnView) render(now time.Time) string {
	var b strings.Builder
	b.WriteString(styles.RenderColumnHeader(c.column, c.Count))
	b.WriteString("\n")

	if len(c.tickets) == 0 {
		b.WriteString(styles.SubtitleStyle.Render("No tickets"))
	}
	for i, t := range c.tickets {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderCard(t, now))
	}

	return lipgloss.NewStyle().
		Width(columnWidth).
		MarginRight(1).
		Render(b.String())
}

func renderCard(t models.Ticket, now time.Time) string {
	lines := []string{
		styles.ValueStyle.Bold(true).Render(truncate(t.Title, columnWidth-4)),
		styles.RenderPriority(t.Priority) + " " + styles.SubtitleStyle.Render(t.ID.String()),
	}
	if t.Assignee != "" {
		lines = append(lines, styles.SubtitleStyle.Render("@"+t.Assignee))
	}
	if filter.IsOverdue(t, now) {
		lines = append(lines, styles.ErrorStyle.Render("overdue"))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(styles.PriorityColor(t.Priority))).
		Width(columnWidth - 2).
		Render(strings.Join(lines, "\n"))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Draw the board with the active filters applied",
		Args:  cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.Func(func(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
			return NewView(c.App.Store.Snapshot(), c.App.Now()), nil
		})),
	}
	handler.AddOutputFlags(cmd)
	return cmd
}
