package board

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/handler"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/styles"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/filter"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
)

// StatsView is the output shape of the board summary
type StatsView struct {
	Total          int            `json:"total"`
	Completed      int            `json:"completed"`
	Overdue        int            `json:"overdue"`
	ByStatus       map[string]int `json:"byStatus"`
	ByPriority     map[string]int `json:"byPriority"`
	EstimatedHours float64        `json:"estimatedHours"`
}

// Render prints the counters
func (s *StatsView) Render(w io.Writer) error {
	fmt.Fprintf(w, "%s %d  %s %d  %s %d\n",
		styles.LabelStyle.Render("Total:"), s.Total,
		styles.LabelStyle.Render("Completed:"), s.Completed,
		styles.LabelStyle.Render("Overdue:"), s.Overdue,
	)
	fmt.Fprintln(w, styles.SectionStyle.Render("By status"))
	for _, st := range models.AllStatuses() {
		fmt.Fprintf(w, "  %-12s %d\n", st.Label(), s.ByStatus[st.String()])
	}
	fmt.Fprintln(w, styles.SectionStyle.Render("By priority"))
	for i := len(models.AllPriorities()) - 1; i >= 0; i-- {
		p := models.AllPriorities()[i]
		fmt.Fprintf(w, "  %-12s %d\n", styles.PriorityLabel(p), s.ByPriority[p.String()])
	}
	_, err := fmt.Fprintf(w, "%s %gh\n", styles.LabelStyle.Render("Estimated work left:"), s.EstimatedHours)
	return err
}

// StatsCmd returns the board stats subcommand
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the board",
		Long:  "Count tickets per status and priority. Filters are ignored unless --filtered is given.",
		Args:  cobra.NoArgs,
		RunE:  handler.SimpleCommand(handler.Func(runStats)),
	}
	cmd.Flags().Bool("filtered", false, "Only count tickets that pass the active filters")
	handler.AddOutputFlags(cmd)
	return cmd
}

func runStats(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	state := c.App.Store.Snapshot()
	tickets := state.Board.Tickets
	if args.GetBool("filtered") {
		tickets = state.FilteredTickets
	}

	stats := filter.ComputeStats(tickets, c.App.Now())
	out := &StatsView{
		Total:      stats.Total,
		Completed:  stats.Completed,
		Overdue:    stats.Overdue,
		ByStatus:   make(map[string]int, len(stats.ByStatus)),
		ByPriority: make(map[string]int, len(stats.ByPriority)),
	}
	for k, n := range stats.ByStatus {
		out.ByStatus[k.String()] = n
	}
	for k, n := range stats.ByPriority {
		out.ByPriority[k.String()] = n
	}
	for _, t := range tickets {
		if t.EstimatedHours != nil && t.Status != models.StatusDone {
			out.EstimatedHours += *t.EstimatedHours
		}
	}
	return out, nil
}
