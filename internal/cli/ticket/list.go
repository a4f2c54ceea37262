package ticket

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/handler"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/filter"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
)

var sorters = map[string]func([]models.Ticket) []models.Ticket{
	"priority": filter.SortByPriority,
	"due":      filter.SortByDueDate,
	"created":  filter.SortByCreated,
	"updated":  filter.SortByUpdated,
}

// ListCmd returns the ticket list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tickets that pass the active filters",
		Long: `List tickets in board order (newest first). The filters saved with
"kanban filter set" apply unless --all is given.

Examples:
  kanban ticket list
  kanban ticket list --status=in-review
  kanban ticket list --all --sort=priority --json
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.Func(runList), validateList),
	}

	cmd.Flags().String("status", "", "Only tickets in this column")
	cmd.Flags().String("sort", "", "Sort by: priority, due, created, updated")
	cmd.Flags().Bool("all", false, "Ignore the active filters")

	handler.AddOutputFlags(cmd)
	return cmd
}

func validateList(cmd *cobra.Command) error {
	sortBy, _ := cmd.Flags().GetString("sort")
	if _, ok := sorters[sortBy]; sortBy != "" && !ok {
		return cli.Fail(cli.ExitValidation, "INVALID_SORT",
			fmt.Sprintf("invalid sort '%s' (must be: priority, due, created, updated)", sortBy))
	}
	return nil
}

func runList(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	state := c.App.Store.Snapshot()

	tickets := state.FilteredTickets
	if args.GetBool("all") {
		tickets = state.Board.Tickets
	}

	if args.Has("status") {
		status, err := args.Parser().ParseStatus("status")
		if err != nil {
			return nil, err
		}
		var inColumn []models.Ticket
		for _, t := range tickets {
			if t.Status == status {
				inColumn = append(inColumn, t)
			}
		}
		tickets = inColumn
	}

	if sortBy := args.GetString("sort", ""); sortBy != "" {
		tickets = sorters[sortBy](tickets)
	}

	now := c.App.Now()
	out := &ListView{Tickets: make([]*View, 0, len(tickets)), Total: len(state.Board.Tickets)}
	for _, t := range tickets {
		out.Tickets = append(out.Tickets, NewView(t, now))
	}
	out.Visible = len(out.Tickets)
	return out, nil
}
