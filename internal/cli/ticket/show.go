package ticket

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/handler"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/types"
)

// ShowCmd returns the ticket show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show ticket details",
		Long:  "Display all details of a ticket, with the description rendered as markdown.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.SimpleCommand(handler.Func(runShow)),
	}

	// Flags
	cmd.Flags().String("id", "", "Ticket ID (can also be provided as positional argument)")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runShow(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	id, err := args.Parser().ParseTicketID(args.Args)
	if err != nil {
		return nil, err
	}

	t, ok := c.App.Store.Ticket(id)
	if !ok {
		return nil, notFound(id)
	}

	view := NewView(t, c.App.Now())
	view.Detailed = true
	return view, nil
}

func notFound(id types.TicketID) *cli.CommandError {
	return cli.Fail(cli.ExitNotFound, "TICKET_NOT_FOUND", fmt.Sprintf("ticket %s not found", id)).
		WithSuggestion("List ticket ids with: kanban ticket list --all")
}
