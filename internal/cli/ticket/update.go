package ticket

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/handler"
)

// UpdateCmd returns the ticket update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update ticket fields",
		Long: `Update one or more fields of a ticket. Only the flags given are changed.
Changing --status here ignores column limits, like the board's own editor.

Examples:
  kanban ticket update TICKET-1 --title="New title"
  kanban ticket update TICKET-1 --priority=urgent --assignee=Bob
  kanban ticket update TICKET-1 --due=none --estimate=none
  echo "New description" | kanban ticket update TICKET-1 --description=-
`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.SimpleCommand(handler.Func(runUpdate)),
	}

	cmd.Flags().String("id", "", "Ticket ID (can also be provided as positional argument)")
	cmd.Flags().String("title", "", "New ticket title")
	addTicketFlags(cmd)

	handler.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	parser := args.Parser()
	id, err := parser.ParseTicketID(args.Args)
	if err != nil {
		return nil, err
	}

	u, err := parser.TicketUpdate()
	if err != nil {
		return nil, err
	}
	if u.IsEmpty() {
		return nil, cli.Fail(cli.ExitUsage, "NOTHING_TO_UPDATE", "no fields to update").
			WithSuggestion("Pass at least one of --title, --description, --status, --priority, --assignee, --due, --estimate, --tag")
	}

	if _, ok := c.App.Store.Ticket(id); !ok {
		return nil, notFound(id)
	}
	if !c.App.Store.UpdateTicket(id, u) {
		return nil, cli.Fail(cli.ExitValidation, "UPDATE_REJECTED", fmt.Sprintf("update of ticket %s was rejected", id))
	}

	t, _ := c.App.Store.Ticket(id)
	view := NewView(t, c.App.Now())
	view.Message = fmt.Sprintf("Ticket %s updated successfully", id)
	return view, nil
}
