package ticket

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/handler"
)

// DeleteResult is the output of a delete
type DeleteResult struct {
	TicketID string `json:"ticketId"`
	Deleted  bool   `json:"deleted"`
}

// GetID returns the deleted ticket id for quiet output
func (d *DeleteResult) GetID() string {
	return d.TicketID
}

// DeleteCmd returns the ticket delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a ticket",
		Long:  "Delete a ticket by ID (requires confirmation unless --force, --json or --quiet).",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.SimpleCommand(handler.Func(runDelete)),
	}

	cmd.Flags().String("id", "", "Ticket ID (can also be provided as positional argument)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runDelete(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	id, err := args.Parser().ParseTicketID(args.Args)
	if err != nil {
		return nil, err
	}

	t, ok := c.App.Store.Ticket(id)
	if !ok {
		return nil, notFound(id)
	}

	// Ask for confirmation unless force or machine-readable output
	if !args.GetBool("force") && !args.GetBool("quiet") && !args.GetBool("json") {
		out := args.GetCmd().OutOrStdout()
		fmt.Fprintf(out, "Delete ticket %s: '%s'? (y/N): ", id, t.Title)
		response, _ := bufio.NewReader(args.Stdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(out, "Cancelled")
			return nil, nil
		}
	}

	c.App.Store.DeleteTicket(id)
	return &DeleteResult{TicketID: id.String(), Deleted: true}, nil
}

// Render prints the confirmation line
func (d *DeleteResult) Render(w io.Writer) error {
	_, err := fmt.Fprintf(w, "✓ Ticket %s deleted successfully\n", d.TicketID)
	return err
}
