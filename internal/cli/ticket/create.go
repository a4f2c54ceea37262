package ticket

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/handler"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
)

// CreateCmd returns the ticket create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new ticket",
		Long: `Create a new ticket. New tickets appear first in their column.
Column limits do not apply to new tickets.

Examples:
  # Simple ticket (human-readable output)
  kanban ticket create --title="Fix login bug"

  # JSON output for agents
  kanban ticket create --title="Fix login bug" --json

  # Quiet mode for bash capture
  TICKET_ID=$(kanban ticket create --title="Fix login bug" --quiet)

  # Full example with all options
  kanban ticket create \
    --title="Add authentication" \
    --description="Implement JWT auth" \
    --status=in-progress \
    --priority=high \
    --assignee=Alice \
    --due=2026-11-01 \
    --estimate=6 \
    --tag=backend,security
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.Func(runCreate), validateCreate),
	}

	// Required flags
	cmd.Flags().String("title", "", "Ticket title (required)")

	// Optional flags
	addTicketFlags(cmd)

	handler.AddOutputFlags(cmd)
	return cmd
}

// addTicketFlags registers the optional ticket field flags shared by create
// and update
func addTicketFlags(cmd *cobra.Command) {
	cmd.Flags().String("description", "", "Ticket description, markdown allowed (use - for stdin)")
	cmd.Flags().String("status", "todo", "Status: todo, in-progress, in-review, done")
	cmd.Flags().String("priority", "medium", "Priority: low, medium, high, urgent")
	cmd.Flags().String("assignee", "", "Person responsible for the ticket")
	cmd.Flags().String("due", "", "Due date as YYYY-MM-DD or RFC 3339 (none clears it)")
	cmd.Flags().String("estimate", "", "Estimated hours (none clears it)")
	cmd.Flags().StringSlice("tag", nil, "Tags, repeatable or comma separated")
}

func validateCreate(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseString("title")
	if err != nil {
		return cli.Fail(cli.ExitUsage, "MISSING_TITLE", "ticket title is required").
			WithSuggestion(`Usage: kanban ticket create --title="Fix login bug"`)
	}
	return nil
}

func runCreate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	parser := args.Parser()
	u, err := parser.TicketUpdate()
	if err != nil {
		return nil, err
	}

	draft := models.TicketDraft{
		Title:          *u.Title,
		Status:         models.StatusTodo,
		Priority:       models.DefaultPriority,
		DueDate:        u.DueDate,
		EstimatedHours: u.EstimatedHours,
		Tags:           []string{},
	}
	if u.Description != nil {
		draft.Description = *u.Description
	}
	if u.Status != nil {
		draft.Status = *u.Status
	}
	if u.Priority != nil {
		draft.Priority = *u.Priority
	}
	if u.Assignee != nil {
		draft.Assignee = *u.Assignee
	}
	if u.Tags != nil {
		draft.Tags = *u.Tags
	}

	id := c.App.Store.CreateTicket(draft)
	if id == "" {
		return nil, cli.Fail(cli.ExitValidation, "INVALID_STATUS",
			fmt.Sprintf("no column accepts status %q", draft.Status))
	}

	t, _ := c.App.Store.Ticket(id)
	view := NewView(t, c.App.Now())
	view.Message = fmt.Sprintf("Ticket '%s' created successfully (ID: %s)", t.Title, t.ID)
	return view, nil
}
