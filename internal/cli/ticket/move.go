package ticket

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/handler"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
)

// MoveCmd returns the ticket move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <target>",
		Short: "Move a ticket to another column",
		Long: `Move a ticket to another column by direction or status.
Column limits are enforced unless --force is given.

Examples:
  # Move to next column
  kanban ticket move TICKET-1 next

  # Move to previous column
  kanban ticket move TICKET-1 prev

  # Move to specific column by status or title (case-insensitive)
  kanban ticket move TICKET-1 in-review
  kanban ticket move TICKET-1 "In Progress"

  # Ignore the column limit
  kanban ticket move TICKET-1 in-progress --force
`,
		Args: cobra.ExactArgs(2),
		RunE: handler.SimpleCommand(handler.Func(runMove)),
	}

	cmd.Flags().Bool("force", false, "Move even if the target column is full")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runMove(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	id, err := args.Parser().ParseTicketID(args.Args)
	if err != nil {
		return nil, err
	}

	store := c.App.Store
	t, ok := store.Ticket(id)
	if !ok {
		return nil, notFound(id)
	}

	target, err := resolveTarget(store.Board(), t.Status, args.Args[1])
	if err != nil {
		return nil, err
	}

	if args.GetBool("force") {
		if t.Status == target {
			return nil, sameColumn(target)
		}
		store.MoveTicket(id, target)
	} else if err := store.TryMoveTicket(id, target); err != nil {
		return nil, moveError(err, target)
	}

	moved, _ := store.Ticket(id)
	view := NewView(moved, c.App.Now())
	view.Message = fmt.Sprintf("Ticket %s moved from %s to %s", id, t.Status.Label(), target.Label())
	return view, nil
}

// resolveTarget turns next, prev, a status, or a column title into a status
func resolveTarget(board models.Board, current models.Status, raw string) (models.Status, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "next", "prev":
		pos := -1
		for i, col := range board.Columns {
			if col.Status == current {
				pos = i
				break
			}
		}
		if strings.EqualFold(raw, "next") {
			if pos < 0 || pos == len(board.Columns)-1 {
				return "", cli.Fail(cli.ExitValidation, "NO_NEXT_COLUMN",
					fmt.Sprintf("ticket is already in the last column (%s)", current.Label()))
			}
			return board.Columns[pos+1].Status, nil
		}
		if pos <= 0 {
			return "", cli.Fail(cli.ExitValidation, "NO_PREV_COLUMN",
				fmt.Sprintf("ticket is already in the first column (%s)", current.Label()))
		}
		return board.Columns[pos-1].Status, nil
	}

	for _, col := range board.Columns {
		if strings.EqualFold(col.Title, strings.TrimSpace(raw)) {
			return col.Status, nil
		}
	}
	s, err := cli.ParseStatus(raw)
	if err != nil {
		return "", cli.Fail(cli.ExitValidation, "INVALID_STATUS", err.Error()).Wrap(err)
	}
	return s, nil
}

func sameColumn(target models.Status) *cli.CommandError {
	return cli.Fail(cli.ExitValidation, "SAME_COLUMN",
		fmt.Sprintf("ticket is already in %s", target.Label())).Wrap(models.ErrSameColumn)
}

func moveError(err error, target models.Status) *cli.CommandError {
	switch {
	case errors.Is(err, models.ErrTicketNotFound):
		return cli.Fail(cli.ExitNotFound, "TICKET_NOT_FOUND", err.Error()).Wrap(err)
	case errors.Is(err, models.ErrSameColumn):
		return sameColumn(target)
	case errors.Is(err, models.ErrColumnFull):
		return cli.Fail(cli.ExitValidation, "COLUMN_FULL", err.Error()).Wrap(err).
			WithSuggestion("Move a ticket out of the column first, or pass --force")
	case errors.Is(err, models.ErrUnknownColumn):
		return cli.Fail(cli.ExitValidation, "UNKNOWN_COLUMN", err.Error()).Wrap(err)
	}
	return cli.Fail(cli.ExitError, "MOVE_FAILED", err.Error()).Wrap(err)
}
