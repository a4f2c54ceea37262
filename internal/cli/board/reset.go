package board

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/handler"
)

// ResetCmd returns the board reset subcommand
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the board with a fresh demo board",
		Long: `Replace every ticket with a freshly generated demo board and clear the
filters. This cannot be undone; export a backup first if needed.`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.Func(runReset)),
	}
	cmd.Flags().Bool("force", false, "Skip confirmation")
	handler.AddOutputFlags(cmd)
	return cmd
}

func runReset(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	if !args.GetBool("force") && !args.GetBool("quiet") && !args.GetBool("json") {
		out := args.GetCmd().OutOrStdout()
		fmt.Fprintf(out, "Replace all %d tickets with a demo board? (y/N): ", len(c.App.Store.Board().Tickets))
		response, _ := bufio.NewReader(args.Stdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(out, "Cancelled")
			return nil, nil
		}
	}

	if !c.App.Reset(ctx) {
		return nil, cli.Fail(cli.ExitError, "RESET_NOT_SAVED", "the board was reset but could not be saved")
	}
	return NewView(c.App.Store.Snapshot(), c.App.Now()), nil
}
