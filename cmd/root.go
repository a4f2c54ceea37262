package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/backup"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/board"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/filters"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/theme"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/ticket"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/launcher"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kanban",
		Short: "Kanban - A terminal-based ticket board",
		Long: `Kanban is a terminal-based ticket board with four workflow columns,
WIP limits, filtering, and JSON backups.

Run without a subcommand to open the interactive board.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch()
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "tui",
		Short: "Open the interactive board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch()
		},
	})
	root.AddCommand(ticket.TicketCmd())
	root.AddCommand(filters.FilterCmd())
	root.AddCommand(board.BoardCmd())
	root.AddCommand(backup.BackupCmd())
	root.AddCommand(theme.ThemeCmd())

	return root
}

// Execute runs the root command and returns the process exit code.
// Command errors have already been reported by their handler.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return cli.ExitSuccess
	}
	var cmdErr *cli.CommandError
	if !errors.As(err, &cmdErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return cli.ExitCodeOf(err)
}
