// Package backup holds the commands that export and restore the board
package backup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	kbackup "github.com/Pranshu640/Kanban-Ticketing-System/internal/backup"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/handler"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/styles"
)

// stdio selects standard input or output instead of a file
const stdio = "-"

// BackupCmd returns the backup parent command
func BackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export and restore the board",
		Long: `Export the saved board, filters and theme to a JSON document, restore
one, or export the tickets as CSV for spreadsheets.

Examples:
  kanban backup export
  kanban backup export --output - > board.json
  kanban backup import board.json
  kanban backup csv --output tickets.csv`,
	}

	cmd.AddCommand(ExportCmd())
	cmd.AddCommand(ImportCmd())
	cmd.AddCommand(CSVCmd())

	return cmd
}

// Result is the output of an export or import
type Result struct {
	Path    string `json:"path"`
	Keys    int    `json:"keys,omitempty"`
	Tickets int    `json:"tickets"`

	message string
}

// GetID returns the file written or read, for quiet output
func (r *Result) GetID() string {
	return r.Path
}

// Render prints the summary line
func (r *Result) Render(w io.Writer) error {
	_, err := fmt.Fprintln(w, styles.SuccessStyle.Render("✓ ")+r.message)
	return err
}

// ============================================================================
// EXPORT
// ============================================================================

// ExportCmd returns the backup export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON backup of the saved board",
		Long: `Write every saved key to a JSON document. Without --output the file is
named after today's date and written to the current directory.`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.Func(runExport)),
	}
	cmd.Flags().StringP("output", "o", "", `Output file ("-" for stdout)`)
	handler.AddOutputFlags(cmd)
	return cmd
}

func runExport(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	// A corrupt stored board is exported as is rather than replaced first
	if !c.App.Boot.Corrupt {
		c.App.Flush(ctx)
	}

	doc, err := c.App.Backup.Export(ctx)
	if err != nil {
		return nil, failure(cli.ExitDataErr, "EXPORT_FAILED", err)
	}

	path := args.GetString("output", "")
	if path == "" {
		path = kbackup.FileName(c.App.Now())
	}
	if path == stdio {
		if err := kbackup.WriteJSON(args.GetCmd().OutOrStdout(), doc); err != nil {
			return nil, failure(cli.ExitError, "EXPORT_FAILED", err)
		}
		return nil, nil
	}

	if err := writeFile(path, func(w io.Writer) error { return kbackup.WriteJSON(w, doc) }); err != nil {
		return nil, err
	}
	return &Result{
		Path:    path,
		Keys:    len(doc),
		Tickets: len(c.App.Store.Board().Tickets),
		message: fmt.Sprintf("Backup written to %s (%d keys)", path, len(doc)),
	}, nil
}

// ============================================================================
// IMPORT
// ============================================================================

// ImportCmd returns the backup import subcommand
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Restore a JSON backup",
		Long: `Replace the saved board, filters and theme with the contents of a backup.
The document is checked completely before anything is written; a rejected
backup leaves the board untouched. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: handler.SimpleCommand(handler.Func(runImport)),
	}
	handler.AddOutputFlags(cmd)
	return cmd
}

func runImport(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	path := args.Args[0]

	var r io.Reader = args.Stdin()
	if path != stdio {
		f, err := os.Open(path)
		if err != nil {
			return nil, failure(cli.ExitNotFound, "FILE_NOT_FOUND", err).
				WithSuggestion("Check the path of the backup file")
		}
		defer f.Close()
		r = f
	}

	if err := c.App.Restore(ctx, r); err != nil {
		return nil, importError(err)
	}
	return &Result{
		Path:    path,
		Tickets: len(c.App.Store.Board().Tickets),
		message: fmt.Sprintf("Backup restored from %s (%d tickets)", path, len(c.App.Store.Board().Tickets)),
	}, nil
}

func importError(err error) *cli.CommandError {
	switch {
	case errors.Is(err, kbackup.ErrInvalidDocument),
		errors.Is(err, kbackup.ErrMissingKey),
		errors.Is(err, kbackup.ErrUnknownKey),
		errors.Is(err, kbackup.ErrInvalidValue):
		return failure(cli.ExitDataErr, "INVALID_BACKUP", err).
			WithSuggestion("Only files written by 'kanban backup export' can be restored")
	default:
		return failure(cli.ExitError, "IMPORT_FAILED", err)
	}
}

// ============================================================================
// CSV
// ============================================================================

// CSVCmd returns the backup csv subcommand
func CSVCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export the tickets as CSV",
		Long: `Write one row per ticket for use in spreadsheets. Filters are ignored
unless --filtered is given. CSV files cannot be imported.`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.Func(runCSV)),
	}
	cmd.Flags().StringP("output", "o", "", `Output file ("-" for stdout)`)
	cmd.Flags().Bool("filtered", false, "Only export tickets that pass the active filters")
	handler.AddOutputFlags(cmd)
	return cmd
}

func runCSV(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	state := c.App.Store.Snapshot()
	tickets := state.Board.Tickets
	if args.GetBool("filtered") {
		tickets = state.FilteredTickets
	}

	path := args.GetString("output", "")
	if path == "" {
		path = kbackup.CSVFileName(c.App.Now())
	}
	if path == stdio {
		if err := kbackup.WriteCSV(args.GetCmd().OutOrStdout(), tickets); err != nil {
			return nil, failure(cli.ExitError, "EXPORT_FAILED", err)
		}
		return nil, nil
	}

	if err := writeFile(path, func(w io.Writer) error { return kbackup.WriteCSV(w, tickets) }); err != nil {
		return nil, err
	}
	return &Result{
		Path:    path,
		Tickets: len(tickets),
		message: fmt.Sprintf("%d tickets written to %s", len(tickets), path),
	}, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return failure(cli.ExitError, "EXPORT_FAILED", err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return failure(cli.ExitError, "EXPORT_FAILED", err)
	}
	if err := f.Close(); err != nil {
		return failure(cli.ExitError, "EXPORT_FAILED", err)
	}
	return nil
}

func failure(exitCode int, code string, err error) *cli.CommandError {
	return cli.Fail(exitCode, code, err.Error()).Wrap(err)
}
