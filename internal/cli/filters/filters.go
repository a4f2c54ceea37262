// Package filters holds the commands that change which tickets are visible
package filters

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/handler"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/styles"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/filter"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
)

// FilterCmd returns the filter parent command
func FilterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Manage the active ticket filters",
		Long: `Filters narrow the tickets shown on the board and by "kanban ticket list".
They are saved with the board and stay active until cleared.`,
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(SetCmd())
	cmd.AddCommand(ClearCmd())
	cmd.AddCommand(FacetsCmd())

	return cmd
}

// View is the output shape of the active criteria
type View struct {
	Search     string   `json:"search"`
	Priorities []string `json:"priorities"`
	Assignees  []string `json:"assignees"`
	Statuses   []string `json:"statuses"`
	Tags       []string `json:"tags"`
	Overdue    bool     `json:"overdue"`
	Visible    int      `json:"visible"`
	Total      int      `json:"total"`

	Message string `json:"-"`
}

func newView(c *cli.CLI) *View {
	state := c.App.Store.Snapshot()
	f := state.Filters
	return &View{
		Search:     f.Search,
		Priorities: stringsOf(f.Priorities),
		Assignees:  orEmpty(f.Assignees),
		Statuses:   stringsOf(f.Statuses),
		Tags:       orEmpty(f.Tags),
		Overdue:    f.Overdue,
		Visible:    len(state.FilteredTickets),
		Total:      len(state.Board.Tickets),
	}
}

// Render prints one line per active axis
func (v *View) Render(w io.Writer) error {
	if v.Message != "" {
		fmt.Fprintln(w, styles.SuccessStyle.Render("✓ ")+v.Message)
	}
	rows := []struct {
		label string
		value string
	}{
		{"Search:", quoteOrEmpty(v.Search)},
		{"Priorities:", strings.Join(v.Priorities, ", ")},
		{"Statuses:", strings.Join(v.Statuses, ", ")},
		{"Assignees:", strings.Join(v.Assignees, ", ")},
		{"Tags:", strings.Join(v.Tags, ", ")},
	}
	for _, r := range rows {
		value := r.value
		if value == "" {
			value = styles.SubtitleStyle.Render("any")
		}
		fmt.Fprintf(w, "%s %s\n", styles.LabelStyle.Render(r.label), value)
	}
	if v.Overdue {
		fmt.Fprintf(w, "%s %s\n", styles.LabelStyle.Render("Overdue:"), styles.ErrorStyle.Render("only overdue tickets"))
	}
	_, err := fmt.Fprintln(w, styles.SubtitleStyle.Render(fmt.Sprintf("%d of %d tickets visible", v.Visible, v.Total)))
	return err
}

// ShowCmd returns the filter show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the active filters",
		Args:  cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.Func(func(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
			return newView(c), nil
		})),
	}
	handler.AddOutputFlags(cmd)
	return cmd
}

// SetCmd returns the filter set subcommand
func SetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the active filters",
		Long: `Change one or more filter axes. Axes that are not given keep their value;
pass an empty value (e.g. --tag="") to lift the restriction on that axis.

Examples:
  kanban filter set --search=login
  kanban filter set --priority=high,urgent --status=in-progress
  kanban filter set --assignee=Alice --assignee=Bob
  kanban filter set --overdue
  kanban filter set --overdue=false
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.Func(runSet)),
	}

	cmd.Flags().String("search", "", "Case-insensitive text matched against title, description, assignee and tags")
	cmd.Flags().StringSlice("priority", nil, "Priorities to show: low, medium, high, urgent")
	cmd.Flags().StringSlice("status", nil, "Statuses to show: todo, in-progress, in-review, done")
	cmd.Flags().StringSlice("assignee", nil, "Assignees to show")
	cmd.Flags().StringSlice("tag", nil, "Show tickets carrying any of these tags")
	cmd.Flags().Bool("overdue", false, "Show only overdue tickets")

	handler.AddOutputFlags(cmd)
	return cmd
}

func runSet(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	u, err := args.Parser().FilterUpdate()
	if err != nil {
		return nil, err
	}
	if u == (models.FilterUpdate{}) {
		return nil, cli.Fail(cli.ExitUsage, "NOTHING_TO_SET", "no filter flags given").
			WithSuggestion("Pass at least one of --search, --priority, --status, --assignee, --tag, --overdue")
	}

	c.App.Store.SetFilters(u)
	v := newView(c)
	v.Message = "Filters updated"
	return v, nil
}

// ClearCmd returns the filter clear subcommand
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear every filter so all tickets are visible",
		Args:  cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.Func(func(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
			c.App.Store.ClearFilters()
			v := newView(c)
			v.Message = "Filters cleared"
			return v, nil
		})),
	}
	handler.AddOutputFlags(cmd)
	return cmd
}

// Facets lists the values the filter axes can take on the current board
type Facets struct {
	Assignees  []string `json:"assignees"`
	Tags       []string `json:"tags"`
	Priorities []string `json:"priorities"`
	Statuses   []string `json:"statuses"`
}

// Render prints each facet on one line
func (f *Facets) Render(w io.Writer) error {
	for _, row := range []struct {
		label  string
		values []string
	}{
		{"Assignees:", f.Assignees},
		{"Tags:", f.Tags},
		{"Priorities:", f.Priorities},
		{"Statuses:", f.Statuses},
	} {
		if _, err := fmt.Fprintf(w, "%s %s\n", styles.LabelStyle.Render(row.label), strings.Join(row.values, ", ")); err != nil {
			return err
		}
	}
	return nil
}

// FacetsCmd returns the filter facets subcommand
func FacetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "facets",
		Short: "List the assignees and tags present on the board",
		Args:  cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.Func(func(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
			tickets := c.App.Store.Board().Tickets
			return &Facets{
				Assignees:  orEmpty(filter.UniqueAssignees(tickets)),
				Tags:       orEmpty(filter.UniqueTags(tickets)),
				Priorities: stringsOf(models.AllPriorities()),
				Statuses:   stringsOf(models.AllStatuses()),
			}, nil
		})),
	}
	handler.AddOutputFlags(cmd)
	return cmd
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func quoteOrEmpty(s string) string {
	if s == "" {
		return ""
	}
	return fmt.Sprintf("%q", s)
}
