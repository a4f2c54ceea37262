// Package theme holds the commands that pick the board colors
package theme

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/app"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/handler"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/styles"
	ktheme "github.com/Pranshu640/Kanban-Ticketing-System/internal/theme"
)

// ThemeCmd returns the theme parent command
func ThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the color theme",
		Long: `The theme is saved with the board and used by both the CLI and the TUI.

Examples:
  kanban theme list
  kanban theme set dark`,
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(SetCmd())

	return cmd
}

// View is the output shape of one theme
type View struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Current bool   `json:"current"`

	palette ktheme.Palette
	message string
}

// GetID returns the theme id for quiet output
func (v *View) GetID() string {
	return v.ID
}

func newView(p ktheme.Palette, current string) *View {
	return &View{ID: p.ID, Name: p.Name, Current: p.ID == current, palette: p}
}

// Render prints the theme name followed by a row of color swatches
func (v *View) Render(w io.Writer) error {
	if v.message != "" {
		fmt.Fprintln(w, styles.SuccessStyle.Render("✓ ")+v.message)
	}
	marker := "  "
	if v.Current {
		marker = "* "
	}
	_, err := fmt.Fprintf(w, "%s%-8s %-12s %s\n", marker, v.ID, v.Name, swatches(v.palette))
	return err
}

func swatches(p ktheme.Palette) string {
	colors := []string{p.Primary, p.Secondary, p.Accent, p.Success, p.Warning, p.Error, p.Info}
	parts := make([]string, len(colors))
	for i, c := range colors {
		parts[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("●")
	}
	return strings.Join(parts, " ")
}

// ListView is the output shape of all themes
type ListView struct {
	Themes []*View `json:"themes"`
}

// Render prints one line per theme
func (l *ListView) Render(w io.Writer) error {
	for _, v := range l.Themes {
		if err := v.Render(w); err != nil {
			return err
		}
	}
	return nil
}

// ListCmd returns the theme list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.Func(func(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
			current := c.App.Theme(ctx)
			out := &ListView{}
			for _, id := range ktheme.IDs() {
				out.Themes = append(out.Themes, newView(ktheme.Get(id), current))
			}
			return out, nil
		})),
	}
	handler.AddOutputFlags(cmd)
	return cmd
}

// ShowCmd returns the theme show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current theme",
		Args:  cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.Func(func(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
			current := c.App.Theme(ctx)
			return newView(c.App.Palette(ctx), current), nil
		})),
	}
	handler.AddOutputFlags(cmd)
	return cmd
}

// SetCmd returns the theme set subcommand
func SetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "set <theme>",
		Short:     "Change the color theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: ktheme.IDs(),
		RunE:      handler.SimpleCommand(handler.Func(runSet)),
	}
	handler.AddOutputFlags(cmd)
	return cmd
}

func runSet(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	id := strings.ToLower(strings.TrimSpace(args.Args[0]))
	if err := c.App.SetTheme(ctx, id); err != nil {
		if errors.Is(err, app.ErrUnknownTheme) {
			return nil, cli.Fail(cli.ExitValidation, "INVALID_THEME", fmt.Sprintf("unknown theme %q", id)).
				WithSuggestion("Valid themes: " + strings.Join(ktheme.IDs(), ", "))
		}
		return nil, cli.Fail(cli.ExitError, "THEME_NOT_SAVED", err.Error()).Wrap(err)
	}

	palette := c.App.Palette(ctx)
	styles.Init(palette)

	v := newView(palette, id)
	v.message = fmt.Sprintf("Theme set to %s", palette.Name)
	return v, nil
}
