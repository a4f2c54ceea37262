// Package core runs the board viewer as a bubbletea program
package core

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/app"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/tui"
)

// App is the tea.Model handed to the program. It keeps the latest tui.Model
// so the caller can inspect it after the program exits.
type App struct {
	model *tui.Model
	board *app.App
}

// New creates the viewer over an opened board
func New(ctx context.Context, a *app.App) *App {
	model := tui.InitialModel(ctx, a)
	return &App{model: &model, board: a}
}

// Init starts listening for board changes
func (a *App) Init() tea.Cmd {
	return a.model.Init()
}

// Update delegates to tui.Model and keeps the returned value
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedModel, cmd := a.model.Update(msg)
	if m, ok := updatedModel.(tui.Model); ok {
		*a.model = m
	}
	return a, cmd
}

// View renders the current model
func (a *App) View() tea.View {
	return a.model.View()
}

// Model returns the current tui.Model
func (a *App) Model() *tui.Model {
	return a.model
}

// Run shows the board on the terminal until the user quits or ctx is
// cancelled. Pending saves are flushed before it returns.
func Run(ctx context.Context, a *app.App, opts ...tea.ProgramOption) error {
	viewer := New(ctx, a)
	p := tea.NewProgram(viewer, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)
	_, err := p.Run()
	a.Flush(context.Background())

	if err != nil && !(errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
