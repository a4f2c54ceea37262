// Package cli runs cobra commands against a test App
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/app"
	kcli "github.com/Pranshu640/Kanban-Ticketing-System/internal/cli"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/testutil"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/types"
)

// Result holds what a command printed
type Result struct {
	Stdout string
	Stderr string
}

// SetupCLITest creates an App over an in-memory store with an empty board
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()
	a, _ := testutil.SetupTestApp(t)
	return a
}

// CreateTestTicket adds a todo ticket straight through the store
func CreateTestTicket(t *testing.T, a *app.App, title string) types.TicketID {
	t.Helper()
	return a.Store.CreateTicket(models.TicketDraft{Title: title})
}

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app is passed through the context so commands do not open the
// configured store.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (Result, error) {
	t.Helper()
	return ExecuteCLICommandWithInput(t, testApp, cmd, args, "")
}

// ExecuteCLICommandWithInput is ExecuteCLICommand with stdin contents
func ExecuteCLICommandWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, stdin string) (Result, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(kcli.WithApp(context.Background(), testApp))
	return Result{Stdout: stdout.String(), Stderr: stderr.String()}, err
}

// ParseJSON decodes a JSON command response
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	return result
}
