package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/persistence"
	clitest "github.com/Pranshu640/Kanban-Ticketing-System/internal/testutil/cli"
)

func TestExportImportRoundTrip(t *testing.T) {
	source := clitest.SetupCLITest(t)
	source.Store.CreateTicket(models.TicketDraft{Title: "Fix login bug", Priority: models.PriorityHigh, Tags: []string{"auth"}})
	source.Store.CreateTicket(models.TicketDraft{Title: "Write docs", Status: models.StatusDone})
	search := "login"
	source.Store.SetFilters(models.FilterUpdate{Search: &search})

	path := filepath.Join(t.TempDir(), "board.json")
	res, err := clitest.ExecuteCLICommand(t, source, ExportCmd(), []string{"--output", path, "--json"})
	require.NoError(t, err)
	data := clitest.ParseJSON(t, res.Stdout)["data"].(map[string]any)
	assert.Equal(t, path, data["path"])
	assert.Equal(t, float64(2), data["keys"])

	target := clitest.SetupCLITest(t)
	res, err = clitest.ExecuteCLICommand(t, target, ImportCmd(), []string{path})
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "Backup restored from")

	assert.Len(t, target.Store.Board().Tickets, 2)
	assert.Equal(t, "login", target.Store.Filters().Search)
	assert.Len(t, target.Store.Snapshot().FilteredTickets, 1)
}

func TestExport_Stdout(t *testing.T) {
	app := clitest.SetupCLITest(t)
	clitest.CreateTestTicket(t, app, "Only ticket")

	res, err := clitest.ExecuteCLICommand(t, app, ExportCmd(), []string{"--output", "-"})
	require.NoError(t, err)

	doc := clitest.ParseJSON(t, res.Stdout)
	assert.Contains(t, doc, persistence.BoardKey)
	assert.Contains(t, doc, persistence.FiltersKey)
	assert.Contains(t, doc[persistence.BoardKey], "Only ticket")
}

func TestImport_FromStdin(t *testing.T) {
	source := clitest.SetupCLITest(t)
	clitest.CreateTestTicket(t, source, "Piped")
	res, err := clitest.ExecuteCLICommand(t, source, ExportCmd(), []string{"-o", "-"})
	require.NoError(t, err)

	target := clitest.SetupCLITest(t)
	_, err = clitest.ExecuteCLICommandWithInput(t, target, ImportCmd(), []string{"-", "--quiet"}, res.Stdout)
	require.NoError(t, err)
	require.Len(t, target.Store.Board().Tickets, 1)
	assert.Equal(t, "Piped", target.Store.Board().Tickets[0].Title)
}

func TestImport_RejectedLeavesBoardUntouched(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "not a backup"},
		{"missing filters", `{"kanban-board-data":"{}"}`},
		{"unknown key", `{"kanban-board-data":"{}","kanban-filters":"{}","other":"x"}`},
		{"corrupt board", `{"kanban-board-data":"{oops","kanban-filters":"{}"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := clitest.SetupCLITest(t)
			clitest.CreateTestTicket(t, app, "Keep me")

			res, err := clitest.ExecuteCLICommandWithInput(t, app, ImportCmd(), []string{"-", "--json"}, tt.input)
			require.Error(t, err)
			assert.Equal(t, cli.ExitDataErr, cli.ExitCodeOf(err))

			out := clitest.ParseJSON(t, res.Stdout)
			assert.Equal(t, false, out["success"])
			assert.Equal(t, "INVALID_BACKUP", out["error"].(map[string]any)["code"])

			require.Len(t, app.Store.Board().Tickets, 1)
			assert.Equal(t, "Keep me", app.Store.Board().Tickets[0].Title)
		})
	}
}

func TestImport_MissingFile(t *testing.T) {
	app := clitest.SetupCLITest(t)
	_, err := clitest.ExecuteCLICommand(t, app, ImportCmd(), []string{filepath.Join(t.TempDir(), "nope.json")})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeOf(err))
}

func TestCSV(t *testing.T) {
	app := clitest.SetupCLITest(t)
	app.Store.CreateTicket(models.TicketDraft{Title: "Fix, with comma", Tags: []string{"a", "b"}})
	app.Store.CreateTicket(models.TicketDraft{Title: "Other"})

	t.Run("stdout", func(t *testing.T) {
		res, err := clitest.ExecuteCLICommand(t, app, CSVCmd(), []string{"-o", "-"})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(res.Stdout, "\ufeffID,Title,"))
		assert.Contains(t, res.Stdout, `"Fix, with comma"`)
		assert.Contains(t, res.Stdout, "a; b")
	})

	t.Run("filtered file", func(t *testing.T) {
		search := "other"
		app.Store.SetFilters(models.FilterUpdate{Search: &search})
		defer app.Store.ClearFilters()

		path := filepath.Join(t.TempDir(), "tickets.csv")
		res, err := clitest.ExecuteCLICommand(t, app, CSVCmd(), []string{"-o", path, "--filtered", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, path+"\n", res.Stdout)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(content)), "\n")
		assert.Len(t, lines, 2)
	})
}
