package filters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/app"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
	clitest "github.com/Pranshu640/Kanban-Ticketing-System/internal/testutil/cli"
)

func populate(t *testing.T) *app.App {
	t.Helper()
	a := clitest.SetupCLITest(t)
	past := a.Now().Add(-24 * time.Hour)
	a.Store.CreateTicket(models.TicketDraft{Title: "Fix login bug", Priority: models.PriorityHigh, Assignee: "Alice", Tags: []string{"auth"}})
	a.Store.CreateTicket(models.TicketDraft{Title: "Write docs", Priority: models.PriorityLow, Assignee: "Bob", Tags: []string{"docs"}})
	a.Store.CreateTicket(models.TicketDraft{Title: "Rotate keys", Priority: models.PriorityUrgent, DueDate: &past, Tags: []string{"auth", "ops"}})
	return a
}

func TestSetFilters(t *testing.T) {
	a := populate(t)

	res, err := clitest.ExecuteCLICommand(t, a, SetCmd(), []string{"--search", "LOGIN", "--json"})
	require.NoError(t, err)
	data := clitest.ParseJSON(t, res.Stdout)["data"].(map[string]any)
	assert.Equal(t, "LOGIN", data["search"])
	assert.Equal(t, float64(1), data["visible"])
	assert.Equal(t, float64(3), data["total"])

	// Other axes are merged in, search is kept
	_, err = clitest.ExecuteCLICommand(t, a, SetCmd(), []string{"--priority", "high,urgent", "--quiet"})
	require.NoError(t, err)
	f := a.Store.Filters()
	assert.Equal(t, "LOGIN", f.Search)
	assert.Equal(t, []models.Priority{models.PriorityHigh, models.PriorityUrgent}, f.Priorities)

	stored := a.Adapter.LoadFilters(t.Context())
	require.NotNil(t, stored)
	assert.Equal(t, f, *stored)
}

func TestSetFilters_OverdueAndTags(t *testing.T) {
	a := populate(t)

	_, err := clitest.ExecuteCLICommand(t, a, SetCmd(), []string{"--overdue", "--quiet"})
	require.NoError(t, err)
	visible := a.Store.Snapshot().FilteredTickets
	require.Len(t, visible, 1)
	assert.Equal(t, "Rotate keys", visible[0].Title)

	_, err = clitest.ExecuteCLICommand(t, a, SetCmd(), []string{"--overdue=false", "--tag", "auth", "--quiet"})
	require.NoError(t, err)
	assert.Len(t, a.Store.Snapshot().FilteredTickets, 2)

	_, err = clitest.ExecuteCLICommand(t, a, SetCmd(), []string{"--tag=", "--quiet"})
	require.NoError(t, err)
	assert.Empty(t, a.Store.Filters().Tags)
	assert.Len(t, a.Store.Snapshot().FilteredTickets, 3)
}

func TestSetFilters_Negative(t *testing.T) {
	a := populate(t)

	_, err := clitest.ExecuteCLICommand(t, a, SetCmd(), nil)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeOf(err))

	_, err = clitest.ExecuteCLICommand(t, a, SetCmd(), []string{"--status", "blocked"})
	assert.Equal(t, cli.ExitValidation, cli.ExitCodeOf(err))
	assert.True(t, a.Store.Filters().IsEmpty())
}

func TestClearAndShowFilters(t *testing.T) {
	a := populate(t)
	search := "docs"
	a.Store.SetFilters(models.FilterUpdate{Search: &search})

	res, err := clitest.ExecuteCLICommand(t, a, ShowCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, `"docs"`)
	assert.Contains(t, res.Stdout, "1 of 3 tickets visible")

	res, err = clitest.ExecuteCLICommand(t, a, ClearCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "Filters cleared")
	assert.True(t, a.Store.Filters().IsEmpty())
	assert.Len(t, a.Store.Snapshot().FilteredTickets, 3)
}

func TestFacets(t *testing.T) {
	a := populate(t)

	res, err := clitest.ExecuteCLICommand(t, a, FacetsCmd(), []string{"--json"})
	require.NoError(t, err)
	data := clitest.ParseJSON(t, res.Stdout)["data"].(map[string]any)
	assert.Equal(t, []any{"Alice", "Bob"}, data["assignees"])
	assert.Equal(t, []any{"auth", "docs", "ops"}, data["tags"])
	assert.Len(t, data["priorities"], 4)
}
