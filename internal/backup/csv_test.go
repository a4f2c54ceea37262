package backup

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
)

func TestWriteCSV(t *testing.T) {
	due := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	hours := 1.5
	tickets := []models.Ticket{
		{
			ID:             "TICKET-1",
			Title:          `Fix "login", again`,
			Description:    "line one\nline two",
			Status:         models.StatusInProgress,
			Priority:       models.PriorityHigh,
			Assignee:       "Alice",
			CreatedAt:      now,
			UpdatedAt:      now.Add(time.Hour),
			DueDate:        &due,
			EstimatedHours: &hours,
			Tags:           []string{"bug", "auth"},
		},
		{
			ID:        "TICKET-2",
			Title:     "Plain",
			Status:    models.StatusTodo,
			Priority:  models.PriorityLow,
			CreatedAt: now,
			UpdatedAt: now,
			Tags:      []string{},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tickets))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, "\ufeff"), "export starts with a BOM")
	assert.True(t, strings.HasPrefix(out, "\ufeffID,Title,Description,Status,Priority,Assignee,Created At,Updated At,Due Date,Completed At,Estimated Hours,Tags\n"))
	assert.Contains(t, out, `"Fix ""login"", again"`)
	assert.Contains(t, out, "\"line one\nline two\"")

	rows, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(out, "\ufeff"))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, CSVHeader, rows[0])
	assert.Equal(t, []string{
		"TICKET-1", `Fix "login", again`, "line one\nline two", "in-progress", "high", "Alice",
		"2026-10-16T08:30:00Z", "2026-10-16T09:30:00Z", "2026-10-20T00:00:00Z", "", "1.5", "bug; auth",
	}, rows[1])
	assert.Equal(t, []string{
		"TICKET-2", "Plain", "", "todo", "low", "",
		"2026-10-16T08:30:00Z", "2026-10-16T08:30:00Z", "", "", "", "",
	}, rows[2])
}

func TestWriteCSV_NoTickets(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(buf.String(), "\ufeff")), "\n")
	assert.Len(t, lines, 1, "header only")
}
