package backup

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
)

const utf8BOM = "\ufeff"

// TagSeparator joins a ticket's tags into one cell
const TagSeparator = "; "

// CSVHeader is the fixed header row of the ticket export
var CSVHeader = []string{
	"ID", "Title", "Description", "Status", "Priority", "Assignee",
	"Created At", "Updated At", "Due Date", "Completed At", "Estimated Hours", "Tags",
}

// CSVFileName is the suggested name of a ticket export taken at now
func CSVFileName(now time.Time) string {
	return "kanban-tickets-" + now.UTC().Format(time.DateOnly) + ".csv"
}

// WriteCSV writes one row per ticket for spreadsheet use. The output starts
// with a UTF-8 byte order mark. There is no CSV import.
func WriteCSV(w io.Writer, tickets []models.Ticket) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, t := range tickets {
		if err := cw.Write(csvRow(t)); err != nil {
			return fmt.Errorf("failed to write ticket %s: %w", t.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

func csvRow(t models.Ticket) []string {
	return []string{
		t.ID.String(),
		t.Title,
		t.Description,
		t.Status.String(),
		t.Priority.String(),
		t.Assignee,
		csvTime(&t.CreatedAt),
		csvTime(&t.UpdatedAt),
		csvTime(t.DueDate),
		csvTime(t.CompletedAt),
		csvHours(t.EstimatedHours),
		strings.Join(t.Tags, TagSeparator),
	}
}

func csvTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func csvHours(h *float64) string {
	if h == nil {
		return ""
	}
	return strconv.FormatFloat(*h, 'f', -1, 64)
}
