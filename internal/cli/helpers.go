package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
)

// ParsePriority maps a priority string to a Priority
func ParsePriority(raw string) (models.Priority, error) {
	p, ok := models.ParsePriority(strings.ToLower(strings.TrimSpace(raw)))
	if !ok {
		return "", fmt.Errorf("invalid priority '%s' (must be: %s)", raw, joinValues(models.AllPriorities()))
	}
	return p, nil
}

// ParseStatus maps a status string to a Status. Column titles such as
// "In Progress" are accepted as well.
func ParseStatus(raw string) (models.Status, error) {
	norm := strings.ToLower(strings.TrimSpace(raw))
	if s, ok := models.ParseStatus(norm); ok {
		return s, nil
	}
	for _, s := range models.AllStatuses() {
		if strings.EqualFold(s.Label(), norm) || strings.ReplaceAll(string(s), "-", " ") == norm {
			return s, nil
		}
	}
	return "", fmt.Errorf("invalid status '%s' (must be: %s)", raw, joinValues(models.AllStatuses()))
}

// ParseDueDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
// Calendar dates mean the end of that day in loc.
func ParseDueDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	d, err := time.ParseInLocation(time.DateOnly, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date '%s' (use YYYY-MM-DD or RFC 3339)", raw)
	}
	return d.Add(24*time.Hour - time.Second).UTC(), nil
}

// ParseHours parses a non-negative hour estimate
func ParseHours(raw string) (float64, error) {
	h, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || h < 0 {
		return 0, fmt.Errorf("invalid estimate '%s' (must be a non-negative number of hours)", raw)
	}
	return h, nil
}

// ParseTags splits a comma separated list, dropping blanks and duplicates
func ParseTags(values []string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, v := range values {
		for _, tag := range strings.Split(v, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			out = append(out, tag)
		}
	}
	return out
}

// ReadDescription returns raw, or all of stdin when raw is "-"
func ReadDescription(raw string, stdin io.Reader) (string, error) {
	if raw != "-" {
		return raw, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read description from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
