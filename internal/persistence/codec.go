package persistence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/seed"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/types"
)

// ============================================================================
// WIRE TYPES
// ============================================================================

type boardJSON struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Columns []columnJSON `json:"columns"`
	Tickets []ticketJSON `json:"tickets"`
}

type columnJSON struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
	Color  string `json:"color"`
	Limit  *int   `json:"limit,omitempty"`
}

type ticketJSON struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Status         string   `json:"status"`
	Priority       string   `json:"priority"`
	Assignee       string   `json:"assignee"`
	CreatedAt      isoTime  `json:"createdAt"`
	UpdatedAt      isoTime  `json:"updatedAt"`
	DueDate        *isoTime `json:"dueDate,omitempty"`
	Tags           []string `json:"tags"`
	EstimatedHours *float64 `json:"estimatedHours,omitempty"`
	CompletedAt    *isoTime `json:"completedAt,omitempty"`
}

type filtersJSON struct {
	Search     string   `json:"search"`
	Priorities []string `json:"priorities"`
	Assignees  []string `json:"assignees"`
	Statuses   []string `json:"statuses"`
	Tags       []string `json:"tags"`
	Overdue    bool     `json:"overdue"`
}

// envelope is the wrapper older builds stored around every value
type envelope struct {
	Data      json.RawMessage `json:"data"`
	Timestamp *int64          `json:"timestamp"`
	TTL       *int64          `json:"ttl"`
}

// ============================================================================
// TIMESTAMPS
// ============================================================================

// TimeLayout is the layout timestamps are written in (always UTC)
const TimeLayout = time.RFC3339Nano

var acceptedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// FormatTime renders t the way it is stored
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime accepts every timestamp layout the board has ever been stored in
func ParseTime(s string) (time.Time, bool) {
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// isoTime is a timestamp that tolerates bad input. A value that cannot be
// read leaves the time unset instead of failing the whole document.
type isoTime struct {
	time.Time
	set bool
}

func newISOTime(t time.Time) isoTime { return isoTime{Time: t, set: true} }

func newISOTimePtr(t *time.Time) *isoTime {
	if t == nil {
		return nil
	}
	v := newISOTime(*t)
	return &v
}

func (it isoTime) MarshalJSON() ([]byte, error) {
	if !it.set {
		return []byte("null"), nil
	}
	return json.Marshal(FormatTime(it.Time))
}

func (it *isoTime) UnmarshalJSON(b []byte) error {
	*it = isoTime{}
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if t, ok := ParseTime(s); ok {
			*it = newISOTime(t)
		}
		return nil
	}

	// epoch milliseconds
	var ms float64
	if err := json.Unmarshal(b, &ms); err == nil {
		*it = newISOTime(time.UnixMilli(int64(ms)).UTC())
	}
	return nil
}

func (it *isoTime) ptr() *time.Time {
	if it == nil || !it.set {
		return nil
	}
	t := it.Time
	return &t
}

// ============================================================================
// BOARD
// ============================================================================

// EncodeBoard serializes a board to its stored JSON form
func EncodeBoard(b models.Board) (string, error) {
	out := boardJSON{
		ID:      b.ID.String(),
		Name:    b.Name,
		Columns: make([]columnJSON, 0, len(b.Columns)),
		Tickets: make([]ticketJSON, 0, len(b.Tickets)),
	}
	for _, c := range b.Columns {
		out.Columns = append(out.Columns, columnJSON{
			ID:     c.ID.String(),
			Title:  c.Title,
			Status: c.Status.String(),
			Color:  c.Color,
			Limit:  c.Limit,
		})
	}
	for _, t := range b.Tickets {
		tags := t.Tags
		if tags == nil {
			tags = []string{}
		}
		out.Tickets = append(out.Tickets, ticketJSON{
			ID:             t.ID.String(),
			Title:          t.Title,
			Description:    t.Description,
			Status:         t.Status.String(),
			Priority:       t.Priority.String(),
			Assignee:       t.Assignee,
			CreatedAt:      newISOTime(t.CreatedAt),
			UpdatedAt:      newISOTime(t.UpdatedAt),
			DueDate:        newISOTimePtr(t.DueDate),
			Tags:           tags,
			EstimatedHours: t.EstimatedHours,
			CompletedAt:    newISOTimePtr(t.CompletedAt),
		})
	}

	data, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("failed to encode board: %w", err)
	}
	return string(data), nil
}

// DecodeBoard parses a stored board, repairing what it can. Tickets that
// cannot be placed on any column are dropped with a warning. now fills in
// missing timestamps and decides whether a legacy envelope has expired.
func DecodeBoard(raw string, now time.Time, logger *slog.Logger) (models.Board, error) {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := unwrap([]byte(raw), now)
	if err != nil {
		return models.Board{}, err
	}

	var in boardJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return models.Board{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	b := models.Board{
		ID:      types.BoardID(in.ID),
		Name:    in.Name,
		Tickets: make([]models.Ticket, 0, len(in.Tickets)),
	}
	if b.ID == "" {
		b.ID = seed.BoardID
	}
	if b.Name == "" {
		b.Name = seed.BoardName
	}

	if len(in.Columns) == 0 {
		b.Columns = seed.DefaultColumns()
	} else {
		for _, c := range in.Columns {
			b.Columns = append(b.Columns, models.Column{
				ID:     types.ColumnID(c.ID),
				Title:  c.Title,
				Status: models.Status(c.Status),
				Color:  c.Color,
				Limit:  c.Limit,
			})
		}
	}

	seen := make(map[types.TicketID]bool, len(in.Tickets))
	for _, tj := range in.Tickets {
		t, ok := decodeTicket(tj, now)
		if !ok {
			logger.Warn("dropping stored ticket without id")
			continue
		}
		if _, served := b.ColumnForStatus(t.Status); !served {
			logger.Warn("dropping stored ticket with unknown status", "ticket_id", t.ID, "status", t.Status)
			continue
		}
		if seen[t.ID] {
			logger.Warn("dropping duplicate stored ticket", "ticket_id", t.ID)
			continue
		}
		seen[t.ID] = true
		b.Tickets = append(b.Tickets, t)
	}

	if err := b.Validate(); err != nil {
		return models.Board{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return b, nil
}

func decodeTicket(tj ticketJSON, now time.Time) (models.Ticket, bool) {
	if tj.ID == "" {
		return models.Ticket{}, false
	}

	priority, ok := models.ParsePriority(tj.Priority)
	if !ok {
		priority = models.DefaultPriority
	}

	t := models.Ticket{
		ID:          types.TicketID(tj.ID),
		Title:       tj.Title,
		Description: tj.Description,
		Status:      models.Status(tj.Status),
		Priority:    priority,
		Assignee:    tj.Assignee,
		DueDate:     tj.DueDate.ptr(),
		CompletedAt: tj.CompletedAt.ptr(),
		Tags:        tj.Tags,
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if tj.EstimatedHours != nil && *tj.EstimatedHours >= 0 {
		h := *tj.EstimatedHours
		t.EstimatedHours = &h
	}

	switch {
	case tj.CreatedAt.set:
		t.CreatedAt = tj.CreatedAt.Time
	case tj.UpdatedAt.set:
		t.CreatedAt = tj.UpdatedAt.Time
	default:
		t.CreatedAt = now.UTC()
	}
	t.UpdatedAt = t.CreatedAt
	if tj.UpdatedAt.set && tj.UpdatedAt.After(t.CreatedAt) {
		t.UpdatedAt = tj.UpdatedAt.Time
	}
	return t, true
}

// ============================================================================
// FILTERS
// ============================================================================

// EncodeFilters serializes filter criteria to their stored JSON form
func EncodeFilters(f models.FilterCriteria) (string, error) {
	out := filtersJSON{
		Search:     f.Search,
		Priorities: make([]string, 0, len(f.Priorities)),
		Assignees:  make([]string, 0, len(f.Assignees)),
		Statuses:   make([]string, 0, len(f.Statuses)),
		Tags:       make([]string, 0, len(f.Tags)),
		Overdue:    f.Overdue,
	}
	for _, p := range f.Priorities {
		out.Priorities = append(out.Priorities, p.String())
	}
	out.Assignees = append(out.Assignees, f.Assignees...)
	for _, s := range f.Statuses {
		out.Statuses = append(out.Statuses, s.String())
	}
	out.Tags = append(out.Tags, f.Tags...)

	data, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("failed to encode filters: %w", err)
	}
	return string(data), nil
}

// DecodeFilters parses stored filter criteria. Unknown priorities and
// statuses are dropped.
func DecodeFilters(raw string, now time.Time) (models.FilterCriteria, error) {
	data, err := unwrap([]byte(raw), now)
	if err != nil {
		return models.FilterCriteria{}, err
	}

	var in filtersJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return models.FilterCriteria{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	f := models.FilterCriteria{
		Search:  in.Search,
		Overdue: in.Overdue,
	}
	for _, p := range in.Priorities {
		if priority, ok := models.ParsePriority(p); ok {
			f.Priorities = append(f.Priorities, priority)
		}
	}
	for _, s := range in.Statuses {
		if status, ok := models.ParseStatus(s); ok {
			f.Statuses = append(f.Statuses, status)
		}
	}
	if len(in.Assignees) > 0 {
		f.Assignees = append([]string(nil), in.Assignees...)
	}
	if len(in.Tags) > 0 {
		f.Tags = append([]string(nil), in.Tags...)
	}
	return f, nil
}

// ============================================================================
// LEGACY ENVELOPE
// ============================================================================

// unwrap strips the {data, timestamp, ttl} envelope when present.
// An envelope whose ttl has run out yields ErrExpired.
func unwrap(raw []byte, now time.Time) ([]byte, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	_, hasData := probe["data"]
	_, hasTimestamp := probe["timestamp"]
	if !hasData || !hasTimestamp {
		return raw, nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if env.TTL != nil && *env.TTL > 0 && env.Timestamp != nil &&
		now.UnixMilli()-*env.Timestamp > *env.TTL {
		return nil, ErrExpired
	}
	return env.Data, nil
}
