// Package seed builds the default column layout and the demo board used for
// first runs and the refresh/reset flow.
package seed

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/types"
)

const (
	// BoardID is the id of the single board managed by the application
	BoardID types.BoardID = "main-board"

	// BoardName is the display name of the default board
	BoardName = "Project Board"

	day = 24 * time.Hour
)

// Assignees is the pool of demo assignees
var Assignees = []string{
	"Alice Johnson",
	"Bob Smith",
	"Carol Davis",
	"David Wilson",
	"Emma Brown",
	"Frank Miller",
	"Grace Lee",
	"Henry Taylor",
}

type template struct {
	title       string
	description string
	tags        []string
}

var templates = []template{
	{"Implement user authentication system", "Create a secure authentication system with JWT tokens, password hashing, and session management.", []string{"backend", "security", "api"}},
	{"Design responsive navigation component", "Build a mobile-first navigation component that adapts to different screen sizes and includes accessibility features.", []string{"frontend", "design"}},
	{"Fix memory leak in data processing", "Investigate and resolve memory leak occurring during large dataset processing operations.", []string{"bug", "performance", "backend"}},
	{"Add dark mode theme support", "Implement dark mode theme with proper color contrast and user preference persistence.", []string{"frontend", "feature", "design"}},
	{"Optimize database query performance", "Review and optimize slow database queries, add proper indexing, and implement query caching.", []string{"database", "performance", "backend"}},
	{"Create API documentation", "Write comprehensive API documentation with examples, error codes, and integration guides.", []string{"documentation", "api"}},
	{"Implement real-time notifications", "Add WebSocket-based real-time notifications for user actions and system events.", []string{"feature", "backend", "api"}},
	{"Add unit tests for payment module", "Write comprehensive unit tests for the payment processing module to ensure reliability.", []string{"testing", "backend"}},
	{"Update user profile interface", "Redesign the user profile page with improved UX and additional customization options.", []string{"frontend", "design", "feature"}},
	{"Security audit and vulnerability fixes", "Conduct security audit and fix identified vulnerabilities in authentication and data handling.", []string{"security", "urgent", "backend"}},
}

// distribution is how many demo tickets each column receives
var distribution = []struct {
	status models.Status
	count  int
}{
	{models.StatusTodo, 3},
	{models.StatusInProgress, 3},
	{models.StatusInReview, 2},
	{models.StatusDone, 2},
}

func intPtr(v int) *int { return &v }

// DefaultColumns returns the fixed column layout: one column per status,
// with capacity limits on the in-flight columns.
func DefaultColumns() []models.Column {
	return []models.Column{
		{ID: "todo", Title: "To Do", Status: models.StatusTodo, Color: "#64748b"},
		{ID: "in-progress", Title: "In Progress", Status: models.StatusInProgress, Color: "#3b82f6", Limit: intPtr(5)},
		{ID: "in-review", Title: "In Review", Status: models.StatusInReview, Color: "#f59e0b", Limit: intPtr(3)},
		{ID: "done", Title: "Done", Status: models.StatusDone, Color: "#10b981"},
	}
}

// EmptyBoard returns the default board with no tickets
func EmptyBoard() models.Board {
	return models.Board{
		ID:      BoardID,
		Name:    BoardName,
		Columns: DefaultColumns(),
		Tickets: []models.Ticket{},
	}
}

// Generator produces demo boards. The zero value is not usable; use New.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator seeded with seed. Equal seeds and times produce
// equal boards.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Board generates a demo board relative to now. Tickets are ordered
// newest first.
func (g *Generator) Board(now time.Time) models.Board {
	b := EmptyBoard()

	n := 1
	for _, d := range distribution {
		for i := 0; i < d.count; i++ {
			b.Tickets = append(b.Tickets, g.ticket(types.TicketID(fmt.Sprintf("TICKET-%03d", n)), d.status, now))
			n++
		}
	}

	slices.SortStableFunc(b.Tickets, func(a, c models.Ticket) int {
		return c.CreatedAt.Compare(a.CreatedAt)
	})
	return b
}

func (g *Generator) ticket(id types.TicketID, status models.Status, now time.Time) models.Ticket {
	tpl := templates[g.rng.Intn(len(templates))]
	priorities := models.AllPriorities()

	createdAt := g.between(now.Add(-30*day), now)
	updatedAt := g.between(createdAt, now)

	t := models.Ticket{
		ID:          id,
		Title:       tpl.title,
		Description: tpl.description,
		Status:      status,
		Priority:    priorities[g.rng.Intn(len(priorities))],
		Assignee:    Assignees[g.rng.Intn(len(Assignees))],
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		Tags:        g.pick(tpl.tags, g.rng.Intn(3)+1),
	}

	// 70% have a due date, a fifth of those already past
	if g.rng.Float64() > 0.3 {
		due := g.between(now, now.Add(30*day))
		if g.rng.Float64() > 0.8 {
			due = g.between(now.Add(-7*day), now)
		}
		t.DueDate = &due
	}

	if g.rng.Float64() > 0.4 {
		hours := float64(g.rng.Intn(40) + 1)
		t.EstimatedHours = &hours
	}

	if status == models.StatusDone {
		completed := g.between(updatedAt, now)
		t.CompletedAt = &completed
	}
	return t
}

func (g *Generator) between(start, end time.Time) time.Time {
	span := end.Sub(start)
	if span <= 0 {
		return start
	}
	return start.Add(time.Duration(g.rng.Int63n(int64(span))))
}

func (g *Generator) pick(from []string, count int) []string {
	shuffled := append([]string(nil), from...)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
