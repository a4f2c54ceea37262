package models

// ============================================================================
// STATUS
// ============================================================================

// Status is the workflow state of a ticket. Each status is bound to exactly
// one board column.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusInReview   Status = "in-review"
	StatusDone       Status = "done"
)

// AllStatuses returns every status in board order
func AllStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusInReview, StatusDone}
}

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusInReview, StatusDone:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Label returns the human-readable column title for the status
func (s Status) Label() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusInReview:
		return "In Review"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

// ParseStatus converts a raw string into a Status.
// The second return value is false for unknown strings.
func ParseStatus(raw string) (Status, bool) {
	s := Status(raw)
	return s, s.Valid()
}

// ============================================================================
// PRIORITY
// ============================================================================

// Priority is the urgency level of a ticket
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// DefaultPriority is used when legacy data carries no usable priority
const DefaultPriority = PriorityMedium

// AllPriorities returns every priority from least to most urgent
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func (p Priority) String() string {
	return string(p)
}

// Rank orders priorities for sorting, most urgent first (urgent=0, low=3).
// Unknown priorities sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

// ParsePriority converts a raw string into a Priority.
// The second return value is false for unknown strings.
func ParsePriority(raw string) (Priority, bool) {
	p := Priority(raw)
	return p, p.Valid()
}
