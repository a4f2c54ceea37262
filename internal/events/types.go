package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	// EventBoardChanged is sent after any ticket or board mutation settles
	EventBoardChanged EventType = "board_changed"

	// EventFiltersChanged is sent after the active filter criteria change
	EventFiltersChanged EventType = "filters_changed"

	// EventThemeChanged is sent after the theme preference changes
	EventThemeChanged EventType = "theme_changed"
)

// Event represents a settled state change notification
type Event struct {
	Type       EventType
	BoardID    string    // Which board was modified
	Timestamp  time.Time // When the change was applied
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
