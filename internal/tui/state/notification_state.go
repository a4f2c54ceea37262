package state

// NotificationLevel is the severity of a status bar message
type NotificationLevel int

const (
	LevelInfo    NotificationLevel = iota // e.g. "Ticket created"
	LevelWarning                          // e.g. a full column refusing a move
	LevelError                            // failed operations
)

// Notification is a single status bar message
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds the message shown in the status bar until the
// next key press. A newer message replaces the current one unless it is
// less severe.
type NotificationState struct {
	current Notification
	set     bool
}

// NewNotificationState creates an empty NotificationState
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add shows message unless a more severe one is already showing
func (s *NotificationState) Add(level NotificationLevel, message string) {
	if s.set && level < s.current.Level {
		return
	}
	s.current = Notification{Level: level, Message: message}
	s.set = true
}

// Clear removes the current message
func (s *NotificationState) Clear() {
	s.current = Notification{}
	s.set = false
}

// Latest returns the message being shown
func (s *NotificationState) Latest() (Notification, bool) {
	return s.current, s.set
}

// HasAny reports whether a message is being shown
func (s *NotificationState) HasAny() bool {
	return s.set
}
