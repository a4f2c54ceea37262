// Package notifications renders status bar messages as colored badges
package notifications

import (
	"charm.land/lipgloss/v2"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/tui/state"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/tui/theme"
)

// Icon returns the badge icon for a level
func Icon(level state.NotificationLevel) string {
	switch level {
	case state.LevelWarning:
		return "⚠"
	case state.LevelError:
		return "✗"
	default:
		return "🔔"
	}
}

func colors(level state.NotificationLevel) (fg, bg string) {
	switch level {
	case state.LevelWarning:
		return theme.WarningFg, theme.WarningBg
	case state.LevelError:
		return theme.ErrorFg, theme.ErrorBg
	default:
		return theme.InfoFg, theme.InfoBg
	}
}

// Render renders n as a compact single line badge
func Render(n state.Notification) string {
	fg, bg := colors(n.Level)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Bold(true).
		Padding(0, 1).
		Render(Icon(n.Level) + " " + n.Message)
}

// RenderError renders message as an error badge
func RenderError(message string) string {
	return Render(state.Notification{Level: state.LevelError, Message: message})
}
