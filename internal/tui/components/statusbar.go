package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps describes the bottom bar
type StatusBarProps struct {
	Width int
	// Left is shown on the left, usually the active filters or a notification
	Left string
	// Right is shown on the right, usually the visible ticket count
	Right string
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	leftRendered := props.Left
	rightRendered := StatusBarStyle.Render(props.Right)

	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)
	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
