// Package theme holds the TUI colors derived from the active palette
package theme

import ktheme "github.com/Pranshu640/Kanban-Ticketing-System/internal/theme"

// Colors holds the current theme colors, initialized by Init
var (
	Background     string
	Surface        string
	Highlight      string
	Subtle         string
	Normal         string
	Border         string
	SelectedBorder string
	SelectedBg     string
	TicketBg       string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
	Overdue        string
	Success        string

	// Markdown is the glamour style matching the background
	Markdown string
)

func init() {
	Init(ktheme.Get(ktheme.DefaultID))
}

// Init initializes the theme colors from the given palette
func Init(p ktheme.Palette) {
	Background = p.Background
	Surface = p.Surface
	Highlight = p.Accent
	Subtle = p.TextSecondary
	Normal = p.Text
	Border = p.Border
	SelectedBorder = p.Primary
	SelectedBg = p.Surface
	TicketBg = p.Background
	InfoFg = p.Background
	InfoBg = p.Info
	WarningFg = p.Background
	WarningBg = p.Warning
	ErrorFg = p.Background
	ErrorBg = p.Error
	Overdue = p.Error
	Success = p.Success

	Markdown = "dark"
	if p.ID == ktheme.Light {
		Markdown = "light"
	}
}
