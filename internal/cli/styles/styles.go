package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/theme"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Status:", "Priority:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description", "Tags"

	// Status styles
	OverdueStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	palette = theme.Get(theme.DefaultID)
)

func init() {
	Init(palette)
}

// Init initializes all CLI styles with the given palette
func Init(colors theme.Palette) {
	palette = colors

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Primary))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.TextSecondary))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Text))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	OverdueStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Background)).
		Background(lipgloss.Color(colors.Error)).
		Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Error))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Warning))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// BoldColoredText renders bold text with a hex color
func BoldColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// PriorityColor maps a priority to a palette color
func PriorityColor(p models.Priority) string {
	switch p {
	case models.PriorityUrgent:
		return palette.Error
	case models.PriorityHigh:
		return palette.Warning
	case models.PriorityLow:
		return palette.Success
	}
	return palette.Info
}

// PriorityLabel returns the capitalized priority name
func PriorityLabel(p models.Priority) string {
	s := string(p)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// RenderPriority renders the priority in its color
func RenderPriority(p models.Priority) string {
	return BoldColoredText(PriorityLabel(p), PriorityColor(p))
}

// RenderTagChips renders tags as "[name]" chips
func RenderTagChips(tags []string) string {
	chips := make([]string, len(tags))
	for i, tag := range tags {
		chips[i] = ColoredText("["+tag+"]", palette.Secondary)
	}
	return strings.Join(chips, " ")
}

// RenderTicketReference renders a one-line ticket summary
// Format: "• TICKET-1 - Title"
func RenderTicketReference(t models.Ticket) string {
	bulletStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(PriorityColor(t.Priority)))

	return bulletStyle.Render("•") + " " + fmt.Sprintf("%s - %s", t.ID, t.Title)
}

// RenderColumnHeader renders "Title (count/limit)" for a column
func RenderColumnHeader(col models.Column, count int) string {
	counter := fmt.Sprintf("(%d)", count)
	style := SubtitleStyle
	if col.Limit != nil {
		counter = fmt.Sprintf("(%d/%d)", count, *col.Limit)
		if count >= *col.Limit {
			style = WarningStyle
		}
	}
	return BoldColoredText(col.Title, colorOr(col.Color, palette.Primary)) + " " + style.Render(counter)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

func colorOr(c, fallback string) string {
	if c == "" {
		return fallback
	}
	return c
}
