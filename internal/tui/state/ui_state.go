package state

import "github.com/Pranshu640/Kanban-Ticketing-System/internal/types"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	DeleteConfirmMode             // Confirming ticket deletion
	ResetConfirmMode              // Confirming a board reset
	HelpMode                      // Displaying help screen
	SearchMode                    // Typing a search query (/)
	DetailMode                    // Reading the selected ticket
	TicketFormMode                // Creating or editing a ticket
)

// UIState manages the user interface state.
// This includes navigation (column/ticket selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedTicket is the index of the selected ticket within the selected column
	selectedTicket int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// viewportSize is the number of columns that fit on the screen
	viewportSize int

	// ticketScrollOffsets tracks the vertical scroll offset for each column
	ticketScrollOffsets map[types.ColumnID]int

	// pendingDelete is the ticket awaiting delete confirmation
	pendingDelete types.TicketID
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:                NormalMode,
		viewportSize:        1, // recalculated when width is set
		ticketScrollOffsets: make(map[types.ColumnID]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedTicket returns the index of the currently selected ticket.
func (s *UIState) SelectedTicket() int {
	return s.selectedTicket
}

// SetSelectedTicket updates the selected ticket index.
func (s *UIState) SetSelectedTicket(index int) {
	s.selectedTicket = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the columns.
// This is terminal height minus header and status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	const headerHeight = 2    // board name + filter line
	const statusBarHeight = 2 // status bar + help line
	return max(s.height-headerHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// ViewportSize returns the number of columns that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// ColumnWidth is the width of one rendered column including spacing
const ColumnWidth = 36 // 30 content + 2 padding + 2 border + 2 spacing

// calculateViewportSize calculates how many columns can fit in the terminal width.
// Two characters are reserved for the scroll indicators and at least one
// column is always visible.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}
	const reservedWidth = 2
	s.viewportSize = max(1, (s.width-reservedWidth)/ColumnWidth)
}

// EnsureSelectionVisible adjusts the viewport so the selected column is on screen.
func (s *UIState) EnsureSelectionVisible(selectedColumn int) {
	if selectedColumn < s.viewportOffset {
		s.viewportOffset = selectedColumn
	}
	if selectedColumn >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = selectedColumn - s.viewportSize + 1
	}
}

// ClampSelection keeps the selection inside a board with columnsLen columns
// and ticketsLen tickets in the selected column. Used after the board
// changes underneath the cursor.
func (s *UIState) ClampSelection(columnsLen, ticketsLen int) {
	s.selectedColumn = min(max(s.selectedColumn, 0), max(columnsLen-1, 0))
	s.selectedTicket = min(max(s.selectedTicket, 0), max(ticketsLen-1, 0))
	if s.viewportOffset+s.viewportSize > columnsLen {
		s.viewportOffset = max(0, columnsLen-s.viewportSize)
	}
	s.EnsureSelectionVisible(s.selectedColumn)
}

// ResetSelection resets both column and ticket selection to zero.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedTicket = 0
	s.viewportOffset = 0
	clear(s.ticketScrollOffsets)
}

// PendingDelete returns the ticket awaiting delete confirmation.
func (s *UIState) PendingDelete() types.TicketID {
	return s.pendingDelete
}

// SetPendingDelete records the ticket awaiting delete confirmation.
func (s *UIState) SetPendingDelete(id types.TicketID) {
	s.pendingDelete = id
}

// TicketScrollOffset returns the vertical scroll offset for a given column.
// Returns 0 if the column has no scroll offset set.
func (s *UIState) TicketScrollOffset(columnID types.ColumnID) int {
	return s.ticketScrollOffsets[columnID]
}

// EnsureTicketVisible adjusts the scroll offset so the selected ticket is visible.
//
// Parameters:
//   - columnID: the column containing the ticket
//   - selectedIdx: index of the selected ticket within the column
//   - visibleCount: number of tickets that can be displayed at once
func (s *UIState) EnsureTicketVisible(columnID types.ColumnID, selectedIdx int, visibleCount int) {
	offset := s.ticketScrollOffsets[columnID]

	if selectedIdx < offset {
		offset = selectedIdx
	}
	if selectedIdx >= offset+visibleCount {
		offset = selectedIdx - visibleCount + 1
	}
	s.ticketScrollOffsets[columnID] = max(0, offset)
}
