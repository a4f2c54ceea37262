package config

// KeyMappings defines all configurable key bindings of the board viewer
type KeyMappings struct {
	// Tickets
	AddTicket       string `yaml:"add_ticket"`
	EditTicket      string `yaml:"edit_ticket"`
	SaveForm        string `yaml:"save_form"`
	MoveTicketLeft  string `yaml:"move_ticket_left"`
	MoveTicketRight string `yaml:"move_ticket_right"`
	DeleteTicket    string `yaml:"delete_ticket"`
	ViewTicket      string `yaml:"view_ticket"`

	// Filters
	ToggleOverdue string `yaml:"toggle_overdue"`
	ClearFilters  string `yaml:"clear_filters"`
	Search        string `yaml:"search"`

	// Board
	RefreshBoard string `yaml:"refresh_board"`
	CycleTheme   string `yaml:"cycle_theme"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTicket string `yaml:"prev_ticket"`
	NextTicket string `yaml:"next_ticket"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tickets
		AddTicket:       "n",
		EditTicket:      "e",
		SaveForm:        "ctrl+s",
		MoveTicketLeft:  "<",
		MoveTicketRight: ">",
		DeleteTicket:    "x",
		ViewTicket:      "enter",

		// Filters
		ToggleOverdue: "o",
		ClearFilters:  "c",
		Search:        "/",

		// Board
		RefreshBoard: "r",
		CycleTheme:   "t",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevTicket: "k",
		NextTicket: "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddTicket == "" {
		k.AddTicket = defaults.AddTicket
	}
	if k.EditTicket == "" {
		k.EditTicket = defaults.EditTicket
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.MoveTicketLeft == "" {
		k.MoveTicketLeft = defaults.MoveTicketLeft
	}
	if k.MoveTicketRight == "" {
		k.MoveTicketRight = defaults.MoveTicketRight
	}
	if k.DeleteTicket == "" {
		k.DeleteTicket = defaults.DeleteTicket
	}
	if k.ViewTicket == "" {
		k.ViewTicket = defaults.ViewTicket
	}
	if k.Search == "" {
		k.Search = defaults.Search
	}
	if k.CycleTheme == "" {
		k.CycleTheme = defaults.CycleTheme
	}
	if k.ToggleOverdue == "" {
		k.ToggleOverdue = defaults.ToggleOverdue
	}
	if k.ClearFilters == "" {
		k.ClearFilters = defaults.ClearFilters
	}
	if k.RefreshBoard == "" {
		k.RefreshBoard = defaults.RefreshBoard
	}
	if k.PrevColumn == "" {
		k.PrevColumn = defaults.PrevColumn
	}
	if k.NextColumn == "" {
		k.NextColumn = defaults.NextColumn
	}
	if k.PrevTicket == "" {
		k.PrevTicket = defaults.PrevTicket
	}
	if k.NextTicket == "" {
		k.NextTicket = defaults.NextTicket
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
