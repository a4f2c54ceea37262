// Package forms builds the huh forms used to create and edit tickets
package forms

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"charm.land/huh/v2"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli/styles"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
)

// Field limits of the ticket form
const (
	TitleMinLength       = 3
	TitleMaxLength       = 100
	DescriptionMinLength = 10
	DescriptionMaxLength = 1000
	MaxEstimatedHours    = 1000
)

// TicketValues holds the raw text of every form field. The form writes
// into it in place.
type TicketValues struct {
	Title          string
	Description    string
	Priority       string
	Assignee       string
	DueDate        string // YYYY-MM-DD, empty for none
	EstimatedHours string // empty for none
	Tags           string // comma separated
	Confirm        bool

	// initialDue is the due date the form opened with. An unchanged due
	// date is accepted even when it already lies in the past.
	initialDue string
}

// NewTicketValues returns the values of an empty create form
func NewTicketValues() *TicketValues {
	return &TicketValues{
		Priority: string(models.DefaultPriority),
		Confirm:  true,
	}
}

// ValuesFromTicket prefills the form with an existing ticket. Due dates
// are shown as calendar days in loc.
func ValuesFromTicket(t models.Ticket, loc *time.Location) *TicketValues {
	v := &TicketValues{
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Assignee:    t.Assignee,
		Tags:        strings.Join(t.Tags, ", "),
		Confirm:     true,
	}
	if t.DueDate != nil {
		v.DueDate = t.DueDate.In(loc).Format(time.DateOnly)
	}
	if t.EstimatedHours != nil {
		v.EstimatedHours = strconv.FormatFloat(*t.EstimatedHours, 'f', -1, 64)
	}
	v.initialDue = v.DueDate
	return v
}

// NewTicketForm builds the create or edit form over v.
// now anchors the past due date check.
func NewTicketForm(v *TicketValues, isEdit bool, now time.Time, loc *time.Location) *huh.Form {
	confirmTitle := "Create this ticket?"
	if isEdit {
		confirmTitle = "Save changes?"
	}

	priorities := make([]huh.Option[string], 0, len(models.AllPriorities()))
	for _, p := range models.AllPriorities() {
		priorities = append(priorities, huh.NewOption(styles.PriorityLabel(p), string(p)))
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter ticket title...").
			CharLimit(TitleMaxLength).
			Validate(ValidateTitle).
			Value(&v.Title),
		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Describe the work (markdown)...").
			CharLimit(DescriptionMaxLength).
			Lines(5).
			Validate(ValidateDescription).
			Value(&v.Description),
		huh.NewSelect[string]().
			Key("priority").
			Title("Priority").
			Options(priorities...).
			Value(&v.Priority),
		huh.NewInput().
			Key("assignee").
			Title("Assignee").
			Placeholder("Who owns this?").
			Validate(ValidateAssignee).
			Value(&v.Assignee),
		huh.NewInput().
			Key("due").
			Title("Due date").
			Placeholder("YYYY-MM-DD (optional)").
			Validate(func(s string) error { return v.validateDueDate(s, now, loc) }).
			Value(&v.DueDate),
		huh.NewInput().
			Key("estimate").
			Title("Estimated hours").
			Placeholder("optional").
			Validate(ValidateEstimatedHours).
			Value(&v.EstimatedHours),
		huh.NewInput().
			Key("tags").
			Title("Tags").
			Placeholder("comma separated").
			Value(&v.Tags),
		huh.NewConfirm().
			Key("confirm").
			Title(confirmTitle).
			Affirmative("Yes").
			Negative("No").
			Value(&v.Confirm),
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithKeyMap(KeyMap()).
		WithShowHelp(true)
}

// ValidateTitle requires a title of 3 to 100 characters
func ValidateTitle(s string) error {
	n := len([]rune(strings.TrimSpace(s)))
	switch {
	case n == 0:
		return errors.New("title is required")
	case n < TitleMinLength:
		return fmt.Errorf("title must be at least %d characters long", TitleMinLength)
	case n > TitleMaxLength:
		return fmt.Errorf("title must be at most %d characters long", TitleMaxLength)
	}
	return nil
}

// ValidateDescription requires a description of 10 to 1000 characters
func ValidateDescription(s string) error {
	n := len([]rune(strings.TrimSpace(s)))
	switch {
	case n == 0:
		return errors.New("description is required")
	case n < DescriptionMinLength:
		return fmt.Errorf("description must be at least %d characters long", DescriptionMinLength)
	case n > DescriptionMaxLength:
		return fmt.Errorf("description must be at most %d characters long", DescriptionMaxLength)
	}
	return nil
}

// ValidateAssignee requires a non-blank assignee
func ValidateAssignee(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("assignee is required")
	}
	return nil
}

// ValidateEstimatedHours accepts an empty value or 0 to 1000 hours
func ValidateEstimatedHours(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	h, err := cli.ParseHours(s)
	if err != nil {
		return errors.New("estimated hours must be a positive number")
	}
	if h > MaxEstimatedHours {
		return fmt.Errorf("estimated hours must be at most %d", MaxEstimatedHours)
	}
	return nil
}

func (v *TicketValues) validateDueDate(s string, now time.Time, loc *time.Location) error {
	s = strings.TrimSpace(s)
	if s == "" || s == v.initialDue {
		return nil
	}
	due, err := cli.ParseDueDate(s, loc)
	if err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	if due.Before(now) {
		return errors.New("due date cannot be in the past")
	}
	return nil
}

// Validate checks every field, returning the first problem found
func (v *TicketValues) Validate(now time.Time, loc *time.Location) error {
	if _, ok := models.ParsePriority(v.Priority); !ok {
		return errors.New("please select a valid priority")
	}
	for _, err := range []error{
		ValidateTitle(v.Title),
		ValidateDescription(v.Description),
		ValidateAssignee(v.Assignee),
		v.validateDueDate(v.DueDate, now, loc),
		ValidateEstimatedHours(v.EstimatedHours),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

// Draft converts the values into a new ticket for the given column
func (v *TicketValues) Draft(status models.Status, loc *time.Location) (models.TicketDraft, error) {
	due, hours, err := v.optionals(loc)
	if err != nil {
		return models.TicketDraft{}, err
	}
	return models.TicketDraft{
		Title:          strings.TrimSpace(v.Title),
		Description:    strings.TrimSpace(v.Description),
		Status:         status,
		Priority:       models.Priority(v.Priority),
		Assignee:       strings.TrimSpace(v.Assignee),
		DueDate:        due,
		Tags:           cli.ParseTags([]string{v.Tags}),
		EstimatedHours: hours,
	}, nil
}

// Update converts the values into a patch for original carrying only the
// fields that changed
func (v *TicketValues) Update(original models.Ticket, loc *time.Location) (models.TicketUpdate, error) {
	var u models.TicketUpdate
	due, hours, err := v.optionals(loc)
	if err != nil {
		return u, err
	}

	if title := strings.TrimSpace(v.Title); title != original.Title {
		u.Title = &title
	}
	if desc := strings.TrimSpace(v.Description); desc != original.Description {
		u.Description = &desc
	}
	if p := models.Priority(v.Priority); p != original.Priority {
		u.Priority = &p
	}
	if assignee := strings.TrimSpace(v.Assignee); assignee != original.Assignee {
		u.Assignee = &assignee
	}
	if tags := cli.ParseTags([]string{v.Tags}); !slices.Equal(tags, original.Tags) &&
		!(len(tags) == 0 && len(original.Tags) == 0) {
		u.Tags = &tags
	}

	if strings.TrimSpace(v.DueDate) != v.initialDue {
		if due == nil {
			u.ClearDueDate = original.DueDate != nil
		} else {
			u.DueDate = due
		}
	}
	switch {
	case hours == nil && original.EstimatedHours != nil:
		u.ClearEstimatedHours = true
	case hours != nil && (original.EstimatedHours == nil || *hours != *original.EstimatedHours):
		u.EstimatedHours = hours
	}
	return u, nil
}

func (v *TicketValues) optionals(loc *time.Location) (*time.Time, *float64, error) {
	var due *time.Time
	if s := strings.TrimSpace(v.DueDate); s != "" {
		d, err := cli.ParseDueDate(s, loc)
		if err != nil {
			return nil, nil, err
		}
		due = &d
	}
	var hours *float64
	if s := strings.TrimSpace(v.EstimatedHours); s != "" {
		h, err := cli.ParseHours(s)
		if err != nil {
			return nil, nil, err
		}
		hours = &h
	}
	return due, hours, nil
}
