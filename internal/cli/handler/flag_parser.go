// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/cli"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/models"
	"github.com/Pranshu640/Kanban-Ticketing-System/internal/types"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
	loc *time.Location
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd, loc: time.Local}
}

// WithLocation sets the zone calendar due dates are interpreted in
func (p *FlagParser) WithLocation(loc *time.Location) *FlagParser {
	p.loc = loc
	return p
}

func invalid(code string, err error) *cli.CommandError {
	return cli.Fail(cli.ExitValidation, code, err.Error()).Wrap(err)
}

// ParseTicketID extracts the ticket id from the first positional argument
// or the --id flag
func (p *FlagParser) ParseTicketID(args []string) (types.TicketID, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else if p.cmd.Flags().Lookup("id") != nil {
		raw, _ = p.cmd.Flags().GetString("id")
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", cli.Fail(cli.ExitUsage, "MISSING_TICKET_ID", "a ticket id is required").
			WithSuggestion("Usage: kanban ticket " + p.cmd.Name() + " <id>")
	}
	return types.TicketID(raw), nil
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", cli.Fail(cli.ExitUsage, "MISSING_FLAG", fmt.Sprintf("%s is required", flagName))
	}
	return value, nil
}

// ParseStringOptional extracts an optional string flag
func (p *FlagParser) ParseStringOptional(flagName string) (string, error) {
	return p.cmd.Flags().GetString(flagName)
}

// ParseBool extracts a boolean flag
func (p *FlagParser) ParseBool(flagName string) (bool, error) {
	return p.cmd.Flags().GetBool(flagName)
}

// ParseStatus extracts and validates a status flag
func (p *FlagParser) ParseStatus(flagName string) (models.Status, error) {
	raw, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	s, err := cli.ParseStatus(raw)
	if err != nil {
		return "", invalid("INVALID_STATUS", err)
	}
	return s, nil
}

// ParsePriority extracts and validates a priority flag
func (p *FlagParser) ParsePriority(flagName string) (models.Priority, error) {
	raw, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	pr, err := cli.ParsePriority(raw)
	if err != nil {
		return "", invalid("INVALID_PRIORITY", err)
	}
	return pr, nil
}

// ParseDueDate extracts and validates a due date flag
func (p *FlagParser) ParseDueDate(flagName string) (time.Time, error) {
	raw, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	d, err := cli.ParseDueDate(raw, p.loc)
	if err != nil {
		return time.Time{}, invalid("INVALID_DUE_DATE", err)
	}
	return d, nil
}

// ParseHours extracts and validates an hour estimate flag
func (p *FlagParser) ParseHours(flagName string) (float64, error) {
	raw, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	h, err := cli.ParseHours(raw)
	if err != nil {
		return 0, invalid("INVALID_ESTIMATE", err)
	}
	return h, nil
}

// ParseTags extracts a repeatable, comma separated tag flag
func (p *FlagParser) ParseTags(flagName string) ([]string, error) {
	raw, err := p.cmd.Flags().GetStringSlice(flagName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return cli.ParseTags(raw), nil
}

// Changed reports whether the flag was set on the command line
func (p *FlagParser) Changed(flagName string) bool {
	return p.cmd.Flags().Changed(flagName)
}

// TicketUpdate builds a partial update from the ticket flags that were set.
// Setting --due or --estimate to "none" clears the value.
func (p *FlagParser) TicketUpdate() (models.TicketUpdate, error) {
	var u models.TicketUpdate

	if p.Changed("title") {
		title, err := p.ParseString("title")
		if err != nil {
			return u, err
		}
		u.Title = &title
	}
	if p.Changed("description") {
		desc, err := p.ParseStringOptional("description")
		if err != nil {
			return u, err
		}
		desc, err = cli.ReadDescription(desc, p.cmd.InOrStdin())
		if err != nil {
			return u, err
		}
		u.Description = &desc
	}
	if p.Changed("status") {
		s, err := p.ParseStatus("status")
		if err != nil {
			return u, err
		}
		u.Status = &s
	}
	if p.Changed("priority") {
		pr, err := p.ParsePriority("priority")
		if err != nil {
			return u, err
		}
		u.Priority = &pr
	}
	if p.Changed("assignee") {
		a, err := p.ParseStringOptional("assignee")
		if err != nil {
			return u, err
		}
		a = strings.TrimSpace(a)
		u.Assignee = &a
	}
	if p.Changed("due") {
		if p.isNone("due") {
			u.ClearDueDate = true
		} else {
			d, err := p.ParseDueDate("due")
			if err != nil {
				return u, err
			}
			u.DueDate = &d
		}
	}
	if p.Changed("estimate") {
		if p.isNone("estimate") {
			u.ClearEstimatedHours = true
		} else {
			h, err := p.ParseHours("estimate")
			if err != nil {
				return u, err
			}
			u.EstimatedHours = &h
		}
	}
	if p.Changed("tag") {
		tags, err := p.ParseTags("tag")
		if err != nil {
			return u, err
		}
		u.Tags = &tags
	}
	return u, nil
}

// FilterUpdate builds a partial filter change from the filter flags that
// were set
func (p *FlagParser) FilterUpdate() (models.FilterUpdate, error) {
	var u models.FilterUpdate

	if p.Changed("search") {
		s, err := p.ParseStringOptional("search")
		if err != nil {
			return u, err
		}
		u.Search = &s
	}
	if p.Changed("priority") {
		raw, err := p.cmd.Flags().GetStringSlice("priority")
		if err != nil {
			return u, err
		}
		priorities := []models.Priority{}
		for _, v := range cli.ParseTags(raw) {
			pr, err := cli.ParsePriority(v)
			if err != nil {
				return u, invalid("INVALID_PRIORITY", err)
			}
			priorities = append(priorities, pr)
		}
		u.Priorities = &priorities
	}
	if p.Changed("status") {
		raw, err := p.cmd.Flags().GetStringSlice("status")
		if err != nil {
			return u, err
		}
		statuses := []models.Status{}
		for _, v := range cli.ParseTags(raw) {
			s, err := cli.ParseStatus(v)
			if err != nil {
				return u, invalid("INVALID_STATUS", err)
			}
			statuses = append(statuses, s)
		}
		u.Statuses = &statuses
	}
	if p.Changed("assignee") {
		raw, err := p.cmd.Flags().GetStringSlice("assignee")
		if err != nil {
			return u, err
		}
		assignees := cli.ParseTags(raw)
		u.Assignees = &assignees
	}
	if p.Changed("tag") {
		tags, err := p.ParseTags("tag")
		if err != nil {
			return u, err
		}
		u.Tags = &tags
	}
	if p.Changed("overdue") {
		o, err := p.ParseBool("overdue")
		if err != nil {
			return u, err
		}
		u.Overdue = &o
	}
	return u, nil
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.cmd.Flags().GetBool("json")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse json flag: %w", err)
	}

	quietMode, err = p.cmd.Flags().GetBool("quiet")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
	}

	return jsonOutput, quietMode, nil
}

func (p *FlagParser) isNone(flagName string) bool {
	v, _ := p.cmd.Flags().GetString(flagName)
	return strings.EqualFold(strings.TrimSpace(v), "none")
}
