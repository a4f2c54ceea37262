package models

// FilterCriteria describes which tickets are visible.
// An empty set on any axis places no restriction on that axis.
type FilterCriteria struct {
	Search     string
	Priorities []Priority
	Assignees  []string
	Statuses   []Status
	Tags       []string
	Overdue    bool // When true only overdue tickets pass; false never excludes
}

// IsEmpty reports whether the criteria accept every ticket
func (f FilterCriteria) IsEmpty() bool {
	return f.Search == "" && len(f.Priorities) == 0 && len(f.Assignees) == 0 &&
		len(f.Statuses) == 0 && len(f.Tags) == 0 && !f.Overdue
}

// Clone returns a copy that shares no slices with f
func (f FilterCriteria) Clone() FilterCriteria {
	return FilterCriteria{
		Search:     f.Search,
		Priorities: cloneSlice(f.Priorities),
		Assignees:  cloneSlice(f.Assignees),
		Statuses:   cloneSlice(f.Statuses),
		Tags:       cloneSlice(f.Tags),
		Overdue:    f.Overdue,
	}
}

// FilterUpdate is a partial change to the active criteria.
// Nil fields keep their current value.
type FilterUpdate struct {
	Search     *string
	Priorities *[]Priority
	Assignees  *[]string
	Statuses   *[]Status
	Tags       *[]string
	Overdue    *bool
}

// Apply merges the update into f and returns the result
func (u FilterUpdate) Apply(f FilterCriteria) FilterCriteria {
	out := f.Clone()
	if u.Search != nil {
		out.Search = *u.Search
	}
	if u.Priorities != nil {
		out.Priorities = cloneSlice(*u.Priorities)
	}
	if u.Assignees != nil {
		out.Assignees = cloneSlice(*u.Assignees)
	}
	if u.Statuses != nil {
		out.Statuses = cloneSlice(*u.Statuses)
	}
	if u.Tags != nil {
		out.Tags = cloneSlice(*u.Tags)
	}
	if u.Overdue != nil {
		out.Overdue = *u.Overdue
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if len(in) == 0 {
		return nil
	}
	return append([]T(nil), in...)
}
