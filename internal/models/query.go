package models

const (
	SortFieldDate  = "date"
	SortFieldPrice = "price"

	SortAscending  = "asc"
	SortDescending = "desc"
)

// FilterSet contains the optional sales query filters. An empty string
// means "not set" and must never reach the wire.
type FilterSet struct {
	StartDate string
	EndDate   string
	MinPrice  string
	Email     string
	Phone     string
}

// IsZero returns true when no filter is set
func (f FilterSet) IsZero() bool {
	return f == FilterSet{}
}

// SortSpec describes the active sort column and direction
type SortSpec struct {
	Field     string
	Direction string
}

// DefaultSort is the sort applied before any user interaction
func DefaultSort() SortSpec {
	return SortSpec{Field: SortFieldDate, Direction: SortAscending}
}

// Toggle applies a header click: the active field flips direction,
// a new field resets the direction to ascending.
func (s *SortSpec) Toggle(field string) {
	if s.Field == field {
		if s.Direction == SortAscending {
			s.Direction = SortDescending
		} else {
			s.Direction = SortAscending
		}
		return
	}

	s.Field = field
	s.Direction = SortAscending
}

// IsValidSortField checks if the sort field is valid
func IsValidSortField(field string) bool {
	switch field {
	case SortFieldDate, SortFieldPrice:
		return true
	default:
		return false
	}
}

// IsValidSortDirection checks if the sort direction is valid
func IsValidSortDirection(direction string) bool {
	switch direction {
	case SortAscending, SortDescending:
		return true
	default:
		return false
	}
}

// PageCursor holds the opaque before/after cursor tokens supplied by the
// server. At most one of the two is set at any time; the tokens are not
// interpretable by this side.
type PageCursor struct {
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
}

// SetAfter moves the cursor forward, clearing the opposite token
func (c *PageCursor) SetAfter(token string) {
	c.After = token
	c.Before = ""
}

// SetBefore moves the cursor backward, clearing the opposite token
func (c *PageCursor) SetBefore(token string) {
	c.Before = token
	c.After = ""
}

// Reset returns the cursor to the first page
func (c *PageCursor) Reset() {
	c.Before = ""
	c.After = ""
}

// IsZero returns true when the cursor points at the first page
func (c PageCursor) IsZero() bool {
	return c.Before == "" && c.After == ""
}
