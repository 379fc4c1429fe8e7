package dto

// SessionResponse is returned when a dashboard session is created
type SessionResponse struct {
	SessionID string `json:"session_id"`
}

// FilterUpdateRequest edits one filter field of a session. An empty
// value clears the filter.
type FilterUpdateRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// SortToggleRequest applies a column-header click to a session
type SortToggleRequest struct {
	Field string `json:"field"`
}

// SessionFilters mirrors the session's filter fields; unset filters are
// omitted
type SessionFilters struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	MinPrice  string `json:"min_price,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// SessionSort is the session's active sort column and direction
type SessionSort struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

// SessionStateResponse snapshots a session's query state after a
// transition
type SessionStateResponse struct {
	Filters    SessionFilters `json:"filters"`
	Sort       SessionSort    `json:"sort"`
	Pagination PaginationInfo `json:"pagination"`
}

// PageMoveResponse reports a pagination transition. Moved is false when
// the session had no page to move from or the page offered no cursor in
// that direction.
type PageMoveResponse struct {
	Moved      bool           `json:"moved"`
	Pagination PaginationInfo `json:"pagination"`
}
