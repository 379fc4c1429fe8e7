package services

import (
	"sync"

	"salesboard/internal/models"
)

// FilterField names one editable FilterSet field
type FilterField string

const (
	FilterStartDate FilterField = "startDate"
	FilterEndDate   FilterField = "endDate"
	FilterMinPrice  FilterField = "minPrice"
	FilterEmail     FilterField = "email"
	FilterPhone     FilterField = "phone"
)

// IsValidFilterField checks if the filter field is editable
func IsValidFilterField(field FilterField) bool {
	switch field {
	case FilterStartDate, FilterEndDate, FilterMinPrice, FilterEmail, FilterPhone:
		return true
	default:
		return false
	}
}

// DashboardState owns the filter, sort, and pagination state of one
// dashboard session and applies its transition rules. Every mutation is
// atomic with its side effects, so a changed filter can never be
// combined with a stale cursor.
type DashboardState struct {
	mu      sync.Mutex
	filters models.FilterSet
	sort    models.SortSpec
	cursor  models.PageCursor
}

// NewDashboardState creates dashboard state at the first page with the
// default sort
func NewDashboardState() *DashboardState {
	return &DashboardState{
		sort: models.DefaultSort(),
	}
}

// Snapshot returns the current query state
func (d *DashboardState) Snapshot() (models.FilterSet, models.SortSpec, models.PageCursor) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.filters, d.sort, d.cursor
}

// SetFilter edits a single filter field and resets pagination to the
// first page in the same step. Setting the empty string clears a filter.
func (d *DashboardState) SetFilter(field FilterField, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch field {
	case FilterStartDate:
		d.filters.StartDate = value
	case FilterEndDate:
		d.filters.EndDate = value
	case FilterMinPrice:
		d.filters.MinPrice = value
	case FilterEmail:
		d.filters.Email = value
	case FilterPhone:
		d.filters.Phone = value
	default:
		return
	}

	d.cursor.Reset()
}

// ToggleSort applies a column-header click. Sort changes leave the
// cursor untouched, matching the filter/sort asymmetry of the original
// dashboard.
func (d *DashboardState) ToggleSort(field string) {
	if !models.IsValidSortField(field) {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.sort.Toggle(field)
}

// NextPage advances to the page after the given result. Returns false
// without changing state when the result offers no forward cursor.
func (d *DashboardState) NextPage(result *models.QueryResult) bool {
	if result == nil || result.Pagination.After == "" {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.cursor.SetAfter(result.Pagination.After)
	return true
}

// PrevPage moves to the page before the given result. Returns false
// without changing state when the result offers no backward cursor.
func (d *DashboardState) PrevPage(result *models.QueryResult) bool {
	if result == nil || result.Pagination.Before == "" {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.cursor.SetBefore(result.Pagination.Before)
	return true
}
