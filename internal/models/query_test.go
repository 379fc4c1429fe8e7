package models

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// QueryTestSuite defines the test suite for query state models
type QueryTestSuite struct {
	suite.Suite
}

// TestQueryTestSuite runs the test suite
func TestQueryTestSuite(t *testing.T) {
	suite.Run(t, new(QueryTestSuite))
}

// Sort Tests

func (s *QueryTestSuite) TestDefaultSort() {
	sort := DefaultSort()
	s.Equal(SortFieldDate, sort.Field)
	s.Equal(SortAscending, sort.Direction)
}

func (s *QueryTestSuite) TestToggle_SameFieldFlipsDirection() {
	sort := DefaultSort()

	sort.Toggle(SortFieldDate)
	s.Equal(SortFieldDate, sort.Field)
	s.Equal(SortDescending, sort.Direction)

	sort.Toggle(SortFieldDate)
	s.Equal(SortAscending, sort.Direction)
}

func (s *QueryTestSuite) TestToggle_NewFieldResetsToAscending() {
	sort := DefaultSort()
	sort.Toggle(SortFieldDate) // now date desc

	sort.Toggle(SortFieldPrice)
	s.Equal(SortFieldPrice, sort.Field)
	s.Equal(SortAscending, sort.Direction, "Switching columns starts ascending regardless of previous direction")
}

func (s *QueryTestSuite) TestIsValidSortField() {
	s.True(IsValidSortField(SortFieldDate))
	s.True(IsValidSortField(SortFieldPrice))
	s.False(IsValidSortField("amount"))
	s.False(IsValidSortField(""))
}

func (s *QueryTestSuite) TestIsValidSortDirection() {
	s.True(IsValidSortDirection(SortAscending))
	s.True(IsValidSortDirection(SortDescending))
	s.False(IsValidSortDirection("ASC"))
	s.False(IsValidSortDirection(""))
}

// Cursor Tests

func (s *QueryTestSuite) TestPageCursor_SetAfterClearsBefore() {
	cursor := PageCursor{}
	cursor.SetBefore("prev-token")

	cursor.SetAfter("next-token")

	s.Equal("next-token", cursor.After)
	s.Empty(cursor.Before, "At most one cursor side may be set")
}

func (s *QueryTestSuite) TestPageCursor_SetBeforeClearsAfter() {
	cursor := PageCursor{}
	cursor.SetAfter("next-token")

	cursor.SetBefore("prev-token")

	s.Equal("prev-token", cursor.Before)
	s.Empty(cursor.After)
}

func (s *QueryTestSuite) TestPageCursor_Reset() {
	cursor := PageCursor{}
	cursor.SetAfter("next-token")

	cursor.Reset()

	s.True(cursor.IsZero())
}

func (s *QueryTestSuite) TestPageCursor_IsZero() {
	s.True(PageCursor{}.IsZero())
	s.False(PageCursor{After: "token"}.IsZero())
	s.False(PageCursor{Before: "token"}.IsZero())
}

// Filter Tests

func (s *QueryTestSuite) TestFilterSet_IsZero() {
	s.True(FilterSet{}.IsZero())
	s.False(FilterSet{MinPrice: "500"}.IsZero())
	s.False(FilterSet{Email: "buyer@example.com"}.IsZero())
}
