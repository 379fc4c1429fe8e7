package handlers

import (
	"salesboard/internal/dto"
	"salesboard/internal/models"
)

// splitSalesQuery turns validated query parameters into the three state
// pieces of a sales query. Unset sort parameters fall back to the
// default sort.
func splitSalesQuery(query *dto.SalesQuery) (models.FilterSet, models.SortSpec, models.PageCursor) {
	filters := models.FilterSet{
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
		MinPrice:  query.MinPrice,
		Email:     query.Email,
		Phone:     query.Phone,
	}

	sort := models.DefaultSort()
	if query.Sort != "" {
		sort.Field = query.Sort
	}
	if query.Order != "" {
		sort.Direction = query.Order
	}

	cursor := models.PageCursor{Before: query.Before, After: query.After}

	return filters, sort, cursor
}
