package handlers

import (
	"net/http"

	"salesboard/internal/dto"
	"salesboard/internal/errors"
	"salesboard/internal/services"

	"github.com/labstack/echo/v4"
)

// SalesHandler serves the paginated sales table
type SalesHandler struct {
	tokens services.TokenProviderInterface
	cache  services.QueryCacheInterface
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(tokens services.TokenProviderInterface, cache services.QueryCacheInterface) *SalesHandler {
	return &SalesHandler{
		tokens: tokens,
		cache:  cache,
	}
}

// ListSales retrieves one page of sales for the requested filter, sort,
// and cursor state. Results come from the query cache; a stale page is
// served with fetching=true while its refresh runs.
func (h *SalesHandler) ListSales(c echo.Context) error {
	var query dto.SalesQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Malformed query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return err
	}
	if query.Before != "" && query.After != "" {
		return SendError(c, errors.ValidationCursorConflict)
	}

	filters, sort, cursor := splitSalesQuery(&query)

	token := h.tokens.Acquire(c.Request().Context())

	state, err := h.cache.Query(c.Request().Context(), token, filters, cursor, sort)
	if err != nil {
		if err == services.ErrNoToken {
			return SendError(c, errors.QueryNotReady)
		}
		return SendError(c, errors.QueryFailed, errors.WithDetails(err.Error()))
	}

	response := dto.SalesPageResponse{
		Sales: dto.NewSaleItems(state.Result.Items),
		Pagination: dto.PaginationInfo{
			Before: state.Result.Pagination.Before,
			After:  state.Result.Pagination.After,
		},
		Fetching: state.Fetching,
	}

	return c.JSON(http.StatusOK, response)
}
