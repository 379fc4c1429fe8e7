package handlers

import (
	"net/http"

	"salesboard/internal/dto"
	"salesboard/internal/errors"
	"salesboard/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the combined dashboard view: summary stats,
// chart series, and the sales table for one query state
type DashboardHandler struct {
	tokens services.TokenProviderInterface
	cache  services.QueryCacheInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(tokens services.TokenProviderInterface, cache services.QueryCacheInterface) *DashboardHandler {
	return &DashboardHandler{
		tokens: tokens,
		cache:  cache,
	}
}

// GetDashboard returns the derived dashboard views for the requested
// query state. Both aggregates are page-local: they reflect the rows of
// the current page only.
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
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

	summary := services.Summarize(state.Result.Items)
	series := services.ChartSeries(state.Result.Items)

	chart := make([]dto.ChartPointItem, 0, len(series))
	for _, point := range series {
		chart = append(chart, dto.ChartPointItem{
			Date:  point.Date,
			Total: point.Total.String(),
		})
	}

	response := dto.DashboardResponse{
		Summary: dto.SummaryInfo{
			TotalRevenue: summary.TotalRevenue.String(),
			SaleCount:    summary.SaleCount,
			StatusCounts: summary.StatusCounts,
		},
		Chart: chart,
		Sales: dto.NewSaleItems(state.Result.Items),
		Pagination: dto.PaginationInfo{
			Before: state.Result.Pagination.Before,
			After:  state.Result.Pagination.After,
		},
		Fetching: state.Fetching,
	}

	return c.JSON(http.StatusOK, response)
}
