package handlers

import (
	"net/http"

	"salesboard/internal/dto"
	"salesboard/internal/errors"
	"salesboard/internal/models"
	"salesboard/internal/services"
	"salesboard/internal/validation"

	"github.com/labstack/echo/v4"
)

// filterRules maps each editable filter field to its validation rule and
// the error code reported when a value fails it. Phone is free-form.
var filterRules = map[services.FilterField]struct {
	rule string
	code errors.ErrorCode
}{
	services.FilterStartDate: {"iso_date", errors.ValidationInvalidDate},
	services.FilterEndDate:   {"iso_date", errors.ValidationInvalidDate},
	services.FilterMinPrice:  {"money", errors.ValidationInvalidAmount},
	services.FilterEmail:     {"email", errors.ValidationInvalidEmail},
	services.FilterPhone:     {"", ""},
}

// SessionHandler serves the stateful dashboard flow. Each session owns a
// server-side state machine, and every transition is applied here rather
// than trusted from the client, so a filter edit can never be combined
// with a stale cursor.
type SessionHandler struct {
	registry *services.SessionRegistry
	tokens   services.TokenProviderInterface
	cache    services.QueryCacheInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(registry *services.SessionRegistry, tokens services.TokenProviderInterface, cache services.QueryCacheInterface) *SessionHandler {
	return &SessionHandler{
		registry: registry,
		tokens:   tokens,
		cache:    cache,
	}
}

// CreateSession starts a session at the first page with the default sort
func (h *SessionHandler) CreateSession(c echo.Context) error {
	id, _ := h.registry.Create()
	return c.JSON(http.StatusCreated, dto.SessionResponse{SessionID: id})
}

// GetSales serves the session's current page and remembers its cursors
// for later next/prev transitions
func (h *SessionHandler) GetSales(c echo.Context) error {
	session, ok, err := h.lookup(c)
	if !ok {
		return err
	}

	filters, sort, cursor := session.State.Snapshot()
	token := h.tokens.Acquire(c.Request().Context())

	state, err := h.cache.Query(c.Request().Context(), token, filters, cursor, sort)
	if err != nil {
		if err == services.ErrNoToken {
			return SendError(c, errors.QueryNotReady)
		}
		return SendError(c, errors.QueryFailed, errors.WithDetails(err.Error()))
	}

	session.RememberPage(state.Result)

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

// UpdateFilter edits one filter field; pagination resets to the first
// page in the same transition
func (h *SessionHandler) UpdateFilter(c echo.Context) error {
	session, ok, err := h.lookup(c)
	if !ok {
		return err
	}

	var req dto.FilterUpdateRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Malformed request body"))
	}

	field := services.FilterField(req.Field)
	check, known := filterRules[field]
	if !known {
		return SendError(c, errors.ValidationGeneral,
			errors.WithDetails("field must be one of: startDate, endDate, minPrice, email, phone"))
	}

	if req.Value != "" && check.rule != "" {
		if err := validation.GetValidator().GetValidate().Var(req.Value, check.rule); err != nil {
			return SendError(c, check.code)
		}
	}

	session.State.SetFilter(field, req.Value)

	return c.JSON(http.StatusOK, h.stateOf(session))
}

// ToggleSort applies a column-header click; the cursor is left untouched
func (h *SessionHandler) ToggleSort(c echo.Context) error {
	session, ok, err := h.lookup(c)
	if !ok {
		return err
	}

	var req dto.SortToggleRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Malformed request body"))
	}

	if !models.IsValidSortField(req.Field) {
		return SendError(c, errors.ValidationInvalidSort)
	}

	session.State.ToggleSort(req.Field)

	return c.JSON(http.StatusOK, h.stateOf(session))
}

// NextPage advances past the page the session last saw
func (h *SessionHandler) NextPage(c echo.Context) error {
	return h.movePage(c, func(session *services.DashboardSession) bool {
		return session.State.NextPage(session.LastPage())
	})
}

// PrevPage moves back before the page the session last saw
func (h *SessionHandler) PrevPage(c echo.Context) error {
	return h.movePage(c, func(session *services.DashboardSession) bool {
		return session.State.PrevPage(session.LastPage())
	})
}

func (h *SessionHandler) movePage(c echo.Context, move func(*services.DashboardSession) bool) error {
	session, ok, err := h.lookup(c)
	if !ok {
		return err
	}

	moved := move(session)
	_, _, cursor := session.State.Snapshot()

	return c.JSON(http.StatusOK, dto.PageMoveResponse{
		Moved: moved,
		Pagination: dto.PaginationInfo{
			Before: cursor.Before,
			After:  cursor.After,
		},
	})
}

func (h *SessionHandler) lookup(c echo.Context) (*services.DashboardSession, bool, error) {
	session, ok := h.registry.Get(c.Param("id"))
	if !ok {
		return nil, false, SendError(c, errors.SessionNotFound)
	}
	return session, true, nil
}

func (h *SessionHandler) stateOf(session *services.DashboardSession) dto.SessionStateResponse {
	filters, sort, cursor := session.State.Snapshot()

	return dto.SessionStateResponse{
		Filters: dto.SessionFilters{
			StartDate: filters.StartDate,
			EndDate:   filters.EndDate,
			MinPrice:  filters.MinPrice,
			Email:     filters.Email,
			Phone:     filters.Phone,
		},
		Sort: dto.SessionSort{
			Field: sort.Field,
			Order: sort.Direction,
		},
		Pagination: dto.PaginationInfo{
			Before: cursor.Before,
			After:  cursor.After,
		},
	}
}
