package handlers

import (
	"net/http"
	"sync/atomic"
	"time"

	"salesboard/internal/dto"
	"salesboard/internal/errors"
	"salesboard/internal/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// demoQueryKeys are the parameters the demo sales endpoint honors,
// matching the parameter contract of the real upstream.
var demoQueryKeys = []string{
	"limit", "sort", "order",
	"startDate", "endDate", "minPrice", "email", "phone",
	"before", "after",
}

// DemoHandler implements a stand-in for the upstream sales API so the
// dashboard can be exercised end to end without external credentials.
// It issues its own signed tokens and serves generated pages.
type DemoHandler struct {
	generator services.SalesGeneratorInterface
	secret    []byte
	tokenTTL  time.Duration

	// responses alternate between the two field-naming conventions the
	// real API is known to answer with
	requests atomic.Uint64
}

// NewDemoHandler creates a new demo upstream handler
func NewDemoHandler(generator services.SalesGeneratorInterface, secret []byte, tokenTTL time.Duration) *DemoHandler {
	return &DemoHandler{
		generator: generator,
		secret:    secret,
		tokenTTL:  tokenTTL,
	}
}

// Authorize issues a short-lived HS256 token for subsequent sales calls
func (h *DemoHandler) Authorize(c echo.Context) error {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": "salesboard-demo",
		"iat": now.Unix(),
		"exp": now.Add(h.tokenTTL).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AuthorizeResponse{Token: signed})
}

// ListSales serves one generated page in the upstream wire format
func (h *DemoHandler) ListSales(c echo.Context) error {
	params := services.QueryParams{}
	for _, key := range demoQueryKeys {
		if value := c.QueryParam(key); value != "" {
			params[key] = value
		}
	}

	result, err := h.generator.Generate(c.Request().Context(), params)
	if err != nil {
		return SendError(c, errors.QueryFailed, errors.WithDetails(err.Error()))
	}

	separated := h.requests.Add(1)%2 == 0

	data := make([]dto.UpstreamSale, 0, len(result.Items))
	for _, sale := range result.Items {
		item := dto.UpstreamSale{
			ID:     sale.ID,
			Status: sale.Status,
		}
		amount := sale.Amount
		if separated {
			item.CreatedAt = sale.Date
			item.Amount = &amount
			item.ProductName = sale.Product
			item.CustomerEmail = sale.Email
			item.PhoneNumber = sale.Phone
		} else {
			item.Date = sale.Date
			item.Price = &amount
			item.Product = sale.Product
			item.Email = sale.Email
			item.Phone = sale.Phone
		}
		data = append(data, item)
	}

	return c.JSON(http.StatusOK, dto.SalesResponse{
		Data: data,
		Pagination: dto.UpstreamPagination{
			Before: result.Pagination.Before,
			After:  result.Pagination.After,
		},
	})
}
