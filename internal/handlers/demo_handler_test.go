package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salesboard/internal/dto"
	"salesboard/internal/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// DemoHandlerSuite defines the test suite for the demo upstream handlers
type DemoHandlerSuite struct {
	suite.Suite
	handler *DemoHandler
	echo    *echo.Echo
	secret  []byte
}

// SetupTest runs before each test in the suite
func (s *DemoHandlerSuite) SetupTest() {
	s.secret = []byte("test-secret")
	s.handler = NewDemoHandler(services.NewSalesGenerator(0), s.secret, time.Hour)
	s.echo = echo.New()
}

// TestDemoHandlerSuite runs the test suite
func TestDemoHandlerSuite(t *testing.T) {
	suite.Run(t, new(DemoHandlerSuite))
}

func (s *DemoHandlerSuite) createContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *DemoHandlerSuite) TestAuthorize_IssuesVerifiableToken() {
	c, rec := s.createContext(http.MethodPost, "/getAuthorize")

	err := s.handler.Authorize(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.AuthorizeResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.NotEmpty(resp.Token)

	parsed, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	s.NoError(err)
	s.True(parsed.Valid)
}

func (s *DemoHandlerSuite) TestListSales_ServesFullPageInEnvelope() {
	c, rec := s.createContext(http.MethodGet, "/sales?limit=50")

	err := s.handler.ListSales(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.SalesResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Data, 50)
	s.NotEmpty(resp.Pagination.After)
	s.Empty(resp.Pagination.Before)
}

func (s *DemoHandlerSuite) TestListSales_AlternatesFieldNamingConventions() {
	sawCompact := false
	sawSeparated := false

	for i := 0; i < 2; i++ {
		c, rec := s.createContext(http.MethodGet, "/sales")
		s.Require().NoError(s.handler.ListSales(c))

		var resp dto.SalesResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Require().NotEmpty(resp.Data)

		record := resp.Data[0]
		if record.Price != nil {
			sawCompact = true
			s.NotEmpty(record.Date)
			s.NotEmpty(record.Product)
			s.Nil(record.Amount)
		}
		if record.Amount != nil {
			sawSeparated = true
			s.NotEmpty(record.CreatedAt)
			s.NotEmpty(record.ProductName)
			s.Nil(record.Price)
		}
	}

	s.True(sawCompact, "One response should use the compact field names")
	s.True(sawSeparated, "One response should use the separated field names")
}

func (s *DemoHandlerSuite) TestListSales_ReportsPreviousCursorOnForwardNavigation() {
	c, rec := s.createContext(http.MethodGet, "/sales?after=some-cursor")

	err := s.handler.ListSales(c)
	s.NoError(err)

	var resp dto.SalesResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.NotEmpty(resp.Pagination.Before)
	s.NotEmpty(resp.Pagination.After)
}

func (s *DemoHandlerSuite) TestListSales_HonorsSortParams() {
	c, rec := s.createContext(http.MethodGet, "/sales?sort=price&order=desc")

	err := s.handler.ListSales(c)
	s.NoError(err)

	var resp dto.SalesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().NotEmpty(resp.Data)

	amount := func(record *dto.UpstreamSale) decimal.Decimal {
		if record.Price != nil {
			return *record.Price
		}
		return *record.Amount
	}

	for i := 0; i < len(resp.Data)-1; i++ {
		s.True(amount(&resp.Data[i]).GreaterThanOrEqual(amount(&resp.Data[i+1])),
			"Amounts should be non-increasing")
	}
}
