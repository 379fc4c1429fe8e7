package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"salesboard/internal/config"
	"salesboard/internal/dto"
	"salesboard/internal/models"

	"github.com/shopspring/decimal"
)

// SalesClient fetches sales pages from the upstream API. Its failure
// policy is injected: "degrade" answers any upstream failure with a
// generator call using the same cleaned parameter set, "strict"
// propagates the error.
type SalesClient struct {
	cfg       *config.UpstreamConfig
	client    *http.Client
	generator SalesGeneratorInterface
	logger    *slog.Logger
	metrics   MetricsRecorderInterface
}

// NewSalesClient creates a new sales API client
func NewSalesClient(
	cfg *config.UpstreamConfig,
	generator SalesGeneratorInterface,
	logger *slog.Logger,
	metrics MetricsRecorderInterface,
) SalesFetcherInterface {
	return &SalesClient{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		generator: generator,
		logger:    logger,
		metrics:   metrics,
	}
}

// BuildQueryParams assembles the cleaned parameter set of a query:
// the fixed page size, sort and order, every set filter, and at most one
// cursor token. Empty values never appear in the result.
func BuildQueryParams(filters models.FilterSet, cursor models.PageCursor, sort models.SortSpec) QueryParams {
	params := QueryParams{
		"limit": strconv.Itoa(models.PageSize),
		"sort":  sort.Field,
		"order": sort.Direction,
	}

	merge := func(key, value string) {
		if value != "" {
			params[key] = value
		}
	}

	merge("startDate", filters.StartDate)
	merge("endDate", filters.EndDate)
	merge("minPrice", filters.MinPrice)
	merge("email", filters.Email)
	merge("phone", filters.Phone)
	merge("before", cursor.Before)
	merge("after", cursor.After)

	return params
}

// Fetch retrieves one page of sales for the given query state
func (s *SalesClient) Fetch(
	ctx context.Context,
	token string,
	filters models.FilterSet,
	cursor models.PageCursor,
	sort models.SortSpec,
) (*models.QueryResult, error) {
	params := BuildQueryParams(filters, cursor, sort)

	if !s.cfg.Enabled {
		s.metrics.IncrementCounter("query.fetched", map[string]string{"source": "generator", "status": "ok"})
		return s.generator.Generate(ctx, params)
	}

	start := time.Now()
	result, err := s.fetchUpstream(ctx, token, params)
	s.metrics.RecordProcessingTime("query.upstream", time.Since(start))

	if err != nil {
		s.metrics.IncrementCounter("query.fetched", map[string]string{"source": "upstream", "status": "error"})

		if s.cfg.FailurePolicy == config.FailurePolicyStrict {
			return nil, err
		}

		s.logger.Warn("upstream fetch failed, degrading to generated data", "error", err)
		s.metrics.IncrementCounter("query.degraded", nil)
		return s.generator.Generate(ctx, params)
	}

	s.metrics.IncrementCounter("query.fetched", map[string]string{"source": "upstream", "status": "ok"})
	return result, nil
}

func (s *SalesClient) buildRequest(ctx context.Context, token string, params QueryParams) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+s.cfg.SalesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	query := url.Values{}
	for key, value := range params {
		query.Set(key, value)
	}
	req.URL.RawQuery = query.Encode()

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	return req, nil
}

func (s *SalesClient) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("sales request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err,
		)
		return nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, body, nil
}

func (s *SalesClient) fetchUpstream(ctx context.Context, token string, params QueryParams) (*models.QueryResult, error) {
	req, err := s.buildRequest(ctx, token, params)
	if err != nil {
		return nil, err
	}

	resp, body, err := s.do(req)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		var payload dto.SalesResponse
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, fmt.Errorf("decode sales response: %w", err)
		}
		return normalizeResponse(&payload), nil

	default:
		return nil, fmt.Errorf("unexpected sales response (%d): %s", resp.StatusCode, string(body))
	}
}

// normalizeResponse maps the wire payload onto the canonical model. This
// is the single point where the upstream's dual field-naming convention
// is resolved; everything past it sees one shape.
func normalizeResponse(payload *dto.SalesResponse) *models.QueryResult {
	items := make([]models.Sale, 0, len(payload.Data))
	for i := range payload.Data {
		items = append(items, normalizeSale(&payload.Data[i]))
	}

	return &models.QueryResult{
		Items: items,
		Pagination: models.PageCursor{
			Before: payload.Pagination.Before,
			After:  payload.Pagination.After,
		},
	}
}

func normalizeSale(record *dto.UpstreamSale) models.Sale {
	return models.Sale{
		ID:      record.ID,
		Date:    normalizeDate(firstNonEmpty(record.Date, record.CreatedAt)),
		Amount:  firstNonNil(record.Price, record.Amount),
		Email:   firstNonEmpty(record.Email, record.CustomerEmail),
		Phone:   firstNonEmpty(record.Phone, record.PhoneNumber),
		Product: firstNonEmpty(record.Product, record.ProductName),
		Status:  record.Status,
	}
}

// normalizeDate reduces a timestamp to its calendar date. Values that are
// neither a date nor an RFC 3339 timestamp pass through unchanged.
func normalizeDate(value string) string {
	if _, err := time.Parse(models.DateLayout, value); err == nil {
		return value
	}

	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts.Format(models.DateLayout)
	}

	return value
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func firstNonNil(a, b *decimal.Decimal) decimal.Decimal {
	if a != nil {
		return *a
	}
	if b != nil {
		return *b
	}
	return decimal.Zero
}
