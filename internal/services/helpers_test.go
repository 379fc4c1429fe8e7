package services

import (
	"context"
	"io"
	"log/slog"

	"salesboard/internal/models"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubGenerator is an inline stand-in for SalesGeneratorInterface to avoid
// an import cycle with service_mocks
type stubGenerator struct {
	GenerateFunc func(ctx context.Context, params QueryParams) (*models.QueryResult, error)
}

func (g *stubGenerator) Generate(ctx context.Context, params QueryParams) (*models.QueryResult, error) {
	if g.GenerateFunc != nil {
		return g.GenerateFunc(ctx, params)
	}
	return &models.QueryResult{}, nil
}

// stubFetcher is an inline stand-in for SalesFetcherInterface
type stubFetcher struct {
	FetchFunc func(ctx context.Context, token string, filters models.FilterSet, cursor models.PageCursor, sort models.SortSpec) (*models.QueryResult, error)
}

func (f *stubFetcher) Fetch(ctx context.Context, token string, filters models.FilterSet, cursor models.PageCursor, sort models.SortSpec) (*models.QueryResult, error) {
	if f.FetchFunc != nil {
		return f.FetchFunc(ctx, token, filters, cursor, sort)
	}
	return &models.QueryResult{}, nil
}
