package services

import (
	"context"
	"time"

	"salesboard/internal/models"
)

// QueryParams is the cleaned, flat parameter set of a sales query: the
// exact key/value pairs sent upstream. It never contains empty values.
type QueryParams map[string]string

// TokenProviderInterface acquires the bearer token gating all data calls.
// Acquire never fails the caller: on any error it yields the fallback
// token. The empty string is only returned before the first acquisition.
type TokenProviderInterface interface {
	Acquire(ctx context.Context) string
}

// SalesFetcherInterface fetches one page of sales for the given query state
type SalesFetcherInterface interface {
	Fetch(ctx context.Context, token string, filters models.FilterSet, cursor models.PageCursor, sort models.SortSpec) (*models.QueryResult, error)
}

// SalesGeneratorInterface produces a synthetic sales page honoring the
// same parameter contract as the real API
type SalesGeneratorInterface interface {
	Generate(ctx context.Context, params QueryParams) (*models.QueryResult, error)
}

// QueryCacheInterface serves cached query results with stale-while-revalidate
// semantics, keyed by the full parameter set
type QueryCacheInterface interface {
	Query(ctx context.Context, token string, filters models.FilterSet, cursor models.PageCursor, sort models.SortSpec) (*QueryState, error)
}

// MetricsRecorderInterface abstracts metrics recording so services can be
// tested without a Prometheus registry
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}
