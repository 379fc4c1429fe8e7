package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"salesboard/internal/models"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// ErrNoToken is returned while the query cache is gated on token acquisition
var ErrNoToken = errors.New("query disabled: no authorization token available")

// QueryState is the observable outcome of a cache lookup. Loading means
// no data exists yet for the key; Fetching means a background refetch is
// in flight while the stale Result keeps being served.
type QueryState struct {
	Result   *models.QueryResult
	Loading  bool
	Fetching bool
}

type cacheEntry struct {
	result    *models.QueryResult
	fetchedAt time.Time
}

// QueryCache caches query results under the full parameter set and
// serves them stale-while-revalidate: within the freshness window a hit
// is returned as-is; past it the stale value is served while a single
// background refetch runs. Results are isolated per key, so a late
// response for superseded parameters can only ever fill its own slot.
type QueryCache struct {
	store   *gocache.Cache
	group   singleflight.Group
	fetcher SalesFetcherInterface
	ttl     time.Duration
	timeout time.Duration
	logger  *slog.Logger
	metrics MetricsRecorderInterface
}

// NewQueryCache creates a new query cache on top of the given fetcher
func NewQueryCache(
	fetcher SalesFetcherInterface,
	ttl time.Duration,
	retention time.Duration,
	timeout time.Duration,
	logger *slog.Logger,
	metrics MetricsRecorderInterface,
) QueryCacheInterface {
	return &QueryCache{
		store:   gocache.New(retention, retention),
		fetcher: fetcher,
		ttl:     ttl,
		timeout: timeout,
		logger:  logger,
		metrics: metrics,
	}
}

// queryKey serializes the full parameter set into the cache key. Token
// presence is part of the key; the token value is not, since all queries
// of a session share one token.
func queryKey(token string, filters models.FilterSet, cursor models.PageCursor, sort models.SortSpec) string {
	return fmt.Sprintf("t=%t|sd=%s|ed=%s|mp=%s|em=%s|ph=%s|b=%s|a=%s|s=%s|o=%s",
		token != "",
		filters.StartDate, filters.EndDate, filters.MinPrice, filters.Email, filters.Phone,
		cursor.Before, cursor.After,
		sort.Field, sort.Direction,
	)
}

// Query returns the cached result for the parameter set, fetching on a
// miss and revalidating in the background on a stale hit. It blocks only
// when no data exists for the key yet.
func (qc *QueryCache) Query(
	ctx context.Context,
	token string,
	filters models.FilterSet,
	cursor models.PageCursor,
	sort models.SortSpec,
) (*QueryState, error) {
	if token == "" {
		return &QueryState{Loading: true}, ErrNoToken
	}

	key := queryKey(token, filters, cursor, sort)

	if cached, found := qc.store.Get(key); found {
		entry := cached.(*cacheEntry)

		if time.Since(entry.fetchedAt) < qc.ttl {
			qc.metrics.IncrementCounter("cache.lookup", map[string]string{"outcome": "hit"})
			return &QueryState{Result: entry.result}, nil
		}

		qc.metrics.IncrementCounter("cache.lookup", map[string]string{"outcome": "stale"})
		qc.revalidate(key, token, filters, cursor, sort)
		return &QueryState{Result: entry.result, Fetching: true}, nil
	}

	qc.metrics.IncrementCounter("cache.lookup", map[string]string{"outcome": "miss"})

	result, err, _ := qc.group.Do(key, func() (interface{}, error) {
		return qc.fetchAndStore(ctx, key, token, filters, cursor, sort)
	})
	if err != nil {
		return &QueryState{Loading: true}, err
	}

	return &QueryState{Result: result.(*models.QueryResult)}, nil
}

// revalidate kicks off a background refetch for a stale key. Concurrent
// revalidations of the same key collapse into one flight.
func (qc *QueryCache) revalidate(key, token string, filters models.FilterSet, cursor models.PageCursor, sort models.SortSpec) {
	go func() {
		_, err, _ := qc.group.Do(key, func() (interface{}, error) {
			// Detached from the caller: the stale value has already been
			// served, the refresh outlives that request.
			ctx, cancel := context.WithTimeout(context.Background(), qc.timeout)
			defer cancel()

			return qc.fetchAndStore(ctx, key, token, filters, cursor, sort)
		})
		if err != nil {
			qc.logger.Warn("background revalidation failed, stale entry retained",
				"key", key,
				"error", err,
			)
		}
	}()
}

func (qc *QueryCache) fetchAndStore(
	ctx context.Context,
	key, token string,
	filters models.FilterSet,
	cursor models.PageCursor,
	sort models.SortSpec,
) (*models.QueryResult, error) {
	result, err := qc.fetcher.Fetch(ctx, token, filters, cursor, sort)
	if err != nil {
		return nil, err
	}

	qc.store.Set(key, &cacheEntry{result: result, fetchedAt: time.Now()}, gocache.DefaultExpiration)
	return result, nil
}
