package services

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"salesboard/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// Generated amounts are uniform in [minAmount, minAmount+amountSpread).
	minAmount    = 500
	amountSpread = 7999

	// dateSpreadDays guarantees a repeating 30-day date spread across the
	// page regardless of page size.
	dateSpreadDays = 30
)

// salesGenerator produces synthetic sales pages honoring the same
// filter/sort contract as the real API. Used for demo deployments and
// as the degrade target when the upstream is unreachable.
type salesGenerator struct {
	latency time.Duration
	catalog []string
	faker   *gofakeit.Faker

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSalesGenerator creates a new generator with the given artificial latency
func NewSalesGenerator(latency time.Duration) SalesGeneratorInterface {
	seed := time.Now().UnixNano()
	return &salesGenerator{
		latency: latency,
		catalog: []string{
			"Starter Plan",
			"Professional Plan",
			"Enterprise Plan",
		},
		faker: gofakeit.New(uint64(seed)),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Generate produces exactly one full page of synthetic sales. The
// artificial latency emulates network behavior and honors cancellation.
func (g *salesGenerator) Generate(ctx context.Context, params QueryParams) (*models.QueryResult, error) {
	if g.latency > 0 {
		timer := time.NewTimer(g.latency)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	today := time.Now()
	sales := make([]models.Sale, 0, models.PageSize)
	statuses := []string{models.SaleStatusPaid, models.SaleStatusPending, models.SaleStatusFailed}

	for i := 0; i < models.PageSize; i++ {
		amount := minAmount + g.rng.Float64()*amountSpread

		sales = append(sales, models.Sale{
			ID:      uuid.New().String(),
			Date:    today.AddDate(0, 0, -(i % dateSpreadDays)).Format(models.DateLayout),
			Amount:  decimal.NewFromFloat(amount).Round(2),
			Email:   g.faker.Email(),
			Phone:   g.faker.Phone(),
			Product: g.catalog[g.rng.Intn(len(g.catalog))],
			Status:  statuses[g.rng.Intn(len(statuses))],
		})
	}

	if field := params["sort"]; field != "" {
		sortSales(sales, field, params["order"])
	}

	// Forward pagination is always reported; a previous page only when
	// the request itself was a forward navigation. Mirrors the sample
	// API's behavior, dead-end "previous" after a filter reset included.
	pagination := models.PageCursor{
		After: newCursorToken(),
	}
	if params["after"] != "" {
		pagination.Before = newCursorToken()
	}

	return &models.QueryResult{
		Items:      sales,
		Pagination: pagination,
	}, nil
}

// sortSales orders the page in place by the requested field, mapping the
// logical "price" key onto the amount attribute. The sort is unstable;
// ties land in arbitrary order.
func sortSales(sales []models.Sale, field, order string) {
	descending := order == models.SortDescending

	sort.Slice(sales, func(i, j int) bool {
		a, b := &sales[i], &sales[j]
		if descending {
			a, b = b, a
		}

		switch field {
		case models.SortFieldPrice:
			return a.Amount.LessThan(b.Amount)
		default:
			return a.Date < b.Date
		}
	})
}

func newCursorToken() string {
	return uuid.New().String()
}
