package services

import (
	"testing"

	"salesboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AnalyticsTestSuite struct {
	suite.Suite
}

func TestAnalyticsSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsTestSuite))
}

func sale(date string, amount float64, status string) models.Sale {
	return models.Sale{
		Date:   date,
		Amount: decimal.NewFromFloat(amount),
		Status: status,
	}
}

// Chart Series Tests

func (s *AnalyticsTestSuite) TestChartSeries_SumsAmountsPerDate() {
	sales := []models.Sale{
		sale("2026-08-10", 100, models.SaleStatusPaid),
		sale("2026-08-10", 200, models.SaleStatusPending),
	}

	points := ChartSeries(sales)

	s.Require().Len(points, 1, "Sales of one date should collapse into one point")
	s.Equal("2026-08-10", points[0].Date)
	s.Equal("300", points[0].Total.String())
}

func (s *AnalyticsTestSuite) TestChartSeries_PointsAreDateAscending() {
	sales := []models.Sale{
		sale("2026-08-20", 50, models.SaleStatusPaid),
		sale("2026-08-05", 10, models.SaleStatusPaid),
		sale("2026-08-12", 25, models.SaleStatusPaid),
	}

	points := ChartSeries(sales)

	s.Require().Len(points, 3)
	s.Equal("2026-08-05", points[0].Date)
	s.Equal("2026-08-12", points[1].Date)
	s.Equal("2026-08-20", points[2].Date)
}

func (s *AnalyticsTestSuite) TestChartSeries_EmptyPageYieldsEmptySeries() {
	s.Empty(ChartSeries(nil))
	s.Empty(ChartSeries([]models.Sale{}))
}

func (s *AnalyticsTestSuite) TestChartSeries_PreservesCents() {
	sales := []models.Sale{
		sale("2026-08-10", 0.1, models.SaleStatusPaid),
		sale("2026-08-10", 0.2, models.SaleStatusPaid),
	}

	points := ChartSeries(sales)

	s.Require().Len(points, 1)
	s.Equal("0.3", points[0].Total.String(), "Decimal arithmetic must not drift")
}

// Summary Tests

func (s *AnalyticsTestSuite) TestSummarize_TotalsRevenueAndCounts() {
	sales := []models.Sale{
		sale("2026-08-10", 1000.50, models.SaleStatusPaid),
		sale("2026-08-11", 2000.25, models.SaleStatusPaid),
		sale("2026-08-12", 500, models.SaleStatusPending),
		sale("2026-08-13", 750, models.SaleStatusFailed),
	}

	summary := Summarize(sales)

	s.Equal("4250.75", summary.TotalRevenue.String())
	s.Equal(4, summary.SaleCount)
	s.Equal(2, summary.StatusCounts[models.SaleStatusPaid])
	s.Equal(1, summary.StatusCounts[models.SaleStatusPending])
	s.Equal(1, summary.StatusCounts[models.SaleStatusFailed])
}

func (s *AnalyticsTestSuite) TestSummarize_EmptyPage() {
	summary := Summarize(nil)

	s.True(summary.TotalRevenue.IsZero())
	s.Zero(summary.SaleCount)
	s.Empty(summary.StatusCounts)
}
