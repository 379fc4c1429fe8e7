package services

import (
	"sort"

	"salesboard/internal/models"

	"github.com/shopspring/decimal"
)

// ChartSeries groups the page's sales by date, summing amounts per date,
// and emits date-ascending points. The series reflects only the rows of
// the current page, never historical data.
func ChartSeries(sales []models.Sale) []models.ChartPoint {
	totals := make(map[string]decimal.Decimal)
	for i := range sales {
		totals[sales[i].Date] = totals[sales[i].Date].Add(sales[i].Amount)
	}

	dates := make([]string, 0, len(totals))
	for date := range totals {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	points := make([]models.ChartPoint, 0, len(dates))
	for _, date := range dates {
		points = append(points, models.ChartPoint{Date: date, Total: totals[date]})
	}

	return points
}

// Summarize derives the page-local summary: total revenue, record count,
// and per-status counts
func Summarize(sales []models.Sale) models.PageSummary {
	summary := models.PageSummary{
		SaleCount:    len(sales),
		StatusCounts: make(map[string]int),
	}

	for i := range sales {
		summary.TotalRevenue = summary.TotalRevenue.Add(sales[i].Amount)
		summary.StatusCounts[sales[i].Status]++
	}

	return summary
}
