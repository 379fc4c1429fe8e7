package models

import "github.com/shopspring/decimal"

// ChartPoint is one date-bucketed revenue point of the dashboard chart
type ChartPoint struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// PageSummary aggregates the currently displayed page of sales. It is a
// page-local view, not a historical one.
type PageSummary struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	SaleCount    int             `json:"sale_count"`
	StatusCounts map[string]int  `json:"status_counts"`
}
