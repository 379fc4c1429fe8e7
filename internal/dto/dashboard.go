package dto

import "salesboard/internal/models"

// SalesQuery binds the query parameters accepted by the dashboard API
type SalesQuery struct {
	StartDate string `query:"start_date" validate:"omitempty,iso_date"`
	EndDate   string `query:"end_date" validate:"omitempty,iso_date"`
	MinPrice  string `query:"min_price" validate:"omitempty,money"`
	Email     string `query:"email" validate:"omitempty,email"`
	Phone     string `query:"phone"`
	Sort      string `query:"sort" validate:"omitempty,sort_field"`
	Order     string `query:"order" validate:"omitempty,sort_order"`
	Before    string `query:"before"`
	After     string `query:"after"`
}

// SaleItem is the canonical sale shape served by the dashboard API
type SaleItem struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Amount  string `json:"amount"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Product string `json:"product"`
	Status  string `json:"status"`
}

// PaginationInfo contains the cursors for navigating away from this page
type PaginationInfo struct {
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
}

// SalesPageResponse is the response for GET /api/v1/sales
type SalesPageResponse struct {
	Sales      []SaleItem     `json:"sales"`
	Pagination PaginationInfo `json:"pagination"`
	Fetching   bool           `json:"fetching"`
}

// ChartPointItem is one date-bucketed point of the revenue chart
type ChartPointItem struct {
	Date  string `json:"date"`
	Total string `json:"total"`
}

// SummaryInfo aggregates the current page
type SummaryInfo struct {
	TotalRevenue string         `json:"total_revenue"`
	SaleCount    int            `json:"sale_count"`
	StatusCounts map[string]int `json:"status_counts"`
}

// DashboardResponse is the response for GET /api/v1/dashboard
type DashboardResponse struct {
	Summary    SummaryInfo      `json:"summary"`
	Chart      []ChartPointItem `json:"chart"`
	Sales      []SaleItem       `json:"sales"`
	Pagination PaginationInfo   `json:"pagination"`
	Fetching   bool             `json:"fetching"`
}

// NewSaleItems converts canonical sales into API items
func NewSaleItems(sales []models.Sale) []SaleItem {
	items := make([]SaleItem, 0, len(sales))
	for i := range sales {
		s := &sales[i]
		items = append(items, SaleItem{
			ID:      s.ID,
			Date:    s.Date,
			Amount:  s.Amount.String(),
			Email:   s.Email,
			Phone:   s.Phone,
			Product: s.Product,
			Status:  s.Status,
		})
	}
	return items
}
