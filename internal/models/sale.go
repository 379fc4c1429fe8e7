package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	SaleStatusPaid    = "paid"
	SaleStatusPending = "pending"
	SaleStatusFailed  = "failed"
)

const (
	// PageSize is the fixed page size for every sales query.
	PageSize = 50

	// DateLayout is the calendar-date format used for sale dates and filters.
	DateLayout = "2006-01-02"
)

var (
	ErrInvalidSaleStatus = errors.New("invalid sale status")
	ErrInvalidSaleDate   = errors.New("invalid sale date")
	ErrNegativeAmount    = errors.New("sale amount must not be negative")
)

// Sale represents a single sales transaction. Sales are immutable once
// ingested; a new query result replaces the previous page wholesale.
type Sale struct {
	ID      string          `json:"id"`
	Date    string          `json:"date"`
	Amount  decimal.Decimal `json:"amount"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Product string          `json:"product"`
	Status  string          `json:"status"`
}

// Validate validates the sale fields
func (s *Sale) Validate() error {
	if !IsValidSaleStatus(s.Status) {
		return ErrInvalidSaleStatus
	}

	if _, err := time.Parse(DateLayout, s.Date); err != nil {
		return ErrInvalidSaleDate
	}

	if s.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	return nil
}

// IsValidSaleStatus checks if the sale status is valid
func IsValidSaleStatus(status string) bool {
	switch status {
	case SaleStatusPaid, SaleStatusPending, SaleStatusFailed:
		return true
	default:
		return false
	}
}

// QueryResult is one fetched page of sales together with the cursors
// needed to navigate away from it. Items keep the server sort order.
type QueryResult struct {
	Items      []Sale     `json:"data"`
	Pagination PageCursor `json:"pagination"`
}
