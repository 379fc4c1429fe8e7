package dto

import "github.com/shopspring/decimal"

// UpstreamSale is the wire shape of a sale as returned by the sales API.
// The API is in the middle of a field-naming migration and answers with
// either a compact convention (price, product, email, phone, date) or a
// separated one (amount, product_name, customer_email, phone_number,
// created_at). Both sets are decoded here; normalization into the
// canonical model happens once, at the client ingestion boundary.
type UpstreamSale struct {
	ID string `json:"id"`

	Date      string `json:"date,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`

	Price  *decimal.Decimal `json:"price,omitempty"`
	Amount *decimal.Decimal `json:"amount,omitempty"`

	Product     string `json:"product,omitempty"`
	ProductName string `json:"product_name,omitempty"`

	Email         string `json:"email,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`

	Phone       string `json:"phone,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`

	Status string `json:"status"`
}

// UpstreamPagination carries the opaque cursor tokens of a response
type UpstreamPagination struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// SalesResponse is the envelope returned by GET /sales
type SalesResponse struct {
	Data       []UpstreamSale     `json:"data"`
	Pagination UpstreamPagination `json:"pagination"`
}
