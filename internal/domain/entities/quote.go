package entities

import "time"

// QuoteStatus represents the workflow state of a quote (orçamento).
//
// Quotes are always created as rascunho; later transitions only touch the
// status field and never the line items or totals.
type QuoteStatus string

const (
	QuoteStatusRascunho  QuoteStatus = "rascunho"
	QuoteStatusEnviado   QuoteStatus = "enviado"
	QuoteStatusAprovado  QuoteStatus = "aprovado"
	QuoteStatusRejeitado QuoteStatus = "rejeitado"
	QuoteStatusConcluido QuoteStatus = "concluido"
	QuoteStatusPendente  QuoteStatus = "pendente"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusRascunho, QuoteStatusEnviado, QuoteStatusAprovado,
		QuoteStatusRejeitado, QuoteStatusConcluido, QuoteStatusPendente:
		return true
	}
	return false
}

// QuoteItem is a persisted line item. ServiceName, UnitPrice and Subtotal are
// point-in-time snapshots resolved from the catalog when the quote was last
// saved; catalog edits after that never change them.
//
// Invariant: Subtotal == UnitPrice * Quantity (rounded to cents).
type QuoteItem struct {
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

// Quote is the persisted estimate for a customer's vehicle work.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariants:
//   - at least one line item; a customer reference that resolved at save time
//   - Total == sum of item subtotals as of the last save
type Quote struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	Date       string      `json:"date"`
	Items      []QuoteItem `json:"items"`
	Notes      string      `json:"notes"`
	Status     QuoteStatus `json:"status"`
	Total      float64     `json:"total"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// NormalizeQuantity coerces any quantity input to a positive integer.
// Zero, negative or otherwise unusable values fall back to 1.
func NormalizeQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}
