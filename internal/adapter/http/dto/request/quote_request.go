package request

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Quantity tolerates the loose inputs the quote form historically produced:
// a JSON number, a numeric string, or garbage. Anything unusable decodes to
// 0 and is coerced to 1 downstream; decoding itself never fails the request.
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*q = 0
		return nil
	}
	s = strings.Trim(s, `"`)

	if n, err := strconv.Atoi(s); err == nil {
		*q = Quantity(n)
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*q = Quantity(int(f))
		return nil
	}
	*q = 0
	return nil
}

var _ json.Unmarshaler = (*Quantity)(nil)

// QuoteItemRequest references a catalog service plus a quantity. Unit prices
// are never accepted from the client; the save path resolves them from the
// catalog.
type QuoteItemRequest struct {
	ServiceID string   `json:"service_id" binding:"required"`
	Quantity  Quantity `json:"quantity"`
}

// QuoteRequest is the quote form payload. Status is honored only on update;
// creation always starts at rascunho.
type QuoteRequest struct {
	CustomerID string             `json:"customer_id"`
	Date       string             `json:"date"`
	Items      []QuoteItemRequest `json:"items"`
	Notes      string             `json:"notes"`
	Status     string             `json:"status"`
}

// QuoteStatusRequest carries a bare status transition.
type QuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
