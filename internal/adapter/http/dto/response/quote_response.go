package response

import (
	"time"

	"oficina_mecanica/internal/domain/entities"
)

type QuoteItemResponse struct {
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

type QuoteResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customer_id"`
	Date       string              `json:"date"`
	Items      []QuoteItemResponse `json:"items"`
	Notes      string              `json:"notes"`
	Status     string              `json:"status"`
	Total      float64             `json:"total"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuoteItemResponse{
			ServiceID:   it.ServiceID,
			ServiceName: it.ServiceName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return QuoteResponse{
		ID:         q.ID,
		CustomerID: q.CustomerID,
		Date:       q.Date,
		Items:      items,
		Notes:      q.Notes,
		Status:     string(q.Status),
		Total:      q.Total,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
