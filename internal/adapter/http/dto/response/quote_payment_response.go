package response

import (
	"time"

	"oficina_mecanica/internal/domain/entities"
)

type QuotePaymentResponse struct {
	ID      string    `json:"id"`
	QuoteID string    `json:"quote_id"`
	Amount  float64   `json:"amount"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`
}

func FromQuotePayment(p entities.QuotePayment) QuotePaymentResponse {
	return QuotePaymentResponse{
		ID:      p.ID,
		QuoteID: p.QuoteID,
		Amount:  p.Amount,
		Date:    p.Date,
		Status:  string(p.Status),
	}
}

func FromQuotePayments(payments []entities.QuotePayment) []QuotePaymentResponse {
	out := make([]QuotePaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromQuotePayment(p))
	}
	return out
}
