package entities

import "time"

// Service is a catalog entry (serviço) the shop offers.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Pricing notes:
//   - Price is the current unit price; quotes capture it as a snapshot at
//     save time, so editing a Service never rewrites persisted quotes.
//   - A Service referenced by any quote line item cannot be deleted.
type Service struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	EstimatedHours float64   `json:"estimated_hours"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
