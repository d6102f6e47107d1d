package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// QuotePayment records a charge taken for an approved quote.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (quote_id-index): quote_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original gateway response (JSON) for
//     traceability/audit; ProviderPayload is the parsed form for querying.
type QuotePayment struct {
	ID      string        `json:"id"`
	QuoteID string        `json:"quote_id"`
	Amount  float64       `json:"amount"`
	Date    time.Time     `json:"date"`
	Status  PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
