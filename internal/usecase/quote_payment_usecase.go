package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"
)

var (
	ErrQuoteNotApproved      = errors.New("quote not approved")
	ErrInvalidPaymentPayload = errors.New("invalid payment payload")
	ErrGatewayNotConfigured  = errors.New("payment gateway not configured")
)

// IQuotePaymentUseCase encapsulates charging an approved quote.
//
// The charge amount is always the quote's persisted total; the caller's
// payload carries only payment method/payer details for the provider.
type IQuotePaymentUseCase interface {
	ChargeQuote(ctx context.Context, quoteID string, payload json.RawMessage) (entities.QuotePayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error)
}

type QuotePaymentUseCase struct {
	repo      interfaces.IQuotePaymentRepository
	quoteRepo interfaces.IQuoteRepository
	gateway   interfaces.IPaymentGateway
}

var _ IQuotePaymentUseCase = (*QuotePaymentUseCase)(nil)

func NewQuotePaymentUseCase(repo interfaces.IQuotePaymentRepository, quoteRepo interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway) *QuotePaymentUseCase {
	return &QuotePaymentUseCase{repo: repo, quoteRepo: quoteRepo, gateway: gateway}
}

func (u *QuotePaymentUseCase) ChargeQuote(ctx context.Context, quoteID string, payload json.RawMessage) (entities.QuotePayment, error) {
	log.Printf("[payment][usecase] charge start quote_id=%q payload_len=%d", quoteID, len(payload))

	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.QuotePayment{}, ErrInvalidQuoteID
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured quote_id=%s", quoteID)
		return entities.QuotePayment{}, ErrGatewayNotConfigured
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		log.Printf("[payment][usecase] invalid payload quote_id=%s", quoteID)
		return entities.QuotePayment{}, ErrInvalidPaymentPayload
	}

	quote, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading quote quote_id=%s err=%v", quoteID, err)
		return entities.QuotePayment{}, err
	}
	if quote.ID == "" {
		return entities.QuotePayment{}, ErrQuoteNotFound
	}
	if quote.Status != entities.QuoteStatusAprovado {
		log.Printf("[payment][usecase] quote not approved quote_id=%s status=%s", quoteID, quote.Status)
		return entities.QuotePayment{}, ErrQuoteNotApproved
	}

	enriched, err := enrichPaymentPayload(payload, quote)
	if err != nil {
		return entities.QuotePayment{}, ErrInvalidPaymentPayload
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed quote_id=%s err=%v", quoteID, err)
		return entities.QuotePayment{}, err
	}
	log.Printf("[payment][usecase] gateway success quote_id=%s provider_payment_id=%s provider_status=%s", quoteID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed quote_id=%s err=%v", quoteID, err)
	}

	p := entities.QuotePayment{
		ID:                 providerPaymentID,
		QuoteID:            quoteID,
		Amount:             quote.Total,
		Date:               time.Now().UTC(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] repository create failed quote_id=%s payment_id=%s err=%v", quoteID, p.ID, err)
		return entities.QuotePayment{}, err
	}
	return created, nil
}

func (u *QuotePaymentUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

// enrichPaymentPayload links the provider request back to the quote and
// forces the charge amount to the persisted total. The stored quote, never
// the caller, is the source of truth for the amount.
func enrichPaymentPayload(payload json.RawMessage, quote entities.Quote) (json.RawMessage, error) {
	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, err
	}
	if req == nil {
		req = map[string]any{}
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = quote.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Orçamento %s", quote.ID)
	}
	req["transaction_amount"] = quote.Total

	return json.Marshal(req)
}

func paymentStatusFromProvider(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "accredited":
		return entities.PaymentStatusAprovado
	case "rejected", "cancelled":
		return entities.PaymentStatusNegado
	default:
		return entities.PaymentStatusPendente
	}
}
