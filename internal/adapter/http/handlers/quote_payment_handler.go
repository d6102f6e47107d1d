package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	response "oficina_mecanica/internal/adapter/http/dto/response"
	"oficina_mecanica/internal/usecase"
	"oficina_mecanica/pkg"

	"github.com/gin-gonic/gin"
)

// QuotePaymentHandler handles HTTP requests for quote payments.

type QuotePaymentHandler struct {
	usecase usecase.IQuotePaymentUseCase
}

func NewQuotePaymentHandler(uc usecase.IQuotePaymentUseCase) *QuotePaymentHandler {
	return &QuotePaymentHandler{usecase: uc}
}

// ChargeQuote charges an approved quote using quote_id in path. The request
// body carries the provider payload (payment method, payer); the amount is
// always taken from the stored quote.
func (h *QuotePaymentHandler) ChargeQuote(c *gin.Context) {
	quoteID := c.Param("quote_id")
	log.Printf("[payment][handler] charge start quote_id=%s", quoteID)
	mockMode := isPaymentGatewayMockEnabled()
	payload, err := readProviderPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload quote_id=%s err=%v", quoteID, err)
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload quote_id=%s err=%v", quoteID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.ChargeQuote(c.Request.Context(), quoteID, payload)
	if err != nil {
		log.Printf("[payment][handler] charge failed quote_id=%s err=%v", quoteID, err)
		appErr := mapQuotePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] charge success quote_id=%s payment_id=%s status=%s", quoteID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromQuotePayment(created))
}

// GetPaymentByQuoteID returns the latest payment for a quote.
func (h *QuotePaymentHandler) GetPaymentByQuoteID(c *gin.Context) {
	quoteID := c.Param("quote_id")
	log.Printf("[payment][handler] get-by-quote start quote_id=%s", quoteID)

	payments, err := h.usecase.ListByQuoteID(c.Request.Context(), quoteID)
	if err != nil {
		log.Printf("[payment][handler] get-by-quote failed quote_id=%s err=%v", quoteID, err)
		appErr := mapQuotePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		log.Printf("[payment][handler] get-by-quote not-found quote_id=%s", quoteID)
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	log.Printf("[payment][handler] get-by-quote success quote_id=%s payment_id=%s status=%s", quoteID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromQuotePayment(latest))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapQuotePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotApproved):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_APPROVED", "Quote not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
