package handlers

import (
	"context"
	"errors"
	"net/http"

	request "oficina_mecanica/internal/adapter/http/dto/request"
	response "oficina_mecanica/internal/adapter/http/dto/response"
	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase"
	"oficina_mecanica/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for quotes (orçamentos).
//
// Create and update never accept prices from the client: the use case
// re-resolves every line item against the current catalog.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateQuote(c.Request.Context(), quoteInputFromRequest(payload))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(created))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListQuotes(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) GetQuoteByID(c *gin.Context) {
	quote, err := h.usecase.GetQuoteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateQuote(
		c.Request.Context(),
		c.Param("id"),
		quoteInputFromRequest(payload),
		entities.QuoteStatus(payload.Status),
	)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(updated))
}

// DeleteQuote is idempotent: deleting an unknown quote still answers 204.
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.DeleteQuote(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.ApproveQuote)
}

func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.RejectQuote)
}

// UpdateQuoteStatus applies an arbitrary status transition from the request
// body. Only the status field changes; items and total stay as saved.
func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	var payload request.QuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateQuoteStatus(c.Request.Context(), c.Param("id"), entities.QuoteStatus(payload.Status))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(updated))
}

func (h *QuoteHandler) patchQuoteStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Quote, error),
) {
	updated, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(updated))
}

func quoteInputFromRequest(payload request.QuoteRequest) usecase.QuoteInput {
	items := make([]usecase.QuoteItemInput, 0, len(payload.Items))
	for _, it := range payload.Items {
		items = append(items, usecase.QuoteItemInput{
			ServiceID: it.ServiceID,
			Quantity:  int(it.Quantity),
		})
	}
	return usecase.QuoteInput{
		CustomerID: payload.CustomerID,
		Date:       payload.Date,
		Items:      items,
		Notes:      payload.Notes,
	}
}

func mapQuoteError(err error) *pkg.AppError {
	var validation *entities.ValidationError
	switch {
	case errors.As(err, &validation):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", validation.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidQuoteStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
