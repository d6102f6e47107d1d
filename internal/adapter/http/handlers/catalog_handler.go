package handlers

import (
	"errors"
	"net/http"

	request "oficina_mecanica/internal/adapter/http/dto/request"
	response "oficina_mecanica/internal/adapter/http/dto/response"
	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase"
	"oficina_mecanica/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)

// CatalogHandler handles HTTP requests for the service catalog.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateService(c.Request.Context(), usecase.ServiceInput{
		Name:           payload.Name,
		Description:    payload.Description,
		Price:          payload.Price,
		EstimatedHours: payload.EstimatedHours,
	})
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromService(created))
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.ListServices(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServices(services))
}

func (h *CatalogHandler) GetServiceByID(c *gin.Context) {
	service, err := h.usecase.GetServiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(service))
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateService(c.Request.Context(), c.Param("id"), usecase.ServiceInput{
		Name:           payload.Name,
		Description:    payload.Description,
		Price:          payload.Price,
		EstimatedHours: payload.EstimatedHours,
	})
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(updated))
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	var validation *entities.ValidationError
	switch {
	case errors.As(err, &validation):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", validation.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidServiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceInUse):
		return pkg.NewDomainErrorSimple("SERVICE_IN_USE", "Service is referenced by existing quotes", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
