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

var errInvalidCustomerPayload = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)

// CustomerHandler handles HTTP requests for customers and their vehicles.

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateCustomer(c.Request.Context(), customerInputFromRequest(payload))
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCustomer(created))
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.usecase.ListCustomers(c.Request.Context())
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

func (h *CustomerHandler) GetCustomerByID(c *gin.Context) {
	customer, err := h.usecase.GetCustomerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateCustomer(c.Request.Context(), c.Param("id"), customerInputFromRequest(payload))
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(updated))
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.usecase.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func customerInputFromRequest(payload request.CustomerRequest) usecase.CustomerInput {
	return usecase.CustomerInput{
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Address: payload.Address,
		Vehicle: usecase.VehicleInput{
			Make:         payload.Vehicle.Make,
			Model:        payload.Vehicle.Model,
			Year:         payload.Vehicle.Year,
			VIN:          payload.Vehicle.VIN,
			LicensePlate: payload.Vehicle.LicensePlate,
		},
	}
}

func mapCustomerError(err error) *pkg.AppError {
	var validation *entities.ValidationError
	switch {
	case errors.As(err, &validation):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", validation.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerInUse):
		return pkg.NewDomainErrorSimple("CUSTOMER_IN_USE", "Customer is referenced by existing quotes", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
