package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_mecanica/internal/adapter/http/handlers/mocks"
	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCustomerHandler_CreateCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.POST("/v1/customers", h.CreateCustomer)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("vehicle travels with its owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.POST("/v1/customers", h.CreateCustomer)

		want := usecase.CustomerInput{
			Name:  "Maria Silva",
			Email: "maria@example.com",
			Vehicle: usecase.VehicleInput{
				Make:         "Fiat",
				Model:        "Uno",
				Year:         "2012",
				LicensePlate: "ABC1D23",
			},
		}
		uc.EXPECT().CreateCustomer(gomock.Any(), want).Return(entities.Customer{
			ID:    "cust-1",
			Name:  "Maria Silva",
			Email: "maria@example.com",
			Vehicle: entities.Vehicle{
				ID:           "veh-1",
				Make:         "Fiat",
				Model:        "Uno",
				Year:         "2012",
				LicensePlate: "ABC1D23",
			},
		}, nil)

		body := `{"name":"Maria Silva","email":"maria@example.com","vehicle":{"make":"Fiat","model":"Uno","year":"2012","license_plate":"ABC1D23"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		vehicle, _ := resp["vehicle"].(map[string]any)
		if resp["id"] != "cust-1" || vehicle["id"] != "veh-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("malformed email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.POST("/v1/customers", h.CreateCustomer)

		uc.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(entities.Customer{}, entities.NewValidationError("email", "email is malformed"))

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(`{"name":"Maria","email":"not-an-email"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCustomerHandler_DeleteCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("customer with quotes is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.DELETE("/v1/customers/:id", h.DeleteCustomer)

		uc.EXPECT().DeleteCustomer(gomock.Any(), "cust-1").Return(usecase.ErrCustomerInUse)

		req := httptest.NewRequest(http.MethodDelete, "/v1/customers/cust-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.DELETE("/v1/customers/:id", h.DeleteCustomer)

		uc.EXPECT().DeleteCustomer(gomock.Any(), "cust-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/customers/cust-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestMapCustomerError(t *testing.T) {
	if got := mapCustomerError(entities.NewValidationError("name", "name is required")); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCustomerError(usecase.ErrInvalidCustomerID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCustomerError(usecase.ErrCustomerNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCustomerError(usecase.ErrCustomerInUse); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapCustomerError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
