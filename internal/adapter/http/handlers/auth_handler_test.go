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

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing fields fail binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/register", h.Register)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewBufferString(`{"email":"joao@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/register", h.Register)

		uc.EXPECT().Register(gomock.Any(), "João", "joao@example.com", "secret1").Return(entities.User{}, usecase.ErrEmailAlreadyRegistered)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewBufferString(`{"name":"João","email":"joao@example.com","password":"secret1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success never echoes the password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/register", h.Register)

		uc.EXPECT().Register(gomock.Any(), "João", "joao@example.com", "secret1").Return(entities.User{ID: "user-1", Name: "João", Email: "joao@example.com", PasswordHash: "$2a$10$hash"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewBufferString(`{"name":"João","email":"joao@example.com","password":"secret1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("hash")) || bytes.Contains(w.Body.Bytes(), []byte("secret1")) {
			t.Fatalf("credentials leaked in response: %s", w.Body.String())
		}
	})
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("wrong credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		uc.EXPECT().Login(gomock.Any(), "joao@example.com", "wrong").Return("", entities.User{}, usecase.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":"joao@example.com","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success returns token and user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		uc.EXPECT().Login(gomock.Any(), "joao@example.com", "secret1").Return("jwt-token", entities.User{ID: "user-1", Email: "joao@example.com"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":"joao@example.com","password":"secret1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		user, _ := resp["user"].(map[string]any)
		if resp["token"] != "jwt-token" || user["id"] != "user-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapAuthError(t *testing.T) {
	if got := mapAuthError(entities.NewValidationError("password", "password must have at least 6 characters")); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapAuthError(usecase.ErrEmailAlreadyRegistered); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapAuthError(usecase.ErrInvalidCredentials); got.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401")
	}
	if got := mapAuthError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
