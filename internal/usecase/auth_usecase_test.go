package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_mecanica/internal/domain/entities"
	mock_interfaces "oficina_mecanica/internal/usecase/interfaces/mocks"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret"

func authUseCaseWithMocks(t *testing.T) (*AuthUseCase, *mock_interfaces.MockIUserRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	return NewAuthUseCase(repo, testJWTSecret), repo
}

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("short password", func(t *testing.T) {
		uc, _ := authUseCaseWithMocks(t)

		_, err := uc.Register(context.Background(), "Maria", "maria@example.com", "123")
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "password" {
			t.Fatalf("expected validation error on password, got %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		uc, repo := authUseCaseWithMocks(t)
		repo.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(entities.User{ID: "u-1"}, nil)

		_, err := uc.Register(context.Background(), "Maria", "maria@example.com", "segredo1")
		if !errors.Is(err, ErrEmailAlreadyRegistered) {
			t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
		}
	})

	t.Run("stores a bcrypt hash, never the password", func(t *testing.T) {
		uc, repo := authUseCaseWithMocks(t)
		repo.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(entities.User{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.PasswordHash == "segredo1" || u.PasswordHash == "" {
					t.Fatalf("password must be hashed, got %q", u.PasswordHash)
				}
				if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("segredo1")); err != nil {
					t.Fatalf("hash does not verify: %v", err)
				}
				return u, nil
			},
		)

		user, err := uc.Register(context.Background(), "Maria", " Maria@Example.com ", "segredo1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Email != "maria@example.com" {
			t.Fatalf("expected normalized email, got %q", user.Email)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("segredo1"), bcrypt.MinCost)
	stored := entities.User{ID: "u-1", Name: "Maria", Email: "maria@example.com", PasswordHash: string(hash)}

	t.Run("unknown email", func(t *testing.T) {
		uc, repo := authUseCaseWithMocks(t)
		repo.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(entities.User{}, nil)

		_, _, err := uc.Login(context.Background(), "nobody@example.com", "whatever")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, repo := authUseCaseWithMocks(t)
		repo.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(stored, nil)

		_, _, err := uc.Login(context.Background(), "maria@example.com", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("issues a verifiable token", func(t *testing.T) {
		uc, repo := authUseCaseWithMocks(t)
		repo.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(stored, nil)

		token, user, err := uc.Login(context.Background(), "maria@example.com", "segredo1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "u-1" {
			t.Fatalf("unexpected user: %+v", user)
		}

		parsed, err := jwt.Parse(token, func(tk *jwt.Token) (interface{}, error) {
			return []byte(testJWTSecret), nil
		})
		if err != nil || !parsed.Valid {
			t.Fatalf("token does not verify: %v", err)
		}
		claims, ok := parsed.Claims.(jwt.MapClaims)
		if !ok || claims["user_id"] != "u-1" {
			t.Fatalf("unexpected claims: %+v", parsed.Claims)
		}
	})
}
