package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)

const sessionTTL = 24 * time.Hour

// IAuthUseCase exposes the session gate: account registration and login.
// Passwords are stored only as bcrypt hashes; a successful login issues a
// signed bearer token the auth middleware validates on every gated route.
type IAuthUseCase interface {
	Register(ctx context.Context, name, email, password string) (entities.User, error)
	Login(ctx context.Context, email, password string) (token string, user entities.User, err error)
}

type AuthUseCase struct {
	repo      interfaces.IUserRepository
	jwtSecret []byte
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(repo interfaces.IUserRepository, jwtSecret string) *AuthUseCase {
	return &AuthUseCase{repo: repo, jwtSecret: []byte(jwtSecret)}
}

func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (entities.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return entities.User{}, entities.NewValidationError("name", "name is required")
	}
	if !emailRx.MatchString(email) {
		return entities.User{}, entities.NewValidationError("email", "email is malformed")
	}
	if len(password) < 6 {
		return entities.User{}, entities.NewValidationError("password", "password must have at least 6 characters")
	}

	existing, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	now := time.Now().UTC()
	user := entities.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, user)
}

// Login deliberately answers ErrInvalidCredentials for both unknown emails
// and wrong passwords.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (string, entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", entities.User{}, ErrInvalidCredentials
	}

	user, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", entities.User{}, err
	}
	if user.ID == "" {
		return "", entities.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", entities.User{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"iat":     now.Unix(),
		"exp":     now.Add(sessionTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.jwtSecret)
	if err != nil {
		return "", entities.User{}, err
	}
	return token, user, nil
}
