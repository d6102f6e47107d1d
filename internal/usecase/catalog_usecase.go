package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrInvalidServiceID = errors.New("invalid service id")
	ErrServiceInUse     = errors.New("service referenced by at least one quote")
)

// ServiceInput carries the catalog form fields for create/update.
type ServiceInput struct {
	Name           string
	Description    string
	Price          float64
	EstimatedHours float64
}

// ICatalogUseCase exposes the service catalog operations.
//
// Deletion is guarded: a service referenced by any persisted quote's line
// items cannot be removed, and the catalog is left untouched.
type ICatalogUseCase interface {
	CreateService(ctx context.Context, in ServiceInput) (entities.Service, error)
	ListServices(ctx context.Context) ([]entities.Service, error)
	GetServiceByID(ctx context.Context, id string) (entities.Service, error)
	UpdateService(ctx context.Context, id string, in ServiceInput) (entities.Service, error)
	DeleteService(ctx context.Context, id string) error
}

type CatalogUseCase struct {
	repo      interfaces.IServiceRepository
	quoteRepo interfaces.IQuoteRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IServiceRepository, quoteRepo interfaces.IQuoteRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, quoteRepo: quoteRepo}
}

func (u *CatalogUseCase) CreateService(ctx context.Context, in ServiceInput) (entities.Service, error) {
	if err := validateServiceInput(&in); err != nil {
		return entities.Service{}, err
	}

	now := time.Now().UTC()
	s := entities.Service{
		ID:             uuid.NewString(),
		Name:           in.Name,
		Description:    in.Description,
		Price:          in.Price,
		EstimatedHours: in.EstimatedHours,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return u.repo.Create(ctx, s)
}

// ListServices degrades to an empty catalog on persistence failures so read
// screens stay usable; the failure is logged, not surfaced.
func (u *CatalogUseCase) ListServices(ctx context.Context) ([]entities.Service, error) {
	services, err := u.repo.List(ctx)
	if err != nil {
		log.Printf("[catalog][usecase] list failed err=%v", err)
		return []entities.Service{}, nil
	}
	return services, nil
}

func (u *CatalogUseCase) GetServiceByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *CatalogUseCase) UpdateService(ctx context.Context, id string, in ServiceInput) (entities.Service, error) {
	existing, err := u.GetServiceByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if err := validateServiceInput(&in); err != nil {
		return entities.Service{}, err
	}

	existing.Name = in.Name
	existing.Description = in.Description
	existing.Price = in.Price
	existing.EstimatedHours = in.EstimatedHours
	existing.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, existing)
}

func (u *CatalogUseCase) DeleteService(ctx context.Context, id string) error {
	if _, err := u.GetServiceByID(ctx, id); err != nil {
		return err
	}

	referenced, err := u.quoteRepo.ReferencesService(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if referenced {
		return ErrServiceInUse
	}

	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

func validateServiceInput(in *ServiceInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)

	if in.Name == "" {
		return entities.NewValidationError("name", "name is required")
	}
	if in.Price <= 0 {
		return entities.NewValidationError("price", "price must be positive")
	}
	if in.EstimatedHours < 0 {
		return entities.NewValidationError("estimated_hours", "estimated hours cannot be negative")
	}
	return nil
}
