package usecase

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"
	"time"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrCustomerInUse     = errors.New("customer referenced by at least one quote")
)

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// VehicleInput carries the vehicle section of the customer form. Year stays
// a free-form string; the original records entries like "2020/2021".
type VehicleInput struct {
	Make         string
	Model        string
	Year         string
	VIN          string
	LicensePlate string
}

type CustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Vehicle VehicleInput
}

// ICustomerUseCase exposes customer/vehicle operations. The vehicle has no
// lifecycle of its own: it is created and updated together with its owner.
type ICustomerUseCase interface {
	CreateCustomer(ctx context.Context, in CustomerInput) (entities.Customer, error)
	ListCustomers(ctx context.Context) ([]entities.Customer, error)
	GetCustomerByID(ctx context.Context, id string) (entities.Customer, error)
	UpdateCustomer(ctx context.Context, id string, in CustomerInput) (entities.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	repo      interfaces.ICustomerRepository
	quoteRepo interfaces.IQuoteRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, quoteRepo interfaces.IQuoteRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, quoteRepo: quoteRepo}
}

func (u *CustomerUseCase) CreateCustomer(ctx context.Context, in CustomerInput) (entities.Customer, error) {
	if err := validateCustomerInput(&in); err != nil {
		return entities.Customer{}, err
	}

	now := time.Now().UTC()
	c := entities.Customer{
		ID:      uuid.NewString(),
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
		Vehicle: entities.Vehicle{
			ID:           uuid.NewString(),
			Make:         in.Vehicle.Make,
			Model:        in.Vehicle.Model,
			Year:         in.Vehicle.Year,
			VIN:          in.Vehicle.VIN,
			LicensePlate: in.Vehicle.LicensePlate,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, c)
}

// ListCustomers degrades to an empty result on persistence failures so read
// screens stay usable; the failure is logged, not surfaced.
func (u *CustomerUseCase) ListCustomers(ctx context.Context) ([]entities.Customer, error) {
	customers, err := u.repo.List(ctx)
	if err != nil {
		log.Printf("[customer][usecase] list failed err=%v", err)
		return []entities.Customer{}, nil
	}
	return customers, nil
}

func (u *CustomerUseCase) GetCustomerByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) UpdateCustomer(ctx context.Context, id string, in CustomerInput) (entities.Customer, error) {
	existing, err := u.GetCustomerByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if err := validateCustomerInput(&in); err != nil {
		return entities.Customer{}, err
	}

	existing.Name = in.Name
	existing.Email = in.Email
	existing.Phone = in.Phone
	existing.Address = in.Address
	// Vehicle identity is stable across updates.
	existing.Vehicle.Make = in.Vehicle.Make
	existing.Vehicle.Model = in.Vehicle.Model
	existing.Vehicle.Year = in.Vehicle.Year
	existing.Vehicle.VIN = in.Vehicle.VIN
	existing.Vehicle.LicensePlate = in.Vehicle.LicensePlate
	if existing.Vehicle.ID == "" {
		existing.Vehicle.ID = uuid.NewString()
	}
	existing.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, existing)
}

// DeleteCustomer refuses to remove a customer still referenced by a quote,
// mirroring the service deletion guard.
func (u *CustomerUseCase) DeleteCustomer(ctx context.Context, id string) error {
	if _, err := u.GetCustomerByID(ctx, id); err != nil {
		return err
	}

	referenced, err := u.quoteRepo.ReferencesCustomer(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if referenced {
		return ErrCustomerInUse
	}

	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

func validateCustomerInput(in *CustomerInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)

	if in.Name == "" {
		return entities.NewValidationError("name", "name is required")
	}
	if in.Email != "" && !emailRx.MatchString(in.Email) {
		return entities.NewValidationError("email", "email is malformed")
	}
	return nil
}
