package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_mecanica/internal/domain/entities"
	mock_interfaces "oficina_mecanica/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func customerUseCaseWithMocks(t *testing.T) (*CustomerUseCase, *mock_interfaces.MockICustomerRepository, *mock_interfaces.MockIQuoteRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mock_interfaces.NewMockICustomerRepository(ctrl)
	quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	return NewCustomerUseCase(repo, quoteRepo), repo, quoteRepo
}

func TestCustomerUseCase_CreateCustomer(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc, _, _ := customerUseCaseWithMocks(t)

		_, err := uc.CreateCustomer(context.Background(), CustomerInput{Email: "maria@example.com"})
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "name" {
			t.Fatalf("expected validation error on name, got %v", err)
		}
	})

	t.Run("malformed email", func(t *testing.T) {
		uc, _, _ := customerUseCaseWithMocks(t)

		_, err := uc.CreateCustomer(context.Background(), CustomerInput{Name: "Maria Silva", Email: "not-an-email"})
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "email" {
			t.Fatalf("expected validation error on email, got %v", err)
		}
	})

	t.Run("vehicle is created with its owner and gets a stable id", func(t *testing.T) {
		uc, repo, _ := customerUseCaseWithMocks(t)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.ID == "" || c.Vehicle.ID == "" {
					t.Fatalf("expected generated ids, got %+v", c)
				}
				if c.Vehicle.Make != "Fiat" || c.Vehicle.Year != "2020" {
					t.Fatalf("unexpected vehicle: %+v", c.Vehicle)
				}
				return c, nil
			},
		)

		res, err := uc.CreateCustomer(context.Background(), CustomerInput{
			Name:  "Maria Silva",
			Email: "maria@example.com",
			Phone: "11 99999-0000",
			Vehicle: VehicleInput{
				Make:         "Fiat",
				Model:        "Argo",
				Year:         "2020",
				VIN:          "9BD111060T5002156",
				LicensePlate: "ABC1D23",
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Vehicle.ID == "" {
			t.Fatalf("expected vehicle id")
		}
	})
}

func TestCustomerUseCase_UpdateCustomer(t *testing.T) {
	t.Run("vehicle identity survives updates", func(t *testing.T) {
		uc, repo, _ := customerUseCaseWithMocks(t)
		repo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{
			ID:      "cust-1",
			Name:    "Maria Silva",
			Vehicle: entities.Vehicle{ID: "veh-1", Make: "Fiat", Year: "2020"},
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.Vehicle.ID != "veh-1" {
					t.Fatalf("vehicle id must be stable, got %q", c.Vehicle.ID)
				}
				if c.Vehicle.Year != "2021" {
					t.Fatalf("vehicle fields must update, got %+v", c.Vehicle)
				}
				return c, nil
			},
		)

		_, err := uc.UpdateCustomer(context.Background(), "cust-1", CustomerInput{
			Name:    "Maria Silva",
			Vehicle: VehicleInput{Make: "Fiat", Year: "2021"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo, _ := customerUseCaseWithMocks(t)
		repo.EXPECT().GetByID(gomock.Any(), "cust-gone").Return(entities.Customer{}, nil)

		_, err := uc.UpdateCustomer(context.Background(), "cust-gone", CustomerInput{Name: "X"})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})
}

func TestCustomerUseCase_DeleteCustomer(t *testing.T) {
	t.Run("refused while referenced by a quote", func(t *testing.T) {
		uc, repo, quoteRepo := customerUseCaseWithMocks(t)
		repo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		quoteRepo.EXPECT().ReferencesCustomer(gomock.Any(), "cust-1").Return(true, nil)

		if err := uc.DeleteCustomer(context.Background(), "cust-1"); !errors.Is(err, ErrCustomerInUse) {
			t.Fatalf("expected ErrCustomerInUse, got %v", err)
		}
	})

	t.Run("deletes when unreferenced", func(t *testing.T) {
		uc, repo, quoteRepo := customerUseCaseWithMocks(t)
		repo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		quoteRepo.EXPECT().ReferencesCustomer(gomock.Any(), "cust-1").Return(false, nil)
		repo.EXPECT().Delete(gomock.Any(), "cust-1").Return(nil)

		if err := uc.DeleteCustomer(context.Background(), "cust-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCustomerUseCase_ListCustomers(t *testing.T) {
	t.Run("degrades to empty on failure", func(t *testing.T) {
		uc, repo, _ := customerUseCaseWithMocks(t)
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("backend down"))

		customers, err := uc.ListCustomers(context.Background())
		if err != nil {
			t.Fatalf("read path must not fail hard: %v", err)
		}
		if len(customers) != 0 {
			t.Fatalf("expected empty result, got %d", len(customers))
		}
	})
}
