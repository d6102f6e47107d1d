package interfaces

import (
	"context"

	"oficina_mecanica/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for customers.
// The owned vehicle is embedded and travels with the customer record.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}
