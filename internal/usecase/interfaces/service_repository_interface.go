package interfaces

import (
	"context"

	"oficina_mecanica/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for the service catalog.
//
// Not-found is reported as a zero-value entity with a nil error; callers
// check ID == "".
type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}
