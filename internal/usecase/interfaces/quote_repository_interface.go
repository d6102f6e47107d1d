package interfaces

import (
	"context"

	"oficina_mecanica/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for quotes.
//
// The reference scans back the deletion guards on services and customers:
// an entity referenced by at least one persisted quote cannot be removed.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
	ReferencesService(ctx context.Context, serviceID string) (bool, error)
	ReferencesCustomer(ctx context.Context, customerID string) (bool, error)
}
