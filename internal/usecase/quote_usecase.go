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
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrInvalidQuoteStatus = errors.New("invalid quote status")
)

type QuoteItemInput struct {
	ServiceID string
	Quantity  int
}

type QuoteInput struct {
	CustomerID string
	Date       string
	Items      []QuoteItemInput
	Notes      string
}

// IQuoteUseCase exposes quote persistence operations.
//
// Create and Update re-resolve every line item's unit price from the current
// catalog: a client-supplied price is never trusted, so a stale editor
// snapshot can never be persisted. A missing service aborts the whole save.
type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, in QuoteInput) (entities.Quote, error)
	ListQuotes(ctx context.Context) ([]entities.Quote, error)
	GetQuoteByID(ctx context.Context, id string) (entities.Quote, error)
	UpdateQuote(ctx context.Context, id string, in QuoteInput, status entities.QuoteStatus) (entities.Quote, error)
	ApproveQuote(ctx context.Context, id string) (entities.Quote, error)
	RejectQuote(ctx context.Context, id string) (entities.Quote, error)
	UpdateQuoteStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	DeleteQuote(ctx context.Context, id string) error
}

type QuoteUseCase struct {
	repo         interfaces.IQuoteRepository
	customerRepo interfaces.ICustomerRepository
	serviceRepo  interfaces.IServiceRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, customerRepo interfaces.ICustomerRepository, serviceRepo interfaces.IServiceRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, customerRepo: customerRepo, serviceRepo: serviceRepo}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, in QuoteInput) (entities.Quote, error) {
	if err := u.validateQuoteInput(&in); err != nil {
		return entities.Quote{}, err
	}
	if err := u.resolveCustomer(ctx, in.CustomerID); err != nil {
		return entities.Quote{}, err
	}

	items, total, err := u.resolveItems(ctx, in.Items)
	if err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:         uuid.NewString(),
		CustomerID: in.CustomerID,
		Date:       in.Date,
		Items:      items,
		Notes:      in.Notes,
		Status:     entities.QuoteStatusRascunho,
		Total:      total,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.repo.Create(ctx, q)
}

// ListQuotes degrades to an empty result on persistence failures so the list
// screen stays usable; the failure is logged, not surfaced. Order is
// store-native, no contract.
func (u *QuoteUseCase) ListQuotes(ctx context.Context) ([]entities.Quote, error) {
	quotes, err := u.repo.List(ctx)
	if err != nil {
		log.Printf("[quote][usecase] list failed err=%v", err)
		return []entities.Quote{}, nil
	}
	return quotes, nil
}

func (u *QuoteUseCase) GetQuoteByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// UpdateQuote re-resolves and recomputes exactly like CreateQuote, and
// additionally overwrites the status with the caller-supplied value. An empty
// status keeps the stored one.
func (u *QuoteUseCase) UpdateQuote(ctx context.Context, id string, in QuoteInput, status entities.QuoteStatus) (entities.Quote, error) {
	existing, err := u.GetQuoteByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if err := u.validateQuoteInput(&in); err != nil {
		return entities.Quote{}, err
	}
	if err := u.resolveCustomer(ctx, in.CustomerID); err != nil {
		return entities.Quote{}, err
	}
	if status == "" {
		status = existing.Status
	}
	if !status.Valid() {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}

	items, total, err := u.resolveItems(ctx, in.Items)
	if err != nil {
		return entities.Quote{}, err
	}

	existing.CustomerID = in.CustomerID
	existing.Date = in.Date
	existing.Items = items
	existing.Notes = in.Notes
	existing.Status = status
	existing.Total = total
	existing.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, existing)
}

func (u *QuoteUseCase) ApproveQuote(ctx context.Context, id string) (entities.Quote, error) {
	return u.UpdateQuoteStatus(ctx, id, entities.QuoteStatusAprovado)
}

func (u *QuoteUseCase) RejectQuote(ctx context.Context, id string) (entities.Quote, error) {
	return u.UpdateQuoteStatus(ctx, id, entities.QuoteStatusRejeitado)
}

// UpdateQuoteStatus changes only the workflow status; line items and total
// are left exactly as the last save wrote them.
func (u *QuoteUseCase) UpdateQuoteStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if !status.Valid() {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

// DeleteQuote is idempotent: deleting an id that is already gone is not an
// error.
func (u *QuoteUseCase) DeleteQuote(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}
	return u.repo.Delete(ctx, id)
}

func (u *QuoteUseCase) validateQuoteInput(in *QuoteInput) error {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.Date = strings.TrimSpace(in.Date)

	draft := entities.NewQuoteDraft(nil)
	draft.CustomerID = in.CustomerID
	for _, item := range in.Items {
		draft.Items = append(draft.Items, entities.DraftItem{ServiceID: item.ServiceID, Quantity: item.Quantity})
	}
	if err := draft.Validate(); err != nil {
		return err
	}

	if in.Date == "" {
		in.Date = time.Now().UTC().Format("2006-01-02")
	}
	return nil
}

func (u *QuoteUseCase) resolveCustomer(ctx context.Context, customerID string) error {
	c, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return ErrCustomerNotFound
	}
	return nil
}

// resolveItems fetches every referenced service from the catalog, then prices
// the lines through a fresh draft opened against that snapshot. Any missing
// service fails the whole save; nothing is persisted partially.
func (u *QuoteUseCase) resolveItems(ctx context.Context, inputs []QuoteItemInput) ([]entities.QuoteItem, float64, error) {
	services := make([]entities.Service, 0, len(inputs))
	for _, in := range inputs {
		svc, err := u.serviceRepo.GetByID(ctx, strings.TrimSpace(in.ServiceID))
		if err != nil {
			return nil, 0, err
		}
		if svc.ID == "" {
			return nil, 0, ErrServiceNotFound
		}
		services = append(services, svc)
	}

	draft := entities.NewQuoteDraft(services)
	for _, in := range inputs {
		draft.Items = append(draft.Items, entities.DraftItem{ServiceID: strings.TrimSpace(in.ServiceID), Quantity: in.Quantity})
	}

	items := make([]entities.QuoteItem, 0, len(inputs))
	for i, svc := range services {
		items = append(items, entities.QuoteItem{
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			Quantity:    entities.NormalizeQuantity(draft.Items[i].Quantity),
			UnitPrice:   svc.Price,
			Subtotal:    draft.Subtotal(i),
		})
	}
	return items, draft.Total(), nil
}
