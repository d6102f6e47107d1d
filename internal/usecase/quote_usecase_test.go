package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_mecanica/internal/domain/entities"
	mock_interfaces "oficina_mecanica/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func quoteUseCaseWithMocks(t *testing.T) (*QuoteUseCase, *mock_interfaces.MockIQuoteRepository, *mock_interfaces.MockICustomerRepository, *mock_interfaces.MockIServiceRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
	serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
	return NewQuoteUseCase(quoteRepo, customerRepo, serviceRepo), quoteRepo, customerRepo, serviceRepo
}

func TestQuoteUseCase_CreateQuote(t *testing.T) {
	t.Run("missing customer is a validation error and issues no persistence call", func(t *testing.T) {
		uc, _, _, _ := quoteUseCaseWithMocks(t)

		_, err := uc.CreateQuote(context.Background(), QuoteInput{
			Items: []QuoteItemInput{{ServiceID: "svc-1", Quantity: 1}},
		})

		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "customer" {
			t.Fatalf("expected validation error on customer, got %v", err)
		}
	})

	t.Run("empty items is a validation error", func(t *testing.T) {
		uc, _, _, _ := quoteUseCaseWithMocks(t)

		_, err := uc.CreateQuote(context.Background(), QuoteInput{CustomerID: "cust-1"})

		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "items" {
			t.Fatalf("expected validation error on items, got %v", err)
		}
	})

	t.Run("unresolved customer aborts the save", func(t *testing.T) {
		uc, _, customerRepo, _ := quoteUseCaseWithMocks(t)
		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-gone").Return(entities.Customer{}, nil)

		_, err := uc.CreateQuote(context.Background(), QuoteInput{
			CustomerID: "cust-gone",
			Items:      []QuoteItemInput{{ServiceID: "svc-1", Quantity: 1}},
		})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("missing service aborts the whole save", func(t *testing.T) {
		uc, _, customerRepo, serviceRepo := quoteUseCaseWithMocks(t)
		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", Price: 49.99}, nil)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-gone").Return(entities.Service{}, nil)

		_, err := uc.CreateQuote(context.Background(), QuoteInput{
			CustomerID: "cust-1",
			Items: []QuoteItemInput{
				{ServiceID: "svc-1", Quantity: 2},
				{ServiceID: "svc-gone", Quantity: 1},
			},
		})
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("re-resolves prices from the catalog and computes totals", func(t *testing.T) {
		uc, quoteRepo, customerRepo, serviceRepo := quoteUseCaseWithMocks(t)
		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-a").Return(entities.Service{ID: "svc-a", Name: "Reposição da Pastilha de Freio", Price: 49.99}, nil)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-b").Return(entities.Service{ID: "svc-b", Name: "Rotação do Pneu", Price: 149.99}, nil)
		quoteRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" {
					t.Fatalf("expected generated id")
				}
				if q.Status != entities.QuoteStatusRascunho {
					t.Fatalf("expected rascunho status, got %s", q.Status)
				}
				if len(q.Items) != 2 {
					t.Fatalf("expected 2 items, got %d", len(q.Items))
				}
				if q.Items[0].UnitPrice != 49.99 || q.Items[0].Subtotal != 99.98 {
					t.Fatalf("unexpected first item: %+v", q.Items[0])
				}
				if q.Items[1].UnitPrice != 149.99 || q.Items[1].Subtotal != 149.99 {
					t.Fatalf("unexpected second item: %+v", q.Items[1])
				}
				if q.Total != 249.97 {
					t.Fatalf("expected total 249.97, got %v", q.Total)
				}
				if q.CreatedAt.IsZero() || q.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return q, nil
			},
		)

		res, err := uc.CreateQuote(context.Background(), QuoteInput{
			CustomerID: "cust-1",
			Date:       "2026-08-31",
			Items: []QuoteItemInput{
				{ServiceID: "svc-a", Quantity: 2},
				{ServiceID: "svc-b", Quantity: 1},
			},
			Notes: "revisão completa",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Total != 249.97 {
			t.Fatalf("expected total 249.97, got %v", res.Total)
		}
	})

	t.Run("quantities are coerced to at least 1", func(t *testing.T) {
		uc, quoteRepo, customerRepo, serviceRepo := quoteUseCaseWithMocks(t)
		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-a").Return(entities.Service{ID: "svc-a", Price: 35.99}, nil).Times(2)
		quoteRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.Items[0].Quantity != 1 || q.Items[1].Quantity != 1 {
					t.Fatalf("expected coerced quantities, got %+v", q.Items)
				}
				if q.Total != 71.98 {
					t.Fatalf("expected total 71.98, got %v", q.Total)
				}
				return q, nil
			},
		)

		_, err := uc.CreateQuote(context.Background(), QuoteInput{
			CustomerID: "cust-1",
			Items: []QuoteItemInput{
				{ServiceID: "svc-a", Quantity: 0},
				{ServiceID: "svc-a", Quantity: -3},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_UpdateQuote(t *testing.T) {
	t.Run("missing quote id", func(t *testing.T) {
		uc, quoteRepo, _, _ := quoteUseCaseWithMocks(t)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-gone").Return(entities.Quote{}, nil)

		_, err := uc.UpdateQuote(context.Background(), "q-gone", QuoteInput{
			CustomerID: "cust-1",
			Items:      []QuoteItemInput{{ServiceID: "svc-a", Quantity: 1}},
		}, entities.QuoteStatusEnviado)
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("re-resolves stale prices against the live catalog", func(t *testing.T) {
		uc, quoteRepo, customerRepo, serviceRepo := quoteUseCaseWithMocks(t)

		stored := entities.Quote{
			ID:         "q-1",
			CustomerID: "cust-1",
			Status:     entities.QuoteStatusRascunho,
			Items:      []entities.QuoteItem{{ServiceID: "svc-a", Quantity: 1, UnitPrice: 10, Subtotal: 10}},
			Total:      10,
		}
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(stored, nil)
		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		// Catalog price changed since the quote was last saved.
		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-a").Return(entities.Service{ID: "svc-a", Price: 12.5}, nil)
		quoteRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.Items[0].UnitPrice != 12.5 || q.Items[0].Subtotal != 25 {
					t.Fatalf("expected re-resolved price, got %+v", q.Items[0])
				}
				if q.Total != 25 {
					t.Fatalf("expected total 25, got %v", q.Total)
				}
				if q.Status != entities.QuoteStatusEnviado {
					t.Fatalf("expected caller-supplied status, got %s", q.Status)
				}
				return q, nil
			},
		)

		_, err := uc.UpdateQuote(context.Background(), "q-1", QuoteInput{
			CustomerID: "cust-1",
			Items:      []QuoteItemInput{{ServiceID: "svc-a", Quantity: 2}},
		}, entities.QuoteStatusEnviado)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty status keeps the stored one", func(t *testing.T) {
		uc, quoteRepo, customerRepo, serviceRepo := quoteUseCaseWithMocks(t)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusPendente}, nil)
		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-a").Return(entities.Service{ID: "svc-a", Price: 10}, nil)
		quoteRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.Status != entities.QuoteStatusPendente {
					t.Fatalf("expected stored status kept, got %s", q.Status)
				}
				return q, nil
			},
		)

		_, err := uc.UpdateQuote(context.Background(), "q-1", QuoteInput{
			CustomerID: "cust-1",
			Items:      []QuoteItemInput{{ServiceID: "svc-a", Quantity: 1}},
		}, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		uc, quoteRepo, customerRepo, _ := quoteUseCaseWithMocks(t)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)
		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)

		_, err := uc.UpdateQuote(context.Background(), "q-1", QuoteInput{
			CustomerID: "cust-1",
			Items:      []QuoteItemInput{{ServiceID: "svc-a", Quantity: 1}},
		}, "arquivado")
		if !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})
}

func TestQuoteUseCase_StatusTransitions(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *QuoteUseCase, ctx context.Context, id string) (entities.Quote, error)
		status entities.QuoteStatus
	}{
		{name: "approve", call: (*QuoteUseCase).ApproveQuote, status: entities.QuoteStatusAprovado},
		{name: "reject", call: (*QuoteUseCase).RejectQuote, status: entities.QuoteStatusRejeitado},
	}

	for _, tc := range cases {
		t.Run(tc.name+" leaves items and total untouched", func(t *testing.T) {
			uc, quoteRepo, _, _ := quoteUseCaseWithMocks(t)

			stored := entities.Quote{
				ID:     "q-1",
				Status: tc.status,
				Items:  []entities.QuoteItem{{ServiceID: "svc-a", Quantity: 3, UnitPrice: 35.99, Subtotal: 107.97}},
				Total:  107.97,
			}
			quoteRepo.EXPECT().UpdateStatus(gomock.Any(), "q-1", tc.status).Return(stored, nil)

			res, err := tc.call(uc, context.Background(), "q-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.status {
				t.Fatalf("expected status %s, got %s", tc.status, res.Status)
			}
			if res.Total != 107.97 || res.Items[0].Subtotal != 107.97 {
				t.Fatalf("status change must not touch pricing: %+v", res)
			}
		})

		t.Run(tc.name+" not found", func(t *testing.T) {
			uc, quoteRepo, _, _ := quoteUseCaseWithMocks(t)
			quoteRepo.EXPECT().UpdateStatus(gomock.Any(), "q-gone", tc.status).Return(entities.Quote{}, nil)

			_, err := tc.call(uc, context.Background(), "q-gone")
			if !errors.Is(err, ErrQuoteNotFound) {
				t.Fatalf("expected ErrQuoteNotFound, got %v", err)
			}
		})
	}
}

func TestQuoteUseCase_GetQuoteByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _, _, _ := quoteUseCaseWithMocks(t)
		if _, err := uc.GetQuoteByID(context.Background(), "  "); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("missing id maps to not found", func(t *testing.T) {
		uc, quoteRepo, _, _ := quoteUseCaseWithMocks(t)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-gone").Return(entities.Quote{}, nil)

		if _, err := uc.GetQuoteByID(context.Background(), "q-gone"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_ListQuotes(t *testing.T) {
	t.Run("degrades to empty on repository failure", func(t *testing.T) {
		uc, quoteRepo, _, _ := quoteUseCaseWithMocks(t)
		quoteRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("backend down"))

		quotes, err := uc.ListQuotes(context.Background())
		if err != nil {
			t.Fatalf("read path must not fail hard: %v", err)
		}
		if len(quotes) != 0 {
			t.Fatalf("expected empty result, got %d", len(quotes))
		}
	})
}

func TestQuoteUseCase_DeleteQuote(t *testing.T) {
	t.Run("idempotent for already-deleted ids", func(t *testing.T) {
		uc, quoteRepo, _, _ := quoteUseCaseWithMocks(t)
		quoteRepo.EXPECT().Delete(gomock.Any(), "q-1").Return(nil).Times(2)

		if err := uc.DeleteQuote(context.Background(), "q-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.DeleteQuote(context.Background(), "q-1"); err != nil {
			t.Fatalf("repeat delete must be tolerated: %v", err)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc, _, _, _ := quoteUseCaseWithMocks(t)
		if err := uc.DeleteQuote(context.Background(), ""); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})
}
