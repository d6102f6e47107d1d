package usecase

import (
	"context"
	"testing"

	"oficina_mecanica/internal/domain/entities"
	mock_interfaces "oficina_mecanica/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
	serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
	quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := NewDashboardUseCase(customerRepo, serviceRepo, quoteRepo)

	customerRepo.EXPECT().List(gomock.Any()).Return([]entities.Customer{{ID: "c1"}, {ID: "c2"}}, nil)
	serviceRepo.EXPECT().List(gomock.Any()).Return([]entities.Service{{ID: "s1"}}, nil)
	quoteRepo.EXPECT().List(gomock.Any()).Return([]entities.Quote{
		{ID: "q1", Status: entities.QuoteStatusAprovado, Total: 107.97},
		{ID: "q2", Status: entities.QuoteStatusAprovado, Total: 249.97},
		{ID: "q3", Status: entities.QuoteStatusRascunho, Total: 999},
	}, nil)

	summary, err := uc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Customers != 2 || summary.Services != 1 || summary.Quotes != 3 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
	if summary.ApprovedQuotes != 2 || summary.ApprovedRevenue != 357.94 {
		t.Fatalf("unexpected revenue: %+v", summary)
	}
}
