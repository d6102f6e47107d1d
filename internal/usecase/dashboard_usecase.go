package usecase

import (
	"context"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"
	"oficina_mecanica/pkg"
)

// DashboardSummary aggregates the landing-screen counters.
type DashboardSummary struct {
	Customers       int     `json:"customers"`
	Services        int     `json:"services"`
	Quotes          int     `json:"quotes"`
	ApprovedQuotes  int     `json:"approved_quotes"`
	ApprovedRevenue float64 `json:"approved_revenue"`
}

type IDashboardUseCase interface {
	Summary(ctx context.Context) (DashboardSummary, error)
}

type DashboardUseCase struct {
	customerRepo interfaces.ICustomerRepository
	serviceRepo  interfaces.IServiceRepository
	quoteRepo    interfaces.IQuoteRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(customerRepo interfaces.ICustomerRepository, serviceRepo interfaces.IServiceRepository, quoteRepo interfaces.IQuoteRepository) *DashboardUseCase {
	return &DashboardUseCase{customerRepo: customerRepo, serviceRepo: serviceRepo, quoteRepo: quoteRepo}
}

func (u *DashboardUseCase) Summary(ctx context.Context) (DashboardSummary, error) {
	customers, err := u.customerRepo.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	services, err := u.serviceRepo.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	quotes, err := u.quoteRepo.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}

	summary := DashboardSummary{
		Customers: len(customers),
		Services:  len(services),
		Quotes:    len(quotes),
	}
	for _, q := range quotes {
		if q.Status == entities.QuoteStatusAprovado {
			summary.ApprovedQuotes++
			summary.ApprovedRevenue += q.Total
		}
	}
	summary.ApprovedRevenue = pkg.RoundCents(summary.ApprovedRevenue)
	return summary, nil
}
