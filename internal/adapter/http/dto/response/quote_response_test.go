package response

import (
	"testing"
	"time"

	"oficina_mecanica/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quote{
		ID:         "quote-1",
		CustomerID: "cust-1",
		Date:       "2026-08-30",
		Items: []entities.QuoteItem{
			{ServiceID: "svc-1", ServiceName: "Troca de óleo", Quantity: 2, UnitPrice: 49.99, Subtotal: 99.98},
			{ServiceID: "svc-2", ServiceName: "Alinhamento", Quantity: 1, UnitPrice: 149.99, Subtotal: 149.99},
		},
		Notes:     "cliente aguarda na loja",
		Status:    entities.QuoteStatusRascunho,
		Total:     249.97,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromQuote(q)
	if res.ID != "quote-1" || res.CustomerID != "cust-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Date != "2026-08-30" || res.Status != "rascunho" || res.Total != 249.97 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(res.Items))
	}
	if res.Items[0].ServiceName != "Troca de óleo" || res.Items[0].Subtotal != 99.98 {
		t.Fatalf("unexpected first item: %+v", res.Items[0])
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromQuotesEmpty(t *testing.T) {
	res := FromQuotes(nil)
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", res)
	}
}

func TestFromCustomerKeepsVehicle(t *testing.T) {
	c := entities.Customer{
		ID:    "cust-1",
		Name:  "Maria Silva",
		Email: "maria@example.com",
		Vehicle: entities.Vehicle{
			ID:           "veh-1",
			Make:         "Fiat",
			Model:        "Uno",
			Year:         "2012",
			LicensePlate: "ABC1D23",
		},
	}

	res := FromCustomer(c)
	if res.Vehicle.ID != "veh-1" || res.Vehicle.Make != "Fiat" || res.Vehicle.Year != "2012" {
		t.Fatalf("unexpected vehicle: %+v", res.Vehicle)
	}
}
