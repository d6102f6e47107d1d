package entities

import (
	"errors"

	"oficina_mecanica/pkg"
)

var ErrLineItemIndexOutOfRange = errors.New("line item index out of range")

// DraftItem is an in-progress line item: a service choice plus a quantity.
// Prices are not captured here; the draft always prices against the catalog
// snapshot it was opened with, and the authoritative price is re-resolved by
// the quote use case at save time.
type DraftItem struct {
	ServiceID string
	Quantity  int
}

// QuoteDraft is the in-memory editing aggregate behind the quote form.
//
// It holds the customer selection, the ordered line items and a read-only
// catalog snapshot, and recomputes every derived amount from scratch on each
// call, so the displayed subtotals and total can never drift from the items
// actually present.
type QuoteDraft struct {
	CustomerID string
	Date       string
	Notes      string
	Items      []DraftItem

	catalog []Service
}

// NewQuoteDraft opens a draft against a catalog snapshot. The snapshot is
// read-only from the draft's perspective; concurrent catalog edits are
// reconciled at save time, not here.
func NewQuoteDraft(catalog []Service) *QuoteDraft {
	return &QuoteDraft{catalog: catalog}
}

// AddLineItem appends a line item defaulting to the first catalog service and
// quantity 1. It is a no-op when the catalog is empty, reported as false.
func (d *QuoteDraft) AddLineItem() bool {
	if len(d.catalog) == 0 {
		return false
	}
	d.Items = append(d.Items, DraftItem{ServiceID: d.catalog[0].ID, Quantity: 1})
	return true
}

// SetLineItemService replaces the service reference of one line item, leaving
// its quantity untouched. An unknown service id is allowed; the row then
// prices as 0 until corrected.
func (d *QuoteDraft) SetLineItemService(index int, serviceID string) error {
	if index < 0 || index >= len(d.Items) {
		return ErrLineItemIndexOutOfRange
	}
	d.Items[index].ServiceID = serviceID
	return nil
}

// SetLineItemQuantity replaces the quantity of one line item, coercing any
// non-positive input to 1.
func (d *QuoteDraft) SetLineItemQuantity(index int, quantity int) error {
	if index < 0 || index >= len(d.Items) {
		return ErrLineItemIndexOutOfRange
	}
	d.Items[index].Quantity = NormalizeQuantity(quantity)
	return nil
}

// RemoveLineItem always succeeds for an in-range index, even for the last
// remaining item; the at-least-one-item rule is enforced by Validate, not
// here.
func (d *QuoteDraft) RemoveLineItem(index int) error {
	if index < 0 || index >= len(d.Items) {
		return ErrLineItemIndexOutOfRange
	}
	d.Items = append(d.Items[:index], d.Items[index+1:]...)
	return nil
}

// Subtotal prices one line against the catalog snapshot. A service id that is
// not in the snapshot prices as 0 rather than failing; the form only offers
// valid choices, so this is a degraded state, not an error.
func (d *QuoteDraft) Subtotal(index int) float64 {
	if index < 0 || index >= len(d.Items) {
		return 0
	}
	item := d.Items[index]
	return pkg.RoundCents(d.catalogPrice(item.ServiceID) * float64(NormalizeQuantity(item.Quantity)))
}

// Total sums every line subtotal, recomputed from scratch on each call.
func (d *QuoteDraft) Total() float64 {
	total := 0.0
	for i := range d.Items {
		total += d.Subtotal(i)
	}
	return pkg.RoundCents(total)
}

// Validate checks the submit preconditions: a selected customer and a
// non-empty item list. Per-item service/quantity validity is not inspected;
// the save path re-resolves those authoritatively.
func (d *QuoteDraft) Validate() error {
	if d.CustomerID == "" {
		return NewValidationError("customer", "customer is required")
	}
	if len(d.Items) == 0 {
		return NewValidationError("items", "at least one line item is required")
	}
	return nil
}

func (d *QuoteDraft) catalogPrice(serviceID string) float64 {
	for _, svc := range d.catalog {
		if svc.ID == serviceID {
			return svc.Price
		}
	}
	return 0
}
