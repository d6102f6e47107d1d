package request

import (
	"encoding/json"
	"testing"
)

func TestQuantity_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Quantity
	}{
		{name: "number", in: `{"quantity": 3}`, want: 3},
		{name: "numeric string", in: `{"quantity": "4"}`, want: 4},
		{name: "float truncates", in: `{"quantity": 2.9}`, want: 2},
		{name: "garbage decodes to zero", in: `{"quantity": "abc"}`, want: 0},
		{name: "null decodes to zero", in: `{"quantity": null}`, want: 0},
		{name: "missing decodes to zero", in: `{}`, want: 0},
		{name: "negative kept for downstream coercion", in: `{"quantity": -2}`, want: -2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var item QuoteItemRequest
			if err := json.Unmarshal([]byte(tc.in), &item); err != nil {
				t.Fatalf("decode must never fail, got %v", err)
			}
			if item.Quantity != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, item.Quantity)
			}
		})
	}
}

func TestQuoteRequest_Decode(t *testing.T) {
	payload := `{
		"customer_id": "cust-1",
		"date": "2026-08-31",
		"items": [
			{"service_id": "svc-a", "quantity": 2},
			{"service_id": "svc-b", "quantity": "1"}
		],
		"notes": "revisão",
		"status": "enviado"
	}`

	var r QuoteRequest
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.CustomerID != "cust-1" || len(r.Items) != 2 {
		t.Fatalf("unexpected request: %+v", r)
	}
	if r.Items[0].Quantity != 2 || r.Items[1].Quantity != 1 {
		t.Fatalf("unexpected quantities: %+v", r.Items)
	}
	if r.Status != "enviado" {
		t.Fatalf("unexpected status: %q", r.Status)
	}
}
