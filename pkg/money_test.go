package pkg

import "testing"

func TestRoundCents(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "already exact", in: 149.99, want: 149.99},
		{name: "accumulated float noise", in: 49.99*2 + 149.99, want: 249.97},
		{name: "half cent rounds up", in: 10.005, want: 10.01},
		{name: "zero", in: 0, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RoundCents(tc.in); got != tc.want {
				t.Fatalf("RoundCents(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(35.99 * 3); got != "107.97" {
		t.Fatalf("expected 107.97, got %s", got)
	}
	if got := FormatAmount(0); got != "0.00" {
		t.Fatalf("expected 0.00, got %s", got)
	}
}

func TestParseAmount(t *testing.T) {
	if got := ParseAmount("249.97"); got != 249.97 {
		t.Fatalf("expected 249.97, got %v", got)
	}
	if got := ParseAmount("not-a-number"); got != 0 {
		t.Fatalf("expected 0 for invalid input, got %v", got)
	}
}
