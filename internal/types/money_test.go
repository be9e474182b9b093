package types

import "testing"

func TestRupees_String(t *testing.T) {
	cases := []struct {
		in   Rupees
		want string
	}{
		{0, "₹0"},
		{50, "₹50"},
		{1500, "₹1,500"},
		{45000, "₹45,000"},
		{1234567, "₹1,234,567"},
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("Rupees(%d).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(1350); got != "₹1,350" {
		t.Errorf("FormatAmount(1350) = %q", got)
	}
	if got := FormatAmount(1350.5); got != "₹1,350.5" {
		t.Errorf("FormatAmount(1350.5) = %q", got)
	}
	if got := FormatAmount(4500 * 0.3); got != "₹1,350" {
		t.Errorf("FormatAmount(4500*0.3) = %q", got)
	}
}

func TestRupees_Scale(t *testing.T) {
	if got := Rupees(4000).Scale(0.5); got != 2000 {
		t.Errorf("Scale(0.5) = %v, want 2000", got)
	}
}
