package normalize

import (
	"testing"
)

func TestParseAmountGermanLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.234,56", "1234.56"},
		{"-1.234,56", "-1234.56"},
		{"1234,56", "1234.56"},
		{"0,01", "0.01"},
		{"-0,01", "-0.01"},
		{"1.234,56 EUR", "1234.56"},
		{"EUR 1.234,56", "1234.56"},
		{"-1.234,56 €", "-1234.56"},
		{"1.234", "1234.00"},
		{"(123,45)", "-123.45"},
		{"+99,90", "99.90"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseAmount(tc.in, true)
			if err != nil {
				t.Fatalf("ParseAmount(%q): %v", tc.in, err)
			}
			if got.StringFixed(2) != tc.want {
				t.Errorf("ParseAmount(%q) = %s, want %s", tc.in, got.StringFixed(2), tc.want)
			}
		})
	}
}

func TestParseAmountDotDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1,234.56", "1234.56"},
		{"-1,234.56", "-1234.56"},
		{"1234.56", "1234.56"},
		{"$1,234.56", "1234.56"},
		{"(1,000.00)", "-1000.00"},
		{"1234", "1234.00"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseAmount(tc.in, false)
			if err != nil {
				t.Fatalf("ParseAmount(%q): %v", tc.in, err)
			}
			if got.StringFixed(2) != tc.want {
				t.Errorf("ParseAmount(%q) = %s, want %s", tc.in, got.StringFixed(2), tc.want)
			}
		})
	}
}

func TestParseAmountLocaleMatters(t *testing.T) {
	// the same string means two different numbers depending on the profile
	de, err := ParseAmount("1.234", true)
	if err != nil {
		t.Fatal(err)
	}
	en, err := ParseAmount("1.234", false)
	if err != nil {
		t.Fatal(err)
	}
	if de.StringFixed(2) != "1234.00" {
		t.Errorf("comma-decimal: got %s, want 1234.00", de.StringFixed(2))
	}
	if en.StringFixed(3) != "1.234" {
		t.Errorf("dot-decimal: got %s, want 1.234", en.StringFixed(3))
	}
}

func TestParseAmountInvalid(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "EUR", "--12"} {
		if _, err := ParseAmount(in, true); err == nil {
			t.Errorf("ParseAmount(%q): expected error", in)
		}
	}
}
