package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	currencyCodeEdge = regexp.MustCompile(`^[A-Z]{3}\b|\b[A-Z]{3}$`)
	currencySymbols  = strings.NewReplacer(
		"€", "", "£", "", "$", "", "¥", "",
		" ", "", " ", "", "\n", "", "\r", "", "\t", "",
	)
)

// ParseAmount converts a statement amount string into a fixed-point decimal.
// Accepted variants: currency symbols and trailing/leading ISO codes
// ("-1.234,56 EUR"), parenthesized negatives ("(123.45)"), explicit signs,
// and grouped thousands. The decimal separator follows the profile's locale
// (decimalComma), never a guess: "1.234" under a comma-decimal profile is one
// thousand two hundred thirty-four, not a fraction.
func ParseAmount(raw string, decimalComma bool) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount")
	}

	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}
	s = currencyCodeEdge.ReplaceAllString(strings.TrimSpace(s), "")
	s = currencySymbols.Replace(s)
	s = strings.TrimSpace(s)

	switch {
	case strings.HasPrefix(s, "-"):
		neg = !neg
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	if decimalComma {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("no digits in amount %q", raw)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("unparseable amount %q: %w", raw, err)
	}
	if neg {
		d = d.Neg()
	}
	return d, nil
}
