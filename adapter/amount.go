package adapter

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var currencyStripper = strings.NewReplacer("€", "", "$", "", "£", "", " ", "", "\u00a0", "", "EUR", "", "USD", "", "GBP", "")

// ParseAmount reads a monetary amount written either as 1.234,56 or 1,234.56. The
// separator that appears last is the decimal separator. An empty string is absent,
// not zero.
func ParseAmount(raw string) (decimal.NullDecimal, error) {
	s := currencyStripper.Replace(strings.TrimSpace(raw))
	if s == "" {
		return decimal.NullDecimal{}, nil
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") == 1 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("invalid amount %q", raw)
	}
	if negative {
		d = d.Neg()
	}
	return decimal.NewNullDecimal(d), nil
}
