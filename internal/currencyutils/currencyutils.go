// Package currencyutils formats quantities and monetary values for display.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseQuantity parses a user-supplied number such as "12", "12.5" or "12,5".
func ParseQuantity(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return decimal.Zero, nil
	}
	if strings.Count(cleaned, ",") == 1 && !strings.Contains(cleaned, ".") {
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse number '%s': %w", s, err)
	}
	return d, nil
}

// FormatAmount renders amount with two decimals followed by the currency code,
// e.g. "$1.20 USD".
func FormatAmount(amount decimal.Decimal, currency string) string {
	return strings.TrimSpace(fmt.Sprintf("$%s %s", amount.StringFixed(2), currency))
}

// FormatSignedAmount renders the magnitude of amount prefixed with + for a
// positive value and - otherwise, e.g. "+$0.75 USD".
func FormatSignedAmount(amount decimal.Decimal, currency string) string {
	sign := "-"
	if amount.IsPositive() {
		sign = "+"
	}
	return sign + FormatAmount(amount.Abs(), currency)
}

// FormatKWh renders an energy quantity with two decimals.
func FormatKWh(kwh decimal.Decimal) string {
	return kwh.StringFixed(2) + " kWh"
}

// FormatPercent renders a percentage with one decimal.
func FormatPercent(p decimal.Decimal) string {
	return p.StringFixed(1) + "%"
}
