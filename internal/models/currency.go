package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is a display unit. Every monetary value shown in a currency is the
// base-currency value multiplied by Rate, so the base currency has Rate 1.
type Currency struct {
	Code string
	Rate decimal.Decimal
}

// Convert expresses a base-currency amount in c.
func (c Currency) Convert(base decimal.Decimal) Money {
	return NewMoney(base.Mul(c.Rate), c.Code)
}

// IsBase reports whether c is the unconverted base currency.
func (c Currency) IsBase() bool {
	return c.Rate.Equal(decimal.NewFromInt(1))
}

// CurrencySet holds the two supported currencies.
type CurrencySet struct {
	Base Currency
	Alt  Currency
}

// NewCurrencySet builds the base/alternate pair from configured codes and the
// fixed base-to-alternate exchange rate.
func NewCurrencySet(baseCode, altCode string, exchangeRate decimal.Decimal) (CurrencySet, error) {
	if !exchangeRate.IsPositive() {
		return CurrencySet{}, fmt.Errorf("exchange rate must be positive, got %s", exchangeRate)
	}
	baseCode = strings.ToUpper(strings.TrimSpace(baseCode))
	altCode = strings.ToUpper(strings.TrimSpace(altCode))
	if baseCode == "" || altCode == "" {
		return CurrencySet{}, fmt.Errorf("currency codes must not be empty")
	}
	if baseCode == altCode {
		return CurrencySet{}, fmt.Errorf("base and alternate currency are both %s", baseCode)
	}
	return CurrencySet{
		Base: Currency{Code: baseCode, Rate: decimal.NewFromInt(1)},
		Alt:  Currency{Code: altCode, Rate: exchangeRate},
	}, nil
}

// Resolve returns the currency with the given code, ignoring case.
func (s CurrencySet) Resolve(code string) (Currency, error) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case s.Base.Code:
		return s.Base, nil
	case s.Alt.Code:
		return s.Alt, nil
	default:
		return Currency{}, fmt.Errorf("unsupported currency %q (expected %s or %s)", code, s.Base.Code, s.Alt.Code)
	}
}

// Codes lists the supported currency codes, base first.
func (s CurrencySet) Codes() []string {
	return []string{s.Base.Code, s.Alt.Code}
}
