package models

import "github.com/shopspring/decimal"

// Reading is one month's user input: the three category quantities and the
// previous month's total, all in kWh.
type Reading struct {
	Month         string
	ACKWh         decimal.Decimal
	LightingKWh   decimal.Decimal
	OtherKWh      decimal.Decimal
	PreviousTotal decimal.Decimal
}

// TotalKWh is this month's consumption across all categories.
func (r Reading) TotalKWh() decimal.Decimal {
	return r.ACKWh.Add(r.LightingKWh).Add(r.OtherKWh)
}
