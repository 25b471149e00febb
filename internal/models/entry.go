package models

import (
	"github.com/shopspring/decimal"
)

// ConsumptionEntry is one persisted monthly record. Field order is the column
// order of the history log.
type ConsumptionEntry struct {
	Date        Date            `csv:"date"`
	Month       string          `csv:"month"`
	ACKWh       decimal.Decimal `csv:"ac_kwh"`
	LightingKWh decimal.Decimal `csv:"lighting_kwh"`
	OtherKWh    decimal.Decimal `csv:"other_kwh"`
	CostBase    decimal.Decimal `csv:"cost_usd"`
}

// NewConsumptionEntry builds an entry for reading, deriving the base-currency
// cost from the three category quantities and the price per kWh.
func NewConsumptionEntry(date Date, reading Reading, pricePerKWh decimal.Decimal) ConsumptionEntry {
	return ConsumptionEntry{
		Date:        date,
		Month:       reading.Month,
		ACKWh:       reading.ACKWh,
		LightingKWh: reading.LightingKWh,
		OtherKWh:    reading.OtherKWh,
		CostBase:    reading.TotalKWh().Mul(pricePerKWh),
	}
}

// TotalKWh is the sum of the three category quantities.
func (e ConsumptionEntry) TotalKWh() decimal.Decimal {
	return e.ACKWh.Add(e.LightingKWh).Add(e.OtherKWh)
}

// Equal compares entries field by field using decimal equality.
func (e ConsumptionEntry) Equal(other ConsumptionEntry) bool {
	return e.Date.Equal(other.Date.Time) &&
		e.Month == other.Month &&
		e.ACKWh.Equal(other.ACKWh) &&
		e.LightingKWh.Equal(other.LightingKWh) &&
		e.OtherKWh.Equal(other.OtherKWh) &&
		e.CostBase.Equal(other.CostBase)
}

// Validate reports the first invariant the entry violates, if any.
func (e ConsumptionEntry) Validate() error {
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"ac_kwh", e.ACKWh},
		{"lighting_kwh", e.LightingKWh},
		{"other_kwh", e.OtherKWh},
		{"cost_usd", e.CostBase},
	}
	for _, f := range fields {
		if f.value.IsNegative() {
			return &NegativeQuantityError{Field: f.name, Value: f.value}
		}
	}
	return nil
}

// NegativeQuantityError reports a quantity below zero.
type NegativeQuantityError struct {
	Field string
	Value decimal.Decimal
}

func (e *NegativeQuantityError) Error() string {
	return e.Field + " must not be negative, got " + e.Value.String()
}
