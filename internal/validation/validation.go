// Package validation checks user input before it reaches the analyzer, which
// assumes every quantity is a non-negative number.
package validation

import (
	"luzialabs/luzia/internal/apperror"
	"luzialabs/luzia/internal/currencyutils"
	"luzialabs/luzia/internal/dateutils"
	"luzialabs/luzia/internal/models"

	"github.com/shopspring/decimal"
)

// ReadingInput is the raw form of a reading as typed by the user.
type ReadingInput struct {
	Month         string
	ACKWh         string
	LightingKWh   string
	OtherKWh      string
	PreviousTotal string
}

// ParseReading validates in and converts it to a models.Reading. The first
// offending field is reported as an *apperror.ValidationError.
func ParseReading(in ReadingInput) (models.Reading, error) {
	month, err := dateutils.NormalizeMonth(in.Month)
	if err != nil {
		return models.Reading{}, &apperror.ValidationError{Field: "month", Value: in.Month, Reason: err.Error()}
	}

	reading := models.Reading{Month: month}
	quantities := []struct {
		field string
		raw   string
		dst   *decimal.Decimal
	}{
		{"ac", in.ACKWh, &reading.ACKWh},
		{"lighting", in.LightingKWh, &reading.LightingKWh},
		{"other", in.OtherKWh, &reading.OtherKWh},
		{"previous", in.PreviousTotal, &reading.PreviousTotal},
	}

	for _, q := range quantities {
		value, err := NonNegativeQuantity(q.field, q.raw)
		if err != nil {
			return models.Reading{}, err
		}
		*q.dst = value
	}

	return reading, nil
}

// NonNegativeQuantity parses raw as a number and rejects negative values.
// An empty string is zero.
func NonNegativeQuantity(field, raw string) (decimal.Decimal, error) {
	value, err := currencyutils.ParseQuantity(raw)
	if err != nil {
		return decimal.Zero, &apperror.ValidationError{Field: field, Value: raw, Reason: "not a number"}
	}
	if value.IsNegative() {
		return decimal.Zero, &apperror.ValidationError{Field: field, Value: raw, Reason: "must not be negative"}
	}
	return value, nil
}

// PositiveQuantity is like NonNegativeQuantity but also rejects zero.
func PositiveQuantity(field, raw string) (decimal.Decimal, error) {
	value, err := NonNegativeQuantity(field, raw)
	if err != nil {
		return decimal.Zero, err
	}
	if value.IsZero() {
		return decimal.Zero, &apperror.ValidationError{Field: field, Value: raw, Reason: "must be greater than zero"}
	}
	return value, nil
}
