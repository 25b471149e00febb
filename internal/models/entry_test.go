package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConsumptionEntry_DerivesCost(t *testing.T) {
	date := NewDate(time.Date(2025, 3, 14, 18, 30, 0, 0, time.Local))
	reading := Reading{
		Month:         "March",
		ACKWh:         decimal.NewFromInt(5),
		LightingKWh:   decimal.NewFromInt(2),
		OtherKWh:      decimal.NewFromInt(1),
		PreviousTotal: decimal.NewFromInt(3),
	}

	entry := NewConsumptionEntry(date, reading, decimal.RequireFromString("0.15"))

	assert.Equal(t, "2025-03-14", entry.Date.String())
	assert.Equal(t, "March", entry.Month)
	assert.True(t, entry.TotalKWh().Equal(decimal.NewFromInt(8)))
	assert.Equal(t, "1.20", entry.CostBase.StringFixed(2))
	assert.NoError(t, entry.Validate())
}

func TestConsumptionEntry_ValidateRejectsNegatives(t *testing.T) {
	entry := ConsumptionEntry{
		ACKWh:       decimal.NewFromInt(1),
		LightingKWh: decimal.NewFromInt(-1),
	}
	err := entry.Validate()
	require.Error(t, err)

	var neg *NegativeQuantityError
	require.ErrorAs(t, err, &neg)
	assert.Equal(t, "lighting_kwh", neg.Field)
}

func TestConsumptionEntry_Equal(t *testing.T) {
	date, err := ParseDate("2025-01-31")
	require.NoError(t, err)
	a := ConsumptionEntry{Date: date, Month: "January", ACKWh: decimal.RequireFromString("5.0")}
	b := ConsumptionEntry{Date: date, Month: "January", ACKWh: decimal.NewFromInt(5)}

	assert.True(t, a.Equal(b))
	b.Month = "February"
	assert.False(t, a.Equal(b))
}

func TestDate_CSVRoundTrip(t *testing.T) {
	date := NewDate(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC))
	s, err := date.MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "2024-12-01", s)

	var parsed Date
	require.NoError(t, parsed.UnmarshalCSV(s))
	assert.True(t, parsed.Equal(date.Time))

	assert.Error(t, parsed.UnmarshalCSV("01.12.2024"))
}

func TestHistory_Totals(t *testing.T) {
	var empty *History
	assert.Equal(t, 0, empty.Len())
	assert.Nil(t, empty.Totals())
	_, ok := empty.Last()
	assert.False(t, ok)

	h := &History{Entries: []ConsumptionEntry{
		{Month: "January", ACKWh: decimal.NewFromInt(4), LightingKWh: decimal.NewFromInt(3), OtherKWh: decimal.NewFromInt(3)},
		{Month: "February", ACKWh: decimal.NewFromInt(6), LightingKWh: decimal.NewFromInt(4), OtherKWh: decimal.NewFromInt(2)},
	}}

	totals := h.Totals()
	require.Len(t, totals, 2)
	assert.True(t, totals[0].Equal(decimal.NewFromInt(10)))
	assert.True(t, totals[1].Equal(decimal.NewFromInt(12)))

	last, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, "February", last.Month)
}

func TestForecast(t *testing.T) {
	unavailable := UnavailableForecast("need at least 2 entries")
	_, ok := unavailable.Prediction()
	assert.False(t, ok)
	assert.False(t, unavailable.Available())
	assert.Equal(t, "need at least 2 entries", unavailable.Reason)

	available := NewForecast(Prediction{PredictedKWh: decimal.NewFromInt(16), DataPoints: 3})
	p, ok := available.Prediction()
	require.True(t, ok)
	assert.True(t, p.PredictedKWh.Equal(decimal.NewFromInt(16)))
}

func TestRecommendation_Message(t *testing.T) {
	assert.Empty(t, RecommendNone.Message())
	assert.Contains(t, RecommendReduceAirConditioning.Message(), "air conditioning")
	assert.True(t, RecommendTurnOffUnusedDevices.IsSavingTip())
	assert.False(t, RecommendKeepItUp.IsSavingTip())
	assert.False(t, RecommendNone.IsSavingTip())
}
