// Package analyzer turns one month's category readings into cost, budget and
// recommendation figures. Everything here is a pure function of its inputs.
package analyzer

import (
	"luzialabs/luzia/internal/models"

	"github.com/shopspring/decimal"
)

// BudgetTolerance is how close the current cost must be to the budget to count
// as exactly on budget.
var BudgetTolerance = decimal.New(1, -9)

var hundred = decimal.NewFromInt(100)

// Pricing holds the fixed base-currency constants used by the analysis.
type Pricing struct {
	PricePerKWh   decimal.Decimal
	MonthlyBudget decimal.Decimal
}

// Analyzer computes AnalysisResults for a fixed Pricing.
type Analyzer struct {
	pricing Pricing
}

// New returns an Analyzer for pricing.
func New(pricing Pricing) *Analyzer {
	return &Analyzer{pricing: pricing}
}

// Pricing returns the constants the analyzer was built with.
func (a *Analyzer) Pricing() Pricing {
	return a.pricing
}

// Analyze computes the consumption delta, costs, budget comparison and
// recommendation for reading, with monetary values expressed in currency.
// Inputs are expected to be validated as non-negative.
func (a *Analyzer) Analyze(reading models.Reading, currency models.Currency) models.AnalysisResult {
	total := reading.TotalKWh()
	delta := total.Sub(reading.PreviousTotal)

	costPreviousBase := reading.PreviousTotal.Mul(a.pricing.PricePerKWh)
	costCurrentBase := total.Mul(a.pricing.PricePerKWh)
	costDeltaBase := costCurrentBase.Sub(costPreviousBase)

	costCurrent := currency.Convert(costCurrentBase)
	budget := currency.Convert(a.pricing.MonthlyBudget)
	status, difference := CompareBudget(costCurrent.Amount, budget.Amount)

	return models.AnalysisResult{
		Currency:         currency,
		TotalKWh:         total,
		DeltaKWh:         delta,
		CostPrevious:     currency.Convert(costPreviousBase),
		CostCurrent:      costCurrent,
		CostDelta:        currency.Convert(costDeltaBase),
		Budget:           budget,
		BudgetStatus:     status,
		BudgetDifference: models.NewMoney(difference, currency.Code),
		Recommendation:   Recommend(reading, delta),
		Breakdown:        Breakdown(reading),
	}
}

// Entry builds the record persisted for reading on date. The stored cost is
// always in the base currency.
func (a *Analyzer) Entry(reading models.Reading, date models.Date) models.ConsumptionEntry {
	return models.NewConsumptionEntry(date, reading, a.pricing.PricePerKWh)
}

// CompareBudget classifies cost against budget. The returned amount is the
// overrun for BudgetOver, the remaining slack for BudgetUnder and zero for
// BudgetExact.
func CompareBudget(cost, budget decimal.Decimal) (models.BudgetStatus, decimal.Decimal) {
	diff := cost.Sub(budget)
	switch {
	case diff.Abs().LessThanOrEqual(BudgetTolerance):
		return models.BudgetExact, decimal.Zero
	case diff.IsPositive():
		return models.BudgetOver, diff
	default:
		return models.BudgetUnder, diff.Neg()
	}
}

// Recommend picks the hint for a reading whose total changed by delta.
// A saving tip is only given when consumption went up: air conditioning or
// lighting must be the strict maximum to be singled out, every other case
// (ties included) falls back to turning off unused devices.
func Recommend(reading models.Reading, delta decimal.Decimal) models.Recommendation {
	switch {
	case delta.IsNegative():
		return models.RecommendKeepItUp
	case delta.IsZero():
		return models.RecommendNone
	}

	ac, light, other := reading.ACKWh, reading.LightingKWh, reading.OtherKWh
	switch {
	case ac.GreaterThan(light) && ac.GreaterThan(other):
		return models.RecommendReduceAirConditioning
	case light.GreaterThan(ac) && light.GreaterThan(other):
		return models.RecommendUseNaturalLight
	default:
		return models.RecommendTurnOffUnusedDevices
	}
}

// Breakdown returns the category proportions of reading for charting. With a
// zero total every share is 0%.
func Breakdown(reading models.Reading) []models.CategoryShare {
	total := reading.TotalKWh()
	shares := []models.CategoryShare{
		{Label: models.CategoryAirConditioning, KWh: reading.ACKWh},
		{Label: models.CategoryLighting, KWh: reading.LightingKWh},
		{Label: models.CategoryOther, KWh: reading.OtherKWh},
	}
	for i := range shares {
		if total.IsZero() {
			shares[i].Percent = decimal.Zero
			continue
		}
		shares[i].Percent = shares[i].KWh.Div(total).Mul(hundred)
	}
	return shares
}
