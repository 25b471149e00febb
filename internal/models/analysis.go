package models

import "github.com/shopspring/decimal"

// BudgetStatus is the outcome of comparing the current cost with the budget.
type BudgetStatus string

const (
	BudgetOver  BudgetStatus = "OVER"
	BudgetUnder BudgetStatus = "UNDER"
	BudgetExact BudgetStatus = "EXACT"
)

// Recommendation is the saving hint derived from the category mix.
type Recommendation int

const (
	RecommendNone Recommendation = iota
	RecommendReduceAirConditioning
	RecommendUseNaturalLight
	RecommendTurnOffUnusedDevices
	RecommendKeepItUp
)

var recommendationMessages = map[Recommendation]string{
	RecommendNone:                  "",
	RecommendReduceAirConditioning: "Reduce your air conditioning use.",
	RecommendUseNaturalLight:       "Make more use of natural light.",
	RecommendTurnOffUnusedDevices:  "Turn off devices you are not using.",
	RecommendKeepItUp:              "Your consumption dropped compared to last month. Keep it up!",
}

// Message returns the user-facing text, empty for RecommendNone.
func (r Recommendation) Message() string {
	return recommendationMessages[r]
}

// IsSavingTip reports whether r asks the user to cut consumption.
func (r Recommendation) IsSavingTip() bool {
	switch r {
	case RecommendReduceAirConditioning, RecommendUseNaturalLight, RecommendTurnOffUnusedDevices:
		return true
	}
	return false
}

// AnalysisResult is the derived view of one reading. Monetary fields are in
// the display currency. It is never persisted.
type AnalysisResult struct {
	Currency     Currency
	TotalKWh     decimal.Decimal
	DeltaKWh     decimal.Decimal
	CostPrevious Money
	CostCurrent  Money
	CostDelta    Money
	Budget       Money
	BudgetStatus BudgetStatus
	// BudgetDifference is the amount over budget for BudgetOver, the remaining
	// slack for BudgetUnder and zero for BudgetExact. It is never negative.
	BudgetDifference Money
	Recommendation   Recommendation
	Breakdown        []CategoryShare
}

// CategoryShare is one slice of the category breakdown chart.
type CategoryShare struct {
	Label   string
	KWh     decimal.Decimal
	Percent decimal.Decimal
}
