package models

import "github.com/shopspring/decimal"

// Prediction is the one-step-ahead extrapolation of the consumption trend.
type Prediction struct {
	PredictedKWh  decimal.Decimal
	PredictedCost Money
	Slope         decimal.Decimal
	Intercept     decimal.Decimal
	DataPoints    int
}

// ForecastStatus tells whether a Forecast carries a Prediction.
type ForecastStatus string

const (
	ForecastAvailable   ForecastStatus = "available"
	ForecastUnavailable ForecastStatus = "unavailable"
)

// Forecast is either a Prediction or an explanation of why none could be
// made. Callers branch on Status or use Prediction().
type Forecast struct {
	Status     ForecastStatus
	Reason     string
	prediction Prediction
}

// NewForecast wraps an available prediction.
func NewForecast(p Prediction) Forecast {
	return Forecast{Status: ForecastAvailable, prediction: p}
}

// UnavailableForecast returns a forecast with no prediction.
func UnavailableForecast(reason string) Forecast {
	return Forecast{Status: ForecastUnavailable, Reason: reason}
}

// Prediction returns the prediction and true when one is available.
func (f Forecast) Prediction() (Prediction, bool) {
	if f.Status != ForecastAvailable {
		return Prediction{}, false
	}
	return f.prediction, true
}

// Available reports whether f carries a prediction.
func (f Forecast) Available() bool {
	return f.Status == ForecastAvailable
}
