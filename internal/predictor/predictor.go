// Package predictor extrapolates next month's consumption from the history
// with an ordinary least-squares line over the entry index.
package predictor

import (
	"errors"
	"fmt"

	"luzialabs/luzia/internal/logging"
	"luzialabs/luzia/internal/models"

	"github.com/shopspring/decimal"
)

// MinDataPoints is the smallest history a trend can be fitted to.
const MinDataPoints = 2

// ErrInsufficientData is returned by Fit when there are fewer than
// MinDataPoints values.
var ErrInsufficientData = errors.New("insufficient data for a trend")

// Trend is the fitted line y = Slope*x + Intercept.
type Trend struct {
	Slope     decimal.Decimal
	Intercept decimal.Decimal
}

// At evaluates the trend at index x.
func (t Trend) At(x int) decimal.Decimal {
	return t.Slope.Mul(decimal.NewFromInt(int64(x))).Add(t.Intercept)
}

// Fit computes the least-squares line through (i, values[i]) for
// i = 0..len(values)-1.
func Fit(values []decimal.Decimal) (Trend, error) {
	n := len(values)
	if n < MinDataPoints {
		return Trend{}, fmt.Errorf("%w: need %d points, got %d", ErrInsufficientData, MinDataPoints, n)
	}

	count := decimal.NewFromInt(int64(n))
	meanX := decimal.NewFromInt(int64(n - 1)).Div(decimal.NewFromInt(2))
	sumY := decimal.Zero
	for _, v := range values {
		sumY = sumY.Add(v)
	}
	meanY := sumY.Div(count)

	sxy, sxx := decimal.Zero, decimal.Zero
	for i, v := range values {
		dx := decimal.NewFromInt(int64(i)).Sub(meanX)
		sxy = sxy.Add(dx.Mul(v.Sub(meanY)))
		sxx = sxx.Add(dx.Mul(dx))
	}

	// sxx > 0 whenever n >= 2 since the x values are distinct.
	slope := sxy.Div(sxx)
	return Trend{
		Slope:     slope,
		Intercept: meanY.Sub(slope.Mul(meanX)),
	}, nil
}

// Predictor turns a History into a one-step-ahead Forecast.
type Predictor struct {
	pricePerKWh decimal.Decimal
	logger      logging.Logger
}

// New returns a Predictor pricing forecasts at pricePerKWh (base currency).
func New(pricePerKWh decimal.Decimal, logger logging.Logger) *Predictor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Predictor{
		pricePerKWh: pricePerKWh,
		logger:      logger.WithField(logging.FieldComponent, "predictor"),
	}
}

// Forecast predicts the total kWh of the entry after the last one in history
// and its cost in currency. It never fails: a history that is too short
// yields an unavailable forecast. Predictions are not clamped, so a steep
// downward trend can produce a negative value.
func (p *Predictor) Forecast(history *models.History, currency models.Currency) models.Forecast {
	totals := history.Totals()
	trend, err := Fit(totals)
	if err != nil {
		reason := unavailableReason(len(totals))
		p.logger.Debug("Forecast unavailable", logging.F(logging.FieldCount, len(totals)))
		return models.UnavailableForecast(reason)
	}

	kwh := trend.At(len(totals))
	prediction := models.Prediction{
		PredictedKWh:  kwh,
		PredictedCost: currency.Convert(kwh.Mul(p.pricePerKWh)),
		Slope:         trend.Slope,
		Intercept:     trend.Intercept,
		DataPoints:    len(totals),
	}
	p.logger.Debug("Forecast computed",
		logging.F(logging.FieldCount, len(totals)),
		logging.F(logging.FieldForecast, kwh.StringFixed(2)))
	return models.NewForecast(prediction)
}

func unavailableReason(n int) string {
	if n == 0 {
		return "no history recorded yet"
	}
	return fmt.Sprintf("at least %d entries are needed to predict, found %d", MinDataPoints, n)
}
