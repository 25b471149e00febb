// Package tracker runs one interaction end to end: analyze a reading, record
// it in the history, reload the history and forecast the next month.
package tracker

import (
	"fmt"
	"time"

	"luzialabs/luzia/internal/analyzer"
	"luzialabs/luzia/internal/history"
	"luzialabs/luzia/internal/logging"
	"luzialabs/luzia/internal/models"
	"luzialabs/luzia/internal/predictor"
)

// SubmitInput is a validated reading and the currency to report it in.
type SubmitInput struct {
	Reading  models.Reading
	Currency models.Currency
	// Date stamps the persisted entry. The zero value means today.
	Date models.Date
}

// Snapshot is the history and the forecast derived from it.
type Snapshot struct {
	History  *models.History
	Forecast models.Forecast
	// LoadError is set when the history could not be read. History is then
	// empty and Forecast unavailable.
	LoadError error
}

// Report is everything produced by a Submit.
type Report struct {
	Analysis models.AnalysisResult
	Entry    models.ConsumptionEntry
	Snapshot
}

// Service ties the analyzer, the history store and the predictor together.
type Service struct {
	analyzer  *analyzer.Analyzer
	store     history.Store
	predictor *predictor.Predictor
	logger    logging.Logger
	now       func() time.Time
}

// NewService creates a Service.
func NewService(a *analyzer.Analyzer, store history.Store, p *predictor.Predictor, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Service{
		analyzer:  a,
		store:     store,
		predictor: p,
		logger:    logger.WithField(logging.FieldComponent, "tracker"),
		now:       time.Now,
	}
}

// Submit analyzes the reading and appends it to the history before loading
// the history back for the forecast. A failed append is returned as an error
// so the entry is never lost silently. A failed load only degrades the
// report.
func (s *Service) Submit(in SubmitInput) (*Report, error) {
	result := s.analyzer.Analyze(in.Reading, in.Currency)

	date := in.Date
	if date.IsZero() {
		date = models.NewDate(s.now())
	}
	entry := s.analyzer.Entry(in.Reading, date)

	if err := s.store.Append(entry); err != nil {
		s.logger.WithError(err).Error("Failed to record entry", logging.F(logging.FieldMonth, entry.Month))
		return nil, fmt.Errorf("failed to record entry: %w", err)
	}

	s.logger.Info("Recorded entry",
		logging.F(logging.FieldMonth, entry.Month),
		logging.F(logging.FieldTotalKWh, result.TotalKWh.String()),
		logging.F(logging.FieldDeltaKWh, result.DeltaKWh.String()),
		logging.F(logging.FieldBudget, string(result.BudgetStatus)))

	return &Report{
		Analysis: result,
		Entry:    entry,
		Snapshot: s.Snapshot(in.Currency),
	}, nil
}

// Snapshot loads the history and forecasts from it without recording
// anything.
func (s *Service) Snapshot(currency models.Currency) Snapshot {
	loaded, err := s.store.Load()
	if err != nil {
		s.logger.WithError(err).Warn("History unavailable, continuing without it")
		return Snapshot{
			History:   &models.History{},
			Forecast:  models.UnavailableForecast("history could not be read"),
			LoadError: err,
		}
	}
	if loaded.Skipped > 0 {
		s.logger.Debug("Some history rows were skipped", logging.F(logging.FieldSkipped, loaded.Skipped))
	}
	return Snapshot{
		History:  loaded,
		Forecast: s.predictor.Forecast(loaded, currency),
	}
}
