// Package container provides dependency injection for luzia.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"luzialabs/luzia/internal/analyzer"
	"luzialabs/luzia/internal/config"
	"luzialabs/luzia/internal/history"
	"luzialabs/luzia/internal/logging"
	"luzialabs/luzia/internal/models"
	"luzialabs/luzia/internal/predictor"
	"luzialabs/luzia/internal/tracker"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	currencies models.CurrencySet
	analyzer   *analyzer.Analyzer
	store      *history.CSVStore
	predictor  *predictor.Predictor
	tracker    *tracker.Service
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	return NewContainerWithLogger(cfg, logger)
}

// NewContainerWithLogger is NewContainer with a caller-supplied logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	currencies, err := models.NewCurrencySet(cfg.Pricing.BaseCurrency, cfg.Pricing.AltCurrency, cfg.ExchangeRate())
	if err != nil {
		return nil, fmt.Errorf("failed to set up currencies: %w", err)
	}

	a := analyzer.New(analyzer.Pricing{
		PricePerKWh:   cfg.PricePerKWh(),
		MonthlyBudget: cfg.MonthlyBudget(),
	})
	store := history.NewCSVStore(cfg.HistoryPath(), cfg.DelimiterRune(), logger)
	p := predictor.New(cfg.PricePerKWh(), logger)
	svc := tracker.NewService(a, store, p, logger)

	logger.Debug("Container initialized",
		logging.F(logging.FieldFile, store.Path()),
		logging.F(logging.FieldDelimiter, string(cfg.DelimiterRune())),
		logging.F(logging.FieldCurrency, currencies.Codes()))

	return &Container{
		logger:     logger,
		config:     cfg,
		currencies: currencies,
		analyzer:   a,
		store:      store,
		predictor:  p,
		tracker:    svc,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetCurrencies returns the base and alternate currencies.
func (c *Container) GetCurrencies() models.CurrencySet {
	return c.currencies
}

// ResolveCurrency returns the currency for code, or the configured default
// display currency when code is empty.
func (c *Container) ResolveCurrency(code string) (models.Currency, error) {
	if code == "" {
		code = c.config.Display.DefaultCurrency
	}
	return c.currencies.Resolve(code)
}

// GetAnalyzer returns the consumption analyzer.
func (c *Container) GetAnalyzer() *analyzer.Analyzer {
	return c.analyzer
}

// GetStore returns the file-backed history store.
func (c *Container) GetStore() *history.CSVStore {
	return c.store
}

// GetPredictor returns the trend predictor.
func (c *Container) GetPredictor() *predictor.Predictor {
	return c.predictor
}

// GetTracker returns the service running a full interaction.
func (c *Container) GetTracker() *tracker.Service {
	return c.tracker
}

// DryRunTracker returns a tracker over an in-memory copy of the current
// history. Submissions are analyzed and forecast without touching the log.
func (c *Container) DryRunTracker() *tracker.Service {
	seed := history.NewMemoryStore()
	loaded, err := c.store.Load()
	if err != nil {
		c.logger.WithError(err).Warn("History unavailable, previewing without it")
	} else {
		seed = history.NewMemoryStore(loaded.Entries...)
	}
	return tracker.NewService(c.analyzer, seed, c.predictor, c.logger)
}
