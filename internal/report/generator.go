// Package report renders analyses, forecasts and the history for the
// terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"luzialabs/luzia/internal/currencyutils"
	"luzialabs/luzia/internal/estimator"
	"luzialabs/luzia/internal/logging"
	"luzialabs/luzia/internal/models"
	"luzialabs/luzia/internal/tracker"

	"github.com/shopspring/decimal"
)

const barWidth = 30

// Generator writes human-readable reports to an output.
type Generator struct {
	out          io.Writer
	styles       styles
	baseCurrency string
	logger       logging.Logger
}

// NewGenerator creates a Generator writing to out. baseCurrency labels the
// cost column of the history, which is always stored in that currency.
func NewGenerator(out io.Writer, baseCurrency string, logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{
		out:          out,
		styles:       newStyles(out),
		baseCurrency: baseCurrency,
		logger:       logger.WithField(logging.FieldComponent, "report"),
	}
}

// Submission writes the full result of recording a reading: the analysis,
// the category breakdown, the forecast and the history.
func (g *Generator) Submission(r *tracker.Report) error {
	return g.write(
		g.styles.title.Render(fmt.Sprintf("Consumption report: %s", r.Entry.Month)),
		g.renderAnalysis(r.Analysis),
		g.renderBreakdown(r.Analysis.Breakdown),
		g.renderForecast(r.Snapshot),
		g.renderHistory(r.Snapshot, r.Analysis.Currency),
	)
}

// Preview writes the result of a dry run: the analysis, the breakdown and
// the forecast the entry would lead to. Nothing was recorded.
func (g *Generator) Preview(r *tracker.Report) error {
	return g.write(
		g.styles.title.Render(fmt.Sprintf("Consumption preview: %s (not recorded)", r.Entry.Month)),
		g.renderAnalysis(r.Analysis),
		g.renderBreakdown(r.Analysis.Breakdown),
		g.renderForecast(r.Snapshot),
	)
}

// History writes the history table. Costs are stored in the base currency;
// a second cost column is added when currency is not the base.
func (g *Generator) History(s tracker.Snapshot, currency models.Currency) error {
	return g.write(g.renderHistory(s, currency))
}

// Forecast writes the forecast for the next month.
func (g *Generator) Forecast(s tracker.Snapshot) error {
	return g.write(g.renderForecast(s))
}

// Devices writes the table of device presets.
func (g *Generator) Devices(devices []estimator.Device) error {
	t := table{
		Title:   "Average consumption by device",
		Headers: []string{"Device", "Key", "Consumption", "Category"},
	}
	for _, dev := range devices {
		t.Rows = append(t.Rows, []string{dev.Name, dev.Key, dev.Rate(), dev.Category})
	}
	footer := g.styles.muted.Render("Estimate = power (kW) × hours of daily use × days in the month")
	return g.write(g.styles.renderTable(t) + footer)
}

// Estimate writes the result of a usage estimate.
func (g *Generator) Estimate(what string, kwh decimal.Decimal, category string) error {
	lines := []string{
		g.line("Estimate for", what),
		g.line("Monthly consumption", g.styles.energy.Render(currencyutils.FormatKWh(kwh))),
	}
	if category != "" {
		lines = append(lines, g.line("Add it to", category))
	}
	return g.write(strings.Join(lines, "\n"))
}

func (g *Generator) write(sections ...string) error {
	var b strings.Builder
	for _, section := range sections {
		if section == "" {
			continue
		}
		b.WriteString(strings.TrimRight(section, "\n"))
		b.WriteString("\n\n")
	}
	if _, err := io.WriteString(g.out, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (g *Generator) line(label, value string) string {
	return g.styles.label.Render(fmt.Sprintf("%-22s", label+":")) + " " + g.styles.value.Render(value)
}

func (g *Generator) renderAnalysis(r models.AnalysisResult) string {
	code := r.Currency.Code
	lines := []string{
		g.styles.header.Render("Results"),
		g.line("Total consumption", currencyutils.FormatKWh(r.TotalKWh)),
		g.line("Consumption change", currencyutils.FormatKWh(r.DeltaKWh)),
		g.line("Previous cost", currencyutils.FormatAmount(r.CostPrevious.Amount, code)),
		g.line("Current cost", currencyutils.FormatAmount(r.CostCurrent.Amount, code)),
		g.line("Cost change", currencyutils.FormatSignedAmount(r.CostDelta.Amount, code)),
		g.line("Monthly budget", currencyutils.FormatAmount(r.Budget.Amount, code)),
		"",
		g.renderBudget(r),
	}

	switch {
	case r.Recommendation.IsSavingTip():
		lines = append(lines, "", g.styles.header.Render("Saving tips"), "- "+r.Recommendation.Message())
	case r.Recommendation == models.RecommendKeepItUp:
		lines = append(lines, "", g.styles.header.Render("Good job!"), g.styles.good.Render(r.Recommendation.Message()))
	}
	return strings.Join(lines, "\n")
}

func (g *Generator) renderBudget(r models.AnalysisResult) string {
	diff := currencyutils.FormatAmount(r.BudgetDifference.Amount, r.Currency.Code)
	switch r.BudgetStatus {
	case models.BudgetOver:
		return g.styles.bad.Render("Over budget by " + diff)
	case models.BudgetUnder:
		return g.styles.good.Render("Within budget, " + diff + " left")
	default:
		return g.styles.neutral.Render("Exactly on your budget limit")
	}
}

func (g *Generator) renderBreakdown(shares []models.CategoryShare) string {
	if len(shares) == 0 {
		return ""
	}
	labelWidth := 0
	for _, s := range shares {
		if len(s.Label) > labelWidth {
			labelWidth = len(s.Label)
		}
	}

	lines := []string{g.styles.header.Render("Consumption by category")}
	for _, s := range shares {
		percent := s.Percent.InexactFloat64()
		lines = append(lines, fmt.Sprintf("%s %s %7s  %s",
			g.styles.label.Render(fmt.Sprintf("%-*s", labelWidth, s.Label)),
			g.styles.renderBar(percent, barWidth),
			currencyutils.FormatPercent(s.Percent),
			g.styles.muted.Render(currencyutils.FormatKWh(s.KWh))))
	}
	return strings.Join(lines, "\n")
}

func (g *Generator) renderForecast(s tracker.Snapshot) string {
	lines := []string{g.styles.header.Render("Next month forecast")}

	prediction, ok := s.Forecast.Prediction()
	if !ok {
		lines = append(lines, g.styles.muted.Render(
			fmt.Sprintf("Not enough history to predict next month (%s).", s.Forecast.Reason)))
		return strings.Join(lines, "\n")
	}

	lines = append(lines,
		g.line("Expected consumption", g.styles.energy.Render(currencyutils.FormatKWh(prediction.PredictedKWh))),
		g.line("Approximate cost", currencyutils.FormatAmount(prediction.PredictedCost.Amount, prediction.PredictedCost.Currency)),
		g.line("Trend", fmt.Sprintf("%s kWh per entry over %d entries",
			signed(prediction.Slope), prediction.DataPoints)),
	)
	return strings.Join(lines, "\n")
}

func (g *Generator) renderHistory(s tracker.Snapshot, currency models.Currency) string {
	if s.LoadError != nil {
		return g.styles.warn.Render(fmt.Sprintf("History could not be read: %v", s.LoadError))
	}
	if s.History.Len() == 0 {
		return g.styles.header.Render("History") + "\n" + g.styles.muted.Render("No history recorded yet.")
	}

	t := table{
		Title: "History",
		Headers: []string{
			"Date", "Month", "AC (kWh)", "Lighting (kWh)", "Other (kWh)",
			fmt.Sprintf("Cost (%s)", g.baseCurrency),
		},
	}
	converted := currency.Code != "" && currency.Code != g.baseCurrency
	if converted {
		t.Headers = append(t.Headers, fmt.Sprintf("Cost (%s)", currency.Code))
	}
	for _, e := range s.History.Entries {
		row := []string{
			e.Date.String(),
			e.Month,
			e.ACKWh.StringFixed(2),
			e.LightingKWh.StringFixed(2),
			e.OtherKWh.StringFixed(2),
			e.CostBase.StringFixed(2),
		}
		if converted {
			row = append(row, currency.Convert(e.CostBase).Amount.StringFixed(2))
		}
		t.Rows = append(t.Rows, row)
	}

	out := g.styles.renderTable(t)
	summary := fmt.Sprintf("%d entries", s.History.Len())
	if s.History.Skipped > 0 {
		summary += fmt.Sprintf(", %d unreadable rows skipped", s.History.Skipped)
		g.logger.Debug("Rendering history with skipped rows", logging.F(logging.FieldSkipped, s.History.Skipped))
	}
	return out + g.styles.muted.Render(summary)
}

func signed(v decimal.Decimal) string {
	if v.IsPositive() {
		return "+" + v.StringFixed(2)
	}
	return v.StringFixed(2)
}
