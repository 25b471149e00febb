// Package predict implements the command that forecasts next month's
// consumption from the recorded history.
package predict

import (
	"luzialabs/luzia/cmd/root"
	"luzialabs/luzia/internal/apperror"
	"luzialabs/luzia/internal/report"

	"github.com/spf13/cobra"
)

var currencyCode string

// Cmd represents the predict command
var Cmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict next month's consumption",
	Long: `Predict fits a straight line through the total consumption of every recorded
entry, in the order they were recorded, and extends it by one entry. At least
two entries are needed.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&currencyCode, "currency", "c", "", "currency of the estimated cost (default from configuration)")
}

func run(cmd *cobra.Command, _ []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	currency, err := c.ResolveCurrency(currencyCode)
	if err != nil {
		return &apperror.ValidationError{Field: "currency", Value: currencyCode, Reason: err.Error()}
	}

	gen := report.NewGenerator(cmd.OutOrStdout(), c.GetCurrencies().Base.Code, c.GetLogger())
	return gen.Forecast(c.GetTracker().Snapshot(currency))
}
