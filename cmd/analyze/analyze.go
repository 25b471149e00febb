// Package analyze implements the command that records a month's consumption.
package analyze

import (
	"time"

	"luzialabs/luzia/cmd/root"
	"luzialabs/luzia/internal/apperror"
	"luzialabs/luzia/internal/dateutils"
	"luzialabs/luzia/internal/models"
	"luzialabs/luzia/internal/report"
	"luzialabs/luzia/internal/tracker"
	"luzialabs/luzia/internal/validation"

	"github.com/spf13/cobra"
)

// Options holds the analyze command flags.
type Options struct {
	Currency string
	Month    string
	AC       string
	Lighting string
	Other    string
	Previous string
	Date     string
	DryRun   bool
}

var opts Options

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze and record this month's consumption",
	Long: `Analyze computes the cost of this month's consumption, compares it with the
previous month and the monthly budget, records the entry in the history and
predicts next month's consumption.

Quantities are in kWh. Use the estimate command if you only know how long
your devices run.`,
	Example: `  luzia analyze --month May --ac 120 --lighting 30 --other 45 --previous 180
  luzia analyze --currency ARS --ac 120 --lighting 30 --other 45 --previous 180 --dry-run`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&opts.Currency, "currency", "c", "", "display currency (default from configuration)")
	Cmd.Flags().StringVarP(&opts.Month, "month", "m", "", "month of the reading (default: current month)")
	Cmd.Flags().StringVar(&opts.AC, "ac", "", "air conditioning consumption in kWh")
	Cmd.Flags().StringVar(&opts.Lighting, "lighting", "", "lighting consumption in kWh")
	Cmd.Flags().StringVar(&opts.Other, "other", "", "other devices consumption in kWh")
	Cmd.Flags().StringVarP(&opts.Previous, "previous", "p", "", "previous month's total consumption in kWh")
	Cmd.Flags().StringVar(&opts.Date, "date", "", "date recorded with the entry, YYYY-MM-DD (default: today)")
	Cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "show the analysis without recording it")
}

func run(cmd *cobra.Command, _ []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	currency, err := c.ResolveCurrency(opts.Currency)
	if err != nil {
		return &apperror.ValidationError{Field: "currency", Value: opts.Currency, Reason: err.Error()}
	}

	month := opts.Month
	if month == "" {
		month = dateutils.CurrentMonth(time.Now())
	}
	reading, err := validation.ParseReading(validation.ReadingInput{
		Month:         month,
		ACKWh:         opts.AC,
		LightingKWh:   opts.Lighting,
		OtherKWh:      opts.Other,
		PreviousTotal: opts.Previous,
	})
	if err != nil {
		return err
	}

	in := tracker.SubmitInput{Reading: reading, Currency: currency}
	if opts.Date != "" {
		date, err := models.ParseDate(opts.Date)
		if err != nil {
			return &apperror.ValidationError{Field: "date", Value: opts.Date, Reason: "expected YYYY-MM-DD"}
		}
		in.Date = date
	}

	svc := c.GetTracker()
	if opts.DryRun {
		svc = c.DryRunTracker()
	}
	result, err := svc.Submit(in)
	if err != nil {
		return err
	}

	gen := report.NewGenerator(cmd.OutOrStdout(), c.GetCurrencies().Base.Code, c.GetLogger())
	if opts.DryRun {
		return gen.Preview(result)
	}
	return gen.Submission(result)
}
