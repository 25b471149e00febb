// Package estimate implements the command that approximates a device's
// monthly consumption for users without per-category readings.
package estimate

import (
	"fmt"

	"luzialabs/luzia/cmd/root"
	"luzialabs/luzia/internal/apperror"
	"luzialabs/luzia/internal/estimator"
	"luzialabs/luzia/internal/report"
	"luzialabs/luzia/internal/validation"

	"github.com/spf13/cobra"
)

// Options holds the estimate command flags.
type Options struct {
	Device   string
	Quantity string
	PowerKW  string
	PerDay   string
	Days     string
	List     bool
}

var opts = defaultOptions()

func defaultOptions() Options {
	return Options{Quantity: "1", Days: "30"}
}

// Cmd represents the estimate command
var Cmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate a device's monthly consumption",
	Long: `Estimate approximates monthly consumption as
power (kW) × hours of daily use × days, either for a device of known power or
for one of the built-in device presets. Run with --list to see the presets.`,
	Example: `  luzia estimate --list
  luzia estimate --device ac --hours 6
  luzia estimate --device led --quantity 8 --hours 5
  luzia estimate --power-kw 2.2 --hours 1 --days 20`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&opts.Device, "device", "d", "", "device preset key or name")
	Cmd.Flags().StringVarP(&opts.Quantity, "quantity", "q", opts.Quantity, "number of devices")
	Cmd.Flags().StringVar(&opts.PowerKW, "power-kw", "", "device power in kW, instead of a preset")
	Cmd.Flags().StringVar(&opts.PerDay, "hours", "", "hours of use per day (cycles per day for cycle-based devices)")
	Cmd.Flags().StringVar(&opts.Days, "days", opts.Days, "number of days")
	Cmd.Flags().BoolVarP(&opts.List, "list", "l", false, "list device presets")
}

func run(cmd *cobra.Command, _ []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	gen := report.NewGenerator(cmd.OutOrStdout(), c.GetCurrencies().Base.Code, c.GetLogger())

	if opts.List || (opts.Device == "" && opts.PowerKW == "") {
		return gen.Devices(estimator.Devices())
	}
	if opts.Device != "" && opts.PowerKW != "" {
		return &apperror.ValidationError{Field: "power-kw", Value: opts.PowerKW, Reason: "cannot be combined with --device"}
	}

	days, err := validation.PositiveQuantity("days", opts.Days)
	if err != nil {
		return err
	}
	perDay, err := validation.NonNegativeQuantity("hours", opts.PerDay)
	if err != nil {
		return err
	}

	if opts.PowerKW != "" {
		power, err := validation.PositiveQuantity("power-kw", opts.PowerKW)
		if err != nil {
			return err
		}
		what := fmt.Sprintf("%s kW device", power.String())
		return gen.Estimate(what, estimator.Estimate(power, perDay, days), "")
	}

	dev, err := estimator.Lookup(opts.Device)
	if err != nil {
		return &apperror.ValidationError{Field: "device", Value: opts.Device, Reason: "unknown device, see --list"}
	}
	quantity, err := validation.PositiveQuantity("quantity", opts.Quantity)
	if err != nil {
		return err
	}
	usage := estimator.Usage{Quantity: quantity, PerDay: perDay, Days: days}
	what := fmt.Sprintf("%s × %s", dev.Name, quantity.String())
	return gen.Estimate(what, dev.Estimate(usage), dev.Category)
}
