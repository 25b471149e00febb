// Package history implements the commands that show and export the history
// log.
package history

import (
	"fmt"

	"luzialabs/luzia/cmd/root"
	"luzialabs/luzia/internal/apperror"
	"luzialabs/luzia/internal/logging"
	"luzialabs/luzia/internal/report"

	"github.com/spf13/cobra"
)

var (
	currencyCode string
	outputPath   string
)

// Cmd represents the history command
var Cmd = &cobra.Command{
	Use:   "history",
	Short: "Show the recorded consumption history",
	Long: `History prints every entry of the history log in the order it was recorded.
Rows that cannot be read are skipped and counted.`,
	RunE: runShow,
}

// ExportCmd copies the raw history log.
var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the raw history log as CSV",
	Long:  `Export writes the history log exactly as stored. Use --output - to print it.`,
	RunE:  runExport,
}

func init() {
	Cmd.Flags().StringVarP(&currencyCode, "currency", "c", "", "also show costs in this currency")
	ExportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "destination file, or - for standard output")
	_ = ExportCmd.MarkFlagRequired("output")
	Cmd.AddCommand(ExportCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	currency, err := c.ResolveCurrency(currencyCode)
	if err != nil {
		return &apperror.ValidationError{Field: "currency", Value: currencyCode, Reason: err.Error()}
	}

	snapshot := c.GetTracker().Snapshot(currency)
	gen := report.NewGenerator(cmd.OutOrStdout(), c.GetCurrencies().Base.Code, c.GetLogger())
	return gen.History(snapshot, currency)
}

func runExport(cmd *cobra.Command, _ []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	store := c.GetStore()

	if outputPath == "-" {
		data, err := store.RawLog()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	n, err := store.Export(outputPath)
	if err != nil {
		return err
	}
	c.GetLogger().Info("Exported history",
		logging.F(logging.FieldOperation, "export"),
		logging.F(logging.FieldFile, outputPath),
		logging.F("bytes", n))
	fmt.Fprintf(cmd.OutOrStdout(), "History exported to %s\n", outputPath)
	return nil
}
