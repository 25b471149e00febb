// Package configure implements the command that prints the effective
// configuration.
package configure

import (
	"fmt"

	"luzialabs/luzia/cmd/root"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Cmd represents the config command
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Config prints the configuration in effect after applying defaults, the
config file, LUZIA_* environment variables and command-line flags.`,
	RunE: run,
}

func run(cmd *cobra.Command, _ []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c.GetConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
