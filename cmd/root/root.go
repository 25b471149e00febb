// Package root contains the root command for the application
package root

import (
	"errors"
	"fmt"

	"luzialabs/luzia/internal/config"
	"luzialabs/luzia/internal/container"
	"luzialabs/luzia/internal/logging"

	"github.com/spf13/cobra"
)

// GlobalFlags are the persistent flags shared by every command.
type GlobalFlags struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
	DataDir    string
}

// ErrNotInitialized is returned by GetContainer before the root command's
// pre-run hook has built the container.
var ErrNotInitialized = errors.New("application not initialized")

var (
	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "luzia",
		Short: "Track household electricity consumption and cost.",
		Long: `luzia records monthly electricity use by category (air conditioning,
lighting, other devices), compares its cost with a monthly budget in two
currencies, keeps a CSV history of every entry and predicts next month's
consumption from the trend.`,
		SilenceUsage:      true,
		PersistentPreRunE: initialize,
	}

	// Flags holds the values of the persistent flags.
	Flags = GlobalFlags{}

	appContainer *container.Container
)

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVar(&Flags.ConfigFile, "config", "", "config file (default: config.yaml in $HOME/.luzia, ./.luzia or .)")
	Cmd.PersistentFlags().StringVar(&Flags.LogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&Flags.LogFormat, "log-format", "", "log format (text or json)")
	Cmd.PersistentFlags().StringVar(&Flags.DataDir, "data-dir", "", "directory holding the history log")
}

func initialize(cmd *cobra.Command, _ []string) error {
	config.LoadEnv()

	cfg, err := config.InitializeConfig(Flags.ConfigFile)
	if err != nil {
		return err
	}
	if err := ApplyFlags(cfg, Flags); err != nil {
		return err
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	if adapter, ok := logger.(*logging.LogrusAdapter); ok {
		adapter.SetOutput(cmd.ErrOrStderr())
	}

	c, err := container.NewContainerWithLogger(cfg, logger)
	if err != nil {
		return err
	}
	SetContainer(c)
	return nil
}

// ApplyFlags overrides cfg with the flags that were set and validates the
// result.
func ApplyFlags(cfg *config.Config, flags GlobalFlags) error {
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if flags.LogFormat != "" {
		cfg.Log.Format = flags.LogFormat
	}
	if flags.DataDir != "" {
		cfg.Storage.DataDir = flags.DataDir
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// SetContainer installs the dependencies used by the subcommands.
func SetContainer(c *container.Container) {
	appContainer = c
}

// GetContainer returns the dependencies built by the root command.
func GetContainer() (*container.Container, error) {
	if appContainer == nil {
		return nil, ErrNotInitialized
	}
	return appContainer, nil
}
