package main

import (
	"context"
	"fmt"

	"github.com/gobeaver/beaver-kit/config"
	"github.com/gobeaver/filemagic"
	"github.com/gobeaver/filemagic/internal/logging"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	verbosity int
	noColor   bool
	envPrefix string
)

var rootCmd = &cobra.Command{
	Use:   "filemagic",
	Short: "Identify file formats by their magic bytes",
	Long: `filemagic reads the first bytes of each file and compares them against an
ordered table of format signatures, reporting the first one that matches.

Formats whose signature sits far into the file (ISO 9660 images, for instance)
need a larger header: the default read size covers every built-in format.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Verbose output (repeat for more)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&envPrefix, "env-prefix", "", "Environment variable prefix (default BEAVER_)")

	// Add subcommands
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(signaturesCmd)
	rootCmd.AddCommand(budgetCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setupLogging(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logging.Setup(logging.LevelFromVerbosity(level, verbosity), cmd.ErrOrStderr())
	return nil
}

// loadConfig reads the environment using --env-prefix when given.
func loadConfig() (*filemagic.Config, error) {
	if envPrefix == "" {
		return filemagic.GetConfig()
	}
	cfg := &filemagic.Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: envPrefix}); err != nil {
		return nil, err
	}
	return cfg, nil
}

// commandContext returns the command's context, or Background when run
// outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
