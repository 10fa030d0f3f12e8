package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/translate/core/catalog"
	"github.com/dmitrymomot/translate/core/config"
	"github.com/dmitrymomot/translate/core/i18n"
	"github.com/dmitrymomot/translate/core/logger"
)

// Config is the environment configuration of the CLI.
type Config struct {
	i18n.Config

	LogFormat string `env:"TRANSLATE_LOG_FORMAT" envDefault:"text"` // text, color or json
	Verbose   bool   `env:"TRANSLATE_VERBOSE" envDefault:"false"`
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "translate",
		Short:         "Resolve and inspect translation tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	return cmd
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = NewRootCmd()

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies the persistent flags.
func loadConfig(cmd *cobra.Command) (Config, *slog.Logger, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, nil, err
	}

	debug, _ := cmd.Flags().GetBool("debug")
	level := slog.LevelInfo
	if debug || cfg.Verbose {
		level = slog.LevelDebug
	}

	opts := []logger.Option{
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithLevel(level),
	}
	switch cfg.LogFormat {
	case "json":
		opts = append(opts, logger.WithJSONFormatter())
	case "color":
		opts = append(opts, logger.WithColorFormatter())
	}
	return cfg, logger.New(opts...).With(logger.Component(cmd.Name())), nil
}

// readTable loads a translation file from the local filesystem.
func readTable(name string) (i18n.Table, error) {
	return catalog.LoadFile(os.DirFS(filepath.Dir(name)), filepath.Base(name))
}
