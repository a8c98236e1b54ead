// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/modalities/modalities/internal/config"
	"github.com/modalities/modalities/pkg/types"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root
	// for the CLI layer: every Cobra handler receives an App reference and reads
	// configuration, output streams and the logger through it.
	App struct {
		Config ConfigProvider
		Logger *log.Logger
		stdout io.Writer
		stderr io.Writer

		// Per-invocation state populated from flags and the loaded config.
		verbose bool
		cfgFile string
		format  string
		cfg     *config.Config
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Logger *log.Logger
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}
)

// NewApp creates an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Logger == nil {
		deps.Logger = log.NewWithOptions(deps.Stderr, log.Options{
			Prefix: config.AppName,
		})
	}

	return &App{
		Config: deps.Config,
		Logger: deps.Logger,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
}

// loadOptions returns the LoadOptions for the current --config flag.
func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: types.FilesystemPath(a.cfgFile)}
}

// initConfig loads configuration before any subcommand runs. Load failures fall
// back to defaults with a warning, unless the file was requested explicitly.
func (a *App) initConfig(cmd *cobra.Command) error {
	cfg, err := a.Config.Load(cmd.Context(), a.loadOptions())
	if err != nil {
		if a.cfgFile != "" {
			return err
		}
		a.Logger.Warn("using default configuration", "error", err)
		cfg = config.DefaultConfig()
	}
	a.cfg = cfg

	if !cmd.Flags().Changed("verbose") && cfg.UI.Verbose {
		a.verbose = true
	}
	if a.verbose {
		a.Logger.SetLevel(log.DebugLevel)
	}

	if a.format == "" {
		a.format = string(cfg.Output.Format)
	}
	if valid, errs := config.OutputFormat(a.format).IsValid(); !valid {
		return invalidInput("select output format", a.format, errs[0],
			"Use --format text, --format json or --format toml")
	}

	a.Logger.Debug("configuration ready", "format", a.format, "default_modalities", cfg.DefaultModalities)
	return nil
}

// outputFormat returns the resolved output format.
func (a *App) outputFormat() config.OutputFormat {
	if a.format == "" {
		return config.OutputFormatText
	}
	return config.OutputFormat(a.format)
}

// colorScheme returns the glamour style for issue rendering.
func (a *App) colorScheme() string {
	if a.cfg == nil || a.cfg.UI.ColorScheme == "" {
		return string(config.ColorSchemeAuto)
	}
	return string(a.cfg.UI.ColorScheme)
}
