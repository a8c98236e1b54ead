// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modalities/modalities/internal/config"
	"github.com/modalities/modalities/internal/issue"
	"github.com/modalities/modalities/pkg/modality"
)

// configKeys lists the keys accepted by `modality config set`.
var configKeys = []string{"default_modalities", "output.format", "ui.color_scheme", "ui.verbose"}

// newConfigCommand creates the `modality config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage modality configuration",
		Long: `Manage modality configuration.

Configuration is stored in:
  - Linux: ~/.config/modality/config.cue
  - macOS: ~/Library/Application Support/modality/config.cue
  - Windows: %APPDATA%\modality\config.cue

Environment variables prefixed with MODALITY_ override file values,
e.g. MODALITY_OUTPUT_FORMAT=json.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Set a configuration value",
		Long:      "Set a configuration value in the default config file.\n\nValid keys: " + strings.Join(configKeys, ", "),
		Args:      cobra.ExactArgs(2),
		ValidArgs: configKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			return setConfigValue(cmd.Context(), app, args[0], args[1])
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Load(cmd.Context(), app.loadOptions())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return err
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	cfg, err := app.Config.Load(ctx, app.loadOptions())
	if err != nil {
		if rendered, renderErr := issue.Get(issue.ConfigLoadFailedId).Render(app.colorScheme()); renderErr == nil {
			fmt.Fprint(app.stderr, rendered)
		}
		return err
	}

	if app.outputFormat() != config.OutputFormatText {
		return writeReport(app.stdout, app.outputFormat(), cfg, nil)
	}

	w := app.stdout
	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	cfgPath, pathErr := config.ResolvePath(app.loadOptions())
	if pathErr != nil || cfgPath == "" {
		fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	} else {
		fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("Config file"), cfgPath)
	}
	fmt.Fprintln(w)

	defaults := strings.Join(cfg.DefaultModalities, ", ")
	if defaults == "" {
		defaults = "(none)"
	}
	fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("default_modalities"), SuccessStyle.Render(defaults))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", KeyStyle.Render("output"))
	fmt.Fprintf(w, "  format: %s\n", SuccessStyle.Render(cfg.Output.Format.String()))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", KeyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", SuccessStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(w, "  verbose: %s\n", SuccessStyle.Render(strconv.FormatBool(cfg.UI.Verbose)))

	return nil
}

func initConfig(app *App) error {
	cfgPath, created, err := config.CreateDefaultConfig("")
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	if !created {
		fmt.Fprintf(app.stdout, "%s Configuration already exists at %s\n", WarningStyle.Render("!"), cfgPath)
		return nil
	}

	fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), cfgPath)
	return nil
}

func showConfigPath(app *App) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	fmt.Fprintf(app.stdout, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(app.stdout, "Config file: %s\n", config.ConfigFilePath(cfgDir))

	loaded, err := config.ResolvePath(app.loadOptions())
	if err != nil {
		return err
	}
	if loaded == "" {
		loaded = "(using defaults)"
	}
	fmt.Fprintf(app.stdout, "Loaded from: %s\n", loaded)

	return nil
}

func setConfigValue(ctx context.Context, app *App, key, value string) error {
	cfg, err := app.Config.Load(ctx, app.loadOptions())
	if err != nil {
		return err
	}

	switch key {
	case "default_modalities":
		set, parseErr := modality.ParseString(value)
		if parseErr != nil {
			return parseError(value, parseErr)
		}
		cfg.DefaultModalities = set.Names()

	case "output.format":
		format := config.OutputFormat(value)
		if valid, errs := format.IsValid(); !valid {
			return invalidInput("set "+key, value, errs[0], "Use one of: text, json, toml")
		}
		cfg.Output.Format = format

	case "ui.color_scheme":
		scheme := config.ColorScheme(value)
		if valid, errs := scheme.IsValid(); !valid {
			return invalidInput("set "+key, value, errs[0], "Use one of: auto, dark, light")
		}
		cfg.UI.ColorScheme = scheme

	case "ui.verbose":
		verbose, parseErr := strconv.ParseBool(value)
		if parseErr != nil {
			return invalidInput("set "+key, value, parseErr, "Use true or false")
		}
		cfg.UI.Verbose = verbose

	default:
		return invalidInput("set configuration value", key,
			fmt.Errorf("unknown configuration key %q", key),
			"Valid keys: "+strings.Join(configKeys, ", "))
	}

	cfgPath, err := config.Save(cfg, "")
	if err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(app.stdout, "%s Set %s = %s (%s)\n", SuccessStyle.Render("✓"), key, value, cfgPath)
	return nil
}
