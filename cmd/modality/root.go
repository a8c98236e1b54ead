// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the `modality` command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "modality",
		Short: "Inspect and combine multimodal data-type flags",
		Long: TitleStyle.Render("modality") + SubtitleStyle.Render(" - inspect and combine multimodal data-type flags") + `

A modality set is a bitmask over five data types: audio (1), image (2),
text (4), video (8) and other (16). Sets are written as names joined by
" | " (for example "audio | text"), or "none" for the empty set.

` + SubtitleStyle.Render("Examples:") + `
  modality names video audio         Print names in canonical order
  modality show audio text           Describe a set
  modality union audio "image|text"  Combine sets
  modality contains "audio|text" text
  modality bits 0x1f                 Decode a raw bit value
  modality config show               Show current configuration`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.initConfig(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.cfgFile, "config", "", "config file (default is $HOME/.config/modality/config.cue)")
	rootCmd.PersistentFlags().StringVarP(&app.format, "format", "o", "", "output format: text, json or toml (default from config)")
	_ = rootCmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"text", "json", "toml"}, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.AddCommand(
		newNamesCommand(app),
		newShowCommand(app),
		newUnionCommand(app),
		newIntersectCommand(app),
		newContainsCommand(app),
		newBitsCommand(app),
		newListCommand(app),
		newConfigCommand(app),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits with the command's status.
// This is called by main.main().
func Execute() {
	if code := Run(); code != 0 {
		os.Exit(code)
	}
}

// Run executes the CLI with os.Args and returns the exit status.
func Run() int {
	app := NewApp(Dependencies{})

	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.handleError),
	)
	return int(exitCodeFor(err))
}
