// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modalities/modalities/internal/issue"
	"github.com/modalities/modalities/pkg/modality"
	"github.com/modalities/modalities/pkg/types"
)

// errDocumentInvalid marks a CUE modality document that failed to load.
var errDocumentInvalid = errors.New("invalid modality document")

// completeNames suggests modality names that are not already on the command line.
func completeNames(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, name := range modality.ValidNames() {
		if !slices.Contains(args, name) {
			out = append(out, name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func newNamesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "names [name...]",
		Short: "Print modality names in canonical order",
		Long: `Parse modality names and print the resulting set's names in declaration
order (audio, image, text, video, other), one per line. Duplicates collapse.
With no arguments the configured default_modalities are used.`,
		Example: `  modality names video audio
  modality names --format json text text`,
		ValidArgsFunction: completeNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := app.setFromNames(args)
			if err != nil {
				return err
			}
			return writeReport(app.stdout, app.outputFormat(), namesReport{Names: set.Names()}, func(w io.Writer) error {
				for _, name := range set.Names() {
					if _, err := fmt.Fprintln(w, name); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func newShowCommand(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "show [name...]",
		Short: "Describe a modality set",
		Long: `Print the display string, bit value and names of a modality set.

The set comes from the name arguments, from a CUE document given with --file
(for example: modalities: ["audio", "text"]), or from the configured
default_modalities.`,
		Example: `  modality show audio text
  modality show --file inputs.cue`,
		ValidArgsFunction: completeNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				set modality.Set
				err error
			)
			if file != "" {
				if len(args) > 0 {
					return invalidInput("describe modality set", file,
						errors.New("--file cannot be combined with name arguments"),
						"Pass either names or --file, not both")
				}
				set, err = app.setFromFile(file)
			} else {
				set, err = app.setFromNames(args)
			}
			if err != nil {
				return err
			}

			return writeReport(app.stdout, app.outputFormat(), newSetReport(set), func(w io.Writer) error {
				names := strings.Join(set.Names(), ", ")
				if names == "" {
					names = SubtitleStyle.Render("(none)")
				}
				_, err := fmt.Fprintf(w, "%s %s\n%s    %d (%s)\n%s   %s\n",
					KeyStyle.Render("display:"), set,
					KeyStyle.Render("bits:"), set.Bits(), binary(set),
					KeyStyle.Render("names:"), names)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the set from a CUE document")
	_ = cmd.MarkFlagFilename("file", "cue")

	return cmd
}

// setFromFile reads a CUE modality document.
func (a *App) setFromFile(path string) (modality.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return modality.None, issue.NewErrorContext().
			WithOperation("read modality document").
			WithResource(path).
			WithSuggestion("Verify the file path is correct").
			Wrap(err).
			BuildError()
	}

	set, err := modality.ParseCUE(data, path)
	if err != nil {
		return modality.None, issue.NewErrorContext().
			WithOperation("load modality document").
			WithResource(path).
			WithSuggestion(`The document must look like: modalities: ["audio", "text"]`).
			WithSuggestion(validNamesHint).
			Wrap(fmt.Errorf("%w: %w", errDocumentInvalid, err)).
			BuildError()
	}

	a.Logger.Debug("loaded modality document", "path", path, "set", set)
	return set, nil
}

// newFoldCommand builds union and intersect, which fold their arguments with op
// starting from identity.
func newFoldCommand(app *App, use, short, long string, identity modality.Set, op func(a, b modality.Set) modality.Set) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <set> <set>...",
		Short: short,
		Long: long + `

Each <set> is a display string such as "audio | text", "audio,text", a single
name, "none" or "all".`,
		Example: fmt.Sprintf("  modality %s \"audio|text\" video\n  modality %s all text", use, use),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := identity
			for _, arg := range args {
				set, err := app.parseArg(arg)
				if err != nil {
					return err
				}
				result = op(result, set)
			}
			app.Logger.Debug(use, "operands", len(args), "result", result)

			return writeReport(app.stdout, app.outputFormat(), newSetReport(result), func(w io.Writer) error {
				_, err := fmt.Fprintln(w, result)
				return err
			})
		},
	}
}

// parseArg is parseSetArg plus the "all" shorthand.
func (a *App) parseArg(arg string) (modality.Set, error) {
	if strings.TrimSpace(arg) == "all" {
		return modality.All, nil
	}
	return a.parseSetArg(arg)
}

func newUnionCommand(app *App) *cobra.Command {
	return newFoldCommand(app, "union", "Combine sets (bitwise OR)",
		"Print the union of all given sets.", modality.None, modality.Union)
}

func newIntersectCommand(app *App) *cobra.Command {
	return newFoldCommand(app, "intersect", "Keep common modalities (bitwise AND)",
		"Print the intersection of all given sets.", modality.All, modality.Intersect)
}

func newContainsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "contains <set> <query>",
		Short: "Test whether a set contains every modality of a query",
		Long: `Print true when every modality in <query> is also in <set>, false otherwise.
The exit status is 0 for true and 1 for false. An empty query ("none") is
contained in every set.`,
		Example: `  modality contains "audio|text" text
  modality contains audio "audio|video" || echo missing`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := app.parseArg(args[0])
			if err != nil {
				return err
			}
			query, err := app.parseArg(args[1])
			if err != nil {
				return err
			}

			contains := modality.Contains(set, query)
			report := containsReport{Set: set, Query: query, Contains: contains}
			if err := writeReport(app.stdout, app.outputFormat(), report, func(w io.Writer) error {
				style := SuccessStyle
				if !contains {
					style = ErrorStyle
				}
				_, err := fmt.Fprintln(w, style.Render(strconv.FormatBool(contains)))
				return err
			}); err != nil {
				return err
			}

			if !contains {
				return &ExitError{Code: types.ExitFalse}
			}
			return nil
		},
	}
}

func newBitsCommand(app *App) *cobra.Command {
	var truncate bool

	cmd := &cobra.Command{
		Use:   "bits <n>",
		Short: "Decode an integer bit value",
		Long: `Decode a raw bit value into a modality set. The value may be decimal,
hexadecimal (0x1f) or binary (0b101). Values with bits outside the defined
modalities are rejected unless --truncate is given.`,
		Example: `  modality bits 5
  modality bits 0b10001
  modality bits --truncate 255`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := strconv.ParseUint(args[0], 0, 32)
			if err != nil {
				return invalidInput("decode bit value", args[0], err,
					"Pass a non-negative integer such as 5, 0x1f or 0b101")
			}

			var set modality.Set
			if truncate {
				set = modality.FromBitsTruncate(uint32(raw))
			} else if set, err = modality.FromBits(uint32(raw)); err != nil {
				return parseError(args[0], err)
			}

			return writeReport(app.stdout, app.outputFormat(), newSetReport(set), func(w io.Writer) error {
				_, err := fmt.Fprintln(w, set)
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&truncate, "truncate", false, "drop undefined bits instead of failing")

	return cmd
}

func newListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all defined modalities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var report listReport
			for _, flag := range modality.Flags() {
				report.Modalities = append(report.Modalities, flagEntry{Name: flag.String(), Bit: flag.Bits()})
			}

			return writeReport(app.stdout, app.outputFormat(), report, func(w io.Writer) error {
				if _, err := fmt.Fprintln(w, TitleStyle.Render("Modalities")); err != nil {
					return err
				}
				for _, flag := range modality.Flags() {
					name := modalityStyle(flag).Render(fmt.Sprintf("%-6s", flag))
					if _, err := fmt.Fprintf(w, "  %s %2d  %s\n", name, flag.Bits(), binary(flag)); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
