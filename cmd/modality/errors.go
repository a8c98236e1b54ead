// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/fang"

	"github.com/modalities/modalities/internal/issue"
	"github.com/modalities/modalities/pkg/modality"
)

// errInvalidInput marks malformed command-line input that is not a modality
// error itself, such as a non-numeric bit value.
var errInvalidInput = errors.New("invalid input")

var validNamesHint = "Valid modality names: " + strings.Join(modality.ValidNames(), ", ")

// invalidInput builds an ActionableError for bad user input.
func invalidInput(operation, resource string, cause error, suggestions ...string) error {
	return issue.NewErrorContext().
		WithOperation(operation).
		WithResource(resource).
		WithSuggestions(suggestions...).
		Wrap(fmt.Errorf("%w: %w", errInvalidInput, cause)).
		BuildError()
}

// parseError wraps a modality parse error with suggestions for the user.
func parseError(input string, err error) error {
	ctx := issue.NewErrorContext().
		WithOperation("parse modality set").
		WithResource(fmt.Sprintf("%q", input)).
		Wrap(err)

	var nameErr *modality.InvalidNameError
	var bitsErr *modality.InvalidBitsError
	switch {
	case errors.As(err, &nameErr):
		ctx = ctx.WithSuggestion(validNamesHint).
			WithSuggestion("Names are case-sensitive and lowercase")
	case errors.As(err, &bitsErr):
		ctx = ctx.WithSuggestion(fmt.Sprintf("Bit values must be between 0 and %d", modality.All.Bits()))
	}

	return ctx.BuildError()
}

// parseSetArg parses a set given in display form, e.g. "audio | text",
// "audio,text" or "none".
func (a *App) parseSetArg(arg string) (modality.Set, error) {
	set, err := modality.ParseString(arg)
	if err != nil {
		return modality.None, parseError(arg, err)
	}
	a.Logger.Debug("parsed set", "input", arg, "set", set)
	return set, nil
}

// setFromNames parses a list of names, or returns the configured default set
// when names is empty.
func (a *App) setFromNames(names []string) (modality.Set, error) {
	if len(names) == 0 {
		set, err := a.cfg.DefaultSet()
		if err != nil {
			return modality.None, parseError(strings.Join(a.cfg.DefaultModalities, ","), err)
		}
		a.Logger.Debug("using default modalities", "set", set)
		return set, nil
	}

	set, err := modality.FromNames(names)
	if err != nil {
		return modality.None, parseError(strings.Join(names, " "), err)
	}
	a.Logger.Debug("parsed names", "names", names, "set", set)
	return set, nil
}

// issueFor returns the catalogue entry that explains err, or nil.
func issueFor(err error) *issue.Issue {
	switch {
	case errors.Is(err, errDocumentInvalid):
		return issue.Get(issue.ModalityDocumentInvalidId)
	case errors.Is(err, modality.ErrInvalidName):
		return issue.Get(issue.InvalidModalityNameId)
	case errors.Is(err, modality.ErrInvalidBits):
		return issue.Get(issue.InvalidModalityBitsId)
	}
	return nil
}

// handleError prints command errors. ActionableErrors print their suggestions,
// and in verbose mode the matching issue is rendered as Markdown.
func (a *App) handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		fang.DefaultErrorHandler(w, styles, err)
		return
	}

	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+ae.Format(a.verbose))

	if !a.verbose {
		return
	}
	if iss := issueFor(err); iss != nil {
		rendered, renderErr := iss.Render(a.colorScheme())
		if renderErr != nil {
			a.Logger.Debug("failed to render issue", "id", iss.Id(), "error", renderErr)
			return
		}
		fmt.Fprint(w, rendered)
	}
}
