// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"sdkwipe/internal/config"
	"sdkwipe/internal/issue"
	"sdkwipe/pkg/sdkdir"
	"sdkwipe/pkg/wipe"
)

// formatErrorForDisplay formats an error for user display.
// ActionableErrors get their suggestions; verbose mode adds the error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// renderError prints err to stderr. In verbose mode the linked troubleshooting
// guide is rendered below it.
func (a *App) renderError(err error, cfg *config.Config) {
	verbose := a.isVerbose(cfg)
	fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))

	var ae *issue.ActionableError
	if !verbose || !errors.As(err, &ae) || ae.Guide() == nil {
		return
	}
	rendered, renderErr := ae.Guide().Render(a.glamourStyle(cfg))
	if renderErr != nil {
		return
	}
	fmt.Fprint(a.stderr, rendered)
}

// fail renders err and returns the ExitError the command should return.
func (a *App) fail(err error, cfg *config.Config) error {
	a.renderError(err, cfg)
	return &ExitError{Code: 1, Err: err}
}

// wipeFailure wraps a wipe error with the guidance matching its cause.
func wipeFailure(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return issue.WrapWithContext(err, "wipe generated code", "")
	}

	ctx := issue.NewErrorContext().WithOperation("wipe generated code")

	// Under the continue policy err joins several failures; the first one
	// picks both the path and the guide.
	cause := err
	var rmErr *wipe.RemoveError
	if errors.As(err, &rmErr) {
		ctx.WithResource(rmErr.Path)
		cause = rmErr.Err
	}

	switch {
	case errors.Is(cause, fs.ErrPermission):
		ctx.WithIssue(issue.PermissionDeniedId).
			WithSuggestion("Check ownership and permissions of the generated directories")
	case errors.Is(cause, wipe.ErrNotDirectory), errors.Is(cause, wipe.ErrSymlink):
		ctx.WithIssue(issue.NotDirectoryId).
			WithSuggestion("Move the file or link out of the way; only directories are wiped")
	default:
		ctx.WithIssue(issue.RemoveFailedId).
			WithSuggestion("Close processes holding files in the generated directories")
	}

	return ctx.
		WithSuggestion("Re-run the wipe; directories already removed are skipped").
		Wrap(err).
		BuildError()
}

// moduleSelectionError wraps an invalid --module selection.
func moduleSelectionError(err error) error {
	id := issue.UnknownModuleId
	if errors.Is(err, sdkdir.ErrInvalidModuleName) {
		id = issue.InvalidModuleNameId
	}
	return issue.NewErrorContext().
		WithOperation("select modules").
		WithSuggestion("Run 'sdkwipe catalog' to list the known module directories").
		WithIssue(id).
		Wrap(err).
		BuildError()
}
