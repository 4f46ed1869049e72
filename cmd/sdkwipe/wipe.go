// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"sdkwipe/pkg/sdkdir"
	"sdkwipe/pkg/wipe"

	"github.com/spf13/cobra"
)

type wipeOptions struct {
	continueOnError bool
	modules         []string
}

func newWipeCommand(app *App) *cobra.Command {
	var opts wipeOptions

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Delete generated SDK module directories in the working directory",
		Long: `Delete every generated SDK module directory found in the working directory.

Each catalog entry that exists is removed with all of its contents; entries
that do not exist are skipped. By default the wipe stops at the first
directory it cannot delete. With --continue-on-error (or
wipe.continue_on_error in the config) it attempts every directory and
reports all failures at the end.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWipe(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.continueOnError, "continue-on-error", false, "attempt every directory and report all failures")
	cmd.Flags().StringSliceVarP(&opts.modules, "module", "m", nil, "only wipe these catalog entries (repeatable)")

	return cmd
}

func runWipe(cmd *cobra.Command, app *App, opts wipeOptions) error {
	cmd.SilenceErrors = true

	cfg, _, err := app.loadConfig(cmd.Context())
	if err != nil {
		return app.fail(err, nil)
	}

	catalog, err := cfg.Wipe.Catalog()
	if err != nil {
		return app.fail(err, cfg)
	}
	if len(opts.modules) > 0 {
		catalog, err = selectModules(catalog, opts.modules)
		if err != nil {
			return app.fail(moduleSelectionError(err), cfg)
		}
	}

	policy := cfg.Wipe.Policy()
	if cmd.Flags().Changed("continue-on-error") {
		policy = wipe.PolicyFailFast
		if opts.continueOnError {
			policy = wipe.PolicyContinue
		}
	}

	w := wipe.New(
		wipe.WithFs(app.Fs),
		wipe.WithCatalog(catalog),
		wipe.WithPolicy(policy),
		wipe.WithLogger(app.logger(app.isVerbose(cfg))),
	)
	report, err := w.Wipe(cmd.Context())
	printWipeReport(app, report)
	if err != nil {
		return app.fail(wipeFailure(err), cfg)
	}
	return nil
}

// selectModules validates the requested names and keeps only those catalog entries.
func selectModules(catalog sdkdir.Catalog, modules []string) (sdkdir.Catalog, error) {
	names := make([]sdkdir.ModuleName, len(modules))
	for i, m := range modules {
		names[i] = sdkdir.ModuleName(m)
	}
	if _, err := sdkdir.New(names...); err != nil {
		return sdkdir.Catalog{}, err
	}
	return catalog.Filter(names...)
}

func printWipeReport(app *App, report wipe.Report) {
	for _, e := range report.Entries {
		switch e.Outcome {
		case wipe.OutcomeRemoved:
			fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("✓ removed"), CmdStyle.Render(e.Name.String()))
		case wipe.OutcomeFailed:
			fmt.Fprintf(app.stdout, "%s %s\n", ErrorStyle.Render("✗ failed"), CmdStyle.Render(e.Name.String()))
		}
	}

	summary := fmt.Sprintf("%d removed, %d absent", len(report.Removed()), len(report.Absent()))
	if failed := len(report.Failed()); failed > 0 {
		fmt.Fprintln(app.stdout, WarningStyle.Render(fmt.Sprintf("%s, %d failed", summary, failed)))
		return
	}
	fmt.Fprintln(app.stdout, SubtitleStyle.Render(summary))
}
