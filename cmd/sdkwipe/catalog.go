// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"sdkwipe/pkg/sdkdir"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type catalogOptions struct {
	check    bool
	markdown bool
}

func newCatalogCommand(app *App) *cobra.Command {
	var opts catalogOptions

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the generated SDK module directories sdkwipe knows about",
		Long: `List the module directory names that 'sdkwipe wipe' deletes, in wipe order.

The list is the built-in catalog followed by wipe.extra_modules from the config.
With --check each entry is marked with whether it exists in the working directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.check, "check", false, "mark entries that exist in the working directory")
	cmd.Flags().BoolVar(&opts.markdown, "markdown", false, "render the catalog as a markdown table")

	return cmd
}

type catalogRow struct {
	name    sdkdir.ModuleName
	present bool
}

func runCatalog(cmd *cobra.Command, app *App, opts catalogOptions) error {
	cmd.SilenceErrors = true

	cfg, _, err := app.loadConfig(cmd.Context())
	if err != nil {
		return app.fail(err, nil)
	}
	catalog, err := cfg.Wipe.Catalog()
	if err != nil {
		return app.fail(err, cfg)
	}

	rows := make([]catalogRow, 0, catalog.Len())
	for name := range catalog.All() {
		row := catalogRow{name: name}
		if opts.check {
			row.present, err = afero.DirExists(app.Fs, name.String())
			if err != nil {
				return app.fail(fmt.Errorf("check %s: %w", name, err), cfg)
			}
		}
		rows = append(rows, row)
	}

	if opts.markdown {
		out, err := glamour.Render(catalogMarkdown(rows, opts.check), app.glamourStyle(cfg))
		if err != nil {
			return app.fail(fmt.Errorf("render catalog: %w", err), cfg)
		}
		fmt.Fprint(app.stdout, out)
		return nil
	}

	for _, row := range rows {
		switch {
		case !opts.check:
			fmt.Fprintln(app.stdout, row.name)
		case row.present:
			fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("●"), row.name)
		default:
			fmt.Fprintf(app.stdout, "%s %s\n", SubtitleStyle.Render("○"), row.name)
		}
	}
	return nil
}

func catalogMarkdown(rows []catalogRow, check bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# SDK module directories (%d)\n\n", len(rows))
	if check {
		sb.WriteString("| # | Module | Present |\n|---|---|---|\n")
	} else {
		sb.WriteString("| # | Module |\n|---|---|\n")
	}
	for i, row := range rows {
		if check {
			present := "no"
			if row.present {
				present = "yes"
			}
			fmt.Fprintf(&sb, "| %d | `%s` | %s |\n", i+1, row.name, present)
			continue
		}
		fmt.Fprintf(&sb, "| %d | `%s` |\n", i+1, row.name)
	}
	return sb.String()
}
