// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"sdkwipe/internal/config"

	"github.com/spf13/cobra"
)

func newConfigCommand(app *App) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage sdkwipe configuration",
		Long: `Manage sdkwipe configuration.

Configuration is read from, in order of precedence:
  1. the file given with --config
  2. config.cue in the user config directory
  3. sdkwipe.cue in the working directory

Keys:
  wipe.continue_on_error   keep going after a directory fails to delete
  wipe.extra_modules       extra directory names appended to the catalog
  ui.color_scheme          auto, dark or light
  ui.verbose               log every directory that is checked`,
	}

	configCmd.AddCommand(newConfigShowCommand(app))
	configCmd.AddCommand(newConfigInitCommand(app))
	configCmd.AddCommand(newConfigPathCommand(app))

	return configCmd
}

func newConfigShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceErrors = true

			cfg, path, err := app.loadConfig(cmd.Context())
			if err != nil {
				return app.fail(err, nil)
			}

			source := "built-in defaults"
			if path != "" {
				source = path
			}
			fmt.Fprintln(app.stdout, TitleStyle.Render("Configuration")+" "+SubtitleStyle.Render("("+source+")"))
			fmt.Fprintln(app.stdout)
			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	}
}

func newConfigInitCommand(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceErrors = true

			path, err := config.CreateDefaultConfig(app.configDir, force)
			if errors.Is(err, config.ErrConfigExists) {
				fmt.Fprintf(app.stdout, "%s %s\n", WarningStyle.Render("Config file already exists:"), path)
				fmt.Fprintln(app.stdout, SubtitleStyle.Render("Use --force to overwrite it."))
				return nil
			}
			if err != nil {
				return app.fail(err, nil)
			}
			fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("Created config file:"), path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}

func newConfigPathCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the user configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceErrors = true

			dir := app.configDir
			if dir == "" {
				var err error
				if dir, err = config.ConfigDir(); err != nil {
					return app.fail(err, nil)
				}
			}
			fmt.Fprintln(app.stdout, filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt))
			return nil
		},
	}
}
