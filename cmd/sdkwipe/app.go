// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"sdkwipe/internal/config"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

type (
	// App wires CLI services and shared dependencies. All Cobra command
	// handlers receive an App and go through it for config, filesystem and output.
	App struct {
		Config config.Provider
		Fs     afero.Fs

		configDir     string
		markdownStyle string
		stdout        io.Writer
		stderr        io.Writer

		// Global flag values, bound by NewRootCommand.
		verbose    bool
		configPath string
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		// Fs is the filesystem wiped and inspected, relative to its working directory.
		Fs afero.Fs
		// ConfigDir overrides the user config directory.
		ConfigDir string
		// MarkdownStyle forces a glamour style; empty derives it from ui.color_scheme.
		MarkdownStyle string
		Stdout        io.Writer
		Stderr        io.Writer
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}

	return &App{
		Config:        deps.Config,
		Fs:            deps.Fs,
		configDir:     deps.ConfigDir,
		markdownStyle: deps.MarkdownStyle,
		stdout:        deps.Stdout,
		stderr:        deps.Stderr,
	}
}

// loadConfig loads configuration honoring the --config flag.
func (a *App) loadConfig(ctx context.Context) (*config.Config, string, error) {
	return a.Config.Load(ctx, config.LoadOptions{
		ConfigFilePath: a.configPath,
		ConfigDirPath:  a.configDir,
	})
}

// isVerbose reports whether --verbose or ui.verbose is set.
func (a *App) isVerbose(cfg *config.Config) bool {
	return a.verbose || (cfg != nil && cfg.UI.Verbose)
}

// logger returns a stderr logger at debug level when verbose, info otherwise.
func (a *App) logger(verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(a.stderr, log.Options{
		Level:  level,
		Prefix: config.AppName,
	})
}

// glamourStyle picks the markdown style for the configured color scheme.
func (a *App) glamourStyle(cfg *config.Config) string {
	if a.markdownStyle != "" {
		return a.markdownStyle
	}
	if cfg != nil && cfg.UI.ColorScheme == config.ColorSchemeLight {
		return "light"
	}
	return "dark"
}
