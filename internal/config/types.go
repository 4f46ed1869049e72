// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"sdkwipe/pkg/sdkdir"
	"sdkwipe/pkg/wipe"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Wipe configures the wipe operation.
		Wipe WipeConfig `json:"wipe" mapstructure:"wipe"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// WipeConfig configures which directories are wiped and how failures are handled.
	WipeConfig struct {
		// ContinueOnError keeps going after a failed deletion and reports all failures.
		ContinueOnError bool `json:"continue_on_error" mapstructure:"continue_on_error"`
		// ExtraModules are appended to the built-in catalog.
		ExtraModules []sdkdir.ModuleName `json:"extra_modules" mapstructure:"extra_modules"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Wipe: WipeConfig{
			ContinueOnError: false,
			ExtraModules:    []sdkdir.ModuleName{},
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}

// Policy maps ContinueOnError to a wipe policy.
func (c WipeConfig) Policy() wipe.Policy {
	if c.ContinueOnError {
		return wipe.PolicyContinue
	}
	return wipe.PolicyFailFast
}

// Catalog returns the built-in catalog followed by ExtraModules.
func (c WipeConfig) Catalog() (sdkdir.Catalog, error) {
	return sdkdir.Directories().With(c.ExtraModules...)
}

// Validate returns nil if every field holds a usable value.
func (c *Config) Validate() error {
	var errs []error
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	for i, m := range c.Wipe.ExtraModules {
		if err := m.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("wipe.extra_modules[%d]: %w", i, err))
		}
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %v", errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig and the field errors for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// Validate returns nil if the ColorScheme is one of the defined values.
// The zero value is treated as "auto".
func (cs ColorScheme) Validate() error {
	switch cs {
	case "", ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: cs}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }
