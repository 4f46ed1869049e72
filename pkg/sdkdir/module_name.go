// SPDX-License-Identifier: MPL-2.0

package sdkdir

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidModuleName is the sentinel error wrapped by InvalidModuleNameError.
var ErrInvalidModuleName = errors.New("invalid module name")

type (
	// ModuleName identifies one SDK component subdirectory relative to the wipe root.
	// A valid name is a single path element: non-empty, not whitespace-only,
	// without separators, and not "." or "..".
	ModuleName string

	// InvalidModuleNameError is returned when a ModuleName cannot be used as a
	// single directory name. It wraps ErrInvalidModuleName for errors.Is() compatibility.
	InvalidModuleNameError struct {
		Value  ModuleName
		Reason string
	}
)

// String returns the string representation of the ModuleName.
func (n ModuleName) String() string { return string(n) }

// Validate returns nil if the ModuleName is a single, non-empty path element.
func (n ModuleName) Validate() error {
	s := string(n)
	switch {
	case strings.TrimSpace(s) == "":
		return &InvalidModuleNameError{Value: n, Reason: "must be non-empty"}
	case s == "." || s == "..":
		return &InvalidModuleNameError{Value: n, Reason: "must not be a relative directory reference"}
	case strings.ContainsAny(s, `/\`):
		return &InvalidModuleNameError{Value: n, Reason: "must not contain path separators"}
	}
	return nil
}

// Error implements the error interface for InvalidModuleNameError.
func (e *InvalidModuleNameError) Error() string {
	return fmt.Sprintf("invalid module name %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidModuleName for errors.Is() compatibility.
func (e *InvalidModuleNameError) Unwrap() error { return ErrInvalidModuleName }
