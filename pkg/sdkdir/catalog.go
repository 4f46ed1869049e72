// SPDX-License-Identifier: MPL-2.0

package sdkdir

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// Catalog is an ordered, read-only sequence of module directory names.
// Duplicates are kept as given; wiping the same directory twice is harmless.
// The zero value is an empty catalog.
type Catalog struct {
	names []ModuleName
}

// New builds a Catalog from the given names, preserving their order.
// Every name is validated; all invalid names are reported together.
func New(names ...ModuleName) (Catalog, error) {
	var errs []error
	for i, n := range names {
		if err := n.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, err))
		}
	}
	if len(errs) > 0 {
		return Catalog{}, errors.Join(errs...)
	}
	return Catalog{names: slices.Clone(names)}, nil
}

// Len returns the number of entries, duplicates included.
func (c Catalog) Len() int { return len(c.names) }

// Names returns a copy of the entries in catalog order.
func (c Catalog) Names() []ModuleName {
	return slices.Clone(c.names)
}

// All iterates the entries in catalog order.
func (c Catalog) All() iter.Seq[ModuleName] {
	return slices.Values(c.names)
}

// Contains reports whether name is one of the entries.
func (c Catalog) Contains(name ModuleName) bool {
	return slices.Contains(c.names, name)
}

// With returns a new Catalog with extra appended after the existing entries.
// The receiver is left untouched.
func (c Catalog) With(extra ...ModuleName) (Catalog, error) {
	return New(slices.Concat(c.names, extra)...)
}

// Filter returns the entries of c that appear in keep, in catalog order.
// Names in keep that are not catalog entries are returned as an error.
func (c Catalog) Filter(keep ...ModuleName) (Catalog, error) {
	var unknown []error
	for _, k := range keep {
		if !c.Contains(k) {
			unknown = append(unknown, &UnknownModuleError{Name: k})
		}
	}
	if len(unknown) > 0 {
		return Catalog{}, errors.Join(unknown...)
	}

	out := make([]ModuleName, 0, len(keep))
	for _, n := range c.names {
		if slices.Contains(keep, n) {
			out = append(out, n)
		}
	}
	return Catalog{names: out}, nil
}

// ErrUnknownModule is the sentinel error wrapped by UnknownModuleError.
var ErrUnknownModule = errors.New("unknown module")

// UnknownModuleError is returned when a requested module is not a catalog entry.
type UnknownModuleError struct {
	Name ModuleName
}

// Error implements the error interface for UnknownModuleError.
func (e *UnknownModuleError) Error() string {
	return fmt.Sprintf("module %q is not in the catalog", e.Name)
}

// Unwrap returns ErrUnknownModule for errors.Is() compatibility.
func (e *UnknownModuleError) Unwrap() error { return ErrUnknownModule }
