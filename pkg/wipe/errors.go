// SPDX-License-Identifier: MPL-2.0

package wipe

import (
	"errors"
	"fmt"

	"sdkwipe/pkg/sdkdir"
)

var (
	// ErrRemoveFailed is wrapped by every RemoveError.
	ErrRemoveFailed = errors.New("remove failed")
	// ErrNotDirectory is the cause recorded when a catalog path exists but is not a directory.
	ErrNotDirectory = errors.New("not a directory")
	// ErrSymlink is the cause recorded when a catalog path is a symbolic link to an existing target.
	ErrSymlink = errors.New("refusing to remove a symbolic link")
)

// RemoveError reports that an existing catalog path could not be removed.
// It matches both ErrRemoveFailed and the underlying cause with errors.Is.
type RemoveError struct {
	Name sdkdir.ModuleName
	Path string
	Err  error
}

// Error implements the error interface for RemoveError.
func (e *RemoveError) Error() string {
	return fmt.Sprintf("remove %s: %v", e.Path, e.Err)
}

// Unwrap returns ErrRemoveFailed and the underlying cause.
func (e *RemoveError) Unwrap() []error {
	return []error{ErrRemoveFailed, e.Err}
}
