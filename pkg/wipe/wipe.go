// SPDX-License-Identifier: MPL-2.0

package wipe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"sdkwipe/pkg/sdkdir"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

const (
	// PolicyFailFast stops at the first deletion failure and returns it.
	PolicyFailFast Policy = iota
	// PolicyContinue attempts every entry and returns all failures joined.
	PolicyContinue
)

type (
	// Policy decides what happens to the rest of the catalog after a deletion failure.
	Policy int

	// Wiper removes the directories named by a catalog from a root on a filesystem.
	// A Wiper holds no state between runs and may be reused.
	Wiper struct {
		fs      afero.Fs
		root    string
		catalog sdkdir.Catalog
		policy  Policy
		logger  *log.Logger
	}

	// Option configures a Wiper.
	Option func(*Wiper)
)

// String returns the policy name used in config and log output.
func (p Policy) String() string {
	switch p {
	case PolicyFailFast:
		return "fail-fast"
	case PolicyContinue:
		return "continue"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// WithFs sets the filesystem the wiper operates on.
func WithFs(fsys afero.Fs) Option {
	return func(w *Wiper) { w.fs = fsys }
}

// WithRoot sets the directory catalog names are resolved against.
func WithRoot(root string) Option {
	return func(w *Wiper) { w.root = root }
}

// WithCatalog replaces the default SDK catalog.
func WithCatalog(c sdkdir.Catalog) Option {
	return func(w *Wiper) { w.catalog = c }
}

// WithPolicy sets the failure policy.
func WithPolicy(p Policy) Option {
	return func(w *Wiper) { w.policy = p }
}

// WithLogger sets the logger used for per-entry progress.
func WithLogger(l *log.Logger) Option {
	return func(w *Wiper) { w.logger = l }
}

// New creates a Wiper. Without options it wipes sdkdir.Directories() from the
// current working directory of the OS filesystem, failing fast and logging nothing.
func New(opts ...Option) *Wiper {
	w := &Wiper{
		fs:      afero.NewOsFs(),
		root:    ".",
		catalog: sdkdir.Directories(),
		policy:  PolicyFailFast,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = log.New(io.Discard)
	}
	return w
}

// WipeGeneratedCode removes every generated SDK module directory found in the
// current working directory. It stops at the first directory it cannot remove.
func WipeGeneratedCode() error {
	_, err := New().Wipe(context.Background())
	return err
}

// Wipe makes one pass over the catalog in order. Absent entries are skipped.
// Existing directories are removed with their contents. Under PolicyFailFast
// the first failure is returned as soon as it happens; under PolicyContinue
// all failures are joined and returned after the last entry.
//
// Cancellation is checked between entries. An interrupted wipe leaves the
// root partially wiped, which a later run cleans up.
func (w *Wiper) Wipe(ctx context.Context) (Report, error) {
	var (
		report Report
		errs   []error
	)

	for name := range w.catalog.All() {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("wipe canceled: %w", err)
		}

		entry := w.wipeOne(name)
		report.Entries = append(report.Entries, entry)
		if entry.Err == nil {
			continue
		}
		if w.policy == PolicyFailFast {
			return report, entry.Err
		}
		errs = append(errs, entry.Err)
	}

	return report, errors.Join(errs...)
}

func (w *Wiper) wipeOne(name sdkdir.ModuleName) Entry {
	path := filepath.Join(w.root, string(name))
	entry := Entry{Name: name, Path: path}

	info, err := w.lstat(path)
	if err == nil && info.Mode()&fs.ModeSymlink != 0 {
		// A link counts as present only when its target does.
		_, err = w.fs.Stat(path)
	}
	if err != nil {
		// Only an existing path is acted on; a failed lookup counts as absent.
		if !errors.Is(err, fs.ErrNotExist) {
			w.logger.Debug("cannot stat, skipping", "module", name, "path", path, "err", err)
		} else {
			w.logger.Debug("skipping absent", "module", name, "path", path)
		}
		entry.Outcome = OutcomeAbsent
		return entry
	}

	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		entry.Err = &RemoveError{Name: name, Path: path, Err: ErrSymlink}
	case !info.IsDir():
		entry.Err = &RemoveError{Name: name, Path: path, Err: ErrNotDirectory}
	default:
		w.logger.Debug("removing", "module", name, "path", path)
		if err := w.fs.RemoveAll(path); err != nil {
			entry.Err = &RemoveError{Name: name, Path: path, Err: err}
		}
	}

	if entry.Err != nil {
		w.logger.Error("remove failed", "module", name, "path", path, "err", entry.Err)
		entry.Outcome = OutcomeFailed
		return entry
	}
	entry.Outcome = OutcomeRemoved
	return entry
}

// lstat does not follow a final symbolic link when the filesystem supports it.
func (w *Wiper) lstat(path string) (fs.FileInfo, error) {
	if l, ok := w.fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return w.fs.Stat(path)
}
