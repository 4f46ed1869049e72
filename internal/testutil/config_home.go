// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"
)

// SetConfigHome points the platform's user config directory at dir for the
// duration of the test:
//   - Windows: APPDATA
//   - macOS: HOME (config lives under Library/Application Support)
//   - Linux/others: XDG_CONFIG_HOME
//
// It uses t.Setenv, so callers must not run in parallel.
func SetConfigHome(t *testing.T, dir string) {
	t.Helper()

	switch runtime.GOOS {
	case "windows":
		t.Setenv("APPDATA", dir)
	case "darwin":
		t.Setenv("HOME", dir)
	default:
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
}
