// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for sdkwipe.
//
// The Cobra command tree is built around an App that owns the configuration
// provider, the filesystem and the output streams, so commands can be run
// against an in-memory filesystem in tests.
package cmd
