// SPDX-License-Identifier: MPL-2.0

// Package wipe removes generated SDK module directories before regeneration.
//
// A wipe is a single sequential pass over a catalog: every entry that exists
// under the root is removed recursively, every entry that does not exist is
// skipped. Running it twice is safe; the second pass finds nothing to do.
//
// Embedding build tools that just want the default behavior call
// WipeGeneratedCode. Everything else goes through a Wiper.
package wipe
