// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Helpers cover working-directory changes (MustChdir), generated-tree fixtures
// (MustMkdirAll, MustWriteFile, MustNotExist) and pointing the config lookup
// at a temporary directory (SetConfigHome).
package testutil
