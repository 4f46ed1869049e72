// SPDX-License-Identifier: MPL-2.0

// Package sdkdir holds the catalog of generated SDK module directories.
//
// Each entry names one aws-cpp-sdk-* component directory, relative to the
// root the generator writes into. The catalog is built once and never
// mutated; callers that need a different set build their own with New.
package sdkdir
